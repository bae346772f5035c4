package components

import (
	"fmt"
	"strings"
)

// ScaleStep is the font-size and vertical rhythm of one element kind.
type ScaleStep struct {
	Size    string
	Spacing string
}

// ScaleTable holds a ScaleStep per element kind. It is the single place the
// display constants of headings and paragraphs live; picking another table is
// a data change.
type ScaleTable struct {
	name  string
	steps [kindCount]ScaleStep
}

const (
	ScaleNameDisplay = "display"
	ScaleNameCompact = "compact"
)

var displayScale = ScaleTable{
	name: ScaleNameDisplay,
	steps: [kindCount]ScaleStep{
		KindH1:              {Size: "text-5xl md:text-7xl lg:text-9xl"},
		KindH2:              {Size: "text-4xl md:text-6xl lg:text-8xl", Spacing: "mb-16"},
		KindH3:              {Size: "text-3xl md:text-4xl lg:text-6xl", Spacing: "mb-8"},
		KindH4:              {Size: "text-xl md:text-3xl", Spacing: "mb-4"},
		KindH5:              {Size: "text-xl md:text-2xl", Spacing: "mb-4"},
		KindH6:              {Size: "text-lg md:text-xl", Spacing: "mb-3"},
		KindParagraph:       {Size: "text-lg md:text-xl", Spacing: "mb-6"},
		KindParagraphSmall:  {Size: "text-base md:text-lg", Spacing: "mb-4"},
		KindSpanItalicSmall: {Size: "text-base md:text-lg"},
		KindSpanItalicLarge: {Size: "text-lg md:text-xl"},
		KindHeroTitle:       {Size: "text-5xl md:text-7xl lg:text-9xl"},
		KindSectionTitle:    {Size: "text-4xl md:text-6xl lg:text-8xl", Spacing: "mb-16"},
	},
}

var compactScale = ScaleTable{
	name: ScaleNameCompact,
	steps: [kindCount]ScaleStep{
		KindH1:              {Size: "text-6xl lg:text-9xl"},
		KindH2:              {Size: "text-4xl md:text-6xl", Spacing: "mb-8"},
		KindH3:              {Size: "text-3xl md:text-4xl lg:text-6xl", Spacing: "mb-8"},
		KindH4:              {Size: "text-xl md:text-3xl", Spacing: "mb-4"},
		KindH5:              {Size: "text-xl md:text-2xl", Spacing: "mb-4"},
		KindH6:              {Size: "text-lg md:text-xl", Spacing: "mb-3"},
		KindParagraph:       {Size: "text-lg md:text-xl", Spacing: "mb-6"},
		KindParagraphSmall:  {Size: "text-base md:text-lg", Spacing: "mb-4"},
		KindSpanItalicSmall: {Size: "text-base md:text-lg"},
		KindSpanItalicLarge: {Size: "text-lg md:text-xl"},
		KindHeroTitle:       {Size: "text-6xl lg:text-9xl"},
		KindSectionTitle:    {Size: "text-4xl md:text-6xl", Spacing: "mb-8"},
	},
}

// DisplayScale is the default table.
func DisplayScale() ScaleTable {
	return displayScale
}

// CompactScale is the tighter alternative with smaller section titles.
func CompactScale() ScaleTable {
	return compactScale
}

// ScaleByName returns the table called name.
func ScaleByName(name string) (ScaleTable, error) {
	switch strings.ToLower(name) {
	case "", ScaleNameDisplay:
		return displayScale, nil
	case ScaleNameCompact:
		return compactScale, nil
	default:
		return ScaleTable{}, fmt.Errorf("unknown typography scale %q", name)
	}
}

// Name returns the table name.
func (t ScaleTable) Name() string {
	return t.name
}

// Step returns the step of kind.
func (t ScaleTable) Step(kind Kind) ScaleStep {
	if !kind.Valid() {
		return ScaleStep{}
	}
	return t.steps[kind]
}

// With returns a copy of the table with kind's step replaced.
func (t ScaleTable) With(kind Kind, step ScaleStep) ScaleTable {
	if kind.Valid() {
		t.steps[kind] = step
	}
	return t
}
