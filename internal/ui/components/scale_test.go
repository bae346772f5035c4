package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaleByName(t *testing.T) {
	scale, err := ScaleByName("")
	require.NoError(t, err)
	assert.Equal(t, ScaleNameDisplay, scale.Name())

	scale, err = ScaleByName("Compact")
	require.NoError(t, err)
	assert.Equal(t, ScaleNameCompact, scale.Name())

	_, err = ScaleByName("huge")
	assert.Error(t, err)
}

func TestScalesSizeEveryTextKind(t *testing.T) {
	for _, scale := range []ScaleTable{DisplayScale(), CompactScale()} {
		for _, kind := range Kinds() {
			if kind == KindGradientText || kind == KindAnimatedText {
				assert.Empty(t, scale.Step(kind).Size, "%s inherits its size", kind)
				continue
			}
			assert.NotEmpty(t, scale.Step(kind).Size, "%s/%s", scale.Name(), kind)
		}
	}
}

func TestCompactScaleTightensTitles(t *testing.T) {
	display := DisplayScale()
	compact := CompactScale()

	assert.Equal(t, ScaleStep{Size: "text-4xl md:text-6xl lg:text-8xl", Spacing: "mb-16"}, display.Step(KindH2))
	assert.Equal(t, ScaleStep{Size: "text-4xl md:text-6xl", Spacing: "mb-8"}, compact.Step(KindH2))
	assert.Equal(t, display.Step(KindParagraph), compact.Step(KindParagraph))
	assert.Equal(t, display.Step(KindH2), display.Step(KindSectionTitle))
}

func TestScaleWith(t *testing.T) {
	custom := DisplayScale().With(KindH1, ScaleStep{Size: "text-xl"})

	assert.Equal(t, "text-xl", custom.Step(KindH1).Size)
	assert.Equal(t, "text-5xl md:text-7xl lg:text-9xl", DisplayScale().Step(KindH1).Size, "tables are values")
	assert.Equal(t, ScaleStep{}, custom.Step(Kind(-3)))

	v := custom.Resolve(KindH1, Options{})
	assert.True(t, v.Classes.Has("text-xl"))
}

func TestContextScale(t *testing.T) {
	assert.Equal(t, ScaleNameDisplay, DefaultContext().TypographyScale().Name())
	assert.Equal(t, ScaleNameCompact, DefaultContext().WithScale(CompactScale()).TypographyScale().Name())
}
