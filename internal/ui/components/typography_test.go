package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var gradientOverlayTokens = Cn("bg-clip-text text-transparent")

func TestResolveH1WithoutGradient(t *testing.T) {
	v := Resolve(KindH1, Options{Gradient: false, Animate: false, ClassName: "x"})

	assert.Equal(t, ElementH1, v.Element)
	assert.False(t, v.Classes.HasAny(gradientOverlayTokens), "gradient overlay must be absent")
	assert.False(t, v.Classes.Has("relative"))
	assert.Equal(t, "x", v.Classes[len(v.Classes)-1], "caller classes come last")
	assert.Zero(t, v.Decorations)
}

func TestResolveH1WithGradient(t *testing.T) {
	v := Resolve(KindH1, DefaultOptions(KindH1))

	assert.True(t, v.Classes.HasAll(Cn("bg-clip-text text-transparent bg-gradient-to-r from-white via-orange-500 to-red-500")))
	assert.True(t, v.Classes.HasAll(Cn("text-5xl md:text-7xl lg:text-9xl")))
}

func TestResolveAnimate(t *testing.T) {
	h1 := Resolve(KindH1, Options{Animate: true})
	assert.True(t, h1.Classes.Has("relative"))
	assert.True(t, h1.Decorations.Has(DecorationRing))

	h3 := Resolve(KindH3, Options{Animate: true})
	assert.True(t, h3.Classes.Has("relative"))
	assert.False(t, h3.Decorations.Has(DecorationRing), "only h1 titles carry the ring")

	hero := Resolve(KindHeroTitle, DefaultOptions(KindHeroTitle))
	assert.False(t, hero.Decorations.Has(DecorationRing))

	hero = Resolve(KindHeroTitle, Options{Animate: true})
	assert.True(t, hero.Decorations.Has(DecorationRing))
}

func TestResolveAccentBarIsUnconditional(t *testing.T) {
	for _, opts := range []Options{
		{},
		{Gradient: true},
		{Animate: true},
		{Gradient: true, Animate: true, ClassName: "text-center"},
	} {
		assert.True(t, Resolve(KindH2, opts).Decorations.Has(DecorationAccentBar))
		assert.True(t, Resolve(KindSectionTitle, opts).Decorations.Has(DecorationAccentBar))
	}
	assert.False(t, Resolve(KindH3, Options{}).Decorations.Has(DecorationAccentBar))
}

func TestResolveIgnoresGradientOnKindsWithoutOverlay(t *testing.T) {
	for _, kind := range []Kind{KindH4, KindH5, KindH6, KindParagraph, KindParagraphSmall} {
		with := Resolve(kind, Options{Gradient: true})
		without := Resolve(kind, Options{})
		assert.Equal(t, without.Classes, with.Classes, kind.String())
	}
}

func TestResolveCallerClassesOverride(t *testing.T) {
	v := Resolve(KindH4, Options{ClassName: "text-red-500"})
	compiled := Compile(lipgloss.NewStyle(), v.Classes, DefaultContext())

	assert.Equal(t, lipgloss.Color("#ef4444"), compiled.Style.GetForeground())
}

func TestResolveInvalidKind(t *testing.T) {
	v := Resolve(Kind(99), Options{ClassName: "a b", Gradient: true})

	assert.Equal(t, ElementSpan, v.Element)
	assert.Equal(t, Classes{"a", "b"}, v.Classes)
	assert.False(t, Kind(99).Valid())
	assert.Equal(t, Options{}, DefaultOptions(Kind(99)))
}

func TestDefaultOptions(t *testing.T) {
	for _, kind := range Kinds() {
		want := kind == KindH1 || kind == KindH2 || kind == KindH3
		assert.Equal(t, want, DefaultOptions(kind).Gradient, kind.String())
		assert.False(t, DefaultOptions(kind).Animate, kind.String())
	}
}

func TestKindNames(t *testing.T) {
	require.Len(t, Kinds(), int(kindCount))
	for _, kind := range Kinds() {
		parsed, ok := ParseKind(kind.String())
		require.True(t, ok, kind.String())
		assert.Equal(t, kind, parsed)
	}

	_, ok := ParseKind("h7")
	assert.False(t, ok)
	assert.Equal(t, "invalid", Kind(-1).String())
}

func TestKindElements(t *testing.T) {
	tests := map[Kind]Element{
		KindH1:              ElementH1,
		KindH6:              ElementH6,
		KindParagraph:       ElementP,
		KindParagraphSmall:  ElementP,
		KindSpanItalicSmall: ElementSpan,
		KindGradientText:    ElementSpan,
		KindAnimatedText:    ElementSpan,
		KindHeroTitle:       ElementH1,
		KindSectionTitle:    ElementH2,
	}
	for kind, element := range tests {
		assert.Equal(t, element, Resolve(kind, Options{}).Element, kind.String())
	}
	assert.True(t, ElementSpan.Inline())
	assert.False(t, ElementP.Inline())
}

func TestTypographyRendersText(t *testing.T) {
	out := ansi.Strip(H1("Frontend").View())
	assert.Contains(t, out, "Frontend")
}

func TestTypographyLetterSpacesDisplaySizes(t *testing.T) {
	ctx := DefaultContext().WithWidth(130)
	out := ansi.Strip(H1("Frontend").ViewWithContext(ctx))

	assert.Contains(t, out, "F r o n t e n d")
}

func TestTypographyNestedSpans(t *testing.T) {
	p := NewTypography(KindParagraph,
		Fragment("Crafting "),
		GradientText("4+ years").WithClassName("font-semibold"),
		Fragment(" specializing"),
	)

	out := ansi.Strip(p.View())
	assert.Contains(t, out, "Crafting 4+ years specializing")
	assert.Equal(t, "Crafting 4+ years specializing", p.Content())
}

func TestSectionTitleDrawsAccentBar(t *testing.T) {
	out := ansi.Strip(SectionTitle("About Me").View())

	assert.Contains(t, out, "About Me")
	assert.Contains(t, out, strings.Repeat("━", 10))
	assert.Less(t, strings.Index(out, "About Me"), strings.Index(out, "━"), "bar sits under the title")
}

func TestAnimatedTextUnderline(t *testing.T) {
	out := ansi.Strip(AnimatedText("hello").View())
	assert.Equal(t, "hello\n─────", out)
}

func TestHeroTitleRingFollowsFrame(t *testing.T) {
	hero := HeroTitle("Frontend").WithAnimate(true)

	first := ansi.Strip(hero.View())
	assert.True(t, strings.HasPrefix(first, RingSpinner.Frames[0]))

	next := ansi.Strip(hero.ViewWithContext(DefaultContext().WithFrame(1)))
	assert.True(t, strings.HasPrefix(next, RingSpinner.Frames[1]))

	still := ansi.Strip(HeroTitle("Frontend").View())
	assert.False(t, strings.HasPrefix(still, RingSpinner.Frames[0]))
}

func TestTypographyHiddenClass(t *testing.T) {
	assert.Empty(t, H1("x").WithClassName("hidden").View())
	assert.NotEmpty(t, H1("x").WithClassName("hidden sm:block").View())
}

func TestTypographyFluentAPI(t *testing.T) {
	h := H3("Title").WithGradient(false).WithAnimate(true).WithClassName("mb-0").WithAttr("id", "about")

	assert.Equal(t, KindH3, h.Kind())
	assert.Equal(t, "about", h.ID())
	assert.Equal(t, Options{Gradient: false, Animate: true, ClassName: "mb-0", Attrs: Attrs{"id": "about"}}, h.Options())

	h.WithClassName("text-center")
	assert.Equal(t, "mb-0 text-center", h.Options().ClassName)
}

func TestTypographyUsesContextScale(t *testing.T) {
	h := H2("Experience")

	display := h.Variant(DefaultContext())
	compact := h.Variant(DefaultContext().WithScale(CompactScale()))

	assert.True(t, display.Classes.Has("mb-16"))
	assert.True(t, compact.Classes.Has("mb-8"))
	assert.False(t, compact.Classes.Has("lg:text-8xl"))
}
