package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeModeToggle(t *testing.T) {
	for _, mode := range []ThemeMode{ThemeDark, ThemeLight} {
		assert.NotEqual(t, mode, mode.Toggle())
		assert.Equal(t, mode, mode.Toggle().Toggle())
	}
	assert.Equal(t, ThemeLight, ThemeDark.Toggle())
}

func TestParseThemeMode(t *testing.T) {
	mode, err := ParseThemeMode(" Light ")
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, mode)

	mode, err = ParseThemeMode("dark")
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, mode)

	_, err = ParseThemeMode("blue")
	assert.Error(t, err)
}

func TestThemeClassesComplete(t *testing.T) {
	for _, mode := range []ThemeMode{ThemeDark, ThemeLight} {
		values := ClassesFor(mode).Values()
		require.Len(t, values, 8)
		for i, value := range values {
			assert.NotEmpty(t, value, "%s slot %d", mode, i)
		}
	}
}

func TestThemeClassesValues(t *testing.T) {
	dark := ClassesFor(ThemeDark)
	assert.Equal(t, "bg-slate-900", dark.Background)
	assert.Equal(t, "text-white", dark.Text)
	assert.Equal(t, "border-slate-700", dark.Border)

	light := ClassesFor(ThemeLight)
	assert.Equal(t, "bg-gradient-to-br from-orange-50 via-white to-red-50", light.Background)
	assert.Equal(t, "text-slate-900", light.Text)
	assert.Equal(t, "border-orange-200", light.Border)

	assert.Equal(t, dark, ClassesFor(ThemeMode(7)), "unknown modes fall back to dark")
}

func TestThemeFor(t *testing.T) {
	dark := DarkTheme()
	light := LightTheme()

	assert.Equal(t, ThemeDark, dark.Mode)
	assert.Equal(t, ThemeLight, light.Mode)
	assert.Equal(t, ClassesFor(ThemeLight), light.Classes)
	assert.NotEqual(t, dark.Palette.Surface.Base, light.Palette.Surface.Base)
	assert.Equal(t, dark.Mode, DefaultTheme().Mode)
	assert.Equal(t, lipgloss.RoundedBorder(), dark.Borders.Rounded)
}

func TestThemeVariants(t *testing.T) {
	dark := DarkTheme()
	light := LightTheme()

	assert.True(t, dark.Variants.Get(ButtonVariantPrimary).Has("from-orange-500"))
	assert.True(t, dark.Variants.Get(ButtonSizeLarge).Has("px-8"))
	assert.True(t, dark.Variants.Get(AlertVariantWarning).Has("border"))
	assert.True(t, dark.Variants.Get(BadgeVariantSecondary).Has("text-slate-200"))
	assert.True(t, light.Variants.Get(BadgeVariantSecondary).Has("text-slate-700"))

	var nilRegistry *VariantRegistry
	assert.Nil(t, nilRegistry.Get(ButtonVariantPrimary))
	assert.Nil(t, NewVariantRegistry().Get(ButtonVariantPrimary))
}

func TestPaletteColor(t *testing.T) {
	theme := DefaultTheme()

	color, ok := PaletteColor(theme, PaletteOrange, PaletteShade500)
	assert.True(t, ok)
	assert.Equal(t, lipgloss.Color("#f97316"), color)

	_, ok = PaletteColor(theme, PaletteOrange, PaletteShade(99))
	assert.False(t, ok, "out-of-range shades should report missing")
}

func TestParsePalette(t *testing.T) {
	family, ok := ParsePaletteFamily("purple")
	assert.True(t, ok)
	assert.Equal(t, PalettePurple, family)

	_, ok = ParsePaletteFamily("teal")
	assert.False(t, ok)

	shade, ok := ParsePaletteShade("900")
	assert.True(t, ok)
	assert.Equal(t, PaletteShade900, shade)
}

func TestBorderForVariant(t *testing.T) {
	theme := DefaultTheme()
	assert.Equal(t, lipgloss.NormalBorder(), BorderForVariant(theme, BorderVariantNormal))
	assert.Equal(t, lipgloss.DoubleBorder(), BorderForVariant(theme, BorderVariantDouble))
	assert.Equal(t, dashedBorder(), BorderForVariant(theme, BorderVariantDashed))
	assert.Equal(t, lipgloss.Border{}, BorderForVariant(theme, BorderVariant(42)))
}

func TestStyleFuncs(t *testing.T) {
	theme := DarkTheme()
	style := NewCompositeStrategy(Background(PalettePrimary), PaddingX(2)).Apply(lipgloss.NewStyle(), theme)

	assert.Equal(t, theme.Palette.Primary.Base, style.GetBackground())
	assert.Equal(t, theme.Palette.Primary.OnBase, style.GetForeground())
	assert.Equal(t, 2, style.GetPaddingLeft())
}
