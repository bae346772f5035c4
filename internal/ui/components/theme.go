package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const paletteShadeCount = 10

// PaletteShades is a Tailwind-style colour scale, lightest (50) to darkest (900).
type PaletteShades struct {
	colors [paletteShadeCount]lipgloss.Color
}

// NewPaletteShades creates a shade scale from up to ten colours ordered lightest first.
func NewPaletteShades(colors ...lipgloss.Color) PaletteShades {
	var shades PaletteShades
	for i := 0; i < paletteShadeCount && i < len(colors); i++ {
		shades.colors[i] = colors[i]
	}
	return shades
}

// Color returns the colour at shade, or "" when shade is out of range.
func (ps PaletteShades) Color(shade PaletteShade) lipgloss.Color {
	index := int(shade)
	if index < 0 || index >= paletteShadeCount {
		return ""
	}
	return ps.colors[index]
}

// ColorPalette holds every colour family the utility classes can name.
type ColorPalette struct {
	Slate  PaletteShades
	Orange PaletteShades
	Red    PaletteShades
	Yellow PaletteShades
	Purple PaletteShades
	Pink   PaletteShades
	Blue   PaletteShades
	Green  PaletteShades
	Cyan   PaletteShades
}

func (cp ColorPalette) Shades(family PaletteFamily) PaletteShades {
	switch family {
	case PaletteSlate:
		return cp.Slate
	case PaletteOrange:
		return cp.Orange
	case PaletteRed:
		return cp.Red
	case PaletteYellow:
		return cp.Yellow
	case PalettePurple:
		return cp.Purple
	case PalettePink:
		return cp.Pink
	case PaletteBlue:
		return cp.Blue
	case PaletteGreen:
		return cp.Green
	case PaletteCyan:
		return cp.Cyan
	default:
		return cp.Slate
	}
}

type PaletteFamily int

const (
	PaletteSlate PaletteFamily = iota
	PaletteOrange
	PaletteRed
	PaletteYellow
	PalettePurple
	PalettePink
	PaletteBlue
	PaletteGreen
	PaletteCyan
)

var paletteFamilyNames = map[string]PaletteFamily{
	"slate":  PaletteSlate,
	"orange": PaletteOrange,
	"red":    PaletteRed,
	"yellow": PaletteYellow,
	"purple": PalettePurple,
	"pink":   PalettePink,
	"blue":   PaletteBlue,
	"green":  PaletteGreen,
	"cyan":   PaletteCyan,
}

// ParsePaletteFamily maps a Tailwind family name ("orange") to its PaletteFamily.
func ParsePaletteFamily(name string) (PaletteFamily, bool) {
	family, ok := paletteFamilyNames[name]
	return family, ok
}

type PaletteShade int

const (
	PaletteShade50 PaletteShade = iota
	PaletteShade100
	PaletteShade200
	PaletteShade300
	PaletteShade400
	PaletteShade500
	PaletteShade600
	PaletteShade700
	PaletteShade800
	PaletteShade900
)

// ParsePaletteShade maps a Tailwind shade number ("500") to its PaletteShade.
func ParsePaletteShade(value string) (PaletteShade, bool) {
	switch value {
	case "50":
		return PaletteShade50, true
	case "100":
		return PaletteShade100, true
	case "200":
		return PaletteShade200, true
	case "300":
		return PaletteShade300, true
	case "400":
		return PaletteShade400, true
	case "500":
		return PaletteShade500, true
	case "600":
		return PaletteShade600, true
	case "700":
		return PaletteShade700, true
	case "800":
		return PaletteShade800, true
	case "900":
		return PaletteShade900, true
	default:
		return 0, false
	}
}

const (
	colorWhite lipgloss.Color = "#ffffff"
	colorBlack lipgloss.Color = "#000000"
)

// ThemeMode selects between the two page themes.
type ThemeMode int

const (
	ThemeDark ThemeMode = iota
	ThemeLight
)

// Toggle flips Dark and Light.
func (m ThemeMode) Toggle() ThemeMode {
	if m == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

func (m ThemeMode) String() string {
	if m == ThemeLight {
		return "light"
	}
	return "dark"
}

// ParseThemeMode accepts "dark" or "light", case-insensitively.
func ParseThemeMode(value string) (ThemeMode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "dark":
		return ThemeDark, nil
	case "light":
		return ThemeLight, nil
	default:
		return ThemeDark, fmt.Errorf("unknown theme mode %q", value)
	}
}

// ThemeClasses is the set of semantic utility class lists the page reads for a theme.
type ThemeClasses struct {
	Background        string
	CardBackground    string
	Text              string
	TextSecondary     string
	TextMuted         string
	Border            string
	NavBackground     string
	SectionBackground string
}

// Values lists every slot in declaration order.
func (c ThemeClasses) Values() []string {
	return []string{
		c.Background,
		c.CardBackground,
		c.Text,
		c.TextSecondary,
		c.TextMuted,
		c.Border,
		c.NavBackground,
		c.SectionBackground,
	}
}

var themeClassTable = [...]ThemeClasses{
	ThemeDark: {
		Background:        "bg-slate-900",
		CardBackground:    "from-slate-800 to-slate-900",
		Text:              "text-white",
		TextSecondary:     "text-slate-300",
		TextMuted:         "text-slate-400",
		Border:            "border-slate-700",
		NavBackground:     "bg-slate-900/80",
		SectionBackground: "from-slate-800/50 to-slate-900/50",
	},
	ThemeLight: {
		Background:        "bg-gradient-to-br from-orange-50 via-white to-red-50",
		CardBackground:    "from-white to-orange-50",
		Text:              "text-slate-900",
		TextSecondary:     "text-slate-700",
		TextMuted:         "text-slate-600",
		Border:            "border-orange-200",
		NavBackground:     "bg-white/80",
		SectionBackground: "from-orange-50/80 to-red-50/80",
	},
}

// ClassesFor returns the semantic class lists of mode. Unknown modes get the dark set.
func ClassesFor(mode ThemeMode) ThemeClasses {
	if mode < 0 || int(mode) >= len(themeClassTable) {
		return themeClassTable[ThemeDark]
	}
	return themeClassTable[mode]
}

type BorderVariant int

const (
	BorderVariantNormal BorderVariant = iota
	BorderVariantThick
	BorderVariantRounded
	BorderVariantDouble
	BorderVariantDashed
)

// BorderSet groups reusable border definitions.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
	Double  lipgloss.Border
	Dashed  lipgloss.Border
}

func dashedBorder() lipgloss.Border {
	return lipgloss.Border{
		Top:         "╌",
		Bottom:      "╌",
		Left:        "╎",
		Right:       "╎",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "╰",
		BottomRight: "╯",
	}
}

// ColourSet is a semantic colour combination: a base, readable content on it,
// a quieter variant and an accent.
type ColourSet struct {
	Base     lipgloss.Color
	OnBase   lipgloss.Color
	Muted    lipgloss.Color
	Contrast lipgloss.Color
}

// Palette describes semantic colour slots used by components.
type Palette struct {
	Primary   ColourSet
	Secondary ColourSet
	Surface   ColourSet
	Card      ColourSet
	Neutral   ColourSet
}

// VariantRegistry maps component variants to utility class lists, so a theme
// describes variants as data.
type VariantRegistry struct {
	classes map[any]Classes
}

// NewVariantRegistry creates an empty registry.
func NewVariantRegistry() *VariantRegistry {
	return &VariantRegistry{classes: make(map[any]Classes)}
}

// Register maps variant to the given class lists.
func (vr *VariantRegistry) Register(variant any, classes ...string) {
	vr.classes[variant] = Cn(classes...)
}

// Get returns the classes of variant, or nil when it was never registered.
func (vr *VariantRegistry) Get(variant any) Classes {
	if vr == nil {
		return nil
	}
	return vr.classes[variant]
}

// Theme is an immutable styling theme. Build one with ThemeFor and reuse it.
type Theme struct {
	Mode     ThemeMode
	Palette  Palette
	Colors   ColorPalette
	Borders  BorderSet
	Classes  ThemeClasses
	Variants *VariantRegistry
}

func defaultColors() ColorPalette {
	return ColorPalette{
		Slate: NewPaletteShades(
			"#f8fafc", "#f1f5f9", "#e2e8f0", "#cbd5e1", "#94a3b8",
			"#64748b", "#475569", "#334155", "#1e293b", "#0f172a",
		),
		Orange: NewPaletteShades(
			"#fff7ed", "#ffedd5", "#fed7aa", "#fdba74", "#fb923c",
			"#f97316", "#ea580c", "#c2410c", "#9a3412", "#7c2d12",
		),
		Red: NewPaletteShades(
			"#fef2f2", "#fee2e2", "#fecaca", "#fca5a5", "#f87171",
			"#ef4444", "#dc2626", "#b91c1c", "#991b1b", "#7f1d1d",
		),
		Yellow: NewPaletteShades(
			"#fefce8", "#fef9c3", "#fef08a", "#fde047", "#facc15",
			"#eab308", "#ca8a04", "#a16207", "#854d0e", "#713f12",
		),
		Purple: NewPaletteShades(
			"#faf5ff", "#f3e8ff", "#e9d5ff", "#d8b4fe", "#c084fc",
			"#a855f7", "#9333ea", "#7e22ce", "#6b21a8", "#581c87",
		),
		Pink: NewPaletteShades(
			"#fdf2f8", "#fce7f3", "#fbcfe8", "#f9a8d4", "#f472b6",
			"#ec4899", "#db2777", "#be185d", "#9d174d", "#831843",
		),
		Blue: NewPaletteShades(
			"#eff6ff", "#dbeafe", "#bfdbfe", "#93c5fd", "#60a5fa",
			"#3b82f6", "#2563eb", "#1d4ed8", "#1e40af", "#1e3a8a",
		),
		Green: NewPaletteShades(
			"#f0fdf4", "#dcfce7", "#bbf7d0", "#86efac", "#4ade80",
			"#22c55e", "#16a34a", "#15803d", "#166534", "#14532d",
		),
		Cyan: NewPaletteShades(
			"#ecfeff", "#cffafe", "#a5f3fc", "#67e8f9", "#22d3ee",
			"#06b6d4", "#0891b2", "#0e7490", "#155e75", "#164e63",
		),
	}
}

func darkPalette(c ColorPalette) Palette {
	return Palette{
		Primary: ColourSet{
			Base:     c.Orange.Color(PaletteShade500),
			OnBase:   colorWhite,
			Muted:    c.Orange.Color(PaletteShade600),
			Contrast: c.Red.Color(PaletteShade500),
		},
		Secondary: ColourSet{
			Base:     c.Slate.Color(PaletteShade800),
			OnBase:   c.Slate.Color(PaletteShade200),
			Muted:    c.Slate.Color(PaletteShade700),
			Contrast: c.Slate.Color(PaletteShade600),
		},
		Surface: ColourSet{
			Base:     c.Slate.Color(PaletteShade900),
			OnBase:   colorWhite,
			Muted:    c.Slate.Color(PaletteShade800),
			Contrast: c.Orange.Color(PaletteShade500),
		},
		Card: ColourSet{
			Base:     c.Slate.Color(PaletteShade800),
			OnBase:   colorWhite,
			Muted:    c.Slate.Color(PaletteShade900),
			Contrast: c.Slate.Color(PaletteShade700),
		},
		Neutral: ColourSet{
			Base:     c.Slate.Color(PaletteShade400),
			OnBase:   c.Slate.Color(PaletteShade300),
			Muted:    c.Slate.Color(PaletteShade700),
			Contrast: colorWhite,
		},
	}
}

func lightPalette(c ColorPalette) Palette {
	return Palette{
		Primary: ColourSet{
			Base:     c.Orange.Color(PaletteShade500),
			OnBase:   colorWhite,
			Muted:    c.Orange.Color(PaletteShade600),
			Contrast: c.Red.Color(PaletteShade600),
		},
		Secondary: ColourSet{
			Base:     c.Orange.Color(PaletteShade50),
			OnBase:   c.Slate.Color(PaletteShade700),
			Muted:    colorWhite,
			Contrast: c.Orange.Color(PaletteShade200),
		},
		Surface: ColourSet{
			Base:     colorWhite,
			OnBase:   c.Slate.Color(PaletteShade900),
			Muted:    c.Orange.Color(PaletteShade50),
			Contrast: c.Orange.Color(PaletteShade600),
		},
		Card: ColourSet{
			Base:     colorWhite,
			OnBase:   c.Slate.Color(PaletteShade900),
			Muted:    c.Orange.Color(PaletteShade50),
			Contrast: c.Orange.Color(PaletteShade200),
		},
		Neutral: ColourSet{
			Base:     c.Slate.Color(PaletteShade600),
			OnBase:   c.Slate.Color(PaletteShade700),
			Muted:    c.Orange.Color(PaletteShade200),
			Contrast: c.Slate.Color(PaletteShade900),
		},
	}
}

// ThemeFor builds the theme of mode.
func ThemeFor(mode ThemeMode) Theme {
	if mode != ThemeLight {
		mode = ThemeDark
	}

	colors := defaultColors()
	palette := darkPalette(colors)
	if mode == ThemeLight {
		palette = lightPalette(colors)
	}

	variants := NewVariantRegistry()
	registerButtonVariants(variants, mode)
	registerBadgeVariants(variants, mode)
	registerAlertVariants(variants)

	return Theme{
		Mode:    mode,
		Palette: palette,
		Colors:  colors,
		Borders: BorderSet{
			None:    lipgloss.Border{},
			Normal:  lipgloss.NormalBorder(),
			Rounded: lipgloss.RoundedBorder(),
			Thick:   lipgloss.ThickBorder(),
			Double:  lipgloss.DoubleBorder(),
			Dashed:  dashedBorder(),
		},
		Classes:  ClassesFor(mode),
		Variants: variants,
	}
}

// DarkTheme is the page's initial theme.
func DarkTheme() Theme {
	return ThemeFor(ThemeDark)
}

// LightTheme returns the light theme.
func LightTheme() Theme {
	return ThemeFor(ThemeLight)
}

// DefaultTheme returns the dark theme.
func DefaultTheme() Theme {
	return DarkTheme()
}

func registerButtonVariants(registry *VariantRegistry, mode ThemeMode) {
	registry.Register(ButtonVariantPrimary,
		"bg-gradient-to-r from-orange-500 to-red-500 text-white font-medium")
	registry.Register(ButtonVariantOutline,
		"border-2 border-orange-500 text-orange-500 font-medium")

	ghost := "text-slate-300"
	if mode == ThemeLight {
		ghost = "text-slate-700"
	}
	registry.Register(ButtonVariantGhost, ghost)

	registry.Register(ButtonSizeDefault, "px-4")
	registry.Register(ButtonSizeSmall, "px-2")
	registry.Register(ButtonSizeLarge, "px-8")
}

func registerBadgeVariants(registry *VariantRegistry, mode ThemeMode) {
	registry.Register(BadgeVariantDefault, "bg-orange-500 text-white px-2 font-semibold")

	if mode == ThemeLight {
		registry.Register(BadgeVariantSecondary,
			"bg-gradient-to-r from-white to-orange-50 text-slate-700 px-2")
		registry.Register(BadgeVariantOutline, "border border-orange-200 text-slate-700 px-1")
		return
	}
	registry.Register(BadgeVariantSecondary,
		"bg-gradient-to-r from-slate-800 to-slate-700 text-slate-200 px-2")
	registry.Register(BadgeVariantOutline, "border border-slate-600 text-slate-200 px-1")
}

func registerAlertVariants(registry *VariantRegistry) {
	registry.Register(AlertVariantWarning, "border border-yellow-500 text-yellow-400 px-2")
	registry.Register(AlertVariantInfo, "border border-orange-500 text-orange-400 px-2")
}

// PaletteColor returns the colour of family at shade.
func PaletteColor(theme Theme, family PaletteFamily, shade PaletteShade) (lipgloss.Color, bool) {
	color := theme.Colors.Shades(family).Color(shade)
	if color == "" {
		return "", false
	}
	return color, true
}

// BorderForVariant returns the border of variant from theme.
func BorderForVariant(theme Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return theme.Borders.Normal
	case BorderVariantThick:
		return theme.Borders.Thick
	case BorderVariantDouble:
		return theme.Borders.Double
	case BorderVariantRounded:
		return theme.Borders.Rounded
	case BorderVariantDashed:
		return theme.Borders.Dashed
	default:
		return theme.Borders.None
	}
}

// PaletteSlot selects a semantic colour set from a Palette.
type PaletteSlot func(Palette) ColourSet

var (
	PalettePrimary   PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSecondary PaletteSlot = func(p Palette) ColourSet { return p.Secondary }
	PaletteSurface   PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteCard      PaletteSlot = func(p Palette) ColourSet { return p.Card }
	PaletteNeutral   PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
)

// Background applies a slot's base colour with its matching foreground.
//
//	card := NewCard().WithAppliers(Background(PaletteCard))
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a slot's base colour as text colour only.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Base)
	}
}

// BorderColor colours an existing border with a slot's contrast colour.
func BorderColor(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.BorderForeground(slot(theme.Palette).Contrast)
	}
}

// Border applies a border from the theme.
func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(BorderForVariant(theme, variant))
	}
}

func PaddingX(cols int) StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.PaddingLeft(cols).PaddingRight(cols)
	}
}

func MarginBottom(rows int) StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.MarginBottom(rows)
	}
}

// TextPalette creates a style with a foreground colour from a palette shade.
func TextPalette(theme Theme, family PaletteFamily, shade PaletteShade) lipgloss.Style {
	if color, ok := PaletteColor(theme, family, shade); ok {
		return lipgloss.NewStyle().Foreground(color)
	}
	return lipgloss.NewStyle()
}
