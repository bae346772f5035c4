package components

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Classes is an ordered list of utility class tokens. Later tokens win.
type Classes []string

// Cn joins class lists the way cn() does in web code: every input is split on
// whitespace, empty inputs vanish and order is kept so callers can override.
func Cn(inputs ...string) Classes {
	var out Classes
	for _, input := range inputs {
		out = append(out, strings.Fields(input)...)
	}
	return out
}

func (c Classes) String() string {
	return strings.Join(c, " ")
}

// Has reports whether token is present.
func (c Classes) Has(token string) bool {
	for _, t := range c {
		if t == token {
			return true
		}
	}
	return false
}

// HasAll reports whether every token of other is present.
func (c Classes) HasAll(other Classes) bool {
	for _, t := range other {
		if !c.Has(t) {
			return false
		}
	}
	return true
}

// HasAny reports whether at least one token of other is present.
func (c Classes) HasAny(other Classes) bool {
	for _, t := range other {
		if c.Has(t) {
			return true
		}
	}
	return false
}

// With returns a new list with extra class lists appended.
func (c Classes) With(extra ...string) Classes {
	out := make(Classes, len(c), len(c)+len(extra))
	copy(out, c)
	return append(out, Cn(extra...)...)
}

// TextSize is the text-{size} scale.
type TextSize int

const (
	TextXS TextSize = iota
	TextSM
	TextBase
	TextLG
	TextXL
	Text2XL
	Text3XL
	Text4XL
	Text5XL
	Text6XL
	Text7XL
	Text8XL
	Text9XL
)

var textSizes = map[string]TextSize{
	"xs": TextXS, "sm": TextSM, "base": TextBase, "lg": TextLG, "xl": TextXL,
	"2xl": Text2XL, "3xl": Text3XL, "4xl": Text4XL, "5xl": Text5XL,
	"6xl": Text6XL, "7xl": Text7XL, "8xl": Text8XL, "9xl": Text9XL,
}

// FontWeight is the font-{weight} scale.
type FontWeight int

const (
	WeightThin FontWeight = iota
	WeightExtraLight
	WeightLight
	WeightNormal
	WeightMedium
	WeightSemibold
	WeightBold
	WeightExtraBold
)

var fontWeights = map[string]FontWeight{
	"thin": WeightThin, "extralight": WeightExtraLight, "light": WeightLight,
	"normal": WeightNormal, "medium": WeightMedium, "semibold": WeightSemibold,
	"bold": WeightBold, "extrabold": WeightExtraBold, "black": WeightExtraBold,
}

// rem widths of the max-w-{size} scale.
var maxWidthRem = map[string]int{
	"xs": 20, "sm": 24, "md": 28, "lg": 32, "xl": 36, "2xl": 42,
	"3xl": 48, "4xl": 56, "5xl": 64, "6xl": 72, "7xl": 80,
}

var breakpointPrefixes = map[string]Breakpoint{
	"sm": BreakpointSM,
	"md": BreakpointMD,
	"lg": BreakpointLG,
	"xl": BreakpointXL,
}

// Display sizes get one blank between letters.
const spacedTextSize = Text6XL

// Gradient holds the from/via/to stops of a bg-gradient-to-* utility.
type Gradient struct {
	Direction string
	From      lipgloss.Color
	Via       lipgloss.Color
	To        lipgloss.Color
}

// Active reports whether a gradient direction and at least one stop were given.
func (g Gradient) Active() bool {
	return g.Direction != "" && len(g.Stops()) > 0
}

// Stops returns the set stops in order.
func (g Gradient) Stops() []lipgloss.Color {
	stops := make([]lipgloss.Color, 0, 3)
	for _, stop := range []lipgloss.Color{g.From, g.Via, g.To} {
		if stop != "" {
			stops = append(stops, stop)
		}
	}
	return stops
}

// At returns the colour at t in [0, 1] along the stops, or "" without stops.
func (g Gradient) At(t float64) lipgloss.Color {
	blend := make([]colorful.Color, 0, 3)
	for _, stop := range g.Stops() {
		if color, err := colorful.Hex(string(stop)); err == nil {
			blend = append(blend, color)
		}
	}
	if len(blend) == 0 {
		return ""
	}
	t = math.Max(0, math.Min(1, t))
	return lipgloss.Color(blendAt(blend, t).Hex())
}

type borderSides uint8

const (
	sideTop borderSides = 1 << iota
	sideRight
	sideBottom
	sideLeft

	sidesAll = sideTop | sideRight | sideBottom | sideLeft
)

// Compiled is the lipgloss rendition of a class list.
type Compiled struct {
	Style     lipgloss.Style
	Size      TextSize
	Weight    FontWeight
	Gradient  Gradient
	ClipText  bool
	Width     int
	Height    int
	MaxWidth  int
	Animation string
	Hidden    bool

	transparentText bool
	sides           borderSides
	borderWidth     int
	borderKind      BorderVariant
	rounded         bool
	borderColor     lipgloss.Color
	surface         lipgloss.Color
}

// Compile walks classes left to right on top of base. Responsive prefixes apply
// when ctx is at least that wide; hover and other state prefixes never apply.
// Unknown and purely structural tokens are ignored.
func Compile(base lipgloss.Style, classes Classes, ctx RenderContext) Compiled {
	c := Compiled{
		Style:       base,
		Size:        TextBase,
		Weight:      WeightNormal,
		borderWidth: 1,
		borderKind:  BorderVariantNormal,
		surface:     ctx.Theme.Palette.Surface.Base,
	}
	if base.GetBold() {
		c.Weight = WeightBold
	}
	if parent := ctx.inherit; parent != nil {
		c.Size = parent.Size
		c.Weight = parent.Weight
		c.Style = c.Style.Italic(parent.Style.GetItalic())
		if fg := parent.Style.GetForeground(); fg != (lipgloss.NoColor{}) {
			c.Style = c.Style.Foreground(fg)
		}
	}

	bp := ctx.Breakpoint()
	for _, raw := range classes {
		token, ok := activeToken(raw, bp)
		if !ok {
			continue
		}
		c.apply(token, ctx.Theme)
	}
	c.finish(ctx.Theme)
	return c
}

func activeToken(raw string, bp Breakpoint) (string, bool) {
	raw = strings.TrimPrefix(raw, "!")
	parts := strings.Split(raw, ":")
	token := parts[len(parts)-1]
	for _, prefix := range parts[:len(parts)-1] {
		from, ok := breakpointPrefixes[prefix]
		if !ok || bp < from {
			return "", false
		}
	}
	return token, token != ""
}

func (c *Compiled) apply(token string, theme Theme) {
	switch token {
	case "italic":
		c.Style = c.Style.Italic(true)
		return
	case "not-italic":
		c.Style = c.Style.Italic(false)
		return
	case "underline":
		c.Style = c.Style.Underline(true)
		return
	case "no-underline":
		c.Style = c.Style.Underline(false)
		return
	case "line-through":
		c.Style = c.Style.Strikethrough(true)
		return
	case "uppercase":
		c.Style = c.Style.Transform(strings.ToUpper)
		return
	case "text-transparent":
		c.transparentText = true
		return
	case "bg-clip-text":
		c.ClipText = true
		return
	case "bg-transparent":
		c.Style = c.Style.UnsetBackground()
		return
	case "hidden":
		c.Hidden = true
		return
	case "block", "inline", "inline-block", "flex", "inline-flex", "grid":
		c.Hidden = false
		return
	case "mx-auto", "text-center":
		c.Style = c.Style.Align(lipgloss.Center)
		return
	case "text-left":
		c.Style = c.Style.Align(lipgloss.Left)
		return
	case "text-right":
		c.Style = c.Style.Align(lipgloss.Right)
		return
	}

	switch {
	case strings.HasPrefix(token, "bg-gradient-to-"):
		c.Gradient.Direction = strings.TrimPrefix(token, "bg-gradient-to-")
	case strings.HasPrefix(token, "from-"):
		c.Gradient.From = c.stopColor(strings.TrimPrefix(token, "from-"), theme)
	case strings.HasPrefix(token, "via-"):
		c.Gradient.Via = c.stopColor(strings.TrimPrefix(token, "via-"), theme)
	case strings.HasPrefix(token, "to-"):
		c.Gradient.To = c.stopColor(strings.TrimPrefix(token, "to-"), theme)
	case strings.HasPrefix(token, "font-"):
		if weight, ok := fontWeights[strings.TrimPrefix(token, "font-")]; ok {
			c.Weight = weight
		}
	case strings.HasPrefix(token, "text-"):
		c.applyText(strings.TrimPrefix(token, "text-"), theme)
	case strings.HasPrefix(token, "bg-"):
		if color, ok := ResolveColor(theme, strings.TrimPrefix(token, "bg-")); ok {
			c.Style = c.Style.Background(color)
		}
	case token == "border" || strings.HasPrefix(token, "border-"):
		c.applyBorder(strings.TrimPrefix(strings.TrimPrefix(token, "border"), "-"), theme)
	case token == "rounded" || strings.HasPrefix(token, "rounded-"):
		c.rounded = token != "rounded-none"
	case strings.HasPrefix(token, "max-w-"):
		c.MaxWidth = maxWidthRem[strings.TrimPrefix(token, "max-w-")] * 2
	case strings.HasPrefix(token, "w-"):
		if units, ok := parseUnits(strings.TrimPrefix(token, "w-")); ok {
			c.Width = colsFor(units)
		}
	case strings.HasPrefix(token, "h-"):
		if units, ok := parseUnits(strings.TrimPrefix(token, "h-")); ok {
			c.Height = int(math.Ceil(units / 4))
		}
	case strings.HasPrefix(token, "animate-"):
		c.Animation = strings.TrimPrefix(token, "animate-")
	default:
		c.applySpacing(token)
	}
}

func (c *Compiled) applyText(value string, theme Theme) {
	if size, ok := textSizes[value]; ok {
		c.Size = size
		return
	}
	if color, ok := ResolveColor(theme, value); ok {
		c.Style = c.Style.Foreground(color)
		c.transparentText = false
	}
}

func (c *Compiled) applyBorder(value string, theme Theme) {
	if value == "" {
		c.sides = sidesAll
		return
	}

	side, width, _ := strings.Cut(value, "-")
	sides := map[string]borderSides{
		"t": sideTop, "r": sideRight, "b": sideBottom, "l": sideLeft,
		"x": sideLeft | sideRight, "y": sideTop | sideBottom,
	}
	if s, ok := sides[side]; ok {
		if width == "0" {
			c.sides &^= s
			return
		}
		c.sides |= s
		if n, err := strconv.Atoi(width); err == nil {
			c.borderWidth = n
		}
		return
	}

	if n, err := strconv.Atoi(value); err == nil {
		if n == 0 {
			c.sides = 0
			return
		}
		c.sides = sidesAll
		c.borderWidth = n
		return
	}

	switch value {
	case "dashed", "dotted":
		c.borderKind = BorderVariantDashed
	case "double":
		c.borderKind = BorderVariantDouble
	case "solid":
		c.borderKind = BorderVariantNormal
	default:
		if color, ok := ResolveColor(theme, value); ok {
			c.borderColor = color
		}
	}
}

func (c *Compiled) applySpacing(token string) {
	negative := strings.HasPrefix(token, "-")
	token = strings.TrimPrefix(token, "-")

	name, value, ok := strings.Cut(token, "-")
	if !ok || len(name) == 0 || len(name) > 2 || (name[0] != 'm' && name[0] != 'p') {
		return
	}
	if negative {
		return
	}
	units, ok := parseUnits(value)
	if !ok {
		return
	}
	rows, cols := rowsFor(units), colsFor(units)

	margin := name[0] == 'm'
	axis := name[1:]
	s := c.Style
	switch axis {
	case "":
		if margin {
			s = s.Margin(rows, cols)
		} else {
			s = s.Padding(rows, cols)
		}
	case "x":
		if margin {
			s = s.MarginLeft(cols).MarginRight(cols)
		} else {
			s = s.PaddingLeft(cols).PaddingRight(cols)
		}
	case "y":
		if margin {
			s = s.MarginTop(rows).MarginBottom(rows)
		} else {
			s = s.PaddingTop(rows).PaddingBottom(rows)
		}
	case "t":
		if margin {
			s = s.MarginTop(rows)
		} else {
			s = s.PaddingTop(rows)
		}
	case "b":
		if margin {
			s = s.MarginBottom(rows)
		} else {
			s = s.PaddingBottom(rows)
		}
	case "l":
		if margin {
			s = s.MarginLeft(cols)
		} else {
			s = s.PaddingLeft(cols)
		}
	case "r":
		if margin {
			s = s.MarginRight(cols)
		} else {
			s = s.PaddingRight(cols)
		}
	default:
		return
	}
	c.Style = s
}

func (c *Compiled) stopColor(value string, theme Theme) lipgloss.Color {
	if strings.HasPrefix(value, "transparent") {
		return c.surface
	}
	color, _ := ResolveColor(theme, value)
	return color
}

func (c *Compiled) finish(theme Theme) {
	c.Style = c.Style.
		Bold(c.Weight >= WeightMedium).
		Faint(c.Weight <= WeightExtraLight)

	if c.sides == 0 {
		return
	}
	kind := c.borderKind
	switch {
	case kind == BorderVariantNormal && c.borderWidth >= 2:
		kind = BorderVariantThick
	case kind == BorderVariantNormal && c.rounded:
		kind = BorderVariantRounded
	}
	c.Style = c.Style.Border(
		BorderForVariant(theme, kind),
		c.sides&sideTop != 0,
		c.sides&sideRight != 0,
		c.sides&sideBottom != 0,
		c.sides&sideLeft != 0,
	)
	if c.borderColor != "" {
		c.Style = c.Style.BorderForeground(c.borderColor)
	}
}

// Spaced reports whether the size is large enough to letter-space.
func (c Compiled) Spaced() bool {
	return c.Size >= spacedTextSize
}

// GradientText reports whether the gradient paints glyphs rather than cells.
func (c Compiled) GradientText() bool {
	return c.ClipText && c.Gradient.Active()
}

// Text paints s without any box properties, for use inside a larger line.
func (c Compiled) Text(s string) string {
	if c.Hidden {
		return ""
	}
	if c.Spaced() {
		s = letterSpace(s)
	}

	inline := lipgloss.NewStyle().
		Bold(c.Style.GetBold()).
		Faint(c.Style.GetFaint()).
		Italic(c.Style.GetItalic()).
		Underline(c.Style.GetUnderline()).
		Strikethrough(c.Style.GetStrikethrough())
	if t := c.Style.GetTransform(); t != nil {
		s = t(s)
	}

	switch {
	case c.GradientText():
		return paintGradient(s, c.Gradient.Stops(), inline, true)
	case c.Gradient.Active() && !c.ClipText:
		return paintGradient(s, c.Gradient.Stops(), inline.Foreground(c.Style.GetForeground()), false)
	}
	return inline.
		Foreground(c.Style.GetForeground()).
		Background(c.Style.GetBackground()).
		Render(s)
}

// Render paints s and wraps it in the box properties: padding, border, margin.
func (c Compiled) Render(s string) string {
	return c.RenderWithin(s, 0)
}

// RenderWithin is Render with text wrapped to fit width columns, border and
// spacing included. A width of zero or less means no limit beyond max-w-*.
func (c Compiled) RenderWithin(s string, width int) string {
	if c.Hidden {
		return ""
	}
	if inner := c.innerWidth(width); inner > 0 {
		if c.Spaced() {
			inner /= 2
		}
		s = wrapText(s, inner)
	}
	return c.box().Render(c.Text(s))
}

// Frame wraps content that was already painted, for example a line mixing
// several Text calls, in the box properties.
func (c Compiled) Frame(content string, width int) string {
	if c.Hidden {
		return ""
	}
	if inner := c.innerWidth(width); inner > 0 {
		content = wrapText(content, inner)
	}
	return c.box().Render(content)
}

func (c Compiled) innerWidth(width int) int {
	limit := c.MaxWidth
	if width > 0 && (limit == 0 || width < limit) {
		limit = width
	}
	if limit <= 0 {
		return 0
	}
	return limit - c.Style.GetHorizontalFrameSize()
}

func (c Compiled) box() lipgloss.Style {
	if c.GradientText() || c.transparentText {
		return c.Style.UnsetForeground().UnsetBackground()
	}
	return c.Style
}

// WithoutMargins returns a copy with every margin removed.
func (c Compiled) WithoutMargins() Compiled {
	c.Style = c.Style.UnsetMargins()
	return c
}

// Margins returns a style carrying only the margins.
func (c Compiled) Margins() lipgloss.Style {
	top, right, bottom, left := c.Style.GetMargin()
	return lipgloss.NewStyle().Margin(top, right, bottom, left)
}

// Bar paints a width-cell bar of glyph using the gradient, or the foreground
// when there is none.
func (c Compiled) Bar(glyph string, width int) string {
	if width <= 0 {
		return ""
	}
	bar := strings.Repeat(glyph, width)
	if c.Gradient.Active() {
		return paintGradient(bar, c.Gradient.Stops(), lipgloss.NewStyle(), true)
	}
	return lipgloss.NewStyle().Foreground(c.Style.GetForeground()).Render(bar)
}

// ResolveColor turns a colour token such as "orange-500", "orange-500/30" or
// "white" into a colour. Opacity suffixes are dropped.
func ResolveColor(theme Theme, token string) (lipgloss.Color, bool) {
	token, _, _ = strings.Cut(token, "/")
	switch token {
	case "white":
		return colorWhite, true
	case "black":
		return colorBlack, true
	}

	name, shadeValue, ok := strings.Cut(token, "-")
	if !ok {
		return "", false
	}
	family, ok := ParsePaletteFamily(name)
	if !ok {
		return "", false
	}
	shade, ok := ParsePaletteShade(shadeValue)
	if !ok {
		return "", false
	}
	return PaletteColor(theme, family, shade)
}

// parseUnits reads a Tailwind spacing value in 0.25rem units.
func parseUnits(value string) (float64, bool) {
	if value == "px" {
		return 0.25, true
	}
	n, err := strconv.ParseFloat(value, 64)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// One unit is 4px; a cell is 8px wide and 16px tall, and vertical rhythm is
// halved again so sections stay compact.
func colsFor(units float64) int {
	return int(math.Ceil(units / 2))
}

func rowsFor(units float64) int {
	return int((units + 4) / 8)
}

func letterSpace(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		runes := []rune(line)
		var b strings.Builder
		for j, r := range runes {
			if j > 0 {
				b.WriteRune(' ')
			}
			b.WriteRune(r)
		}
		lines[i] = b.String()
	}
	return strings.Join(lines, "\n")
}

func wrapText(s string, width int) string {
	wrapped := lipgloss.NewStyle().Width(width).Render(s)
	lines := strings.Split(wrapped, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(lines, "\n")
}

// paintGradient colours s cell by cell, left to right. Every line shares the
// same span so stacked lines line up.
func paintGradient(s string, stops []lipgloss.Color, style lipgloss.Style, foreground bool) string {
	blend := make([]colorful.Color, 0, len(stops))
	for _, stop := range stops {
		color, err := colorful.Hex(string(stop))
		if err != nil {
			continue
		}
		blend = append(blend, color)
	}
	if len(blend) == 0 {
		return style.Render(s)
	}

	lines := strings.Split(s, "\n")
	span := 0
	for _, line := range lines {
		if n := len([]rune(line)); n > span {
			span = n
		}
	}

	for i, line := range lines {
		var b strings.Builder
		for j, r := range []rune(line) {
			if foreground && r == ' ' {
				b.WriteRune(r)
				continue
			}
			hex := lipgloss.Color(blendAt(blend, position(j, span)).Hex())
			cell := style.Foreground(hex)
			if !foreground {
				cell = style.Background(hex)
			}
			b.WriteString(cell.Render(string(r)))
		}
		lines[i] = b.String()
	}
	return strings.Join(lines, "\n")
}

func position(index, span int) float64 {
	if span <= 1 {
		return 0
	}
	return float64(index) / float64(span-1)
}

func blendAt(stops []colorful.Color, t float64) colorful.Color {
	if len(stops) == 1 {
		return stops[0]
	}
	segment := t * float64(len(stops)-1)
	i := int(segment)
	if i >= len(stops)-1 {
		i = len(stops) - 2
	}
	return stops[i].BlendLab(stops[i+1], segment-float64(i)).Clamped()
}
