package components

import (
	"github.com/alexisbeaulieu97/folio/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// BaseComponent carries the styling shared by every component: a raw lipgloss
// style, a theme-aware strategy and a utility class list applied last.
type BaseComponent struct {
	style    lipgloss.Style
	strategy StyleStrategy
	classes  Classes
}

// StyleStrategy decides how a theme is applied to a base style.
type StyleStrategy interface {
	Apply(base lipgloss.Style, theme Theme) lipgloss.Style
}

// StyleFunc applies one theme-aware transformation to a style.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// CompositeStrategy applies StyleFuncs in order.
type CompositeStrategy struct {
	funcs []StyleFunc
}

// Apply applies all style functions in order.
func (c CompositeStrategy) Apply(base lipgloss.Style, theme Theme) lipgloss.Style {
	for _, fn := range c.funcs {
		base = fn(base, theme)
	}
	return base
}

// NewCompositeStrategy creates a strategy from style functions.
func NewCompositeStrategy(funcs ...StyleFunc) StyleStrategy {
	return CompositeStrategy{funcs: funcs}
}

// NewBaseComponent creates a base component with an empty style.
func NewBaseComponent() BaseComponent {
	return BaseComponent{
		style:    lipgloss.NewStyle(),
		strategy: CompositeStrategy{},
	}
}

// ComputeStyle returns style and strategy applied for theme, without classes.
func (b *BaseComponent) ComputeStyle(theme Theme) lipgloss.Style {
	if b.strategy == nil {
		return b.style
	}
	return b.strategy.Apply(b.style, theme)
}

// Compile resolves the full styling of the component for ctx: the computed
// style with extra class lists layered over it, later classes winning.
func (b *BaseComponent) Compile(ctx RenderContext, extra ...Classes) Compiled {
	classes := make(Classes, 0, len(b.classes))
	for _, list := range extra {
		classes = append(classes, list...)
	}
	classes = append(classes, b.classes...)
	return Compile(b.ComputeStyle(ctx.Theme), classes, ctx)
}

// SetStyle replaces the raw lipgloss style.
func (b *BaseComponent) SetStyle(style lipgloss.Style) {
	b.style = style
}

// SetStrategy replaces the style strategy.
func (b *BaseComponent) SetStrategy(strategy StyleStrategy) {
	b.strategy = strategy
}

// SetAppliers replaces the strategy with the given style functions.
func (b *BaseComponent) SetAppliers(appliers ...StyleFunc) {
	b.strategy = NewCompositeStrategy(appliers...)
}

// AddAppliers appends style functions to the current strategy. A custom
// strategy is kept and runs before the new appliers.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	if existing, ok := b.strategy.(CompositeStrategy); ok {
		funcs := make([]StyleFunc, len(existing.funcs), len(existing.funcs)+len(appliers))
		copy(funcs, existing.funcs)
		b.strategy = CompositeStrategy{funcs: append(funcs, appliers...)}
		return
	}

	current := b.strategy
	b.strategy = NewCompositeStrategy(func(base lipgloss.Style, theme Theme) lipgloss.Style {
		if current != nil {
			base = current.Apply(base, theme)
		}
		for _, applier := range appliers {
			base = applier(base, theme)
		}
		return base
	})
}

// AddClasses appends utility class lists; they override earlier classes.
func (b *BaseComponent) AddClasses(classes ...string) {
	b.classes = append(b.classes, Cn(classes...)...)
}

// Classes returns the component's own utility classes.
func (b *BaseComponent) Classes() Classes {
	return b.classes
}

// Spacing is padding or margin in CSS box order: top, right, bottom, left.
type Spacing struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// UniformSpacing creates spacing with the same value on all sides.
func UniformSpacing(size int) Spacing {
	return Spacing{Top: size, Right: size, Bottom: size, Left: size}
}

// SymmetricSpacing creates spacing with different vertical and horizontal values.
func SymmetricSpacing(vertical, horizontal int) Spacing {
	return Spacing{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

// IsZero reports whether every side is zero.
func (s Spacing) IsZero() bool {
	return s.Top == 0 && s.Right == 0 && s.Bottom == 0 && s.Left == 0
}

// Horizontal returns left + right.
func (s Spacing) Horizontal() int {
	return s.Left + s.Right
}

// Vertical returns top + bottom.
func (s Spacing) Vertical() int {
	return s.Top + s.Bottom
}

// Constraints bound the size a component may render at. -1 means unlimited.
type Constraints struct {
	MinWidth  int
	MaxWidth  int
	MinHeight int
	MaxHeight int
}

// Unconstrained returns constraints with no limits.
func Unconstrained() Constraints {
	return Constraints{MaxWidth: -1, MaxHeight: -1}
}

// WithMaxWidth creates constraints with a maximum width.
func WithMaxWidth(maxWidth int) Constraints {
	return Constraints{MaxWidth: maxWidth, MaxHeight: -1}
}

// Constrain clamps a size to the constraints.
func (c Constraints) Constrain(width, height int) (int, int) {
	if c.MinWidth > 0 && width < c.MinWidth {
		width = c.MinWidth
	}
	if c.MaxWidth != -1 && width > c.MaxWidth {
		width = c.MaxWidth
	}
	if c.MinHeight > 0 && height < c.MinHeight {
		height = c.MinHeight
	}
	if c.MaxHeight != -1 && height > c.MaxHeight {
		height = c.MaxHeight
	}
	return width, height
}

// Breakpoint is a responsive width tier, matched by the sm:, md: and lg: class prefixes.
type Breakpoint int

const (
	BreakpointBase Breakpoint = iota
	BreakpointSM
	BreakpointMD
	BreakpointLG
	BreakpointXL
)

// Column widths at which each breakpoint starts. Tailwind's pixel breakpoints
// divided by an 8px cell.
const (
	breakpointSMCols = 80
	breakpointMDCols = 96
	breakpointLGCols = 128
	breakpointXLCols = 160
)

// BreakpointFor returns the tier a terminal of width columns falls in.
func BreakpointFor(width int) Breakpoint {
	switch {
	case width >= breakpointXLCols:
		return BreakpointXL
	case width >= breakpointLGCols:
		return BreakpointLG
	case width >= breakpointMDCols:
		return BreakpointMD
	case width >= breakpointSMCols:
		return BreakpointSM
	default:
		return BreakpointBase
	}
}

// RenderContext is passed down the component tree at render time.
type RenderContext struct {
	Theme       Theme
	Constraints Constraints
	// Width is the viewport width in columns; it picks the responsive breakpoint.
	Width int
	// Frame advances with the animation clock. Static renders keep it at 0.
	Frame int
	// Scale sizes typography. The zero value means the display scale.
	Scale ScaleTable

	// inherit is the compiled style of an enclosing text element; inline
	// children take its size, weight and colour like CSS inheritance.
	inherit *Compiled
}

// DefaultContext returns a dark-theme context for an 80 column viewport.
func DefaultContext() RenderContext {
	return RenderContext{
		Theme:       DefaultTheme(),
		Constraints: Unconstrained(),
		Width:       breakpointSMCols,
	}
}

// WithTheme returns a copy of the context using theme.
func (r RenderContext) WithTheme(theme Theme) RenderContext {
	r.Theme = theme
	return r
}

// WithConstraints returns a copy of the context with c.
func (r RenderContext) WithConstraints(c Constraints) RenderContext {
	r.Constraints = c
	return r
}

// WithWidth returns a copy of the context for a viewport of width columns.
func (r RenderContext) WithWidth(width int) RenderContext {
	r.Width = width
	return r
}

// WithFrame returns a copy of the context at animation frame.
func (r RenderContext) WithFrame(frame int) RenderContext {
	r.Frame = frame
	return r
}

// WithScale returns a copy of the context sizing typography with scale.
func (r RenderContext) WithScale(scale ScaleTable) RenderContext {
	r.Scale = scale
	return r
}

// TypographyScale returns the scale in effect.
func (r RenderContext) TypographyScale() ScaleTable {
	if r.Scale.name == "" {
		return displayScale
	}
	return r.Scale
}

// Breakpoint returns the responsive tier of the viewport.
func (r RenderContext) Breakpoint() Breakpoint {
	return BreakpointFor(r.Width)
}

// AvailableWidth is the width a child may fill: the constraint when set,
// otherwise the viewport.
func (r RenderContext) AvailableWidth() int {
	if r.Constraints.MaxWidth > 0 {
		return r.Constraints.MaxWidth
	}
	return r.Width
}

// ContextualRenderable is a component that renders against a RenderContext.
type ContextualRenderable interface {
	ui.Renderable
	ViewWithContext(ctx RenderContext) string
}

// renderChild draws child with ctx when it understands contexts.
func renderChild(child ui.Renderable, ctx RenderContext) string {
	if child == nil {
		return ""
	}
	if contextual, ok := child.(ContextualRenderable); ok {
		return contextual.ViewWithContext(ctx)
	}
	return child.View()
}

// CrossAxisAlignment specifies how children are aligned along the cross axis.
type CrossAxisAlignment int

const (
	CrossStart CrossAxisAlignment = iota
	CrossCenter
	CrossEnd
)

func (c CrossAxisAlignment) toLipglossPosition() lipgloss.Position {
	switch c {
	case CrossCenter:
		return lipgloss.Center
	case CrossEnd:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}
