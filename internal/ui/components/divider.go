package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Divider renders a visual separator line.
type Divider struct {
	BaseComponent
	char      string
	width     int
	direction Direction
}

// NewDivider creates a divider with the specified character.
func NewDivider() *Divider {
	return &Divider{
		BaseComponent: NewBaseComponent(),
		char:          "─",
		width:         0, // 0 means auto-width
		direction:     DirectionHorizontal,
	}
}

// HorizontalDivider creates a horizontal divider (convenience constructor).
func HorizontalDivider() *Divider {
	return NewDivider()
}

// VerticalDivider creates a vertical divider.
func VerticalDivider() *Divider {
	return NewDivider().WithChar("│").WithDirection(DirectionVertical)
}

// View renders the divider.
func (d *Divider) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the divider across the available width unless an
// explicit width was set. Classes colour it; a gradient paints it cell by cell.
func (d *Divider) ViewWithContext(ctx RenderContext) string {
	compiled := d.Compile(ctx)
	if compiled.Hidden {
		return ""
	}

	width := d.width
	if width <= 0 {
		width = compiled.Width
	}
	if width <= 0 {
		width = ctx.AvailableWidth()
	}
	if width <= 0 {
		width = 40
	}

	if d.direction == DirectionVertical {
		lines := make([]string, width)
		for i := range lines {
			lines[i] = d.char
		}
		return compiled.Style.Render(strings.Join(lines, "\n"))
	}
	if compiled.Gradient.Active() {
		return compiled.Margins().Render(compiled.Bar(d.char, width))
	}
	return compiled.Style.Render(strings.Repeat(d.char, width))
}

// WithChar sets the character used for the divider.
func (d *Divider) WithChar(char string) *Divider {
	if char != "" {
		d.char = char
	}
	return d
}

// WithWidth sets an explicit width for the divider.
func (d *Divider) WithWidth(width int) *Divider {
	d.width = width
	return d
}

// WithDirection sets the divider direction.
func (d *Divider) WithDirection(dir Direction) *Divider {
	d.direction = dir
	return d
}

// WithStyle sets the divider style.
func (d *Divider) WithStyle(style lipgloss.Style) *Divider {
	d.SetStyle(style)
	return d
}

// WithAppliers applies theme-based style modifiers.
func (d *Divider) WithAppliers(appliers ...StyleFunc) *Divider {
	d.SetAppliers(appliers...)
	return d
}

// WithClasses appends utility classes.
func (d *Divider) WithClasses(classes ...string) *Divider {
	d.AddClasses(classes...)
	return d
}

// Width returns the divider width.
func (d *Divider) Width() int {
	return d.width
}

// DottedDivider creates a dotted divider.
func DottedDivider() *Divider {
	return NewDivider().WithChar("·")
}

// ThickDivider creates a thick divider.
func ThickDivider() *Divider {
	return NewDivider().WithChar("━")
}
