package components

import (
	"github.com/alexisbeaulieu97/folio/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// Container is a generic box that can hold children with border, padding, and styling.
// It's the foundation for more specialized components like Card and Section.
type Container struct {
	BaseComponent
	children    []ui.Renderable
	layout      *Stack
	border      lipgloss.Border
	borderColor lipgloss.Color
	padding     Spacing
	margin      Spacing
}

// NewContainer creates a new container with default settings.
func NewContainer(children ...ui.Renderable) *Container {
	return &Container{
		BaseComponent: NewBaseComponent(),
		children:      children,
		layout:        VStack(children...),
	}
}

// View renders the container and its children.
func (c *Container) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the container with layout context. Children are laid
// out inside the box, so they get the width left after border, padding and
// max-w-* are taken away.
func (c *Container) ViewWithContext(ctx RenderContext) string {
	return c.render(ctx, nil)
}

// render draws the container with base classes layered under its own.
func (c *Container) render(ctx RenderContext, base Classes) string {
	compiled := c.Compile(ctx, base)
	if compiled.Hidden {
		return ""
	}

	style := compiled.Style
	if c.border.Top != "" {
		style = style.BorderStyle(c.border)
		if c.borderColor != "" {
			style = style.BorderForeground(c.borderColor)
		}
	}
	if !c.padding.IsZero() {
		style = style.Padding(c.padding.Top, c.padding.Right, c.padding.Bottom, c.padding.Left)
	}
	if !c.margin.IsZero() {
		style = style.Margin(c.margin.Top, c.margin.Right, c.margin.Bottom, c.margin.Left)
	}
	compiled.Style = style

	var content string
	if len(c.children) > 0 {
		childCtx := ctx
		childCtx.inherit = nil
		if inner := compiled.innerWidth(ctx.AvailableWidth()); inner > 0 {
			childCtx = childCtx.WithConstraints(WithMaxWidth(inner))
		}
		content = c.layout.ViewWithContext(childCtx)
	}

	if w := compiled.Width; w > 0 {
		style = style.Width(w - style.GetHorizontalMargins())
	}
	return style.Render(content)
}

// WithBorder sets the border style.
func (c *Container) WithBorder(border lipgloss.Border) *Container {
	c.border = border
	return c
}

// WithBorderColor sets the border color.
func (c *Container) WithBorderColor(color lipgloss.Color) *Container {
	c.borderColor = color
	return c
}

// WithPadding sets the padding using a Spacing value object.
func (c *Container) WithPadding(padding Spacing) *Container {
	c.padding = padding
	return c
}

// WithMargin sets the margin using a Spacing value object.
func (c *Container) WithMargin(margin Spacing) *Container {
	c.margin = margin
	return c
}

// WithStyle sets the container style.
func (c *Container) WithStyle(style lipgloss.Style) *Container {
	c.SetStyle(style)
	return c
}

// WithAppliers applies theme-based style modifiers.
func (c *Container) WithAppliers(appliers ...StyleFunc) *Container {
	c.AddAppliers(appliers...)
	return c
}

// WithClasses appends utility classes to the box.
func (c *Container) WithClasses(classes ...string) *Container {
	c.AddClasses(classes...)
	return c
}

// WithDirection sets the layout direction.
func (c *Container) WithDirection(dir Direction) *Container {
	c.layout.WithDirection(dir)
	return c
}

// WithGap sets the gap between children.
func (c *Container) WithGap(gap int) *Container {
	c.layout.WithGap(gap)
	return c
}

// WithCrossAlign sets the cross-axis alignment.
func (c *Container) WithCrossAlign(align CrossAxisAlignment) *Container {
	c.layout.WithCrossAlign(align)
	return c
}

// Add appends children to the container.
func (c *Container) Add(children ...ui.Renderable) *Container {
	c.children = append(c.children, children...)
	c.layout.Add(children...)
	return c
}

// Children returns the child renderables.
func (c *Container) Children() []ui.Renderable {
	return c.children
}

// Layout returns the internal stack layout.
func (c *Container) Layout() *Stack {
	return c.layout
}

// SetChildren replaces all children in the container.
func (c *Container) SetChildren(children []ui.Renderable) *Container {
	c.children = children
	c.layout.SetChildren(children)
	return c
}
