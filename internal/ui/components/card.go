package components

import (
	"github.com/alexisbeaulieu97/folio/internal/ui"
)

// Card is a specialized container with default styling for card-like UI elements.
// It's a semantic component built on top of Container.
type Card struct {
	*Container
	accent string
}

// NewCard creates a card: a rounded border in the theme's border colour
// around padded content.
func NewCard(children ...ui.Renderable) *Card {
	container := NewContainer(children...).WithGap(1)
	return &Card{Container: container}
}

// ViewWithContext renders the card with the theme's card classes under any
// classes set on it.
func (c *Card) ViewWithContext(ctx RenderContext) string {
	classes := ctx.Theme.Classes
	base := Cn("rounded border px-4 py-4", classes.Border)
	if c.accent != "" {
		base = base.With("border-" + c.accent)
	}
	return c.render(ctx, base)
}

// View renders the card with the default context.
func (c *Card) View() string {
	return c.ViewWithContext(DefaultContext())
}

// WithTitle puts an H4 heading above the card content.
func (c *Card) WithTitle(title string) *Card {
	heading := H4(title).WithClassName("mb-0")
	children := make([]ui.Renderable, 0, len(c.Children())+1)
	children = append(children, heading)
	children = append(children, c.Children()...)
	c.SetChildren(children)
	return c
}

// WithAccent colours the border with a palette token such as "orange-500".
func (c *Card) WithAccent(color string) *Card {
	c.accent = color
	return c
}

// WithClasses appends utility classes.
func (c *Card) WithClasses(classes ...string) *Card {
	c.AddClasses(classes...)
	return c
}

// WithFooter adds a divider and a footer under the content.
func (c *Card) WithFooter(footer ui.Renderable) *Card {
	c.Add(HorizontalDivider(), footer)
	return c
}

// AsContainer returns the underlying container for advanced customization.
func (c *Card) AsContainer() *Container {
	return c.Container
}
