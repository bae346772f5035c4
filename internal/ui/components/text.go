package components

import "github.com/charmbracelet/lipgloss"

// Text is a primitive component for rendering styled text content. Unlike
// Typography it carries no design-system defaults: only what is set on it.
type Text struct {
	BaseComponent
	content string
}

// NewText creates a new text component with the given content.
func NewText(content string) *Text {
	return &Text{
		BaseComponent: NewBaseComponent(),
		content:       content,
	}
}

// View renders the text with its styling.
func (t *Text) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the text with the given theme context.
func (t *Text) ViewWithContext(ctx RenderContext) string {
	return t.Compile(ctx).RenderWithin(t.content, ctx.AvailableWidth())
}

// Content returns the text content.
func (t *Text) Content() string {
	return t.content
}

// SetContent updates the text content.
func (t *Text) SetContent(content string) *Text {
	t.content = content
	return t
}

// WithStyle sets the lipgloss style directly.
func (t *Text) WithStyle(style lipgloss.Style) *Text {
	t.SetStyle(style)
	return t
}

// WithAppliers applies theme-based style modifiers.
func (t *Text) WithAppliers(appliers ...StyleFunc) *Text {
	t.SetAppliers(appliers...)
	return t
}

// WithStrategy sets a custom styling strategy.
func (t *Text) WithStrategy(strategy StyleStrategy) *Text {
	t.SetStrategy(strategy)
	return t
}

// WithClasses appends utility classes.
func (t *Text) WithClasses(classes ...string) *Text {
	t.AddClasses(classes...)
	return t
}

// MutedText renders content in the theme's muted text colour.
func MutedText(content string) *Text {
	return NewText(content).WithAppliers(Foreground(PaletteNeutral))
}

// AccentText renders content in the primary colour.
func AccentText(content string) *Text {
	return NewText(content).WithAppliers(Foreground(PalettePrimary))
}
