package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Badge is a small pill used for skills and technology tags.
type Badge struct {
	BaseComponent
	text    string
	variant BadgeVariant
}

// BadgeVariant specifies the visual style of a badge.
type BadgeVariant int

const (
	BadgeVariantDefault BadgeVariant = iota
	BadgeVariantSecondary
	BadgeVariantOutline
)

// NewBadge creates a new badge with the given text.
func NewBadge(text string) *Badge {
	return &Badge{
		BaseComponent: NewBaseComponent(),
		text:          text,
		variant:       BadgeVariantDefault,
	}
}

// View renders the badge.
func (b *Badge) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the badge with the given theme context. Variant
// classes come from the theme registry; classes set on the badge win.
func (b *Badge) ViewWithContext(ctx RenderContext) string {
	ctx.inherit = nil
	return b.Compile(ctx, ctx.Theme.Variants.Get(b.variant)).Render(b.text)
}

// WithVariant sets the badge variant.
func (b *Badge) WithVariant(variant BadgeVariant) *Badge {
	b.variant = variant
	return b
}

// WithStyle sets the badge style.
func (b *Badge) WithStyle(style lipgloss.Style) *Badge {
	b.SetStyle(style)
	return b
}

// WithAppliers applies theme-based style modifiers.
func (b *Badge) WithAppliers(appliers ...StyleFunc) *Badge {
	b.AddAppliers(appliers...)
	return b
}

// WithClasses appends utility classes.
func (b *Badge) WithClasses(classes ...string) *Badge {
	b.AddClasses(classes...)
	return b
}

// Text returns the badge text.
func (b *Badge) Text() string {
	return b.text
}

// Variant returns the badge variant.
func (b *Badge) Variant() BadgeVariant {
	return b.variant
}

// SecondaryBadge creates a secondary badge.
func SecondaryBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantSecondary)
}

// OutlineBadge creates an outline badge.
func OutlineBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantOutline)
}
