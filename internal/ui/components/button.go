package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Button is a call to action. It only renders; activation is the host's job.
type Button struct {
	BaseComponent
	label    string
	icon     string
	variant  ButtonVariant
	size     ButtonSize
	disabled bool
	active   bool
}

// ButtonVariant specifies the visual style of a button.
type ButtonVariant int

const (
	ButtonVariantPrimary ButtonVariant = iota
	ButtonVariantOutline
	ButtonVariantGhost
)

// ButtonSize sets the horizontal padding of a button.
type ButtonSize int

const (
	ButtonSizeDefault ButtonSize = iota
	ButtonSizeSmall
	ButtonSizeLarge
)

// NewButton creates a new button with the given label.
func NewButton(label string) *Button {
	return &Button{
		BaseComponent: NewBaseComponent(),
		label:         label,
		variant:       ButtonVariantPrimary,
		size:          ButtonSizeDefault,
	}
}

// View renders the button.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button with the given theme context.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	ctx.inherit = nil
	variants := ctx.Theme.Variants
	compiled := b.Compile(ctx, variants.Get(b.variant), variants.Get(b.size))

	if b.disabled {
		compiled.Style = compiled.Style.Faint(true)
	}
	if b.active {
		compiled.Style = compiled.Style.Bold(true).Underline(true)
	}

	label := b.label
	if b.icon != "" {
		label = b.icon + " " + label
	}
	return compiled.Render(label)
}

// WithVariant sets the button variant.
func (b *Button) WithVariant(variant ButtonVariant) *Button {
	b.variant = variant
	return b
}

// WithSize sets the button size.
func (b *Button) WithSize(size ButtonSize) *Button {
	b.size = size
	return b
}

// WithIcon prefixes the label with a glyph.
func (b *Button) WithIcon(icon string) *Button {
	b.icon = icon
	return b
}

// WithDisabled sets the disabled state.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.disabled = disabled
	return b
}

// WithActive sets the active/selected state.
func (b *Button) WithActive(active bool) *Button {
	b.active = active
	return b
}

// WithStyle sets the button style.
func (b *Button) WithStyle(style lipgloss.Style) *Button {
	b.SetStyle(style)
	return b
}

// WithAppliers applies theme-based style modifiers.
func (b *Button) WithAppliers(appliers ...StyleFunc) *Button {
	b.AddAppliers(appliers...)
	return b
}

// WithClasses appends utility classes.
func (b *Button) WithClasses(classes ...string) *Button {
	b.AddClasses(classes...)
	return b
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// Variant returns the button variant.
func (b *Button) Variant() ButtonVariant {
	return b.variant
}

// IsDisabled returns true if the button is disabled.
func (b *Button) IsDisabled() bool {
	return b.disabled
}

// IsActive returns true if the button is active.
func (b *Button) IsActive() bool {
	return b.active
}

// PrimaryButton creates a primary button.
func PrimaryButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantPrimary)
}

// OutlineButton creates an outline button.
func OutlineButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantOutline)
}

// GhostButton creates a borderless button.
func GhostButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantGhost)
}
