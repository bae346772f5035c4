package components

import (
	"github.com/alexisbeaulieu97/folio/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// Alert is a boxed notice, used for host messages such as a terminal that is
// too small to lay the page out.
type Alert struct {
	BaseComponent
	message string
	icon    string
	variant AlertVariant
	title   string
}

// AlertVariant specifies the visual style of an alert.
type AlertVariant int

const (
	AlertVariantInfo AlertVariant = iota
	AlertVariantWarning
)

// NewAlert creates a new info alert with the given message.
func NewAlert(message string) *Alert {
	return &Alert{
		BaseComponent: NewBaseComponent(),
		message:       message,
		variant:       AlertVariantInfo,
		icon:          "ℹ",
	}
}

// View renders the alert.
func (a *Alert) View() string {
	return a.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the alert with the provided render context.
func (a *Alert) ViewWithContext(ctx RenderContext) string {
	children := make([]ui.Renderable, 0, 2)
	if a.title != "" {
		children = append(children, NewText(a.title).WithClasses("font-semibold"))
	}
	children = append(children, NewText(a.icon+" "+a.message))

	container := NewContainer(children...)
	container.BaseComponent = a.BaseComponent
	return container.render(ctx, ctx.Theme.Variants.Get(a.variant))
}

// WithVariant sets the alert variant and its default icon.
func (a *Alert) WithVariant(variant AlertVariant) *Alert {
	a.variant = variant
	switch variant {
	case AlertVariantWarning:
		a.icon = "⚠"
	case AlertVariantInfo:
		a.icon = "ℹ"
	}
	return a
}

// WithIcon sets a custom icon.
func (a *Alert) WithIcon(icon string) *Alert {
	a.icon = icon
	return a
}

// WithTitle adds a title to the alert.
func (a *Alert) WithTitle(title string) *Alert {
	a.title = title
	return a
}

// WithStyle sets the alert style (applied to container).
func (a *Alert) WithStyle(style lipgloss.Style) *Alert {
	a.SetStyle(style)
	return a
}

// WithClasses appends utility classes.
func (a *Alert) WithClasses(classes ...string) *Alert {
	a.AddClasses(classes...)
	return a
}

// Message returns the alert message.
func (a *Alert) Message() string {
	return a.message
}

// WarningAlert creates a warning alert.
func WarningAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertVariantWarning)
}

// InfoAlert creates an info alert.
func InfoAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertVariantInfo)
}
