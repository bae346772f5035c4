package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/folio/internal/ui/components"
)

// View renders the nav bar, the scrolled body and the status line.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.doc.Nav,
		m.viewport.View(),
		m.footer(),
	)
}

// footer is the size warning when the terminal is too small, otherwise the
// status message and key help.
func (m Model) footer() string {
	ctx := components.DefaultContext().
		WithWidth(m.width).
		WithTheme(components.ThemeFor(m.state.Theme()))
	if m.warning != "" {
		return components.WarningAlert(m.warning).ViewWithContext(ctx)
	}

	var lines []string
	if m.status != "" {
		lines = append(lines, components.NewText(m.status).
			WithClasses(m.state.Classes().TextMuted).
			ViewWithContext(ctx))
	}
	lines = append(lines, m.help.View(m.keys))
	return strings.Join(lines, "\n")
}
