package page

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/folio/internal/ui/components"
)

const (
	logoClasses = "text-2xl font-bold bg-gradient-to-r from-orange-500 to-red-500 bg-clip-text text-transparent"
	// linkGap is space-x-8.
	linkGap = 4
)

var navLabels = []string{"About", "Projects", "Experience", "Contact"}

// Nav is the fixed bar at the top: initials on the left, section links and
// the theme toggle on the right. Links are hidden below the md breakpoint.
type Nav struct {
	initials string
	compact  bool
}

// NewNav creates the bar. A compact bar drops its vertical padding.
func NewNav(initials string, compact bool) *Nav {
	return &Nav{initials: initials, compact: compact}
}

type navLayout struct {
	view   string
	height int
	links  []NavLink
	toggle Region
}

func (n *Nav) layout(ctx components.RenderContext, f frame) navLayout {
	mode := ctx.Theme.Mode
	classes := ctx.Theme.Classes
	pad := 1
	if n.compact {
		pad = 0
	}

	logo := components.Compile(lipgloss.NewStyle(), components.Cn(logoClasses), ctx).Text(n.initials)

	glyph := "☀"
	if mode == components.ThemeLight {
		glyph = "☾"
	}
	toggle := components.GhostButton(glyph).
		WithSize(components.ButtonSizeSmall).
		ViewWithContext(ctx)
	toggleWidth := lipgloss.Width(toggle)

	linkStyle := components.Compile(lipgloss.NewStyle(), components.Cn("hidden md:flex", classes.TextSecondary), ctx)
	var parts []string
	var widths []int
	for _, label := range navLabels {
		if view := linkStyle.Text(label); view != "" {
			parts = append(parts, view)
			widths = append(widths, lipgloss.Width(view))
		}
	}

	rightWidth := toggleWidth
	for _, w := range widths {
		rightWidth += w + linkGap
	}
	rightStart := f.left + f.inner - rightWidth
	fill := max(rightStart-f.left-lipgloss.Width(logo), 1)
	rightStart = f.left + lipgloss.Width(logo) + fill

	layout := navLayout{height: 2*pad + 2}
	var row strings.Builder
	row.WriteString(strings.Repeat(" ", f.left))
	row.WriteString(logo)
	row.WriteString(strings.Repeat(" ", fill))

	x := rightStart
	for i, part := range parts {
		layout.links = append(layout.links, NavLink{
			Label:  navLabels[i],
			Target: strings.ToLower(navLabels[i]),
			Region: Region{X: x, Y: pad, Width: widths[i]},
		})
		row.WriteString(part)
		row.WriteString(strings.Repeat(" ", linkGap))
		x += widths[i] + linkGap
	}
	row.WriteString(toggle)
	layout.toggle = Region{X: x, Y: pad, Width: toggleWidth}

	border := components.Compile(lipgloss.NewStyle(), components.Cn(borderLine(mode)), ctx).
		Bar("─", max(ctx.Width, 1))

	rows := make([]string, 0, layout.height)
	for range pad {
		rows = append(rows, "")
	}
	rows = append(rows, row.String())
	for range pad {
		rows = append(rows, "")
	}
	rows = append(rows, border)
	layout.view = strings.Join(rows, "\n")
	return layout
}
