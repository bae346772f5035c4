package components

import (
	"strings"

	"github.com/alexisbeaulieu97/folio/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// Flow lays children left to right and starts a new line when the next child
// would overflow, like flex-wrap.
type Flow struct {
	BaseComponent
	children []ui.Renderable
	gap      int
	rowGap   int
}

// NewFlow creates a wrapping row with a one column gap.
func NewFlow(children ...ui.Renderable) *Flow {
	return &Flow{
		BaseComponent: NewBaseComponent(),
		children:      children,
		gap:           1,
	}
}

// WithGap sets the blank columns between children and blank rows between lines.
func (f *Flow) WithGap(columns, rows int) *Flow {
	f.gap = max(columns, 0)
	f.rowGap = max(rows, 0)
	return f
}

// WithClasses appends utility classes.
func (f *Flow) WithClasses(classes ...string) *Flow {
	f.AddClasses(classes...)
	return f
}

// Add appends children.
func (f *Flow) Add(children ...ui.Renderable) *Flow {
	f.children = append(f.children, children...)
	return f
}

// View renders the flow with the default context.
func (f *Flow) View() string {
	return f.ViewWithContext(DefaultContext())
}

// ViewWithContext packs children greedily into lines no wider than the
// available width. A child wider than a line gets a line of its own.
func (f *Flow) ViewWithContext(ctx RenderContext) string {
	compiled := f.Compile(ctx)
	if compiled.Hidden {
		return ""
	}

	limit := ctx.AvailableWidth() - compiled.Style.GetHorizontalFrameSize()
	childCtx := ctx
	childCtx.inherit = nil

	var lines [][]string
	var current []string
	used := 0
	for _, child := range f.children {
		view := renderChild(child, childCtx)
		if view == "" {
			continue
		}
		w := lipgloss.Width(view)
		if len(current) > 0 && limit > 0 && used+f.gap+w > limit {
			lines = append(lines, current)
			current, used = nil, 0
		}
		if len(current) > 0 {
			current = append(current, strings.Repeat(" ", f.gap))
			used += f.gap
		}
		current = append(current, view)
		used += w
	}
	if len(current) > 0 {
		lines = append(lines, current)
	}
	if len(lines) == 0 {
		return ""
	}

	rows := make([]string, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, line...))
	}
	sep := "\n" + strings.Repeat("\n", f.rowGap)
	return compiled.Style.Render(strings.Join(rows, sep))
}

// Center places its child in the middle of the available width.
type Center struct {
	child ui.Renderable
}

// NewCenter wraps child.
func NewCenter(child ui.Renderable) *Center {
	return &Center{child: child}
}

// View renders the child unchanged.
func (c *Center) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext centres every line of the child as a block.
func (c *Center) ViewWithContext(ctx RenderContext) string {
	view := renderChild(c.child, ctx)
	if view == "" {
		return ""
	}
	return lipgloss.PlaceHorizontal(ctx.AvailableWidth(), lipgloss.Center, view)
}

// Sidebar puts a fixed-width aside next to a main child that takes the rest
// of the width.
type Sidebar struct {
	aside ui.Renderable
	main  ui.Renderable
	width int
	gap   int
}

// NewSidebar creates a sidebar layout with an aside of width columns.
func NewSidebar(aside ui.Renderable, width int, main ui.Renderable) *Sidebar {
	return &Sidebar{aside: aside, main: main, width: width, gap: 2}
}

// WithGap sets the columns between the aside and the main child.
func (s *Sidebar) WithGap(gap int) *Sidebar {
	s.gap = max(gap, 0)
	return s
}

// View renders the layout with the default context.
func (s *Sidebar) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders both children top-aligned.
func (s *Sidebar) ViewWithContext(ctx RenderContext) string {
	mainWidth := max(ctx.AvailableWidth()-s.width-s.gap, 1)
	aside := renderChild(s.aside, ctx.WithConstraints(WithMaxWidth(s.width)))
	main := renderChild(s.main, ctx.WithConstraints(WithMaxWidth(mainWidth)))
	if aside == "" {
		return main
	}

	aside = lipgloss.NewStyle().Width(s.width).Render(aside)
	return lipgloss.JoinHorizontal(lipgloss.Top, aside, strings.Repeat(" ", s.gap), main)
}
