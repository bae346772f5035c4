package components

import (
	"strings"

	"github.com/alexisbeaulieu97/folio/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// Grid lays children out in equal-width columns, filling rows left to right.
// The column count can change per breakpoint like grid-cols-1 md:grid-cols-3.
type Grid struct {
	BaseComponent
	children []ui.Renderable
	columns  map[Breakpoint]int
	gap      int
	rowGap   int
}

// NewGrid creates a single-column grid.
func NewGrid(children ...ui.Renderable) *Grid {
	return &Grid{
		BaseComponent: NewBaseComponent(),
		children:      children,
		columns:       map[Breakpoint]int{BreakpointBase: 1},
	}
}

// WithColumns sets the column count from breakpoint bp upwards.
func (g *Grid) WithColumns(bp Breakpoint, columns int) *Grid {
	if columns > 0 {
		g.columns[bp] = columns
	}
	return g
}

// WithGap sets the blank columns between cells and the blank rows between rows.
func (g *Grid) WithGap(columns, rows int) *Grid {
	g.gap = columns
	g.rowGap = rows
	return g
}

// WithClasses appends utility classes.
func (g *Grid) WithClasses(classes ...string) *Grid {
	g.AddClasses(classes...)
	return g
}

// Add appends cells.
func (g *Grid) Add(children ...ui.Renderable) *Grid {
	g.children = append(g.children, children...)
	return g
}

// Columns returns the column count in effect at bp.
func (g *Grid) Columns(bp Breakpoint) int {
	for b := bp; b >= BreakpointBase; b-- {
		if n, ok := g.columns[b]; ok {
			return n
		}
	}
	return 1
}

// View renders the grid.
func (g *Grid) View() string {
	return g.ViewWithContext(DefaultContext())
}

// ViewWithContext renders each row of cells side by side at a fixed cell width.
func (g *Grid) ViewWithContext(ctx RenderContext) string {
	compiled := g.Compile(ctx)
	if compiled.Hidden || len(g.children) == 0 {
		return ""
	}

	columns := g.Columns(ctx.Breakpoint())
	if columns > len(g.children) {
		columns = len(g.children)
	}
	width := ctx.AvailableWidth() - compiled.Style.GetHorizontalFrameSize()
	cell := (width - g.gap*(columns-1)) / columns
	if cell < 1 {
		cell = 1
	}

	cellCtx := ctx.WithConstraints(WithMaxWidth(cell))
	cellStyle := lipgloss.NewStyle().Width(cell)
	spacer := strings.Repeat(" ", g.gap)

	var rows []string
	for start := 0; start < len(g.children); start += columns {
		end := min(start+columns, len(g.children))
		cells := make([]string, 0, 2*columns)
		for i, child := range g.children[start:end] {
			if i > 0 && g.gap > 0 {
				cells = append(cells, spacer)
			}
			cells = append(cells, cellStyle.Render(renderChild(child, cellCtx)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	sep := "\n" + strings.Repeat("\n", g.rowGap)
	return compiled.Style.Render(strings.Join(rows, sep))
}
