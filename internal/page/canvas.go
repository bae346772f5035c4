package page

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/folio/internal/ui"
	"github.com/alexisbeaulieu97/folio/internal/ui/components"
)

// Glyphs of the background layer. Nothing else on the page uses them.
const (
	gridGlyph     = '·'
	orbGlyph      = '░'
	particleGlyph = '•'
	particleDim   = '∙'
)

type cell struct {
	glyph rune
	color lipgloss.Color
}

// Canvas draws the decoration layer and centres an overlay on top. With no
// decorations it is a blank area of the same size, so the first render and
// the mounted render have the same layout.
type Canvas struct {
	decorations Decorations
	overlay     ui.Renderable
	height      int
	cellWidth   int
	cellHeight  int
}

// NewCanvas creates a canvas at least height rows tall.
func NewCanvas(decorations Decorations, height int) *Canvas {
	return &Canvas{
		decorations: decorations,
		height:      height,
		cellWidth:   8,
		cellHeight:  16,
	}
}

// WithOverlay draws r centred over the background.
func (c *Canvas) WithOverlay(r ui.Renderable) *Canvas {
	c.overlay = r
	return c
}

// WithCellSize sets the px size of a cell, used to turn orb offsets into cells.
func (c *Canvas) WithCellSize(width, height int) *Canvas {
	c.cellWidth = max(width, 1)
	c.cellHeight = max(height, 1)
	return c
}

// View renders the canvas with the default context.
func (c *Canvas) View() string {
	return c.ViewWithContext(components.DefaultContext())
}

// ViewWithContext paints grid, orbs and particles in that order, then the overlay.
func (c *Canvas) ViewWithContext(ctx components.RenderContext) string {
	width := ctx.AvailableWidth()
	if width <= 0 {
		return ""
	}

	var overlay []string
	overlayWidth := 0
	if c.overlay != nil {
		if view := renderWith(c.overlay, ctx); view != "" {
			overlay = strings.Split(view, "\n")
			overlayWidth = lipgloss.Width(view)
		}
	}
	height := max(c.height, len(overlay)+2)

	cells := make([][]cell, height)
	for y := range cells {
		cells[y] = make([]cell, width)
		for x := range cells[y] {
			cells[y][x] = cell{glyph: ' '}
		}
	}

	c.paintGrid(cells, ctx)
	c.paintOrbs(cells, ctx)
	c.paintParticles(cells, ctx)

	ox := max((width-overlayWidth)/2, 0)
	oy := max((height-len(overlay))/2, 0)
	rows := make([]string, height)
	for y := range cells {
		if y < oy || y >= oy+len(overlay) {
			rows[y] = paintCells(cells[y])
			continue
		}
		line := overlay[y-oy]
		if pad := overlayWidth - lipgloss.Width(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		right := min(ox+overlayWidth, width)
		rows[y] = paintCells(cells[y][:ox]) + line + paintCells(cells[y][right:])
	}
	return strings.Join(rows, "\n")
}

func (c *Canvas) paintGrid(cells [][]cell, ctx components.RenderContext) {
	grid := c.decorations.Grid
	if grid == nil || grid.Cell <= 0 {
		return
	}
	height, width := len(cells), len(cells[0])
	compiled := components.Compile(lipgloss.NewStyle(), components.Cn(grid.Classes), ctx)
	color := foreground(compiled.Style)

	stepX := max(int(float64(width)*grid.Cell/100), 2)
	stepY := max(int(float64(height)*grid.Cell/100), 1)
	for y := 0; y < height; y += stepY {
		for x := 0; x < width; x += stepX {
			cells[y][x] = cell{glyph: gridGlyph, color: color}
		}
	}
}

func (c *Canvas) paintOrbs(cells [][]cell, ctx components.RenderContext) {
	height, width := len(cells), len(cells[0])
	for _, orb := range c.decorations.Orbs {
		compiled := components.Compile(lipgloss.NewStyle(), components.Cn(orb.Classes), ctx)
		rx := max(compiled.Width/8, 1)
		ry := max(rx/2, 1)

		x0, y0 := orb.Anchor.Place(width, height, 2*rx+1, 2*ry+1)
		x0 += int(math.Round(orb.Offset.X / float64(c.cellWidth)))
		y0 += int(math.Round(orb.Offset.Y / float64(c.cellHeight)))

		for dy := -ry; dy <= ry; dy++ {
			for dx := -rx; dx <= rx; dx++ {
				fx, fy := float64(dx)/float64(rx), float64(dy)/float64(ry)
				if fx*fx+fy*fy > 1 {
					continue
				}
				x, y := x0+rx+dx, y0+ry+dy
				if x < 0 || y < 0 || x >= width || y >= height {
					continue
				}
				t := float64(dx+rx) / float64(2*rx)
				cells[y][x] = cell{glyph: orbGlyph, color: compiled.Gradient.At(t)}
			}
		}
	}
}

func (c *Canvas) paintParticles(cells [][]cell, ctx components.RenderContext) {
	if len(c.decorations.Particles) == 0 {
		return
	}
	height, width := len(cells), len(cells[0])
	compiled := components.Compile(lipgloss.NewStyle(), components.Cn(c.decorations.ParticleClasses), ctx)
	color := background(compiled.Style)
	elapsed := time.Duration(ctx.Frame) * components.RingSpinner.FPS

	for _, p := range c.decorations.Particles {
		x := min(int(p.Left*float64(width)/100), width-1)
		y := min(int(p.Top*float64(height)/100), height-1)
		glyph := particleDim
		if p.Lit(elapsed) {
			glyph = particleGlyph
		}
		cells[y][x] = cell{glyph: glyph, color: color}
	}
}

// paintCells renders a row, one style per run of equal colour.
func paintCells(row []cell) string {
	var b strings.Builder
	for i := 0; i < len(row); {
		j := i
		var run strings.Builder
		for j < len(row) && row[j].color == row[i].color {
			run.WriteRune(row[j].glyph)
			j++
		}
		if row[i].color == "" {
			b.WriteString(run.String())
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(row[i].color).Render(run.String()))
		}
		i = j
	}
	return b.String()
}

func foreground(style lipgloss.Style) lipgloss.Color {
	color, _ := style.GetForeground().(lipgloss.Color)
	return color
}

func background(style lipgloss.Style) lipgloss.Color {
	color, _ := style.GetBackground().(lipgloss.Color)
	return color
}

func renderWith(r ui.Renderable, ctx components.RenderContext) string {
	if r == nil {
		return ""
	}
	if contextual, ok := r.(components.ContextualRenderable); ok {
		return contextual.ViewWithContext(ctx)
	}
	return r.View()
}
