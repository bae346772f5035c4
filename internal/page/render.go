package page

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/folio/internal/assets"
	"github.com/alexisbeaulieu97/folio/internal/content"
	"github.com/alexisbeaulieu97/folio/internal/ui"
	"github.com/alexisbeaulieu97/folio/internal/ui/components"
)

// Anchor targets, in page order.
const (
	AnchorHome       = "home"
	AnchorAbout      = "about"
	AnchorProjects   = "projects"
	AnchorExperience = "experience"
	AnchorContact    = "contact"
)

// NavTargets are the anchors linked from the navigation bar.
var NavTargets = []string{AnchorAbout, AnchorProjects, AnchorExperience, AnchorContact}

// ToggleTarget is what HitTest reports for the theme button.
const ToggleTarget = "theme"

const (
	// sectionGap is the blank rows between sections.
	sectionGap  = 2
	pageClasses = "max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"
)

// Options configures Build.
type Options struct {
	// Assets resolves the profile and project images.
	Assets assets.Resolver
	// CellWidth and CellHeight are the px size of one terminal cell.
	CellWidth  int
	CellHeight int
	// Year is printed in the footer.
	Year int
}

// DefaultOptions draws images as placeholders on an 8x16 px cell.
func DefaultOptions() Options {
	return Options{
		Assets:     assets.NewPlaceholder(8, 16),
		CellWidth:  8,
		CellHeight: 16,
		Year:       time.Now().Year(),
	}
}

func (o Options) withDefaults() Options {
	if o.CellWidth <= 0 {
		o.CellWidth = 8
	}
	if o.CellHeight <= 0 {
		o.CellHeight = 16
	}
	if o.Assets == nil {
		o.Assets = assets.NewPlaceholder(o.CellWidth, o.CellHeight)
	}
	if o.Year == 0 {
		o.Year = time.Now().Year()
	}
	return o
}

type builder struct {
	portfolio   content.Portfolio
	theme       components.ThemeMode
	classes     components.ThemeClasses
	decorations Decorations
	opts        Options
}

type section struct {
	id   string
	view ui.Renderable
}

// Page is the component tree of one render. It keeps a snapshot of the state
// it was built from, so later state changes need a new Build.
type Page struct {
	theme    components.ThemeMode
	nav      *Nav
	sections []section
}

// Build snapshots state and composes the page for portfolio. portfolio is
// only read.
func Build(state *State, portfolio content.Portfolio, opts Options) *Page {
	b := &builder{
		portfolio:   portfolio,
		theme:       state.Theme(),
		classes:     state.Classes(),
		decorations: state.Decorations(),
		opts:        opts.withDefaults(),
	}

	return &Page{
		theme: b.theme,
		nav:   NewNav(portfolio.Owner.Initials, state.NavCompact()),
		sections: []section{
			{id: AnchorHome, view: b.hero()},
			{id: AnchorAbout, view: b.about()},
			{id: AnchorProjects, view: b.projects()},
			{id: AnchorExperience, view: b.experience()},
			{id: AnchorContact, view: b.contact()},
			{view: b.footer()},
		},
	}
}

// Theme is the theme the page was built with.
func (p *Page) Theme() components.ThemeMode {
	return p.theme
}

// Render lays the page out for the viewport width of ctx.
func (p *Page) Render(ctx components.RenderContext) Document {
	ctx = ctx.WithTheme(components.ThemeFor(p.theme)).WithConstraints(components.Unconstrained())
	f := pageFrame(ctx)
	inner := ctx.WithConstraints(components.WithMaxWidth(f.inner))

	anchors := make(map[string]int, len(p.sections))
	blocks := make([]string, 0, 2*len(p.sections))
	line := 0
	for i, s := range p.sections {
		if i > 0 {
			blocks = append(blocks, strings.Repeat("\n", sectionGap-1))
			line += sectionGap
		}
		if s.id != "" {
			anchors[s.id] = line
		}
		view := renderWith(s.view, inner)
		blocks = append(blocks, view)
		line += lipgloss.Height(view)
	}

	body := strings.Join(blocks, "\n")
	if f.left > 0 {
		body = lipgloss.NewStyle().PaddingLeft(f.left).Render(body)
	}

	nav := p.nav.layout(ctx, f)
	return Document{
		Nav:       nav.view,
		NavHeight: nav.height,
		Body:      body,
		Anchors:   anchors,
		Links:     nav.links,
		Toggle:    nav.toggle,
	}
}

// frame is the horizontal placement of the centred content column.
type frame struct {
	left  int
	inner int
}

func pageFrame(ctx components.RenderContext) frame {
	width := max(ctx.Width, 1)
	compiled := components.Compile(lipgloss.NewStyle(), components.Cn(pageClasses), ctx)
	box := width
	if compiled.MaxWidth > 0 {
		box = min(box, compiled.MaxWidth)
	}
	pad := compiled.Style.GetPaddingLeft()
	return frame{
		left:  (width-box)/2 + pad,
		inner: max(box-2*pad, 1),
	}
}

func borderLine(mode components.ThemeMode) string {
	if mode == components.ThemeLight {
		return "text-orange-200"
	}
	return "text-slate-700"
}

func copyright(year int, name string) string {
	return fmt.Sprintf("© %d %s. ", year, name)
}

// Region is a rectangle one row tall in screen cells.
type Region struct {
	X, Y, Width int
}

// Contains reports whether the cell (x, y) is inside r.
func (r Region) Contains(x, y int) bool {
	return y == r.Y && x >= r.X && x < r.X+r.Width
}

// NavLink is a navigation entry and where it was drawn.
type NavLink struct {
	Label  string
	Target string
	Region Region
}

// Document is a rendered page: the fixed navigation bar and the scrolling body.
type Document struct {
	Nav       string
	NavHeight int
	Body      string
	// Anchors maps section ids to their first body line.
	Anchors map[string]int
	Links   []NavLink
	Toggle  Region
}

// HitTest resolves a click at screen cell (x, y) on the navigation bar to a
// nav target or ToggleTarget.
func (d Document) HitTest(x, y int) (string, bool) {
	if y < 0 || y >= d.NavHeight {
		return "", false
	}
	if d.Toggle.Contains(x, y) {
		return ToggleTarget, true
	}
	for _, link := range d.Links {
		if link.Region.Contains(x, y) {
			return link.Target, true
		}
	}
	return "", false
}

// Anchor returns the body line of target.
func (d Document) Anchor(target string) (int, bool) {
	line, ok := d.Anchors[target]
	return line, ok
}
