package tui

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/time/rate"

	"github.com/alexisbeaulieu97/folio/internal/content"
	"github.com/alexisbeaulieu97/folio/internal/logger"
	"github.com/alexisbeaulieu97/folio/internal/page"
	"github.com/alexisbeaulieu97/folio/internal/ui/components"
)

const (
	minWidth  = 80
	minHeight = 24

	// motionRate caps redraws caused by pointer motion; the state still
	// records every event.
	motionRate = time.Second / 30
)

// Options configures the interactive page.
type Options struct {
	Portfolio content.Portfolio
	Page      page.Options
	State     []page.StateOption
	Scale     components.ScaleTable
	Logger    *logger.Logger
	// Start is the section to open at, empty for the top.
	Start string
	// Clipboard writes to the system clipboard. Defaults to atotto/clipboard.
	Clipboard func(string) error
}

// Model is the Bubble Tea host of the page. It feeds terminal events to the
// presentation state and redraws the document after every change.
type Model struct {
	state     *page.State
	portfolio content.Portfolio
	pageOpts  page.Options
	scale     components.ScaleTable
	log       *logger.Logger
	copy      func(string) error
	start     string

	keys     KeyMap
	help     help.Model
	viewport viewport.Model
	ring     spinner.Model
	frame    int
	motion   *rate.Limiter

	doc     page.Document
	status  string
	warning string

	width  int
	height int
	sized  bool
	ready  bool
}

// NewModel creates an unmounted page model.
func NewModel(opts Options) Model {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	write := opts.Clipboard
	if write == nil {
		write = clipboard.WriteAll
	}

	ring := spinner.New()
	ring.Spinner = components.RingSpinner

	return Model{
		state:     page.NewState(opts.State...),
		portfolio: opts.Portfolio,
		pageOpts:  opts.Page,
		scale:     opts.Scale,
		log:       log.With("component", "tui"),
		copy:      write,
		start:     opts.Start,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		viewport:  viewport.New(minWidth, minHeight),
		ring:      ring,
		motion:    rate.NewLimiter(rate.Every(motionRate), 1),
		width:     minWidth,
		height:    minHeight,
	}
}

// Init schedules the mount transition and the jump to the start section.
func (m Model) Init() tea.Cmd {
	if m.start == "" {
		return mountCmd
	}
	return tea.Sequence(mountCmd, navigateCmd(m.start))
}

// State exposes the presentation state.
func (m Model) State() *page.State {
	return m.state
}

// Document returns the last rendered document.
func (m Model) Document() page.Document {
	return m.doc
}

// Frame is the animation frame last drawn.
func (m Model) Frame() int {
	return m.frame
}

// Status is the transient message shown above the help line.
func (m Model) Status() string {
	return m.status
}

// render rebuilds the page from the current state and lays the viewport out
// under the nav bar, keeping the scroll position.
func (m *Model) render() {
	ctx := components.DefaultContext().
		WithWidth(m.width).
		WithFrame(m.frame).
		WithScale(m.scale)
	m.doc = page.Build(m.state, m.portfolio, m.pageOpts).Render(ctx)
	m.ready = true
	m.layout()
}

func (m *Model) layout() {
	offset := m.viewport.YOffset
	m.viewport.Width = m.width
	m.viewport.Height = max(m.height-m.doc.NavHeight-countLines(m.footer()), 1)
	m.viewport.SetContent(m.doc.Body)
	m.viewport.SetYOffset(offset)
	// A taller viewport or a shorter body clamps the offset.
	m.syncScroll()
}

// syncScroll hands the viewport offset to the state and redraws when the nav
// bar changes between full and compact. The redraw lays out again, which
// settles because the offset is already in the state.
func (m *Model) syncScroll() {
	compact := m.state.NavCompact()
	m.state.Scroll(m.viewport.YOffset)
	if m.state.NavCompact() != compact {
		m.render()
	}
}

func (m *Model) checkSize() {
	if m.width < minWidth || m.height < minHeight {
		m.warning = fmt.Sprintf("Terminal too small (%dx%d). Minimum size: %dx%d",
			m.width, m.height, minWidth, minHeight)
		return
	}
	m.warning = ""
}

func countLines(s string) int {
	if s == "" {
		return 0
	}
	n := 1
	for _, r := range s {
		if r == '\n' {
			n++
		}
	}
	return n
}
