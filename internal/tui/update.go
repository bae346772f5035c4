package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/folio/internal/page"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.sized = true
		m.checkSize()
		m.render()
		if m.start != "" {
			m.jump(m.start)
			m.start = ""
		}
		return m, nil

	case MountedMsg:
		if !m.state.Mount() {
			return m, nil
		}
		m.log.WithFields(map[string]any{
			"theme":       m.state.Theme().String(),
			"decorations": m.state.DecorationsVisible(),
		}).Debug("page mounted")
		m.render()
		if !m.state.DecorationsVisible() {
			return m, nil
		}
		return m, m.ring.Tick

	case spinner.TickMsg:
		if !m.state.Listening() {
			return m, nil
		}
		var cmd tea.Cmd
		m.ring, cmd = m.ring.Update(msg)
		m.frame++
		m.render()
		return m, cmd

	case NavigateMsg:
		// Anchors depend on the width, so wait for the real size.
		if !m.sized {
			m.start = msg.Target
			return m, nil
		}
		m.start = ""
		m.jump(msg.Target)
		return m, nil

	case ContentMsg:
		if msg.Err != nil {
			m.log.Error(msg.Err, "content reload failed")
			m.status = "Content reload failed, keeping the previous version"
			m.layout()
			return m, nil
		}
		m.portfolio = msg.Portfolio
		m.status = "Content reloaded"
		m.log.Info("content reloaded")
		m.render()
		return m, nil

	case ClipboardMsg:
		if msg.Err != nil {
			m.log.Error(msg.Err, "clipboard write failed")
			m.status = fmt.Sprintf("Could not copy %s", msg.Text)
		} else {
			m.status = fmt.Sprintf("Copied %s", msg.Text)
		}
		m.layout()
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.state.Unmount()
		m.log.Debug("quitting")
		return m, tea.Quit
	case key.Matches(msg, m.keys.Theme):
		m.toggleTheme()
		return m, nil
	case key.Matches(msg, m.keys.About):
		m.jump(page.AnchorAbout)
		return m, nil
	case key.Matches(msg, m.keys.Projects):
		m.jump(page.AnchorProjects)
		return m, nil
	case key.Matches(msg, m.keys.Experience):
		m.jump(page.AnchorExperience)
		return m, nil
	case key.Matches(msg, m.keys.Contact):
		m.jump(page.AnchorContact)
		return m, nil
	case key.Matches(msg, m.keys.Top):
		m.jump(page.AnchorHome)
		return m, nil
	case key.Matches(msg, m.keys.CopyEmail):
		email := m.portfolio.Owner.Email
		if email == "" {
			m.status = "No e-mail address to copy"
			m.layout()
			return m, nil
		}
		return m, copyCmd(m.copy, email)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	m.syncScroll()
	return m, cmd
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Action == tea.MouseActionMotion:
		cw, ch := m.cellSize()
		moved := m.state.MovePointer(page.Point{
			X: float64(msg.X * cw),
			Y: float64(msg.Y * ch),
		})
		if moved && m.state.DecorationsVisible() && m.motion.Allow() {
			m.render()
		}
		return m, nil

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		target, ok := m.doc.HitTest(msg.X, msg.Y)
		if !ok {
			return m, nil
		}
		if target == page.ToggleTarget {
			m.toggleTheme()
			return m, nil
		}
		m.jump(target)
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	m.syncScroll()
	return m, cmd
}

func (m *Model) toggleTheme() {
	m.state.ToggleTheme()
	m.log.With("theme", m.state.Theme().String()).Debug("theme toggled")
	m.render()
}

// jump scrolls the body so target's first line sits under the nav bar.
func (m *Model) jump(target string) {
	line, ok := m.doc.Anchor(target)
	if !ok {
		m.log.With("target", target).Warn("unknown section")
		return
	}
	m.viewport.SetYOffset(line)
	m.syncScroll()
}

func (m Model) cellSize() (int, int) {
	cw, ch := m.pageOpts.CellWidth, m.pageOpts.CellHeight
	if cw <= 0 {
		cw = 8
	}
	if ch <= 0 {
		ch = 16
	}
	return cw, ch
}
