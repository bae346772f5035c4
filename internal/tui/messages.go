package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/folio/internal/content"
)

// MountedMsg is delivered once the first frame has been committed.
type MountedMsg struct{}

// ClipboardMsg reports the outcome of a copy.
type ClipboardMsg struct {
	Text string
	Err  error
}

// ContentMsg carries a reloaded portfolio, or the error that prevented it.
type ContentMsg struct {
	Portfolio content.Portfolio
	Err       error
}

// NavigateMsg asks the page to scroll to a section.
type NavigateMsg struct {
	Target string
}

// mountCmd fires MountedMsg. Bubble Tea runs commands after the initial
// render, so the message always follows the first commit.
func mountCmd() tea.Msg {
	return MountedMsg{}
}

// copyCmd writes text to the clipboard through write.
func copyCmd(write func(string) error, text string) tea.Cmd {
	return func() tea.Msg {
		return ClipboardMsg{Text: text, Err: write(text)}
	}
}

func navigateCmd(target string) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Target: target}
	}
}
