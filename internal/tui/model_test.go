package tui

import (
	"errors"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/folio/internal/assets"
	"github.com/alexisbeaulieu97/folio/internal/content"
	"github.com/alexisbeaulieu97/folio/internal/page"
	"github.com/alexisbeaulieu97/folio/internal/ui/components"
)

type fakeClipboard struct {
	written []string
	err     error
}

func (f *fakeClipboard) write(text string) error {
	f.written = append(f.written, text)
	return f.err
}

func newTestModel(clip *fakeClipboard) Model {
	if clip == nil {
		clip = &fakeClipboard{}
	}
	return NewModel(Options{
		Portfolio: content.Default(),
		Page: page.Options{
			Assets:     assets.NewPlaceholder(8, 16),
			CellWidth:  8,
			CellHeight: 16,
			Year:       2025,
		},
		State:     []page.StateOption{page.WithRandom(func() float64 { return 0.5 })},
		Clipboard: clip.write,
	})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func press(t *testing.T, m Model, keys string) (Model, tea.Cmd) {
	t.Helper()
	return update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(keys)})
}

// readyModel is sized and mounted.
func readyModel(t *testing.T, clip *fakeClipboard) Model {
	t.Helper()
	m, _ := update(t, newTestModel(clip), tea.WindowSizeMsg{Width: 120, Height: 40})
	m, _ = update(t, m, MountedMsg{})
	return m
}

func TestViewBeforeReady(t *testing.T) {
	assert.Equal(t, "Initializing...", newTestModel(nil).View())
}

func TestInitMounts(t *testing.T) {
	cmd := newTestModel(nil).Init()
	require.NotNil(t, cmd)
	assert.IsType(t, MountedMsg{}, cmd())
}

func TestInitWithStartSection(t *testing.T) {
	m := NewModel(Options{Portfolio: content.Default(), Start: page.AnchorContact})
	assert.NotNil(t, m.Init())
}

func TestWindowSizeWarning(t *testing.T) {
	m, _ := update(t, newTestModel(nil), tea.WindowSizeMsg{Width: 70, Height: 20})
	assert.Equal(t, "Terminal too small (70x20). Minimum size: 80x24", m.warning)
	assert.Contains(t, ansi.Strip(m.View()), "Terminal too small")

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Empty(t, m.warning)
	assert.NotContains(t, ansi.Strip(m.View()), "Terminal too small")
}

func TestMountHappensOnce(t *testing.T) {
	m, _ := update(t, newTestModel(nil), tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.False(t, m.State().Mounted())
	assert.NotContains(t, ansi.Strip(m.Document().Body), "░")

	m, cmd := update(t, m, MountedMsg{})
	assert.True(t, m.State().Mounted())
	assert.NotNil(t, cmd, "animation starts")
	particles := m.State().Particles()
	assert.Contains(t, ansi.Strip(m.Document().Body), "░")

	m, cmd = update(t, m, MountedMsg{})
	assert.Nil(t, cmd)
	assert.Equal(t, particles, m.State().Particles())
}

func TestMountWithoutDecorationsDoesNotAnimate(t *testing.T) {
	m := NewModel(Options{
		Portfolio: content.Default(),
		State:     []page.StateOption{page.WithDecorations(false)},
	})
	m, cmd := update(t, m, MountedMsg{})
	assert.True(t, m.State().Mounted())
	assert.Nil(t, cmd)
}

func TestTickAdvancesFrame(t *testing.T) {
	m, _ := update(t, newTestModel(nil), tea.WindowSizeMsg{Width: 120, Height: 40})
	m, cmd := update(t, m, spinner.TickMsg{})
	assert.Zero(t, m.Frame(), "ticks before mount are dropped")
	assert.Nil(t, cmd)

	m, _ = update(t, m, MountedMsg{})
	m, cmd = update(t, m, spinner.TickMsg{})
	assert.Equal(t, 1, m.Frame())
	assert.NotNil(t, cmd)
}

func TestToggleThemeKey(t *testing.T) {
	m := readyModel(t, nil)
	assert.Contains(t, ansi.Strip(m.Document().Nav), "☀")

	m, _ = press(t, m, "t")
	assert.Equal(t, components.ThemeLight, m.State().Theme())
	assert.Contains(t, ansi.Strip(m.Document().Nav), "☾")

	m, _ = press(t, m, "t")
	assert.Equal(t, components.ThemeDark, m.State().Theme())
}

func TestSectionKeysJump(t *testing.T) {
	m := readyModel(t, nil)
	want, ok := m.Document().Anchor(page.AnchorProjects)
	require.True(t, ok)

	m, _ = press(t, m, "2")
	assert.Equal(t, want, m.viewport.YOffset)
	assert.Equal(t, want, m.State().ScrollOffset())
	assert.True(t, m.State().NavCompact())
	assert.Equal(t, 2, m.Document().NavHeight)

	m, _ = press(t, m, "g")
	assert.Zero(t, m.viewport.YOffset)
	assert.False(t, m.State().NavCompact())
	assert.Equal(t, 4, m.Document().NavHeight)
}

func TestNavigateBeforeReady(t *testing.T) {
	m, _ := update(t, newTestModel(nil), NavigateMsg{Target: page.AnchorProjects})
	assert.False(t, m.ready)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Positive(t, m.viewport.YOffset)
	assert.Empty(t, m.start)
}

func TestPointerMotion(t *testing.T) {
	motion := tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionMotion}

	m, _ := update(t, newTestModel(nil), tea.WindowSizeMsg{Width: 120, Height: 40})
	m, _ = update(t, m, motion)
	assert.Equal(t, page.Point{}, m.State().Pointer(), "ignored before mount")

	m, _ = update(t, m, MountedMsg{})
	m, _ = update(t, m, motion)
	assert.Equal(t, page.Point{X: 80, Y: 80}, m.State().Pointer())
}

func TestClickToggle(t *testing.T) {
	m := readyModel(t, nil)
	toggle := m.Document().Toggle

	m, _ = update(t, m, tea.MouseMsg{
		X: toggle.X, Y: toggle.Y,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	assert.Equal(t, components.ThemeLight, m.State().Theme())
}

func TestClickNavLink(t *testing.T) {
	m := readyModel(t, nil)
	links := m.Document().Links
	require.NotEmpty(t, links)
	link := links[0]
	want, ok := m.Document().Anchor(link.Target)
	require.True(t, ok)

	m, _ = update(t, m, tea.MouseMsg{
		X: link.Region.X, Y: link.Region.Y,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	assert.Equal(t, want, m.viewport.YOffset)
}

func TestWheelScrollsBody(t *testing.T) {
	m := readyModel(t, nil)
	m, _ = update(t, m, tea.MouseMsg{
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonWheelDown,
	})
	assert.Positive(t, m.viewport.YOffset)
	assert.Equal(t, m.viewport.YOffset, m.State().ScrollOffset())
	assert.True(t, m.State().NavCompact())
}

func TestCopyEmail(t *testing.T) {
	clip := &fakeClipboard{}
	m := readyModel(t, clip)

	m, cmd := press(t, m, "y")
	require.NotNil(t, cmd)
	msg := cmd()
	require.IsType(t, ClipboardMsg{}, msg)
	assert.Equal(t, []string{"hello@alexandriaroberts.dev"}, clip.written)

	m, _ = update(t, m, msg)
	assert.Equal(t, "Copied hello@alexandriaroberts.dev", m.Status())
	assert.Contains(t, ansi.Strip(m.View()), "Copied hello@alexandriaroberts.dev")
}

func TestCopyEmailFailure(t *testing.T) {
	m := readyModel(t, &fakeClipboard{err: errors.New("no clipboard")})

	m, cmd := press(t, m, "y")
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())
	assert.Equal(t, "Could not copy hello@alexandriaroberts.dev", m.Status())
}

func TestHelpToggle(t *testing.T) {
	m := readyModel(t, nil)
	assert.False(t, m.help.ShowAll)

	m, _ = press(t, m, "?")
	assert.True(t, m.help.ShowAll)
	assert.Contains(t, m.View(), "experience")
}

func TestQuitStopsListening(t *testing.T) {
	m := readyModel(t, nil)

	m, cmd := press(t, m, "q")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.False(t, m.State().Listening())
	assert.True(t, m.State().Mounted())

	m, _ = update(t, m, tea.MouseMsg{X: 3, Y: 3, Action: tea.MouseActionMotion})
	assert.Equal(t, page.Point{}, m.State().Pointer())
}

func TestContentReload(t *testing.T) {
	m := readyModel(t, nil)

	updated := content.Default()
	updated.Owner.Name = "Sam Example"
	m, _ = update(t, m, ContentMsg{Portfolio: updated})
	assert.Equal(t, "Content reloaded", m.Status())
	assert.Contains(t, ansi.Strip(m.Document().Body), "Sam Example")

	m, _ = update(t, m, ContentMsg{Err: errors.New("bad yaml")})
	assert.Contains(t, m.Status(), "reload failed")
	assert.Contains(t, ansi.Strip(m.Document().Body), "Sam Example")
}

func TestResizeResyncsScrollOffset(t *testing.T) {
	m := readyModel(t, nil)
	for range 50 {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyPgDown})
	}
	require.Positive(t, m.viewport.YOffset)
	require.Equal(t, m.viewport.YOffset, m.State().ScrollOffset())
	require.True(t, m.State().NavCompact())

	tall := countLines(m.Document().Body) + 40
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: tall})
	assert.Zero(t, m.viewport.YOffset)
	assert.Equal(t, m.viewport.YOffset, m.State().ScrollOffset())
	assert.False(t, m.State().NavCompact())
	assert.Equal(t, 4, m.Document().NavHeight)
}
