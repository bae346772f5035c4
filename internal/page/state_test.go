package page

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/folio/internal/ui/components"
)

func half() float64 { return 0.5 }

func TestNewStateDefaults(t *testing.T) {
	s := NewState()

	assert.False(t, s.Mounted())
	assert.False(t, s.Listening())
	assert.Equal(t, components.ThemeDark, s.Theme())
	assert.Equal(t, Point{}, s.Pointer())
	assert.Zero(t, s.ScrollOffset())
	assert.False(t, s.DecorationsVisible())
	assert.Empty(t, s.Particles())
}

func TestMountFiresOnce(t *testing.T) {
	s := NewState()

	require.True(t, s.Mount())
	first := s.Particles()
	require.Len(t, first, DefaultParticles)

	for range 3 {
		assert.False(t, s.Mount())
	}
	assert.True(t, s.Mounted())
	assert.True(t, s.DecorationsVisible())
	assert.Equal(t, first, s.Particles(), "placements are generated once")
}

func TestParticlesReturnsCopy(t *testing.T) {
	s := NewState(WithRandom(half))
	s.Mount()

	particles := s.Particles()
	particles[0].Left = 99
	assert.Equal(t, 50.0, s.Particles()[0].Left)
}

func TestToggleThemeIsInvolution(t *testing.T) {
	s := NewState()
	before := s.Classes()

	s.ToggleTheme()
	assert.Equal(t, components.ThemeLight, s.Theme())
	assert.NotEqual(t, before, s.Classes())

	s.ToggleTheme()
	assert.Equal(t, components.ThemeDark, s.Theme())
	assert.Equal(t, before, s.Classes())
}

func TestThemeClassesFullyPopulated(t *testing.T) {
	for _, mode := range []components.ThemeMode{components.ThemeDark, components.ThemeLight} {
		s := NewState(WithTheme(mode))
		for i, value := range s.Classes().Values() {
			assert.NotEmpty(t, value, "%s field %d", mode, i)
		}
	}
}

func TestPointerLastWriteWins(t *testing.T) {
	s := NewState()
	s.Mount()

	assert.True(t, s.MovePointer(Point{X: 100, Y: 200}))
	assert.True(t, s.MovePointer(Point{X: 50, Y: 50}))
	assert.Equal(t, Point{X: 50, Y: 50}, s.Pointer())
}

func TestEventsIgnoredWhileNotListening(t *testing.T) {
	s := NewState()

	assert.False(t, s.MovePointer(Point{X: 10, Y: 10}))
	assert.False(t, s.Scroll(5))
	assert.Equal(t, Point{}, s.Pointer())
	assert.Zero(t, s.ScrollOffset())

	s.Mount()
	require.True(t, s.Scroll(5))
	s.Unmount()

	assert.False(t, s.Listening())
	assert.True(t, s.Mounted(), "unmount only releases listeners")
	assert.False(t, s.MovePointer(Point{X: 1, Y: 1}))
	assert.False(t, s.Scroll(9))
	assert.Equal(t, 5, s.ScrollOffset())
}

func TestScrollDrivesCompactNav(t *testing.T) {
	s := NewState()
	s.Mount()
	assert.False(t, s.NavCompact())

	s.Scroll(3)
	assert.True(t, s.NavCompact())

	s.Scroll(-4)
	assert.Zero(t, s.ScrollOffset())
	assert.False(t, s.NavCompact())
}

func TestStateOptions(t *testing.T) {
	s := NewState(WithParticles(-3))
	s.Mount()
	assert.Empty(t, s.Particles())

	s = NewState(WithParticles(5), WithRandom(half), WithRandom(nil))
	s.Mount()
	require.Len(t, s.Particles(), 5)
	for _, p := range s.Particles() {
		assert.Equal(t, Particle{
			Left:     50,
			Top:      50,
			Delay:    time.Second,
			Duration: 3500 * time.Millisecond,
		}, p)
	}
}
