package page

import (
	"math/rand/v2"

	"github.com/alexisbeaulieu97/folio/internal/ui/components"
)

// Point is a pointer position in px.
type Point struct {
	X, Y float64
}

// DefaultParticles is the size of the particle field.
const DefaultParticles = 20

// State is the presentation state of the page: whether it has mounted, the
// theme, the pointer and the scroll offset. Every method runs on the single
// goroutine that delivers host events, so State carries no locks.
type State struct {
	mounted   bool
	listening bool
	theme     components.ThemeMode
	pointer   Point
	scroll    int

	decorated     bool
	particleCount int
	particles     []Particle
	random        func() float64
}

// StateOption customises a State at construction.
type StateOption func(*State)

// WithTheme starts the page in mode instead of dark.
func WithTheme(mode components.ThemeMode) StateOption {
	return func(s *State) {
		s.theme = mode
	}
}

// WithParticles sets how many particles Mount scatters. Negative counts are
// treated as zero.
func WithParticles(n int) StateOption {
	return func(s *State) {
		s.particleCount = max(n, 0)
	}
}

// WithDecorations turns the background layer off for the whole session.
func WithDecorations(enabled bool) StateOption {
	return func(s *State) {
		s.decorated = enabled
	}
}

// WithRandom replaces the source of particle placement. fn must return values
// in [0, 1).
func WithRandom(fn func() float64) StateOption {
	return func(s *State) {
		if fn != nil {
			s.random = fn
		}
	}
}

// NewState returns an unmounted page in the dark theme with the pointer at the
// origin and no scroll.
func NewState(opts ...StateOption) *State {
	s := &State{
		theme:         components.ThemeDark,
		decorated:     true,
		particleCount: DefaultParticles,
		random:        rand.Float64,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Mount records the first committed render. It scatters the particles and
// starts listening for pointer and scroll events. Only the first call has an
// effect; it reports whether this call was that one.
func (s *State) Mount() bool {
	if s.mounted {
		return false
	}
	s.mounted = true
	s.listening = true
	s.particles = scatter(s.particleCount, s.random)
	return true
}

// Unmount stops pointer and scroll tracking. The page stays mounted.
func (s *State) Unmount() {
	s.listening = false
}

// Mounted reports whether Mount has run.
func (s *State) Mounted() bool {
	return s.mounted
}

// Listening reports whether pointer and scroll events are applied.
func (s *State) Listening() bool {
	return s.listening
}

// ToggleTheme flips between dark and light.
func (s *State) ToggleTheme() {
	s.theme = s.theme.Toggle()
}

// Theme returns the current theme mode.
func (s *State) Theme() components.ThemeMode {
	return s.theme
}

// MovePointer stores p. It reports false and changes nothing while not listening.
func (s *State) MovePointer(p Point) bool {
	if !s.listening {
		return false
	}
	s.pointer = p
	return true
}

// Pointer returns the last pointer position.
func (s *State) Pointer() Point {
	return s.pointer
}

// Scroll stores the scroll offset in rows; negative offsets clamp to zero.
// It reports false and changes nothing while not listening.
func (s *State) Scroll(offset int) bool {
	if !s.listening {
		return false
	}
	s.scroll = max(offset, 0)
	return true
}

// ScrollOffset returns the last scroll offset.
func (s *State) ScrollOffset() int {
	return s.scroll
}

// NavCompact reports whether the navigation bar collapses to one row, which
// it does once the page has scrolled.
func (s *State) NavCompact() bool {
	return s.scroll > 0
}

// Classes returns the semantic class lists of the current theme.
func (s *State) Classes() components.ThemeClasses {
	return components.ClassesFor(s.theme)
}

// DecorationsVisible reports whether the background layer is drawn: only
// once mounted, and never when disabled.
func (s *State) DecorationsVisible() bool {
	return s.mounted && s.decorated
}

// Particles returns a copy of the particle placements. It is empty before mount.
func (s *State) Particles() []Particle {
	return append([]Particle(nil), s.particles...)
}
