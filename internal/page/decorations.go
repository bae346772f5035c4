package page

import (
	"fmt"
	"strconv"
	"time"

	"github.com/alexisbeaulieu97/folio/internal/ui/components"
)

// Particle is one dot of the particle field. Left and Top are percentages of
// the canvas; the dot pulses with period Duration, shifted by Delay.
type Particle struct {
	Left     float64
	Top      float64
	Delay    time.Duration
	Duration time.Duration
}

// Lit reports whether the particle is at the bright half of its pulse at
// elapsed time t.
func (p Particle) Lit(t time.Duration) bool {
	if p.Duration <= 0 {
		return true
	}
	phase := (t + p.Delay) % p.Duration
	return phase < p.Duration/2
}

func scatter(n int, random func() float64) []Particle {
	particles := make([]Particle, n)
	for i := range particles {
		particles[i] = Particle{
			Left:     random() * 100,
			Top:      random() * 100,
			Delay:    time.Duration(random() * float64(2*time.Second)),
			Duration: 2*time.Second + time.Duration(random()*float64(3*time.Second)),
		}
	}
	return particles
}

// Edge is the side of the canvas an anchor measures from.
type Edge int

const (
	EdgeStart Edge = iota // top or left
	EdgeEnd               // bottom or right
)

// Anchor places a box on the canvas by percentages measured from an edge
// on each axis.
type Anchor struct {
	Horizontal Edge
	X          float64
	Vertical   Edge
	Y          float64
}

// Place returns the top-left cell of a boxW by boxH box on a width by height canvas.
func (a Anchor) Place(width, height, boxW, boxH int) (int, int) {
	x := int(float64(width) * a.X / 100)
	if a.Horizontal == EdgeEnd {
		x = width - x - boxW
	}
	y := int(float64(height) * a.Y / 100)
	if a.Vertical == EdgeEnd {
		y = height - y - boxH
	}
	return x, y
}

// Orb is a blurred gradient blob drifting against the pointer.
type Orb struct {
	Classes string
	Anchor  Anchor
	// Factor scales the pointer position into the orb's offset.
	Factor float64
	Offset Point
}

// Transform is the offset as a CSS translate, e.g. "translate(2px, 4px)".
func (o Orb) Transform() string {
	return fmt.Sprintf("translate(%spx, %spx)", formatPx(o.Offset.X), formatPx(o.Offset.Y))
}

func formatPx(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// GridPattern is the faint line grid behind the page. Cell is the spacing as
// a percentage of the canvas.
type GridPattern struct {
	Classes string
	Cell    float64
}

// Decorations is the background layer: orbs, a grid and particles.
type Decorations struct {
	Orbs      []Orb
	Grid      *GridPattern
	Particles []Particle
	// ParticleClasses styles every particle.
	ParticleClasses string
}

// Empty reports whether there is nothing to draw.
func (d Decorations) Empty() bool {
	return len(d.Orbs) == 0 && d.Grid == nil && len(d.Particles) == 0
}

// Count is the number of decorative elements.
func (d Decorations) Count() int {
	n := len(d.Orbs) + len(d.Particles)
	if d.Grid != nil {
		n++
	}
	return n
}

type orbSpec struct {
	size   string
	dark   string
	light  string
	anchor Anchor
	factor float64
}

var orbSpecs = [...]orbSpec{
	{
		size:   "w-96 h-96",
		dark:   "bg-gradient-to-r from-orange-500/20 to-red-500/20",
		light:  "bg-gradient-to-r from-orange-300/30 to-red-300/30",
		anchor: Anchor{Horizontal: EdgeStart, X: 10, Vertical: EdgeStart, Y: 10},
		factor: 0.02,
	},
	{
		size:   "w-80 h-80",
		dark:   "bg-gradient-to-r from-purple-500/20 to-pink-500/20",
		light:  "bg-gradient-to-r from-purple-300/30 to-pink-300/30",
		anchor: Anchor{Horizontal: EdgeEnd, X: 10, Vertical: EdgeStart, Y: 60},
		factor: -0.01,
	},
	{
		size:   "w-64 h-64",
		dark:   "bg-gradient-to-r from-yellow-500/20 to-orange-500/20",
		light:  "bg-gradient-to-r from-yellow-300/30 to-orange-300/30",
		anchor: Anchor{Horizontal: EdgeStart, X: 20, Vertical: EdgeEnd, Y: 20},
		factor: 0.015,
	},
}

// Decorations returns the background layer for the current state. It is
// empty until the page mounts; afterwards the set of elements is fixed and
// only the orb offsets follow the pointer.
func (s *State) Decorations() Decorations {
	if !s.DecorationsVisible() {
		return Decorations{}
	}

	light := s.theme == components.ThemeLight
	orbs := make([]Orb, 0, len(orbSpecs))
	for _, spec := range orbSpecs {
		tint := spec.dark
		if light {
			tint = spec.light
		}
		orbs = append(orbs, Orb{
			Classes: components.Cn(spec.size, tint, "rounded-full blur-3xl").String(),
			Anchor:  spec.anchor,
			Factor:  spec.factor,
			Offset:  Point{X: s.pointer.X * spec.factor, Y: s.pointer.Y * spec.factor},
		})
	}

	grid := &GridPattern{Classes: "text-orange-500 opacity-5", Cell: 10}
	particleClasses := "w-2 h-2 bg-orange-500/30 rounded-full animate-pulse"
	if light {
		grid.Classes = "text-orange-500 opacity-3"
		particleClasses = "w-2 h-2 bg-orange-400/40 rounded-full animate-pulse"
	}

	return Decorations{
		Orbs:            orbs,
		Grid:            grid,
		Particles:       s.Particles(),
		ParticleClasses: particleClasses,
	}
}
