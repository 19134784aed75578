// Package particles implements the staking background: an orbiting particle
// field that speeds up with every elapsed day, and the void sequence played
// when the stake is liquidated.
//
// The Engine owns all particle state. The host feeds it Inputs once per tick
// through Update and asks it to render through Draw; nothing flows back.
package particles

import (
	"math/rand/v2"
	"time"

	cfg "github.com/automoto/seed-hodl/config"
)

// Inputs are the host signals the engine reacts to.
type Inputs struct {
	DayCount int
	Void     bool
}

// Engine simulates and renders the particle field.
type Engine struct {
	pcfg cfg.ParticleConfig
	vcfg cfg.VoidConfig
	rng  *rand.Rand

	width, height float64
	particles     []Particle
	days          int
	void          *voidState
	detached      bool

	// Reused by Draw to avoid per-particle allocations
	glowStops [2]GradientStop
}

// NewEngine creates an engine for a surface of the given size.
// A nil rng seeds one from the clock.
func NewEngine(width, height float64, rng *rand.Rand) *Engine {
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>17|1))
	}
	return &Engine{
		pcfg:   cfg.Particles,
		vcfg:   cfg.Void,
		rng:    rng,
		width:  width,
		height: height,
	}
}

// SanitizeDays clamps a day count to the range the sizing formulas accept.
func SanitizeDays(days int) int {
	if days < 0 {
		return 0
	}
	return days
}

// Update advances the simulation by one frame.
func (e *Engine) Update(in Inputs) {
	if e.detached {
		return
	}
	e.days = SanitizeDays(in.DayCount)

	switch {
	case in.Void && e.void == nil:
		e.void = &voidState{phase: Exploding}
	case !in.Void && e.void != nil:
		// The host resets the streak whenever the void ends, so start over
		// rather than resuming from scattered positions.
		e.Reset()
	}

	if e.void != nil {
		e.updateVoid()
		return
	}
	e.updateOrbit()
}

// Draw renders the current frame. It does not advance the simulation.
func (e *Engine) Draw(s Surface) {
	if e.detached {
		return
	}
	s.Clear()
	if e.void != nil {
		e.drawVoid(s)
		return
	}
	e.drawOrbit(s)
}

// Resize applies a new surface size. Particle state is kept.
func (e *Engine) Resize(width, height float64) {
	e.width = width
	e.height = height
}

func (e *Engine) Size() (width, height float64) {
	return e.width, e.height
}

// Reset drops every particle and any void sequence in progress.
// The next orbiting update respawns the population from scratch.
func (e *Engine) Reset() {
	e.particles = e.particles[:0]
	e.void = nil
}

// Detach makes the engine inert; Update and Draw become no-ops.
func (e *Engine) Detach() {
	e.detached = true
	e.particles = nil
	e.void = nil
}

func (e *Engine) Detached() bool {
	return e.detached
}

// Len returns the live particle count.
func (e *Engine) Len() int {
	return len(e.particles)
}

// Phase reports the void phase; ok is false while orbiting.
func (e *Engine) Phase() (phase VoidPhase, ok bool) {
	if e.void == nil {
		return 0, false
	}
	return e.void.phase, true
}

// Moon returns a copy of the moon once the void sequence is converging.
func (e *Engine) Moon() (Moon, bool) {
	if e.void == nil || e.void.moon == nil {
		return Moon{}, false
	}
	return *e.void.moon, true
}

func (e *Engine) center() (float64, float64) {
	return e.width / 2, e.height / 2
}
