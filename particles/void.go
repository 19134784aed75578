package particles

import (
	"math"

	cfg "github.com/automoto/seed-hodl/config"
	math2 "github.com/yohamta/donburi/features/math"
)

// VoidPhase is the stage of the void sequence.
type VoidPhase int

const (
	// Exploding lasts a single frame: every particle is flung outward.
	Exploding VoidPhase = iota
	// Expanding scatters the particles while the darkness spreads.
	Expanding
	// Converging pulls the particles into the moon. It lasts until the host
	// leaves void mode.
	Converging
)

func (p VoidPhase) String() string {
	switch p {
	case Exploding:
		return "exploding"
	case Expanding:
		return "expanding"
	case Converging:
		return "converging"
	}
	return "unknown"
}

type voidState struct {
	phase VoidPhase

	// spread grows from 0 past 1 while Expanding; it scales the darkness.
	spread float64
	// clock drives the moon pulse while Converging.
	clock float64

	moon *Moon
}

func (e *Engine) updateVoid() {
	v := e.void
	if v.phase == Exploding {
		e.explode()
		v.phase = Expanding
	}

	switch v.phase {
	case Expanding:
		for i := range e.particles {
			p := &e.particles[i]
			p.X += p.VX
			p.Y += p.VY
		}
		v.spread += e.vcfg.ExpandRate
		if v.spread > 1 {
			cx, cy := e.center()
			v.phase = Converging
			v.spread = 0
			v.moon = &Moon{
				Center: math2.Vec2{X: cx, Y: cy},
				Radius: e.vcfg.MoonRadius,
				Pulse:  e.pulse(0),
			}
		}
	case Converging:
		e.converge()
	}
}

// explode points every particle radially away from the center at a fixed speed.
func (e *Engine) explode() {
	cx, cy := e.center()
	for i := range e.particles {
		p := &e.particles[i]
		dx := p.X - cx
		dy := p.Y - cy
		dist := distance(dx, dy)
		if dist == 0 {
			dist = 1
		}
		p.VX = dx / dist * e.vcfg.ExplosionSpeed
		p.VY = dy / dist * e.vcfg.ExplosionSpeed
	}
}

func (e *Engine) pulse(clock float64) float64 {
	return math.Sin(clock*e.vcfg.PulseFreq)*e.vcfg.PulseAmp + e.vcfg.PulseBase
}

func (e *Engine) converge() {
	v := e.void
	moon := v.moon
	v.clock += e.vcfg.ConvergeRate
	moon.Pulse = e.pulse(v.clock)

	for i := range e.particles {
		p := &e.particles[i]
		if p.Absorbed {
			continue
		}
		dx := moon.Center.X - p.X
		dy := moon.Center.Y - p.Y
		dist := distance(dx, dy)
		if dist <= e.vcfg.AbsorbRadius {
			p.Absorbed = true
			continue
		}
		step := math.Min(e.vcfg.PullSpeed, dist)
		p.X += dx / dist * step
		p.Y += dy / dist * step
	}
}

func (e *Engine) drawVoid(s Surface) {
	switch e.void.phase {
	case Exploding, Expanding:
		e.drawExpanding(s)
	case Converging:
		e.drawConverging(s)
	}
}

func (e *Engine) drawExpanding(s Surface) {
	size := e.vcfg.ScatterSize
	for i := range e.particles {
		p := &e.particles[i]
		s.FillRect(p.X, p.Y, size, size, rgba(cfg.White, e.rng.Float64()*e.vcfg.ScatterAlpha))
	}

	spread := e.void.spread
	cx, cy := e.center()
	w, h := s.Size()
	s.FillRadialGradient(0, 0, w, h, RadialGradient{
		CX:     cx,
		CY:     cy,
		Radius: math.Min(e.width, e.height) * spread,
		Stops: []GradientStop{
			{Offset: 0, Color: rgba(cfg.Black, 0)},
			{Offset: 0.5, Color: rgba(cfg.Black, math.Sin(spread*math.Pi)*e.vcfg.MidStopAlpha)},
			{Offset: 1, Color: rgba(cfg.Black, e.vcfg.OuterAlpha)},
		},
	})
}

func (e *Engine) drawConverging(s Surface) {
	w, h := s.Size()
	s.FillRect(0, 0, w, h, rgba(cfg.Black, e.vcfg.OverlayAlpha))

	moon := e.void.moon
	r := moon.Radius * moon.Pulse
	s.FillCircle(moon.Center.X, moon.Center.Y, r, rgba(cfg.White, moon.Pulse*e.vcfg.MoonAlpha))
	s.StrokeCircle(moon.Center.X, moon.Center.Y, r+e.vcfg.RingGap, e.vcfg.RingWidth,
		rgba(cfg.White, moon.Pulse*e.vcfg.RingAlpha))

	size := e.vcfg.ConvergeSize
	for i := range e.particles {
		p := &e.particles[i]
		if p.Absorbed {
			continue
		}
		s.FillRect(p.X, p.Y, size, size, rgba(e.vcfg.ConvergeColor, e.rng.Float64()*e.vcfg.ConvergeAlpha))
	}
}
