package particles

import (
	"math"

	cfg "github.com/automoto/seed-hodl/config"
	math2 "github.com/yohamta/donburi/features/math"
)

// TargetCount is the population the field converges to after days days.
func (e *Engine) TargetCount(days int) int {
	days = SanitizeDays(days)
	n := float64(e.pcfg.BaseCount) + float64(days)*float64(e.pcfg.CountPerDay)
	return int(math.Min(n, float64(e.pcfg.MaxCount)))
}

// OrbitSpeed is the angular step per frame in radians.
func (e *Engine) OrbitSpeed(days int) float64 {
	return e.pcfg.BaseSpeed + float64(SanitizeDays(days))*e.pcfg.SpeedPerDay
}

// MaxRadius bounds every orbit after days days.
func (e *Engine) MaxRadius(days int) float64 {
	return e.pcfg.BaseMaxRadius + float64(SanitizeDays(days))*e.pcfg.MaxRadiusPerDay
}

func (e *Engine) spawn(cx, cy float64) Particle {
	angle := e.rng.Float64() * 2 * math.Pi
	radius := e.rng.Float64()*e.pcfg.SpawnRadiusSpread + e.pcfg.SpawnMinRadius
	return Particle{
		X:      cx + math.Cos(angle)*radius,
		Y:      cy + math.Sin(angle)*radius,
		Angle:  angle,
		Radius: radius,
	}
}

// adjustPopulation fills up to the target in one step and trims one
// particle per frame, newest first.
func (e *Engine) adjustPopulation(cx, cy float64) {
	target := e.TargetCount(e.days)
	for len(e.particles) < target {
		e.particles = append(e.particles, e.spawn(cx, cy))
	}
	if len(e.particles) > target {
		e.particles = e.particles[:len(e.particles)-1]
	}
}

func (e *Engine) updateOrbit() {
	cx, cy := e.center()
	e.adjustPopulation(cx, cy)

	speed := e.OrbitSpeed(e.days)
	maxRadius := e.MaxRadius(e.days)
	for i := range e.particles {
		p := &e.particles[i]
		p.Angle = math.Mod(p.Angle+speed, 2*math.Pi)
		p.Radius = math.Min(p.Radius, maxRadius)
		p.X = cx + math.Cos(p.Angle)*p.Radius
		p.Y = cy + math.Sin(p.Angle)*p.Radius
		p.Trail.Push(math2.Vec2{X: p.X, Y: p.Y})
	}
}

func (e *Engine) drawOrbit(s Surface) {
	c := e.pcfg.Color
	glow := e.pcfg.GlowRadius
	e.glowStops[0] = GradientStop{Offset: 0, Color: rgba(c, e.pcfg.GlowAlpha)}
	e.glowStops[1] = GradientStop{Offset: 1, Color: rgba(c, 0)}

	for i := range e.particles {
		p := &e.particles[i]

		// Oldest trail point is faintest
		n := p.Trail.Len()
		for j := 0; j < n; j++ {
			pt := p.Trail.At(j)
			s.FillRect(pt.X, pt.Y, 1, 1, rgba(c, float64(j)/float64(n)*e.pcfg.TrailAlpha))
		}

		s.FillCircle(p.X, p.Y, e.pcfg.DotRadius, rgba(c, e.pcfg.DotAlpha))
		s.FillRadialGradient(p.X-glow, p.Y-glow, glow*2, glow*2, RadialGradient{
			CX:     p.X,
			CY:     p.Y,
			Radius: glow,
			Stops:  e.glowStops[:],
		})
	}

	if e.days > 0 {
		e.drawCoreGlow(s)
	}
}

func (e *Engine) drawCoreGlow(s Surface) {
	cx, cy := e.center()
	size := math.Min(e.pcfg.CoreGlowBase+float64(e.days)*e.pcfg.CoreGlowPerDay, e.pcfg.CoreGlowMax)
	s.FillRadialGradient(cx-size, cy-size, size*2, size*2, RadialGradient{
		CX:     cx,
		CY:     cy,
		Radius: size,
		Stops: []GradientStop{
			{Offset: 0, Color: rgba(cfg.White, float64(e.days)*e.pcfg.CoreGlowAlphaPerDay)},
			{Offset: 1, Color: rgba(e.pcfg.Color, 0)},
		},
	})
}
