package particles

import (
	"math"
	"testing"

	math2 "github.com/yohamta/donburi/features/math"
)

func TestVoidFlipExplodesEveryParticle(t *testing.T) {
	e := newTestEngine()
	e.Update(Inputs{})
	if e.Len() != 50 {
		t.Fatalf("population: got=%d want=50", e.Len())
	}

	e.Update(Inputs{Void: true})

	cx, cy := e.center()
	for i, p := range e.particles {
		speed := distance(p.VX, p.VY)
		if math.Abs(speed-15) > eps {
			t.Fatalf("particle %d: speed got=%v want=15", i, speed)
		}
		dx, dy := p.X-cx, p.Y-cy
		if p.VX*dx+p.VY*dy <= 0 {
			t.Fatalf("particle %d is not moving away from the center", i)
		}
		if cross := p.VX*dy - p.VY*dx; math.Abs(cross) > 1e-6*distance(dx, dy) {
			t.Fatalf("particle %d velocity is not radial (cross=%v)", i, cross)
		}
	}

	phase, ok := e.Phase()
	if !ok || phase != Expanding {
		t.Fatalf("phase after explosion: got=%v ok=%v want=%v", phase, ok, Expanding)
	}
}

func TestExplosionAtCenterUsesFallbackDistance(t *testing.T) {
	e := newTestEngine()
	cx, cy := e.center()
	e.particles = []Particle{{X: cx, Y: cy}, {X: cx + 3, Y: cy - 4}}
	e.void = &voidState{}

	e.explode()

	p := e.particles[0]
	if math.IsNaN(p.VX) || math.IsNaN(p.VY) {
		t.Fatalf("velocity at center is NaN: (%v, %v)", p.VX, p.VY)
	}
	if p.VX != 0 || p.VY != 0 {
		t.Fatalf("velocity at center: got=(%v, %v) want=(0, 0)", p.VX, p.VY)
	}

	q := e.particles[1]
	if math.Abs(q.VX-9) > eps || math.Abs(q.VY+12) > eps {
		t.Fatalf("velocity for (3,-4) offset: got=(%v, %v) want=(9, -12)", q.VX, q.VY)
	}
}

func TestExpansionAccumulatesPerFrame(t *testing.T) {
	e := newTestEngine()
	e.Update(Inputs{})
	e.Update(Inputs{Void: true})
	if math.Abs(e.void.spread-0.02) > eps {
		t.Fatalf("spread after first void frame: got=%v want=0.02", e.void.spread)
	}

	p := e.particles[0]
	e.Update(Inputs{Void: true})
	if math.Abs(e.void.spread-0.04) > eps {
		t.Fatalf("spread after second void frame: got=%v want=0.04", e.void.spread)
	}
	q := e.particles[0]
	if math.Abs(q.X-p.X-p.VX) > eps || math.Abs(q.Y-p.Y-p.VY) > eps {
		t.Fatalf("particle did not move by its velocity")
	}
}

func TestExpansionFlipsToConvergenceAfterPassingOne(t *testing.T) {
	e := newTestEngine()
	e.void = &voidState{phase: Expanding, spread: 0.97}

	e.Update(Inputs{Void: true})
	if e.void.phase != Expanding {
		t.Fatalf("flipped too early at spread=%v", e.void.spread)
	}
	if _, ok := e.Moon(); ok {
		t.Fatalf("moon created before convergence")
	}

	e.Update(Inputs{Void: true})
	if e.void.phase != Converging {
		t.Fatalf("phase: got=%v want=%v", e.void.phase, Converging)
	}
	if e.void.spread != 0 {
		t.Fatalf("spread should reset on convergence, got=%v", e.void.spread)
	}
	moon, ok := e.Moon()
	if !ok {
		t.Fatalf("expected a moon once converging")
	}
	cx, cy := e.center()
	if moon.Radius != 80 || moon.Center.X != cx || moon.Center.Y != cy {
		t.Fatalf("moon: got=%+v want radius 80 at (%v, %v)", moon, cx, cy)
	}
}

func TestSustainedVoidReachesMoon(t *testing.T) {
	e := newTestEngine()
	e.Update(Inputs{})
	for i := 0; i < 51; i++ {
		e.Update(Inputs{Void: true})
	}

	phase, ok := e.Phase()
	if !ok || phase != Converging {
		t.Fatalf("phase after 51 void frames: got=%v ok=%v", phase, ok)
	}
	moon, ok := e.Moon()
	if !ok || moon.Radius != 80 {
		t.Fatalf("moon after 51 void frames: %+v ok=%v", moon, ok)
	}
}

// Center of the 1280x720 test surface.
const testCX, testCY = 640.0, 360.0

func convergingEngine(particles ...Particle) *Engine {
	e := newTestEngine()
	cx, cy := e.center()
	e.particles = particles
	e.void = &voidState{
		phase: Converging,
		moon:  &Moon{Center: math2.Vec2{X: cx, Y: cy}, Radius: 80, Pulse: 0.7},
	}
	return e
}

func TestConvergenceMovesTowardMoon(t *testing.T) {
	cx, cy := testCX, testCY
	e := convergingEngine(
		Particle{X: cx + 100, Y: cy},
		Particle{X: cx, Y: cy - 12},
		Particle{X: cx + 6, Y: cy + 8},
		Particle{X: cx - 5, Y: cy},
	)

	e.Update(Inputs{Void: true})

	dist := func(p Particle) float64 { return distance(p.X-cx, p.Y-cy) }
	if got := dist(e.particles[0]); math.Abs(got-92) > eps {
		t.Fatalf("far particle: got=%v want=92", got)
	}
	if got := dist(e.particles[1]); math.Abs(got-4) > eps {
		t.Fatalf("near particle: got=%v want=4", got)
	}
	// Exactly at the absorb radius: absorbed, not moved.
	if p := e.particles[2]; p.X != cx+6 || p.Y != cy+8 || !p.Absorbed {
		t.Fatalf("particle at distance 10 should be absorbed in place: %+v", p)
	}
	if p := e.particles[3]; p.X != cx-5 || !p.Absorbed {
		t.Fatalf("particle inside the moon should be absorbed in place: %+v", p)
	}

	e.Update(Inputs{Void: true})
	if !e.particles[1].Absorbed {
		t.Fatalf("particle within 10px of the moon should be absorbed on the next frame")
	}
	if got := dist(e.particles[1]); math.Abs(got-4) > eps {
		t.Fatalf("absorbed particle moved: dist=%v", got)
	}
}

func TestConvergenceNeverOvershoots(t *testing.T) {
	cx, cy := testCX, testCY
	e := convergingEngine(Particle{X: cx + 20, Y: cy})
	e.vcfg.PullSpeed = 50

	e.Update(Inputs{Void: true})

	p := e.particles[0]
	if math.Abs(p.X-cx) > eps || math.Abs(p.Y-cy) > eps {
		t.Fatalf("particle overshot the moon: (%v, %v) center (%v, %v)", p.X, p.Y, cx, cy)
	}
}

func TestConvergenceDistanceStrictlyDecreases(t *testing.T) {
	e := newTestEngine()
	e.Update(Inputs{DayCount: 1})
	for i := 0; i < 60; i++ {
		e.Update(Inputs{Void: true})
	}
	moon, ok := e.Moon()
	if !ok {
		t.Fatalf("expected convergence after 60 void frames")
	}

	for frame := 0; frame < 30; frame++ {
		before := make([]float64, e.Len())
		for i, p := range e.particles {
			before[i] = distance(p.X-moon.Center.X, p.Y-moon.Center.Y)
		}
		e.Update(Inputs{Void: true})
		for i, p := range e.particles {
			after := distance(p.X-moon.Center.X, p.Y-moon.Center.Y)
			if before[i] > 10 && !(after < before[i]) {
				t.Fatalf("frame %d particle %d: distance %v -> %v", frame, i, before[i], after)
			}
			if before[i] > 10 && before[i]-after > 8+eps {
				t.Fatalf("frame %d particle %d moved more than 8px", frame, i)
			}
		}
	}
}

func TestMoonPulseOscillates(t *testing.T) {
	e := convergingEngine()

	seen := map[bool]bool{}
	for i := 0; i < 60; i++ {
		e.Update(Inputs{Void: true})
		moon, _ := e.Moon()
		want := math.Sin(e.void.clock*4)*0.3 + 0.7
		if math.Abs(moon.Pulse-want) > eps {
			t.Fatalf("pulse: got=%v want=%v", moon.Pulse, want)
		}
		if moon.Pulse < 0.4-eps || moon.Pulse > 1+eps {
			t.Fatalf("pulse out of range: %v", moon.Pulse)
		}
		seen[moon.Pulse > 0.7] = true
	}
	if !seen[true] || !seen[false] {
		t.Fatalf("pulse never oscillated around its base")
	}
}

func TestDrawExpandingOverlay(t *testing.T) {
	e := newTestEngine()
	e.Update(Inputs{})
	e.Update(Inputs{Void: true})

	s := newRecordingSurface(1280, 720)
	e.Draw(s)

	if len(s.rects) != e.Len() {
		t.Fatalf("scatter pixels: got=%d want=%d", len(s.rects), e.Len())
	}
	for _, r := range s.rects {
		if r.C.A < 0 || r.C.A >= 0.5 {
			t.Fatalf("scatter alpha out of [0, 0.5): %v", r.C.A)
		}
	}
	if len(s.gradients) != 1 {
		t.Fatalf("overlay gradients: got=%d want=1", len(s.gradients))
	}
	g := s.gradients[0]
	if g.W != 1280 || g.H != 720 {
		t.Fatalf("overlay should cover the surface, got %vx%v", g.W, g.H)
	}
	if math.Abs(g.G.Radius-720*0.02) > eps {
		t.Fatalf("overlay radius: got=%v want=%v", g.G.Radius, 720*0.02)
	}
	wantMid := math.Sin(0.02*math.Pi) * 0.6
	if len(g.G.Stops) != 3 || math.Abs(g.G.Stops[1].Color.A-wantMid) > eps || g.G.Stops[2].Color.A != 0.9 {
		t.Fatalf("overlay stops: %+v", g.G.Stops)
	}
}

func TestDrawConvergingSkipsAbsorbed(t *testing.T) {
	cx, cy := testCX, testCY
	e := convergingEngine(
		Particle{X: cx + 200, Y: cy},
		Particle{X: cx + 1, Y: cy},
		Particle{X: cx, Y: cy + 300},
	)
	e.Update(Inputs{Void: true})

	s := newRecordingSurface(1280, 720)
	e.Draw(s)

	// One full-surface overlay plus the two particles still converging.
	if len(s.rects) != 3 {
		t.Fatalf("rects: got=%d want=3", len(s.rects))
	}
	if s.rects[0].W != 1280 || s.rects[0].C.A != 0.8 {
		t.Fatalf("overlay: %+v", s.rects[0])
	}
	if len(s.fills) != 1 || len(s.strokes) != 1 {
		t.Fatalf("moon: fills=%d strokes=%d", len(s.fills), len(s.strokes))
	}
	moon, _ := e.Moon()
	if math.Abs(s.strokes[0].R-(s.fills[0].R+20)) > eps || s.strokes[0].Width != 3 {
		t.Fatalf("ring should be 20px outside the moon: %+v vs %+v", s.strokes[0], s.fills[0])
	}
	if math.Abs(s.fills[0].R-80*moon.Pulse) > eps {
		t.Fatalf("moon radius: got=%v want=%v", s.fills[0].R, 80*moon.Pulse)
	}
}

func TestLeavingVoidRespawnsCleanPopulation(t *testing.T) {
	e := newTestEngine()
	e.Update(Inputs{DayCount: 2})
	for i := 0; i < 80; i++ {
		e.Update(Inputs{DayCount: 2, Void: true})
	}

	e.Update(Inputs{DayCount: 0})

	if _, ok := e.Phase(); ok {
		t.Fatalf("engine still in void mode")
	}
	if _, ok := e.Moon(); ok {
		t.Fatalf("moon survived the reset")
	}
	if e.Len() != 50 {
		t.Fatalf("population after reset: got=%d want=50", e.Len())
	}
	cx, cy := e.center()
	for i, p := range e.particles {
		if p.Trail.Len() != 1 {
			t.Fatalf("particle %d: stale trail of %d points", i, p.Trail.Len())
		}
		if p.Absorbed || p.VX != 0 || p.VY != 0 {
			t.Fatalf("particle %d carried void state: %+v", i, p)
		}
		if p.Radius > 150 || math.Abs(distance(p.X-cx, p.Y-cy)-p.Radius) > 1e-6 {
			t.Fatalf("particle %d not on a fresh orbit", i)
		}
	}
}

func TestVoidCanRestartAfterReset(t *testing.T) {
	e := newTestEngine()
	e.Update(Inputs{})
	for i := 0; i < 60; i++ {
		e.Update(Inputs{Void: true})
	}
	e.Update(Inputs{})
	e.Update(Inputs{Void: true})

	phase, ok := e.Phase()
	if !ok || phase != Expanding {
		t.Fatalf("second liquidation: phase=%v ok=%v", phase, ok)
	}
	if math.Abs(e.void.spread-0.02) > eps {
		t.Fatalf("second liquidation reused the old accumulator: %v", e.void.spread)
	}
}

func TestVoidPhaseString(t *testing.T) {
	if Exploding.String() != "exploding" || Expanding.String() != "expanding" || Converging.String() != "converging" {
		t.Fatalf("unexpected phase names")
	}
	if VoidPhase(9).String() != "unknown" {
		t.Fatalf("unexpected name for invalid phase")
	}
}
