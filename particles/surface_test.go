package particles

import "math/rand/v2"

type rectCall struct {
	X, Y, W, H float64
	C          Color
}

type circleCall struct {
	CX, CY, R, Width float64
	C                Color
}

type gradientCall struct {
	X, Y, W, H float64
	G          RadialGradient
}

// recordingSurface captures draw calls for inspection.
type recordingSurface struct {
	w, h      float64
	clears    int
	rects     []rectCall
	fills     []circleCall
	strokes   []circleCall
	gradients []gradientCall
}

func newRecordingSurface(w, h float64) *recordingSurface {
	return &recordingSurface{w: w, h: h}
}

func (s *recordingSurface) Size() (float64, float64) { return s.w, s.h }

func (s *recordingSurface) Clear() {
	s.clears++
	s.rects = s.rects[:0]
	s.fills = s.fills[:0]
	s.strokes = s.strokes[:0]
	s.gradients = s.gradients[:0]
}

func (s *recordingSurface) FillRect(x, y, w, h float64, c Color) {
	s.rects = append(s.rects, rectCall{x, y, w, h, c})
}

func (s *recordingSurface) FillCircle(cx, cy, r float64, c Color) {
	s.fills = append(s.fills, circleCall{CX: cx, CY: cy, R: r, C: c})
}

func (s *recordingSurface) StrokeCircle(cx, cy, r, width float64, c Color) {
	s.strokes = append(s.strokes, circleCall{cx, cy, r, width, c})
}

func (s *recordingSurface) FillRadialGradient(x, y, w, h float64, g RadialGradient) {
	stops := append([]GradientStop(nil), g.Stops...)
	g.Stops = stops
	s.gradients = append(s.gradients, gradientCall{x, y, w, h, g})
}

func newTestEngine() *Engine {
	return NewEngine(1280, 720, rand.New(rand.NewPCG(1, 2)))
}
