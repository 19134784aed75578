package systems

import (
	"image/color"
	"math"

	"github.com/automoto/seed-hodl/assets"
	cfg "github.com/automoto/seed-hodl/config"
	"github.com/automoto/seed-hodl/particles"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	maxStops = 3
	// Gradients up to this size are rendered once and stamped from a cache
	maxCachedGradientSize = 64
	maxCachedGradients    = 32
)

// gradientKey identifies a cached gradient sprite. Geometry is relative to
// the sprite's top-left corner.
type gradientKey struct {
	w, h    int
	cx, cy  float32
	radius  float32
	offsets [maxStops]float32
	colors  [maxStops]particles.Color
}

// screenSurface adapts an ebiten image to particles.Surface
type screenSurface struct {
	dst        *ebiten.Image
	background color.Color
	cache      map[gradientKey]*ebiten.Image
	drawOp     ebiten.DrawImageOptions
	shaderOp   ebiten.DrawRectShaderOptions
	uniforms   map[string]any
}

var fieldSurface = newScreenSurface(cfg.Background)

func newScreenSurface(background color.Color) *screenSurface {
	return &screenSurface{
		background: background,
		cache:      make(map[gradientKey]*ebiten.Image),
		uniforms:   make(map[string]any, 6),
	}
}

// Target points the surface at this frame's screen
func (s *screenSurface) Target(dst *ebiten.Image) {
	s.dst = dst
}

func (s *screenSurface) Size() (float64, float64) {
	b := s.dst.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (s *screenSurface) Clear() {
	s.dst.Fill(s.background)
}

func (s *screenSurface) FillRect(x, y, w, h float64, c particles.Color) {
	if c.A <= 0 {
		return
	}
	vector.FillRect(s.dst, float32(x), float32(y), float32(w), float32(h), c.NRGBA(), false)
}

func (s *screenSurface) FillCircle(cx, cy, r float64, c particles.Color) {
	if c.A <= 0 || r <= 0 {
		return
	}
	vector.DrawFilledCircle(s.dst, float32(cx), float32(cy), float32(r), c.NRGBA(), true) //nolint:staticcheck // TODO: migrate to vector.FillCircle
}

func (s *screenSurface) StrokeCircle(cx, cy, r, width float64, c particles.Color) {
	if c.A <= 0 || r <= 0 {
		return
	}
	vector.StrokeCircle(s.dst, float32(cx), float32(cy), float32(r), float32(width), c.NRGBA(), true)
}

func (s *screenSurface) FillRadialGradient(x, y, w, h float64, g particles.RadialGradient) {
	if len(g.Stops) == 0 || w <= 0 || h <= 0 {
		return
	}
	iw, ih := int(math.Ceil(w)), int(math.Ceil(h))
	key := newGradientKey(iw, ih, g.CX-x, g.CY-y, g)

	if iw <= maxCachedGradientSize && ih <= maxCachedGradientSize {
		sprite, ok := s.cache[key]
		if !ok && len(s.cache) < maxCachedGradients {
			sprite = ebiten.NewImage(iw, ih)
			s.drawGradient(sprite, 0, 0, key)
			s.cache[key] = sprite
			ok = true
		}
		if ok {
			s.drawOp.GeoM.Reset()
			s.drawOp.GeoM.Translate(x, y)
			s.dst.DrawImage(sprite, &s.drawOp)
			return
		}
	}

	s.drawGradient(s.dst, x, y, key)
}

// drawGradient runs the radial shader over a w*h rect at (x, y) on dst
func (s *screenSurface) drawGradient(dst *ebiten.Image, x, y float64, key gradientKey) {
	if assets.RadialShader == nil {
		return
	}
	s.uniforms["Center"] = []float32{float32(x) + key.cx, float32(y) + key.cy}
	s.uniforms["Radius"] = key.radius
	s.uniforms["Offsets"] = key.offsets[:]
	s.uniforms["Color0"] = colorUniform(key.colors[0])
	s.uniforms["Color1"] = colorUniform(key.colors[1])
	s.uniforms["Color2"] = colorUniform(key.colors[2])

	s.shaderOp.GeoM.Reset()
	s.shaderOp.GeoM.Translate(x, y)
	s.shaderOp.Uniforms = s.uniforms
	dst.DrawRectShader(key.w, key.h, assets.RadialShader, &s.shaderOp)
}

// newGradientKey normalizes g to exactly three stops, repeating the last
func newGradientKey(w, h int, cx, cy float64, g particles.RadialGradient) gradientKey {
	key := gradientKey{
		w:      w,
		h:      h,
		cx:     quarterPixel(cx),
		cy:     quarterPixel(cy),
		radius: float32(g.Radius),
	}
	for i := 0; i < maxStops; i++ {
		stop := g.Stops[min(i, len(g.Stops)-1)]
		key.offsets[i] = float32(stop.Offset)
		key.colors[i] = stop.Color
	}
	return key
}

// quarterPixel snaps a coordinate so equivalent gradients share a cache entry
func quarterPixel(v float64) float32 {
	return float32(math.Round(v*4) / 4)
}

func colorUniform(c particles.Color) []float32 {
	return []float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A)}
}
