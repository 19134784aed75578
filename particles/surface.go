package particles

import "image/color"

// Color is a straight (non-premultiplied) color with a fractional alpha.
type Color struct {
	R, G, B uint8
	A       float64
}

// rgba pairs an opaque palette color with an alpha in [0, 1].
func rgba(c color.RGBA, a float64) Color {
	return Color{R: c.R, G: c.G, B: c.B, A: clamp01(a)}
}

// NRGBA converts to the standard library representation.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(clamp01(c.A)*255 + 0.5)}
}

// GradientStop is a color at a fractional offset along a gradient.
type GradientStop struct {
	Offset float64
	Color  Color
}

// RadialGradient runs from (CX, CY) at offset 0 to Radius at offset 1.
// Points past Radius take the last stop's color.
type RadialGradient struct {
	CX, CY float64
	Radius float64
	Stops  []GradientStop
}

// Surface is the 2D raster the engine renders onto.
type Surface interface {
	Size() (w, h float64)
	Clear()
	FillRect(x, y, w, h float64, c Color)
	FillCircle(cx, cy, r float64, c Color)
	StrokeCircle(cx, cy, r, width float64, c Color)
	// FillRadialGradient fills the rectangle (x, y, w, h) with g.
	FillRadialGradient(x, y, w, h float64, g RadialGradient)
}

func clamp01(v float64) float64 {
	if v < 0 || v != v {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
