package particles

import (
	"math"

	math2 "github.com/yohamta/donburi/features/math"
)

// Particle is a single point of the field. Angle and Radius drive orbiting
// mode; VX/VY drive the void sequence.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Angle  float64
	Radius float64
	Trail  Trail

	// Absorbed is set once the particle has reached the moon.
	Absorbed bool
}

// Moon is the pulsing body particles converge on at the end of the void sequence.
type Moon struct {
	Center math2.Vec2
	Radius float64
	Pulse  float64
}

// distance returns the length of (dx, dy).
func distance(dx, dy float64) float64 {
	return math.Sqrt(dx*dx + dy*dy)
}
