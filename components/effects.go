package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// PulseData drives a looping 0 -> 1 -> 0 glow, used by the void message
type PulseData struct {
	Rise    *gween.Tween
	Fall    *gween.Tween
	Falling bool
	Value   float32 // current intensity in [0, 1]
}

var Pulse = donburi.NewComponentType[PulseData]()

// FadeData eases the toast out over its lifetime
type FadeData struct {
	Tween *gween.Tween
	Alpha float32
}

var Fade = donburi.NewComponentType[FadeData]()
