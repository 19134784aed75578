package config

import "image/color"

// ParticleConfig contains orbiting-mode tuning for the particle field.
// Per-day values are multiplied by the elapsed whole days.
type ParticleConfig struct {
	// Population
	BaseCount   int
	CountPerDay int
	MaxCount    int

	// Orbit
	BaseSpeed       float64 // radians per frame
	SpeedPerDay     float64
	BaseMaxRadius   float64
	MaxRadiusPerDay float64

	// Spawning
	SpawnMinRadius    float64
	SpawnRadiusSpread float64

	// Rendering
	Color      color.RGBA
	TrailAlpha float64 // alpha of the newest trail point
	DotRadius  float64
	DotAlpha   float64
	GlowRadius float64
	GlowAlpha  float64

	// Central ambient glow (only drawn after day 0)
	CoreGlowBase        float64
	CoreGlowPerDay      float64
	CoreGlowMax         float64
	CoreGlowAlphaPerDay float64
}

// VoidConfig contains tuning for the liquidation (void) sequence.
type VoidConfig struct {
	// Explosion
	ExplosionSpeed float64

	// Expansion
	ExpandRate   float64 // accumulator step per frame
	MidStopAlpha float64
	OuterAlpha   float64
	ScatterSize  float64
	ScatterAlpha float64 // upper bound of the random flicker alpha

	// Convergence
	ConvergeRate  float64
	OverlayAlpha  float64
	MoonRadius    float64
	MoonAlpha     float64
	PulseFreq     float64
	PulseAmp      float64
	PulseBase     float64
	RingGap       float64
	RingWidth     float64
	RingAlpha     float64
	PullSpeed     float64
	AbsorbRadius  float64
	ConvergeSize  float64
	ConvergeAlpha float64
	ConvergeColor color.RGBA
}

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	Title  string
	TPS    int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay      bool // Draw particle stats in the corner
	StartDaysAgo int  // Pretend the streak began this many days ago (0 = use saved start)
	Fresh        bool // Ignore the saved start and begin a new streak
}

// Global configuration instances
var C *Config
var Particles ParticleConfig
var Void VoidConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black      = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Sky        = color.RGBA{R: 56, G: 189, B: 248, A: 255}
	Cyan       = color.RGBA{R: 103, G: 232, B: 249, A: 255}
	Slate      = color.RGBA{R: 148, G: 163, B: 184, A: 255}
	DarkSlate  = color.RGBA{R: 100, G: 116, B: 139, A: 255}
	Background = color.RGBA{R: 15, G: 23, B: 42, A: 255}
	Green      = color.RGBA{R: 74, G: 222, B: 128, A: 255}
	Yellow     = color.RGBA{R: 250, G: 204, B: 21, A: 255}
	Red        = color.RGBA{R: 248, G: 113, B: 113, A: 255}
	CardColor  = color.RGBA{R: 30, G: 41, B: 59, A: 160}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "SEED HODL PROTOCOL",
		TPS:    60,
	}

	Particles = ParticleConfig{
		BaseCount:   50,
		CountPerDay: 300,
		MaxCount:    2000,

		BaseSpeed:       0.01,
		SpeedPerDay:     0.005,
		BaseMaxRadius:   150,
		MaxRadiusPerDay: 50,

		SpawnMinRadius:    100,
		SpawnRadiusSpread: 300,

		Color:      Sky,
		TrailAlpha: 0.6,
		DotRadius:  2,
		DotAlpha:   0.8,
		GlowRadius: 8,
		GlowAlpha:  0.4,

		CoreGlowBase:        150,
		CoreGlowPerDay:      30,
		CoreGlowMax:         400,
		CoreGlowAlphaPerDay: 0.1,
	}

	Void = VoidConfig{
		ExplosionSpeed: 15,

		ExpandRate:   0.02,
		MidStopAlpha: 0.6,
		OuterAlpha:   0.9,
		ScatterSize:  2,
		ScatterAlpha: 0.5,

		ConvergeRate:  0.03,
		OverlayAlpha:  0.8,
		MoonRadius:    80,
		MoonAlpha:     0.9,
		PulseFreq:     4,
		PulseAmp:      0.3,
		PulseBase:     0.7,
		RingGap:       20,
		RingWidth:     3,
		RingAlpha:     0.4,
		PullSpeed:     8,
		AbsorbRadius:  10,
		ConvergeSize:  1.5,
		ConvergeAlpha: 0.6,
		ConvergeColor: color.RGBA{R: 100, G: 200, B: 255, A: 255},
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{}
}
