package config

import "image/color"

// StakingConfig contains the countdown and liquidation rules
type StakingConfig struct {
	MaxDays   int // Streak is complete after this many days
	BaseAPY   int
	APYPerDay int

	HoldFrames  int // Frames the liquidation control must be held to arm it
	VoidFrames  int // Frames the void plays before the streak restarts
	ToastFrames int

	// Persistence
	AppName    string
	StorageKey string

	FailureMessages []string
	DailyMessages   map[int]string
	ProofTemplate   string // formatted with the elapsed day count
}

// HUDConfig contains layout and colors for the staking card
type HUDConfig struct {
	CardWidth   float64
	CardHeight  float64
	CardColor   color.RGBA
	BorderColor color.RGBA
	Margin      float64
	LineHeight  float64

	HeaderText   string
	LiveText     string
	TaglineLines []string
	HarvestText  string
	CompleteText string

	HoldBarHeight float64
	HoldBarColor  color.RGBA

	GlitchPeriod float32 // seconds for one glow pulse on the void message
	Roadmap      []RoadmapPhase
}

// RoadmapPhase is one tile of the footer roadmap
type RoadmapPhase struct {
	Title  string
	Detail string
	Color  color.RGBA
}

var Staking StakingConfig
var HUD HUDConfig

func init() {
	Staking = StakingConfig{
		MaxDays:   5,
		BaseAPY:   20,
		APYPerDay: 5,

		HoldFrames:  180, // 3 seconds at 60 TPS
		VoidFrames:  240,
		ToastFrames: 180,

		AppName:    "seed-hodl",
		StorageKey: "seedHodlStart",

		FailureMessages: []string{
			"Liquidation Successful. Zero assets remaining.",
			"You rugged yourself. Again.",
			"Paper Hands. Back to the wage cage.",
			"Enjoy the 5 seconds of dopamine. Was it worth it?",
			"NGMI. (Not Gonna Make It)",
			"Weak vibes detected. Application to McDonald's sent.",
		},
		DailyMessages: map[int]string{
			1: "Market is volatile. Don't panic sell.",
			2: "FUD detected. Ignore the urge.",
			3: "Mid-term resistance. HODL tight.",
			4: "Pre-market pump. Almost there.",
			5: "PROTOCOL v1 COMPLETE. You survived the crash.",
		},
		ProofTemplate: "Day %d of 5 on SEED HODL v1. My liquidity is locked. Waiting for the v2 update.",
	}

	HUD = HUDConfig{
		CardWidth:   360,
		CardHeight:  300,
		CardColor:   CardColor,
		BorderColor: color.RGBA{R: 51, G: 65, B: 85, A: 200},
		Margin:      16,
		LineHeight:  18,

		HeaderText:   "[:] SEED HODL PROTOCOL",
		LiveText:     "STAKING LIVE",
		TaglineLines: []string{"YOUR BIOLOGY IS YOUR ASSET.", "DON'T DUMP IT."},
		HarvestText:  "NEXT HARVEST: DAY 05 (MAX YIELD)",
		CompleteText: "v1.0 COMPLETE",

		HoldBarHeight: 3,
		HoldBarColor:  Red,

		GlitchPeriod: 0.5,
		Roadmap: []RoadmapPhase{
			{Title: "Phase 1", Detail: "5-Day v1.0 LIVE", Color: Green},
			{Title: "Phase 2", Detail: "7-Day v2.0", Color: Yellow},
			{Title: "Phase 3", Detail: "10-Day v3.0", Color: Slate},
			{Title: "Phase 4", Detail: "30-Day God", Color: DarkSlate},
		},
	}
}
