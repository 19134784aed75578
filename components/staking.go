package components

import (
	"time"

	cfg "github.com/automoto/seed-hodl/config"
	"github.com/yohamta/donburi"
)

// Elapsed is the streak length split into display units
type Elapsed struct {
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// StakingData is a singleton tracking the current streak
type StakingData struct {
	StartTime time.Time
	Elapsed   Elapsed
	Phase     cfg.StakePhaseID

	// Liquidation control
	PointerHeld  bool // Set by the UI while the liquidation button is pressed
	HoldFrames   int  // Frames the control has been held continuously
	ConfirmArmed bool // Long press completed; the next confirm liquidates

	// Void sequence
	ResetMessage string
	VoidFrames   int // Frames until the streak restarts

	// Toast shown after copying proof
	CopyRequested bool // Set by the UI; consumed on the next update
	ToastStarted  bool // Set when a toast (re)starts; the fade restarts with it
	Toast         string
	ToastFrames   int
}

var Staking = donburi.NewComponentType[StakingData]()
