package config

import "github.com/yohamta/donburi/ecs"

// StakePhaseID is the host-level state of the streak
type StakePhaseID int

const (
	PhaseStaking StakePhaseID = iota
	PhaseComplete
	PhaseVoid
)

func (p StakePhaseID) String() string {
	switch p {
	case PhaseStaking:
		return "staking"
	case PhaseComplete:
		return "complete"
	case PhaseVoid:
		return "void"
	}
	return "unknown"
}

// Render layers, drawn in ascending order
const (
	LayerBackground ecs.LayerID = iota
	LayerHUD
)
