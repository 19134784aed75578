package systems

import (
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/automoto/seed-hodl/archetypes"
	"github.com/automoto/seed-hodl/components"
	cfg "github.com/automoto/seed-hodl/config"
	"github.com/automoto/seed-hodl/particles"
	"github.com/yohamta/donburi/ecs"
)

// now is swapped out by tests
var now = time.Now

// StakeControls is the per-frame control state the staking rules react to
type StakeControls struct {
	Holding   bool // Liquidation control is held down
	Confirm   bool // Confirm pressed this frame
	CopyProof bool // Copy proof pressed this frame
}

// UpdateStaking advances the streak clock and the liquidation controls.
func UpdateStaking(e *ecs.ECS) {
	s := GetOrCreateStaking(e)
	input := getOrCreateInput(e)

	controls := StakeControls{
		Holding:   s.PointerHeld || GetAction(input, cfg.ActionLiquidate).Pressed,
		Confirm:   GetAction(input, cfg.ActionConfirm).JustPressed,
		CopyProof: s.CopyRequested || GetAction(input, cfg.ActionCopyProof).JustPressed,
	}
	s.CopyRequested = false

	StepStaking(s, now(), controls)
	if s.ToastStarted {
		s.ToastStarted = false
		restartFade(e)
	}
}

// StepStaking applies one frame of staking rules at time t.
func StepStaking(s *components.StakingData, t time.Time, c StakeControls) {
	if s.ToastFrames > 0 {
		s.ToastFrames--
		if s.ToastFrames == 0 {
			s.Toast = ""
		}
	}

	if s.Phase == cfg.PhaseVoid {
		s.VoidFrames--
		if s.VoidFrames <= 0 {
			ResetStreak(s, t)
		}
		return
	}

	elapsed, complete := ComputeElapsed(s.StartTime, t, cfg.Staking.MaxDays)
	s.Elapsed = elapsed
	if complete {
		s.Phase = cfg.PhaseComplete
		s.HoldFrames = 0
		s.ConfirmArmed = false
	} else {
		s.Phase = cfg.PhaseStaking
	}

	if c.CopyProof {
		CopyProof(s)
	}

	if s.Phase != cfg.PhaseStaking {
		return
	}

	if c.Holding {
		s.HoldFrames++
		if s.HoldFrames >= cfg.Staking.HoldFrames {
			s.ConfirmArmed = true
		}
	} else {
		s.HoldFrames = 0
	}

	if c.Confirm {
		RequestLiquidation(s)
	}
}

// ComputeElapsed splits t-start into whole days, hours, minutes and seconds.
// Once maxDays is reached the result is pinned to exactly maxDays and
// complete is true. A start in the future reads as zero.
func ComputeElapsed(start, t time.Time, maxDays int) (elapsed components.Elapsed, complete bool) {
	secs := int64(t.Sub(start) / time.Second)
	if secs < 0 {
		secs = 0
	}

	days := int(secs / 86400)
	if days >= maxDays {
		return components.Elapsed{Days: maxDays}, true
	}
	return components.Elapsed{
		Days:    days,
		Hours:   int(secs % 86400 / 3600),
		Minutes: int(secs % 3600 / 60),
		Seconds: int(secs % 60),
	}, false
}

// RequestLiquidation liquidates the stake if the long press has armed it.
// It reports whether liquidation started.
func RequestLiquidation(s *components.StakingData) bool {
	if s.Phase != cfg.PhaseStaking || !s.ConfirmArmed {
		return false
	}
	Liquidate(s)
	return true
}

// Liquidate starts the void sequence with a random failure message.
func Liquidate(s *components.StakingData) {
	msgs := cfg.Staking.FailureMessages
	s.Phase = cfg.PhaseVoid
	s.ResetMessage = msgs[rand.IntN(len(msgs))]
	s.VoidFrames = cfg.Staking.VoidFrames
	s.HoldFrames = 0
	s.PointerHeld = false
}

// ResetStreak starts a new streak at t and saves it.
func ResetStreak(s *components.StakingData, t time.Time) {
	s.StartTime = t
	s.Elapsed = components.Elapsed{}
	s.Phase = cfg.PhaseStaking
	s.HoldFrames = 0
	s.ConfirmArmed = false
	s.ResetMessage = ""
	s.VoidFrames = 0
	saveStart(startStore, t)
}

// CopyProof shows the shareable streak line. There is no clipboard in the
// stack, so it is logged for the user to grab.
func CopyProof(s *components.StakingData) {
	proof := ProofText(s.Elapsed.Days)
	log.Printf("Proof of streak: %s", proof)
	s.Toast = proof
	s.ToastFrames = cfg.Staking.ToastFrames
	s.ToastStarted = true
}

func ProofText(days int) string {
	return fmt.Sprintf(cfg.Staking.ProofTemplate, days)
}

func APY(days int) int {
	return cfg.Staking.BaseAPY + days*cfg.Staking.APYPerDay
}

// DailyMessage returns the encouragement for the given day, or "" on day 0
func DailyMessage(days int) string {
	return cfg.Staking.DailyMessages[days]
}

// FieldInputs maps the streak onto the particle engine's inputs
func FieldInputs(s *components.StakingData) particles.Inputs {
	return particles.Inputs{
		DayCount: s.Elapsed.Days,
		Void:     s.Phase == cfg.PhaseVoid,
	}
}

// GetOrCreateStaking returns the staking singleton, restoring the saved
// streak start on first use.
func GetOrCreateStaking(e *ecs.ECS) *components.StakingData {
	entry, ok := components.Staking.First(e.World)
	if !ok {
		entry = archetypes.Staking.Spawn(e)
		t := now()
		start := LoadOrCreateStart(startStore, t)
		if cfg.Debug.Fresh {
			start = t
			saveStart(startStore, start)
		}
		if cfg.Debug.StartDaysAgo > 0 {
			start = t.Add(-time.Duration(cfg.Debug.StartDaysAgo) * 24 * time.Hour)
		}
		components.Staking.SetValue(entry, components.StakingData{
			StartTime: start,
			Phase:     cfg.PhaseStaking,
		})
		initEffects(entry)
	}
	return components.Staking.Get(entry)
}
