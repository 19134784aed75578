package systems

import (
	"github.com/automoto/seed-hodl/components"
	cfg "github.com/automoto/seed-hodl/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances the HUD tweens (void message pulse, toast fade)
func UpdateEffects(e *ecs.ECS) {
	dt := float32(1) / float32(cfg.C.TPS)
	updatePulses(e, dt)
	updateFades(e, dt)
}

// updatePulses ping-pongs each pulse between 0 and 1
func updatePulses(e *ecs.ECS, dt float32) {
	components.Pulse.Each(e.World, func(entry *donburi.Entry) {
		pulse := components.Pulse.Get(entry)
		if pulse.Rise == nil || pulse.Fall == nil {
			return
		}

		tw := pulse.Rise
		if pulse.Falling {
			tw = pulse.Fall
		}
		v, done := tw.Update(dt)
		pulse.Value = v
		if done {
			tw.Reset()
			pulse.Falling = !pulse.Falling
		}
	})
}

func updateFades(e *ecs.ECS, dt float32) {
	components.Fade.Each(e.World, func(entry *donburi.Entry) {
		fade := components.Fade.Get(entry)
		if fade.Tween == nil {
			return
		}
		fade.Alpha, _ = fade.Tween.Update(dt)
	})
}

func initEffects(entry *donburi.Entry) {
	half := cfg.HUD.GlitchPeriod / 2
	components.Pulse.SetValue(entry, components.PulseData{
		Rise: gween.New(0, 1, half, ease.InOutSine),
		Fall: gween.New(1, 0, half, ease.InOutSine),
	})
	components.Fade.SetValue(entry, components.FadeData{})
}

// restartFade begins a fresh toast fade on the staking entity
func restartFade(e *ecs.ECS) {
	entry, ok := components.Fade.First(e.World)
	if !ok {
		return
	}
	seconds := float32(cfg.Staking.ToastFrames) / float32(cfg.C.TPS)
	components.Fade.SetValue(entry, components.FadeData{
		Tween: gween.New(1, 0, seconds, ease.InQuad),
		Alpha: 1,
	})
}
