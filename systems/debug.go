package systems

import (
	"fmt"

	"github.com/automoto/seed-hodl/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	s := GetOrCreateStaking(ecs)
	y := 40
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %.1f  FPS: %.1f", ebiten.ActualTPS(), ebiten.ActualFPS()), 16, y)
	y += 16
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Phase: %s  Hold: %d  Armed: %t", s.Phase, s.HoldFrames, s.ConfirmArmed), 16, y)

	components.Field.Each(ecs.World, func(entry *donburi.Entry) {
		engine := components.Field.Get(entry).Engine
		y += 16
		phase := "orbit"
		if p, ok := engine.Phase(); ok {
			phase = p.String()
		}
		w, h := engine.Size()
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Particles: %d  Field: %s  %.0fx%.0f", engine.Len(), phase, w, h), 16, y)
	})
}
