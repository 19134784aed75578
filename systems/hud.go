package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/seed-hodl/components"
	cfg "github.com/automoto/seed-hodl/config"
	"github.com/automoto/seed-hodl/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

const (
	roadmapTileWidth  = 150
	roadmapTileHeight = 38
	roadmapGap        = 8
	toastPadding      = 8
)

// CardTop returns the y coordinate of the staking card's top edge
func CardTop(screenHeight int) float64 {
	return (float64(screenHeight) - cfg.HUD.CardHeight) / 2
}

// DrawHUD renders the header, the staking card (or the void message),
// the roadmap footer and any toast.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	s := GetOrCreateStaking(e)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()

	drawHeader(screen, w)
	drawRoadmap(screen, w, h)

	if s.Phase == cfg.PhaseVoid {
		drawVoidMessage(e, screen, s, w, h)
	} else {
		drawCard(screen, s, w, h)
	}
	if s.Phase == cfg.PhaseStaking {
		hint := ControlHint(getOrCreateInput(e).LastInputMethod, s.ConfirmArmed)
		drawControlHint(screen, hint, w, h)
	}

	drawToast(e, screen, s, w, h)
}

func drawHeader(screen *ebiten.Image, w int) {
	face := fonts.MonoSmall.Get()
	margin := int(cfg.HUD.Margin)
	text.Draw(screen, cfg.HUD.HeaderText, face, margin, margin+12, cfg.Slate)

	liveWidth := font.MeasureString(face, cfg.HUD.LiveText).Ceil()
	x := w - margin - liveWidth
	text.Draw(screen, cfg.HUD.LiveText, face, x, margin+12, cfg.Green)
	vector.DrawFilledCircle(screen, float32(x-10), float32(margin+8), 3, cfg.Green, true) //nolint:staticcheck // TODO: migrate to vector.FillCircle
}

func drawCard(screen *ebiten.Image, s *components.StakingData, w, h int) {
	hud := cfg.HUD
	cx := float64(w) / 2
	x := cx - hud.CardWidth/2
	y := CardTop(h)

	vector.FillRect(screen, float32(x), float32(y), float32(hud.CardWidth), float32(hud.CardHeight), hud.CardColor, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(hud.CardWidth), float32(hud.CardHeight), 1, hud.BorderColor, false)

	small := fonts.MonoSmall.Get()
	mono := fonts.Mono.Get()

	line := y + 28
	drawCentered(screen, "BLOCK HEIGHT", small, cx, line, cfg.DarkSlate)
	line += 42
	drawCentered(screen, FormatElapsed(s.Elapsed), fonts.MonoTitle.Get(), cx, line, cfg.Cyan)
	line += 30
	drawCentered(screen, fmt.Sprintf("CURRENT APY: +%d%% TESTOSTERONE", APY(s.Elapsed.Days)), small, cx, line, cfg.Slate)
	line += hud.LineHeight
	drawCentered(screen, hud.HarvestText, small, cx, line, cfg.Slate)

	line += 14
	vector.FillRect(screen, float32(x+24), float32(line), float32(hud.CardWidth-48), 2, withAlpha(cfg.Sky, 0.6), false)

	line += 24
	for _, tagline := range hud.TaglineLines {
		drawCentered(screen, tagline, mono, cx, line, cfg.Sky)
		line += hud.LineHeight
	}

	if s.Phase == cfg.PhaseComplete {
		drawCentered(screen, hud.CompleteText, fonts.MonoBold.Get(), cx, line+8, cfg.Green)
	} else if msg := DailyMessage(s.Elapsed.Days); msg != "" {
		drawCentered(screen, msg, small, cx, line+4, cfg.Yellow)
	}

	// Hold-to-liquidate progress along the card's bottom edge
	if s.HoldFrames > 0 && !s.ConfirmArmed {
		ratio := float64(s.HoldFrames) / float64(cfg.Staking.HoldFrames)
		if ratio > 1 {
			ratio = 1
		}
		vector.FillRect(screen,
			float32(x), float32(y+hud.CardHeight-hud.HoldBarHeight),
			float32(hud.CardWidth*ratio), float32(hud.HoldBarHeight),
			hud.HoldBarColor, false)
	}
}

func drawControlHint(screen *ebiten.Image, hint string, w, h int) {
	if hint == "" {
		return
	}
	y := CardTop(h) + cfg.HUD.CardHeight + cfg.HUD.LineHeight
	drawCentered(screen, hint, fonts.MonoSmall.Get(), float64(w)/2, y, cfg.DarkSlate)
}

func drawVoidMessage(e *ecs.ECS, screen *ebiten.Image, s *components.StakingData, w, h int) {
	cx := float64(w) / 2
	cy := float64(h) / 2
	face := fonts.MonoBold.Get()

	glow := float32(0)
	if entry, ok := components.Pulse.First(e.World); ok {
		glow = components.Pulse.Get(entry).Value
	}

	// Chromatic offset copies fade in and out behind the message
	drawCentered(screen, s.ResetMessage, face, cx-2, cy, withAlpha(cfg.Red, 0.8*glow))
	drawCentered(screen, s.ResetMessage, face, cx+2, cy, withAlpha(cfg.Cyan, 0.5*glow))
	drawCentered(screen, s.ResetMessage, face, cx, cy, withAlpha(cfg.White, 0.7+0.3*glow))

	drawCentered(screen, "LIQUIDITY: 0", fonts.MonoSmall.Get(), cx, cy+48, cfg.DarkSlate)
}

func drawRoadmap(screen *ebiten.Image, w, h int) {
	phases := cfg.HUD.Roadmap
	total := len(phases)*roadmapTileWidth + (len(phases)-1)*roadmapGap
	x := float64(w-total) / 2
	y := float64(h) - cfg.HUD.Margin - roadmapTileHeight

	small := fonts.MonoSmall.Get()
	text.Draw(screen, "PROTOCOL ROADMAP", small, int(x), int(y-8), cfg.DarkSlate)

	for _, phase := range phases {
		vector.FillRect(screen, float32(x), float32(y), roadmapTileWidth, roadmapTileHeight, withAlpha(phase.Color, 0.1), false)
		vector.StrokeRect(screen, float32(x), float32(y), roadmapTileWidth, roadmapTileHeight, 1, withAlpha(phase.Color, 0.5), false)
		text.Draw(screen, phase.Title, small, int(x)+8, int(y)+15, phase.Color)
		text.Draw(screen, phase.Detail, small, int(x)+8, int(y)+31, cfg.DarkSlate)
		x += roadmapTileWidth + roadmapGap
	}
}

func drawToast(e *ecs.ECS, screen *ebiten.Image, s *components.StakingData, w, h int) {
	if s.Toast == "" {
		return
	}
	alpha := float32(1)
	if entry, ok := components.Fade.First(e.World); ok {
		if fade := components.Fade.Get(entry); fade.Tween != nil {
			alpha = fade.Alpha
		}
	}

	face := fonts.MonoSmall.Get()
	msg := "Proof copied: " + s.Toast
	tw := float64(font.MeasureString(face, msg).Ceil())
	boxW := tw + toastPadding*2
	boxH := float64(face.Metrics().Height.Ceil()) + toastPadding*2
	x := (float64(w) - boxW) / 2
	y := float64(h) - cfg.HUD.Margin - roadmapTileHeight - 40 - boxH

	vector.FillRect(screen, float32(x), float32(y), float32(boxW), float32(boxH), withAlpha(cfg.Black, 0.7*alpha), false)
	text.Draw(screen, msg, face, int(x+toastPadding), int(y+toastPadding)+face.Metrics().Ascent.Ceil(), withAlpha(cfg.Cyan, alpha))
}

// FormatElapsed renders elapsed time as dd:hh:mm:ss
func FormatElapsed(el components.Elapsed) string {
	return fmt.Sprintf("%02d:%02d:%02d:%02d", el.Days, el.Hours, el.Minutes, el.Seconds)
}

// drawCentered draws str with its baseline at y, centered on cx
func drawCentered(screen *ebiten.Image, str string, face font.Face, cx, y float64, clr color.Color) {
	width := font.MeasureString(face, str).Ceil()
	text.Draw(screen, str, face, int(cx)-width/2, int(y), clr)
}

func withAlpha(c color.RGBA, a float32) color.NRGBA {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(a * 255)}
}
