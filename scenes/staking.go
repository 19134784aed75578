package scenes

import (
	"log"
	"sync"

	"github.com/automoto/seed-hodl/assets"
	cfg "github.com/automoto/seed-hodl/config"
	"github.com/automoto/seed-hodl/systems"
	"github.com/automoto/seed-hodl/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// StakingScene shows the streak card over the particle field
type StakingScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	stakingUI    *ui.StakingUI
	once         sync.Once

	width, height int
}

// NewStakingScene creates the staking scene at the given logical size
func NewStakingScene(sc SceneChanger, width, height int) *StakingScene {
	return &StakingScene{
		sceneChanger: sc,
		width:        width,
		height:       height,
	}
}

func (ss *StakingScene) Update() {
	ss.once.Do(ss.configure)

	// UI first so pointer state is current for UpdateStaking
	ss.stakingUI.Update()
	ss.ecs.Update()
}

func (ss *StakingScene) Draw(screen *ebiten.Image) {
	if ss.ecs == nil {
		screen.Fill(cfg.Background)
		return
	}

	// Layers draw in order: field, then HUD
	ss.ecs.Draw(screen)
	ss.stakingUI.Draw(screen)
}

// Resize tells the particle field the window's logical size changed
func (ss *StakingScene) Resize(width, height int) {
	if width == ss.width && height == ss.height {
		return
	}
	ss.width, ss.height = width, height
	if ss.ecs == nil {
		return
	}
	systems.ViewportResized.Publish(ss.ecs.World, systems.ViewportResize{Width: width, Height: height})
}

// Close stops the particle field. The scene must not be updated afterwards.
func (ss *StakingScene) Close() {
	if ss.ecs == nil {
		return
	}
	systems.DetachField(ss.ecs)
}

func (ss *StakingScene) configure() {
	if err := assets.LoadShaders(); err != nil {
		log.Printf("Warning: Could not load shaders, glows disabled: %v", err)
	}

	ss.ecs = ecs.NewECS(donburi.NewWorld())

	ss.ecs.AddSystem(systems.UpdateInput)
	ss.ecs.AddSystem(systems.UpdateStaking)
	ss.ecs.AddSystem(systems.UpdateField)
	ss.ecs.AddSystem(systems.UpdateEffects)

	ss.ecs.AddRenderer(cfg.LayerBackground, systems.DrawField)
	ss.ecs.AddRenderer(cfg.LayerHUD, systems.DrawHUD)
	ss.ecs.AddRenderer(cfg.LayerHUD, systems.DrawDebug)

	systems.AttachField(ss.ecs, ss.width, ss.height, nil)

	ss.stakingUI = ui.NewStakingUI(systems.GetOrCreateStaking(ss.ecs))
}
