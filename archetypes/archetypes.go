package archetypes

import (
	"github.com/automoto/seed-hodl/components"
	cfg "github.com/automoto/seed-hodl/config"
	"github.com/automoto/seed-hodl/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Field = newArchetype(
		cfg.LayerBackground,
		tags.Field,
		components.Field,
	)
	Staking = newArchetype(
		cfg.LayerHUD,
		tags.Staking,
		components.Staking,
		components.Fade,
		components.Pulse,
	)
	Input = newArchetype(
		cfg.LayerHUD,
		components.Input,
	)
	Settings = newArchetype(
		cfg.LayerHUD,
		components.Settings,
	)
)

type archetype struct {
	layer      ecs.LayerID
	components []donburi.IComponentType
}

func newArchetype(layer ecs.LayerID, cs ...donburi.IComponentType) *archetype {
	return &archetype{
		layer:      layer,
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		a.layer,
		append(a.components, cs...)...,
	))
	return e
}
