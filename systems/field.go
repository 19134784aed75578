package systems

import (
	"log"
	"math/rand/v2"

	"github.com/automoto/seed-hodl/archetypes"
	"github.com/automoto/seed-hodl/components"
	"github.com/automoto/seed-hodl/particles"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// ViewportResize is published whenever the window's logical size changes
type ViewportResize struct {
	Width, Height int
}

// ViewportResized notifies attached particle fields of window resizes
var ViewportResized = events.NewEventType[ViewportResize]()

// AttachField creates the particle field and subscribes it to resize
// notifications. The field runs as long as UpdateField/DrawField are
// registered and DetachField has not been called.
func AttachField(e *ecs.ECS, width, height int, rng *rand.Rand) *donburi.Entry {
	entry := archetypes.Field.Spawn(e)
	components.Field.SetValue(entry, components.FieldData{
		Engine: particles.NewEngine(float64(width), float64(height), rng),
	})
	ViewportResized.Subscribe(e.World, onViewportResized)
	return entry
}

// DetachField stops every particle field and releases the resize subscription.
func DetachField(e *ecs.ECS) {
	ViewportResized.Unsubscribe(e.World, onViewportResized)

	var toRemove []*donburi.Entry
	components.Field.Each(e.World, func(entry *donburi.Entry) {
		components.Field.Get(entry).Engine.Detach()
		toRemove = append(toRemove, entry)
	})
	for _, entry := range toRemove {
		entry.Remove()
	}
}

func onViewportResized(w donburi.World, ev ViewportResize) {
	components.Field.Each(w, func(entry *donburi.Entry) {
		components.Field.Get(entry).Engine.Resize(float64(ev.Width), float64(ev.Height))
	})
}

// UpdateField feeds the streak state into the particle field.
// Must run AFTER UpdateStaking.
func UpdateField(e *ecs.ECS) {
	ViewportResized.ProcessEvents(e.World)

	s := GetOrCreateStaking(e)
	inputs := FieldInputs(s)
	components.Field.Each(e.World, func(entry *donburi.Entry) {
		engine := components.Field.Get(entry).Engine
		guardFrame("update", func() {
			engine.Update(inputs)
		})
	})
}

// DrawField renders the particle field onto the screen
func DrawField(e *ecs.ECS, screen *ebiten.Image) {
	fieldSurface.Target(screen)
	components.Field.Each(e.World, func(entry *donburi.Entry) {
		engine := components.Field.Get(entry).Engine
		guardFrame("draw", func() {
			engine.Draw(fieldSurface)
		})
	})
}

// guardFrame keeps a single bad frame from stopping the game loop
func guardFrame(stage string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Warning: particle field %s failed: %v", stage, r)
		}
	}()
	fn()
}
