package systems

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/automoto/seed-hodl/components"
	cfg "github.com/automoto/seed-hodl/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newFieldECS(t *testing.T) (*ecs.ECS, *donburi.Entry) {
	t.Helper()
	useMemoryStore(t)
	e := ecs.NewECS(donburi.NewWorld())
	entry := AttachField(e, 1280, 720, rand.New(rand.NewPCG(1, 2)))
	return e, entry
}

func TestUpdateFieldFollowsStreak(t *testing.T) {
	e, entry := newFieldECS(t)
	s := GetOrCreateStaking(e)
	s.StartTime = time.Now().Add(-2 * 24 * time.Hour)
	s.Elapsed.Days = 2

	UpdateField(e)

	engine := components.Field.Get(entry).Engine
	if got, want := engine.Len(), engine.TargetCount(2); got != want {
		t.Errorf("particles = %d, want %d", got, want)
	}
}

func TestUpdateFieldStartsVoid(t *testing.T) {
	e, entry := newFieldECS(t)
	s := GetOrCreateStaking(e)
	UpdateField(e)

	s.Phase = cfg.PhaseVoid
	UpdateField(e)

	if _, ok := components.Field.Get(entry).Engine.Phase(); !ok {
		t.Error("field did not enter the void")
	}
}

func TestViewportResizedResizesField(t *testing.T) {
	e, entry := newFieldECS(t)

	ViewportResized.Publish(e.World, ViewportResize{Width: 800, Height: 600})
	UpdateField(e)

	w, h := components.Field.Get(entry).Engine.Size()
	if w != 800 || h != 600 {
		t.Errorf("size = %vx%v, want 800x600", w, h)
	}
}

func TestDetachFieldRemovesEngine(t *testing.T) {
	e, entry := newFieldECS(t)
	engine := components.Field.Get(entry).Engine

	DetachField(e)

	if !engine.Detached() {
		t.Error("engine still attached")
	}
	if _, ok := components.Field.First(e.World); ok {
		t.Error("field entity still present")
	}
	// Updating after teardown is a no-op
	UpdateField(e)
}

func TestGuardFrameRecovers(t *testing.T) {
	ran := false
	guardFrame("test", func() {
		ran = true
		panic("boom")
	})
	if !ran {
		t.Error("fn did not run")
	}
}
