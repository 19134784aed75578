package components

import (
	"github.com/automoto/seed-hodl/particles"
	"github.com/yohamta/donburi"
)

// FieldData holds the particle engine drawn behind the staking card
type FieldData struct {
	Engine *particles.Engine
}

var Field = donburi.NewComponentType[FieldData]()
