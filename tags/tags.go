package tags

import "github.com/yohamta/donburi"

var (
	Field   = donburi.NewTag().SetName("Field")
	Staking = donburi.NewTag().SetName("Staking")
)
