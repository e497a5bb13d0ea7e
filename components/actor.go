package components

import (
	"github.com/automoto/doomgrid/shared/leveldata"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// ActorData marks a living body. Its Obstacle footprint is centred on
// Position and follows every accepted move.
type ActorData struct {
	Kind     leveldata.EntityKind
	Position mgl64.Vec2 // footprint centre
	Half     mgl64.Vec2 // footprint half extents
	Dead     bool
}

var Actor = donburi.NewComponentType[ActorData]()

// PickupData is an item lying on the floor.
type PickupData struct {
	Kind     leveldata.EntityKind
	Position mgl64.Vec2
}

var Pickup = donburi.NewComponentType[PickupData]()
