package factory

import (
	"github.com/automoto/doomgrid/archetypes"
	"github.com/automoto/doomgrid/components"
	"github.com/automoto/doomgrid/config"
	"github.com/automoto/doomgrid/shared/leveldata"
	"github.com/automoto/doomgrid/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateDoor creates a door or secret wall for a classified passage. Doors
// are thin slabs across the middle of the tile; secret walls fill the whole
// tile. Both slide along their long axis into the wall when opened.
func CreateDoor(ecs *ecs.ECS, p leveldata.Passage) *donburi.Entry {
	archetype := archetypes.Door
	kind := components.ObstacleDoor
	name := "door"
	resolvTag := tags.ResolvDoor
	if p.Secret {
		archetype = archetypes.SecretWall
		kind = components.ObstacleSecretWall
		name = "secret wall"
		resolvTag = tags.ResolvSecret
	}
	door := archetype.Spawn(ecs)

	sw, sl := config.Level.SpotWidth, config.Level.SpotLength
	t := config.Door.Thickness
	origin := mgl64.Vec2{float64(p.TileX) * sw, float64(p.TileY) * sl}

	var pos, size, slide mgl64.Vec2
	switch {
	case p.Secret && p.Axis == leveldata.AxisX:
		pos, size = origin, mgl64.Vec2{sw, sl}
		slide = mgl64.Vec2{-config.Door.OpenOffset, 0}
	case p.Secret:
		pos, size = origin, mgl64.Vec2{sw, sl}
		slide = mgl64.Vec2{0, -config.Door.OpenOffset}
	case p.Axis == leveldata.AxisX:
		pos = origin.Add(mgl64.Vec2{0, sl/2 - t/2})
		size = mgl64.Vec2{sw, t}
		slide = mgl64.Vec2{-config.Door.OpenOffset, 0}
	default:
		pos = origin.Add(mgl64.Vec2{sw/2 - t/2, 0})
		size = mgl64.Vec2{t, sl}
		slide = mgl64.Vec2{0, -config.Door.OpenOffset}
	}

	components.Obstacle.SetValue(door, components.ObstacleData{
		Kind:     kind,
		Name:     name,
		Position: pos,
		Size:     size,
		Blocking: true,
		Seq:      nextSeq(ecs.World),
	})
	components.Door.SetValue(door, components.DoorData{
		State:     components.DoorClosed,
		Secret:    p.Secret,
		ClosedPos: pos,
		OpenPos:   pos.Add(slide),
		TileX:     p.TileX,
		TileY:     p.TileY,
	})
	attachObject(ecs.World, door, resolvTag)

	return door
}
