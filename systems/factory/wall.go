package factory

import (
	"github.com/automoto/doomgrid/archetypes"
	"github.com/automoto/doomgrid/components"
	"github.com/automoto/doomgrid/config"
	"github.com/automoto/doomgrid/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWall creates the static block obstacle for solid tile (x, y).
func CreateWall(ecs *ecs.ECS, x, y int) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	sw, sl := config.Level.SpotWidth, config.Level.SpotLength
	components.Obstacle.SetValue(wall, components.ObstacleData{
		Kind:     components.ObstacleWall,
		Name:     "wall",
		Position: mgl64.Vec2{float64(x) * sw, float64(y) * sl},
		Size:     mgl64.Vec2{sw, sl},
		Blocking: true,
		Seq:      nextSeq(ecs.World),
	})
	attachObject(ecs.World, wall, tags.ResolvSolid)

	return wall
}
