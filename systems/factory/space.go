package factory

import (
	"github.com/automoto/doomgrid/archetypes"
	"github.com/automoto/doomgrid/components"
	"github.com/automoto/doomgrid/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace creates the broadphase index for a level of tilesW x tilesH
// tiles, with cellSize space units per tile and one cell per tile.
func CreateSpace(ecs *ecs.ECS, tilesW, tilesH, cellSize int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	components.Space.SetValue(space, components.SpaceData{
		Space:  resolv.NewSpace(tilesW*cellSize, tilesH*cellSize, cellSize, cellSize),
		Scale:  float64(cellSize),
		Width:  float64(tilesW * cellSize),
		Height: float64(tilesH * cellSize),
	})
	return space
}

// attachObject creates the obstacle's broadphase object and adds it to the
// level space if one exists.
func attachObject(w donburi.World, e *donburi.Entry, resolvTags ...string) {
	o := components.Obstacle.Get(e)

	spaceData := &components.SpaceData{Scale: 1}
	if spaceEntry, ok := components.Space.First(w); ok {
		spaceData = components.Space.Get(spaceEntry)
	}

	x, y, width, height := spaceData.Bounds(o.Footprint())
	obj := resolv.NewObject(x, y, width, height, append([]string{tags.ResolvObstacle}, resolvTags...)...)
	obj.Data = e.Entity() // Link for O(1) lookup

	components.Object.SetValue(e, components.ObjectData{Object: obj})

	if spaceData.Space != nil {
		spaceData.Add(obj)
	}
}

// nextSeq returns the next obstacle creation number for the world's level.
func nextSeq(w donburi.World) int {
	if levelEntry, ok := components.Level.First(w); ok {
		return components.Level.Get(levelEntry).NextSeq()
	}
	return 0
}
