package systems

import (
	"github.com/automoto/doomgrid/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects keeps every dynamic obstacle's broadphase object on its live
// footprint. Walls never move and are skipped.
func UpdateObjects(ecs *ecs.ECS) {
	components.Obstacle.Each(ecs.World, func(e *donburi.Entry) {
		if components.Obstacle.Get(e).Kind == components.ObstacleWall {
			return
		}
		syncObject(ecs.World, e)
	})
}
