package factory

import (
	"github.com/automoto/doomgrid/archetypes"
	"github.com/automoto/doomgrid/components"
	"github.com/automoto/doomgrid/config"
	"github.com/automoto/doomgrid/shared/geometry"
	"github.com/automoto/doomgrid/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel populates the world from a classified grid: the level entry,
// the broadphase space, one block per solid tile, doors and secret walls,
// then every spawn in scan order.
func CreateLevel(ecs *ecs.ECS, name string, grid *leveldata.Grid, mesh *geometry.Mesh, segments []geometry.Segment) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	levelData := components.LevelData{
		Name:     name,
		Grid:     grid,
		Mesh:     mesh,
		Segments: segments,
	}
	for _, p := range grid.Passages {
		if p.Secret {
			levelData.SecretsTotal++
		}
	}
	components.Level.SetValue(level, levelData)

	CreateSpace(ecs, grid.Width, grid.Height, config.Level.SpaceCellSize)

	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			if grid.Solid(x, y) {
				CreateWall(ecs, x, y)
			}
		}
	}

	for _, p := range grid.Passages {
		CreateDoor(ecs, p)
	}

	player, hasPlayer := grid.PlayerSpawn()
	for _, s := range grid.Spawns {
		switch s.Kind.Category() {
		case leveldata.CategoryPlayer:
			if hasPlayer && s == player {
				CreatePlayer(ecs, s.Position)
			}
		case leveldata.CategoryEnemy:
			CreateEnemy(ecs, s.Kind, s.Position)
			components.Level.Get(level).EnemiesTotal++
		case leveldata.CategoryProp:
			CreateProp(ecs, s)
		case leveldata.CategoryPickup:
			CreatePickup(ecs, s)
		}
	}

	return level
}
