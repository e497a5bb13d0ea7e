package archetypes

import (
	"github.com/automoto/doomgrid/components"
	"github.com/automoto/doomgrid/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LayerDefault is the only layer the simulation uses.
const LayerDefault ecs.LayerID = 0

var (
	Level = newArchetype(
		components.Level,
		components.Clock,
	)
	Space = newArchetype(
		components.Space,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Obstacle,
		components.Object,
	)
	Door = newArchetype(
		tags.Door,
		components.Obstacle,
		components.Object,
		components.Door,
	)
	SecretWall = newArchetype(
		tags.SecretWall,
		components.Obstacle,
		components.Object,
		components.Door,
	)
	Prop = newArchetype(
		tags.Prop,
		components.Obstacle,
		components.Object,
	)
	Player = newArchetype(
		tags.Player,
		tags.Actor,
		components.Actor,
		components.Obstacle,
		components.Object,
		components.Health,
	)
	Enemy = newArchetype(
		tags.Enemy,
		tags.Actor,
		components.Actor,
		components.Obstacle,
		components.Object,
		components.Health,
	)
	Pickup = newArchetype(
		tags.Pickup,
		components.Pickup,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		LayerDefault,
		append(a.components, cs...)...,
	))
	return e
}
