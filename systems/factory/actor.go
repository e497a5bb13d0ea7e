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

// CreatePlayer creates the player at pos.
func CreatePlayer(ecs *ecs.ECS, pos mgl64.Vec2) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)
	initActor(ecs.World, player, leveldata.EntityPlayer, pos, tags.ResolvPlayer)
	return player
}

// CreateEnemy creates an enemy of the given kind at pos.
func CreateEnemy(ecs *ecs.ECS, kind leveldata.EntityKind, pos mgl64.Vec2) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)
	initActor(ecs.World, enemy, kind, pos, tags.ResolvEnemy)
	return enemy
}

func initActor(w donburi.World, e *donburi.Entry, kind leveldata.EntityKind, pos mgl64.Vec2, resolvTag string) {
	actorCfg := config.Actor(kind.String())
	half := mgl64.Vec2{actorCfg.HalfWidth, actorCfg.HalfLength}

	components.Actor.SetValue(e, components.ActorData{
		Kind:     kind,
		Position: pos,
		Half:     half,
	})
	components.Obstacle.SetValue(e, components.ObstacleData{
		Kind:     components.ObstacleActor,
		Name:     actorCfg.Name,
		Position: pos.Sub(half),
		Size:     half.Mul(2),
		Blocking: true,
		Seq:      nextSeq(w),
	})
	components.Health.SetValue(e, components.HealthData{
		Current: actorCfg.Health,
		Max:     actorCfg.Health,
	})
	attachObject(w, e, resolvTag)
}
