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

// CreateProp creates a prop centred on the spawn. Kinds without a prop
// configuration get nil.
func CreateProp(ecs *ecs.ECS, s leveldata.Spawn) *donburi.Entry {
	propCfg, ok := config.Prop(s.Kind.String())
	if !ok {
		return nil
	}

	var extra []donburi.IComponentType
	if propCfg.Damageable {
		extra = append(extra, components.Health)
	}
	prop := archetypes.Prop.Spawn(ecs, extra...)

	size := mgl64.Vec2{propCfg.Width, propCfg.Length}
	components.Obstacle.SetValue(prop, components.ObstacleData{
		Kind:     components.ObstacleProp,
		Name:     propCfg.Name,
		Position: s.Position.Sub(size.Mul(0.5)),
		Size:     size,
		Blocking: propCfg.Blocking,
		Seq:      nextSeq(ecs.World),
	})
	if propCfg.Damageable {
		components.Health.SetValue(prop, components.HealthData{
			Current: propCfg.Health,
			Max:     propCfg.Health,
		})
	}
	attachObject(ecs.World, prop, tags.ResolvProp)

	return prop
}

// CreatePickup creates an item lying at the spawn.
func CreatePickup(ecs *ecs.ECS, s leveldata.Spawn) *donburi.Entry {
	pickup := archetypes.Pickup.Spawn(ecs)
	components.Pickup.SetValue(pickup, components.PickupData{
		Kind:     s.Kind,
		Position: s.Position,
	})
	return pickup
}
