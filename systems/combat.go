package systems

import (
	"github.com/automoto/doomgrid/components"
	cfg "github.com/automoto/doomgrid/config"
	"github.com/automoto/doomgrid/logger"
	"github.com/automoto/doomgrid/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Weapon describes one attack. Ranged weapons deal full damage up to Range
// and Damage*Range/distance beyond it. Melee weapons reach
// MeleeRange and no further.
type Weapon struct {
	Name   string
	Damage int
	Range  float64
	Melee  bool
}

func Knife() Weapon {
	return Weapon{Name: "knife", Damage: cfg.Combat.MeleeDamage, Range: cfg.Combat.MeleeRange, Melee: true}
}

func Pistol() Weapon {
	return Weapon{Name: "pistol", Damage: cfg.Combat.BulletDamage, Range: cfg.Combat.BulletRange}
}

func Shotgun() Weapon {
	return Weapon{Name: "shotgun", Damage: cfg.Combat.ShellDamage, Range: cfg.Combat.ShellRange}
}

// DamageAt returns the damage the weapon deals at distance. Melee weapons deal
// nothing beyond their reach.
func (wp Weapon) DamageAt(distance float64) int {
	if wp.Melee {
		if distance > wp.Range {
			return 0
		}
		return wp.Damage
	}
	if distance <= wp.Range || distance <= 0 {
		return wp.Damage
	}
	return int(float64(wp.Damage) * wp.Range / distance)
}

// Fire casts a hitscan from start along dir for shooter and queues damage on
// whatever damageable thing it hits first. Walls stop the shot without
// damage. It reports the hit, if any.
func Fire(w donburi.World, shooter donburi.Entity, start, dir mgl64.Vec2, weapon Weapon) (Hit, bool) {
	if dir.Len() == 0 {
		return Hit{}, false
	}
	length := cfg.Combat.RayLength
	if weapon.Melee {
		length = weapon.Range
	}

	hit, ok := NearestHit(w, RayQuery{
		Start:         start,
		End:           start.Add(dir.Normalize().Mul(length)),
		IncludeActors: true,
		Ignore:        shooter,
	})
	if !ok || hit.Kind == HitWall {
		return hit, ok
	}

	if amount := weapon.DamageAt(hit.Distance); amount > 0 {
		QueueDamage(w.Entry(hit.Entity), components.DamageEventData{
			Amount: amount,
			Point:  hit.Point,
			Source: shooter,
		})
	}
	return hit, true
}

// QueueDamage adds damage to an entity's pending event. Entities without
// health ignore it.
func QueueDamage(e *donburi.Entry, ev components.DamageEventData) {
	if !e.Valid() || !e.HasComponent(components.Health) {
		return
	}
	if e.HasComponent(components.DamageEvent) {
		pending := components.DamageEvent.Get(e)
		pending.Amount += ev.Amount
		pending.Point = ev.Point
		pending.Source = ev.Source
		return
	}
	donburi.Add(e, components.DamageEvent, &ev)
}

// UpdateCombat applies queued damage. Actors at zero health die and stop
// blocking; damageable props are destroyed.
func UpdateCombat(ecs *ecs.ECS) {
	var damaged []*donburi.Entry
	for e := range components.DamageEvent.Iter(ecs.World) {
		damaged = append(damaged, e)
	}

	for _, e := range damaged {
		ev := *components.DamageEvent.Get(e)
		donburi.Remove[components.DamageEventData](e, components.DamageEvent)

		if !components.Health.Get(e).Take(ev.Amount) {
			continue
		}

		if e.HasComponent(components.Actor) {
			killActor(ecs.World, e)
		} else {
			destroyProp(ecs.World, e)
		}
	}
}

func killActor(w donburi.World, e *donburi.Entry) {
	actor := components.Actor.Get(e)
	if actor.Dead {
		return
	}
	actor.Dead = true
	components.Obstacle.Get(e).Blocking = false

	if e.HasComponent(tags.Enemy) {
		if levelEntry, ok := components.Level.First(w); ok {
			components.Level.Get(levelEntry).Kills++
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"kind": actor.Kind.String(),
		"x":    actor.Position[0],
		"z":    actor.Position[1],
	}).Info("Actor died")
}

func destroyProp(w donburi.World, e *donburi.Entry) {
	o := components.Obstacle.Get(e)
	logger.Log.WithFields(logrus.Fields{
		"prop": o.Name,
		"x":    o.Center()[0],
		"z":    o.Center()[1],
	}).Info("Prop destroyed")

	removeObject(w, e)
	w.Remove(e.Entity())
}
