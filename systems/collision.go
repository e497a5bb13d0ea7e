package systems

import (
	"github.com/automoto/doomgrid/components"
	cfg "github.com/automoto/doomgrid/config"
	"github.com/automoto/doomgrid/shared/gamemath"
	"github.com/automoto/doomgrid/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// MovementRequest describes one attempted step of a rectangular footprint.
type MovementRequest struct {
	Old  mgl64.Vec2 // footprint centre before the step
	New  mgl64.Vec2 // intended centre after the step
	Half mgl64.Vec2 // footprint half extents

	// Ignore is the moving entity itself, or donburi.Null.
	Ignore donburi.Entity
}

// ResolveMovement returns the per-axis scale (each 0 or 1) to apply to the
// intended displacement New-Old. An axis is 0 when sliding along it alone
// would push the footprint into a wall tile or a blocking obstacle. The
// result is the product over every candidate obstacle.
func ResolveMovement(w donburi.World, req MovementRequest) mgl64.Vec2 {
	result := mgl64.Vec2{1, 1}
	if req.New == req.Old {
		return result
	}

	half := mgl64.Vec2{max(req.Half[0], 0), max(req.Half[1], 0)}
	area := gamemath.RectAround(req.Old, half).Union(gamemath.RectAround(req.New, half))

	for _, e := range candidates(w, area) {
		if !blocksMovement(e, req.Ignore) {
			continue
		}
		o := components.Obstacle.Get(e)
		s := gamemath.SweepRect(req.Old, req.New, half, o.Footprint())
		result[0] *= s[0]
		result[1] *= s[1]
		if result[0] == 0 && result[1] == 0 {
			break
		}
	}
	return result
}

func blocksMovement(e *donburi.Entry, ignore donburi.Entity) bool {
	if e.Entity() == ignore {
		return false
	}
	o := components.Obstacle.Get(e)
	if !o.Blocking {
		return false
	}
	if o.Kind == components.ObstacleActor {
		return cfg.Collision.ActorsBlockActors
	}
	return true
}

// MoveActor tries to move a living actor by delta and returns the
// displacement actually applied. A blocked monster tries the doors around
// where it wanted to go; the player has to use them.
func MoveActor(w donburi.World, e *donburi.Entry, delta mgl64.Vec2) mgl64.Vec2 {
	actor := components.Actor.Get(e)
	if actor.Dead || delta == (mgl64.Vec2{}) {
		return mgl64.Vec2{}
	}

	target := actor.Position.Add(delta)
	scale := ResolveMovement(w, MovementRequest{
		Old:    actor.Position,
		New:    target,
		Half:   actor.Half,
		Ignore: e.Entity(),
	})
	applied := mgl64.Vec2{delta[0] * scale[0], delta[1] * scale[1]}

	actor.Position = actor.Position.Add(applied)
	obstacle := components.Obstacle.Get(e)
	obstacle.Position = actor.Position.Sub(actor.Half)
	syncObject(w, e)

	if applied != delta && !e.HasComponent(tags.Player) {
		OpenDoors(w, target, false)
	}
	return applied
}
