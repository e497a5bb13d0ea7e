package systems

import (
	"math"

	"github.com/automoto/doomgrid/components"
	cfg "github.com/automoto/doomgrid/config"
	"github.com/automoto/doomgrid/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// HitKind says what a ray stopped on.
type HitKind uint8

const (
	HitNone HitKind = iota
	HitWall
	HitObstacle // door, secret wall or blocking prop
	HitActor
)

func (k HitKind) String() string {
	switch k {
	case HitWall:
		return "wall"
	case HitObstacle:
		return "obstacle"
	case HitActor:
		return "actor"
	}
	return "none"
}

// RayQuery is a segment cast from Start to End.
type RayQuery struct {
	Start, End mgl64.Vec2

	// IncludeActors lets living actors stop the ray.
	IncludeActors bool
	// Ignore is never hit; usually the shooter.
	Ignore donburi.Entity
}

// Hit is the nearest thing a ray met.
type Hit struct {
	Point    mgl64.Vec2
	Distance float64
	Kind     HitKind

	Entity  donburi.Entity // donburi.Null for walls
	Segment int            // index into the level segments, -1 otherwise
}

// NearestHit casts q against the wall segments, then against every door,
// secret wall and blocking prop footprint, then against living actors when
// asked to. Equal distances keep the earlier candidate: segments in emission
// order, then obstacles in creation order. A zero-length ray hits nothing.
func NearestHit(w donburi.World, q RayQuery) (Hit, bool) {
	if q.Start == q.End {
		return Hit{}, false
	}

	best := Hit{Distance: math.Inf(1), Segment: -1}
	found := false

	if levelEntry, ok := components.Level.First(w); ok {
		for i, seg := range components.Level.Get(levelEntry).Segments {
			p, ok := gamemath.LineIntersect(q.Start, q.End, seg.Start, seg.End)
			if !ok {
				continue
			}
			if d := gamemath.Distance(q.Start, p); d < best.Distance {
				best = Hit{Point: p, Distance: d, Kind: HitWall, Entity: donburi.Null, Segment: i}
				found = true
			}
		}
	}

	// Nothing past the nearest wall can win, so the broadphase only has to
	// cover the ray up to there.
	reach := q.End
	if found {
		reach = best.Point
	}
	area := gamemath.Rect{Min: q.Start, Max: q.Start}.Union(gamemath.Rect{Min: reach, Max: reach})

	for _, e := range candidates(w, area) {
		kind, ok := rayTarget(e, q)
		if !ok {
			continue
		}
		p, ok := gamemath.LineIntersectRect(q.Start, q.End, components.Obstacle.Get(e).Footprint())
		if !ok {
			continue
		}
		if d := gamemath.Distance(q.Start, p); d < best.Distance {
			best = Hit{Point: p, Distance: d, Kind: kind, Entity: e.Entity(), Segment: -1}
			found = true
		}
	}

	if !found {
		return Hit{}, false
	}
	return best, true
}

// rayTarget reports whether e can stop q and what kind of hit it would be.
// Wall blocks are covered by the segments.
func rayTarget(e *donburi.Entry, q RayQuery) (HitKind, bool) {
	if e.Entity() == q.Ignore {
		return HitNone, false
	}
	o := components.Obstacle.Get(e)
	switch o.Kind {
	case components.ObstacleWall:
		return HitNone, false
	case components.ObstacleActor:
		if !q.IncludeActors || !o.Blocking {
			return HitNone, false
		}
		if e.HasComponent(components.Actor) && components.Actor.Get(e).Dead {
			return HitNone, false
		}
		return HitActor, true
	default:
		if !o.Blocking {
			return HitNone, false
		}
		return HitObstacle, true
	}
}

// NearestIntersection returns only the point of NearestHit.
func NearestIntersection(w donburi.World, q RayQuery) (mgl64.Vec2, bool) {
	hit, ok := NearestHit(w, q)
	return hit.Point, ok
}

// CanSee reports whether a long ray from from toward to meets target's
// footprint no later than the first wall or obstacle. Other actors never
// block the view.
func CanSee(w donburi.World, from, to mgl64.Vec2, target donburi.Entity) bool {
	if !w.Valid(target) {
		return false
	}
	te := w.Entry(target)
	if !te.HasComponent(components.Obstacle) {
		return false
	}
	footprint := components.Obstacle.Get(te).Footprint()
	if footprint.Contains(from) {
		return true
	}

	dir := to.Sub(from)
	if dir.Len() == 0 {
		return false
	}
	end := from.Add(dir.Normalize().Mul(cfg.Combat.RayLength))

	tp, ok := gamemath.LineIntersectRect(from, end, footprint)
	if !ok {
		return false
	}
	hit, blocked := NearestHit(w, RayQuery{Start: from, End: end, Ignore: target})
	if !blocked {
		return true
	}
	return gamemath.Distance(from, tp) <= hit.Distance
}
