package systems

import (
	"math"

	"github.com/automoto/doomgrid/components"
	cfg "github.com/automoto/doomgrid/config"
	"github.com/automoto/doomgrid/logger"
	"github.com/automoto/doomgrid/shared/gamemath"
	"github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDoors advances every door and secret wall by the clock delta.
func UpdateDoors(ecs *ecs.ECS) {
	dt := tickDelta(ecs.World)
	components.Door.Each(ecs.World, func(e *donburi.Entry) {
		updateDoor(ecs.World, e, dt)
	})
}

func updateDoor(w donburi.World, e *donburi.Entry, dt float64) {
	door := components.Door.Get(e)

	switch door.State {
	case components.DoorOpening:
		finished := slideDoor(w, e, dt)
		if finished {
			setDoorState(e, components.DoorOpen)
			door.Slide = nil
			door.Hold = cfg.Door.CloseDelay
		}

	case components.DoorOpen:
		if door.Secret {
			return
		}
		door.Hold -= dt
		if door.Hold > 0 {
			return
		}
		door.Hold = 0
		if doorwayOccupied(w, e) {
			return
		}
		startSlide(e, 0)
		setDoorState(e, components.DoorClosing)

	case components.DoorClosing:
		if doorwayOccupied(w, e) {
			startSlide(e, 1)
			setDoorState(e, components.DoorOpening)
			return
		}
		finished := slideDoor(w, e, dt)
		if finished {
			setDoorState(e, components.DoorClosed)
			door.Slide = nil
		}
	}
}

// OpenDoor starts opening a closed or closing door. It reports whether the
// door started moving.
func OpenDoor(e *donburi.Entry) bool {
	door := components.Door.Get(e)
	switch door.State {
	case components.DoorClosed, components.DoorClosing:
		startSlide(e, 1)
		setDoorState(e, components.DoorOpening)
		return true
	case components.DoorOpen:
		if !door.Secret {
			door.Hold = cfg.Door.CloseDelay
		}
	}
	return false
}

// Opens reports whether a secret wall has been triggered and finished
// sliding.
func Opens(e *donburi.Entry) bool {
	door := components.Door.Get(e)
	return door.Secret && door.State == components.DoorOpen
}

// doorFraction is how far the door is from ClosedPos, 0 closed, 1 open.
func doorFraction(e *donburi.Entry) float64 {
	door := components.Door.Get(e)
	travel := gamemath.Distance(door.ClosedPos, door.OpenPos)
	if travel == 0 {
		return 1
	}
	pos := components.Obstacle.Get(e).Position
	return min(gamemath.Distance(door.ClosedPos, pos)/travel, 1)
}

// startSlide sets up a linear tween from the current fraction to target,
// taking the share of TimeToOpen the remaining distance needs.
func startSlide(e *donburi.Entry, target float64) {
	door := components.Door.Get(e)
	from := doorFraction(e)
	duration := cfg.Door.TimeToOpen * math.Abs(target-from)
	door.Slide = gween.New(float32(from), float32(target), float32(duration), ease.Linear)
}

// slideDoor steps the tween and moves the obstacle. It reports whether the
// slide has finished.
func slideDoor(w donburi.World, e *donburi.Entry, dt float64) bool {
	door := components.Door.Get(e)
	if door.Slide == nil {
		return true
	}
	current, finished := door.Slide.Update(float32(dt))
	components.Obstacle.Get(e).Position = gamemath.Lerp(door.ClosedPos, door.OpenPos, float64(current))
	syncObject(w, e)
	return finished
}

// doorwayOccupied reports whether a living actor overlaps the closed
// footprint of the door.
func doorwayOccupied(w donburi.World, e *donburi.Entry) bool {
	door := components.Door.Get(e)
	doorway := gamemath.NewRect(door.ClosedPos, components.Obstacle.Get(e).Size)

	occupied := false
	components.Actor.Each(w, func(a *donburi.Entry) {
		if occupied {
			return
		}
		actor := components.Actor.Get(a)
		if actor.Dead {
			return
		}
		if gamemath.RectAround(actor.Position, actor.Half).Overlaps(doorway) {
			occupied = true
		}
	})
	return occupied
}

func setDoorState(e *donburi.Entry, state components.DoorState) {
	door := components.Door.Get(e)
	if door.State == state {
		return
	}
	logger.Log.WithFields(logrus.Fields{
		"tile_x": door.TileX,
		"tile_y": door.TileY,
		"secret": door.Secret,
		"from":   door.State.String(),
		"to":     state.String(),
	}).Debug("Door state changed")
	door.State = state
}
