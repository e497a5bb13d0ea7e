package systems

import (
	"github.com/automoto/doomgrid/components"
	cfg "github.com/automoto/doomgrid/config"
	"github.com/automoto/doomgrid/logger"
	"github.com/automoto/doomgrid/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
)

// InteractResult summarises one "use" at a position.
type InteractResult struct {
	Reached      int // doors and secret walls in reach, whatever their state
	Opened       int // doors and secret walls that started opening
	SecretsFound int // secret walls triggered for the first time
	Exit         int // exit offset, 0 when no exit was in reach

	// Misuse is set when the player used nothing: no passage or exit was
	// in reach.
	Misuse bool
}

// OpenDoors triggers every door and secret wall whose closed position lies
// within use range of pos. Exits only respond to the player.
func OpenDoors(w donburi.World, pos mgl64.Vec2, byPlayer bool) InteractResult {
	var result InteractResult
	radius := cfg.Level.UseRadius

	var level *components.LevelData
	if levelEntry, ok := components.Level.First(w); ok {
		level = components.Level.Get(levelEntry)
	}

	components.Door.Each(w, func(e *donburi.Entry) {
		door := components.Door.Get(e)
		center := gamemath.NewRect(door.ClosedPos, components.Obstacle.Get(e).Size).Center()
		if gamemath.Distance(pos, center) >= radius {
			return
		}

		result.Reached++

		firstTrigger := door.Secret && door.State == components.DoorClosed
		if !OpenDoor(e) {
			return
		}
		result.Opened++
		if firstTrigger {
			result.SecretsFound++
			if level != nil {
				level.SecretsFound++
			}
		}
	})

	if byPlayer && level != nil && level.Grid != nil {
		for _, exit := range level.Grid.Exits {
			if gamemath.Distance(pos, exit.Position) < radius {
				result.Exit = exit.Offset
				break
			}
		}
	}

	if byPlayer {
		result.Misuse = result.Reached == 0 && result.Exit == 0
		logger.Log.WithFields(logrus.Fields{
			"reached": result.Reached,
			"opened":  result.Opened,
			"secrets": result.SecretsFound,
			"exit":    result.Exit,
		}).Debug("Player used")
	}
	return result
}
