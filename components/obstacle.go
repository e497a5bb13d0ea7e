package components

import (
	"github.com/automoto/doomgrid/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// ObstacleKind discriminates the obstacle variants.
type ObstacleKind uint8

const (
	ObstacleWall ObstacleKind = iota // solid tile block
	ObstacleDoor
	ObstacleSecretWall
	ObstacleProp
	ObstacleActor
)

func (k ObstacleKind) String() string {
	switch k {
	case ObstacleWall:
		return "wall"
	case ObstacleDoor:
		return "door"
	case ObstacleSecretWall:
		return "secret wall"
	case ObstacleProp:
		return "prop"
	case ObstacleActor:
		return "actor"
	}
	return "unknown"
}

// ObstacleData is the one capability every blocking thing in a level shares:
// a live position, an axis-aligned footprint and a blocking flag. Optional
// behaviour comes from sibling components (Door, Health, Actor).
type ObstacleData struct {
	Kind     ObstacleKind
	Name     string
	Position mgl64.Vec2 // footprint min corner
	Size     mgl64.Vec2
	Blocking bool
	Seq      int // creation order, used to break ties
}

// Footprint returns the obstacle's current rectangle.
func (o *ObstacleData) Footprint() gamemath.Rect {
	return gamemath.NewRect(o.Position, o.Size)
}

// Center returns the footprint centre.
func (o *ObstacleData) Center() mgl64.Vec2 {
	return o.Position.Add(o.Size.Mul(0.5))
}

var Obstacle = donburi.NewComponentType[ObstacleData]()
