package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type DoorState uint8

const (
	DoorClosed DoorState = iota
	DoorOpening
	DoorOpen
	DoorClosing
)

func (s DoorState) String() string {
	switch s {
	case DoorClosed:
		return "closed"
	case DoorOpening:
		return "opening"
	case DoorOpen:
		return "open"
	case DoorClosing:
		return "closing"
	}
	return "unknown"
}

type DoorData struct {
	State  DoorState
	Secret bool // never closes once opened

	ClosedPos mgl64.Vec2
	OpenPos   mgl64.Vec2

	// Slide is the running tween while OPENING or CLOSING. It drives the
	// fraction of the way from ClosedPos to OpenPos.
	Slide *gween.Tween
	// Hold counts down the seconds an OPEN door waits before closing.
	Hold float64

	TileX, TileY int
}

var Door = donburi.NewComponentType[DoorData]()
