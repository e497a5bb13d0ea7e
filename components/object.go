package components

import (
	"github.com/automoto/doomgrid/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData links an entity to its broadphase object. The object's Data
// field holds the owning donburi.Entity.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// SpaceData holds the level's broadphase index. One per world.
type SpaceData struct {
	*resolv.Space
	Scale         float64 // space units per world unit
	Width, Height float64 // extent in space units
}

var Space = donburi.NewComponentType[SpaceData]()

// Bounds converts a world rectangle to space units.
func (s *SpaceData) Bounds(r gamemath.Rect) (x, y, w, h float64) {
	size := r.Size()
	return r.Min[0] * s.Scale, r.Min[1] * s.Scale, size[0] * s.Scale, size[1] * s.Scale
}

// Place moves obj onto the world rectangle r and re-registers it.
func (s *SpaceData) Place(obj *resolv.Object, r gamemath.Rect) {
	obj.X, obj.Y, obj.W, obj.H = s.Bounds(r)
	obj.Update()
}
