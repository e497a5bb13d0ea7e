package systems

import (
	"github.com/automoto/doomgrid/components"
	"github.com/automoto/doomgrid/logger"
	"github.com/automoto/doomgrid/shared/gamemath"
	"github.com/automoto/doomgrid/shared/leveldata"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// CollectPickups removes every pickup lying inside the footprint centred on
// pos and returns their kinds in creation order.
func CollectPickups(w donburi.World, pos, half mgl64.Vec2) []leveldata.EntityKind {
	reach := gamemath.RectAround(pos, half)

	var taken []*donburi.Entry
	components.Pickup.Each(w, func(e *donburi.Entry) {
		if reach.Contains(components.Pickup.Get(e).Position) {
			taken = append(taken, e)
		}
	})

	kinds := make([]leveldata.EntityKind, 0, len(taken))
	for _, e := range taken {
		kind := components.Pickup.Get(e).Kind
		kinds = append(kinds, kind)
		logger.Log.WithField("pickup", kind.String()).Debug("Pickup collected")
		w.Remove(e.Entity())
	}
	return kinds
}
