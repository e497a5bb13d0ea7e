package systems

import (
	"github.com/automoto/doomgrid/components"
	"github.com/yohamta/donburi"
)

// AdvanceClock starts a new tick of dt seconds. Negative deltas are treated
// as zero.
func AdvanceClock(w donburi.World, dt float64) {
	entry, ok := components.Clock.First(w)
	if !ok {
		return
	}
	clock := components.Clock.Get(entry)
	clock.Delta = max(dt, 0)
	clock.Elapsed += clock.Delta
	clock.Ticks++
}

func tickDelta(w donburi.World) float64 {
	if entry, ok := components.Clock.First(w); ok {
		return components.Clock.Get(entry).Delta
	}
	return 0
}
