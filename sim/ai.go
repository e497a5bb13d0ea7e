package sim

import (
	"github.com/automoto/doomgrid/components"
	"github.com/automoto/doomgrid/config"
	"github.com/automoto/doomgrid/level"
	"github.com/automoto/doomgrid/systems"
)

// Think moves every living monster that can see the player toward it, and
// lets the ones in reach take a swing.
func Think(l *level.Level, dt float64) {
	player, ok := l.Player()
	if !ok || components.Actor.Get(player).Dead {
		return
	}
	target := components.Actor.Get(player)
	knife := systems.Knife()

	for _, enemy := range l.Enemies() {
		actor := components.Actor.Get(enemy)
		if actor.Dead || !l.CanSee(enemy, player) {
			continue
		}

		toward := target.Position.Sub(actor.Position)
		dist := toward.Len()
		if dist-target.Half[0] <= knife.Range {
			l.Fire(enemy, toward, knife)
			continue
		}

		// Stop at contact, actors may not block each other
		gap := dist - target.Half[0] - actor.Half[0]
		if gap <= 0 {
			continue
		}
		speed := config.Actor(actor.Kind.String()).Speed
		l.Move(enemy, toward.Normalize().Mul(min(speed*dt, gap)))
	}
}
