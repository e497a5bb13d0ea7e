package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// HealthData is carried by actors and damageable props.
type HealthData struct {
	Current int
	Max     int
}

// Take subtracts damage and reports whether this call brought health to
// zero. Already depleted health ignores further damage.
func (h *HealthData) Take(amount int) bool {
	if h.Current <= 0 {
		return false
	}
	h.Current -= amount
	if h.Current > 0 {
		return false
	}
	h.Current = 0
	return true
}

var Health = donburi.NewComponentType[HealthData]()

// DamageEventData is queued on a target and consumed by the combat system
// in the next tick.
type DamageEventData struct {
	Amount int
	Point  mgl64.Vec2     // where the hit landed
	Source donburi.Entity // attacker, or donburi.Null for the environment
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()
