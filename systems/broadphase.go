package systems

import (
	"sort"

	"github.com/automoto/doomgrid/components"
	"github.com/automoto/doomgrid/config"
	"github.com/automoto/doomgrid/shared/gamemath"
	"github.com/automoto/doomgrid/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// candidates returns the obstacles that may touch area, ordered by creation
// sequence. With the broadphase disabled, or without a space, it falls back
// to scanning every obstacle; both paths feed the same exact tests so the
// results never differ.
func candidates(w donburi.World, area gamemath.Rect) []*donburi.Entry {
	var entries []*donburi.Entry

	spaceEntry, ok := components.Space.First(w)
	if !config.Collision.Broadphase || !ok {
		components.Obstacle.Each(w, func(e *donburi.Entry) {
			entries = append(entries, e)
		})
		sortBySeq(entries)
		return entries
	}
	space := components.Space.Get(spaceEntry)

	// Pad by a unit so obstacles touching the area edge share a cell, and
	// clip to the space so long rays do not walk empty cells.
	x, y, width, height := space.Bounds(area)
	x0, y0 := max(x-1, -1), max(y-1, -1)
	x1 := min(x+width+1, space.Width+1)
	y1 := min(y+height+1, space.Height+1)
	if x1 <= x0 || y1 <= y0 {
		return nil
	}
	probe := resolv.NewObject(x0, y0, x1-x0, y1-y0, tags.ResolvProbe)
	space.Add(probe)
	defer space.Remove(probe)

	check := probe.Check(0, 0, tags.ResolvObstacle)
	if check == nil {
		return nil
	}

	seen := make(map[donburi.Entity]struct{}, len(check.Objects))
	for _, obj := range check.Objects {
		entity, ok := obj.Data.(donburi.Entity)
		if !ok {
			continue
		}
		if _, dup := seen[entity]; dup {
			continue
		}
		seen[entity] = struct{}{}
		if !w.Valid(entity) {
			continue
		}
		e := w.Entry(entity)
		if !e.HasComponent(components.Obstacle) {
			continue
		}
		entries = append(entries, e)
	}
	sortBySeq(entries)
	return entries
}

func sortBySeq(entries []*donburi.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return components.Obstacle.Get(entries[i]).Seq < components.Obstacle.Get(entries[j]).Seq
	})
}

// syncObject moves an obstacle's broadphase object onto its live footprint.
func syncObject(w donburi.World, e *donburi.Entry) {
	if !e.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(e)
	if obj.Object == nil {
		return
	}
	spaceEntry, ok := components.Space.First(w)
	if !ok {
		return
	}
	components.Space.Get(spaceEntry).Place(obj.Object, components.Obstacle.Get(e).Footprint())
}

// removeObject takes an obstacle out of the broadphase.
func removeObject(w donburi.World, e *donburi.Entry) {
	if !e.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(e)
	if obj.Object == nil || obj.Space == nil {
		return
	}
	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Remove(obj.Object)
	}
}
