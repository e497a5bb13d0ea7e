// Package gamemath holds pure ground-plane geometry shared by the level
// builder and the runtime queries. Vectors are mgl64.Vec2{x, z}.
package gamemath

import "github.com/go-gl/mathgl/mgl64"

// Rect is an axis-aligned rectangle in the ground plane.
type Rect struct {
	Min, Max mgl64.Vec2
}

// NewRect returns the rectangle starting at origin with the given size.
func NewRect(origin, size mgl64.Vec2) Rect {
	return Rect{Min: origin, Max: origin.Add(size)}
}

// RectAround returns the rectangle centred on center with half extents half.
func RectAround(center, half mgl64.Vec2) Rect {
	return Rect{Min: center.Sub(half), Max: center.Add(half)}
}

func (r Rect) Size() mgl64.Vec2   { return r.Max.Sub(r.Min) }
func (r Rect) Center() mgl64.Vec2 { return r.Min.Add(r.Max).Mul(0.5) }

// Translate returns r moved by d.
func (r Rect) Translate(d mgl64.Vec2) Rect {
	return Rect{Min: r.Min.Add(d), Max: r.Max.Add(d)}
}

// Expand grows r by m on every side.
func (r Rect) Expand(m float64) Rect {
	return Rect{Min: r.Min.Sub(mgl64.Vec2{m, m}), Max: r.Max.Add(mgl64.Vec2{m, m})}
}

// Union returns the smallest rectangle containing r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		Min: mgl64.Vec2{min(r.Min[0], o.Min[0]), min(r.Min[1], o.Min[1])},
		Max: mgl64.Vec2{max(r.Max[0], o.Max[0]), max(r.Max[1], o.Max[1])},
	}
}

// Overlaps reports whether the interiors of r and o intersect. Touching
// edges do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.Min[0] < o.Max[0] && r.Max[0] > o.Min[0] &&
		r.Min[1] < o.Max[1] && r.Max[1] > o.Min[1]
}

// Contains reports whether p lies inside r or on its edge.
func (r Rect) Contains(p mgl64.Vec2) bool {
	return p[0] >= r.Min[0] && p[0] <= r.Max[0] && p[1] >= r.Min[1] && p[1] <= r.Max[1]
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.Max[0] <= r.Min[0] || r.Max[1] <= r.Min[1]
}

// Intersection returns the overlap of r and o, empty when they do not
// overlap.
func (r Rect) Intersection(o Rect) Rect {
	in := Rect{
		Min: mgl64.Vec2{max(r.Min[0], o.Min[0]), max(r.Min[1], o.Min[1])},
		Max: mgl64.Vec2{min(r.Max[0], o.Max[0]), min(r.Max[1], o.Max[1])},
	}
	if in.Empty() {
		return Rect{}
	}
	return in
}

// Area returns the area of r, 0 when empty.
func (r Rect) Area() float64 {
	if r.Empty() {
		return 0
	}
	s := r.Size()
	return s[0] * s[1]
}

// overlapEpsilon absorbs rounding when comparing overlap areas.
const overlapEpsilon = 1e-9

// SweepRect tests a footprint with half extents half moving from old to
// next against a static rectangle, one axis at a time. The x component is 0
// when the footprint swept along x (holding z at old) would enter the
// obstacle, the z component likewise for the sweep along z (holding x at
// old). When both axes pass but the footprint at next still clips a corner,
// the axis with the smaller penetration is zeroed, both on a tie.
//
// A footprint that already overlaps the obstacle may only move in ways that
// do not increase the overlap.
func SweepRect(old, next, half mgl64.Vec2, obstacle Rect) mgl64.Vec2 {
	half = mgl64.Vec2{max(half[0], 0), max(half[1], 0)}
	result := mgl64.Vec2{1, 1}

	start := RectAround(old, half)
	alongX := RectAround(mgl64.Vec2{next[0], old[1]}, half)
	alongZ := RectAround(mgl64.Vec2{old[0], next[1]}, half)
	end := RectAround(next, half)

	if start.Overlaps(obstacle) {
		stuck := start.Intersection(obstacle).Area() + overlapEpsilon
		if next[0] != old[0] && alongX.Intersection(obstacle).Area() > stuck {
			result[0] = 0
		}
		if next[1] != old[1] && alongZ.Intersection(obstacle).Area() > stuck {
			result[1] = 0
		}
		if result == (mgl64.Vec2{1, 1}) && end.Intersection(obstacle).Area() > stuck {
			result = mgl64.Vec2{}
		}
		return result
	}

	if next[0] != old[0] && start.Union(alongX).Overlaps(obstacle) {
		result[0] = 0
	}
	if next[1] != old[1] && start.Union(alongZ).Overlaps(obstacle) {
		result[1] = 0
	}

	if result == (mgl64.Vec2{1, 1}) && end.Overlaps(obstacle) {
		pen := end.Intersection(obstacle).Size()
		if pen[0] <= pen[1] {
			result[0] = 0
		}
		if pen[1] <= pen[0] {
			result[1] = 0
		}
	}
	return result
}
