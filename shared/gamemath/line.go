package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Cross returns the z component of the 3D cross product of a and b.
func Cross(a, b mgl64.Vec2) float64 {
	return a[0]*b[1] - a[1]*b[0]
}

// LineIntersect intersects the ray segment start->end with the segment
// a->b. The crossing must lie past start (start itself is excluded) and
// anywhere on a->b including its endpoints. Parallel lines never intersect.
func LineIntersect(start, end, a, b mgl64.Vec2) (mgl64.Vec2, bool) {
	r := end.Sub(start)
	s := b.Sub(a)

	denom := Cross(r, s)
	if denom == 0 {
		return mgl64.Vec2{}, false
	}

	diff := a.Sub(start)
	t := Cross(diff, s) / denom
	u := Cross(diff, r) / denom

	if t <= 0 || t > 1 || u < 0 || u > 1 {
		return mgl64.Vec2{}, false
	}
	return start.Add(r.Mul(t)), true
}

// LineIntersectRect returns the intersection of start->end with the edges of
// r nearest to start.
func LineIntersectRect(start, end mgl64.Vec2, r Rect) (mgl64.Vec2, bool) {
	corners := [4]mgl64.Vec2{
		r.Min,
		{r.Max[0], r.Min[1]},
		r.Max,
		{r.Min[0], r.Max[1]},
	}

	var nearest mgl64.Vec2
	found := false
	best := math.Inf(1)
	for i := range corners {
		p, ok := LineIntersect(start, end, corners[i], corners[(i+1)%len(corners)])
		if !ok {
			continue
		}
		if d := p.Sub(start).Len(); d < best {
			best = d
			nearest = p
			found = true
		}
	}
	return nearest, found
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b mgl64.Vec2) float64 {
	return b.Sub(a).Len()
}

// Lerp interpolates between a and b.
func Lerp(a, b mgl64.Vec2, t float64) mgl64.Vec2 {
	return a.Add(b.Sub(a).Mul(t))
}
