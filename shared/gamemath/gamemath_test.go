package gamemath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestSweepRect(t *testing.T) {
	wall := NewRect(mgl64.Vec2{2, 0}, mgl64.Vec2{1, 1})
	half := mgl64.Vec2{0.2, 0.2}

	tests := []struct {
		name      string
		old, next mgl64.Vec2
		want      mgl64.Vec2
	}{
		{"stationary", mgl64.Vec2{1.5, 0.5}, mgl64.Vec2{1.5, 0.5}, mgl64.Vec2{1, 1}},
		{"into wall along x", mgl64.Vec2{1.5, 0.5}, mgl64.Vec2{1.9, 0.5}, mgl64.Vec2{0, 1}},
		{"away from wall", mgl64.Vec2{1.7, 0.5}, mgl64.Vec2{1.5, 0.5}, mgl64.Vec2{1, 1}},
		{"along the wall face", mgl64.Vec2{1.7, 0.3}, mgl64.Vec2{1.7, 0.6}, mgl64.Vec2{1, 1}},
		{"diagonal keeps free axis", mgl64.Vec2{1.7, 0.5}, mgl64.Vec2{1.9, 0.4}, mgl64.Vec2{0, 1}},
		{"far from wall", mgl64.Vec2{0.5, 0.5}, mgl64.Vec2{0.6, 0.6}, mgl64.Vec2{1, 1}},
		{"tunnelling step", mgl64.Vec2{1.5, 0.5}, mgl64.Vec2{3.5, 0.5}, mgl64.Vec2{0, 1}},
		{"inside without deepening", mgl64.Vec2{2.5, 0.5}, mgl64.Vec2{2.6, 0.5}, mgl64.Vec2{1, 1}},
		{"overlapping moves deeper", mgl64.Vec2{1.9, 0.5}, mgl64.Vec2{2.0, 0.5}, mgl64.Vec2{0, 1}},
		{"overlapping backs out", mgl64.Vec2{1.9, 0.5}, mgl64.Vec2{1.8, 0.5}, mgl64.Vec2{1, 1}},
		{"corner clip zeroes shallow axis", mgl64.Vec2{1.75, 1.25}, mgl64.Vec2{1.9, 1.15}, mgl64.Vec2{1, 0}},
		{"corner miss", mgl64.Vec2{1.75, 1.25}, mgl64.Vec2{1.78, 1.15}, mgl64.Vec2{1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SweepRect(tt.old, tt.next, half, wall)
			if got != tt.want {
				t.Errorf("SweepRect(%v -> %v) = %v, want %v", tt.old, tt.next, got, tt.want)
			}
		})
	}
}

func TestSweepRectNoPenetration(t *testing.T) {
	wall := NewRect(mgl64.Vec2{2, 0}, mgl64.Vec2{1, 1})
	half := mgl64.Vec2{0.2, 0.2}
	pos := mgl64.Vec2{1.0, 0.5}
	step := mgl64.Vec2{0.05, 0}

	for i := 0; i < 100; i++ {
		s := SweepRect(pos, pos.Add(step), half, wall)
		pos = pos.Add(mgl64.Vec2{step[0] * s[0], step[1] * s[1]})
	}
	if pos[0]+half[0] > wall.Min[0] {
		t.Errorf("footprint edge %v penetrated wall at %v", pos[0]+half[0], wall.Min[0])
	}
}

func TestSweepRectDiagonalNoPenetration(t *testing.T) {
	pillar := NewRect(mgl64.Vec2{3, 2}, mgl64.Vec2{1, 1})
	half := mgl64.Vec2{0.2, 0.2}
	pos := mgl64.Vec2{2.7, 1.7}

	steps := []mgl64.Vec2{{0.2, 0.2}, {0.2, 0}, {0.2, 0}, {0.2, 0}, {0.2, 0}}
	for _, d := range steps {
		s := SweepRect(pos, pos.Add(d), half, pillar)
		pos = pos.Add(mgl64.Vec2{d[0] * s[0], d[1] * s[1]})
		if RectAround(pos, half).Overlaps(pillar) {
			t.Fatalf("footprint at %v overlaps the pillar", pos)
		}
	}
}

func TestLineIntersect(t *testing.T) {
	p, ok := LineIntersect(mgl64.Vec2{0, 0}, mgl64.Vec2{2, 2}, mgl64.Vec2{0, 2}, mgl64.Vec2{2, 0})
	if !ok || !p.ApproxEqual(mgl64.Vec2{1, 1}) {
		t.Errorf("crossing = %v %v, want (1,1)", p, ok)
	}

	if _, ok := LineIntersect(mgl64.Vec2{0, 0}, mgl64.Vec2{2, 0}, mgl64.Vec2{0, 1}, mgl64.Vec2{2, 1}); ok {
		t.Error("parallel lines intersected")
	}

	if _, ok := LineIntersect(mgl64.Vec2{0, 0}, mgl64.Vec2{0.5, 0.5}, mgl64.Vec2{0, 2}, mgl64.Vec2{2, 0}); ok {
		t.Error("ray ending before the segment intersected")
	}

	// Segment endpoints count so rays through grid corners are stopped.
	p, ok = LineIntersect(mgl64.Vec2{0, 0.5}, mgl64.Vec2{2, 0.5}, mgl64.Vec2{1, 0.5}, mgl64.Vec2{1, 1.5})
	if !ok || !p.ApproxEqual(mgl64.Vec2{1, 0.5}) {
		t.Errorf("endpoint crossing = %v %v", p, ok)
	}
}

func TestLineIntersectRect(t *testing.T) {
	r := NewRect(mgl64.Vec2{2, -1}, mgl64.Vec2{1, 2})

	p, ok := LineIntersectRect(mgl64.Vec2{0, 0}, mgl64.Vec2{5, 0}, r)
	if !ok || !p.ApproxEqual(mgl64.Vec2{2, 0}) {
		t.Errorf("near edge = %v %v, want (2,0)", p, ok)
	}

	p, ok = LineIntersectRect(mgl64.Vec2{5, 0}, mgl64.Vec2{0, 0}, r)
	if !ok || !p.ApproxEqual(mgl64.Vec2{3, 0}) {
		t.Errorf("reverse near edge = %v %v, want (3,0)", p, ok)
	}

	if _, ok := LineIntersectRect(mgl64.Vec2{0, 5}, mgl64.Vec2{5, 5}, r); ok {
		t.Error("miss reported a hit")
	}
}

func TestRectOverlapsTouching(t *testing.T) {
	a := NewRect(mgl64.Vec2{0, 0}, mgl64.Vec2{1, 1})
	b := NewRect(mgl64.Vec2{1, 0}, mgl64.Vec2{1, 1})
	if a.Overlaps(b) {
		t.Error("touching rectangles overlap")
	}
	if !a.Overlaps(b.Translate(mgl64.Vec2{-0.01, 0})) {
		t.Error("overlapping rectangles reported apart")
	}
	if d := Distance(a.Center(), b.Center()); math.Abs(d-1) > 1e-12 {
		t.Errorf("center distance = %v", d)
	}
}
