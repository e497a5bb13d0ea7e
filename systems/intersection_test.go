package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/automoto/doomgrid/components"
	cfg "github.com/automoto/doomgrid/config"
	"github.com/automoto/doomgrid/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

func TestNearestHitNothingInBetween(t *testing.T) {
	e := newLevel(t, room...)
	if hit, ok := NearestHit(e.World, RayQuery{Start: mgl64.Vec2{1.5, 1.5}, End: mgl64.Vec2{4.5, 2.5}}); ok {
		t.Errorf("unexpected hit %+v", hit)
	}
}

func TestNearestHitZeroLength(t *testing.T) {
	e := newLevel(t, room...)
	p := mgl64.Vec2{1.5, 1.5}
	if _, ok := NearestHit(e.World, RayQuery{Start: p, End: p}); ok {
		t.Error("zero-length ray hit something")
	}
}

func TestNearestHitSingleSegment(t *testing.T) {
	e := newLevel(t, room...)
	start, end := mgl64.Vec2{1.5, 2.5}, mgl64.Vec2{1.5, -3}

	hit, ok := NearestHit(e.World, RayQuery{Start: start, End: end})
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.Kind != HitWall || hit.Entity != donburi.Null {
		t.Errorf("hit = %+v, want a wall", hit)
	}
	if !hit.Point.ApproxEqual(mgl64.Vec2{1.5, 1}) {
		t.Errorf("point = %v, want (1.5, 1)", hit.Point)
	}
	if length := end.Sub(start).Len(); hit.Distance >= length {
		t.Errorf("distance %v not shorter than ray %v", hit.Distance, length)
	}

	seg := levelData(e.World).Segments[hit.Segment]
	if seg.Start[1] != 1 || seg.End[1] != 1 {
		t.Errorf("segment %d = %+v, want the north wall of the room", hit.Segment, seg)
	}

	p, ok := NearestIntersection(e.World, RayQuery{Start: start, End: end})
	if !ok || p != hit.Point {
		t.Errorf("NearestIntersection = %v, %v, want %v", p, ok, hit.Point)
	}
}

func TestNearestHitObstacles(t *testing.T) {
	e := newLevel(t,
		"##########",
		"#P.B..L.T#",
		"##########",
	)
	start := mgl64.Vec2{1.5, 1.5}

	hit, ok := NearestHit(e.World, RayQuery{Start: start, End: mgl64.Vec2{9, 1.5}})
	if !ok || hit.Kind != HitObstacle {
		t.Fatalf("hit = %+v, %v, want the barrel", hit, ok)
	}
	barrel := propNamed(t, e.World, "barrel")
	if hit.Entity != barrel.Entity() {
		t.Errorf("hit entity %v, want barrel %v", hit.Entity, barrel.Entity())
	}
	if want := 3.5 - 0.175; math.Abs(hit.Point[0]-want) > 1e-9 {
		t.Errorf("hit x = %v, want %v", hit.Point[0], want)
	}

	// The lantern does not block, the table does
	hit, ok = NearestHit(e.World, RayQuery{Start: mgl64.Vec2{4.5, 1.5}, End: mgl64.Vec2{9, 1.5}})
	if !ok || hit.Kind != HitObstacle {
		t.Fatalf("hit = %+v, %v, want the table", hit, ok)
	}
	if name := components.Obstacle.Get(e.World.Entry(hit.Entity)).Name; name != "table" {
		t.Errorf("hit %q, want table", name)
	}
}

func TestNearestHitActorsOnlyWhenIncluded(t *testing.T) {
	e := newLevel(t,
		"########",
		"#P..E..#",
		"########",
	)
	player := mustPlayer(t, e.World)
	enemy, _ := tags.Enemy.First(e.World)
	q := RayQuery{Start: mgl64.Vec2{1.5, 1.5}, End: mgl64.Vec2{20, 1.5}, Ignore: player.Entity()}

	hit, ok := NearestHit(e.World, q)
	if !ok || hit.Kind != HitWall {
		t.Fatalf("without actors: %+v, %v, want the far wall", hit, ok)
	}
	if math.Abs(hit.Point[0]-7) > 1e-9 {
		t.Errorf("wall hit at %v, want x = 7", hit.Point)
	}

	q.IncludeActors = true
	hit, ok = NearestHit(e.World, q)
	if !ok || hit.Kind != HitActor || hit.Entity != enemy.Entity() {
		t.Fatalf("with actors: %+v, %v, want the enemy", hit, ok)
	}
	if hit.Distance >= 3 {
		t.Errorf("enemy hit at distance %v, want < 3", hit.Distance)
	}

	// The shooter is never its own target
	q.Start = components.Actor.Get(player).Position
	hit, _ = NearestHit(e.World, q)
	if hit.Entity == player.Entity() {
		t.Error("ray hit the ignored shooter")
	}
}

func TestNearestHitBroadphaseMatchesBruteForce(t *testing.T) {
	e := newLevel(t,
		"############",
		"#P.B...T...#",
		"#..E....L..#",
		"###D####S###",
		"#..........#",
		"#.B...E....#",
		"############",
	)
	defer func(saved bool) { cfg.Collision.Broadphase = saved }(cfg.Collision.Broadphase)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		start := mgl64.Vec2{1 + rng.Float64()*10, 1 + rng.Float64()*5}
		angle := rng.Float64() * 2 * math.Pi
		length := 0.5 + rng.Float64()*15
		q := RayQuery{
			Start:         start,
			End:           start.Add(mgl64.Vec2{math.Cos(angle), math.Sin(angle)}.Mul(length)),
			IncludeActors: i%2 == 0,
		}

		cfg.Collision.Broadphase = true
		fast, fastOK := NearestHit(e.World, q)
		cfg.Collision.Broadphase = false
		slow, slowOK := NearestHit(e.World, q)

		if fastOK != slowOK || fast != slow {
			t.Fatalf("ray %d %v->%v: broadphase %+v (%v), brute force %+v (%v)",
				i, q.Start, q.End, fast, fastOK, slow, slowOK)
		}
	}
}

func TestCanSee(t *testing.T) {
	e := newLevel(t,
		"#########",
		"#P..#..E#",
		"#.......#",
		"#########",
	)
	player := mustPlayer(t, e.World)
	enemy, _ := tags.Enemy.First(e.World)
	eye := components.Actor.Get(player).Position

	if CanSee(e.World, eye, components.Obstacle.Get(enemy).Center(), enemy.Entity()) {
		t.Error("saw through the wall")
	}

	actor := components.Actor.Get(enemy)
	actor.Position = mgl64.Vec2{3.5, 2.5}
	syncActor(e.World, enemy)
	if !CanSee(e.World, eye, actor.Position, enemy.Entity()) {
		t.Error("could not see an enemy in the open")
	}
}
