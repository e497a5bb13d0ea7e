package systems

import (
	"testing"

	"github.com/automoto/doomgrid/components"
	cfg "github.com/automoto/doomgrid/config"
	"github.com/automoto/doomgrid/tags"
	"github.com/go-gl/mathgl/mgl64"
)

var doorway = []string{
	"#####",
	"#.P.#",
	"#...#",
	"##D##",
	"#...#",
	"#####",
}

func TestDoorSlidesIntoWall(t *testing.T) {
	e := newLevel(t, doorway...)
	door, _ := tags.Door.First(e.World)
	d := components.Door.Get(door)
	o := components.Obstacle.Get(door)

	if d.State != components.DoorClosed || o.Position != d.ClosedPos {
		t.Fatalf("new door: state %v at %v", d.State, o.Position)
	}
	if !OpenDoor(door) {
		t.Fatal("OpenDoor on a closed door did nothing")
	}
	if OpenDoor(door) {
		t.Error("OpenDoor on an opening door reported a start")
	}

	step(e, cfg.Door.TimeToOpen/2)
	halfway := d.ClosedPos.Add(d.OpenPos.Sub(d.ClosedPos).Mul(0.5))
	if !o.Position.ApproxEqualThreshold(halfway, 1e-6) {
		t.Errorf("halfway position = %v, want %v", o.Position, halfway)
	}

	step(e, cfg.Door.TimeToOpen/2)
	if d.State != components.DoorOpen {
		t.Fatalf("state = %v, want open", d.State)
	}
	if want := d.ClosedPos.Sub(mgl64.Vec2{cfg.Door.OpenOffset, 0}); !o.Position.ApproxEqualThreshold(want, 1e-6) {
		t.Errorf("open position = %v, want %v", o.Position, want)
	}

	// The broadphase object follows the slide
	obj := components.Object.Get(door)
	if want := o.Position[0] * 16; obj.X < want-1e-3 || obj.X > want+1e-3 {
		t.Errorf("space object x = %v, want %v", obj.X, want)
	}
}

func TestDoorClosesAfterDelay(t *testing.T) {
	e := newLevel(t, doorway...)
	door, _ := tags.Door.First(e.World)
	d := components.Door.Get(door)

	OpenDoor(door)
	step(e, cfg.Door.TimeToOpen)
	step(e, cfg.Door.CloseDelay-0.5)
	if d.State != components.DoorOpen {
		t.Fatalf("state before the delay ran out = %v, want open", d.State)
	}

	step(e, 0.5)
	if d.State != components.DoorClosing {
		t.Fatalf("state after the delay = %v, want closing", d.State)
	}

	step(e, cfg.Door.TimeToOpen)
	if d.State != components.DoorClosed {
		t.Fatalf("state = %v, want closed", d.State)
	}
	if o := components.Obstacle.Get(door); !o.Position.ApproxEqualThreshold(d.ClosedPos, 1e-6) {
		t.Errorf("closed position = %v, want %v", o.Position, d.ClosedPos)
	}
}

func TestDoorStaysOpenWhileOccupied(t *testing.T) {
	e := newLevel(t, doorway...)
	door, _ := tags.Door.First(e.World)
	d := components.Door.Get(door)

	player := mustPlayer(t, e.World)
	components.Actor.Get(player).Position = mgl64.Vec2{2.5, 3.5}
	syncActor(e.World, player)

	OpenDoor(door)
	step(e, cfg.Door.TimeToOpen)
	for i := 0; i < 10; i++ {
		step(e, cfg.Door.CloseDelay)
	}
	if d.State != components.DoorOpen {
		t.Fatalf("state with the doorway occupied = %v, want open", d.State)
	}

	components.Actor.Get(player).Position = mgl64.Vec2{2.5, 1.5}
	syncActor(e.World, player)
	step(e, 0.01)
	step(e, cfg.Door.TimeToOpen)
	if d.State != components.DoorClosed {
		t.Errorf("state after leaving = %v, want closed", d.State)
	}
}

func TestDoorReopensWhenEnteredWhileClosing(t *testing.T) {
	e := newLevel(t, doorway...)
	door, _ := tags.Door.First(e.World)
	d := components.Door.Get(door)

	OpenDoor(door)
	step(e, cfg.Door.TimeToOpen)
	step(e, cfg.Door.CloseDelay)
	step(e, cfg.Door.TimeToOpen/2)
	if d.State != components.DoorClosing {
		t.Fatalf("state = %v, want closing", d.State)
	}

	player := mustPlayer(t, e.World)
	components.Actor.Get(player).Position = mgl64.Vec2{2.5, 3.5}
	syncActor(e.World, player)
	step(e, 0)
	if d.State != components.DoorOpening {
		t.Errorf("state = %v, want opening", d.State)
	}
}

func TestSecretWallOpens(t *testing.T) {
	e := newLevel(t,
		"#####",
		"#.P.#",
		"##S##",
		"#...#",
		"#####",
	)
	secret, _ := tags.SecretWall.First(e.World)

	if Opens(secret) {
		t.Fatal("secret wall open before it was triggered")
	}
	res := OpenDoors(e.World, mgl64.Vec2{2.5, 1.6}, true)
	if res.Opened != 1 || res.SecretsFound != 1 {
		t.Fatalf("OpenDoors = %+v, want one secret found", res)
	}
	if Opens(secret) {
		t.Error("secret wall open before the slide finished")
	}

	step(e, cfg.Door.TimeToOpen)
	if !Opens(secret) {
		t.Fatal("secret wall not open after the slide")
	}

	step(e, cfg.Door.CloseDelay*10)
	if !Opens(secret) {
		t.Error("secret wall closed again")
	}

	o := components.Obstacle.Get(secret)
	if o.Size != (mgl64.Vec2{1, 1}) {
		t.Errorf("secret wall size = %v, want a full tile", o.Size)
	}
}
