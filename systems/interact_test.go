package systems

import (
	"testing"

	"github.com/automoto/doomgrid/components"
	"github.com/automoto/doomgrid/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

func TestOpenDoorsMisuse(t *testing.T) {
	e := newLevel(t, room...)
	res := OpenDoors(e.World, mgl64.Vec2{3.5, 2.5}, true)
	if !res.Misuse || res.Opened != 0 || res.Exit != 0 {
		t.Errorf("OpenDoors in an empty room = %+v, want misuse", res)
	}

	// Monsters bumping around are never a misuse
	if res := OpenDoors(e.World, mgl64.Vec2{3.5, 2.5}, false); res.Misuse {
		t.Errorf("monster use = %+v, want no misuse", res)
	}
}

func TestOpenDoorsOutOfReach(t *testing.T) {
	e := newLevel(t, doorway...)
	res := OpenDoors(e.World, mgl64.Vec2{2.5, 1.5}, true)
	if res.Opened != 0 || !res.Misuse {
		t.Errorf("OpenDoors two tiles away = %+v, want nothing", res)
	}
}

func TestOpenDoorsUseTwice(t *testing.T) {
	e := newLevel(t, doorway...)
	door, _ := tags.Door.First(e.World)
	pos := mgl64.Vec2{2.5, 2.7}

	first := OpenDoors(e.World, pos, true)
	if first.Opened != 1 || first.Reached != 1 || first.Misuse {
		t.Fatalf("first use = %+v, want the door opened", first)
	}

	second := OpenDoors(e.World, pos, true)
	if second.Opened != 0 || second.Reached != 1 || second.Misuse {
		t.Errorf("use while opening = %+v, want the door reached without misuse", second)
	}

	step(e, 1)
	if state := components.Door.Get(door).State; state != components.DoorOpen {
		t.Fatalf("door state = %v, want open", state)
	}
	third := OpenDoors(e.World, pos, true)
	if third.Reached != 1 || third.Misuse {
		t.Errorf("use on an open door = %+v, want the door reached without misuse", third)
	}
}

func TestOpenDoorsExit(t *testing.T) {
	e := newLevel(t,
		"######",
		"#P.X.#",
		"######",
	)
	pos := mgl64.Vec2{2.6, 1.5}

	res := OpenDoors(e.World, pos, true)
	if res.Exit != 2 || res.Misuse {
		t.Errorf("player at the exit = %+v, want exit offset 2", res)
	}

	if res := OpenDoors(e.World, pos, false); res.Exit != 0 {
		t.Errorf("monster at the exit = %+v, want no exit", res)
	}
}

func TestOpenDoorsSecretStatistics(t *testing.T) {
	e := newLevel(t,
		"#######",
		"#.P...#",
		"##S#S##",
		"#.....#",
		"#######",
	)
	level := levelData(e.World)
	if level.SecretsTotal != 2 || level.SecretsFound != 0 {
		t.Fatalf("secrets = %d/%d, want 0/2", level.SecretsFound, level.SecretsTotal)
	}

	res := OpenDoors(e.World, mgl64.Vec2{2.5, 1.6}, true)
	if res.SecretsFound != 1 || level.SecretsFound != 1 {
		t.Fatalf("first use = %+v, level found %d", res, level.SecretsFound)
	}

	res = OpenDoors(e.World, mgl64.Vec2{2.5, 1.6}, true)
	if res.SecretsFound != 0 || level.SecretsFound != 1 {
		t.Errorf("second use = %+v, level found %d, want no new secret", res, level.SecretsFound)
	}

	step(e, 1)
	found := 0
	tags.SecretWall.Each(e.World, func(s *donburi.Entry) {
		if Opens(s) {
			found++
		}
	})
	if found != 1 {
		t.Errorf("%d secret walls open, want 1", found)
	}
}

func TestMonsterOpensDoorWhenBlocked(t *testing.T) {
	e := newLevel(t,
		"#####",
		"#.P.#",
		"#...#",
		"##D##",
		"#.E.#",
		"#####",
	)
	enemy, _ := tags.Enemy.First(e.World)
	door, _ := tags.Door.First(e.World)

	applied := MoveActor(e.World, enemy, mgl64.Vec2{0, -0.6})
	if applied[1] != 0 {
		t.Fatalf("enemy walked through a closed door: %v", applied)
	}
	if components.Door.Get(door).State != components.DoorOpening {
		t.Error("blocked enemy did not open the door")
	}
}
