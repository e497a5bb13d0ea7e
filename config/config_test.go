package config

import "testing"

func TestApplyOverrides(t *testing.T) {
	saved := Door
	savedCollision := Collision
	savedBarrel := Props["barrel"]
	defer func() {
		Door = saved
		Collision = savedCollision
		Props["barrel"] = savedBarrel
	}()

	data := []byte(`
door:
  close_delay: 5
collision:
  actors_block_actors: true
props:
  barrel:
    width: 0.5
    length: 0.5
    blocking: true
    damageable: true
    health: 10
`)
	if err := ApplyOverrides(data); err != nil {
		t.Fatalf("ApplyOverrides: %v", err)
	}

	if Door.CloseDelay != 5 {
		t.Errorf("CloseDelay = %v, want 5", Door.CloseDelay)
	}
	if Door.OpenOffset != saved.OpenOffset {
		t.Errorf("OpenOffset changed to %v without an override", Door.OpenOffset)
	}
	if !Collision.ActorsBlockActors {
		t.Error("ActorsBlockActors not applied")
	}
	barrel, ok := Prop("barrel")
	if !ok || barrel.Health != 10 || barrel.Name != "barrel" {
		t.Errorf("barrel override = %+v", barrel)
	}
}

func TestApplyOverridesMergesPartialEntries(t *testing.T) {
	savedBarrel := Props["barrel"]
	savedDog := Actors["dog"]
	defer func() {
		Props["barrel"] = savedBarrel
		Actors["dog"] = savedDog
	}()

	data := []byte(`
props:
  barrel:
    blocking: false
actors:
  dog:
    speed: 4
`)
	if err := ApplyOverrides(data); err != nil {
		t.Fatalf("ApplyOverrides: %v", err)
	}

	barrel, _ := Prop("barrel")
	if barrel.Blocking {
		t.Error("barrel still blocking")
	}
	if barrel.Width != savedBarrel.Width || barrel.Health != savedBarrel.Health || !barrel.Damageable {
		t.Errorf("partial barrel override lost fields: %+v", barrel)
	}

	dog := Actor("dog")
	if dog.Speed != 4 {
		t.Errorf("dog speed = %v, want 4", dog.Speed)
	}
	if dog.HalfWidth != savedDog.HalfWidth || dog.Health != savedDog.Health {
		t.Errorf("partial dog override lost fields: %+v", dog)
	}
}

func TestApplyOverridesNewKind(t *testing.T) {
	defer delete(Props, "crate")

	if err := ApplyOverrides([]byte("props:\n  crate:\n    width: 0.7\n    blocking: true\n")); err != nil {
		t.Fatalf("ApplyOverrides: %v", err)
	}
	crate, ok := Prop("crate")
	if !ok || crate.Name != "crate" || crate.Width != 0.7 || !crate.Blocking {
		t.Errorf("crate = %+v, %v", crate, ok)
	}
}

func TestApplyOverridesInvalid(t *testing.T) {
	if err := ApplyOverrides([]byte("door: [1, 2")); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestApplyEnv(t *testing.T) {
	saved := Collision
	defer func() { Collision = saved }()

	t.Setenv("DOOMGRID_ACTORS_BLOCK_ACTORS", "true")
	if err := ApplyEnv(); err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}
	if !Collision.ActorsBlockActors {
		t.Error("env override not applied")
	}

	t.Setenv("DOOMGRID_ACTORS_BLOCK_ACTORS", "sometimes")
	if err := ApplyEnv(); err == nil {
		t.Error("expected parse error")
	}
}

func TestActorFallback(t *testing.T) {
	if got := Actor("unknown"); got.Name != "player" {
		t.Errorf("Actor(unknown) = %q, want player", got.Name)
	}
}
