package systems

import (
	"testing"

	"github.com/automoto/doomgrid/components"
	cfg "github.com/automoto/doomgrid/config"
	"github.com/automoto/doomgrid/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

func TestWeaponDamageAt(t *testing.T) {
	tests := []struct {
		name     string
		weapon   Weapon
		distance float64
		want     int
	}{
		{"pistol close", Pistol(), 1, cfg.Combat.BulletDamage},
		{"pistol at range", Pistol(), cfg.Combat.BulletRange, cfg.Combat.BulletDamage},
		{"pistol falloff", Pistol(), 2 * cfg.Combat.BulletRange, cfg.Combat.BulletDamage / 2},
		{"shotgun falloff", Shotgun(), 4 * cfg.Combat.ShellRange, cfg.Combat.ShellDamage / 4},
		{"knife reach", Knife(), cfg.Combat.MeleeRange, cfg.Combat.MeleeDamage},
		{"knife too far", Knife(), cfg.Combat.MeleeRange + 0.01, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.weapon.DamageAt(tt.distance); got != tt.want {
				t.Errorf("DamageAt(%v) = %d, want %d", tt.distance, got, tt.want)
			}
		})
	}
}

func TestFireStoppedByWall(t *testing.T) {
	e := newLevel(t,
		"#########",
		"#P..#..E#",
		"#########",
	)
	player := mustPlayer(t, e.World)
	enemy, _ := tags.Enemy.First(e.World)

	hit, ok := Fire(e.World, player.Entity(), components.Actor.Get(player).Position, mgl64.Vec2{1, 0}, Pistol())
	if !ok || hit.Kind != HitWall {
		t.Fatalf("hit = %+v, %v, want the wall", hit, ok)
	}
	step(e, 0)
	if hp := components.Health.Get(enemy); hp.Current != hp.Max {
		t.Errorf("enemy behind a wall took damage: %d/%d", hp.Current, hp.Max)
	}
}

func TestDestroyedPropStopsBlocking(t *testing.T) {
	e := newLevel(t,
		"#######",
		"#P.B..#",
		"#######",
	)
	player := mustPlayer(t, e.World)
	barrel := propNamed(t, e.World, "barrel")
	barrelEntity := barrel.Entity()
	eye := components.Actor.Get(player).Position

	req := MovementRequest{
		Old:    eye,
		New:    mgl64.Vec2{3.5, 1.5},
		Half:   components.Actor.Get(player).Half,
		Ignore: player.Entity(),
	}
	if got := ResolveMovement(e.World, req); got[0] != 0 {
		t.Fatalf("barrel does not block: %v", got)
	}

	for i := 0; i < 2; i++ {
		hit, ok := Fire(e.World, player.Entity(), eye, mgl64.Vec2{1, 0}, Pistol())
		if !ok || hit.Entity != barrelEntity {
			t.Fatalf("shot %d hit %+v, want the barrel", i, hit)
		}
		step(e, 0)
	}

	if e.World.Valid(barrelEntity) {
		t.Fatal("barrel survived two shots")
	}
	if got := ResolveMovement(e.World, req); got != (mgl64.Vec2{1, 1}) {
		t.Errorf("destroyed barrel still blocks: %v", got)
	}
	if hit, ok := NearestHit(e.World, RayQuery{Start: eye, End: mgl64.Vec2{5.5, 1.5}}); ok {
		t.Errorf("destroyed barrel still hit: %+v", hit)
	}
}

func TestDeadActorStopsBlocking(t *testing.T) {
	defer func(saved bool) { cfg.Collision.ActorsBlockActors = saved }(cfg.Collision.ActorsBlockActors)
	cfg.Collision.ActorsBlockActors = true

	e := newLevel(t,
		"#######",
		"#P.E..#",
		"#######",
	)
	player := mustPlayer(t, e.World)
	enemy, _ := tags.Enemy.First(e.World)
	eye := components.Actor.Get(player).Position

	req := MovementRequest{
		Old:    eye,
		New:    mgl64.Vec2{3.5, 1.5},
		Half:   components.Actor.Get(player).Half,
		Ignore: player.Entity(),
	}
	if got := ResolveMovement(e.World, req); got[0] != 0 {
		t.Fatalf("living enemy does not block: %v", got)
	}

	Fire(e.World, player.Entity(), eye, mgl64.Vec2{1, 0}, Shotgun())
	Fire(e.World, player.Entity(), eye, mgl64.Vec2{1, 0}, Shotgun())
	if ev := components.DamageEvent.Get(enemy); ev.Amount != 2*cfg.Combat.ShellDamage {
		t.Errorf("queued damage = %d, want %d", ev.Amount, 2*cfg.Combat.ShellDamage)
	}
	step(e, 0)

	if !components.Actor.Get(enemy).Dead {
		t.Fatal("enemy survived")
	}
	if enemy.HasComponent(components.DamageEvent) {
		t.Error("damage event not consumed")
	}
	if kills := levelData(e.World).Kills; kills != 1 {
		t.Errorf("kills = %d, want 1", kills)
	}
	if got := ResolveMovement(e.World, req); got != (mgl64.Vec2{1, 1}) {
		t.Errorf("dead enemy still blocks: %v", got)
	}
	hit, ok := NearestHit(e.World, RayQuery{Start: eye, End: mgl64.Vec2{5.5, 1.5}, IncludeActors: true, Ignore: player.Entity()})
	if ok && hit.Entity == enemy.Entity() {
		t.Error("dead enemy still hit")
	}
}

func TestQueueDamageIgnoresEntitiesWithoutHealth(t *testing.T) {
	e := newLevel(t, doorway...)
	door, _ := tags.Door.First(e.World)
	QueueDamage(door, components.DamageEventData{Amount: 10, Source: donburi.Null})
	if door.HasComponent(components.DamageEvent) {
		t.Error("door received a damage event")
	}
}
