// Package level owns one loaded level: its classified grid, static geometry
// and the donburi world holding every obstacle, door and actor. All runtime
// queries go through a Level.
package level

import (
	"context"
	"fmt"

	"github.com/automoto/doomgrid/components"
	"github.com/automoto/doomgrid/logger"
	"github.com/automoto/doomgrid/shared/bitmap"
	"github.com/automoto/doomgrid/shared/geometry"
	"github.com/automoto/doomgrid/shared/leveldata"
	"github.com/automoto/doomgrid/systems"
	"github.com/automoto/doomgrid/systems/factory"
	"github.com/automoto/doomgrid/tags"
	"github.com/automoto/doomgrid/telemetry"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Level is a fully built level. It is only handed out complete.
type Level struct {
	Name     string
	Grid     *leveldata.Grid
	Mesh     *geometry.Mesh
	Segments []geometry.Segment

	ecs   *ecs.ECS
	entry *donburi.Entry
}

// Load classifies b, emits its geometry and populates a fresh world.
func Load(ctx context.Context, name string, b bitmap.Bitmap) (*Level, error) {
	tracer := telemetry.Tracer("level")
	ctx, span := tracer.Start(ctx, "level.load")
	defer span.End()
	span.SetAttributes(
		attribute.String("level.name", name),
		attribute.Int("level.width", b.Width()),
		attribute.Int("level.height", b.Height()),
	)

	_, classifySpan := tracer.Start(ctx, "level.classify")
	grid, err := leveldata.Classify(b)
	classifySpan.End()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "classify failed")
		logger.Log.WithError(err).WithField("level", name).Warn("Level rejected")
		return nil, fmt.Errorf("classify %s: %w", name, err)
	}

	_, emitSpan := tracer.Start(ctx, "level.emit")
	mesh, segments := geometry.Emit(grid)
	emitSpan.End()

	l := &Level{
		Name:     name,
		Grid:     grid,
		Mesh:     mesh,
		Segments: segments,
		ecs:      ecs.NewECS(donburi.NewWorld()),
	}
	l.entry = factory.CreateLevel(l.ecs, name, grid, mesh, segments)

	l.ecs.AddSystem(systems.UpdateDoors)
	l.ecs.AddSystem(systems.UpdateObjects)
	l.ecs.AddSystem(systems.UpdateCombat)

	obstacles := donburi.NewQuery(filter.Contains(components.Obstacle)).Count(l.ecs.World)
	span.SetAttributes(
		attribute.Int("level.segments", len(segments)),
		attribute.Int("level.triangles", mesh.Triangles()),
		attribute.Int("level.obstacles", obstacles),
	)

	stats := grid.Stats()
	logger.Log.WithFields(logrus.Fields{
		"level":     name,
		"width":     grid.Width,
		"height":    grid.Height,
		"segments":  len(segments),
		"triangles": mesh.Triangles(),
		"obstacles": obstacles,
		"doors":     stats.Doors,
		"secrets":   stats.Secrets,
		"enemies":   stats.Enemies,
	}).Info("Level loaded")

	return l, nil
}

// World exposes the level's entity world.
func (l *Level) World() donburi.World { return l.ecs.World }

// Update advances the simulation by dt seconds: clock, doors, broadphase
// sync, then queued damage.
func (l *Level) Update(dt float64) {
	systems.AdvanceClock(l.ecs.World, dt)
	l.ecs.Update()
}

// Draw renders the top-down debug view.
func (l *Level) Draw(screen *ebiten.Image, scale float64) {
	systems.DrawDebug(l.ecs.World, screen, scale)
}

// Player returns the player entry, if the level has one.
func (l *Level) Player() (*donburi.Entry, bool) {
	return tags.Player.First(l.ecs.World)
}

// Enemies returns every enemy entry in creation order.
func (l *Level) Enemies() []*donburi.Entry {
	var enemies []*donburi.Entry
	tags.Enemy.Each(l.ecs.World, func(e *donburi.Entry) {
		enemies = append(enemies, e)
	})
	return enemies
}

// Resolve returns the per-axis movement scale for a footprint stepping from
// old to next.
func (l *Level) Resolve(old, next, half mgl64.Vec2) mgl64.Vec2 {
	return systems.ResolveMovement(l.ecs.World, systems.MovementRequest{Old: old, New: next, Half: half})
}

// Move moves an actor by delta and returns the displacement applied.
func (l *Level) Move(e *donburi.Entry, delta mgl64.Vec2) mgl64.Vec2 {
	return systems.MoveActor(l.ecs.World, e, delta)
}

// MovePlayer moves the player and collects the pickups it walks over.
func (l *Level) MovePlayer(delta mgl64.Vec2) (mgl64.Vec2, []leveldata.EntityKind) {
	player, ok := l.Player()
	if !ok {
		return mgl64.Vec2{}, nil
	}
	applied := systems.MoveActor(l.ecs.World, player, delta)
	actor := components.Actor.Get(player)
	return applied, systems.CollectPickups(l.ecs.World, actor.Position, actor.Half)
}

// NearestIntersection returns the first point where start->end meets a wall
// or obstacle, and living actors when includeActors is set.
func (l *Level) NearestIntersection(start, end mgl64.Vec2, includeActors bool) (mgl64.Vec2, bool) {
	return systems.NearestIntersection(l.ecs.World, systems.RayQuery{
		Start:         start,
		End:           end,
		IncludeActors: includeActors,
	})
}

// NearestHit casts q against the level.
func (l *Level) NearestHit(q systems.RayQuery) (systems.Hit, bool) {
	return systems.NearestHit(l.ecs.World, q)
}

// OpenDoors is a "use" at pos.
func (l *Level) OpenDoors(pos mgl64.Vec2, byPlayer bool) systems.InteractResult {
	return systems.OpenDoors(l.ecs.World, pos, byPlayer)
}

// Use is the player pressing "use" where they stand.
func (l *Level) Use() systems.InteractResult {
	player, ok := l.Player()
	if !ok {
		return systems.InteractResult{Misuse: true}
	}
	return systems.OpenDoors(l.ecs.World, components.Actor.Get(player).Position, true)
}

// Fire shoots weapon from shooter's position along dir.
func (l *Level) Fire(shooter *donburi.Entry, dir mgl64.Vec2, weapon systems.Weapon) (systems.Hit, bool) {
	start := components.Actor.Get(shooter).Position
	return systems.Fire(l.ecs.World, shooter.Entity(), start, dir, weapon)
}

// CanSee reports whether viewer has a clear line to target.
func (l *Level) CanSee(viewer, target *donburi.Entry) bool {
	from := components.Actor.Get(viewer).Position
	to := components.Obstacle.Get(target).Center()
	return systems.CanSee(l.ecs.World, from, to, target.Entity())
}

// Stats returns the running score card.
func (l *Level) Stats() systems.LevelStats {
	return systems.CurrentStats(l.ecs.World)
}

// Data returns the level's running totals.
func (l *Level) Data() *components.LevelData {
	return components.Level.Get(l.entry)
}

// Spawn adds an enemy at pos, for tools and tests.
func (l *Level) Spawn(kind leveldata.EntityKind, pos mgl64.Vec2) *donburi.Entry {
	e := factory.CreateEnemy(l.ecs, kind, pos)
	components.Level.Get(l.entry).EnemiesTotal++
	return e
}
