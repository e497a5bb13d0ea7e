package systems

import (
	"fmt"
	"image/color"
	"math"

	"github.com/automoto/doomgrid/components"
	cfg "github.com/automoto/doomgrid/config"
	"github.com/automoto/doomgrid/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
)

var (
	segmentColor = color.RGBA{200, 200, 200, 255}
	rayColor     = color.RGBA{255, 255, 0, 96}
	spaceColor   = color.RGBA{0, 255, 255, 255}
)

// DrawDebug draws the level top-down at scale pixels per tile: wall
// segments, obstacle footprints, a visibility fan around the player and a
// statistics line.
func DrawDebug(w donburi.World, screen *ebiten.Image, scale float64) {
	toScreen := func(p mgl64.Vec2) (float32, float32) {
		return float32(p[0] * scale), float32(p[1] * scale)
	}

	levelEntry, ok := components.Level.First(w)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)

	for _, seg := range level.Segments {
		x0, y0 := toScreen(seg.Start)
		x1, y1 := toScreen(seg.End)
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, segmentColor, false)
	}

	components.Obstacle.Each(w, func(e *donburi.Entry) {
		o := components.Obstacle.Get(e)
		if o.Kind == components.ObstacleWall {
			return
		}
		c := obstacleColor(e)
		x, y := toScreen(o.Position)
		vector.StrokeRect(screen, x, y, float32(o.Size[0]*scale), float32(o.Size[1]*scale), 1, c, false)
	})

	if cfg.Debug.ShowSpace {
		if spaceEntry, ok := components.Space.First(w); ok {
			space := components.Space.Get(spaceEntry)
			k := scale / space.Scale
			for _, obj := range space.Objects() {
				if obj.HasTags(tags.ResolvSolid) {
					continue
				}
				vector.StrokeRect(screen, float32(obj.X*k), float32(obj.Y*k), float32(obj.W*k), float32(obj.H*k), 1, spaceColor, false)
			}
		}
	}

	if player, ok := tags.Player.First(w); ok && cfg.Debug.ShowRays {
		eye := components.Actor.Get(player).Position
		drawFan(w, screen, eye, player.Entity(), toScreen)
	}

	stats := CurrentStats(w)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s  secrets %d/%d  kills %d/%d  %.1fs",
		stats.Level, stats.SecretsFound, stats.SecretsTotal, stats.Kills, stats.EnemiesTotal, stats.Time))
}

func drawFan(w donburi.World, screen *ebiten.Image, eye mgl64.Vec2, self donburi.Entity, toScreen func(mgl64.Vec2) (float32, float32)) {
	columns := max(cfg.Debug.RayColumns, 1)
	x0, y0 := toScreen(eye)
	for i := 0; i < columns; i++ {
		angle := 2 * math.Pi * float64(i) / float64(columns)
		end := eye.Add(mgl64.Vec2{math.Cos(angle), math.Sin(angle)}.Mul(cfg.Combat.RayLength))
		p, ok := NearestIntersection(w, RayQuery{Start: eye, End: end, IncludeActors: true, Ignore: self})
		if !ok {
			continue
		}
		x1, y1 := toScreen(p)
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, rayColor, false)
	}
}

func obstacleColor(e *donburi.Entry) color.Color {
	o := components.Obstacle.Get(e)
	switch o.Kind {
	case components.ObstacleDoor:
		return color.RGBA{160, 100, 40, 255}
	case components.ObstacleSecretWall:
		return color.RGBA{200, 0, 200, 255}
	case components.ObstacleActor:
		if components.Actor.Get(e).Dead {
			return color.RGBA{90, 0, 0, 255}
		}
		if e.HasComponent(tags.Player) {
			return color.RGBA{0, 0, 255, 255}
		}
		return color.RGBA{255, 0, 0, 255}
	}
	if !o.Blocking {
		return color.RGBA{0, 120, 0, 255}
	}
	return color.RGBA{0, 255, 0, 255}
}
