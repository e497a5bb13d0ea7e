// Command levelview is a top-down debug viewer: walk the player around a
// level, open doors, shoot, and watch the level files for edits.
package main

import (
	"context"
	"flag"
	"math"

	"github.com/automoto/doomgrid/app"
	"github.com/automoto/doomgrid/components"
	"github.com/automoto/doomgrid/config"
	"github.com/automoto/doomgrid/level"
	"github.com/automoto/doomgrid/logger"
	"github.com/automoto/doomgrid/sim"
	"github.com/automoto/doomgrid/systems"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

type viewer struct {
	ctx     context.Context
	session *level.Session
	watcher *level.Watcher
	store   *systems.StatsStore
	input   input

	names  []string
	index  int
	facing mgl64.Vec2
}

func (v *viewer) Update() error {
	v.drainWatcher()

	l := v.session.Current()
	if l == nil {
		return nil
	}
	dt := 1 / float64(ebiten.TPS())

	v.input.poll()
	switch {
	case v.input.justPressed(config.ActionNextLevel):
		v.advance()
		return nil
	case v.input.justPressed(config.ActionReload):
		_, _ = v.session.Reload(v.ctx)
		return nil
	case v.input.justPressed(config.ActionToggleRays):
		config.Debug.ShowRays = !config.Debug.ShowRays
	case v.input.justPressed(config.ActionToggleSpace):
		config.Debug.ShowSpace = !config.Debug.ShowSpace
	}

	// Doors and objects settle before this tick's queries
	l.Update(dt)

	if dir := v.input.direction(); dir.Len() > 0 {
		v.facing = dir.Normalize()
		l.MovePlayer(v.facing.Mul(config.Actor("player").Speed * dt))
	}

	if v.input.justPressed(config.ActionUse) {
		if res := l.Use(); res.Exit != 0 {
			v.finish(l)
			v.advance()
			return nil
		}
	}
	if v.input.justPressed(config.ActionFire) {
		if player, ok := l.Player(); ok && !components.Actor.Get(player).Dead {
			l.Fire(player, v.facing, systems.Pistol())
		}
	}

	sim.Think(l, dt)
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	if l := v.session.Current(); l != nil {
		l.Draw(screen, config.Debug.Scale)
	}
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	l := v.session.Current()
	if l == nil {
		return outsideWidth, outsideHeight
	}
	return int(math.Ceil(float64(l.Grid.Width) * config.Debug.Scale)),
		int(math.Ceil(float64(l.Grid.Height) * config.Debug.Scale))
}

// drainWatcher reloads the current level when its file changed.
func (v *viewer) drainWatcher() {
	if v.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-v.watcher.Events:
			if !ok {
				v.watcher = nil
				return
			}
			if l := v.session.Current(); l != nil && l.Name == name {
				_, _ = v.session.Reload(v.ctx)
			}
		case err, ok := <-v.watcher.Errors:
			if !ok {
				v.watcher = nil
				return
			}
			logger.Log.WithError(err).Warn("Level watcher error")
		default:
			return
		}
	}
}

func (v *viewer) advance() {
	if len(v.names) == 0 {
		return
	}
	v.index = (v.index + 1) % len(v.names)
	_, _ = v.session.Load(v.ctx, v.names[v.index])
}

func (v *viewer) finish(l *level.Level) {
	best, err := v.store.Record(l.Stats())
	if err != nil {
		return
	}
	logger.Log.WithFields(logrus.Fields{
		"level":        l.Name,
		"best_secrets": best.SecretsFound,
		"best_kills":   best.Kills,
	}).Info("Level finished")
}

func main() {
	dir := flag.String("dir", "", "Level directory to load and watch (empty = bundled levels)")
	name := flag.String("level", "", "First level (empty = first by name)")
	configPath := flag.String("config", "", "YAML config overrides")
	flag.Parse()

	ctx := context.Background()
	shutdown := app.Bootstrap(ctx, *configPath)
	defer func() {
		if err := shutdown(ctx); err != nil {
			logger.Log.WithError(err).Warn("Error shutting down telemetry")
		}
	}()

	fsys, levelsDir := app.LevelSource(*dir)
	v := &viewer{
		ctx:     ctx,
		session: level.NewSession(fsys, levelsDir),
		facing:  mgl64.Vec2{1, 0},
	}

	names, err := v.session.Names()
	if err != nil {
		logger.Log.WithError(err).Error("No levels")
		return
	}
	v.names = names
	for i, n := range names {
		if n == *name {
			v.index = i
		}
	}
	if _, err := v.session.Load(ctx, v.names[v.index]); err != nil {
		return
	}

	if *dir != "" {
		if v.watcher, err = level.NewWatcher(*dir); err != nil {
			logger.Log.WithError(err).Warn("Hot reload disabled")
		} else {
			defer v.watcher.Close()
		}
	}

	if v.store, err = systems.OpenStatsStore(config.Debug.StatsApp); err != nil {
		logger.Log.WithError(err).Warn("Stats will not be saved")
	}

	ebiten.SetWindowTitle("doomgrid level viewer")
	w, h := v.Layout(0, 0)
	ebiten.SetWindowSize(w*2, h*2)
	if err := ebiten.RunGame(v); err != nil {
		logger.Log.WithError(err).Error("Viewer stopped")
	}
}
