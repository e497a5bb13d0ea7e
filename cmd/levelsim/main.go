// Command levelsim runs a level headless: monsters hunt the player and the
// door and damage pipeline ticks at a fixed rate.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/doomgrid/app"
	"github.com/automoto/doomgrid/config"
	"github.com/automoto/doomgrid/level"
	"github.com/automoto/doomgrid/logger"
	"github.com/automoto/doomgrid/sim"
	"github.com/automoto/doomgrid/systems"
)

func main() {
	dir := flag.String("dir", "", "Level directory (empty = bundled levels)")
	name := flag.String("level", "e1m1", "Level to run")
	tickRate := flag.Int("tickrate", 60, "Simulation tick rate (updates per second)")
	ticks := flag.Int("ticks", 600, "Ticks to run (0 = until interrupted)")
	configPath := flag.String("config", "", "YAML config overrides")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown := app.Bootstrap(ctx, *configPath)
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			logger.Log.WithError(err).Warn("Error shutting down telemetry")
		}
	}()

	fsys, levelsDir := app.LevelSource(*dir)
	l, err := level.NewSession(fsys, levelsDir).Load(ctx, *name)
	if err != nil {
		logger.Log.WithError(err).Error("Could not load level")
		return
	}

	sim.NewLoop(l, *tickRate, *ticks).Run(ctx)

	store, err := systems.OpenStatsStore(config.Debug.StatsApp)
	if err != nil {
		return
	}
	if _, err := store.Record(l.Stats()); err != nil {
		logger.Log.WithError(err).Warn("Stats not saved")
	}
}
