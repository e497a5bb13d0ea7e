// Package sim runs a level headless at a fixed tick rate: monsters chase
// the player they can see and the level pipeline advances.
package sim

import (
	"context"
	"time"

	"github.com/automoto/doomgrid/level"
	"github.com/automoto/doomgrid/logger"
	"github.com/sirupsen/logrus"
)

type Loop struct {
	level    *level.Level
	tickRate int
	maxTicks int // 0 runs until stopped
	ticks    int
	stopChan chan struct{}
}

func NewLoop(l *level.Level, tickRate, maxTicks int) *Loop {
	return &Loop{
		level:    l,
		tickRate: max(tickRate, 1),
		maxTicks: maxTicks,
		stopChan: make(chan struct{}),
	}
}

// Run ticks until Stop, ctx is done or maxTicks is reached.
func (g *Loop) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	logger.Log.WithFields(logrus.Fields{
		"level":     g.level.Name,
		"tick_rate": g.tickRate,
	}).Info("Simulation started")

	for {
		select {
		case <-g.stopChan:
			g.finish("stopped")
			return
		case <-ctx.Done():
			g.finish("cancelled")
			return
		case <-ticker.C:
			g.Step()
			if g.maxTicks > 0 && g.ticks >= g.maxTicks {
				g.finish("tick limit")
				return
			}
		}
	}
}

func (g *Loop) Stop() {
	close(g.stopChan)
}

// Step runs one tick without waiting for the ticker. The level pipeline
// runs first so monsters query this tick's door positions.
func (g *Loop) Step() {
	dt := 1 / float64(g.tickRate)
	g.level.Update(dt)
	Think(g.level, dt)
	g.ticks++
}

// Ticks returns the number of ticks run so far.
func (g *Loop) Ticks() int {
	return g.ticks
}

func (g *Loop) finish(reason string) {
	stats := g.level.Stats()
	logger.Log.WithFields(logrus.Fields{
		"level":   g.level.Name,
		"reason":  reason,
		"ticks":   g.ticks,
		"kills":   stats.Kills,
		"secrets": stats.SecretsFound,
	}).Info("Simulation stopped")
}
