package components

import (
	"github.com/automoto/doomgrid/shared/geometry"
	"github.com/automoto/doomgrid/shared/leveldata"
	"github.com/yohamta/donburi"
)

// LevelData is the static half of a loaded level plus its running totals.
// One per world.
type LevelData struct {
	Name     string
	Grid     *leveldata.Grid
	Mesh     *geometry.Mesh
	Segments []geometry.Segment

	SecretsTotal int
	SecretsFound int
	EnemiesTotal int
	Kills        int

	nextSeq int
}

// NextSeq hands out creation-order numbers for obstacles.
func (l *LevelData) NextSeq() int {
	l.nextSeq++
	return l.nextSeq
}

var Level = donburi.NewComponentType[LevelData]()

// ClockData is the simulation clock.
type ClockData struct {
	Delta   float64 // seconds in the current tick
	Elapsed float64
	Ticks   int
}

var Clock = donburi.NewComponentType[ClockData]()
