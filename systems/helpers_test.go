package systems

import (
	"testing"

	"github.com/automoto/doomgrid/components"
	"github.com/automoto/doomgrid/shared/bitmap"
	"github.com/automoto/doomgrid/shared/geometry"
	"github.com/automoto/doomgrid/shared/leveldata"
	"github.com/automoto/doomgrid/systems/factory"
	"github.com/automoto/doomgrid/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const floor = 0x102000

var legend = map[rune]uint32{
	'#': 0,
	'.': floor,
	'P': floor | leveldata.CodePlayer,
	'D': floor | leveldata.CodeDoor,
	'S': floor | leveldata.CodeSecretWall,
	'E': floor | leveldata.CodeSoldier,
	'B': floor | leveldata.CodeBarrel,
	'T': floor | leveldata.CodeTable,
	'L': floor | leveldata.CodeLantern,
	'M': floor | leveldata.CodeMedkit,
	'X': floor | (leveldata.CodeExitBase + 2),
}

func newLevel(t *testing.T, rows ...string) *ecs.ECS {
	t.Helper()
	grid, err := leveldata.Classify(bitmap.MustParse(legend, rows...))
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	mesh, segments := geometry.Emit(grid)

	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateLevel(e, "test", grid, mesh, segments)
	return e
}

// step runs one tick of the level pipeline.
func step(e *ecs.ECS, dt float64) {
	AdvanceClock(e.World, dt)
	UpdateDoors(e)
	UpdateObjects(e)
	UpdateCombat(e)
}

func mustPlayer(t *testing.T, w donburi.World) *donburi.Entry {
	t.Helper()
	player, ok := tags.Player.First(w)
	if !ok {
		t.Fatal("level has no player")
	}
	return player
}

func levelData(w donburi.World) *components.LevelData {
	entry, _ := components.Level.First(w)
	return components.Level.Get(entry)
}

func propNamed(t *testing.T, w donburi.World, name string) *donburi.Entry {
	t.Helper()
	var found *donburi.Entry
	tags.Prop.Each(w, func(e *donburi.Entry) {
		if found == nil && components.Obstacle.Get(e).Name == name {
			found = e
		}
	})
	if found == nil {
		t.Fatalf("no %s in level", name)
	}
	return found
}
