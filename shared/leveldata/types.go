// Package leveldata classifies level bitmaps into tile grids and loads level
// sources (raster images and Tiled maps). It has no dependencies on
// ebitengine, donburi, or resolv. Pure data only.
package leveldata

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Low-byte tile codes. These values are the level authoring format.
const (
	CodeWall         = 0
	CodePlayer       = 1
	CodeDoor         = 16
	CodeSecretWall   = 20
	CodeLantern      = 50
	CodeLamp         = 51
	CodeBones        = 55
	CodeDeadSoldier  = 60
	CodeCorpse       = 70
	CodeFood         = 80
	CodeDog          = 90
	CodeTree         = 100
	CodeSS           = 110
	CodeTable        = 120
	CodeFurnace      = 121
	CodeKitchen      = 122
	CodeClock        = 123
	CodeSoldier      = 128
	CodeSuperShotgun = 130
	CodeSergeant     = 140
	CodePipe         = 150
	CodePendulum     = 151
	CodeHanged       = 152
	CodePillar       = 153
	CodeArmor        = 154
	CodeHelmet       = 155
	CodeBarrel       = 160
	CodeMedkit       = 192

	// Codes in (CodeExitBase, CodeExitMax] not claimed above are exits.
	CodeExitBase = 96
	CodeExitMax  = 127
)

// TileKind is the structural meaning of a tile.
type TileKind uint8

const (
	TileOpen TileKind = iota
	TileWall
	TileDoor
	TileSecretWall
)

func (k TileKind) String() string {
	switch k {
	case TileOpen:
		return "open"
	case TileWall:
		return "wall"
	case TileDoor:
		return "door"
	case TileSecretWall:
		return "secret wall"
	}
	return fmt.Sprintf("TileKind(%d)", uint8(k))
}

// Axis is the ground-plane axis a door spans.
type Axis uint8

const (
	AxisNone Axis = iota
	AxisX         // spans along x; passage runs north-south
	AxisZ         // spans along z; passage runs east-west
)

// EntityKind identifies what spawns on a tile.
type EntityKind uint8

const (
	EntityNone EntityKind = iota

	EntityPlayer

	// Enemies
	EntitySoldier
	EntitySS
	EntitySergeant
	EntityDog

	// Props
	EntityLantern
	EntityLamp
	EntityBones
	EntityDeadSoldier
	EntityCorpse
	EntityTree
	EntityTable
	EntityFurnace
	EntityKitchen
	EntityClock
	EntityPipe
	EntityPendulum
	EntityHanged
	EntityPillar
	EntityBarrel

	// Pickups
	EntityFood
	EntityMedkit
	EntitySuperShotgun
	EntityArmor
	EntityHelmet
)

// Category groups entity kinds by how the level treats them.
type Category uint8

const (
	CategoryNone Category = iota
	CategoryPlayer
	CategoryEnemy
	CategoryProp
	CategoryPickup
)

var entityNames = map[EntityKind]string{
	EntityPlayer:       "player",
	EntitySoldier:      "soldier",
	EntitySS:           "ss",
	EntitySergeant:     "sergeant",
	EntityDog:          "dog",
	EntityLantern:      "lantern",
	EntityLamp:         "lamp",
	EntityBones:        "bones",
	EntityDeadSoldier:  "deadsoldier",
	EntityCorpse:       "corpse",
	EntityTree:         "tree",
	EntityTable:        "table",
	EntityFurnace:      "furnace",
	EntityKitchen:      "kitchen",
	EntityClock:        "clock",
	EntityPipe:         "pipe",
	EntityPendulum:     "pendulum",
	EntityHanged:       "hanged",
	EntityPillar:       "pillar",
	EntityBarrel:       "barrel",
	EntityFood:         "food",
	EntityMedkit:       "medkit",
	EntitySuperShotgun: "supershotgun",
	EntityArmor:        "armor",
	EntityHelmet:       "helmet",
}

// String returns the kind's configuration key.
func (k EntityKind) String() string {
	if name, ok := entityNames[k]; ok {
		return name
	}
	return "none"
}

// Category returns the kind's category.
func (k EntityKind) Category() Category {
	switch {
	case k == EntityPlayer:
		return CategoryPlayer
	case k >= EntitySoldier && k <= EntityDog:
		return CategoryEnemy
	case k >= EntityLantern && k <= EntityBarrel:
		return CategoryProp
	case k >= EntityFood && k <= EntityHelmet:
		return CategoryPickup
	}
	return CategoryNone
}

// Tile is one classified grid cell.
type Tile struct {
	Kind        TileKind
	Code        uint8 // low byte
	FloorRegion uint8 // middle byte
	WallRegion  uint8 // high byte
	DoorAxis    Axis  // set for doors and secret walls
	Entity      EntityKind
	ExitOffset  int // non-zero for exit tiles
	Interior    bool
}

// Solid reports whether the tile blocks as a wall block.
func (t Tile) Solid() bool { return t.Kind == TileWall }

// Spawn is an entity placed by the level.
type Spawn struct {
	Kind     EntityKind
	Position mgl64.Vec2 // tile centre
	TileX    int
	TileY    int
}

// Exit is a level-exit tile.
type Exit struct {
	Position mgl64.Vec2 // tile centre
	TileX    int
	TileY    int
	Offset   int // levels to advance
}

// Passage is a door or secret wall tile.
type Passage struct {
	TileX  int
	TileY  int
	Axis   Axis
	Secret bool
}

// Grid holds the classified level. It is immutable after Classify returns.
type Grid struct {
	Width    int
	Height   int
	Tiles    []Tile
	Spawns   []Spawn
	Exits    []Exit
	Passages []Passage
}

// At returns the tile at (x, y). Cells outside the grid read as walls.
func (g *Grid) At(x, y int) Tile {
	if !g.InBounds(x, y) {
		return Tile{Kind: TileWall}
	}
	return g.Tiles[y*g.Width+x]
}

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.Width && y < g.Height
}

// Solid reports whether (x, y) is a wall block.
func (g *Grid) Solid(x, y int) bool {
	return g.At(x, y).Solid()
}

// PlayerSpawn returns the last player spawn in scan order, matching how a
// level with several markers resolves.
func (g *Grid) PlayerSpawn() (Spawn, bool) {
	var found Spawn
	ok := false
	for _, s := range g.Spawns {
		if s.Kind == EntityPlayer {
			found = s
			ok = true
		}
	}
	return found, ok
}

// Stats summarises a grid.
type Stats struct {
	Walls   int
	Open    int
	Doors   int
	Secrets int
	Enemies int
	Props   int
	Pickups int
	Exits   int
}

// Stats counts the grid's contents.
func (g *Grid) Stats() Stats {
	var s Stats
	for _, t := range g.Tiles {
		switch t.Kind {
		case TileWall:
			s.Walls++
		case TileOpen:
			s.Open++
		case TileDoor:
			s.Doors++
		case TileSecretWall:
			s.Secrets++
		}
	}
	for _, sp := range g.Spawns {
		switch sp.Kind.Category() {
		case CategoryEnemy:
			s.Enemies++
		case CategoryProp:
			s.Props++
		case CategoryPickup:
			s.Pickups++
		}
	}
	s.Exits = len(g.Exits)
	return s
}
