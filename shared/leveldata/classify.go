package leveldata

import (
	"errors"
	"fmt"

	"github.com/automoto/doomgrid/shared/bitmap"
	"github.com/go-gl/mathgl/mgl64"
)

// ErrTooSmall is returned for bitmaps without an interior.
var ErrTooSmall = errors.New("level bitmap has no interior")

// AuthoringError reports a malformed door or secret wall tile.
type AuthoringError struct {
	X, Y int
	Kind TileKind
}

func (e *AuthoringError) Error() string {
	what := "doors"
	if e.Kind == TileSecretWall {
		what = "secret walls"
	}
	return fmt.Sprintf("level authoring error at (%d, %d): %s must be between two solid walls", e.X, e.Y, what)
}

var codeEntities = map[uint8]EntityKind{
	CodePlayer:       EntityPlayer,
	CodeLantern:      EntityLantern,
	CodeLamp:         EntityLamp,
	CodeBones:        EntityBones,
	CodeDeadSoldier:  EntityDeadSoldier,
	CodeCorpse:       EntityCorpse,
	CodeFood:         EntityFood,
	CodeDog:          EntityDog,
	CodeTree:         EntityTree,
	CodeSS:           EntitySS,
	CodeTable:        EntityTable,
	CodeFurnace:      EntityFurnace,
	CodeKitchen:      EntityKitchen,
	CodeClock:        EntityClock,
	CodeSoldier:      EntitySoldier,
	CodeSuperShotgun: EntitySuperShotgun,
	CodeSergeant:     EntitySergeant,
	CodePipe:         EntityPipe,
	CodePendulum:     EntityPendulum,
	CodeHanged:       EntityHanged,
	CodePillar:       EntityPillar,
	CodeArmor:        EntityArmor,
	CodeHelmet:       EntityHelmet,
	CodeBarrel:       EntityBarrel,
	CodeMedkit:       EntityMedkit,
}

// IsSolidPixel reports whether a raw pixel encodes a wall block.
func IsSolidPixel(p uint32) bool {
	return p&0xFFFFFF == 0
}

// Classify maps every interior pixel of b to a tile. The outermost ring of
// pixels is a sentinel border: it is always a wall and never classified as
// content. Malformed doors and secret walls abort classification; every
// offending tile is reported.
func Classify(b bitmap.Bitmap) (*Grid, error) {
	w, h := b.Width(), b.Height()
	if w < 3 || h < 3 {
		return nil, fmt.Errorf("%dx%d: %w", w, h, ErrTooSmall)
	}

	g := &Grid{
		Width:  w,
		Height: h,
		Tiles:  make([]Tile, w*h),
	}

	solidAt := func(x, y int) bool {
		if x <= 0 || y <= 0 || x >= w-1 || y >= h-1 {
			return true
		}
		return IsSolidPixel(b.Pixel(x, y))
	}

	var errs []error
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			if x == 0 || y == 0 || x == w-1 || y == h-1 {
				g.Tiles[idx] = Tile{Kind: TileWall}
				continue
			}

			p := b.Pixel(x, y) & 0xFFFFFF
			tile := Tile{
				Code:        uint8(p & 0xFF),
				FloorRegion: uint8((p >> 8) & 0xFF),
				WallRegion:  uint8((p >> 16) & 0xFF),
				Interior:    true,
			}
			if IsSolidPixel(p) {
				tile.Kind = TileWall
				g.Tiles[idx] = tile
				continue
			}

			center := mgl64.Vec2{float64(x) + 0.5, float64(y) + 0.5}
			switch tile.Code {
			case CodeDoor, CodeSecretWall:
				tile.Kind = TileDoor
				if tile.Code == CodeSecretWall {
					tile.Kind = TileSecretWall
				}
				northSouth := solidAt(x, y-1) && solidAt(x, y+1)
				eastWest := solidAt(x-1, y) && solidAt(x+1, y)
				if northSouth == eastWest {
					errs = append(errs, &AuthoringError{X: x, Y: y, Kind: tile.Kind})
					break
				}
				tile.DoorAxis = AxisX
				if northSouth {
					tile.DoorAxis = AxisZ
				}
				g.Passages = append(g.Passages, Passage{
					TileX:  x,
					TileY:  y,
					Axis:   tile.DoorAxis,
					Secret: tile.Kind == TileSecretWall,
				})
			default:
				if kind, ok := codeEntities[tile.Code]; ok {
					tile.Entity = kind
					g.Spawns = append(g.Spawns, Spawn{Kind: kind, Position: center, TileX: x, TileY: y})
					if kind == EntityKitchen {
						g.Spawns = append(g.Spawns, Spawn{Kind: EntityFood, Position: center, TileX: x, TileY: y})
					}
				} else if tile.Code > CodeExitBase && tile.Code <= CodeExitMax {
					tile.ExitOffset = int(tile.Code) - CodeExitBase
					g.Exits = append(g.Exits, Exit{Position: center, TileX: x, TileY: y, Offset: tile.ExitOffset})
				}
			}
			g.Tiles[idx] = tile
		}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return g, nil
}
