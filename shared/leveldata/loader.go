package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/automoto/doomgrid/shared/bitmap"
	"github.com/lafriks/go-tiled"
)

// CodeLayer is the Tiled layer whose tiles carry level pixel codes.
const CodeLayer = "codes"

var (
	ErrNoLevels          = errors.New("no level files found")
	ErrUnsupportedFormat = errors.New("unsupported level format")
)

var levelExts = []string{".tmx", ".png", ".bmp"}

// LoadTMX converts a Tiled map into a level bitmap. Every tile of the
// "codes" layer (or the first tile layer when none is named so) contributes
// one pixel: its tileset tile's "pixel" property, or the "code", "floor" and
// "wall" properties packed into the low, middle and high bytes. Empty cells
// are walls. It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadTMX(fsys fs.FS, tmxPath string) (*bitmap.Pixels, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if len(levelMap.Layers) == 0 {
		return nil, fmt.Errorf("load TMX %s: no tile layers", tmxPath)
	}

	layer := levelMap.Layers[0]
	for _, l := range levelMap.Layers {
		if l.Name == CodeLayer {
			layer = l
			break
		}
	}

	out := bitmap.New(levelMap.Width, levelMap.Height)
	for y := 0; y < levelMap.Height; y++ {
		for x := 0; x < levelMap.Width; x++ {
			i := y*levelMap.Width + x
			if i >= len(layer.Tiles) {
				continue
			}
			tile := layer.Tiles[i]
			if tile == nil || tile.IsNil() {
				continue
			}

			tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID)
			if err != nil {
				return nil, fmt.Errorf("load TMX %s: tile %d at (%d, %d): %w", tmxPath, tile.ID, x, y, err)
			}
			props := tilesetTile.Properties
			pixel := props.GetInt("pixel")
			if pixel == 0 {
				pixel = props.GetInt("code") | props.GetInt("floor")<<8 | props.GetInt("wall")<<16
			}
			out.Set(x, y, uint32(pixel))
		}
	}
	return out, nil
}

// LoadBitmap loads a level source by extension: Tiled maps, PNG or BMP.
func LoadBitmap(fsys fs.FS, levelPath string) (*bitmap.Pixels, error) {
	switch strings.ToLower(path.Ext(levelPath)) {
	case ".tmx":
		return LoadTMX(fsys, levelPath)
	case ".png", ".bmp":
		f, err := fsys.Open(levelPath)
		if err != nil {
			return nil, fmt.Errorf("open level %s: %w", levelPath, err)
		}
		defer f.Close()

		px, err := bitmap.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("load level %s: %w", levelPath, err)
		}
		return px, nil
	}
	return nil, fmt.Errorf("%s: %w", levelPath, ErrUnsupportedFormat)
}

// LevelName returns the stem used to key a level file.
func LevelName(levelPath string) string {
	base := path.Base(levelPath)
	return strings.TrimSuffix(base, path.Ext(base))
}

// DiscoverLevels lists the level files in levelsDir, sorted by name. When
// the same stem exists in several formats the first of .tmx, .png, .bmp wins.
func DiscoverLevels(fsys fs.FS, levelsDir string) ([]string, error) {
	seen := make(map[string]bool)
	var paths []string
	for _, ext := range levelExts {
		pattern := levelsDir + "/*" + ext
		matches, err := fs.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("glob %s: %w", pattern, err)
		}
		for _, m := range matches {
			stem := LevelName(m)
			if seen[stem] {
				continue
			}
			seen[stem] = true
			paths = append(paths, m)
		}
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%s: %w", levelsDir, ErrNoLevels)
	}

	sort.Slice(paths, func(i, j int) bool {
		return LevelName(paths[i]) < LevelName(paths[j])
	})
	return paths, nil
}

// LoadAllLevels discovers all level files in levelsDir within fsys, loads a
// bitmap for each, and returns a map keyed by stem name plus a sorted list
// of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*bitmap.Pixels, []string, error) {
	paths, err := DiscoverLevels(fsys, levelsDir)
	if err != nil {
		return nil, nil, err
	}

	levels := make(map[string]*bitmap.Pixels, len(paths))
	names := make([]string, 0, len(paths))
	for _, p := range paths {
		px, err := LoadBitmap(fsys, p)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", p, err)
		}
		stem := LevelName(p)
		levels[stem] = px
		names = append(names, stem)
	}
	return levels, names, nil
}
