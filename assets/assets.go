package assets

import (
	"embed"
	"io/fs"

	"github.com/automoto/doomgrid/shared/bitmap"
	"github.com/automoto/doomgrid/shared/leveldata"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// LevelsDir is the directory of bundled levels inside FS.
const LevelsDir = "levels"

// FS exposes the bundled asset tree.
func FS() fs.FS {
	return assetFS
}

// MustLoadLevels loads every bundled level, keyed by stem, plus the sorted
// names. It panics if the bundle is broken.
func MustLoadLevels() (map[string]*bitmap.Pixels, []string) {
	levels, names, err := leveldata.LoadAllLevels(assetFS, LevelsDir)
	if err != nil {
		panic(err)
	}
	return levels, names
}

// MustLoadLevel loads one bundled level by stem.
func MustLoadLevel(name string) *bitmap.Pixels {
	px, err := leveldata.LoadTMX(assetFS, LevelsDir+"/"+name+".tmx")
	if err != nil {
		panic(err)
	}
	return px
}
