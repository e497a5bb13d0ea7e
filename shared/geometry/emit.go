package geometry

import (
	"github.com/automoto/doomgrid/config"
	"github.com/automoto/doomgrid/shared/leveldata"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Emit builds the level mesh and the static collision segments. Every
// interior non-solid tile gets a floor and a ceiling; every edge between
// such a tile and a solid neighbour gets a wall quad facing the open tile
// and one segment along that edge. Output order is row-major, then north,
// south, west, east, so the same grid always yields the same buffers.
func Emit(g *leveldata.Grid) (*Mesh, []Segment) {
	sw := float32(config.Level.SpotWidth)
	sl := float32(config.Level.SpotLength)
	h := float32(config.Level.Height)

	mesh := &Mesh{}
	var segments []Segment

	addSegment := func(x0, z0, x1, z1 int) {
		segments = append(segments, Segment{
			Start: mgl64.Vec2{float64(x0) * config.Level.SpotWidth, float64(z0) * config.Level.SpotLength},
			End:   mgl64.Vec2{float64(x1) * config.Level.SpotWidth, float64(z1) * config.Level.SpotLength},
		})
	}

	for j := 1; j < g.Height-1; j++ {
		for i := 1; i < g.Width-1; i++ {
			tile := g.At(i, j)
			if tile.Solid() {
				continue
			}

			x0, x1 := float32(i)*sw, float32(i+1)*sw
			z0, z1 := float32(j)*sl, float32(j+1)*sl

			mesh.addFace(FaceFloor, tile.FloorRegion, i, j, true, [4]mgl32.Vec3{
				{x0, 0, z0}, {x1, 0, z0}, {x1, 0, z1}, {x0, 0, z1},
			})
			mesh.addFace(FaceCeiling, tile.FloorRegion, i, j, false, [4]mgl32.Vec3{
				{x0, h, z0}, {x1, h, z0}, {x1, h, z1}, {x0, h, z1},
			})

			if g.Solid(i, j-1) {
				addSegment(i, j, i+1, j)
				mesh.addFace(FaceWall, tile.WallRegion, i, j, false, [4]mgl32.Vec3{
					{x0, 0, z0}, {x1, 0, z0}, {x1, h, z0}, {x0, h, z0},
				})
			}
			if g.Solid(i, j+1) {
				addSegment(i, j+1, i+1, j+1)
				mesh.addFace(FaceWall, tile.WallRegion, i, j, true, [4]mgl32.Vec3{
					{x0, 0, z1}, {x1, 0, z1}, {x1, h, z1}, {x0, h, z1},
				})
			}
			if g.Solid(i-1, j) {
				addSegment(i, j, i, j+1)
				mesh.addFace(FaceWall, tile.WallRegion, i, j, true, [4]mgl32.Vec3{
					{x0, 0, z0}, {x0, 0, z1}, {x0, h, z1}, {x0, h, z0},
				})
			}
			if g.Solid(i+1, j) {
				addSegment(i+1, j, i+1, j+1)
				mesh.addFace(FaceWall, tile.WallRegion, i, j, false, [4]mgl32.Vec3{
					{x1, 0, z0}, {x1, 0, z1}, {x1, h, z1}, {x1, h, z0},
				})
			}
		}
	}

	return mesh, segments
}
