// Package geometry turns a classified grid into renderable faces and the
// static collision segments that run along every wall face.
package geometry

import (
	"github.com/automoto/doomgrid/config"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Vertex is one mesh vertex.
type Vertex struct {
	Position mgl32.Vec3
	UV       mgl32.Vec2
}

// FaceClass tells floors, ceilings and walls apart.
type FaceClass uint8

const (
	FaceFloor FaceClass = iota
	FaceCeiling
	FaceWall
)

// Face is one quad: six indices starting at FirstIndex.
type Face struct {
	Class      FaceClass
	Region     uint8 // texture-region channel byte
	TileX      int
	TileY      int
	FirstIndex int
}

// Mesh is the vertex and index buffer handed to the renderer.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Faces    []Face
}

// Triangles returns the triangle count.
func (m *Mesh) Triangles() int { return len(m.Indices) / 3 }

// Segment is a static wall edge in the ground plane.
type Segment struct {
	Start, End mgl64.Vec2
}

// Length returns the segment length.
func (s Segment) Length() float64 { return s.End.Sub(s.Start).Len() }

// Midpoint returns the segment midpoint.
func (s Segment) Midpoint() mgl64.Vec2 { return s.Start.Add(s.End).Mul(0.5) }

// UVRect is an atlas cell: U0/V0 is the corner mapped to a quad's first
// vertex, U1/V1 the opposite corner.
type UVRect struct {
	U0, U1, V0, V1 float32
}

// AtlasUV maps a texture-region channel byte to its atlas cell. The byte's
// high nibble is the region index; the index walks rows first, then columns,
// starting from the atlas's far corner.
func AtlasUV(region uint8) UVRect {
	cols := float32(config.Level.AtlasCols)
	rows := float32(config.Level.AtlasRows)

	index := int(region) / 16
	row := index % config.Level.AtlasRows
	col := index / config.Level.AtlasRows

	var r UVRect
	r.U0 = 1 - float32(col)/cols
	r.U1 = r.U0 - 1/cols
	r.V0 = 1 - float32(row)/rows
	r.V1 = r.V0 - 1/rows
	return r
}

// quad appends the six indices of one quad whose four vertices start at
// base. Forward winding is used by floors and by south and west walls.
func (m *Mesh) quad(base uint32, forward bool) {
	if forward {
		m.Indices = append(m.Indices, base+2, base+1, base, base+3, base+2, base)
		return
	}
	m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
}

func (m *Mesh) addFace(class FaceClass, region uint8, x, y int, forward bool, corners [4]mgl32.Vec3) {
	uv := AtlasUV(region)
	m.Faces = append(m.Faces, Face{
		Class:      class,
		Region:     region,
		TileX:      x,
		TileY:      y,
		FirstIndex: len(m.Indices),
	})
	m.quad(uint32(len(m.Vertices)), forward)
	m.Vertices = append(m.Vertices,
		Vertex{Position: corners[0], UV: mgl32.Vec2{uv.U0, uv.V0}},
		Vertex{Position: corners[1], UV: mgl32.Vec2{uv.U1, uv.V0}},
		Vertex{Position: corners[2], UV: mgl32.Vec2{uv.U1, uv.V1}},
		Vertex{Position: corners[3], UV: mgl32.Vec2{uv.U0, uv.V1}},
	)
}

// Normal returns the front-face normal of face f.
func (m *Mesh) Normal(f Face) mgl32.Vec3 {
	p0 := m.Vertices[m.Indices[f.FirstIndex]].Position
	p1 := m.Vertices[m.Indices[f.FirstIndex+1]].Position
	p2 := m.Vertices[m.Indices[f.FirstIndex+2]].Position
	return p1.Sub(p0).Cross(p2.Sub(p0)).Normalize()
}
