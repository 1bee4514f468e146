package geometry

import (
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is one interleaved record: position, normal and texture coordinate,
// packed without padding so a slice of Vertex can be handed to the GPU as is.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	TexCoord mgl32.Vec2
}

// memory layout of an interleaved record, in bytes
const (
	VertexStride   = int(unsafe.Sizeof(Vertex{}))
	PositionOffset = int(unsafe.Offsetof(Vertex{}.Position))
	NormalOffset   = int(unsafe.Offsetof(Vertex{}.Normal))
	TexCoordOffset = int(unsafe.Offsetof(Vertex{}.TexCoord))

	// float components per attribute
	PositionSize = len(mgl32.Vec3{})
	NormalSize   = len(mgl32.Vec3{})
	TexCoordSize = len(mgl32.Vec2{})
)

// Interleave packs the parallel attribute sequences into one record per vertex.
// Record v holds positions[v], normals[v] and texCoords[v] unchanged.
// If the lengths disagree only the common prefix is interleaved.
func Interleave(positions, normals []mgl32.Vec3, texCoords []mgl32.Vec2) []Vertex {
	n := len(positions)
	if len(normals) < n {
		n = len(normals)
	}
	if len(texCoords) < n {
		n = len(texCoords)
	}

	vertices := make([]Vertex, n)
	for i := range vertices {
		vertices[i] = Vertex{
			Position: positions[i],
			Normal:   normals[i],
			TexCoord: texCoords[i],
		}
	}

	return vertices
}

// Floats flattens records into (x,y,z, nx,ny,nz, s,t) tuples.
func Floats(vertices []Vertex) []float32 {
	const n = PositionSize + NormalSize + TexCoordSize

	a := make([]float32, 0, len(vertices)*n)
	for _, v := range vertices {
		a = append(a,
			v.Position[0], v.Position[1], v.Position[2],
			v.Normal[0], v.Normal[1], v.Normal[2],
			v.TexCoord[0], v.TexCoord[1],
		)
	}

	return a
}
