package geometry

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	DefaultRadius      = 1.0
	DefaultSectorCount = 36
	DefaultStackCount  = 18

	MinSectorCount = 3
	MinStackCount  = 2

	// MaxSegments keeps flat shaded meshes addressable with uint16 indices:
	// 128 sectors and stacks produce 65280 vertices.
	MaxSegments = 128

	MinRadius = 1e-4

	// cross products below this length count as degenerate faces
	faceNormalEpsilon = 1e-6
)

// Mesh is a UV-sphere centered at the origin with the z axis through the poles.
// Stacks run from the north pole (+z) to the south pole, sectors run
// counter-clockwise around z starting at +x.
type Mesh struct {
	radius      float32
	sectorCount int
	stackCount  int
	smooth      bool

	positions   []mgl32.Vec3
	normals     []mgl32.Vec3
	texCoords   []mgl32.Vec2
	indices     []uint16
	interleaved []Vertex
}

// Build generates a sphere mesh. Segment counts and radius are clamped
// to the supported range instead of being rejected.
func Build(radius float32, sectorCount, stackCount int, smooth bool) *Mesh {
	m := &Mesh{
		radius:      clampRadius(radius),
		sectorCount: clampSegments(sectorCount, MinSectorCount),
		stackCount:  clampSegments(stackCount, MinStackCount),
		smooth:      smooth,
	}
	m.build()

	return m
}

func clampRadius(r float32) float32 {
	if !(r >= MinRadius) { // catches NaN
		return MinRadius
	}
	return r
}

func clampSegments(n, floor int) int {
	if n < floor {
		return floor
	}
	if n > MaxSegments {
		return MaxSegments
	}
	return n
}

// Set changes all shape parameters at once and rebuilds if any of them
// differs after clamping. It reports whether the mesh was rebuilt.
func (m *Mesh) Set(radius float32, sectorCount, stackCount int, smooth bool) bool {
	radius = clampRadius(radius)
	sectorCount = clampSegments(sectorCount, MinSectorCount)
	stackCount = clampSegments(stackCount, MinStackCount)

	if radius == m.radius && sectorCount == m.sectorCount &&
		stackCount == m.stackCount && smooth == m.smooth {
		return false
	}

	m.radius, m.sectorCount, m.stackCount, m.smooth = radius, sectorCount, stackCount, smooth
	m.build()

	return true
}

func (m *Mesh) SetRadius(r float32)   { m.Set(r, m.sectorCount, m.stackCount, m.smooth) }
func (m *Mesh) SetSectorCount(n int)  { m.Set(m.radius, n, m.stackCount, m.smooth) }
func (m *Mesh) SetStackCount(n int)   { m.Set(m.radius, m.sectorCount, n, m.smooth) }
func (m *Mesh) SetSmooth(smooth bool) { m.Set(m.radius, m.sectorCount, m.stackCount, smooth) }

func (m *Mesh) Radius() float32  { return m.radius }
func (m *Mesh) SectorCount() int { return m.sectorCount }
func (m *Mesh) StackCount() int  { return m.stackCount }
func (m *Mesh) Smooth() bool     { return m.smooth }

// Positions, Normals, TexCoords, Indices and Interleaved expose the
// generated arrays. They are replaced, not modified, on rebuild and
// must not be written to by callers.
func (m *Mesh) Positions() []mgl32.Vec3 { return m.positions }
func (m *Mesh) Normals() []mgl32.Vec3   { return m.normals }
func (m *Mesh) TexCoords() []mgl32.Vec2 { return m.texCoords }
func (m *Mesh) Indices() []uint16       { return m.indices }
func (m *Mesh) Interleaved() []Vertex   { return m.interleaved }

func (m *Mesh) VertexCount() int   { return len(m.positions) }
func (m *Mesh) NormalCount() int   { return len(m.normals) }
func (m *Mesh) TexCoordCount() int { return len(m.texCoords) }
func (m *Mesh) IndexCount() int    { return len(m.indices) }
func (m *Mesh) TriangleCount() int { return len(m.indices) / 3 }

// PositionArray returns positions as x,y,z float triples.
func (m *Mesh) PositionArray() []float32 { return flatten3(m.positions) }

// NormalArray returns normals as x,y,z float triples.
func (m *Mesh) NormalArray() []float32 { return flatten3(m.normals) }

// TexCoordArray returns texture coordinates as s,t float pairs.
func (m *Mesh) TexCoordArray() []float32 {
	a := make([]float32, 0, len(m.texCoords)*TexCoordSize)
	for _, t := range m.texCoords {
		a = append(a, t[0], t[1])
	}
	return a
}

// InterleavedArray returns the interleaved records as a flat float slice.
func (m *Mesh) InterleavedArray() []float32 { return Floats(m.interleaved) }

func flatten3(vs []mgl32.Vec3) []float32 {
	a := make([]float32, 0, len(vs)*3)
	for _, v := range vs {
		a = append(a, v[0], v[1], v[2])
	}
	return a
}

func (m *Mesh) String() string {
	var b strings.Builder
	fmt.Fprintln(&b, "===== Sphere =====")
	fmt.Fprintf(&b, "        Radius: %g\n", m.radius)
	fmt.Fprintf(&b, "  Sector Count: %d\n", m.sectorCount)
	fmt.Fprintf(&b, "   Stack Count: %d\n", m.stackCount)
	fmt.Fprintf(&b, "Smooth Shading: %t\n", m.smooth)
	fmt.Fprintf(&b, "Triangle Count: %d\n", m.TriangleCount())
	fmt.Fprintf(&b, "   Index Count: %d\n", m.IndexCount())
	fmt.Fprintf(&b, "  Vertex Count: %d\n", m.VertexCount())
	fmt.Fprintf(&b, "  Normal Count: %d\n", m.NormalCount())
	fmt.Fprintf(&b, "TexCoord Count: %d\n", m.TexCoordCount())

	return b.String()
}

func (m *Mesh) build() {
	if m.smooth {
		m.buildSmooth()
	} else {
		m.buildFlat()
	}

	m.interleaved = Interleave(m.positions, m.normals, m.texCoords)
}

// point returns position and texture coordinate of grid corner (stack i, sector j).
func (m *Mesh) point(i, j int) (mgl32.Vec3, mgl32.Vec2) {
	stackAngle := math.Pi/2 - float64(i)*math.Pi/float64(m.stackCount)
	sectorAngle := float64(j) * 2 * math.Pi / float64(m.sectorCount)

	r := float64(m.radius)
	xy := r * math.Cos(stackAngle)

	return mgl32.Vec3{
			float32(xy * math.Cos(sectorAngle)),
			float32(xy * math.Sin(sectorAngle)),
			float32(r * math.Sin(stackAngle)),
		}, mgl32.Vec2{
			float32(j) / float32(m.sectorCount),
			float32(i) / float32(m.stackCount),
		}
}

// shared vertices, normals along the radius
func (m *Mesh) buildSmooth() {
	sectors, stacks := m.sectorCount, m.stackCount
	n := (sectors + 1) * (stacks + 1)

	m.positions = make([]mgl32.Vec3, 0, n)
	m.normals = make([]mgl32.Vec3, 0, n)
	m.texCoords = make([]mgl32.Vec2, 0, n)
	m.indices = make([]uint16, 0, 6*sectors*(stacks-1))

	lengthInv := 1 / m.radius

	// column sectors duplicates column 0 with s = 1
	for i := 0; i <= stacks; i++ {
		for j := 0; j <= sectors; j++ {
			p, t := m.point(i, j)
			m.positions = append(m.positions, p)
			m.normals = append(m.normals, p.Mul(lengthInv))
			m.texCoords = append(m.texCoords, t)
		}
	}

	//  k1--k1+1
	//  |  / |
	//  | /  |
	//  k2--k2+1
	for i := 0; i < stacks; i++ {
		k1 := i * (sectors + 1)
		k2 := k1 + sectors + 1

		for j := 0; j < sectors; j, k1, k2 = j+1, k1+1, k2+1 {
			if i != 0 {
				m.indices = append(m.indices, uint16(k1), uint16(k2), uint16(k1+1))
			}
			if i != stacks-1 {
				m.indices = append(m.indices, uint16(k1+1), uint16(k2), uint16(k2+1))
			}
		}
	}
}

// separate vertices per face, one face normal each
func (m *Mesh) buildFlat() {
	sectors, stacks := m.sectorCount, m.stackCount

	grid := make([]mgl32.Vec3, 0, (sectors+1)*(stacks+1))
	uvs := make([]mgl32.Vec2, 0, cap(grid))
	for i := 0; i <= stacks; i++ {
		for j := 0; j <= sectors; j++ {
			p, t := m.point(i, j)
			grid = append(grid, p)
			uvs = append(uvs, t)
		}
	}

	n := 6*sectors + 4*sectors*(stacks-2)
	m.positions = make([]mgl32.Vec3, 0, n)
	m.normals = make([]mgl32.Vec3, 0, n)
	m.texCoords = make([]mgl32.Vec2, 0, n)
	m.indices = make([]uint16, 0, 6*sectors*(stacks-1))

	add := func(normal mgl32.Vec3, corners ...int) {
		for _, c := range corners {
			m.positions = append(m.positions, grid[c])
			m.normals = append(m.normals, normal)
			m.texCoords = append(m.texCoords, uvs[c])
		}
	}

	//  v1--v3
	//  |    |
	//  v2--v4
	for i := 0; i < stacks; i++ {
		vi1 := i * (sectors + 1)
		vi2 := vi1 + sectors + 1

		for j := 0; j < sectors; j, vi1, vi2 = j+1, vi1+1, vi2+1 {
			v1, v2, v3, v4 := vi1, vi2, vi1+1, vi2+1
			k := uint16(len(m.positions))

			switch {
			case i == 0:
				add(faceNormal(grid[v1], grid[v2], grid[v4]), v1, v2, v4)
				m.indices = append(m.indices, k, k+1, k+2)

			case i == stacks-1:
				add(faceNormal(grid[v1], grid[v2], grid[v3]), v1, v2, v3)
				m.indices = append(m.indices, k, k+1, k+2)

			default:
				add(faceNormal(grid[v1], grid[v2], grid[v3]), v1, v2, v3, v4)
				m.indices = append(m.indices, k, k+1, k+2, k+2, k+1, k+3)
			}
		}
	}
}

// faceNormal returns the unit normal of triangle a,b,c or the zero vector
// if the triangle is degenerate. Computed in float64 so large radii neither
// overflow the length nor the cross product.
func faceNormal(a, b, c mgl32.Vec3) mgl32.Vec3 {
	var e1, e2 [3]float64
	for i := range e1 {
		e1[i] = float64(b[i]) - float64(a[i])
		e2[i] = float64(c[i]) - float64(a[i])
	}

	nx := e1[1]*e2[2] - e1[2]*e2[1]
	ny := e1[2]*e2[0] - e1[0]*e2[2]
	nz := e1[0]*e2[1] - e1[1]*e2[0]

	l := math.Sqrt(nx*nx + ny*ny + nz*nz)
	if !(l > faceNormalEpsilon) || math.IsInf(l, 0) {
		return mgl32.Vec3{}
	}

	return mgl32.Vec3{float32(nx / l), float32(ny / l), float32(nz / l)}
}
