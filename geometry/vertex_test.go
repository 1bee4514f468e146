package geometry

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestVertex_Layout(t *testing.T) {
	tests := []struct {
		Name            string
		Value, Expected int
	}{
		{"VertexStride", VertexStride, 32},
		{"PositionOffset", PositionOffset, 0},
		{"NormalOffset", NormalOffset, 12},
		{"TexCoordOffset", TexCoordOffset, 24},
		{"PositionSize", PositionSize, 3},
		{"NormalSize", NormalSize, 3},
		{"TexCoordSize", TexCoordSize, 2},
	}

	for _, c := range tests {
		if c.Value != c.Expected {
			t.Errorf("%v != %v (got %v)", c.Name, c.Expected, c.Value)
		}
	}
}

func bitsEqual(a, b []float32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Float32bits(a[i]) != math.Float32bits(b[i]) {
			return false
		}
	}
	return true
}

func TestInterleave_RoundTrip(t *testing.T) {
	for _, smooth := range []bool{true, false} {
		m := Build(1.7, 11, 7, smooth)
		records := m.Interleaved()

		if len(records) != m.VertexCount() {
			t.Fatalf("smooth=%v: %v records for %v vertices", smooth, len(records), m.VertexCount())
		}

		for v, r := range records {
			if !bitsEqual(r.Position[:], m.Positions()[v][:]) ||
				!bitsEqual(r.Normal[:], m.Normals()[v][:]) ||
				!bitsEqual(r.TexCoord[:], m.TexCoords()[v][:]) {
				t.Fatalf("smooth=%v: record %v = %v does not match source arrays", smooth, v, r)
			}
		}

		// flat view reads back the same values at the documented offsets
		flat := m.InterleavedArray()
		p, n, tc := m.PositionArray(), m.NormalArray(), m.TexCoordArray()
		stride := VertexStride / 4

		for v := 0; v < m.VertexCount(); v++ {
			rec := flat[v*stride : (v+1)*stride]
			off := NormalOffset / 4
			toff := TexCoordOffset / 4

			if !bitsEqual(rec[:off], p[v*3:v*3+3]) ||
				!bitsEqual(rec[off:toff], n[v*3:v*3+3]) ||
				!bitsEqual(rec[toff:], tc[v*2:v*2+2]) {
				t.Fatalf("smooth=%v: flat record %v = %v does not match source arrays", smooth, v, rec)
			}
		}
	}
}

func TestInterleave_MismatchedLengths(t *testing.T) {
	positions := []mgl32.Vec3{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	normals := []mgl32.Vec3{{0, 0, 1}, {0, 1, 0}}
	texCoords := []mgl32.Vec2{{0, 0}, {1, 1}, {0.5, 0.5}}

	r := Interleave(positions, normals, texCoords)
	if len(r) != 2 {
		t.Fatalf("Interleave() returned %v records, expected 2", len(r))
	}

	expected := Vertex{mgl32.Vec3{4, 5, 6}, mgl32.Vec3{0, 1, 0}, mgl32.Vec2{1, 1}}
	if r[1] != expected {
		t.Errorf("Interleave()[1] != %v (got %v)", expected, r[1])
	}

	if r := Interleave(nil, nil, nil); len(r) != 0 {
		t.Errorf("Interleave(nil, nil, nil) returned %v records", len(r))
	}
}

func TestFloats(t *testing.T) {
	vs := []Vertex{
		{mgl32.Vec3{1, 2, 3}, mgl32.Vec3{4, 5, 6}, mgl32.Vec2{7, 8}},
		{mgl32.Vec3{-1, -2, -3}, mgl32.Vec3{-4, -5, -6}, mgl32.Vec2{-7, -8}},
	}
	expected := []float32{1, 2, 3, 4, 5, 6, 7, 8, -1, -2, -3, -4, -5, -6, -7, -8}

	if r := Floats(vs); !bitsEqual(r, expected) {
		t.Errorf("Floats() != %v (got %v)", expected, r)
	}
}

func BenchmarkInterleave(b *testing.B) {
	b.StopTimer()
	m := Build(1, DefaultSectorCount, DefaultStackCount, true)

	b.StartTimer()
	for i := 0; i < b.N; i++ {
		Interleave(m.Positions(), m.Normals(), m.TexCoords())
	}
}
