package engine

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/der-antikeks/globe/geometry"
)

// Drawable is indexed triangle geometry with interleaved vertex records.
type Drawable interface {
	Interleaved() []geometry.Vertex
	Indices() []uint16
}

// MeshBuffer holds a drawable on the GPU: one vertex array object with an
// interleaved vertex buffer and an index buffer.
type MeshBuffer struct {
	vertexArrayObject uint32
	vertexBuffer      uint32
	indexBuffer       uint32

	vertexCount int
	indexCount  int32
}

func NewMeshBuffer() (*MeshBuffer, error) {
	b := &MeshBuffer{}

	gl.GenVertexArrays(1, &b.vertexArrayObject)
	gl.GenBuffers(1, &b.vertexBuffer)
	gl.GenBuffers(1, &b.indexBuffer)

	gl.BindVertexArray(b.vertexArrayObject)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vertexBuffer)

	// attribute layout of geometry.Vertex, the same for every upload
	stride := int32(geometry.VertexStride)
	gl.EnableVertexAttribArray(PositionLocation)
	gl.VertexAttribPointerWithOffset(PositionLocation, int32(geometry.PositionSize), gl.FLOAT, false, stride, uintptr(geometry.PositionOffset))

	gl.EnableVertexAttribArray(NormalLocation)
	gl.VertexAttribPointerWithOffset(NormalLocation, int32(geometry.NormalSize), gl.FLOAT, false, stride, uintptr(geometry.NormalOffset))

	gl.EnableVertexAttribArray(TexCoordLocation)
	gl.VertexAttribPointerWithOffset(TexCoordLocation, int32(geometry.TexCoordSize), gl.FLOAT, false, stride, uintptr(geometry.TexCoordOffset))

	// element array binding is part of the vertex array state
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.indexBuffer)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	if err := checkGLError("create mesh buffer"); err != nil {
		b.Dispose()
		return nil, err
	}

	return b, nil
}

// Upload replaces the buffer contents with d. Called again after every
// rebuild of the mesh.
func (b *MeshBuffer) Upload(d Drawable) error {
	vertices, indices := d.Interleaved(), d.Indices()

	gl.BindVertexArray(b.vertexArrayObject)

	gl.BindBuffer(gl.ARRAY_BUFFER, b.vertexBuffer)
	if len(vertices) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*geometry.VertexStride, gl.Ptr(vertices), gl.STATIC_DRAW)
	} else {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, gl.STATIC_DRAW)
	}

	if len(indices) > 0 {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*2, gl.Ptr(indices), gl.STATIC_DRAW)
	} else {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, 0, nil, gl.STATIC_DRAW)
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	b.vertexCount = len(vertices)
	b.indexCount = int32(len(indices))

	Logger().Debug("mesh uploaded",
		"vertices", b.vertexCount,
		"indices", b.indexCount,
		"bytes", len(vertices)*geometry.VertexStride+len(indices)*2)

	return checkGLError("upload mesh")
}

func (b *MeshBuffer) VertexCount() int { return b.vertexCount }
func (b *MeshBuffer) IndexCount() int  { return int(b.indexCount) }

// Draw issues one indexed triangle draw call.
func (b *MeshBuffer) Draw() {
	if b.indexCount == 0 {
		return
	}

	gl.BindVertexArray(b.vertexArrayObject)
	gl.DrawElements(gl.TRIANGLES, b.indexCount, gl.UNSIGNED_SHORT, nil)
	gl.BindVertexArray(0)
}

func (b *MeshBuffer) Dispose() {
	if b.indexBuffer != 0 {
		gl.DeleteBuffers(1, &b.indexBuffer)
		b.indexBuffer = 0
	}

	if b.vertexBuffer != 0 {
		gl.DeleteBuffers(1, &b.vertexBuffer)
		b.vertexBuffer = 0
	}

	if b.vertexArrayObject != 0 {
		gl.DeleteVertexArrays(1, &b.vertexArrayObject)
		b.vertexArrayObject = 0
	}
}
