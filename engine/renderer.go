package engine

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/der-antikeks/globe/control"
	"github.com/der-antikeks/globe/math"
)

const (
	fovy = 45
	near = 0.1
	far  = 100
)

// Renderer draws one textured, lit mesh.
type Renderer struct {
	program  *Program
	buffer   *MeshBuffer
	texture  *Texture
	light    Light
	material Material

	width, height int
}

// NewRenderer links the given shader sources and creates an empty mesh buffer.
func NewRenderer(vertex, fragment string, width, height int) (*Renderer, error) {
	program, err := NewProgram(vertex, fragment)
	if err != nil {
		return nil, err
	}

	// layout qualifiers override the bound locations
	if err := checkAttributeLocations(program.attributes); err != nil {
		program.Dispose()
		return nil, err
	}

	buffer, err := NewMeshBuffer()
	if err != nil {
		program.Dispose()
		return nil, err
	}

	r := &Renderer{
		program:  program,
		buffer:   buffer,
		light:    DefaultLight(),
		material: DefaultMaterial(),
	}
	r.SetSize(width, height)

	return r, nil
}

func (r *Renderer) Program() *Program { return r.program }

// SetMesh uploads a (re)built mesh.
func (r *Renderer) SetMesh(d Drawable) error {
	return r.buffer.Upload(d)
}

// SetTexture replaces the texture, disposing the previous one.
func (r *Renderer) SetTexture(t *Texture) {
	if r.texture != nil && r.texture != t {
		r.texture.Dispose()
	}
	r.texture = t
}

func (r *Renderer) HasTexture() bool { return r.texture != nil }

func (r *Renderer) SetLight(l Light)          { r.light = l }
func (r *Renderer) SetMaterial(m Material)    { r.material = m }
func (r *Renderer) SetSize(width, height int) { r.width, r.height = max(width, 1), max(height, 1) }

// ProjectionMatrix returns the perspective projection for the current size.
func (r *Renderer) ProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(float32(fovy*math.DEG2RAD), float32(r.width)/float32(r.height), near, far)
}

// Render clears the screen and draws the mesh with the frame's matrices.
// It reports false and draws nothing while no texture is set.
func (r *Renderer) Render(f control.Frame) bool {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if r.texture == nil {
		return false
	}

	r.program.Use()

	projection := r.ProjectionMatrix()
	gl.UniformMatrix4fv(r.program.Uniform("projectionMatrix"), 1, false, &projection[0])

	modelView := f.View.Mul4(f.Model)
	gl.UniformMatrix4fv(r.program.Uniform("modelViewMatrix"), 1, false, &modelView[0])

	normal := NormalMatrix(modelView)
	gl.UniformMatrix3fv(r.program.Uniform("normalMatrix"), 1, false, &normal[0])

	r.light.updateUniforms(r.program, f.View)
	r.material.updateUniforms(r.program)

	// diffuse map in texture unit 0
	r.texture.Bind(0)
	gl.Uniform1i(r.program.Uniform("diffuseMap"), 0)

	r.buffer.Draw()

	r.texture.Unbind()

	return true
}

func (r *Renderer) Dispose() {
	if r.texture != nil {
		r.texture.Dispose()
	}
	r.buffer.Dispose()
	r.program.Dispose()
}

// NormalMatrix returns the inverse transpose of the upper 3x3 of m, the
// identity if m is singular.
func NormalMatrix(m mgl32.Mat4) mgl32.Mat3 {
	m3 := m.Mat3()
	if m3.Det() == 0 {
		return mgl32.Ident3()
	}
	return m3.Inv().Transpose()
}
