package engine

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Light is a single white-ish point light, fixed in world space.
type Light struct {
	Position mgl32.Vec3
	Color    mgl32.Vec3
	Ambient  float32
}

func DefaultLight() Light {
	return Light{
		Position: mgl32.Vec3{5, 5, 10},
		Color:    mgl32.Vec3{1, 1, 1},
		Ambient:  0.15,
	}
}

// Material holds the phong parameters not taken from the texture.
type Material struct {
	Specular  mgl32.Vec3
	Shininess float32
}

func DefaultMaterial() Material {
	return Material{
		Specular:  mgl32.Vec3{0.3, 0.3, 0.3},
		Shininess: 32,
	}
}

// updateUniforms uploads the light in camera space.
func (l Light) updateUniforms(p *Program, view mgl32.Mat4) {
	pos := view.Mul4x1(l.Position.Vec4(1)).Vec3()

	gl.Uniform3f(p.Uniform("lightPosition"), pos[0], pos[1], pos[2])
	gl.Uniform3f(p.Uniform("lightColor"), l.Color[0], l.Color[1], l.Color[2])
	gl.Uniform1f(p.Uniform("ambient"), l.Ambient)
}

func (m Material) updateUniforms(p *Program) {
	gl.Uniform3f(p.Uniform("specular"), m.Specular[0], m.Specular[1], m.Specular[2])
	gl.Uniform1f(p.Uniform("shininess"), m.Shininess)
}
