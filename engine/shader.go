package engine

import (
	_ "embed"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// built-in textured phong shaders
var (
	//go:embed shaders/sphere.vert
	DefaultVertexShader string

	//go:embed shaders/sphere.frag
	DefaultFragmentShader string
)

// vertex attribute names and the locations the mesh buffer feeds. The
// locations are bound before linking, layout qualifiers must agree.
const (
	PositionAttribute = "vertexPosition"
	NormalAttribute   = "vertexNormal"
	TexCoordAttribute = "vertexUV"

	PositionLocation = 0
	NormalLocation   = 1
	TexCoordLocation = 2
)

var attributeLocations = []struct {
	Name     string
	Location int32
}{
	{PositionAttribute, PositionLocation},
	{NormalAttribute, NormalLocation},
	{TexCoordAttribute, TexCoordLocation},
}

// checkAttributeLocations reports an active vertex attribute whose location
// differs from the one the mesh buffer feeds. Attributes a shader does not
// use are fine.
func checkAttributeLocations(attributes map[string]int32) error {
	for _, a := range attributeLocations {
		l, ok := attributes[a.Name]
		if !ok || l == a.Location {
			continue
		}
		return fmt.Errorf("%w: %s at %d, expected %d", ErrAttributeLocation, a.Name, l, a.Location)
	}
	return nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := infoLog(logLength, func(buf *uint8) { gl.GetShaderInfoLog(shader, logLength, nil, buf) })

		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%w: %s", ErrShaderCompile, log)
	}

	return shader, nil
}
