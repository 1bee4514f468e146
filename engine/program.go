package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Program is a linked shader program together with the locations of its
// active attributes and uniforms.
type Program struct {
	program    uint32
	attributes map[string]int32
	uniforms   map[string]int32
}

// NewProgram compiles and links a vertex and a fragment shader and looks
// up every active attribute and uniform.
func NewProgram(vertex, fragment string) (*Program, error) {
	vshader, err := compileShader(vertex, gl.VERTEX_SHADER)
	if err != nil {
		return nil, fmt.Errorf("vertex shader: %w", err)
	}
	defer gl.DeleteShader(vshader)

	fshader, err := compileShader(fragment, gl.FRAGMENT_SHADER)
	if err != nil {
		return nil, fmt.Errorf("fragment shader: %w", err)
	}
	defer gl.DeleteShader(fshader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vshader)
	gl.AttachShader(program, fshader)
	for _, a := range attributeLocations {
		gl.BindAttribLocation(program, uint32(a.Location), gl.Str(a.Name+"\x00"))
	}
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := infoLog(logLength, func(buf *uint8) { gl.GetProgramInfoLog(program, logLength, nil, buf) })

		gl.DeleteProgram(program)
		return nil, fmt.Errorf("%w: %s", ErrProgramLink, log)
	}

	gl.DetachShader(program, vshader)
	gl.DetachShader(program, fshader)

	p := &Program{
		program:    program,
		attributes: make(map[string]int32),
		uniforms:   make(map[string]int32),
	}
	p.introspect()

	Logger().Debug("program linked",
		"attributes", strings.Join(p.Attributes(), ","),
		"uniforms", strings.Join(p.Uniforms(), ","))

	if err := checkGLError("link program"); err != nil {
		p.Dispose()
		return nil, err
	}

	return p, nil
}

// introspect fills the location maps from the active variables of the
// linked program.
func (p *Program) introspect() {
	var count, maxLength int32

	gl.GetProgramiv(p.program, gl.ACTIVE_ATTRIBUTES, &count)
	gl.GetProgramiv(p.program, gl.ACTIVE_ATTRIBUTE_MAX_LENGTH, &maxLength)
	for i := uint32(0); i < uint32(count); i++ {
		name := activeName(maxLength, func(length *int32, buf *uint8) {
			var size int32
			var xtype uint32
			gl.GetActiveAttrib(p.program, i, maxLength, length, &size, &xtype, buf)
		})
		p.attributes[name] = gl.GetAttribLocation(p.program, gl.Str(name+"\x00"))
	}

	gl.GetProgramiv(p.program, gl.ACTIVE_UNIFORMS, &count)
	gl.GetProgramiv(p.program, gl.ACTIVE_UNIFORM_MAX_LENGTH, &maxLength)
	for i := uint32(0); i < uint32(count); i++ {
		name := activeName(maxLength, func(length *int32, buf *uint8) {
			var size int32
			var xtype uint32
			gl.GetActiveUniform(p.program, i, maxLength, length, &size, &xtype, buf)
		})
		// arrays are reported as name[0]
		name = strings.TrimSuffix(name, "[0]")
		p.uniforms[name] = gl.GetUniformLocation(p.program, gl.Str(name+"\x00"))
	}
}

func activeName(maxLength int32, get func(length *int32, buf *uint8)) string {
	if maxLength < 1 {
		maxLength = 1
	}
	buf := make([]uint8, maxLength)

	var length int32
	get(&length, &buf[0])

	return string(buf[:length])
}

func infoLog(length int32, get func(buf *uint8)) string {
	if length < 1 {
		return "no info log"
	}
	buf := make([]uint8, length)
	get(&buf[0])

	return strings.TrimRight(string(buf), "\x00\n")
}

func (p *Program) Use() {
	gl.UseProgram(p.program)
}

func (p *Program) Dispose() {
	if p.program != 0 {
		gl.DeleteProgram(p.program)
		p.program = 0
	}
}

// Uniform returns the location of an active uniform or -1, which GL
// silently ignores on upload.
func (p *Program) Uniform(name string) int32 {
	if l, ok := p.uniforms[name]; ok {
		return l
	}
	return -1
}

// Attribute returns the location of an active attribute or -1.
func (p *Program) Attribute(name string) int32 {
	if l, ok := p.attributes[name]; ok {
		return l
	}
	return -1
}

func (p *Program) Attributes() []string { return sortedKeys(p.attributes) }
func (p *Program) Uniforms() []string   { return sortedKeys(p.uniforms) }

func sortedKeys(m map[string]int32) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
