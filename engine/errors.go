package engine

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

var (
	ErrShaderCompile = errors.New("engine: shader compilation failed")
	ErrProgramLink   = errors.New("engine: program link failed")
	ErrGL            = errors.New("engine: gl error")

	ErrAttributeLocation = errors.New("engine: vertex attribute location mismatch")
)

var glErrorNames = map[uint32]string{
	gl.INVALID_ENUM:                  "INVALID_ENUM",
	gl.INVALID_VALUE:                 "INVALID_VALUE",
	gl.INVALID_OPERATION:             "INVALID_OPERATION",
	gl.INVALID_FRAMEBUFFER_OPERATION: "INVALID_FRAMEBUFFER_OPERATION",
	gl.OUT_OF_MEMORY:                 "OUT_OF_MEMORY",
}

// checkGLError drains the GL error queue and returns the first error
// wrapped with what was being done.
func checkGLError(what string) error {
	var first uint32
	for i := 0; i < 16; i++ {
		code := gl.GetError()
		if code == gl.NO_ERROR {
			break
		}
		if first == 0 {
			first = code
		}
	}

	if first == 0 {
		return nil
	}

	name, ok := glErrorNames[first]
	if !ok {
		name = fmt.Sprintf("0x%04x", first)
	}

	return fmt.Errorf("%w: %s: %s", ErrGL, what, name)
}
