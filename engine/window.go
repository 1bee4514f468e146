package engine

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window is a GLFW window with a current OpenGL 4.1 core context.
// It must be created and used on the locked main thread.
type Window struct {
	title         string
	width, height int
	window        *glfw.Window

	// input callbacks
	resizeCallback      func(w, h int)
	mouseMoveCallback   func(x, y float64)
	mouseScrollCallback func(x, y float64)
	mouseButtonCallback func(button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey)
	keyCallback         func(key glfw.Key, action glfw.Action, mods glfw.ModifierKey)
}

func NewWindow(title string, width, height int, vsync bool) (*Window, error) {
	w := &Window{
		title:  title,
		width:  width,
		height: height,
	}

	if err := w.initGLFW(vsync); err != nil {
		return nil, err
	}

	if err := w.initGL(); err != nil {
		w.Unload()
		return nil, err
	}

	return w, nil
}

// initialization

func (w *Window) initGLFW(vsync bool) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.Samples, 4)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(w.width, w.height, w.title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("failed to create window: %w", err)
	}

	window.SetFramebufferSizeCallback(w.onResize)
	window.SetKeyCallback(w.onKey)
	window.SetCursorPosCallback(w.onMouseMove)
	window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	window.SetScrollCallback(w.onMouseScroll)
	window.SetMouseButtonCallback(w.onMouseButton)

	window.MakeContextCurrent()
	if vsync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	w.window = window
	return nil
}

func (w *Window) initGL() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	Logger().Info("context created",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)))

	// clearing
	gl.ClearColor(0, 0, 0, 1.0)
	gl.ClearDepth(1)

	// depth
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)

	// cull face
	gl.FrontFace(gl.CCW)
	gl.CullFace(gl.BACK)
	gl.Enable(gl.CULL_FACE)

	gl.Enable(gl.MULTISAMPLE)

	fw, fh := w.window.GetFramebufferSize()
	w.onResize(w.window, fw, fh)

	return checkGLError("init gl")
}

// cleanup

func (w *Window) Unload() {
	if w.window != nil {
		w.window.Destroy()
		w.window = nil
	}

	glfw.Terminate()
}

func (w *Window) Running() bool {
	return !w.window.ShouldClose()
}

func (w *Window) Quit() {
	w.window.SetShouldClose(true)
}

// set parameters

func (w *Window) SetTitle(title string) {
	w.title = title
	w.window.SetTitle(title)
}

// Size returns the framebuffer size in pixels.
func (w *Window) Size() (int, int) {
	return w.width, w.height
}

func (w *Window) SwapBuffers() {
	w.window.SwapBuffers()
	glfw.PollEvents()
}

// event callbacks

func (w *Window) SetResizeCallback(f func(w, h int)) {
	w.resizeCallback = f
}

func (w *Window) onResize(window *glfw.Window, width, height int) {
	if height < 1 {
		height = 1
	}

	if width < 1 {
		width = 1
	}

	w.width = width
	w.height = height

	gl.Viewport(0, 0, int32(width), int32(height))

	if w.resizeCallback != nil {
		w.resizeCallback(width, height)
	}
}

func (w *Window) SetKeyCallback(f func(key glfw.Key, action glfw.Action, mods glfw.ModifierKey)) {
	w.keyCallback = f
}

func (w *Window) onKey(window *glfw.Window, k glfw.Key, s int, action glfw.Action, mods glfw.ModifierKey) {
	if w.keyCallback != nil {
		w.keyCallback(k, action, mods)
	}
}

func (w *Window) SetMouseMoveCallback(f func(x, y float64)) {
	w.mouseMoveCallback = f
}

func (w *Window) onMouseMove(window *glfw.Window, xpos float64, ypos float64) {
	if w.mouseMoveCallback != nil {
		w.mouseMoveCallback(xpos, ypos)
	}
}

func (w *Window) SetMouseScrollCallback(f func(x, y float64)) {
	w.mouseScrollCallback = f
}

func (w *Window) onMouseScroll(window *glfw.Window, xoff float64, yoff float64) {
	if w.mouseScrollCallback != nil {
		w.mouseScrollCallback(xoff, yoff)
	}
}

func (w *Window) SetMouseButtonCallback(f func(button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey)) {
	w.mouseButtonCallback = f
}

func (w *Window) onMouseButton(window *glfw.Window, b glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	if w.mouseButtonCallback != nil {
		w.mouseButtonCallback(b, action, mods)
	}
}

// CursorPos returns the cursor position in screen coordinates.
func (w *Window) CursorPos() (float64, float64) {
	return w.window.GetCursorPos()
}
