package main

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/der-antikeks/globe/asset"
	"github.com/der-antikeks/globe/config"
	"github.com/der-antikeks/globe/control"
	"github.com/der-antikeks/globe/engine"
	"github.com/der-antikeks/globe/geometry"
)

const (
	checkerboardSize  = 512
	checkerboardCells = 16
)

// viewer connects window input to the orbit state and the mesh.
type viewer struct {
	window   *engine.Window
	renderer *engine.Renderer
	mesh     *geometry.Mesh
	orbit    *control.Orbit
	pending  *asset.PendingImage
	log      *slog.Logger
}

func lightFromSettings(l config.LightSettings) engine.Light {
	return engine.Light{
		Position: mgl32.Vec3(l.Position),
		Color:    mgl32.Vec3(l.Color),
		Ambient:  l.Ambient,
	}
}

func (v *viewer) uploadMesh() error {
	if err := v.renderer.SetMesh(v.mesh); err != nil {
		return fmt.Errorf("uploading mesh: %w", err)
	}

	v.log.Debug("mesh built", meshAttrs(v.mesh)...)
	v.window.SetTitle(fmt.Sprintf("globe - %d sectors, %d stacks, %s",
		v.mesh.SectorCount(), v.mesh.StackCount(), shading(v.mesh.Smooth())))

	return nil
}

func meshAttrs(m *geometry.Mesh) []any {
	return []any{
		"radius", m.Radius(),
		"sectors", m.SectorCount(),
		"stacks", m.StackCount(),
		"smooth", m.Smooth(),
		"vertices", m.VertexCount(),
		"indices", m.IndexCount(),
		"triangles", m.TriangleCount(),
	}
}

func shading(smooth bool) string {
	if smooth {
		return "smooth"
	}
	return "flat"
}

func (v *viewer) useCheckerboard() error {
	t, err := engine.NewTexture(asset.Checkerboard(checkerboardSize, checkerboardCells))
	if err != nil {
		return err
	}

	v.renderer.SetTexture(t)
	return nil
}

// pollTexture uploads the background loaded texture once it is decoded.
// A texture that fails to load is replaced by the checkerboard.
func (v *viewer) pollTexture() error {
	if v.pending == nil {
		return nil
	}

	img, ready, err := v.pending.Poll()
	if !ready {
		return nil
	}

	path := v.pending.Path()
	v.pending = nil

	if err != nil {
		v.log.Warn("texture not loaded, using checkerboard", "path", path, "err", err)
		return v.useCheckerboard()
	}

	t, err := engine.NewTexture(img)
	if err != nil {
		return err
	}
	v.renderer.SetTexture(t)

	v.log.Info("texture loaded", "path", path, "width", t.Width(), "height", t.Height())
	return nil
}

func (v *viewer) onMouseButton(button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	if button != glfw.MouseButtonLeft {
		return
	}

	switch action {
	case glfw.Press:
		v.orbit.Press(v.window.CursorPos())
	case glfw.Release:
		v.orbit.Release()
	}
}

func (v *viewer) onKey(key glfw.Key, action glfw.Action, mods glfw.ModifierKey) {
	if action == glfw.Release {
		return
	}

	m := v.mesh
	sectors, stacks, smooth := m.SectorCount(), m.StackCount(), m.Smooth()

	switch key {
	case glfw.KeyEscape:
		v.window.Quit()
		return

	case glfw.KeySpace:
		if action == glfw.Press {
			v.log.Debug("auto rotation", "enabled", v.orbit.ToggleAutoRotate())
		}
		return

	case glfw.KeyR:
		v.orbit.Reset()
		return

	case glfw.KeyF:
		if action != glfw.Press {
			return
		}
		smooth = !smooth
	case glfw.KeyLeft:
		sectors--
	case glfw.KeyRight:
		sectors++
	case glfw.KeyDown:
		stacks--
	case glfw.KeyUp:
		stacks++

	default:
		return
	}

	// clamped to the current shape, nothing to upload
	if !m.Set(m.Radius(), sectors, stacks, smooth) {
		return
	}

	if err := v.uploadMesh(); err != nil {
		v.log.Error("mesh update failed", "err", err)
	}
}
