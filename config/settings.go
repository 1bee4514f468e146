package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/der-antikeks/globe/control"
	"github.com/der-antikeks/globe/geometry"
	"github.com/der-antikeks/globe/math"
)

var ErrInvalid = errors.New("config: invalid settings")

type Settings struct {
	Window  WindowSettings  `json:"window"`
	Sphere  SphereSettings  `json:"sphere"`
	Texture TextureSettings `json:"texture"`
	Shaders ShaderSettings  `json:"shaders"`
	Camera  CameraSettings  `json:"camera"`
	Light   LightSettings   `json:"light"`
}

type WindowSettings struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Title  string `json:"title"`
	VSync  bool   `json:"vsync"`
}

type SphereSettings struct {
	Radius  float32 `json:"radius"`
	Sectors int     `json:"sectors"`
	Stacks  int     `json:"stacks"`
	Smooth  bool    `json:"smooth"`
}

type TextureSettings struct {
	// empty path renders a generated checkerboard
	Path       string `json:"path"`
	PowerOfTwo bool   `json:"powerOfTwo"`
}

// ShaderSettings override the built-in shaders when set.
type ShaderSettings struct {
	Vertex   string `json:"vertex"`
	Fragment string `json:"fragment"`
}

type CameraSettings struct {
	Distance    float64 `json:"distance"`
	MinDistance float64 `json:"minDistance"`
	MaxDistance float64 `json:"maxDistance"`
	RotateSpeed float64 `json:"rotateSpeed"`
	ZoomSpeed   float64 `json:"zoomSpeed"`
	ZoomDamping float64 `json:"zoomDamping"`

	AutoRotate        bool    `json:"autoRotate"`
	AutoRotateSpeed   float64 `json:"autoRotateSpeed"`
	AutoRotateDelayMs int     `json:"autoRotateDelayMs"`
	AutoRotateRampMs  int     `json:"autoRotateRampMs"`
	Easing            string  `json:"easing"`
}

type LightSettings struct {
	Position [3]float32 `json:"position"`
	Color    [3]float32 `json:"color"`
	Ambient  float32    `json:"ambient"`
}

func Default() Settings {
	orbit := control.DefaultConfig()

	return Settings{
		Window: WindowSettings{
			Width:  1024,
			Height: 768,
			Title:  "globe",
			VSync:  true,
		},
		Sphere: SphereSettings{
			Radius:  geometry.DefaultRadius,
			Sectors: geometry.DefaultSectorCount,
			Stacks:  geometry.DefaultStackCount,
			Smooth:  true,
		},
		Texture: TextureSettings{
			PowerOfTwo: true,
		},
		Camera: CameraSettings{
			Distance:    orbit.Distance,
			MinDistance: orbit.MinDistance,
			MaxDistance: orbit.MaxDistance,
			RotateSpeed: orbit.RotateSpeed,
			ZoomSpeed:   orbit.ZoomSpeed,
			ZoomDamping: orbit.ZoomDamping,

			AutoRotate:        orbit.AutoRotate,
			AutoRotateSpeed:   orbit.AutoRotateSpeed,
			AutoRotateDelayMs: int(orbit.AutoRotateDelay / time.Millisecond),
			AutoRotateRampMs:  int(orbit.AutoRotateRamp / time.Millisecond),
			Easing:            "inOutQuad",
		},
		Light: LightSettings{
			Position: [3]float32{5, 5, 10},
			Color:    [3]float32{1, 1, 1},
			Ambient:  0.15,
		},
	}
}

// Load reads settings from a JSON file on top of the defaults. Fields
// missing in the file keep their default value, a missing file yields
// the defaults.
func Load(path string) (Settings, error) {
	s := Default()

	if path == "" {
		return s, nil
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, err
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&s); err != nil {
		return s, fmt.Errorf("parsing %s: %w", path, err)
	}

	return s, s.Validate()
}

// Validate reports settings the viewer cannot run with. Sphere parameters
// are not checked, the geometry clamps them.
func (s Settings) Validate() error {
	switch {
	case s.Window.Width <= 0 || s.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, s.Window.Width, s.Window.Height)

	case s.Camera.MinDistance <= 0 || s.Camera.MinDistance > s.Camera.MaxDistance:
		return fmt.Errorf("%w: camera distance limits [%v, %v]", ErrInvalid, s.Camera.MinDistance, s.Camera.MaxDistance)

	case s.Camera.AutoRotateDelayMs < 0 || s.Camera.AutoRotateRampMs < 0:
		return fmt.Errorf("%w: negative auto rotation timing", ErrInvalid)

	case s.Light.Ambient < 0 || s.Light.Ambient > 1:
		return fmt.Errorf("%w: ambient %v outside [0, 1]", ErrInvalid, s.Light.Ambient)
	}

	if _, ok := math.EasingByName(s.Camera.Easing); !ok {
		return fmt.Errorf("%w: unknown easing %q", ErrInvalid, s.Camera.Easing)
	}

	return nil
}

// Orbit returns the camera controller configuration.
func (s Settings) Orbit() control.Config {
	c := s.Camera

	ease, ok := math.EasingByName(c.Easing)
	if !ok {
		ease = math.EaseInOutQuad
	}

	return control.Config{
		RotateSpeed: c.RotateSpeed,
		ZoomSpeed:   c.ZoomSpeed,
		ZoomDamping: c.ZoomDamping,

		Distance:    c.Distance,
		MinDistance: c.MinDistance,
		MaxDistance: c.MaxDistance,

		AutoRotate:      c.AutoRotate,
		AutoRotateSpeed: c.AutoRotateSpeed,
		AutoRotateDelay: time.Duration(c.AutoRotateDelayMs) * time.Millisecond,
		AutoRotateRamp:  time.Duration(c.AutoRotateRampMs) * time.Millisecond,
		Easing:          ease,
	}
}
