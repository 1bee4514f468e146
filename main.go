package main

import (
	"flag"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/der-antikeks/globe/asset"
	"github.com/der-antikeks/globe/config"
	"github.com/der-antikeks/globe/control"
	"github.com/der-antikeks/globe/engine"
	"github.com/der-antikeks/globe/geometry"
	"github.com/der-antikeks/globe/math"
)

func init() {
	// GLFW and GL calls must stay on the main thread
	runtime.LockOSThread()
}

func main() {
	var (
		configPath = flag.String("config", "settings.json", "settings file, missing file uses defaults")
		texture    = flag.String("texture", "", "texture image (png, jpeg, gif, bmp, tiff, webp)")
		radius     = flag.Float64("radius", geometry.DefaultRadius, "sphere radius")
		sectors    = flag.Int("sectors", geometry.DefaultSectorCount, "sector (longitude) count")
		stacks     = flag.Int("stacks", geometry.DefaultStackCount, "stack (latitude) count")
		flat       = flag.Bool("flat", false, "flat shading")
		width      = flag.Int("width", 1024, "window width")
		height     = flag.Int("height", 768, "window height")
		debug      = flag.Bool("debug", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	engine.SetLogger(logger)

	settings, err := config.Load(*configPath)
	if err != nil {
		logger.Error("loading settings", "path", *configPath, "err", err)
		os.Exit(1)
	}

	// explicitly set flags override the settings file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "texture":
			settings.Texture.Path = *texture
		case "radius":
			settings.Sphere.Radius = float32(*radius)
		case "sectors":
			settings.Sphere.Sectors = *sectors
		case "stacks":
			settings.Sphere.Stacks = *stacks
		case "flat":
			settings.Sphere.Smooth = !*flat
		case "width":
			settings.Window.Width = *width
		case "height":
			settings.Window.Height = *height
		}
	})

	if err := settings.Validate(); err != nil {
		logger.Error("invalid settings", "err", err)
		os.Exit(1)
	}

	if err := run(settings, logger); err != nil {
		logger.Error("viewer stopped", "err", err)
		os.Exit(1)
	}
}

func run(settings config.Settings, logger *slog.Logger) error {
	window, err := engine.NewWindow(settings.Window.Title, settings.Window.Width, settings.Window.Height, settings.Window.VSync)
	if err != nil {
		return err
	}
	defer window.Unload()

	vertex, err := asset.LoadShaderSource(settings.Shaders.Vertex, engine.DefaultVertexShader)
	if err != nil {
		return err
	}
	fragment, err := asset.LoadShaderSource(settings.Shaders.Fragment, engine.DefaultFragmentShader)
	if err != nil {
		return err
	}

	w, h := window.Size()
	renderer, err := engine.NewRenderer(vertex, fragment, w, h)
	if err != nil {
		return err
	}
	defer renderer.Dispose()

	renderer.SetLight(lightFromSettings(settings.Light))

	s := settings.Sphere
	v := &viewer{
		window:   window,
		renderer: renderer,
		mesh:     geometry.Build(s.Radius, s.Sectors, s.Stacks, s.Smooth),
		orbit:    control.NewOrbit(settings.Orbit()),
		log:      logger,
	}

	if err := v.uploadMesh(); err != nil {
		return err
	}

	if path := settings.Texture.Path; path != "" {
		logger.Info("loading texture", "path", path)
		v.pending = asset.LoadImageAsync(path, settings.Texture.PowerOfTwo)
	} else if err := v.useCheckerboard(); err != nil {
		return err
	}

	window.SetResizeCallback(renderer.SetSize)
	window.SetKeyCallback(v.onKey)
	window.SetMouseButtonCallback(v.onMouseButton)
	window.SetMouseMoveCallback(v.orbit.Move)
	window.SetMouseScrollCallback(func(_, y float64) { v.orbit.Scroll(y) })

	// main loop
	var (
		lastTime    = time.Now()
		currentTime time.Time
		delta       time.Duration

		ratio     = 0.01
		fps       = 60.0
		nextPrint = lastTime
	)

	for window.Running() {
		// calc delay
		currentTime = time.Now()
		delta = currentTime.Sub(lastTime)
		lastTime = currentTime

		// fps
		if ds := delta.Seconds(); ds > 0 {
			fps = fps*(1-ratio) + (1.0/ds)*ratio
		}
		if currentTime.After(nextPrint) {
			nextPrint = currentTime.Add(500 * time.Millisecond)
			st := v.orbit.State()
			logger.Debug("frame",
				"fps", math.Round(fps, 1),
				"triangles", v.mesh.TriangleCount(),
				"yaw", math.Round(st.Yaw*math.RAD2DEG, 1),
				"pitch", math.Round(st.Pitch*math.RAD2DEG, 1))
		}

		if err := v.pollTexture(); err != nil {
			return err
		}

		frame := v.orbit.Step(delta)
		renderer.Render(frame)

		window.SwapBuffers()
	}

	return nil
}
