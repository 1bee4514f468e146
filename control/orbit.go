package control

import (
	m "math"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/der-antikeks/globe/math"
)

// keeps the camera from flipping over the poles
const pitchLimit = math.Pi/2 - 0.01

type Config struct {
	RotateSpeed float64 // radians per dragged pixel
	ZoomSpeed   float64 // exponential zoom per scroll step
	ZoomDamping float64 // approach rate per second, 0 jumps to the target

	Distance    float64
	MinDistance float64
	MaxDistance float64

	AutoRotate      bool
	AutoRotateSpeed float64       // radians per second
	AutoRotateDelay time.Duration // idle time before rotation resumes
	AutoRotateRamp  time.Duration // time to reach full speed
	Easing          math.Easing   // shape of the ramp, defaults to EaseInOutQuad
}

func DefaultConfig() Config {
	return Config{
		RotateSpeed: 0.01,
		ZoomSpeed:   0.1,
		ZoomDamping: 10,

		Distance:    4,
		MinDistance: 1.5,
		MaxDistance: 20,

		AutoRotate:      true,
		AutoRotateSpeed: 0.5,
		AutoRotateDelay: 2 * time.Second,
		AutoRotateRamp:  time.Second,
		Easing:          math.EaseInOutQuad,
	}
}

// State is the complete input state of the viewer. It is owned by the
// render loop and only changed through its methods.
type State struct {
	Dragging     bool
	LastX, LastY float64

	Yaw, Pitch float64

	Distance       float64
	TargetDistance float64

	AutoRotate bool
	Idle       time.Duration
}

// NewState returns the resting state for cfg.
func NewState(cfg Config) State {
	d := math.Clamp(cfg.Distance, cfg.MinDistance, cfg.MaxDistance)

	return State{
		Distance:       d,
		TargetDistance: d,
		AutoRotate:     cfg.AutoRotate,
	}
}

// Frame holds the matrices for one rendered frame.
type Frame struct {
	Model    mgl32.Mat4
	View     mgl32.Mat4
	Eye      mgl32.Vec3
	Distance float32
}

func (s *State) Press(x, y float64) {
	s.Dragging = true
	s.LastX, s.LastY = x, y
	s.Idle = 0
}

func (s *State) Release() {
	s.Dragging = false
	s.Idle = 0
}

func (s *State) Move(cfg Config, x, y float64) {
	if !s.Dragging {
		return
	}

	dx, dy := x-s.LastX, y-s.LastY
	s.LastX, s.LastY = x, y

	s.Yaw = wrapAngle(s.Yaw + dx*cfg.RotateSpeed)
	s.Pitch = math.Clamp(s.Pitch+dy*cfg.RotateSpeed, -pitchLimit, pitchLimit)
	s.Idle = 0
}

// Scroll zooms in for positive dy.
func (s *State) Scroll(cfg Config, dy float64) {
	s.TargetDistance = math.Clamp(s.TargetDistance*m.Exp(-dy*cfg.ZoomSpeed), cfg.MinDistance, cfg.MaxDistance)
}

func (s *State) ToggleAutoRotate() bool {
	s.AutoRotate = !s.AutoRotate
	s.Idle = 0
	return s.AutoRotate
}

// Step advances the state by dt and returns the matrices to render with.
func (s *State) Step(cfg Config, dt time.Duration) Frame {
	if dt < 0 {
		dt = 0
	}
	sec := dt.Seconds()

	if cfg.ZoomDamping > 0 {
		s.Distance = math.Damp(s.Distance, s.TargetDistance, cfg.ZoomDamping, sec)
	} else {
		s.Distance = s.TargetDistance
	}

	if s.AutoRotate && !s.Dragging {
		s.Idle += dt

		if s.Idle > cfg.AutoRotateDelay {
			s.Yaw = wrapAngle(s.Yaw + cfg.AutoRotateSpeed*s.ramp(cfg)*sec)
		}
	}

	return s.Frame()
}

// ramp returns the auto rotation speed factor for the current idle time.
func (s *State) ramp(cfg Config) float64 {
	if cfg.AutoRotateRamp <= 0 {
		return 1
	}

	ease := cfg.Easing
	if ease == nil {
		ease = math.EaseInOutQuad
	}

	return ease(float64(s.Idle-cfg.AutoRotateDelay) / float64(cfg.AutoRotateRamp))
}

// Frame builds the matrices for the current state without advancing it.
// The mesh is z-up, the model matrix turns its poles onto the screen's y axis.
func (s *State) Frame() Frame {
	model := mgl32.HomogRotate3DX(float32(s.Pitch)).
		Mul4(mgl32.HomogRotate3DY(float32(s.Yaw))).
		Mul4(mgl32.HomogRotate3DX(-math.Pi / 2))

	eye := mgl32.Vec3{0, 0, float32(s.Distance)}

	return Frame{
		Model:    model,
		View:     mgl32.LookAtV(eye, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}),
		Eye:      eye,
		Distance: float32(s.Distance),
	}
}

func wrapAngle(a float64) float64 {
	a = m.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// Orbit bundles a configuration with the state it drives.
type Orbit struct {
	cfg   Config
	state State
}

func NewOrbit(cfg Config) *Orbit {
	return &Orbit{
		cfg:   cfg,
		state: NewState(cfg),
	}
}

func (o *Orbit) Config() Config { return o.cfg }
func (o *Orbit) State() State   { return o.state }

func (o *Orbit) Press(x, y float64)     { o.state.Press(x, y) }
func (o *Orbit) Release()               { o.state.Release() }
func (o *Orbit) Move(x, y float64)      { o.state.Move(o.cfg, x, y) }
func (o *Orbit) Scroll(dy float64)      { o.state.Scroll(o.cfg, dy) }
func (o *Orbit) ToggleAutoRotate() bool { return o.state.ToggleAutoRotate() }

// Reset returns to the initial view.
func (o *Orbit) Reset() { o.state = NewState(o.cfg) }

func (o *Orbit) Step(dt time.Duration) Frame { return o.state.Step(o.cfg, dt) }
