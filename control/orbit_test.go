package control

import (
	m "math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/der-antikeks/globe/math"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.AutoRotate = false
	cfg.ZoomDamping = 0
	return cfg
}

func near(a, b mgl32.Vec3) bool {
	for i := range a {
		if m.Abs(float64(a[i]-b[i])) > 1e-5 {
			return false
		}
	}
	return true
}

func TestState_Drag(t *testing.T) {
	cfg := testConfig()
	s := NewState(cfg)

	// not dragging, ignored
	s.Move(cfg, 100, 100)
	if s.Yaw != 0 || s.Pitch != 0 {
		t.Fatalf("Move without Press rotated to yaw %v pitch %v", s.Yaw, s.Pitch)
	}

	s.Press(10, 20)
	s.Move(cfg, 30, 25)
	if !math.NearlyEquals(s.Yaw, 20*cfg.RotateSpeed, 1e-9) || !math.NearlyEquals(s.Pitch, 5*cfg.RotateSpeed, 1e-9) {
		t.Errorf("drag by (20, 5) rotated to yaw %v pitch %v", s.Yaw, s.Pitch)
	}

	s.Release()
	s.Move(cfg, 500, 500)
	if !math.NearlyEquals(s.Yaw, 20*cfg.RotateSpeed, 1e-9) {
		t.Errorf("Move after Release rotated to yaw %v", s.Yaw)
	}
}

func TestState_PitchLimit(t *testing.T) {
	cfg := testConfig()
	s := NewState(cfg)

	s.Press(0, 0)
	s.Move(cfg, 0, 1e6)
	if s.Pitch != pitchLimit {
		t.Errorf("pitch != %v (got %v)", pitchLimit, s.Pitch)
	}

	s.Move(cfg, 0, -1e6)
	if s.Pitch != -pitchLimit {
		t.Errorf("pitch != %v (got %v)", -pitchLimit, s.Pitch)
	}
}

func TestState_YawWraps(t *testing.T) {
	tests := []struct {
		Value    float64
		Expected float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{3 * math.Pi, math.Pi},
		{-math.Pi / 2, 3 * math.Pi / 2},
	}

	for _, c := range tests {
		if r := wrapAngle(c.Value); !math.NearlyEquals(r, c.Expected, 1e-9) {
			t.Errorf("wrapAngle(%v) != %v (got %v)", c.Value, c.Expected, r)
		}
	}
}

func TestState_Scroll(t *testing.T) {
	cfg := testConfig()
	s := NewState(cfg)
	start := s.TargetDistance

	s.Scroll(cfg, 1)
	if s.TargetDistance >= start {
		t.Errorf("scrolling up did not zoom in: %v >= %v", s.TargetDistance, start)
	}

	s.Scroll(cfg, -1)
	if !math.NearlyEquals(s.TargetDistance, start, 1e-9) {
		t.Errorf("scrolling back did not return to %v (got %v)", start, s.TargetDistance)
	}

	s.Scroll(cfg, 1000)
	if s.TargetDistance != cfg.MinDistance {
		t.Errorf("zoom in not clamped to %v (got %v)", cfg.MinDistance, s.TargetDistance)
	}

	s.Scroll(cfg, -1000)
	if s.TargetDistance != cfg.MaxDistance {
		t.Errorf("zoom out not clamped to %v (got %v)", cfg.MaxDistance, s.TargetDistance)
	}
}

func TestState_ZoomDamping(t *testing.T) {
	cfg := testConfig()
	cfg.ZoomDamping = 5
	s := NewState(cfg)

	s.TargetDistance = cfg.MaxDistance
	f := s.Step(cfg, 100*time.Millisecond)
	if !(f.Distance > float32(cfg.Distance) && f.Distance < float32(cfg.MaxDistance)) {
		t.Errorf("damped distance %v not between %v and %v", f.Distance, cfg.Distance, cfg.MaxDistance)
	}

	s.Step(cfg, time.Minute)
	if !math.NearlyEquals(s.Distance, cfg.MaxDistance, 1e-6) {
		t.Errorf("distance did not reach %v (got %v)", cfg.MaxDistance, s.Distance)
	}

	cfg.ZoomDamping = 0
	s.TargetDistance = cfg.MinDistance
	s.Step(cfg, 0)
	if s.Distance != cfg.MinDistance {
		t.Errorf("undamped distance != %v (got %v)", cfg.MinDistance, s.Distance)
	}
}

func TestState_AutoRotate(t *testing.T) {
	cfg := testConfig()
	cfg.AutoRotate = true
	cfg.AutoRotateSpeed = 1
	cfg.AutoRotateDelay = time.Second
	cfg.AutoRotateRamp = time.Second

	s := NewState(cfg)

	// waiting for the delay
	s.Step(cfg, 500*time.Millisecond)
	s.Step(cfg, 500*time.Millisecond)
	if s.Yaw != 0 {
		t.Fatalf("rotated before the idle delay: yaw %v", s.Yaw)
	}

	// ramping up, slower than full speed
	s.Step(cfg, 500*time.Millisecond)
	ramped := s.Yaw
	if !(ramped > 0 && ramped < 0.5) {
		t.Fatalf("ramp step rotated by %v, expected (0, 0.5)", ramped)
	}

	// full speed
	s.Step(cfg, 2*time.Second)
	before := s.Yaw
	s.Step(cfg, 250*time.Millisecond)
	if d := s.Yaw - before; !math.NearlyEquals(d, 0.25, 1e-9) {
		t.Errorf("full speed step rotated by %v, expected 0.25", d)
	}

	// dragging stops and resets the idle timer
	s.Press(0, 0)
	before = s.Yaw
	s.Step(cfg, 5*time.Second)
	if s.Yaw != before {
		t.Errorf("rotated while dragging")
	}
	s.Release()
	s.Step(cfg, 500*time.Millisecond)
	if s.Yaw != before {
		t.Errorf("rotated right after release")
	}

	if s.ToggleAutoRotate() {
		t.Fatalf("ToggleAutoRotate() did not disable")
	}
	s.Step(cfg, 10*time.Second)
	if s.Yaw != before {
		t.Errorf("rotated while disabled")
	}
}

func TestState_Frame(t *testing.T) {
	cfg := testConfig()
	s := NewState(cfg)
	f := s.Step(cfg, 0)

	// view moves the eye to the origin
	if r := f.View.Mul4x1(f.Eye.Vec4(1)); !near(r.Vec3(), mgl32.Vec3{}) {
		t.Errorf("View * eye != origin (got %v)", r)
	}

	// resting model puts the north pole up
	if r := f.Model.Mul4x1(mgl32.Vec4{0, 0, 1, 0}).Vec3(); !near(r, mgl32.Vec3{0, 1, 0}) {
		t.Errorf("Model * north != up (got %v)", r)
	}

	// yaw spins around the polar axis
	s.Yaw = math.Pi / 2
	f = s.Frame()
	if r := f.Model.Mul4x1(mgl32.Vec4{0, 0, 1, 0}).Vec3(); !near(r, mgl32.Vec3{0, 1, 0}) {
		t.Errorf("yawed Model * north != up (got %v)", r)
	}
	if r := f.Model.Mul4x1(mgl32.Vec4{1, 0, 0, 0}).Vec3(); m.Abs(float64(r[1])) > 1e-5 {
		t.Errorf("yawed Model tilted the equator: %v", r)
	}
}

func TestOrbit_Reset(t *testing.T) {
	o := NewOrbit(testConfig())

	o.Press(0, 0)
	o.Move(40, 40)
	o.Scroll(3)
	o.Step(time.Second)

	o.Reset()
	s := o.State()
	if s.Yaw != 0 || s.Pitch != 0 || s.Dragging || s.Distance != o.Config().Distance {
		t.Errorf("Reset() left state %+v", s)
	}
}

func TestNewState_ClampsDistance(t *testing.T) {
	cfg := testConfig()
	cfg.Distance = 100

	if s := NewState(cfg); s.Distance != cfg.MaxDistance || s.TargetDistance != cfg.MaxDistance {
		t.Errorf("NewState distance %v/%v, expected %v", s.Distance, s.TargetDistance, cfg.MaxDistance)
	}
}
