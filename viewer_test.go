package main

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/der-antikeks/globe/geometry"
)

func TestMeshAttrs(t *testing.T) {
	tests := []struct {
		Sectors, Stacks int
		Smooth          bool

		Expected string
	}{
		{3, 2, true, "radius=1 sectors=3 stacks=2 smooth=true vertices=12 indices=18 triangles=6"},
		{8, 4, false, "radius=1 sectors=8 stacks=4 smooth=false vertices=112 indices=144 triangles=48"},
		{1, 1, true, "radius=1 sectors=3 stacks=2 smooth=true vertices=12 indices=18 triangles=6"},
	}

	for _, c := range tests {
		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
			Level: slog.LevelDebug,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				if a.Key == slog.TimeKey {
					return slog.Attr{}
				}
				return a
			},
		}))

		log.Debug("mesh built", meshAttrs(geometry.Build(1, c.Sectors, c.Stacks, c.Smooth))...)

		r := strings.TrimSuffix(buf.String(), "\n")
		if strings.Contains(r, "\n") {
			t.Errorf("mesh log spans several lines (got %q)", r)
		}
		if e := `level=DEBUG msg="mesh built" ` + c.Expected; r != e {
			t.Errorf("mesh log != %q (got %q)", e, r)
		}
	}
}

func TestShading(t *testing.T) {
	tests := []struct {
		Smooth   bool
		Expected string
	}{
		{true, "smooth"},
		{false, "flat"},
	}

	for _, c := range tests {
		if r := shading(c.Smooth); r != c.Expected {
			t.Errorf("shading(%v) != %v (got %v)", c.Smooth, c.Expected, r)
		}
	}
}
