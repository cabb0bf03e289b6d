package anim

import (
	"context"
	"errors"
	"math"
	"sync/atomic"
	"testing"

	"github.com/mkale/aurelia/pkg/compose"
	"github.com/mkale/aurelia/pkg/geom"
	"github.com/mkale/aurelia/pkg/pattern"
)

func circleGen(params Params) (*compose.Composition, error) {
	c, err := pattern.Circle(geom.Vec2{}, params["radius"], int(params["points"]))
	if err != nil {
		return nil, err
	}
	return &compose.Composition{Circles: []geom.Circle{c}}, nil
}

func TestFrameValues(t *testing.T) {
	cases := []struct {
		name       string
		start, end float64
		frames     int
		want       []float64
	}{
		{"two frames", 0, 1, 2, []float64{0, 1}},
		{"five frames", 1, 3, 5, []float64{1, 1.5, 2, 2.5, 3}},
		{"single frame", 4, 9, 1, []float64{4}},
		{"equal endpoints", 2, 2, 3, []float64{2, 2, 2}},
		{"descending", 1, 0, 3, []float64{1, 0.5, 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := FrameValues(tc.start, tc.end, tc.frames)
			if err != nil {
				t.Fatalf("FrameValues: %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tc.want))
			}
			for i := range got {
				if math.Abs(got[i]-tc.want[i]) > 1e-12 {
					t.Errorf("value[%d] = %g, want %g", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestFrameValuesRejectsZeroFrames(t *testing.T) {
	_, err := FrameValues(0, 1, 0)
	var perr *geom.InvalidParameterError
	if !errors.As(err, &perr) {
		t.Fatalf("want InvalidParameterError, got %v", err)
	}
}

func TestAnimateEmitsInOrder(t *testing.T) {
	const frames = 16
	var gotFrames []int
	var gotValues []float64
	err := Animate(context.Background(), circleGen,
		Params{"points": 12}, "radius", 1, 4, frames,
		func(frame int, value float64, c *compose.Composition) error {
			gotFrames = append(gotFrames, frame)
			gotValues = append(gotValues, value)
			if len(c.Circles) != 1 {
				t.Fatalf("frame %d has %d circles", frame, len(c.Circles))
			}
			if math.Abs(c.Circles[0].Radius-value) > 1e-12 {
				t.Fatalf("frame %d radius %g, want %g", frame, c.Circles[0].Radius, value)
			}
			return nil
		})
	if err != nil {
		t.Fatalf("animate: %v", err)
	}
	if len(gotFrames) != frames {
		t.Fatalf("emitted %d frames, want %d", len(gotFrames), frames)
	}
	for i, f := range gotFrames {
		if f != i {
			t.Fatalf("emission order broken at position %d: frame %d", i, f)
		}
	}
	if gotValues[0] != 1 || gotValues[frames-1] != 4 {
		t.Errorf("endpoints %g..%g, want 1..4", gotValues[0], gotValues[frames-1])
	}
}

func TestAnimateEqualEndpoints(t *testing.T) {
	const frames = 5
	count := 0
	err := Animate(context.Background(), circleGen,
		Params{"points": 8}, "radius", 2, 2, frames,
		func(frame int, value float64, c *compose.Composition) error {
			count++
			if value != 2 {
				t.Fatalf("frame %d value %g, want 2", frame, value)
			}
			return nil
		})
	if err != nil {
		t.Fatalf("animate: %v", err)
	}
	if count != frames {
		t.Errorf("emitted %d frames, want %d", count, frames)
	}
}

func TestAnimatePropagatesGeneratorError(t *testing.T) {
	err := Animate(context.Background(), circleGen,
		Params{"points": 8}, "radius", -1, -1, 3,
		func(int, float64, *compose.Composition) error { return nil })
	var perr *geom.InvalidParameterError
	if !errors.As(err, &perr) {
		t.Fatalf("want InvalidParameterError, got %v", err)
	}
}

func TestAnimateDoesNotMutateStaticParams(t *testing.T) {
	static := Params{"points": 8, "radius": 100}
	err := Animate(context.Background(), circleGen, static, "radius", 1, 2, 4,
		func(int, float64, *compose.Composition) error { return nil })
	if err != nil {
		t.Fatalf("animate: %v", err)
	}
	if static["radius"] != 100 {
		t.Errorf("static params mutated: radius = %g", static["radius"])
	}
}

func TestAnimateHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var emitted atomic.Int32
	err := Animate(ctx, circleGen, Params{"points": 8}, "radius", 1, 2, 64,
		func(int, float64, *compose.Composition) error {
			emitted.Add(1)
			return nil
		})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
	if emitted.Load() != 0 {
		t.Errorf("emitted %d frames after cancellation", emitted.Load())
	}
}

func TestOrbitReusesGeometry(t *testing.T) {
	c, err := pattern.Circle(geom.Vec2{}, 1, 6)
	if err != nil {
		t.Fatalf("circle: %v", err)
	}
	fixed := &compose.Composition{Circles: []geom.Circle{c}}

	const frames = 8
	var views []View
	err = Orbit(context.Background(), fixed, frames, 0.3, 1,
		func(frame int, view View, got *compose.Composition) error {
			if got != fixed {
				t.Fatal("orbit handed out a different composition")
			}
			views = append(views, view)
			return nil
		})
	if err != nil {
		t.Fatalf("orbit: %v", err)
	}
	if len(views) != frames {
		t.Fatalf("emitted %d frames, want %d", len(views), frames)
	}
	step := 2 * math.Pi / frames
	for i, v := range views {
		if math.Abs(v.Azimuth-float64(i)*step) > 1e-12 {
			t.Errorf("frame %d azimuth %g, want %g", i, v.Azimuth, float64(i)*step)
		}
		if v.Elevation != 0.3 {
			t.Errorf("frame %d elevation %g, want 0.3", i, v.Elevation)
		}
	}
}

func TestOrbitValidation(t *testing.T) {
	fixed := &compose.Composition{}
	noop := func(int, View, *compose.Composition) error { return nil }
	if err := Orbit(context.Background(), fixed, 0, 0, 1, noop); err == nil {
		t.Error("zero frames accepted")
	}
	if err := Orbit(context.Background(), fixed, 4, 0, 0, noop); err == nil {
		t.Error("zero turns accepted")
	}
}
