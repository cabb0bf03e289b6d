// Package anim drives frame sequences. One path sweeps a single named
// generator parameter across a range; a second, separate path orbits the
// camera around geometry that is generated exactly once. The two are never
// conflated: parameter sweeps re-generate, orbits re-view.
package anim

import (
	"context"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/mkale/aurelia/pkg/compose"
	"github.com/mkale/aurelia/pkg/geom"
)

// Params holds a generator's named numeric parameters.
type Params map[string]float64

// Generator produces geometry from a parameter set.
type Generator func(params Params) (*compose.Composition, error)

// EmitFunc receives one finished frame. Emission is strictly ordered by
// frame index even when generation ran in parallel.
type EmitFunc func(frame int, value float64, c *compose.Composition) error

// FrameValues returns frames evenly spaced values from start to end,
// inclusive at both ends. A single frame takes the start value; equal
// start and end still yield the full count of identical values.
func FrameValues(start, end float64, frames int) ([]float64, error) {
	if err := geom.CheckMin("frames", float64(frames), 1); err != nil {
		return nil, err
	}
	values := make([]float64, frames)
	if frames == 1 {
		values[0] = start
		return values, nil
	}
	step := (end - start) / float64(frames-1)
	for i := range values {
		values[i] = start + float64(i)*step
	}
	values[frames-1] = end
	return values, nil
}

// Animate sweeps the parameter named param from start to end across frames
// evenly spaced values, holding every other entry of static fixed. Frames
// are independent, so generation runs on a bounded worker pool; emit is
// then called once per frame in ascending frame order.
func Animate(ctx context.Context, gen Generator, static Params, param string, start, end float64, frames int, emit EmitFunc) error {
	values, err := FrameValues(start, end, frames)
	if err != nil {
		return err
	}

	results := make([]*compose.Composition, frames)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, v := range values {
		i, v := i, v
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			merged := make(Params, len(static)+1)
			for k, val := range static {
				merged[k] = val
			}
			merged[param] = v
			c, err := gen(merged)
			if err != nil {
				return err
			}
			results[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, c := range results {
		if err := emit(i, values[i], c); err != nil {
			return err
		}
	}
	return nil
}

// View is a camera orientation: azimuth around the vertical axis and
// elevation above the horizontal plane, both in radians.
type View struct {
	Azimuth   float64
	Elevation float64
}

// OrbitEmitFunc receives one orbit frame. The composition is the same
// object every frame; only the view changes.
type OrbitEmitFunc func(frame int, view View, c *compose.Composition) error

// Orbit sweeps the camera azimuth through fullTurns revolutions at a
// fixed elevation, emitting the untouched input geometry once per frame.
// The geometry is never regenerated or transformed here; applying the
// view is the renderer's job.
func Orbit(ctx context.Context, c *compose.Composition, frames int, elevation, fullTurns float64, emit OrbitEmitFunc) error {
	if err := geom.CheckMin("frames", float64(frames), 1); err != nil {
		return err
	}
	if err := geom.CheckPositive("fullTurns", fullTurns); err != nil {
		return err
	}
	step := fullTurns * 2 * math.Pi / float64(frames)
	for i := 0; i < frames; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		view := View{Azimuth: float64(i) * step, Elevation: elevation}
		if err := emit(i, view, c); err != nil {
			return err
		}
	}
	return nil
}
