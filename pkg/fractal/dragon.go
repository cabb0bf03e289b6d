package fractal

import "github.com/mkale/aurelia/pkg/geom"

// DragonCurve folds a unit segment iterations times: each pass appends the
// existing curve rotated 90 degrees about its endpoint, walked in reverse.
// The result has 2^iterations + 1 points.
func DragonCurve(iterations int) (geom.Polyline, error) {
	if iterations < 0 {
		return geom.Polyline{}, &geom.InvalidParameterError{
			Param: "iterations", Value: float64(iterations), Reason: "must be non-negative",
		}
	}

	curve := []geom.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}}
	for i := 0; i < iterations; i++ {
		pivot := curve[len(curve)-1]
		next := make([]geom.Vec2, 0, 2*len(curve)-1)
		next = append(next, curve...)
		for j := len(curve) - 2; j >= 0; j-- {
			p := curve[j].Sub(pivot)
			// 90 degree rotation about the pivot.
			next = append(next, geom.Vec2{X: pivot.X - p.Y, Y: pivot.Y + p.X})
		}
		curve = next
	}
	return geom.Polyline{Points: curve}, nil
}
