package pattern

import (
	"math"

	"github.com/mkale/aurelia/pkg/geom"
)

// GoldenSpiral samples the logarithmic spiral whose radius grows by the
// golden ratio per quarter turn: r(theta) = start * exp(b*theta) with
// b = ln(phi)/(pi/2). Sampling stops once the radius reaches maxRadius or
// the requested number of turns completes, whichever comes first.
func GoldenSpiral(center geom.Vec2, startRadius, maxRadius, turns float64, pointsPerTurn int) (geom.Polyline, error) {
	if err := geom.CheckPositive("startRadius", startRadius); err != nil {
		return geom.Polyline{}, err
	}
	if err := geom.CheckPositive("turns", turns); err != nil {
		return geom.Polyline{}, err
	}
	if maxRadius <= startRadius {
		return geom.Polyline{}, &geom.InvalidParameterError{
			Param: "maxRadius", Value: maxRadius, Reason: "must exceed startRadius",
		}
	}
	if err := geom.CheckMin("pointsPerTurn", float64(pointsPerTurn), 4); err != nil {
		return geom.Polyline{}, err
	}

	b := math.Log(geom.Phi()) / (math.Pi / 2)
	total := int(math.Ceil(turns * float64(pointsPerTurn)))
	step := turns * 2 * math.Pi / float64(total)

	points := make([]geom.Vec2, 0, total+1)
	for i := 0; i <= total; i++ {
		theta := float64(i) * step
		r := startRadius * math.Exp(b*theta)
		if r >= maxRadius {
			points = append(points, center.Polar(maxRadius, theta))
			break
		}
		points = append(points, center.Polar(r, theta))
	}
	return geom.Polyline{Points: points}, nil
}

// FibonacciSquare is one square of the Fibonacci tiling.
type FibonacciSquare struct {
	Side     float64   `json:"side"`
	Position geom.Vec2 `json:"position"`
	Angle    float64   `json:"angle"`
}

// FibonacciSpiral is the quarter-arc spiral traced through the Fibonacci
// square tiling.
type FibonacciSpiral struct {
	Squares []FibonacciSquare `json:"squares"`
	Spiral  geom.Polyline     `json:"spiral"`
}

// arcSamples is the point count per quarter arc of the Fibonacci spiral.
const arcSamples = 20

// Fibonacci builds a Fibonacci spiral of the given number of iterations.
// Each iteration places a square with side fib(i)*scale and appends a
// quarter-circle arc of radius fib(i-1)*scale to the spiral.
func Fibonacci(center geom.Vec2, scale float64, iterations int) (*FibonacciSpiral, error) {
	if err := geom.CheckPositive("scale", scale); err != nil {
		return nil, err
	}
	if err := geom.CheckMin("iterations", float64(iterations), 1); err != nil {
		return nil, err
	}

	fib := geom.FibonacciSequence(iterations)
	result := &FibonacciSpiral{}

	pos := center
	angle := 0.0
	for i, f := range fib {
		side := float64(f) * scale

		if i > 0 {
			radius := float64(fib[i-1]) * scale
			for j := 0; j < arcSamples; j++ {
				theta := angle + float64(j)/float64(arcSamples-1)*math.Pi/2
				result.Spiral.Points = append(result.Spiral.Points, pos.Polar(radius, theta))
			}
		}

		// March the anchor around the tiling: right, down, left, up.
		switch i % 4 {
		case 0:
			pos.X += side
		case 1:
			pos.Y -= side
		case 2:
			pos.X -= side
		case 3:
			pos.Y += side
		}

		result.Squares = append(result.Squares, FibonacciSquare{
			Side:     side,
			Position: pos,
			Angle:    angle,
		})
		angle += math.Pi / 2
	}

	return result, nil
}
