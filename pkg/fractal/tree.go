package fractal

import (
	"math"

	"github.com/mkale/aurelia/pkg/geom"
)

// Tree grows a binary fractal tree. A trunk segment of the given length is
// drawn from start in direction angle; two child branches then recurse,
// rotated by +/- branchAngle and scaled by scaleFactor, to depth levels.
// depth 0 yields the single trunk segment, so the segment count is
// 2^(depth+1) - 1.
func Tree(start geom.Vec2, angle, length float64, depth int, branchAngle, scaleFactor float64) ([]geom.Line2, error) {
	if depth < 0 {
		return nil, &geom.InvalidParameterError{
			Param: "depth", Value: float64(depth), Reason: "must be non-negative",
		}
	}
	if err := geom.CheckPositive("length", length); err != nil {
		return nil, err
	}
	if err := geom.CheckPositive("scaleFactor", scaleFactor); err != nil {
		return nil, err
	}

	segments := make([]geom.Line2, 0, intPow(2, depth+1)-1)
	grow(&segments, start, angle, length, depth, branchAngle, scaleFactor)
	return segments, nil
}

func grow(out *[]geom.Line2, start geom.Vec2, angle, length float64, depth int, branchAngle, scaleFactor float64) {
	end := geom.Vec2{
		X: start.X + length*math.Cos(angle),
		Y: start.Y + length*math.Sin(angle),
	}
	*out = append(*out, geom.Line2{A: start, B: end})

	if depth == 0 {
		return
	}
	grow(out, end, angle+branchAngle, length*scaleFactor, depth-1, branchAngle, scaleFactor)
	grow(out, end, angle-branchAngle, length*scaleFactor, depth-1, branchAngle, scaleFactor)
}
