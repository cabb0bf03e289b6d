package compose

import (
	"fmt"

	"github.com/mkale/aurelia/pkg/geom"
	"github.com/mkale/aurelia/pkg/pattern"
)

// Layered invokes the Flower of Life generator once per entry of the
// parallel parameter lists and concatenates the resulting circles. The
// three lists must have equal lengths; a mismatch is a ConfigurationError
// raised before any generation happens (fail fast, no partial work).
func Layered(center geom.Vec2, offsets []geom.Vec2, radii []float64, layerCounts []int) (*Composition, error) {
	if len(offsets) != len(radii) || len(radii) != len(layerCounts) {
		return nil, &geom.ConfigurationError{
			Message: fmt.Sprintf("layered pattern lists must have equal lengths, got offsets=%d radii=%d layers=%d",
				len(offsets), len(radii), len(layerCounts)),
		}
	}

	// Validate everything up front so a failure midway never yields a
	// partially built composition.
	for i, r := range radii {
		if err := geom.CheckPositive(fmt.Sprintf("radii[%d]", i), r); err != nil {
			return nil, err
		}
		if layerCounts[i] < 0 {
			return nil, &geom.InvalidParameterError{
				Param: fmt.Sprintf("layerCounts[%d]", i), Value: float64(layerCounts[i]), Reason: "must be non-negative",
			}
		}
	}

	out := &Composition{}
	for i := range offsets {
		circles, err := pattern.FlowerOfLife(center.Add(offsets[i]), radii[i], layerCounts[i])
		if err != nil {
			return nil, err
		}
		out.Circles = append(out.Circles, circles...)
	}
	return out, nil
}
