package compose

import (
	"math"

	"github.com/mkale/aurelia/pkg/geom"
	"github.com/mkale/aurelia/pkg/pattern"
)

// ElementKind selects what a mandala element generates.
type ElementKind int

const (
	ElementPolygon ElementKind = iota
	ElementCircle
)

// Element describes one shape repeated in every mandala slot. RadialOffset
// is a fraction of the mandala's base radius; AngularOffset and Rotation
// are radians relative to the slot.
type Element struct {
	Kind          ElementKind
	Sides         int     // polygon side count (ElementPolygon)
	Points        int     // circle sample count (ElementCircle); 0 means the default
	Radius        float64 // element's own radius
	RadialOffset  float64 // element center distance, as a fraction of baseRadius
	AngularOffset float64 // slot-relative angular displacement
	Rotation      float64 // element's own rotation, composed with the slot angle
}

// defaultCirclePoints is the sample count for mandala circles when the
// element does not specify one.
const defaultCirclePoints = 100

// Mandala places every element into each of segments evenly spaced angular
// slots around center. An element's center is the polar offset from the
// global center at slotAngle + AngularOffset, and its rotation is composed
// with the slot's base angle, so the whole assembly has exact
// segments-fold rotational symmetry: rotating any slot's output by
// 2*pi/segments reproduces the next slot.
func Mandala(center geom.Vec2, segments int, elements []Element, baseRadius float64) (*Composition, error) {
	if err := geom.CheckMin("segments", float64(segments), 1); err != nil {
		return nil, err
	}
	if err := geom.CheckPositive("baseRadius", baseRadius); err != nil {
		return nil, err
	}
	if len(elements) == 0 {
		return nil, &geom.ConfigurationError{Message: "mandala requires at least one element"}
	}
	for i := range elements {
		if err := geom.CheckPositive("element radius", elements[i].Radius); err != nil {
			return nil, err
		}
		if elements[i].Kind == ElementPolygon && elements[i].Sides < 3 {
			return nil, &geom.InvalidParameterError{
				Param: "sides", Value: float64(elements[i].Sides), Reason: "must be at least 3",
			}
		}
	}

	out := &Composition{}
	slotStep := 2 * math.Pi / float64(segments)

	for s := 0; s < segments; s++ {
		slotAngle := float64(s) * slotStep
		for _, el := range elements {
			elCenter := center.Polar(baseRadius*el.RadialOffset, slotAngle+el.AngularOffset)
			switch el.Kind {
			case ElementPolygon:
				p, err := pattern.RegularPolygon(elCenter, el.Radius, el.Sides, el.Rotation+slotAngle)
				if err != nil {
					return nil, err
				}
				out.Polygons = append(out.Polygons, p)
			case ElementCircle:
				points := el.Points
				if points == 0 {
					points = defaultCirclePoints
				}
				c, err := pattern.Circle(elCenter, el.Radius, points)
				if err != nil {
					return nil, err
				}
				out.Circles = append(out.Circles, c)
			default:
				return nil, &geom.ConfigurationError{Message: "unknown mandala element kind"}
			}
		}
	}
	return out, nil
}
