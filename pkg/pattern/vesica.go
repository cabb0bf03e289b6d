package pattern

import (
	"math"

	"github.com/mkale/aurelia/pkg/geom"
)

// IntersectCircles returns the intersection points of two circles. The
// result has two points for a proper crossing, one for tangency, and is
// empty when the circles are disjoint or nested.
func IntersectCircles(c1 geom.Vec2, r1 float64, c2 geom.Vec2, r2 float64) []geom.Vec2 {
	d := c2.Sub(c1).Length()
	if d == 0 || d > r1+r2 || d < math.Abs(r1-r2) {
		return nil
	}

	a := (r1*r1 - r2*r2 + d*d) / (2 * d)
	h2 := r1*r1 - a*a
	if h2 < 0 {
		h2 = 0
	}
	h := math.Sqrt(h2)

	mid := c1.Add(c2.Sub(c1).Scale(a / d))
	if h == 0 {
		return []geom.Vec2{mid}
	}

	// Perpendicular offset from the chord midpoint.
	perp := geom.Vec2{
		X: h * (c2.Y - c1.Y) / d,
		Y: -h * (c2.X - c1.X) / d,
	}
	return []geom.Vec2{mid.Add(perp), mid.Sub(perp)}
}

// VesicaPiscis is the lens formed by two equal circles whose centers lie on
// each other's boundary (or at a configurable separation below 2r).
type VesicaPiscis struct {
	Circle1       geom.Circle `json:"circle1"`
	Circle2       geom.Circle `json:"circle2"`
	Intersections []geom.Vec2 `json:"intersections"`
}

// Vesica constructs a Vesica Piscis from two equal-radius circles. The
// separation between the centers must be positive and below 2*radius so the
// lens exists; anything else is a DegenerateGeometryError, not an empty
// result.
func Vesica(center1, center2 geom.Vec2, radius float64) (*VesicaPiscis, error) {
	if err := geom.CheckPositive("radius", radius); err != nil {
		return nil, err
	}

	sep := center2.Sub(center1).Length()
	if sep == 0 {
		return nil, &geom.DegenerateGeometryError{Message: "vesica circles are coincident"}
	}
	if sep >= 2*radius {
		return nil, &geom.DegenerateGeometryError{Message: "vesica circles do not intersect: separation >= 2*radius"}
	}

	c1, err := Circle(center1, radius, circleResolution)
	if err != nil {
		return nil, err
	}
	c2, err := Circle(center2, radius, circleResolution)
	if err != nil {
		return nil, err
	}

	return &VesicaPiscis{
		Circle1:       c1,
		Circle2:       c2,
		Intersections: IntersectCircles(center1, radius, center2, radius),
	}, nil
}
