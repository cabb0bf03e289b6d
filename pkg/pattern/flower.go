package pattern

import (
	"math"

	"github.com/mkale/aurelia/pkg/geom"
)

// circleResolution is the sample count used for circles inside composite
// patterns. Callers wanting a different resolution sample circles directly.
const circleResolution = 100

// hexDirections returns the six unit directions of the hexagonal packing,
// at 60 degree increments starting from angle 0.
func hexDirections() [6]geom.Vec2 {
	var dirs [6]geom.Vec2
	for i := range dirs {
		angle := float64(i) * math.Pi / 3
		dirs[i] = geom.Vec2{X: math.Cos(angle), Y: math.Sin(angle)}
	}
	return dirs
}

// gridKey rounds a point to 1e-6 so that centers reached along different
// hexagonal paths collapse to a single key.
type gridKey struct {
	x, y int64
}

func keyOf(p geom.Vec2) gridKey {
	return gridKey{int64(math.Round(p.X * 1e6)), int64(math.Round(p.Y * 1e6))}
}

// SeedOfLife returns the seven-circle seed: one central circle plus six
// circles of the same radius centered on its boundary at 60 degree steps.
func SeedOfLife(center geom.Vec2, radius float64) ([]geom.Circle, error) {
	if err := geom.CheckPositive("radius", radius); err != nil {
		return nil, err
	}

	circles := make([]geom.Circle, 0, 7)
	c, err := Circle(center, radius, circleResolution)
	if err != nil {
		return nil, err
	}
	circles = append(circles, c)
	for _, dir := range hexDirections() {
		c, err := Circle(center.Add(dir.Scale(radius)), radius, circleResolution)
		if err != nil {
			return nil, err
		}
		circles = append(circles, c)
	}
	return circles, nil
}

// FlowerOfLife builds the hexagonally packed flower pattern. Layer 0 is the
// single central circle; each layer expands every known center by the six
// hexagonal directions at distance radius, deduplicating positions. The
// ring sizes are therefore 1, 6, 12, 18, ... and the whole pattern is
// symmetric under 60 degree rotation.
func FlowerOfLife(center geom.Vec2, radius float64, layers int) ([]geom.Circle, error) {
	if err := geom.CheckPositive("radius", radius); err != nil {
		return nil, err
	}
	if layers < 0 {
		return nil, &geom.InvalidParameterError{
			Param: "layers", Value: float64(layers), Reason: "must be non-negative",
		}
	}

	centers := []geom.Vec2{center}
	known := map[gridKey]struct{}{keyOf(center): {}}
	dirs := hexDirections()

	for layer := 0; layer < layers; layer++ {
		var added []geom.Vec2
		for _, p := range centers {
			for _, dir := range dirs {
				q := p.Add(dir.Scale(radius))
				k := keyOf(q)
				if _, ok := known[k]; ok {
					continue
				}
				known[k] = struct{}{}
				added = append(added, q)
			}
		}
		centers = append(centers, added...)
	}

	circles := make([]geom.Circle, 0, len(centers))
	for _, p := range centers {
		c, err := Circle(p, radius, circleResolution)
		if err != nil {
			return nil, err
		}
		circles = append(circles, c)
	}
	return circles, nil
}

// FruitOfLife returns the 13 centers underlying Metatron's Cube: the
// pattern center, an inner hexagonal ring at distance radius, and an outer
// ring at distance 2*radius, both at 60 degree steps starting from angle 0.
func FruitOfLife(center geom.Vec2, radius float64) ([]geom.Vec2, error) {
	if err := geom.CheckPositive("radius", radius); err != nil {
		return nil, err
	}

	centers := make([]geom.Vec2, 0, 13)
	centers = append(centers, center)
	for _, dir := range hexDirections() {
		centers = append(centers, center.Add(dir.Scale(radius)))
	}
	for _, dir := range hexDirections() {
		centers = append(centers, center.Add(dir.Scale(2*radius)))
	}
	return centers, nil
}

// MetatronsCube is the Fruit of Life with every pair of the 13 centers
// joined by a straight line.
type MetatronsCube struct {
	Circles  []geom.Circle `json:"circles"`
	Vertices []geom.Vec2  `json:"vertices"`
	Lines    []geom.Line2 `json:"lines"`
}

// Metatron constructs Metatron's Cube: 13 circles on the Fruit of Life
// centers and the C(13,2) = 78 lines connecting every pair of centers.
func Metatron(center geom.Vec2, radius float64) (*MetatronsCube, error) {
	centers, err := FruitOfLife(center, radius)
	if err != nil {
		return nil, err
	}

	circles := make([]geom.Circle, 0, len(centers))
	for _, p := range centers {
		c, err := Circle(p, radius, circleResolution)
		if err != nil {
			return nil, err
		}
		circles = append(circles, c)
	}

	var lines []geom.Line2
	for i := 0; i < len(centers); i++ {
		for j := i + 1; j < len(centers); j++ {
			lines = append(lines, geom.Line2{A: centers[i], B: centers[j]})
		}
	}

	return &MetatronsCube{Circles: circles, Vertices: centers, Lines: lines}, nil
}
