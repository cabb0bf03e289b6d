package solid

import (
	"math"

	"github.com/mkale/aurelia/pkg/geom"
)

// icosaDirections returns the 12 normalized icosahedral vertex directions,
// the closest 3D analogue of the hexagonal packing directions used by the
// planar Flower of Life.
func icosaDirections() [12]geom.Vec3 {
	phi := geom.Phi()
	raw := [12]geom.Vec3{
		{Y: 1, Z: phi}, {Y: -1, Z: phi}, {Y: 1, Z: -phi}, {Y: -1, Z: -phi},
		{X: 1, Y: phi}, {X: -1, Y: phi}, {X: 1, Y: -phi}, {X: -1, Y: -phi},
		{X: phi, Z: 1}, {X: -phi, Z: 1}, {X: phi, Z: -1}, {X: -phi, Z: -1},
	}
	for i := range raw {
		raw[i] = raw[i].Normalize()
	}
	return raw
}

// sphereKey rounds a center to 1e-6 for deduplication, matching the planar
// flower's grid key.
type sphereKey struct {
	x, y, z int64
}

func keyOf(p geom.Vec3) sphereKey {
	return sphereKey{
		int64(math.Round(p.X * 1e6)),
		int64(math.Round(p.Y * 1e6)),
		int64(math.Round(p.Z * 1e6)),
	}
}

// SphereFlower builds the 3D Flower of Life: a central sphere plus layers
// of tangent spheres expanded along the 12 icosahedral directions at
// distance 2*radius per step, with rounded-coordinate deduplication.
func SphereFlower(center geom.Vec3, radius float64, layers int) ([]geom.Sphere, error) {
	if err := geom.CheckPositive("radius", radius); err != nil {
		return nil, err
	}
	if layers < 0 {
		return nil, &geom.InvalidParameterError{
			Param: "layers", Value: float64(layers), Reason: "must be non-negative",
		}
	}

	centers := []geom.Vec3{center}
	known := map[sphereKey]struct{}{keyOf(center): {}}
	dirs := icosaDirections()

	for layer := 0; layer < layers; layer++ {
		var added []geom.Vec3
		for _, p := range centers {
			for _, dir := range dirs {
				q := p.Add(dir.Scale(2 * radius))
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

	spheres := make([]geom.Sphere, len(centers))
	for i, p := range centers {
		spheres[i] = geom.Sphere{Center: p, Radius: radius}
	}
	return spheres, nil
}
