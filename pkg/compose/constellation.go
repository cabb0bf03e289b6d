package compose

import (
	"math"
	"sort"

	"github.com/mkale/aurelia/pkg/geom"
	"github.com/mkale/aurelia/pkg/solid"
)

// SolidGenerator produces one or more solids for a shape name. The Merkaba
// contributes both of its tetrahedra; every other registered shape yields
// a single solid.
type SolidGenerator func(center geom.Vec3, radius float64) ([]*geom.Solid, error)

func single(gen func(geom.Vec3, float64) (*geom.Solid, error)) SolidGenerator {
	return func(center geom.Vec3, radius float64) ([]*geom.Solid, error) {
		s, err := gen(center, radius)
		if err != nil {
			return nil, err
		}
		return []*geom.Solid{s}, nil
	}
}

// shapeRegistry is the closed enumeration of constellation shape names,
// resolved at startup. Name lookups that miss fail with
// UnsupportedShapeError instead of silently skipping.
var shapeRegistry = map[string]SolidGenerator{
	"tetrahedron":   single(solid.Tetrahedron),
	"cube":          single(solid.Cube),
	"hexahedron":    single(solid.Cube),
	"octahedron":    single(solid.Octahedron),
	"icosahedron":   single(solid.Icosahedron),
	"dodecahedron":  single(solid.Dodecahedron),
	"cuboctahedron": single(solid.Cuboctahedron),
	"merkaba": func(center geom.Vec3, radius float64) ([]*geom.Solid, error) {
		m, err := solid.NewMerkaba(center, radius, solid.CuboctahedronAlignment)
		if err != nil {
			return nil, err
		}
		return []*geom.Solid{m.Tetrahedron1, m.Tetrahedron2}, nil
	},
}

// RegisteredShapes returns the sorted shape names the constellation
// composer understands.
func RegisteredShapes() []string {
	names := make([]string, 0, len(shapeRegistry))
	for name := range shapeRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupShape resolves a shape name against the registry.
func LookupShape(name string) (SolidGenerator, error) {
	gen, ok := shapeRegistry[name]
	if !ok {
		return nil, &geom.UnsupportedShapeError{Name: name}
	}
	return gen, nil
}

// Constellation places one solid per shape name at evenly spaced positions
// on a circle of arrangeRadius in the XY plane around center. All names
// are resolved before any generation, so an unknown name fails without
// partial work.
func Constellation(center geom.Vec3, arrangeRadius, shapeRadius float64, names []string) (*Composition, error) {
	if err := geom.CheckPositive("arrangeRadius", arrangeRadius); err != nil {
		return nil, err
	}
	if err := geom.CheckPositive("shapeRadius", shapeRadius); err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, &geom.ConfigurationError{Message: "constellation requires at least one shape name"}
	}

	gens := make([]SolidGenerator, len(names))
	for i, name := range names {
		gen, err := LookupShape(name)
		if err != nil {
			return nil, err
		}
		gens[i] = gen
	}

	out := &Composition{}
	step := 2 * math.Pi / float64(len(names))
	for i, gen := range gens {
		angle := float64(i) * step
		pos := geom.Vec3{
			X: center.X + arrangeRadius*math.Cos(angle),
			Y: center.Y + arrangeRadius*math.Sin(angle),
			Z: center.Z,
		}
		solids, err := gen(pos, shapeRadius)
		if err != nil {
			return nil, err
		}
		out.Solids = append(out.Solids, solids...)
	}
	return out, nil
}
