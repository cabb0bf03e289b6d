package cli

import (
	"math"
	"sort"

	"github.com/mkale/aurelia/pkg/anim"
	"github.com/mkale/aurelia/pkg/compose"
	"github.com/mkale/aurelia/pkg/fractal"
	"github.com/mkale/aurelia/pkg/geom"
	"github.com/mkale/aurelia/pkg/pattern"
	"github.com/mkale/aurelia/pkg/solid"
)

// shapeBuilder binds a figure name to its generator and the default
// parameter set the CLI starts from. Parameter names match the DSL's
// keyword names so scripts and flags read the same.
type shapeBuilder struct {
	defaults anim.Params
	build    func(p anim.Params) (*compose.Composition, error)
}

func fromCircles(circles []geom.Circle, err error) (*compose.Composition, error) {
	if err != nil {
		return nil, err
	}
	return &compose.Composition{Circles: circles}, nil
}

func fromSolid(s *geom.Solid, err error) (*compose.Composition, error) {
	if err != nil {
		return nil, err
	}
	return &compose.Composition{Solids: []*geom.Solid{s}}, nil
}

var shapeBuilders = map[string]shapeBuilder{
	"seed-of-life": {
		defaults: anim.Params{"radius": 1},
		build: func(p anim.Params) (*compose.Composition, error) {
			return fromCircles(pattern.SeedOfLife(geom.Vec2{}, p["radius"]))
		},
	},
	"flower-of-life": {
		defaults: anim.Params{"radius": 1, "layers": 2},
		build: func(p anim.Params) (*compose.Composition, error) {
			return fromCircles(pattern.FlowerOfLife(geom.Vec2{}, p["radius"], int(p["layers"])))
		},
	},
	"metatrons-cube": {
		defaults: anim.Params{"radius": 1},
		build: func(p anim.Params) (*compose.Composition, error) {
			mc, err := pattern.Metatron(geom.Vec2{}, p["radius"])
			if err != nil {
				return nil, err
			}
			return &compose.Composition{Circles: mc.Circles, Lines: mc.Lines}, nil
		},
	},
	"vesica": {
		defaults: anim.Params{"radius": 1},
		build: func(p anim.Params) (*compose.Composition, error) {
			r := p["radius"]
			v, err := pattern.Vesica(geom.Vec2{}, geom.Vec2{X: r}, r)
			if err != nil {
				return nil, err
			}
			c := &compose.Composition{Circles: []geom.Circle{v.Circle1, v.Circle2}}
			if len(v.Intersections) == 2 {
				c.Lines = []geom.Line2{{A: v.Intersections[0], B: v.Intersections[1]}}
			}
			return c, nil
		},
	},
	"golden-rectangle": {
		defaults: anim.Params{"width": 2},
		build: func(p anim.Params) (*compose.Composition, error) {
			poly, err := pattern.GoldenRectangle(geom.Vec2{}, p["width"])
			if err != nil {
				return nil, err
			}
			return &compose.Composition{Polygons: []geom.Polygon{poly}}, nil
		},
	},
	"spiral": {
		defaults: anim.Params{"start-radius": 0.1, "max-radius": 8, "turns": 3, "points-per-turn": 90},
		build: func(p anim.Params) (*compose.Composition, error) {
			pl, err := pattern.GoldenSpiral(geom.Vec2{}, p["start-radius"], p["max-radius"], p["turns"], int(p["points-per-turn"]))
			if err != nil {
				return nil, err
			}
			return &compose.Composition{Polylines: []geom.Polyline{pl}}, nil
		},
	},
	"fibonacci": {
		defaults: anim.Params{"scale": 1, "iterations": 8},
		build: func(p anim.Params) (*compose.Composition, error) {
			fs, err := pattern.Fibonacci(geom.Vec2{}, p["scale"], int(p["iterations"]))
			if err != nil {
				return nil, err
			}
			return &compose.Composition{Polylines: []geom.Polyline{fs.Spiral}}, nil
		},
	},
	"sierpinski": {
		defaults: anim.Params{"radius": 1, "depth": 4},
		build: func(p anim.Params) (*compose.Composition, error) {
			base, err := pattern.RegularPolygon(geom.Vec2{}, p["radius"], 3, math.Pi/2)
			if err != nil {
				return nil, err
			}
			tris, err := fractal.Sierpinski(geom.Triangle2{base.Vertices[0], base.Vertices[1], base.Vertices[2]}, int(p["depth"]))
			if err != nil {
				return nil, err
			}
			c := &compose.Composition{}
			for _, tr := range tris {
				c.Polygons = append(c.Polygons, geom.Polygon{Vertices: []geom.Vec2{tr[0], tr[1], tr[2]}})
			}
			return c, nil
		},
	},
	"koch": {
		defaults: anim.Params{"radius": 1, "depth": 3},
		build: func(p anim.Params) (*compose.Composition, error) {
			base, err := pattern.RegularPolygon(geom.Vec2{}, p["radius"], 3, math.Pi/2)
			if err != nil {
				return nil, err
			}
			points, err := fractal.KochSnowflake(base.Vertices, int(p["depth"]))
			if err != nil {
				return nil, err
			}
			return &compose.Composition{Polygons: []geom.Polygon{{Vertices: points}}}, nil
		},
	},
	"tree": {
		defaults: anim.Params{
			"length": 1, "depth": 6, "angle": math.Pi / 2,
			"branch-angle": math.Pi / 6, "scale-factor": 0.7,
		},
		build: func(p anim.Params) (*compose.Composition, error) {
			lines, err := fractal.Tree(geom.Vec2{}, p["angle"], p["length"], int(p["depth"]), p["branch-angle"], p["scale-factor"])
			if err != nil {
				return nil, err
			}
			return &compose.Composition{Lines: lines}, nil
		},
	},
	"dragon": {
		defaults: anim.Params{"iterations": 12},
		build: func(p anim.Params) (*compose.Composition, error) {
			pl, err := fractal.DragonCurve(int(p["iterations"]))
			if err != nil {
				return nil, err
			}
			return &compose.Composition{Polylines: []geom.Polyline{pl}}, nil
		},
	},
	"tetrahedron": {
		defaults: anim.Params{"radius": 1},
		build: func(p anim.Params) (*compose.Composition, error) {
			return fromSolid(solid.Tetrahedron(geom.Vec3{}, p["radius"]))
		},
	},
	"cube": {
		defaults: anim.Params{"radius": 1},
		build: func(p anim.Params) (*compose.Composition, error) {
			return fromSolid(solid.Cube(geom.Vec3{}, p["radius"]))
		},
	},
	"octahedron": {
		defaults: anim.Params{"radius": 1},
		build: func(p anim.Params) (*compose.Composition, error) {
			return fromSolid(solid.Octahedron(geom.Vec3{}, p["radius"]))
		},
	},
	"icosahedron": {
		defaults: anim.Params{"radius": 1},
		build: func(p anim.Params) (*compose.Composition, error) {
			return fromSolid(solid.Icosahedron(geom.Vec3{}, p["radius"]))
		},
	},
	"dodecahedron": {
		defaults: anim.Params{"radius": 1},
		build: func(p anim.Params) (*compose.Composition, error) {
			return fromSolid(solid.Dodecahedron(geom.Vec3{}, p["radius"]))
		},
	},
	"cuboctahedron": {
		defaults: anim.Params{"radius": 1},
		build: func(p anim.Params) (*compose.Composition, error) {
			return fromSolid(solid.Cuboctahedron(geom.Vec3{}, p["radius"]))
		},
	},
	"merkaba": {
		defaults: anim.Params{"radius": 1, "rotation": 0},
		build: func(p anim.Params) (*compose.Composition, error) {
			m, err := solid.NewMerkaba(geom.Vec3{}, p["radius"], p["rotation"])
			if err != nil {
				return nil, err
			}
			return &compose.Composition{Solids: []*geom.Solid{m.Tetrahedron1, m.Tetrahedron2}}, nil
		},
	},
	"torus": {
		defaults: anim.Params{
			"major-radius": 2, "minor-radius": 0.6,
			"major-segments": 32, "minor-segments": 16,
		},
		build: func(p anim.Params) (*compose.Composition, error) {
			return fromSolid(solid.Torus(geom.Vec3{}, p["major-radius"], p["minor-radius"],
				int(p["major-segments"]), int(p["minor-segments"])))
		},
	},
	"sphere-flower": {
		defaults: anim.Params{"radius": 1, "layers": 1},
		build: func(p anim.Params) (*compose.Composition, error) {
			spheres, err := solid.SphereFlower(geom.Vec3{}, p["radius"], int(p["layers"]))
			if err != nil {
				return nil, err
			}
			return &compose.Composition{Spheres: spheres}, nil
		},
	},
	"mandala": {
		defaults: anim.Params{
			"segments": 8, "base-radius": 3,
			"element-radius": 0.6, "sides": 6, "radial-offset": 0.8,
		},
		build: func(p anim.Params) (*compose.Composition, error) {
			elems := []compose.Element{{
				Kind:         compose.ElementPolygon,
				Sides:        int(p["sides"]),
				Radius:       p["element-radius"],
				RadialOffset: p["radial-offset"],
			}}
			return compose.Mandala(geom.Vec2{}, int(p["segments"]), elems, p["base-radius"])
		},
	},
	"constellation": {
		defaults: anim.Params{"arrange-radius": 4, "shape-radius": 1},
		build: func(p anim.Params) (*compose.Composition, error) {
			names := []string{"tetrahedron", "cube", "octahedron", "icosahedron", "dodecahedron"}
			return compose.Constellation(geom.Vec3{}, p["arrange-radius"], p["shape-radius"], names)
		},
	},
	"nested-platonics": {
		defaults: anim.Params{"radius": 3},
		build: func(p anim.Params) (*compose.Composition, error) {
			root, err := compose.NestedPlatonics(geom.Vec3{}, p["radius"])
			if err != nil {
				return nil, err
			}
			return &compose.Composition{Solids: root.Flatten()}, nil
		},
	},
	"merkaba-in-cuboctahedron": {
		defaults: anim.Params{"radius": 2},
		build: func(p anim.Params) (*compose.Composition, error) {
			root, err := compose.MerkabaInCuboctahedron(geom.Vec3{}, p["radius"])
			if err != nil {
				return nil, err
			}
			return &compose.Composition{Solids: root.Flatten()}, nil
		},
	},
}

// shapeNames returns every buildable figure name, sorted.
func shapeNames() []string {
	names := make([]string, 0, len(shapeBuilders))
	for name := range shapeBuilders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// buildShape generates the named figure with defaults overlaid by
// overrides. Unknown names fail with UnsupportedShapeError.
func buildShape(name string, overrides anim.Params) (*compose.Composition, error) {
	b, ok := shapeBuilders[name]
	if !ok {
		return nil, &geom.UnsupportedShapeError{Name: name}
	}
	return b.build(mergeParams(b.defaults, overrides))
}

// mergeParams overlays overrides on defaults without mutating either.
func mergeParams(defaults, overrides anim.Params) anim.Params {
	merged := make(anim.Params, len(defaults)+len(overrides))
	for k, v := range defaults {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}
