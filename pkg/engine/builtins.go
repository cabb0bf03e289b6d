package engine

import (
	"fmt"
	"math"
	"strings"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/mkale/aurelia/pkg/compose"
	"github.com/mkale/aurelia/pkg/fractal"
	"github.com/mkale/aurelia/pkg/geom"
	"github.com/mkale/aurelia/pkg/pattern"
	"github.com/mkale/aurelia/pkg/solid"
)

// ---------------------------------------------------------------------------
// Source preprocessing
// ---------------------------------------------------------------------------

// preprocessSource transforms Aurelia Lisp source before handing it to
// zygomys. It performs two transformations:
//
//  1. Keyword conversion: :keyword -> "__kw_keyword" (string literal)
//     This avoids registering keyword symbols as globals, which would
//     conflict with user-defined variables of the same name.
//
//  2. Kebab-case to underscore: flower-of-life -> flower_of_life
//     zygomys does not allow hyphens in identifiers (it interprets them
//     as the subtraction operator).
//
// Both transformations respect string literal boundaries and line comments.
func preprocessSource(source string) string {
	result := make([]byte, 0, len(source)+len(source)/4)
	b := []byte(source)
	i := 0
	for i < len(b) {
		// Skip double-quoted string literals.
		if b[i] == '"' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '"' {
				if b[i] == '\\' && i+1 < len(b) {
					result = append(result, b[i], b[i+1])
					i += 2
					continue
				}
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Skip backtick-quoted string literals.
		if b[i] == '`' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '`' {
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Convert ; line comments to // comments for zygomys.
		if b[i] == ';' {
			result = append(result, '/', '/')
			i++
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Transform :keyword to "__kw_keyword".
		if b[i] == ':' && i+1 < len(b) {
			// Preserve := (assignment operator).
			if b[i+1] == '=' {
				result = append(result, b[i], b[i+1])
				i += 2
				continue
			}
			if isLetter(b[i+1]) {
				j := i + 1
				for j < len(b) && isKWChar(b[j]) {
					j++
				}
				kwName := string(b[i+1 : j])
				result = append(result, '"')
				result = append(result, []byte(kwPrefix)...)
				result = append(result, []byte(kwName)...)
				result = append(result, '"')
				i = j
				continue
			}
		}
		// Transform kebab-case identifiers: alpha-alpha -> alpha_alpha.
		// Only when the hyphen sits between identifier characters.
		if b[i] == '-' && i > 0 && i+1 < len(b) &&
			isIdentChar(b[i-1]) && isIdentStartChar(b[i+1]) {
			result = append(result, '_')
			i++
			continue
		}
		result = append(result, b[i])
		i++
	}
	return string(result)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

func isIdentStartChar(c byte) bool {
	return isLetter(c)
}

// ---------------------------------------------------------------------------
// Custom Sexp types
// ---------------------------------------------------------------------------

// sexpComposition wraps a *compose.Composition so geometry can flow
// between builtins. Every shape builtin returns one; combine and emit
// consume them.
type sexpComposition struct {
	comp *compose.Composition
}

func (c *sexpComposition) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(composition %d)", c.comp.Count())
}
func (c *sexpComposition) Type() *zygo.RegisteredType { return nil }

// sexpVec2 wraps a geom.Vec2.
type sexpVec2 struct {
	vec geom.Vec2
}

func (v *sexpVec2) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(vec2 %.2f %.2f)", v.vec.X, v.vec.Y)
}
func (v *sexpVec2) Type() *zygo.RegisteredType { return nil }

// sexpVec3 wraps a geom.Vec3.
type sexpVec3 struct {
	vec geom.Vec3
}

func (v *sexpVec3) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(vec3 %.2f %.2f %.2f)", v.vec.X, v.vec.Y, v.vec.Z)
}
func (v *sexpVec3) Type() *zygo.RegisteredType { return nil }

// sexpElement wraps a mandala element definition.
type sexpElement struct {
	el compose.Element
}

func (e *sexpElement) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(element :radius %.2f)", e.el.Radius)
}
func (e *sexpElement) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// isKW checks if a Sexp is a preprocessed keyword string.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], true
	}
	return "", false
}

// kwArgs holds the result of parsing a mixed positional+keyword argument
// list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	i := 0
	for i < len(args) {
		name, ok := isKW(args[i])
		if ok {
			if i+1 < len(args) {
				result.kw[name] = args[i+1]
				i += 2
			} else {
				result.kw[name] = zygo.SexpNull
				i++
			}
		} else {
			result.positional = append(result.positional, args[i])
			i++
		}
	}
	return result
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

// sexpListToSlice converts a SexpPair (Lisp list) or SexpArray to a Go
// slice.
func sexpListToSlice(s zygo.Sexp) ([]zygo.Sexp, error) {
	switch v := s.(type) {
	case *zygo.SexpPair:
		return zygo.ListToArray(v)
	case *zygo.SexpArray:
		return v.Val, nil
	case *zygo.SexpSentinel:
		if v == zygo.SexpNull {
			return nil, nil
		}
	}
	return nil, fmt.Errorf("expected list or array, got %T", s)
}

// float reads an optional numeric keyword, falling back to def.
func (pa kwArgs) float(fn, name string, def float64) (float64, error) {
	v, ok := pa.kw[name]
	if !ok {
		return def, nil
	}
	f, err := toFloat64(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %s: %w", fn, name, err)
	}
	return f, nil
}

// requireFloat reads a mandatory numeric keyword.
func (pa kwArgs) requireFloat(fn, name string) (float64, error) {
	v, ok := pa.kw[name]
	if !ok {
		return 0, fmt.Errorf("%s: missing required argument :%s", fn, name)
	}
	f, err := toFloat64(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %s: %w", fn, name, err)
	}
	return f, nil
}

// integer reads an optional integer keyword, falling back to def.
func (pa kwArgs) integer(fn, name string, def int) (int, error) {
	f, err := pa.float(fn, name, float64(def))
	if err != nil {
		return 0, err
	}
	return int(f), nil
}

// vec2 reads an optional vec2 keyword, falling back to def.
func (pa kwArgs) vec2(fn, name string, def geom.Vec2) (geom.Vec2, error) {
	v, ok := pa.kw[name]
	if !ok {
		return def, nil
	}
	w, ok := v.(*sexpVec2)
	if !ok {
		return geom.Vec2{}, fmt.Errorf("%s: %s: expected vec2, got %T (%s)", fn, name, v, v.SexpString(nil))
	}
	return w.vec, nil
}

// vec3 reads an optional vec3 keyword, falling back to def.
func (pa kwArgs) vec3(fn, name string, def geom.Vec3) (geom.Vec3, error) {
	v, ok := pa.kw[name]
	if !ok {
		return def, nil
	}
	w, ok := v.(*sexpVec3)
	if !ok {
		return geom.Vec3{}, fmt.Errorf("%s: %s: expected vec3, got %T (%s)", fn, name, v, v.SexpString(nil))
	}
	return w.vec, nil
}

// str reads an optional string keyword, falling back to def.
func (pa kwArgs) str(fn, name, def string) (string, error) {
	v, ok := pa.kw[name]
	if !ok {
		return def, nil
	}
	s, err := toString(v)
	if err != nil {
		return "", fmt.Errorf("%s: %s: %w", fn, name, err)
	}
	return s, nil
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

func wrapComp(c *compose.Composition) zygo.Sexp {
	return &sexpComposition{comp: c}
}

func circlesComp(circles []geom.Circle) zygo.Sexp {
	return wrapComp(&compose.Composition{Circles: circles})
}

func solidComp(s *geom.Solid, err error) (zygo.Sexp, error) {
	if err != nil {
		return zygo.SexpNull, err
	}
	return wrapComp(&compose.Composition{Solids: []*geom.Solid{s}}), nil
}

// registerBuiltins installs the Aurelia DSL builtins into a zygomys
// environment. Shape builtins build a composition value; (emit ...) folds
// compositions into out, which Evaluate returns when the script finishes.
//
// Source must be preprocessed with preprocessSource() first so :keyword
// tokens arrive as recognizable string literals and hyphenated names
// match their registered underscore forms.
func registerBuiltins(env *zygo.Zlisp, out *compose.Composition) {

	// -----------------------------------------------------------------------
	// (vec2 1 2) / (vec3 1 2 3)
	// -----------------------------------------------------------------------
	env.AddFunction("vec2", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("vec2 requires exactly 2 arguments, got %d", len(args))
		}
		x, err := toFloat64(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("vec2: x: %w", err)
		}
		y, err := toFloat64(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("vec2: y: %w", err)
		}
		return &sexpVec2{vec: geom.Vec2{X: x, Y: y}}, nil
	})

	env.AddFunction("vec3", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 3 {
			return zygo.SexpNull, fmt.Errorf("vec3 requires exactly 3 arguments, got %d", len(args))
		}
		x, err := toFloat64(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("vec3: x: %w", err)
		}
		y, err := toFloat64(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("vec3: y: %w", err)
		}
		z, err := toFloat64(args[2])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("vec3: z: %w", err)
		}
		return &sexpVec3{vec: geom.Vec3{X: x, Y: y, Z: z}}, nil
	})

	// -----------------------------------------------------------------------
	// (circle :center (vec2 0 0) :radius 1 :points 64)
	// -----------------------------------------------------------------------
	env.AddFunction("circle", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		center, err := pa.vec2("circle", "center", geom.Vec2{})
		if err != nil {
			return zygo.SexpNull, err
		}
		radius, err := pa.requireFloat("circle", "radius")
		if err != nil {
			return zygo.SexpNull, err
		}
		points, err := pa.integer("circle", "points", 100)
		if err != nil {
			return zygo.SexpNull, err
		}
		c, err := pattern.Circle(center, radius, points)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("circle: %w", err)
		}
		return circlesComp([]geom.Circle{c}), nil
	})

	// -----------------------------------------------------------------------
	// (polygon :center (vec2 0 0) :radius 1 :sides 6 :rotation 0)
	// -----------------------------------------------------------------------
	env.AddFunction("polygon", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		center, err := pa.vec2("polygon", "center", geom.Vec2{})
		if err != nil {
			return zygo.SexpNull, err
		}
		radius, err := pa.requireFloat("polygon", "radius")
		if err != nil {
			return zygo.SexpNull, err
		}
		sides, err := pa.integer("polygon", "sides", 6)
		if err != nil {
			return zygo.SexpNull, err
		}
		rotation, err := pa.float("polygon", "rotation", 0)
		if err != nil {
			return zygo.SexpNull, err
		}
		p, err := pattern.RegularPolygon(center, radius, sides, rotation)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("polygon: %w", err)
		}
		return wrapComp(&compose.Composition{Polygons: []geom.Polygon{p}}), nil
	})

	// -----------------------------------------------------------------------
	// (seed-of-life :radius 1) / (flower-of-life :radius 1 :layers 2)
	// -----------------------------------------------------------------------
	env.AddFunction("seed_of_life", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		center, err := pa.vec2("seed-of-life", "center", geom.Vec2{})
		if err != nil {
			return zygo.SexpNull, err
		}
		radius, err := pa.requireFloat("seed-of-life", "radius")
		if err != nil {
			return zygo.SexpNull, err
		}
		circles, err := pattern.SeedOfLife(center, radius)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("seed-of-life: %w", err)
		}
		return circlesComp(circles), nil
	})

	env.AddFunction("flower_of_life", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		center, err := pa.vec2("flower-of-life", "center", geom.Vec2{})
		if err != nil {
			return zygo.SexpNull, err
		}
		radius, err := pa.requireFloat("flower-of-life", "radius")
		if err != nil {
			return zygo.SexpNull, err
		}
		layers, err := pa.integer("flower-of-life", "layers", 1)
		if err != nil {
			return zygo.SexpNull, err
		}
		circles, err := pattern.FlowerOfLife(center, radius, layers)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("flower-of-life: %w", err)
		}
		return circlesComp(circles), nil
	})

	// -----------------------------------------------------------------------
	// (metatrons-cube :radius 1)
	// -----------------------------------------------------------------------
	env.AddFunction("metatrons_cube", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		center, err := pa.vec2("metatrons-cube", "center", geom.Vec2{})
		if err != nil {
			return zygo.SexpNull, err
		}
		radius, err := pa.requireFloat("metatrons-cube", "radius")
		if err != nil {
			return zygo.SexpNull, err
		}
		mc, err := pattern.Metatron(center, radius)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("metatrons-cube: %w", err)
		}
		return wrapComp(&compose.Composition{Circles: mc.Circles, Lines: mc.Lines}), nil
	})

	// -----------------------------------------------------------------------
	// (vesica :center1 (vec2 0 0) :center2 (vec2 1 0) :radius 1)
	// -----------------------------------------------------------------------
	env.AddFunction("vesica", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		c1, err := pa.vec2("vesica", "center1", geom.Vec2{})
		if err != nil {
			return zygo.SexpNull, err
		}
		radius, err := pa.requireFloat("vesica", "radius")
		if err != nil {
			return zygo.SexpNull, err
		}
		c2, err := pa.vec2("vesica", "center2", geom.Vec2{X: c1.X + radius, Y: c1.Y})
		if err != nil {
			return zygo.SexpNull, err
		}
		v, err := pattern.Vesica(c1, c2, radius)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("vesica: %w", err)
		}
		comp := &compose.Composition{Circles: []geom.Circle{v.Circle1, v.Circle2}}
		if len(v.Intersections) == 2 {
			comp.Lines = []geom.Line2{{A: v.Intersections[0], B: v.Intersections[1]}}
		}
		return wrapComp(comp), nil
	})

	// -----------------------------------------------------------------------
	// (spiral :start-radius 0.1 :max-radius 10 :turns 3 :points-per-turn 90)
	// -----------------------------------------------------------------------
	env.AddFunction("spiral", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		center, err := pa.vec2("spiral", "center", geom.Vec2{})
		if err != nil {
			return zygo.SexpNull, err
		}
		startRadius, err := pa.requireFloat("spiral", "start-radius")
		if err != nil {
			return zygo.SexpNull, err
		}
		maxRadius, err := pa.requireFloat("spiral", "max-radius")
		if err != nil {
			return zygo.SexpNull, err
		}
		turns, err := pa.float("spiral", "turns", 3)
		if err != nil {
			return zygo.SexpNull, err
		}
		perTurn, err := pa.integer("spiral", "points-per-turn", 90)
		if err != nil {
			return zygo.SexpNull, err
		}
		pl, err := pattern.GoldenSpiral(center, startRadius, maxRadius, turns, perTurn)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("spiral: %w", err)
		}
		return wrapComp(&compose.Composition{Polylines: []geom.Polyline{pl}}), nil
	})

	// -----------------------------------------------------------------------
	// (fibonacci :scale 1 :iterations 8)
	// -----------------------------------------------------------------------
	env.AddFunction("fibonacci", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		center, err := pa.vec2("fibonacci", "center", geom.Vec2{})
		if err != nil {
			return zygo.SexpNull, err
		}
		scale, err := pa.float("fibonacci", "scale", 1)
		if err != nil {
			return zygo.SexpNull, err
		}
		iterations, err := pa.integer("fibonacci", "iterations", 8)
		if err != nil {
			return zygo.SexpNull, err
		}
		fs, err := pattern.Fibonacci(center, scale, iterations)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("fibonacci: %w", err)
		}
		return wrapComp(&compose.Composition{Polylines: []geom.Polyline{fs.Spiral}}), nil
	})

	// -----------------------------------------------------------------------
	// (sierpinski :center (vec2 0 0) :radius 1 :depth 3)
	// -----------------------------------------------------------------------
	env.AddFunction("sierpinski", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		center, err := pa.vec2("sierpinski", "center", geom.Vec2{})
		if err != nil {
			return zygo.SexpNull, err
		}
		radius, err := pa.requireFloat("sierpinski", "radius")
		if err != nil {
			return zygo.SexpNull, err
		}
		depth, err := pa.integer("sierpinski", "depth", 3)
		if err != nil {
			return zygo.SexpNull, err
		}
		base, err := pattern.RegularPolygon(center, radius, 3, math.Pi/2)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("sierpinski: %w", err)
		}
		tri := geom.Triangle2{base.Vertices[0], base.Vertices[1], base.Vertices[2]}
		tris, err := fractal.Sierpinski(tri, depth)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("sierpinski: %w", err)
		}
		comp := &compose.Composition{}
		for _, tr := range tris {
			comp.Polygons = append(comp.Polygons, geom.Polygon{Vertices: []geom.Vec2{tr[0], tr[1], tr[2]}})
		}
		return wrapComp(comp), nil
	})

	// -----------------------------------------------------------------------
	// (koch :center (vec2 0 0) :radius 1 :depth 3)
	// -----------------------------------------------------------------------
	env.AddFunction("koch", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		center, err := pa.vec2("koch", "center", geom.Vec2{})
		if err != nil {
			return zygo.SexpNull, err
		}
		radius, err := pa.requireFloat("koch", "radius")
		if err != nil {
			return zygo.SexpNull, err
		}
		depth, err := pa.integer("koch", "depth", 3)
		if err != nil {
			return zygo.SexpNull, err
		}
		base, err := pattern.RegularPolygon(center, radius, 3, math.Pi/2)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("koch: %w", err)
		}
		points, err := fractal.KochSnowflake(base.Vertices, depth)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("koch: %w", err)
		}
		return wrapComp(&compose.Composition{Polygons: []geom.Polygon{{Vertices: points}}}), nil
	})

	// -----------------------------------------------------------------------
	// (tree :start (vec2 0 0) :angle 1.57 :length 1 :depth 5
	//       :branch-angle 0.5 :scale-factor 0.7)
	// -----------------------------------------------------------------------
	env.AddFunction("tree", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		start, err := pa.vec2("tree", "start", geom.Vec2{})
		if err != nil {
			return zygo.SexpNull, err
		}
		angle, err := pa.float("tree", "angle", math.Pi/2)
		if err != nil {
			return zygo.SexpNull, err
		}
		length, err := pa.requireFloat("tree", "length")
		if err != nil {
			return zygo.SexpNull, err
		}
		depth, err := pa.integer("tree", "depth", 5)
		if err != nil {
			return zygo.SexpNull, err
		}
		branchAngle, err := pa.float("tree", "branch-angle", math.Pi/6)
		if err != nil {
			return zygo.SexpNull, err
		}
		scaleFactor, err := pa.float("tree", "scale-factor", 0.7)
		if err != nil {
			return zygo.SexpNull, err
		}
		lines, err := fractal.Tree(start, angle, length, depth, branchAngle, scaleFactor)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("tree: %w", err)
		}
		return wrapComp(&compose.Composition{Lines: lines}), nil
	})

	// -----------------------------------------------------------------------
	// (dragon :iterations 10)
	// -----------------------------------------------------------------------
	env.AddFunction("dragon", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		iterations, err := pa.integer("dragon", "iterations", 10)
		if err != nil {
			return zygo.SexpNull, err
		}
		pl, err := fractal.DragonCurve(iterations)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("dragon: %w", err)
		}
		return wrapComp(&compose.Composition{Polylines: []geom.Polyline{pl}}), nil
	})

	// -----------------------------------------------------------------------
	// Platonic solids, merkaba, cuboctahedron, torus, sphere-flower
	// -----------------------------------------------------------------------
	solids := map[string]func(geom.Vec3, float64) (*geom.Solid, error){
		"tetrahedron":   solid.Tetrahedron,
		"cube":          solid.Cube,
		"octahedron":    solid.Octahedron,
		"icosahedron":   solid.Icosahedron,
		"dodecahedron":  solid.Dodecahedron,
		"cuboctahedron": solid.Cuboctahedron,
	}
	for fname, gen := range solids {
		fname, gen := fname, gen
		env.AddFunction(fname, func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			pa := parseArgs(args)
			center, err := pa.vec3(fname, "center", geom.Vec3{})
			if err != nil {
				return zygo.SexpNull, err
			}
			radius, err := pa.requireFloat(fname, "radius")
			if err != nil {
				return zygo.SexpNull, err
			}
			s, err := gen(center, radius)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: %w", fname, err)
			}
			return solidComp(s, nil)
		})
	}

	env.AddFunction("merkaba", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		center, err := pa.vec3("merkaba", "center", geom.Vec3{})
		if err != nil {
			return zygo.SexpNull, err
		}
		radius, err := pa.requireFloat("merkaba", "radius")
		if err != nil {
			return zygo.SexpNull, err
		}
		rotation, err := pa.float("merkaba", "rotation", 0)
		if err != nil {
			return zygo.SexpNull, err
		}
		m, err := solid.NewMerkaba(center, radius, rotation)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("merkaba: %w", err)
		}
		return wrapComp(&compose.Composition{Solids: []*geom.Solid{m.Tetrahedron1, m.Tetrahedron2}}), nil
	})

	env.AddFunction("torus", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		center, err := pa.vec3("torus", "center", geom.Vec3{})
		if err != nil {
			return zygo.SexpNull, err
		}
		major, err := pa.requireFloat("torus", "major-radius")
		if err != nil {
			return zygo.SexpNull, err
		}
		minor, err := pa.requireFloat("torus", "minor-radius")
		if err != nil {
			return zygo.SexpNull, err
		}
		majorSeg, err := pa.integer("torus", "major-segments", 32)
		if err != nil {
			return zygo.SexpNull, err
		}
		minorSeg, err := pa.integer("torus", "minor-segments", 16)
		if err != nil {
			return zygo.SexpNull, err
		}
		s, err := solid.Torus(center, major, minor, majorSeg, minorSeg)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("torus: %w", err)
		}
		return solidComp(s, nil)
	})

	env.AddFunction("sphere_flower", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		center, err := pa.vec3("sphere-flower", "center", geom.Vec3{})
		if err != nil {
			return zygo.SexpNull, err
		}
		radius, err := pa.requireFloat("sphere-flower", "radius")
		if err != nil {
			return zygo.SexpNull, err
		}
		layers, err := pa.integer("sphere-flower", "layers", 1)
		if err != nil {
			return zygo.SexpNull, err
		}
		spheres, err := solid.SphereFlower(center, radius, layers)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("sphere-flower: %w", err)
		}
		return wrapComp(&compose.Composition{Spheres: spheres}), nil
	})

	// -----------------------------------------------------------------------
	// (element :kind "polygon" :sides 3 :radius 0.5 :radial-offset 0.8)
	// (mandala :segments 6 :base-radius 3 :elements (list ...))
	// -----------------------------------------------------------------------
	env.AddFunction("element", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		kind, err := pa.str("element", "kind", "polygon")
		if err != nil {
			return zygo.SexpNull, err
		}
		el := compose.Element{}
		switch kind {
		case "polygon":
			el.Kind = compose.ElementPolygon
		case "circle":
			el.Kind = compose.ElementCircle
		default:
			return zygo.SexpNull, fmt.Errorf("element: kind must be \"polygon\" or \"circle\", got %q", kind)
		}
		if el.Sides, err = pa.integer("element", "sides", 3); err != nil {
			return zygo.SexpNull, err
		}
		if el.Points, err = pa.integer("element", "points", 0); err != nil {
			return zygo.SexpNull, err
		}
		if el.Radius, err = pa.requireFloat("element", "radius"); err != nil {
			return zygo.SexpNull, err
		}
		if el.RadialOffset, err = pa.float("element", "radial-offset", 1); err != nil {
			return zygo.SexpNull, err
		}
		if el.AngularOffset, err = pa.float("element", "angular-offset", 0); err != nil {
			return zygo.SexpNull, err
		}
		if el.Rotation, err = pa.float("element", "rotation", 0); err != nil {
			return zygo.SexpNull, err
		}
		return &sexpElement{el: el}, nil
	})

	env.AddFunction("mandala", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		center, err := pa.vec2("mandala", "center", geom.Vec2{})
		if err != nil {
			return zygo.SexpNull, err
		}
		segments, err := pa.integer("mandala", "segments", 6)
		if err != nil {
			return zygo.SexpNull, err
		}
		baseRadius, err := pa.requireFloat("mandala", "base-radius")
		if err != nil {
			return zygo.SexpNull, err
		}
		v, ok := pa.kw["elements"]
		if !ok {
			return zygo.SexpNull, fmt.Errorf("mandala: missing required argument :elements")
		}
		items, err := sexpListToSlice(v)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("mandala: elements: %w", err)
		}
		elements := make([]compose.Element, 0, len(items))
		for i, item := range items {
			se, ok := item.(*sexpElement)
			if !ok {
				return zygo.SexpNull, fmt.Errorf("mandala: element %d: expected element, got %T (%s)",
					i, item, item.SexpString(nil))
			}
			elements = append(elements, se.el)
		}
		c, err := compose.Mandala(center, segments, elements, baseRadius)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("mandala: %w", err)
		}
		return wrapComp(c), nil
	})

	// -----------------------------------------------------------------------
	// (constellation :arrange-radius 4 :shape-radius 1
	//                :shapes (list "cube" "merkaba"))
	// -----------------------------------------------------------------------
	env.AddFunction("constellation", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		center, err := pa.vec3("constellation", "center", geom.Vec3{})
		if err != nil {
			return zygo.SexpNull, err
		}
		arrangeRadius, err := pa.requireFloat("constellation", "arrange-radius")
		if err != nil {
			return zygo.SexpNull, err
		}
		shapeRadius, err := pa.requireFloat("constellation", "shape-radius")
		if err != nil {
			return zygo.SexpNull, err
		}
		v, ok := pa.kw["shapes"]
		if !ok {
			return zygo.SexpNull, fmt.Errorf("constellation: missing required argument :shapes")
		}
		items, err := sexpListToSlice(v)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("constellation: shapes: %w", err)
		}
		names := make([]string, 0, len(items))
		for i, item := range items {
			s, err := toString(item)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("constellation: shape %d: %w", i, err)
			}
			names = append(names, s)
		}
		c, err := compose.Constellation(center, arrangeRadius, shapeRadius, names)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("constellation: %w", err)
		}
		return wrapComp(c), nil
	})

	// -----------------------------------------------------------------------
	// (combine a b ...) / (emit a b ...)
	// -----------------------------------------------------------------------
	env.AddFunction("combine", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		merged := &compose.Composition{}
		for i, arg := range args {
			sc, ok := arg.(*sexpComposition)
			if !ok {
				return zygo.SexpNull, fmt.Errorf("combine: argument %d: expected composition, got %T (%s)",
					i, arg, arg.SexpString(nil))
			}
			merged = compose.Combine(merged, sc.comp)
		}
		return wrapComp(merged), nil
	})

	env.AddFunction("emit", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		for i, arg := range args {
			sc, ok := arg.(*sexpComposition)
			if !ok {
				return zygo.SexpNull, fmt.Errorf("emit: argument %d: expected composition, got %T (%s)",
					i, arg, arg.SexpString(nil))
			}
			*out = *compose.Combine(out, sc.comp)
		}
		return zygo.SexpNull, nil
	})
}
