// Package geom defines the core value types for Aurelia: 2D and 3D
// vectors, sampled curves, indexed solids, and the error taxonomy shared
// by every generator. All values are immutable once returned; generators
// allocate fresh slices on every call and never retain references.
package geom

import "math"

// DegToRad converts degrees to radians when multiplied.
const DegToRad = math.Pi / 180

// Phi returns the golden ratio (1+√5)/2.
func Phi() float64 {
	return (1 + math.Sqrt(5)) / 2
}

// FibonacciSequence returns the first n Fibonacci numbers (1, 1, 2, 3, ...).
// n <= 0 yields an empty slice.
func FibonacciSequence(n int) []int {
	if n <= 0 {
		return nil
	}
	fib := make([]int, n)
	for i := range fib {
		if i < 2 {
			fib[i] = 1
			continue
		}
		fib[i] = fib[i-1] + fib[i-2]
	}
	return fib
}

// ---------------------------------------------------------------------------
// Vectors
// ---------------------------------------------------------------------------

// Vec2 is a point or direction in the plane.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns v + w.
func (v Vec2) Add(w Vec2) Vec2 { return Vec2{v.X + w.X, v.Y + w.Y} }

// Sub returns v - w.
func (v Vec2) Sub(w Vec2) Vec2 { return Vec2{v.X - w.X, v.Y - w.Y} }

// Scale returns v scaled by k.
func (v Vec2) Scale(k float64) Vec2 { return Vec2{v.X * k, v.Y * k} }

// Dot returns the dot product v · w.
func (v Vec2) Dot(w Vec2) float64 { return v.X*w.X + v.Y*w.Y }

// Length returns |v|.
func (v Vec2) Length() float64 { return math.Hypot(v.X, v.Y) }

// Normalize returns v / |v|. The zero vector is returned unchanged.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// Rotate returns v rotated counter-clockwise by angle radians about the origin.
func (v Vec2) Rotate(angle float64) Vec2 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Vec2{v.X*c - v.Y*s, v.X*s + v.Y*c}
}

// RotateAbout returns v rotated counter-clockwise by angle radians about pivot.
func (v Vec2) RotateAbout(angle float64, pivot Vec2) Vec2 {
	return v.Sub(pivot).Rotate(angle).Add(pivot)
}

// Polar returns the point at distance r from v in direction angle.
func (v Vec2) Polar(r, angle float64) Vec2 {
	return Vec2{v.X + r*math.Cos(angle), v.Y + r*math.Sin(angle)}
}

// Vec3 is a point or direction in space.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 { return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z} }

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 { return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z} }

// Scale returns v scaled by k.
func (v Vec3) Scale(k float64) Vec3 { return Vec3{v.X * k, v.Y * k, v.Z * k} }

// Dot returns the dot product v · w.
func (v Vec3) Dot(w Vec3) float64 { return v.X*w.X + v.Y*w.Y + v.Z*w.Z }

// Cross returns the cross product v × w.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

// Length returns |v|.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns v / |v|. The zero vector is returned unchanged.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// RotateY returns v rotated by angle radians about the Y axis.
func (v Vec3) RotateY(angle float64) Vec3 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Vec3{v.X*c + v.Z*s, v.Y, -v.X*s + v.Z*c}
}

// XY projects v onto the XY plane, dropping Z.
func (v Vec3) XY() Vec2 { return Vec2{v.X, v.Y} }
