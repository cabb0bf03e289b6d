package geom

// Circle is a circle in the plane with its boundary sampled counter-clockwise.
// Points does not duplicate the starting point; renderers close the loop.
type Circle struct {
	Center Vec2   `json:"center"`
	Radius float64 `json:"radius"`
	Points []Vec2 `json:"points"`
}

// Sphere is a sphere given by center and radius. The boundary is not
// sampled; mesh previews are produced by the preview package.
type Sphere struct {
	Center Vec3    `json:"center"`
	Radius float64 `json:"radius"`
}

// Line2 is a straight segment in the plane.
type Line2 struct {
	A Vec2 `json:"a"`
	B Vec2 `json:"b"`
}

// Line3 is a straight segment in space.
type Line3 struct {
	A Vec3 `json:"a"`
	B Vec3 `json:"b"`
}

// Polygon is a closed planar polygon given by its vertices in
// counter-clockwise order. The closing edge from the last vertex back to
// the first is implicit.
type Polygon struct {
	Vertices []Vec2 `json:"vertices"`
}

// Polyline is an open sampled curve (spirals, fractal boundaries).
type Polyline struct {
	Points []Vec2 `json:"points"`
}

// Triangle2 is a planar triangle, the unit of the Sierpinski subdivision.
type Triangle2 [3]Vec2

// Centroid returns the triangle's centroid.
func (t Triangle2) Centroid() Vec2 {
	return Vec2{
		(t[0].X + t[1].X + t[2].X) / 3,
		(t[0].Y + t[1].Y + t[2].Y) / 3,
	}
}
