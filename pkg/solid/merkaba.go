package solid

import (
	"math"

	"github.com/mkale/aurelia/pkg/geom"
)

// CuboctahedronAlignment is the rotation (radians) at which the second
// Merkaba tetrahedron aligns with the cuboctahedron's square faces. Used by
// compositions and animations as a notable keyframe; nothing structural
// depends on it.
const CuboctahedronAlignment = math.Pi / 4

// Merkaba is the star tetrahedron: two tetrahedra sharing a center, the
// second obtained from the first by a point reflection of its Y axis.
type Merkaba struct {
	Tetrahedron1 *geom.Solid `json:"tetrahedron1"`
	Tetrahedron2 *geom.Solid `json:"tetrahedron2"`
}

// NewMerkaba builds a Merkaba with the given circumradius. The second
// tetrahedron is the first with its Y coordinates sign-flipped about the
// center, then rotated about the Y axis through center by rotation radians.
// rotation 0 keeps the canonical orientation.
func NewMerkaba(center geom.Vec3, radius, rotation float64) (*Merkaba, error) {
	t1, err := Tetrahedron(center, radius)
	if err != nil {
		return nil, err
	}

	verts := make([]geom.Vec3, len(t1.Vertices))
	for i, v := range t1.Vertices {
		rel := v.Sub(center)
		rel.Y = -rel.Y
		if rotation != 0 {
			rel = rel.RotateY(rotation)
		}
		verts[i] = rel.Add(center)
	}

	t2 := &geom.Solid{Vertices: verts, Edges: t1.Edges, Faces: t1.Faces}
	return &Merkaba{Tetrahedron1: t1, Tetrahedron2: t2}, nil
}
