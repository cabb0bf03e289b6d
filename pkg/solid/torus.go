package solid

import (
	"math"

	"github.com/mkale/aurelia/pkg/geom"
)

// Torus samples the parametric torus
//
//	x = (R + r*cos v) * cos u
//	y = (R + r*cos v) * sin u
//	z = r * sin v
//
// on a majorSegments x minorSegments grid, with wraparound quads split into
// two triangles each. minorRadius >= majorRadius is accepted and produces a
// self-intersecting (degenerate) torus; only non-positive radii and segment
// counts below 3 are rejected.
func Torus(center geom.Vec3, majorRadius, minorRadius float64, majorSegments, minorSegments int) (*geom.Solid, error) {
	if err := geom.CheckPositive("majorRadius", majorRadius); err != nil {
		return nil, err
	}
	if err := geom.CheckPositive("minorRadius", minorRadius); err != nil {
		return nil, err
	}
	if err := geom.CheckMin("majorSegments", float64(majorSegments), 3); err != nil {
		return nil, err
	}
	if err := geom.CheckMin("minorSegments", float64(minorSegments), 3); err != nil {
		return nil, err
	}

	verts := make([]geom.Vec3, 0, majorSegments*minorSegments)
	for i := 0; i < majorSegments; i++ {
		u := 2 * math.Pi * float64(i) / float64(majorSegments)
		cosU, sinU := math.Cos(u), math.Sin(u)
		for j := 0; j < minorSegments; j++ {
			v := 2 * math.Pi * float64(j) / float64(minorSegments)
			ring := majorRadius + minorRadius*math.Cos(v)
			verts = append(verts, geom.Vec3{
				X: center.X + ring*cosU,
				Y: center.Y + ring*sinU,
				Z: center.Z + minorRadius*math.Sin(v),
			})
		}
	}

	faces := make([][]int, 0, 2*majorSegments*minorSegments)
	for i := 0; i < majorSegments; i++ {
		iNext := (i + 1) % majorSegments
		for j := 0; j < minorSegments; j++ {
			jNext := (j + 1) % minorSegments
			v1 := i*minorSegments + j
			v2 := iNext*minorSegments + j
			v3 := iNext*minorSegments + jNext
			v4 := i*minorSegments + jNext
			faces = append(faces, []int{v1, v2, v3}, []int{v1, v3, v4})
		}
	}

	return &geom.Solid{
		Vertices: verts,
		Edges:    geom.EdgesFromFaces(faces),
		Faces:    faces,
	}, nil
}
