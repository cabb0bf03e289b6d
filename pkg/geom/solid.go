package geom

import (
	"fmt"
	"sort"
)

// Solid is an indexed polyhedron. Faces list vertex indices in order around
// each planar polygon; Edges are unordered index pairs with the lower index
// first. Every index in Edges and Faces must address Vertices.
type Solid struct {
	Vertices []Vec3   `json:"vertices"`
	Edges    [][2]int `json:"edges"`
	Faces    [][]int  `json:"faces"`
}

// EdgesFromFaces derives the edge set from a face table by taking each
// face's consecutive vertex pairs (including the closing pair) and
// deduplicating. Edges are returned sorted for deterministic output.
func EdgesFromFaces(faces [][]int) [][2]int {
	seen := make(map[[2]int]struct{})
	for _, face := range faces {
		for i := range face {
			a, b := face[i], face[(i+1)%len(face)]
			if a > b {
				a, b = b, a
			}
			seen[[2]int{a, b}] = struct{}{}
		}
	}
	edges := make([][2]int, 0, len(seen))
	for e := range seen {
		edges = append(edges, e)
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i][0] != edges[j][0] {
			return edges[i][0] < edges[j][0]
		}
		return edges[i][1] < edges[j][1]
	})
	return edges
}

// Validate checks that every edge and face index addresses a vertex.
func (s *Solid) Validate() error {
	n := len(s.Vertices)
	for _, e := range s.Edges {
		if e[0] < 0 || e[0] >= n || e[1] < 0 || e[1] >= n {
			return &ConfigurationError{
				Message: fmt.Sprintf("edge (%d,%d) references out-of-range vertex (have %d vertices)", e[0], e[1], n),
			}
		}
	}
	for fi, face := range s.Faces {
		if len(face) < 3 {
			return &ConfigurationError{
				Message: fmt.Sprintf("face %d has %d vertices, need at least 3", fi, len(face)),
			}
		}
		for _, idx := range face {
			if idx < 0 || idx >= n {
				return &ConfigurationError{
					Message: fmt.Sprintf("face %d references out-of-range vertex %d (have %d vertices)", fi, idx, n),
				}
			}
		}
	}
	return nil
}

// Centroid returns the mean of the solid's vertices.
func (s *Solid) Centroid() Vec3 {
	var sum Vec3
	if len(s.Vertices) == 0 {
		return sum
	}
	for _, v := range s.Vertices {
		sum = sum.Add(v)
	}
	return sum.Scale(1 / float64(len(s.Vertices)))
}

// Translate returns a copy of the solid with every vertex offset by d.
// The edge and face tables are shared: they are index data and never
// mutated after construction.
func (s *Solid) Translate(d Vec3) *Solid {
	verts := make([]Vec3, len(s.Vertices))
	for i, v := range s.Vertices {
		verts[i] = v.Add(d)
	}
	return &Solid{Vertices: verts, Edges: s.Edges, Faces: s.Faces}
}

// ScaleAbout returns a copy of the solid with every vertex scaled by k
// about the given center.
func (s *Solid) ScaleAbout(center Vec3, k float64) *Solid {
	verts := make([]Vec3, len(s.Vertices))
	for i, v := range s.Vertices {
		verts[i] = v.Sub(center).Scale(k).Add(center)
	}
	return &Solid{Vertices: verts, Edges: s.Edges, Faces: s.Faces}
}
