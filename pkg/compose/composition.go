// Package compose combines generator outputs into aggregate structures:
// layered patterns, radial mandalas, 3D constellations, and a scene graph
// with hierarchical transforms. Compositions keep every category explicit
// so consumers never probe for optional keys.
package compose

import (
	"github.com/mkale/aurelia/pkg/geom"
)

// Composition aggregates heterogeneous geometry by category. Every
// category is always present; an empty composition is the zero value.
// Compositions are built by appending copies of slice headers, never by
// mutating a source composition's slices.
type Composition struct {
	Circles   []geom.Circle   `json:"circles"`
	Polygons  []geom.Polygon  `json:"polygons"`
	Polylines []geom.Polyline `json:"polylines"`
	Lines     []geom.Line2    `json:"lines"`
	Solids    []*geom.Solid   `json:"solids"`
	Spheres   []geom.Sphere   `json:"spheres"`
}

// IsEmpty reports whether the composition holds no geometry at all.
func (c *Composition) IsEmpty() bool {
	return len(c.Circles) == 0 && len(c.Polygons) == 0 && len(c.Polylines) == 0 &&
		len(c.Lines) == 0 && len(c.Solids) == 0 && len(c.Spheres) == 0
}

// Count returns the total number of elements across all categories.
func (c *Composition) Count() int {
	return len(c.Circles) + len(c.Polygons) + len(c.Polylines) +
		len(c.Lines) + len(c.Solids) + len(c.Spheres)
}

// Combine merges two compositions category-wise, concatenating in order.
// Combine is associative and the zero Composition is its identity, so
// arbitrarily nested aggregates can be folded in any grouping.
func Combine(a, b *Composition) *Composition {
	out := &Composition{}
	out.Circles = append(append(out.Circles, a.Circles...), b.Circles...)
	out.Polygons = append(append(out.Polygons, a.Polygons...), b.Polygons...)
	out.Polylines = append(append(out.Polylines, a.Polylines...), b.Polylines...)
	out.Lines = append(append(out.Lines, a.Lines...), b.Lines...)
	out.Solids = append(append(out.Solids, a.Solids...), b.Solids...)
	out.Spheres = append(append(out.Spheres, a.Spheres...), b.Spheres...)
	return out
}
