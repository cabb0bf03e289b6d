package compose

import (
	"math"

	"github.com/mkale/aurelia/pkg/geom"
	"github.com/mkale/aurelia/pkg/solid"
)

// Node is a scene-graph node. Child transforms compose with the parent's,
// so moving or rotating a node carries its whole subtree along.
type Node struct {
	Name     string
	Position geom.Vec3
	Rotation geom.Vec3 // Euler angles, radians, applied X then Y then Z
	Scale    geom.Vec3
	Solids   []*geom.Solid
	Children []*Node
}

// NewNode returns an empty node with identity scale.
func NewNode(name string) *Node {
	return &Node{
		Name:  name,
		Scale: geom.Vec3{X: 1, Y: 1, Z: 1},
	}
}

// AddSolid attaches a solid to the node and returns the node.
func (n *Node) AddSolid(s *geom.Solid) *Node {
	n.Solids = append(n.Solids, s)
	return n
}

// AddChild attaches a child node and returns the parent.
func (n *Node) AddChild(child *Node) *Node {
	n.Children = append(n.Children, child)
	return n
}

// localTransform builds the node's own transform: scale, then rotation,
// then translation.
func (n *Node) localTransform() Mat4 {
	m := Scaling(n.Scale)
	m = RotationX(n.Rotation.X).Mul(m)
	m = RotationY(n.Rotation.Y).Mul(m)
	m = RotationZ(n.Rotation.Z).Mul(m)
	return Translation(n.Position).Mul(m)
}

// Flatten walks the scene graph and returns every solid in world space.
// Edge and face tables are shared with the source solids; vertex slices
// are fresh.
func (n *Node) Flatten() []*geom.Solid {
	return n.flatten(Identity())
}

func (n *Node) flatten(parent Mat4) []*geom.Solid {
	world := parent.Mul(n.localTransform())
	var out []*geom.Solid
	for _, s := range n.Solids {
		out = append(out, TransformedSolid(s, world))
	}
	for _, c := range n.Children {
		out = append(out, c.flatten(world)...)
	}
	return out
}

// TransformedSolid applies m to every vertex of s. The result shares
// s's edge and face tables.
func TransformedSolid(s *geom.Solid, m Mat4) *geom.Solid {
	verts := make([]geom.Vec3, len(s.Vertices))
	for i, v := range s.Vertices {
		verts[i] = m.Apply(v)
	}
	return &geom.Solid{Vertices: verts, Edges: s.Edges, Faces: s.Faces}
}

// MerkabaInCuboctahedron builds a star tetrahedron nested inside a
// cuboctahedron of the same circumradius, as a two-level scene graph.
func MerkabaInCuboctahedron(center geom.Vec3, radius float64) (*Node, error) {
	outer, err := solid.Cuboctahedron(geom.Vec3{}, radius)
	if err != nil {
		return nil, err
	}
	mk, err := solid.NewMerkaba(geom.Vec3{}, radius, solid.CuboctahedronAlignment)
	if err != nil {
		return nil, err
	}
	root := NewNode("merkaba-in-cuboctahedron")
	root.Position = center
	root.AddSolid(outer)
	inner := NewNode("merkaba")
	inner.AddSolid(mk.Tetrahedron1)
	inner.AddSolid(mk.Tetrahedron2)
	root.AddChild(inner)
	return root, nil
}

// NestedPlatonics nests the five platonic solids around a shared center,
// each level scaled down by a power of 1/phi.
func NestedPlatonics(center geom.Vec3, radius float64) (*Node, error) {
	if err := geom.CheckPositive("radius", radius); err != nil {
		return nil, err
	}
	builders := []func(geom.Vec3, float64) (*geom.Solid, error){
		solid.Dodecahedron,
		solid.Icosahedron,
		solid.Cube,
		solid.Octahedron,
		solid.Tetrahedron,
	}
	root := NewNode("nested-platonics")
	root.Position = center
	for i, build := range builders {
		r := radius * math.Pow(1/geom.Phi(), float64(i))
		s, err := build(geom.Vec3{}, r)
		if err != nil {
			return nil, err
		}
		root.AddSolid(s)
	}
	return root, nil
}
