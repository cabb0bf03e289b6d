// Package preview turns sphere clusters into smooth triangle meshes
// through the github.com/deadsy/sdfx SDF library. The 3D flower of life
// is a union of spheres; marching cubes over that union gives the GUI a
// shaded surface instead of a wireframe.
package preview

import (
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/mkale/aurelia/pkg/geom"
)

// DefaultMeshCells controls marching cubes tessellation resolution.
const DefaultMeshCells = 120

// clusterSDF builds the union of one SDF sphere per input sphere.
func clusterSDF(spheres []geom.Sphere) (sdf.SDF3, error) {
	parts := make([]sdf.SDF3, 0, len(spheres))
	for _, sp := range spheres {
		if err := geom.CheckPositive("radius", sp.Radius); err != nil {
			return nil, err
		}
		s, err := sdf.Sphere3D(sp.Radius)
		if err != nil {
			return nil, err
		}
		m := sdf.Translate3d(v3.Vec{X: sp.Center.X, Y: sp.Center.Y, Z: sp.Center.Z})
		parts = append(parts, sdf.Transform3D(s, m))
	}
	return sdf.Union3D(parts...), nil
}

// SphereCluster meshes a set of spheres as one fused surface using
// marching cubes at the given cell resolution. cells <= 0 selects
// DefaultMeshCells.
func SphereCluster(name string, spheres []geom.Sphere, cells int) (*Mesh, error) {
	if len(spheres) == 0 {
		return nil, &geom.ConfigurationError{Message: "sphere cluster needs at least one sphere"}
	}
	if cells <= 0 {
		cells = DefaultMeshCells
	}

	s, err := clusterSDF(spheres)
	if err != nil {
		return nil, err
	}

	renderer := render.NewMarchingCubesUniform(cells)
	triangles := render.ToTriangles(s, renderer)

	numVerts := len(triangles) * 3
	mesh := &Mesh{
		Vertices: make([]float32, 0, numVerts*3),
		Normals:  make([]float32, 0, numVerts*3),
		Indices:  make([]uint32, 0, numVerts),
		Name:     name,
	}
	for i, tri := range triangles {
		n := tri.Normal()
		nx, ny, nz := float32(n.X), float32(n.Y), float32(n.Z)
		for j := 0; j < 3; j++ {
			v := tri[j]
			mesh.Vertices = append(mesh.Vertices, float32(v.X), float32(v.Y), float32(v.Z))
			mesh.Normals = append(mesh.Normals, nx, ny, nz)
			mesh.Indices = append(mesh.Indices, uint32(i*3+j))
		}
	}
	return mesh, nil
}
