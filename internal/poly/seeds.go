package poly

import "math"

// phi is the golden ratio, used by the icosahedron seed.
var phi = (1 + math.Sqrt(5)) / 2

func seedTriangles(p *Polyhedron, verts []Vec3, faces [][3]int) {
	p.V = len(verts)
	copy(p.Vertices[:], verts)
	p.F = len(faces)
	for i, f := range faces {
		p.FaceCount[i] = 3
		p.Faces[i][0], p.Faces[i][1], p.Faces[i][2] = f[0], f[1], f[2]
	}
}

// InitTetrahedron seeds p with a regular tetrahedron (4 triangles).
func InitTetrahedron(p *Polyhedron) {
	verts := []Vec3{
		{1, 1, 1}, {1, -1, -1}, {-1, 1, -1}, {-1, -1, 1},
	}
	faces := [][3]int{
		{0, 1, 2}, {0, 3, 1}, {0, 2, 3}, {1, 3, 2},
	}
	seedTriangles(p, verts, faces)
	p.radialNormalize()
	p.Prepare()
}

var cubeVerts = []Vec3{
	{1, 1, 1}, {1, 1, -1}, {1, -1, 1}, {1, -1, -1},
	{-1, 1, 1}, {-1, 1, -1}, {-1, -1, 1}, {-1, -1, -1},
}

// InitCube seeds p with a cube triangulated into 12 faces.
func InitCube(p *Polyhedron) {
	faces := [][3]int{
		{0, 2, 3}, {0, 3, 1}, {4, 5, 7}, {4, 7, 6},
		{0, 1, 5}, {0, 5, 4}, {2, 6, 7}, {2, 7, 3},
		{0, 4, 6}, {0, 6, 2}, {1, 3, 7}, {1, 7, 5},
	}
	seedTriangles(p, cubeVerts, faces)
	p.radialNormalize()
	p.Prepare()
}

// InitCubeQuads seeds p with a cube as 6 quadrilateral faces. The quad form
// is what the dual operator needs to produce a true octahedron.
func InitCubeQuads(p *Polyhedron) {
	faces := [][4]int{
		{0, 2, 3, 1}, {4, 5, 7, 6},
		{0, 1, 5, 4}, {2, 6, 7, 3},
		{0, 4, 6, 2}, {1, 3, 7, 5},
	}
	p.V = len(cubeVerts)
	copy(p.Vertices[:], cubeVerts)
	p.F = len(faces)
	for i, f := range faces {
		p.FaceCount[i] = 4
		for j, v := range f {
			p.Faces[i][j] = v
		}
	}
	p.radialNormalize()
	p.Prepare()
}

// InitIcosahedron seeds p with a regular icosahedron (20 triangles).
func InitIcosahedron(p *Polyhedron) {
	verts := []Vec3{
		{0, 1, phi}, {0, -1, phi}, {0, 1, -phi}, {0, -1, -phi},
		{1, phi, 0}, {-1, phi, 0}, {1, -phi, 0}, {-1, -phi, 0},
		{phi, 0, 1}, {phi, 0, -1}, {-phi, 0, 1}, {-phi, 0, -1},
	}
	faces := [][3]int{
		{0, 1, 8}, {0, 8, 4}, {0, 4, 5}, {0, 5, 10}, {0, 10, 1},
		{1, 8, 6}, {1, 6, 7}, {1, 7, 10},
		{2, 3, 11}, {2, 11, 5}, {2, 5, 4}, {2, 4, 9}, {2, 9, 3},
		{3, 9, 6}, {3, 6, 7}, {3, 7, 11},
		{4, 8, 9}, {5, 11, 10}, {6, 8, 9}, {7, 10, 11},
	}
	seedTriangles(p, verts, faces)
	p.radialNormalize()
	p.Prepare()
}
