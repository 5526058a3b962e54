// Package poly builds and manipulates closed convex polyhedra: seed solids,
// dual and truncation operators, and the derived edge/face adjacency tables
// the mapping layer consumes.
package poly

// Capacity limits for a single Polyhedron. Solids built by the operators in
// this package never exceed them; entries past a limit are dropped.
const (
	MaxVertices  = 200 // vertices per solid
	MaxEdges     = 300 // unique edges per solid
	MaxFaces     = 200 // faces per solid
	MaxFaceVerts = 20  // vertices per face; truncation doubles a decagon
)

// Sentinels for "no such edge/face" lookups.
const (
	EdgeNone = -1
	FaceNone = -1
)

// Edge is an undirected edge between two vertex indices, stored with A < B.
type Edge struct {
	A, B int
}

// Polyhedron is a closed manifold solid: vertex positions, faces as ordered
// vertex loops (winding defines orientation), and a derived edge table with
// edge-to-face adjacency. It is value data: operators read one Polyhedron
// and write a separate output, never in place (Rotate and the orient helpers
// are the documented exceptions).
//
// The edge table and adjacency are only valid after Prepare; any mutation of
// vertices or faces invalidates them until Prepare runs again.
type Polyhedron struct {
	V        int
	Vertices [MaxVertices]Vec3

	F         int
	FaceCount [MaxFaces]int              // vertices per face
	Faces     [MaxFaces][MaxFaceVerts]int // vertex indices per face

	E       int
	Edges   [MaxEdges]Edge
	EdgeAdj [MaxEdges][2]int // edge -> adjacent faces, FaceNone when absent
}

// normalize scales all vertices uniformly so the mean vertex length is 1.
func (p *Polyhedron) normalize() {
	if p.V == 0 {
		return
	}
	sum := 0.0
	for i := 0; i < p.V; i++ {
		sum += p.Vertices[i].Length()
	}
	if sum == 0 {
		return
	}
	inv := float64(p.V) / sum
	for i := 0; i < p.V; i++ {
		p.Vertices[i] = p.Vertices[i].Mul(inv)
	}
}

// radialNormalize projects every vertex onto the unit sphere.
func (p *Polyhedron) radialNormalize() {
	for i := 0; i < p.V; i++ {
		if r := p.Vertices[i].Length(); r > 0 {
			p.Vertices[i] = p.Vertices[i].Mul(1 / r)
		}
	}
}

// buildEdges scans every face's consecutive vertex pairs, canonicalizes them
// to (min,max), deduplicates, and records up to two adjacent faces per edge.
func (p *Polyhedron) buildEdges() {
	p.E = 0
	for i := range p.EdgeAdj {
		p.EdgeAdj[i][0] = FaceNone
		p.EdgeAdj[i][1] = FaceNone
	}

	for f := 0; f < p.F; f++ {
		n := p.FaceCount[f]
		for i := 0; i < n; i++ {
			a := p.Faces[f][i]
			b := p.Faces[f][(i+1)%n]
			if a > b {
				a, b = b, a
			}

			e := 0
			for ; e < p.E; e++ {
				if p.Edges[e].A == a && p.Edges[e].B == b {
					break
				}
			}
			if e == p.E {
				if p.E >= MaxEdges {
					break
				}
				p.Edges[e] = Edge{A: a, B: b}
				p.E++
			}
			if p.EdgeAdj[e][0] == FaceNone {
				p.EdgeAdj[e][0] = f
			} else {
				p.EdgeAdj[e][1] = f
			}
		}
	}
}

// Prepare normalizes vertex positions to unit mean length and rebuilds the
// edge table and edge-to-face adjacency from the face loops. It must be
// called after any operation that changes vertex or face data; it is the
// only way the derived tables become valid.
func (p *Polyhedron) Prepare() {
	p.normalize()
	p.buildEdges()
}

// EdgeCount returns the number of unique edges. Valid after Prepare.
func (p *Polyhedron) EdgeCount() int { return p.E }

// EdgeAt returns edge idx from the derived edge table.
func (p *Polyhedron) EdgeAt(idx int) Edge { return p.Edges[idx] }

// FindEdge returns the index of the edge between vertices a and b, in either
// order, or EdgeNone if they are not connected.
func (p *Polyhedron) FindEdge(a, b int) int {
	if a > b {
		a, b = b, a
	}
	for e := 0; e < p.E; e++ {
		if p.Edges[e].A == a && p.Edges[e].B == b {
			return e
		}
	}
	return EdgeNone
}

// EdgeFaces returns the one or two faces adjacent to edge idx. The second
// entry is FaceNone for a boundary edge.
func (p *Polyhedron) EdgeFaces(idx int) [2]int { return p.EdgeAdj[idx] }

// FaceVertexCount returns the number of vertices of face idx.
func (p *Polyhedron) FaceVertexCount(idx int) int { return p.FaceCount[idx] }

// FaceVertices returns the ordered vertex indices of face idx.
func (p *Polyhedron) FaceVertices(idx int) []int {
	return p.Faces[idx][:p.FaceCount[idx]]
}

// FaceEdgeIsCCW reports whether edge eidx appears in face fidx in the face's
// winding direction, i.e. as the ordered pair (A,B).
func (p *Polyhedron) FaceEdgeIsCCW(fidx, eidx int) bool {
	e := p.Edges[eidx]
	n := p.FaceCount[fidx]
	for i := 0; i < n; i++ {
		if p.Faces[fidx][i] == e.A && p.Faces[fidx][(i+1)%n] == e.B {
			return true
		}
	}
	return false
}

// FaceCentroid returns the arithmetic mean of face fidx's vertices.
func (p *Polyhedron) FaceCentroid(fidx int) Vec3 {
	var c Vec3
	n := p.FaceCount[fidx]
	for i := 0; i < n; i++ {
		c = c.Add(p.Vertices[p.Faces[fidx][i]])
	}
	return c.Mul(1 / float64(n))
}

// FaceNormal returns the unit normal of face fidx using Newell's method,
// which is robust for convex polygons.
func (p *Polyhedron) FaceNormal(fidx int) Vec3 {
	var nrm Vec3
	n := p.FaceCount[fidx]
	for i := 0; i < n; i++ {
		v0 := p.Vertices[p.Faces[fidx][i]]
		v1 := p.Vertices[p.Faces[fidx][(i+1)%n]]
		nrm.X += (v0.Y - v1.Y) * (v0.Z + v1.Z)
		nrm.Y += (v0.Z - v1.Z) * (v0.X + v1.X)
		nrm.Z += (v0.X - v1.X) * (v0.Y + v1.Y)
	}
	return nrm.Normalize()
}

// EdgeLength returns the Euclidean length of edge idx.
func (p *Polyhedron) EdgeLength(idx int) float64 {
	e := p.Edges[idx]
	return p.Vertices[e.A].Distance(p.Vertices[e.B])
}

// CollectEdges writes the deduplicated canonical edge list of the face loops
// into buf, without touching the polyhedron's own tables, and returns how
// many edges were written. Edges beyond len(buf) are dropped.
func (p *Polyhedron) CollectEdges(buf []Edge) int {
	cnt := 0
	for f := 0; f < p.F; f++ {
		n := p.FaceCount[f]
		for i := 0; i < n; i++ {
			a := p.Faces[f][i]
			b := p.Faces[f][(i+1)%n]
			if a > b {
				a, b = b, a
			}
			exists := false
			for k := 0; k < cnt; k++ {
				if buf[k].A == a && buf[k].B == b {
					exists = true
					break
				}
			}
			if !exists && cnt < len(buf) {
				buf[cnt] = Edge{A: a, B: b}
				cnt++
			}
		}
	}
	return cnt
}
