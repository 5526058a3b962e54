package poly

// sortIncidentFaces orders the faces incident on vertex vi into a cyclic
// (CCW) walk. Two incident faces are cyclic neighbors exactly when they
// share an edge, i.e. exactly two vertices; on a manifold vertex that
// neighbor is unique, so a greedy walk finds the full cycle.
//
// inc holds face indices touching vi; order receives a permutation of
// [0,len(inc)). Quadratic in the vertex valence, which is bounded by
// MaxFaceVerts and therefore small.
func sortIncidentFaces(p *Polyhedron, vi int, inc []int, order []int) {
	var used [MaxFaceVerts]bool
	order[0] = 0
	used[0] = true

	for k := 1; k < len(inc); k++ {
		prev := inc[order[k-1]]
		for j := range inc {
			if used[j] {
				continue
			}
			next := inc[j]

			common := 0
			for a := 0; a < p.FaceCount[prev]; a++ {
				for b := 0; b < p.FaceCount[next]; b++ {
					if p.Faces[prev][a] == p.Faces[next][b] {
						common++
					}
				}
			}
			if common == 2 {
				order[k] = j
				used[j] = true
				break
			}
		}
	}
}

// edgesShareFace reports whether two prepared edges lie on a common face.
func edgesShareFace(p *Polyhedron, e1, e2 int) bool {
	for _, f1 := range p.EdgeAdj[e1] {
		if f1 == FaceNone {
			continue
		}
		for _, f2 := range p.EdgeAdj[e2] {
			if f1 == f2 {
				return true
			}
		}
	}
	return false
}

// sortIncidentEdges orders the edges incident on one vertex into a cyclic
// walk, the edge analogue of sortIncidentFaces: two incident edges are
// cyclic neighbors exactly when they lie on a common face. Scan order of the
// edge table is not cyclic for valence >= 4, so this ordering is what makes
// vertex-cut faces close up properly.
func sortIncidentEdges(p *Polyhedron, inc []int, order []int) {
	var used [MaxFaceVerts]bool
	order[0] = 0
	used[0] = true

	for k := 1; k < len(inc); k++ {
		prev := inc[order[k-1]]
		for j := range inc {
			if used[j] {
				continue
			}
			if edgesShareFace(p, prev, inc[j]) {
				order[k] = j
				used[j] = true
				break
			}
		}
	}
}

// Dual writes the dual solid of in to out: face centroids projected onto the
// unit sphere become vertices, and each vertex's incident-face cycle becomes
// a face. Returns false without touching out when the dual would exceed the
// capacity limits. The input must be prepared. Output is radially
// normalized and prepared.
func Dual(in, out *Polyhedron) bool {
	if in.F > MaxVertices || in.V > MaxFaces {
		return false
	}

	out.V = in.F
	for f := 0; f < in.F; f++ {
		out.Vertices[f] = in.FaceCentroid(f).Normalize()
	}

	out.F = in.V
	for vi := 0; vi < in.V; vi++ {
		var inc [MaxFaceVerts]int
		cnt := 0
		for f := 0; f < in.F && cnt < MaxFaceVerts; f++ {
			for j := 0; j < in.FaceCount[f]; j++ {
				if in.Faces[f][j] == vi {
					inc[cnt] = f
					cnt++
					break
				}
			}
		}

		if cnt > 2 {
			var order [MaxFaceVerts]int
			sortIncidentFaces(in, vi, inc[:cnt], order[:cnt])
			for k := 0; k < cnt; k++ {
				out.Faces[vi][k] = inc[order[k]]
			}
		} else {
			// 0-2 incident faces: degenerate, order is unambiguous
			for k := 0; k < cnt; k++ {
				out.Faces[vi][k] = inc[k]
			}
		}
		out.FaceCount[vi] = cnt
	}

	out.radialNormalize()
	out.Prepare()
	return true
}

// Truncate cuts every edge of in at fraction t from each endpoint
// (0 < t < 0.5; 0.5 gives the midpoint rectification) and writes the result
// to out: each original n-gon face becomes a 2n-gon walking both cut points
// of every boundary edge in traversal order, and each original vertex
// becomes a new face of its incident edges' cut points in cyclic order.
//
// A working copy of the input is taken from pool before its edge table is
// rebuilt; Truncate returns false without touching out when the pool is
// exhausted or the result would exceed the capacity limits.
func Truncate(in, out *Polyhedron, t float64, pool *Pool) bool {
	tmp, ok := pool.Get()
	if !ok {
		return false
	}
	defer pool.Put(tmp)
	*tmp = *in
	tmp.Prepare()

	if 2*tmp.E > MaxVertices || tmp.F+tmp.V > MaxFaces || 3*tmp.E > MaxEdges {
		return false
	}
	for f := 0; f < tmp.F; f++ {
		if 2*tmp.FaceCount[f] > MaxFaceVerts {
			return false
		}
	}
	var valence [MaxVertices]int
	for e := 0; e < tmp.E; e++ {
		valence[tmp.Edges[e].A]++
		valence[tmp.Edges[e].B]++
	}
	for vi := 0; vi < tmp.V; vi++ {
		if valence[vi] > MaxFaceVerts {
			return false
		}
	}

	// two cut vertices per edge, one near each endpoint
	var cutA, cutB [MaxEdges]int
	out.V = 0
	for e := 0; e < tmp.E; e++ {
		a, b := tmp.Edges[e].A, tmp.Edges[e].B
		out.Vertices[out.V] = tmp.Vertices[a].Lerp(tmp.Vertices[b], t)
		cutA[e] = out.V
		out.V++
		out.Vertices[out.V] = tmp.Vertices[b].Lerp(tmp.Vertices[a], t)
		cutB[e] = out.V
		out.V++
	}

	// each original n-gon face becomes a 2n-gon, keeping its winding: every
	// boundary edge contributes its near cut point then its far one, so the
	// within-edge segment is shared with the neighboring face's walk of the
	// same edge and the corner segments with the vertex-cut faces
	out.F = 0
	for f := 0; f < tmp.F; f++ {
		n := tmp.FaceCount[f]
		out.FaceCount[out.F] = 2 * n
		for i := 0; i < n; i++ {
			vi := tmp.Faces[f][i]
			vj := tmp.Faces[f][(i+1)%n]
			eidx := tmp.FindEdge(vi, vj)
			near, far := cutA[eidx], cutB[eidx]
			if vi != tmp.Edges[eidx].A {
				near, far = far, near
			}
			out.Faces[out.F][2*i] = near
			out.Faces[out.F][2*i+1] = far
		}
		out.F++
	}

	// one new face per original vertex from its incident edges' cut points,
	// in cyclic order so consecutive loop entries land on a common face
	for vi := 0; vi < tmp.V; vi++ {
		var inc [MaxFaceVerts]int
		cnt := 0
		for e := 0; e < tmp.E; e++ {
			if tmp.Edges[e].A == vi || tmp.Edges[e].B == vi {
				inc[cnt] = e
				cnt++
			}
		}
		var order [MaxFaceVerts]int
		if cnt > 1 {
			sortIncidentEdges(tmp, inc[:cnt], order[:cnt])
		}
		out.FaceCount[out.F] = cnt
		for k := 0; k < cnt; k++ {
			eidx := inc[order[k]]
			if vi == tmp.Edges[eidx].A {
				out.Faces[out.F][k] = cutA[eidx]
			} else {
				out.Faces[out.F][k] = cutB[eidx]
			}
		}
		out.F++
	}

	out.radialNormalize()
	out.Prepare()
	return true
}

// InitOctahedron builds an octahedron as the dual of the quad-faced cube.
// Returns false when the pool is exhausted.
func InitOctahedron(p *Polyhedron, pool *Pool) bool {
	tmp, ok := pool.Get()
	if !ok {
		return false
	}
	defer pool.Put(tmp)
	InitCubeQuads(tmp)
	return Dual(tmp, p)
}

// InitDodecahedron builds a dodecahedron as the dual of the icosahedron.
// Returns false when the pool is exhausted.
func InitDodecahedron(p *Polyhedron, pool *Pool) bool {
	tmp, ok := pool.Get()
	if !ok {
		return false
	}
	defer pool.Put(tmp)
	InitIcosahedron(tmp)
	return Dual(tmp, p)
}

// InitIcosidodecahedron builds an icosidodecahedron by half-truncating the
// dodecahedron. Returns false when the pool is exhausted.
func InitIcosidodecahedron(p *Polyhedron, pool *Pool) bool {
	dode, ok := pool.Get()
	if !ok {
		return false
	}
	defer pool.Put(dode)
	if !InitDodecahedron(dode, pool) {
		return false
	}
	return Truncate(dode, p, 0.5, pool)
}

// InitRhombitruncatedIcosidodecahedron builds the rhombic solid dual to the
// half-truncated icosidodecahedron. Returns false when the pool is
// exhausted.
func InitRhombitruncatedIcosidodecahedron(p *Polyhedron, pool *Pool) bool {
	seed, ok := pool.Get()
	if !ok {
		return false
	}
	defer pool.Put(seed)
	tmp, ok := pool.Get()
	if !ok {
		return false
	}
	defer pool.Put(tmp)

	if !InitIcosidodecahedron(seed, pool) {
		return false
	}
	seed.radialNormalize()
	seed.Prepare()

	if !Truncate(seed, tmp, 0.5, pool) {
		return false
	}
	if !Dual(tmp, p) {
		return false
	}
	p.radialNormalize()
	p.Prepare()
	return true
}
