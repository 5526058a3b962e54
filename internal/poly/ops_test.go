package poly

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// valences returns the sorted vertex valence multiset of p.
func valences(p *Polyhedron) []int {
	counts := make([]int, p.V)
	for e := 0; e < p.E; e++ {
		counts[p.Edges[e].A]++
		counts[p.Edges[e].B]++
	}
	sort.Ints(counts)
	return counts
}

// faceSizes returns the sorted face size multiset of p.
func faceSizes(p *Polyhedron) []int {
	sizes := make([]int, p.F)
	for f := 0; f < p.F; f++ {
		sizes[f] = p.FaceCount[f]
	}
	sort.Ints(sizes)
	return sizes
}

func TestDualOfDualRestoresStructure(t *testing.T) {
	var p, d, dd Polyhedron
	InitIcosahedron(&p)

	require.True(t, Dual(&p, &d))
	require.True(t, Dual(&d, &dd))

	// the dual has one face per original vertex, sized by its valence,
	// and the double dual restores the original counts
	assert.Equal(t, p.V, d.F)
	assert.Equal(t, valences(&p), faceSizes(&d))
	assert.Equal(t, p.V, dd.V)
	assert.Equal(t, p.E, dd.E)
	assert.Equal(t, p.F, dd.F)
}

func TestDualSwapsCounts(t *testing.T) {
	var p, d Polyhedron
	InitCubeQuads(&p)
	require.True(t, Dual(&p, &d))

	assert.Equal(t, p.F, d.V)
	assert.Equal(t, p.V, d.F)
	assert.Equal(t, p.E, d.E)
}

func TestDualRejectsOverCapacity(t *testing.T) {
	var in, out Polyhedron
	in.V = MaxFaces + 1
	out.V = 7 // canary

	assert.False(t, Dual(&in, &out))
	assert.Equal(t, 7, out.V, "output must stay untouched")
}

func TestTruncateCounts(t *testing.T) {
	pool := NewPool(2)
	for _, kind := range []Kind{KindTetrahedron, KindCubeQuads, KindIcosahedron} {
		t.Run(kind.String(), func(t *testing.T) {
			var p, tr Polyhedron
			require.True(t, Build(kind, &p, pool))
			require.True(t, Truncate(&p, &tr, 0.3, pool))

			assert.Equal(t, 2*p.E, tr.V, "two cut vertices per edge")
			assert.Equal(t, 3*p.E, tr.E, "three edges per original edge")
			assert.Equal(t, p.F+p.V, tr.F, "shrunk faces plus one per vertex")
			assert.Equal(t, 2, tr.V-tr.E+tr.F)

			// the cut solid is still closed: every edge lies on two faces
			for e := 0; e < tr.E; e++ {
				faces := tr.EdgeFaces(e)
				require.NotEqual(t, FaceNone, faces[0], "edge %d", e)
				require.NotEqual(t, FaceNone, faces[1], "edge %d is a boundary edge", e)
			}
		})
	}
}

func TestTruncateDoublesFaceSizes(t *testing.T) {
	pool := NewPool(2)
	var p, tr Polyhedron
	InitCubeQuads(&p)
	require.True(t, Truncate(&p, &tr, 0.25, pool))

	// first F output faces walk both cut points of every boundary edge
	for f := 0; f < p.F; f++ {
		assert.Equal(t, 2*p.FaceCount[f], tr.FaceCount[f], "face %d", f)
	}
	// the remaining V faces are vertex cuts, sized by vertex valence
	val := valences(&p)
	cut := make([]int, 0, p.V)
	for f := p.F; f < tr.F; f++ {
		cut = append(cut, tr.FaceCount[f])
	}
	sort.Ints(cut)
	assert.Equal(t, val, cut)
}

func TestTruncateFailsOnExhaustedPool(t *testing.T) {
	pool := NewPool(0)
	var p, out Polyhedron
	InitTetrahedron(&p)
	out.V = 3 // canary

	assert.False(t, Truncate(&p, &out, 0.3, pool))
	assert.Equal(t, 3, out.V, "output must stay untouched")
	assert.Equal(t, 0, pool.Free())
}

func TestCompositeFailsSilentlyOnExhaustedPool(t *testing.T) {
	pool := NewPool(1) // octahedron needs one scratch, rhombitruncated needs four
	var out Polyhedron

	assert.True(t, InitOctahedron(&out, pool))
	assert.Equal(t, 1, pool.Free(), "scratch returned after use")

	out = Polyhedron{}
	out.V = 5
	assert.False(t, InitRhombitruncatedIcosidodecahedron(&out, pool))
	assert.Equal(t, 5, out.V)
	assert.Equal(t, 1, pool.Free(), "scratch returned on failure paths too")
}

func TestPoolAcquireRelease(t *testing.T) {
	pool := NewPool(2)
	a, ok := pool.Get()
	require.True(t, ok)
	b, ok := pool.Get()
	require.True(t, ok)
	_, ok = pool.Get()
	assert.False(t, ok)

	pool.Put(a)
	pool.Put(b)
	assert.Equal(t, 2, pool.Free())

	c, ok := pool.Get()
	require.True(t, ok)
	assert.Zero(t, c.V, "scratch polyhedra come back zeroed")
}

func TestParseKindRoundtrip(t *testing.T) {
	for k, name := range kindNames {
		got, err := ParseKind(name)
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := ParseKind("hypercube")
	assert.Error(t, err)
}
