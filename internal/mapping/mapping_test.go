package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Contomo/Infinity-Polyhedra/internal/poly"
)

func cubeMapping(t *testing.T, opts Options) *Mapping {
	t.Helper()
	var p poly.Polyhedron
	poly.InitCubeQuads(&p)
	m, err := New(&p, opts)
	require.NoError(t, err)
	return m
}

func TestCubeAllocation(t *testing.T) {
	m := cubeMapping(t, Options{LedsLongestEdge: 24})

	// all 12 cube edges are equal length, so each gets the full share
	assert.Equal(t, 12, m.EdgeCount())
	for e, n := range m.LedsPerEdge() {
		assert.Equal(t, 24, n, "edge %d", e)
	}
	assert.Equal(t, 288, m.TotalPixels())
}

func TestAllocationSumMatchesTotal(t *testing.T) {
	pool := poly.NewPool(4)
	for _, kind := range []poly.Kind{poly.KindTetrahedron, poly.KindDodecahedron, poly.KindIcosidodecahedron} {
		var p poly.Polyhedron
		require.True(t, poly.Build(kind, &p, pool))
		m, err := New(&p, Options{})
		require.NoError(t, err)

		sum := 0
		for _, n := range m.LedsPerEdge() {
			assert.GreaterOrEqual(t, n, 1)
			sum += n
		}
		assert.Equal(t, m.TotalPixels(), sum, kind.String())
	}
}

func TestPixelMapIsBijection(t *testing.T) {
	m := cubeMapping(t, Options{LedsLongestEdge: 7})

	seen := make([]bool, m.TotalPixels())
	for _, pm := range m.Map() {
		require.GreaterOrEqual(t, pm.Phys, 0)
		require.Less(t, pm.Phys, m.TotalPixels())
		assert.False(t, seen[pm.Phys], "phys %d mapped twice", pm.Phys)
		seen[pm.Phys] = true

		assert.GreaterOrEqual(t, pm.Edge, 0)
		assert.Less(t, pm.Edge, m.EdgeCount())
	}
}

func TestIdentityDefaults(t *testing.T) {
	m := cubeMapping(t, Options{LedsLongestEdge: 3})

	for i, phys := range m.EditEdgeMap() {
		assert.Equal(t, i, phys)
	}
	for _, rev := range m.EditFlipMap() {
		assert.False(t, rev)
	}
	// identity means physical order equals logical order
	for i, pm := range m.Map() {
		assert.Equal(t, i, pm.Phys)
	}
}

func TestOverrideTables(t *testing.T) {
	var p poly.Polyhedron
	poly.InitCubeQuads(&p)

	edgeMap := make([]int, p.EdgeCount())
	flipMap := make([]bool, p.EdgeCount())
	for i := range edgeMap {
		edgeMap[i] = len(edgeMap) - 1 - i
	}
	flipMap[0] = true

	m, err := New(&p, Options{LedsLongestEdge: 2, EdgeMap: edgeMap, FlipMap: flipMap})
	require.NoError(t, err)
	assert.Equal(t, edgeMap, m.EditEdgeMap())
	assert.True(t, m.EditFlipMap()[0])

	// wrong-length overrides fall back to identity
	m2, err := New(&p, Options{LedsLongestEdge: 2, EdgeMap: []int{1, 0}, FlipMap: []bool{true, true}})
	require.NoError(t, err)
	for i, phys := range m2.EditEdgeMap() {
		assert.Equal(t, i, phys)
	}
}

func TestRejectsNonPermutationEdgeMap(t *testing.T) {
	var p poly.Polyhedron
	poly.InitCubeQuads(&p)

	// one wiring-table typo must not crash construction
	outOfRange := []int{50, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
	m, err := New(&p, Options{LedsLongestEdge: 2, EdgeMap: outOfRange})
	require.NoError(t, err)
	for i, phys := range m.EditEdgeMap() {
		assert.Equal(t, i, phys, "falls back to identity")
	}

	duplicated := []int{0, 0, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
	m, err = New(&p, Options{LedsLongestEdge: 2, EdgeMap: duplicated})
	require.NoError(t, err)
	for i, phys := range m.EditEdgeMap() {
		assert.Equal(t, i, phys, "falls back to identity")
	}
	for _, pm := range m.Map() {
		assert.Less(t, pm.Phys, m.TotalPixels())
	}
}

func TestDoubleFlipRestoresOrder(t *testing.T) {
	m := cubeMapping(t, Options{LedsLongestEdge: 5})

	const edge = 4
	before := append([]PixelMapping(nil), m.Map()...)
	info := m.EdgeInfo()[edge]

	m.EditFlipMap()[edge] = true
	m.Update()
	assert.NotEqual(t, info, m.EdgeInfo()[edge])
	assert.Equal(t, -1, m.EdgeInfo()[edge].Step)

	m.EditFlipMap()[edge] = false
	m.Update()
	assert.Equal(t, before, m.Map())
	assert.Equal(t, info, m.EdgeInfo()[edge])
}

func TestEdgeInfoWalksBlock(t *testing.T) {
	m := cubeMapping(t, Options{LedsLongestEdge: 6})

	for e, info := range m.EdgeInfo() {
		assert.Equal(t, m.LedsPerEdge()[e], info.Count)

		// walking start + i*step must stay inside the edge's block bounds
		lo, hi := info.Start, info.Start
		for i := 1; i < info.Count; i++ {
			idx := info.Start + i*info.Step
			if idx < lo {
				lo = idx
			}
			if idx > hi {
				hi = idx
			}
		}
		assert.Equal(t, info.Count-1, hi-lo, "edge %d block is contiguous", e)
	}
}

func TestEdgeInfoFollowsRemap(t *testing.T) {
	m := cubeMapping(t, Options{LedsLongestEdge: 4})

	// swap two equally sized blocks and rebuild
	em := m.EditEdgeMap()
	em[0], em[1] = em[1], em[0]
	m.Update()

	assert.Equal(t, 4, m.EdgeInfo()[0].Start, "edge 0 now lives in block 1")
	assert.Equal(t, 0, m.EdgeInfo()[1].Start, "edge 1 now lives in block 0")

	// still a bijection after the swap
	seen := map[int]bool{}
	for _, pm := range m.Map() {
		assert.False(t, seen[pm.Phys])
		seen[pm.Phys] = true
	}
	assert.Len(t, seen, m.TotalPixels())
}

func TestRejectsEmptyPolyhedron(t *testing.T) {
	_, err := New(nil, Options{})
	assert.Error(t, err)

	var empty poly.Polyhedron
	_, err = New(&empty, Options{})
	assert.Error(t, err)
}
