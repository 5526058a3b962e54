// Package mapping assigns physical LED strip slots to the logical edges of a
// polyhedron: proportional per-edge LED allocation, user-editable remap and
// flip tables, and the per-edge iteration descriptors animation code walks.
package mapping

import (
	"errors"
	"math"

	"github.com/rs/zerolog"

	"github.com/Contomo/Infinity-Polyhedra/internal/poly"
)

// DefaultLedsLongestEdge is the LED count given to the longest edge when no
// override is configured.
const DefaultLedsLongestEdge = 24

// PixelMapping records, for one physical pixel slot, which logical edge owns
// it and its physical index on the strip run.
type PixelMapping struct {
	Edge int
	Phys int
}

// EdgeLedInfo lets callers walk one logical edge's LEDs in A→B order
// regardless of remap and flip: physical start index, pixel count, and a
// signed step of +1 or -1.
type EdgeLedInfo struct {
	Start int
	Count int
	Step  int
}

// Options configures mapping construction.
type Options struct {
	// LedsLongestEdge is the pixel count of the longest edge; every other
	// edge gets a proportional share. Defaults to DefaultLedsLongestEdge.
	LedsLongestEdge int
	// EdgeMap and FlipMap override the identity tables. Each applies on
	// its own when its length equals the solid's edge count; EdgeMap must
	// additionally be a permutation of the edge indices. Invalid tables
	// are ignored with a warning.
	EdgeMap []int
	FlipMap []bool
	// Log receives the per-edge allocation table at debug level.
	Log zerolog.Logger
}

// Mapping is the stable assignment of physical LED slots to logical edges
// for one polyhedron. The remap/flip tables are the only externally mutable
// state; after editing them callers must invoke Update before any draw call
// reads the mapping.
type Mapping struct {
	edgeCnt     int
	pixelsTotal int

	ledsPerEdge []int
	edgeMap     []int // logical edge -> physical strip block
	flipMap     []bool

	pixelMap []PixelMapping
	edgeInfo []EdgeLedInfo

	log zerolog.Logger
}

// New computes the LED allocation from p's edge geometry and builds both
// views of the assignment. p must be prepared and have at least one edge.
func New(p *poly.Polyhedron, opts Options) (*Mapping, error) {
	if p == nil || p.EdgeCount() == 0 {
		return nil, errors.New("mapping: polyhedron has no edges")
	}
	if opts.LedsLongestEdge <= 0 {
		opts.LedsLongestEdge = DefaultLedsLongestEdge
	}

	m := &Mapping{
		edgeCnt: p.EdgeCount(),
		log:     opts.Log,
	}
	m.ledsPerEdge = make([]int, m.edgeCnt)
	m.edgeMap = make([]int, m.edgeCnt)
	m.flipMap = make([]bool, m.edgeCnt)

	m.computeLedsPerEdge(p, opts.LedsLongestEdge)

	for i := 0; i < m.edgeCnt; i++ {
		m.edgeMap[i] = i
	}
	if opts.EdgeMap != nil {
		switch {
		case len(opts.EdgeMap) != m.edgeCnt:
			m.log.Warn().Int("got", len(opts.EdgeMap)).Int("want", m.edgeCnt).
				Msg("edge_map length mismatch; using identity")
		case !isPermutation(opts.EdgeMap):
			m.log.Warn().Int("edges", m.edgeCnt).
				Msg("edge_map is not a permutation of the edge indices; using identity")
		default:
			copy(m.edgeMap, opts.EdgeMap)
		}
	}
	if opts.FlipMap != nil {
		if len(opts.FlipMap) == m.edgeCnt {
			copy(m.flipMap, opts.FlipMap)
		} else {
			m.log.Warn().Int("got", len(opts.FlipMap)).Int("want", m.edgeCnt).
				Msg("flip_map length mismatch; using identity")
		}
	}

	m.pixelMap = make([]PixelMapping, m.pixelsTotal)
	m.edgeInfo = make([]EdgeLedInfo, m.edgeCnt)
	m.Update()
	return m, nil
}

// isPermutation reports whether every value 0..len(tbl)-1 occurs exactly
// once. A remap table that fails this would index out of range or leave
// pixel slots doubly assigned.
func isPermutation(tbl []int) bool {
	seen := make([]bool, len(tbl))
	for _, v := range tbl {
		if v < 0 || v >= len(tbl) || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

// computeLedsPerEdge sizes every edge proportionally to its Euclidean
// length, with the longest edge as reference. Degenerate edges still get
// one pixel.
func (m *Mapping) computeLedsPerEdge(p *poly.Polyhedron, longest int) {
	maxLen := 0.0
	for e := 0; e < m.edgeCnt; e++ {
		if l := p.EdgeLength(e); l > maxLen {
			maxLen = l
		}
	}

	m.pixelsTotal = 0
	for e := 0; e < m.edgeCnt; e++ {
		leds := 1
		if maxLen > 0 {
			ratio := p.EdgeLength(e) / maxLen
			leds = int(math.Round(ratio * float64(longest)))
			if leds == 0 {
				leds = 1
			}
		}
		m.ledsPerEdge[e] = leds
		m.pixelsTotal += leds

		m.log.Debug().
			Int("edge", e).
			Float64("length", p.EdgeLength(e)).
			Int("pixels", leds).
			Msg("edge allocation")
	}
	m.log.Debug().
		Float64("longest", maxLen).
		Int("pixels_longest", longest).
		Int("pixels_total", m.pixelsTotal).
		Msg("led allocation done")
}

// Update rebuilds the pixel map and the per-edge iteration descriptors from
// the current remap/flip tables. Both views must be rebuilt together; a
// stale combination is a correctness bug, which is why editing a table and
// calling Update are the documented two-phase contract.
func (m *Mapping) Update() {
	m.buildPixelMap()
	m.buildEdgeInfo()
}

func (m *Mapping) buildPixelMap() {
	px := 0
	for logical := 0; logical < m.edgeCnt; logical++ {
		cnt := m.ledsPerEdge[logical]
		base := m.blockBase(m.edgeMap[logical])
		rev := m.flipMap[logical]

		for i := 0; i < cnt; i++ {
			offset := i
			if rev {
				offset = cnt - 1 - i
			}
			m.pixelMap[px] = PixelMapping{Edge: logical, Phys: base + offset}
			px++
		}
	}
}

func (m *Mapping) buildEdgeInfo() {
	for e := 0; e < m.edgeCnt; e++ {
		base := m.blockBase(m.edgeMap[e])
		cnt := m.ledsPerEdge[e]

		if m.flipMap[e] {
			m.edgeInfo[e] = EdgeLedInfo{Start: base + cnt - 1, Count: cnt, Step: -1}
		} else {
			m.edgeInfo[e] = EdgeLedInfo{Start: base, Count: cnt, Step: +1}
		}
	}
}

// blockBase returns the first physical slot of strip block phys: the sum of
// all earlier blocks' sizes. Out-of-range blocks (an edited table gone bad)
// clamp rather than crash the draw path.
func (m *Mapping) blockBase(phys int) int {
	base := 0
	for i := 0; i < phys && i < m.edgeCnt; i++ {
		base += m.ledsPerEdge[i]
	}
	return base
}

// TotalPixels returns the number of physical LED slots across all edges.
func (m *Mapping) TotalPixels() int { return m.pixelsTotal }

// EdgeCount returns the number of logical edges.
func (m *Mapping) EdgeCount() int { return m.edgeCnt }

// Map returns the physical-order view: one entry per pixel slot.
func (m *Mapping) Map() []PixelMapping { return m.pixelMap }

// LedsPerEdge returns the per-edge pixel counts.
func (m *Mapping) LedsPerEdge() []int { return m.ledsPerEdge }

// EdgeInfo returns the per-edge iteration descriptors.
func (m *Mapping) EdgeInfo() []EdgeLedInfo { return m.edgeInfo }

// EditEdgeMap exposes the logical→physical block table for in-place edits.
// Callers must call Update before the next draw.
func (m *Mapping) EditEdgeMap() []int { return m.edgeMap }

// EditFlipMap exposes the per-edge reversal table for in-place edits.
// Callers must call Update before the next draw.
func (m *Mapping) EditFlipMap() []bool { return m.flipMap }
