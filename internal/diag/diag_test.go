package diag_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Contomo/Infinity-Polyhedra/internal/diag"
	"github.com/Contomo/Infinity-Polyhedra/internal/mapping"
	"github.com/Contomo/Infinity-Polyhedra/internal/poly"
)

func TestDumpWireframeFormat(t *testing.T) {
	var p poly.Polyhedron
	poly.InitTetrahedron(&p)

	var buf bytes.Buffer
	require.NoError(t, diag.DumpWireframe(&buf, &p, "tetrahedron"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, "#geo# tetrahedron V=4 E=6", lines[0])
	assert.Equal(t, "#endgeo#", lines[len(lines)-1])
	// header + 4 vertices + 6 edges + footer
	assert.Len(t, lines, 1+4+6+1)
	assert.True(t, strings.HasPrefix(lines[1], "v 0 "))
	assert.True(t, strings.HasPrefix(lines[5], "e 0 "))
}

func TestDumpModelIncludesFaces(t *testing.T) {
	var p poly.Polyhedron
	poly.InitCubeQuads(&p)

	var buf bytes.Buffer
	require.NoError(t, diag.DumpModel(&buf, &p, "cube"))

	out := buf.String()
	assert.Contains(t, out, "#geo# cube V=8 E=12 F=6")
	assert.Contains(t, out, "f0:")
	assert.Contains(t, out, "f5:")
}

func TestDumpMappingPerEdge(t *testing.T) {
	var p poly.Polyhedron
	poly.InitCubeQuads(&p)
	m, err := mapping.New(&p, mapping.Options{
		FlipMap: append([]bool{true}, make([]bool, 11)...),
		EdgeMap: []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, diag.DumpMapping(&buf, m))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, "#map# edges=12 pixels=288", lines[0])
	assert.Len(t, lines, 1+12+1)
	assert.Contains(t, lines[1], "rev", "flipped edge walks backwards")
	assert.Contains(t, lines[2], "fwd")
}
