// Package diag emits wireframe and wiring dumps in the line format the
// desktop viewer parses: a "#geo#" header, one record per line, and an
// "#endgeo#" footer.
package diag

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/Contomo/Infinity-Polyhedra/internal/mapping"
	"github.com/Contomo/Infinity-Polyhedra/internal/poly"
)

// DumpWireframe writes vertices and edges with lengths.
func DumpWireframe(w io.Writer, p *poly.Polyhedron, name string) error {
	if _, err := fmt.Fprintf(w, "#geo# %s V=%d E=%d\n", name, p.V, p.E); err != nil {
		return err
	}
	for v := 0; v < p.V; v++ {
		pt := p.Vertices[v]
		if _, err := fmt.Fprintf(w, "v %d %.6f %.6f %.6f\n", v, pt.X, pt.Y, pt.Z); err != nil {
			return err
		}
	}
	for e := 0; e < p.E; e++ {
		ed := p.Edges[e]
		if _, err := fmt.Fprintf(w, "e %d %d %d %.6f\n", e, ed.A, ed.B, p.EdgeLength(e)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "#endgeo#")
	return err
}

// DumpModel writes the full topology: vertices, edges and face loops.
func DumpModel(w io.Writer, p *poly.Polyhedron, tag string) error {
	if _, err := fmt.Fprintf(w, "#geo# %s V=%d E=%d F=%d\n", tag, p.V, p.E, p.F); err != nil {
		return err
	}
	for v := 0; v < p.V; v++ {
		pt := p.Vertices[v]
		if _, err := fmt.Fprintf(w, "v %d %.6f %.6f %.6f\n", v, pt.X, pt.Y, pt.Z); err != nil {
			return err
		}
	}
	for e := 0; e < p.E; e++ {
		ed := p.Edges[e]
		if _, err := fmt.Fprintf(w, "e %d %d %d %.6f\n", e, ed.A, ed.B, p.EdgeLength(e)); err != nil {
			return err
		}
	}
	for f := 0; f < p.F; f++ {
		if _, err := fmt.Fprintf(w, "f%d:", f); err != nil {
			return err
		}
		for _, vi := range p.FaceVertices(f) {
			if _, err := fmt.Fprintf(w, "%d,", vi); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "#endgeo#")
	return err
}

// DumpMapping writes one line per logical edge: its physical block, pixel
// range and direction.
func DumpMapping(w io.Writer, m *mapping.Mapping) error {
	if _, err := fmt.Fprintf(w, "#map# edges=%d pixels=%d\n", m.EdgeCount(), m.TotalPixels()); err != nil {
		return err
	}
	info := m.EdgeInfo()
	for e, in := range info {
		dir := "fwd"
		if in.Step < 0 {
			dir = "rev"
		}
		if _, err := fmt.Fprintf(w, "m %d start=%d count=%d %s\n", e, in.Start, in.Count, dir); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "#endmap#")
	return err
}

// LogSummary reports counts and degenerate topology at the configured log
// level: boundary edges indicate an open mesh.
func LogSummary(log zerolog.Logger, p *poly.Polyhedron, name string) {
	boundary := 0
	for e := 0; e < p.E; e++ {
		adj := p.EdgeFaces(e)
		if adj[0] == poly.FaceNone || adj[1] == poly.FaceNone {
			boundary++
		}
	}
	ev := log.Info().
		Str("solid", name).
		Int("vertices", p.V).
		Int("edges", p.E).
		Int("faces", p.F).
		Int("euler", p.V-p.E+p.F)
	if boundary > 0 {
		ev = ev.Int("boundary_edges", boundary)
	}
	ev.Msg("topology")
}
