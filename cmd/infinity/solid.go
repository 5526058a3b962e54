package main

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/Contomo/Infinity-Polyhedra/internal/config"
	"github.com/Contomo/Infinity-Polyhedra/internal/poly"
)

// buildSolid constructs the configured polyhedron. A "truncated-" prefix on
// any seed kind applies the configured cut depth to it, so shapes between
// the named solids stay reachable from the config file.
func buildSolid(cfg *config.Config) (*poly.Polyhedron, error) {
	pool := poly.NewPool(4)
	p := &poly.Polyhedron{}

	name := cfg.Solid.Kind
	if k, err := poly.ParseKind(name); err == nil {
		if !poly.Build(k, p, pool) {
			return nil, fmt.Errorf("solid %q exceeds topology capacity", name)
		}
	} else if base, ok := strings.CutPrefix(name, "truncated-"); ok {
		bk, err := poly.ParseKind(base)
		if err != nil {
			return nil, fmt.Errorf("unknown solid %q", name)
		}
		seed, ok := pool.Get()
		if !ok {
			return nil, fmt.Errorf("out of scratch polyhedra")
		}
		defer pool.Put(seed)
		if !poly.Build(bk, seed, pool) {
			return nil, fmt.Errorf("solid %q exceeds topology capacity", base)
		}
		if !poly.Truncate(seed, p, cfg.Solid.TruncateT, pool) {
			return nil, fmt.Errorf("truncating %q exceeds topology capacity", base)
		}
	} else {
		return nil, fmt.Errorf("unknown solid %q", name)
	}

	if f := cfg.Solid.OrientFace; f >= 0 {
		if f >= p.F {
			return nil, fmt.Errorf("orient_face %d out of range (solid has %d faces)", f, p.F)
		}
		p.OrientToFace(f)
	}
	return p, nil
}

// loadConfig falls back to defaults when the file is absent, matching
// first-run behavior on a fresh install.
func loadConfig() *config.Config {
	c, err := config.Load(configPath)
	if err != nil {
		log.Warn().Err(err).Str("path", configPath).Msg("config load failed; using defaults")
		return config.Default()
	}
	return c
}
