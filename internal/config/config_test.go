package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Contomo/Infinity-Polyhedra/internal/config"
)

func TestDefaultValidates(t *testing.T) {
	require.NoError(t, config.Default().Validate())
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sculpture.yaml")
	body := []byte(`
driver: sim
solid:
  kind: dodecahedron
mapping:
  leds_longest_edge: 12
  flip_map: [true, false, true]
`)
	require.NoError(t, os.WriteFile(path, body, 0644))

	c, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "sim", c.Driver)
	assert.Equal(t, "dodecahedron", c.Solid.Kind)
	assert.Equal(t, 12, c.Mapping.LedsLongestEdge)
	assert.Equal(t, []bool{true, false, true}, c.Mapping.FlipMap)
	// untouched fields keep their defaults
	assert.Equal(t, "GRB", c.Render.ColorOrder)
	assert.Equal(t, 2.2, c.Render.Gamma)
	assert.Equal(t, 2400000, c.SPI.SpeedHz)
}

func TestLoadRejectsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("render:\n  gamma: -1\n"), 0644))

	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestSaveRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	c := config.Default()
	c.Solid.Kind = "rhombitruncated-icosidodecahedron"
	c.Mapping.EdgeMap = []int{2, 1, 0}

	require.NoError(t, config.Save(path, c))
	got, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestValidateErrors(t *testing.T) {
	cases := []func(*config.Config){
		func(c *config.Config) { c.Driver = "dmx" },
		func(c *config.Config) { c.Mapping.LedsLongestEdge = 0 },
		func(c *config.Config) { c.Render.Strips = 0 },
		func(c *config.Config) { c.Render.ColorOrder = "RGBW" },
		func(c *config.Config) { c.Render.Brightness = 1.5 },
		func(c *config.Config) { c.Solid.TruncateT = 2 },
	}
	for i, mutate := range cases {
		c := config.Default()
		mutate(c)
		assert.Error(t, c.Validate(), "case %d", i)
	}
}
