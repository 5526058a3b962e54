package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type SPI struct {
	Dev     string `yaml:"dev"`      // e.g. /dev/spidev0.0
	SpeedHz int    `yaml:"speed_hz"` // e.g. 2400000
	ResetUs int    `yaml:"reset_us"` // e.g. 300
}

type SolidCfg struct {
	Kind       string  `yaml:"kind"` // e.g. "icosahedron"
	TruncateT  float64 `yaml:"truncate_t,omitempty"`
	OrientFace int     `yaml:"orient_face,omitempty"` // -1 disables
}

// MappingCfg carries the installer-tuned wiring tables. Empty slices mean
// identity.
type MappingCfg struct {
	LedsLongestEdge int    `yaml:"leds_longest_edge"`
	EdgeMap         []int  `yaml:"edge_map,omitempty"`
	FlipMap         []bool `yaml:"flip_map,omitempty"`
}

type RenderCfg struct {
	Strips     int     `yaml:"strips"`
	ColorOrder string  `yaml:"color_order"`
	Gamma      float64 `yaml:"gamma"`
	Brightness float64 `yaml:"brightness"`
	FPS        int     `yaml:"fps"`
	MaxAlloc   int     `yaml:"max_alloc,omitempty"`
}

type Config struct {
	Driver string `yaml:"driver"` // "spi" | "sim"

	Solid   SolidCfg   `yaml:"solid"`
	Mapping MappingCfg `yaml:"mapping"`
	Render  RenderCfg  `yaml:"render"`
	SPI     SPI        `yaml:"spi,omitempty"`
}

// Default returns the configuration for a single-strip icosahedron build.
func Default() *Config {
	return &Config{
		Driver: "spi",
		Solid: SolidCfg{
			Kind:       "icosahedron",
			TruncateT:  0.5,
			OrientFace: -1,
		},
		Mapping: MappingCfg{
			LedsLongestEdge: 24,
		},
		Render: RenderCfg{
			Strips:     1,
			ColorOrder: "GRB",
			Gamma:      2.2,
			Brightness: 1.0,
			FPS:        60,
		},
		SPI: SPI{
			Dev:     "",
			SpeedHz: 2400000,
			ResetUs: 300,
		},
	}
}

// Load reads path and overlays it on the defaults, so partial files work.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

// Validate rejects values the pipeline cannot run with.
func (c *Config) Validate() error {
	if c.Driver != "spi" && c.Driver != "sim" {
		return fmt.Errorf("driver must be spi or sim, got %q", c.Driver)
	}
	if c.Mapping.LedsLongestEdge < 1 {
		return fmt.Errorf("leds_longest_edge must be >= 1, got %d", c.Mapping.LedsLongestEdge)
	}
	if c.Render.Strips < 1 {
		return fmt.Errorf("strips must be >= 1, got %d", c.Render.Strips)
	}
	if len(c.Render.ColorOrder) != 3 {
		return fmt.Errorf("color_order must name 3 channels, got %q", c.Render.ColorOrder)
	}
	if c.Render.Gamma <= 0 {
		return fmt.Errorf("gamma must be > 0, got %g", c.Render.Gamma)
	}
	if c.Render.Brightness < 0 || c.Render.Brightness > 1 {
		return fmt.Errorf("brightness must be in [0,1], got %g", c.Render.Brightness)
	}
	if c.Render.FPS < 1 {
		return fmt.Errorf("fps must be >= 1, got %d", c.Render.FPS)
	}
	if c.Solid.TruncateT < 0 || c.Solid.TruncateT > 1 {
		return fmt.Errorf("truncate_t must be in [0,1], got %g", c.Solid.TruncateT)
	}
	return nil
}
