// Package config holds the YAML run configuration for the generation
// tooling. The engine itself is configured only through its constructor
// parameters; this file feeds the CLIs.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cgcardona/bugtopia-sub000/internal/terrain"
)

type Config struct {
	World   WorldConfig   `yaml:"world"`
	Preview PreviewConfig `yaml:"preview"`
	Export  ExportConfig  `yaml:"export"`
}

type WorldConfig struct {
	Type       string       `yaml:"type"`
	Resolution int          `yaml:"resolution"`
	Seed       int64        `yaml:"seed"`
	Bounds     BoundsConfig `yaml:"bounds"`
}

type BoundsConfig struct {
	MinX   float64 `yaml:"min_x"`
	MinY   float64 `yaml:"min_y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type PreviewConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Path       string `yaml:"path"`
	CellPixels int    `yaml:"cell_pixels"`

	// SliceZ renders one horizontal grid layer instead of the top-down
	// composite. Negative means composite.
	SliceZ int `yaml:"slice_z"`
}

type ExportConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Load reads configuration from a YAML file. An empty path returns defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func Default() *Config {
	return &Config{
		World: WorldConfig{
			Type:       string(terrain.WorldContinental),
			Resolution: 32,
			Seed:       1337,
			Bounds: BoundsConfig{
				MinX:   -500,
				MinY:   -500,
				Width:  1000,
				Height: 1000,
			},
		},
		Preview: PreviewConfig{
			Enabled:    false,
			Path:       "out/preview.png",
			CellPixels: 8,
			SliceZ:     -1,
		},
		Export: ExportConfig{
			Enabled: false,
			Path:    "out/world.snap.zst",
		},
	}
}

func (c *Config) Validate() error {
	if _, ok := terrain.WorldTypeFromString(c.World.Type); !ok {
		return fmt.Errorf("world.type %q is not a known world type", c.World.Type)
	}
	if c.World.Resolution < 2 {
		return errors.New("world.resolution must be at least 2")
	}
	if c.World.Bounds.Width <= 0 || c.World.Bounds.Height <= 0 {
		return errors.New("world.bounds width and height must be positive")
	}
	if c.Preview.Enabled {
		if c.Preview.Path == "" {
			return errors.New("preview.path must be set when preview is enabled")
		}
		if c.Preview.CellPixels <= 0 {
			return errors.New("preview.cell_pixels must be positive")
		}
		if c.Preview.SliceZ >= c.World.Resolution {
			return errors.New("preview.slice_z must be below world.resolution")
		}
	}
	if c.Export.Enabled && c.Export.Path == "" {
		return errors.New("export.path must be set when export is enabled")
	}
	return nil
}

// WorldType resolves the configured world type. Call Validate first.
func (c *Config) WorldType() terrain.WorldType {
	t, ok := terrain.WorldTypeFromString(c.World.Type)
	if !ok {
		return terrain.WorldContinental
	}
	return t
}
