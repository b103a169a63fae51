// Package config holds the CLI configuration for the map generation tools.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/OCharnyshevich/hexworld/internal/mapgen/hexgrid"
)

// Config holds the generation parameters the CLI works with.
type Config struct {
	Type           string  `json:"type"`
	Shape          string  `json:"shape"`
	Width          int     `json:"width"`
	Height         int     `json:"height"`
	Radius         int     `json:"radius"`
	Seed           int64   `json:"seed"` // 0 = derive from wall clock
	WaterThreshold float64 `json:"water_threshold"`
	WorldWrap      bool    `json:"world_wrap"`
	Ruleset        string  `json:"ruleset"` // path to a ruleset JSON, empty = built-in
	Out            string  `json:"out"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Type:           string(hexgrid.MapTypeDefault),
		Shape:          string(hexgrid.ShapeRectangular),
		Width:          80,
		Height:         50,
		Radius:         25,
		WaterThreshold: 0.0,
		Out:            "map.png",
	}
}

// MapParameters converts the CLI config into grid parameters.
func (c *Config) MapParameters() hexgrid.MapParameters {
	return hexgrid.MapParameters{
		Type:           hexgrid.MapType(c.Type),
		Shape:          hexgrid.MapShape(c.Shape),
		Width:          c.Width,
		Height:         c.Height,
		Radius:         c.Radius,
		WaterThreshold: c.WaterThreshold,
		WorldWrap:      c.WorldWrap,
	}
}

// LoadFile reads a Config from a JSON file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Merge applies file-loaded config values into cfg, but only for fields
// that were NOT explicitly set via CLI flags. explicitFlags contains the
// flag names that were explicitly provided on the command line.
func Merge(cfg *Config, fromFile *Config, explicitFlags map[string]bool) {
	if !explicitFlags["type"] {
		cfg.Type = fromFile.Type
	}
	if !explicitFlags["shape"] {
		cfg.Shape = fromFile.Shape
	}
	if !explicitFlags["width"] {
		cfg.Width = fromFile.Width
	}
	if !explicitFlags["height"] {
		cfg.Height = fromFile.Height
	}
	if !explicitFlags["radius"] {
		cfg.Radius = fromFile.Radius
	}
	if !explicitFlags["seed"] {
		cfg.Seed = fromFile.Seed
	}
	if !explicitFlags["water-threshold"] {
		cfg.WaterThreshold = fromFile.WaterThreshold
	}
	if !explicitFlags["wrap"] {
		cfg.WorldWrap = fromFile.WorldWrap
	}
	if !explicitFlags["ruleset"] {
		cfg.Ruleset = fromFile.Ruleset
	}
	if !explicitFlags["o"] {
		cfg.Out = fromFile.Out
	}
}
