package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/OCharnyshevich/hexworld/internal/mapgen/hexgrid"
)

func TestMergeKeepsExplicitFlags(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 120
	cfg.Seed = 42

	fromFile := DefaultConfig()
	fromFile.Width = 30
	fromFile.Height = 20
	fromFile.Seed = 7

	Merge(cfg, fromFile, map[string]bool{"width": true, "seed": true})

	if cfg.Width != 120 {
		t.Errorf("explicit width overwritten: got %d, want 120", cfg.Width)
	}
	if cfg.Seed != 42 {
		t.Errorf("explicit seed overwritten: got %d, want 42", cfg.Seed)
	}
	if cfg.Height != 20 {
		t.Errorf("file height not applied: got %d, want 20", cfg.Height)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"type": "pangaea", "shape": "hexagonal", "radius": 12, "world_wrap": true}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Type != "pangaea" || cfg.Shape != "hexagonal" || cfg.Radius != 12 {
		t.Errorf("loaded config = %+v", cfg)
	}
	if !cfg.WorldWrap {
		t.Error("world_wrap not loaded")
	}
	// Fields absent from the file keep their defaults.
	if cfg.Out != "map.png" {
		t.Errorf("out = %q, want default map.png", cfg.Out)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestMapParameters(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Type = string(hexgrid.MapTypeArchipelago)
	cfg.Shape = string(hexgrid.ShapeFlatEarth)
	cfg.Radius = 9

	p := cfg.MapParameters()
	if p.Type != hexgrid.MapTypeArchipelago || p.Shape != hexgrid.ShapeFlatEarth || p.Radius != 9 {
		t.Errorf("parameters = %+v", p)
	}
}
