package render

import (
	"testing"

	"github.com/OCharnyshevich/hexworld/internal/mapgen/hexgrid"
	"github.com/OCharnyshevich/hexworld/internal/ruleset"
)

func TestByTypePalette(t *testing.T) {
	pal := ByType(ruleset.Default())

	grass, ok := pal["grassland"]
	if !ok {
		t.Fatal("palette missing grassland")
	}
	ocean, ok := pal["ocean"]
	if !ok {
		t.Fatal("palette missing ocean")
	}
	if grass == ocean {
		t.Error("land and water colors should differ")
	}
	if coast := pal["coast"]; coast == ocean {
		t.Error("water terrains should get distinguishable shades")
	}
}

func TestImageTileColors(t *testing.T) {
	m := hexgrid.New(hexgrid.MapParameters{Shape: hexgrid.ShapeRectangular, Width: 2, Height: 1})
	m.Tiles[0].Terrain = "grassland"
	m.Tiles[1].Terrain = "ocean"

	pal := ByType(ruleset.Default())
	img := Image(m, pal, 4)

	if img.Bounds().Dx() < 8 || img.Bounds().Dy() < 4 {
		t.Fatalf("image bounds %v too small for 2 tiles at cell 4", img.Bounds())
	}
	if got := img.RGBAAt(1, 1); got != pal["grassland"] {
		t.Errorf("first tile pixel = %v, want %v", got, pal["grassland"])
	}
	if got := img.RGBAAt(5, 1); got != pal["ocean"] {
		t.Errorf("second tile pixel = %v, want %v", got, pal["ocean"])
	}
}

func TestImageUnclassifiedTile(t *testing.T) {
	m := hexgrid.New(hexgrid.MapParameters{Shape: hexgrid.ShapeRectangular, Width: 1, Height: 1})
	img := Image(m, ByType(ruleset.Default()), 4)

	if got := img.RGBAAt(1, 1); got != unset {
		t.Errorf("unclassified tile pixel = %v, want %v", got, unset)
	}
}

func TestImageEmptyMap(t *testing.T) {
	m := hexgrid.New(hexgrid.MapParameters{Shape: hexgrid.ShapeRectangular})
	img := Image(m, Palette{}, 4)
	if img.Bounds().Dx() != 1 || img.Bounds().Dy() != 1 {
		t.Errorf("empty map image bounds = %v, want 1x1", img.Bounds())
	}
}
