// Package render rasterizes a generated hex map into an RGBA image for the
// PNG artifact and the interactive previewer.
package render

import (
	"image"
	"image/color"
	"math"

	"github.com/OCharnyshevich/hexworld/internal/mapgen/hexgrid"
	"github.com/OCharnyshevich/hexworld/internal/ruleset"
)

// Palette maps terrain names to fill colors.
type Palette map[string]color.RGBA

// unset marks tiles no generator has classified yet.
var unset = color.RGBA{40, 40, 40, 255}

// ByType builds a palette from a ruleset: land terrains green, water
// terrains blue, later entries of the same type slightly darker so coast
// and ocean stay distinguishable.
func ByType(rs *ruleset.Ruleset) Palette {
	pal := Palette{}
	land, water := 0, 0
	for _, t := range rs.Terrains {
		switch t.Type {
		case ruleset.TerrainLand:
			pal[t.Name] = color.RGBA{uint8(96 - 12*land), uint8(152 - 16*land), 72, 255}
			land++
		case ruleset.TerrainWater:
			pal[t.Name] = color.RGBA{40, uint8(92 - 12*water), uint8(160 - 16*water), 255}
			water++
		}
	}
	return pal
}

// Image draws each tile as a filled cell×cell block at its world position.
// Pointy-top layout: odd rows land half a cell to the right, rows are packed
// at 3/4 cell height, which is enough for a preview raster.
func Image(m *hexgrid.HexMap, pal Palette, cell int) *image.RGBA {
	if len(m.Tiles) == 0 {
		return image.NewRGBA(image.Rect(0, 0, 1, 1))
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, t := range m.Tiles {
		minX = math.Min(minX, t.WorldX)
		minY = math.Min(minY, t.WorldY)
		maxX = math.Max(maxX, t.WorldX)
		maxY = math.Max(maxY, t.WorldY)
	}

	// One horizontal neighbor step (sqrt(3) world units) maps to cell px.
	k := float64(cell) / math.Sqrt(3)
	w := int(math.Ceil((maxX-minX)*k)) + cell
	h := int(math.Ceil((maxY-minY)*k)) + cell
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	for _, t := range m.Tiles {
		c, ok := pal[t.Terrain]
		if !ok {
			c = unset
		}
		px := int(math.Round((t.WorldX - minX) * k))
		py := int(math.Round((t.WorldY - minY) * k))
		for y := py; y < py+cell && y < h; y++ {
			for x := px; x < px+cell && x < w; x++ {
				img.SetRGBA(x, y, c)
			}
		}
	}
	return img
}
