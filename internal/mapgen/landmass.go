// Package mapgen classifies every tile of a hex grid as land or water by
// blending seeded coherent noise with geometric landmass templates.
package mapgen

import (
	"errors"
	"log/slog"
	"math"
	"math/rand/v2"

	"github.com/OCharnyshevich/hexworld/internal/mapgen/hexgrid"
	"github.com/OCharnyshevich/hexworld/internal/mapgen/noise"
	"github.com/OCharnyshevich/hexworld/internal/ruleset"
)

// ErrNoLandTerrain is returned when the ruleset defines no Land terrain.
// Generation cannot proceed without one.
var ErrNoLandTerrain = errors.New("mapgen: ruleset defines no land terrain")

// archipelagoWaterOffset raises the water threshold for archipelago maps.
const archipelagoWaterOffset = 0.25

// LandmassGenerator assigns each tile its land or water terrain. Terrain ids
// are resolved once at construction; a ruleset without a water terrain
// switches the generator into land-only mode.
type LandmassGenerator struct {
	log *slog.Logger
	rng *rand.Rand

	landTerrain  string
	waterTerrain string
	landOnly     bool
}

// NewLandmassGenerator resolves the land and water terrain ids from rs.
// The rng drives every random decision of a run; seeding it identically
// reproduces the run exactly.
func NewLandmassGenerator(rs *ruleset.Ruleset, rng *rand.Rand, log *slog.Logger) (*LandmassGenerator, error) {
	land, ok := rs.FirstTerrainOfType(ruleset.TerrainLand)
	if !ok {
		return nil, ErrNoLandTerrain
	}
	g := &LandmassGenerator{log: log, rng: rng, landTerrain: land}
	g.waterTerrain, ok = rs.FirstTerrainOfType(ruleset.TerrainWater)
	if !ok {
		g.waterTerrain = land
		g.landOnly = true
		log.Info("ruleset defines no water terrain, generating land-only maps", "land", land)
	}
	return g, nil
}

// Generate classifies every tile of m in place. Tiles are visited in the
// map's canonical order, so two runs with identically seeded rngs produce
// identical maps.
func (g *LandmassGenerator) Generate(m *hexgrid.HexMap) {
	if g.landOnly {
		for _, t := range m.Tiles {
			t.Terrain = g.landTerrain
		}
		return
	}

	threshold := effectiveWaterThreshold(m.Params)
	g.log.Debug("generating landmass",
		"type", m.Params.Type, "shape", m.Params.Shape,
		"tiles", len(m.Tiles), "threshold", threshold, "wrap", m.Params.WorldWrap)

	switch m.Params.Type {
	case hexgrid.MapTypePangaea:
		g.createPangaea(m, threshold)
	case hexgrid.MapTypeInnerSea:
		g.createInnerSea(m, threshold)
	case hexgrid.MapTypeContinentAndIslands:
		g.createContinentAndIslands(m, threshold)
	case hexgrid.MapTypeTwoContinents:
		g.createTwoContinents(m, threshold)
	case hexgrid.MapTypeThreeContinents:
		g.createThreeContinents(m, threshold)
	case hexgrid.MapTypeFourCorners:
		g.createFourCorners(m, threshold)
	case hexgrid.MapTypeArchipelago:
		g.createArchipelago(m, threshold)
	default:
		g.createDefault(m, threshold)
	}

	if m.Params.Shape == hexgrid.ShapeFlatEarth {
		g.forceFlatEarthWaterEdges(m)
	}
}

// effectiveWaterThreshold returns the threshold actually compared against
// elevations. Archipelago maps bias toward water by a fixed offset.
func effectiveWaterThreshold(params hexgrid.MapParameters) float64 {
	if params.Type == hexgrid.MapTypeArchipelago {
		return params.WaterThreshold + archipelagoWaterOffset
	}
	return params.WaterThreshold
}

// spawnLandOrWater sets the tile's terrain: water below the threshold,
// land at or above it.
func (g *LandmassGenerator) spawnLandOrWater(t *hexgrid.Tile, elevation, threshold float64) {
	if elevation < threshold {
		t.Terrain = g.waterTerrain
	} else {
		t.Terrain = g.landTerrain
	}
}

// newRunSource draws the run's elevation seed and builds the noise source
// shared by all tiles, keeping the field globally coherent.
func (g *LandmassGenerator) newRunSource() *noise.Source {
	return noise.New(int64(g.rng.Int32()))
}

func (g *LandmassGenerator) createDefault(m *hexgrid.HexMap, threshold float64) {
	src := g.newRunSource()
	for _, t := range m.Tiles {
		g.spawnLandOrWater(t, src.Elevation(t.WorldX, t.WorldY), threshold)
	}
}

func (g *LandmassGenerator) createArchipelago(m *hexgrid.HexMap, threshold float64) {
	src := g.newRunSource()
	for _, t := range m.Tiles {
		elevation := src.Ridged(t.WorldX, t.WorldY, 10, 0.5, 2, 15)
		g.spawnLandOrWater(t, elevation, threshold)
	}
}

func (g *LandmassGenerator) createPangaea(m *hexgrid.HexMap, threshold float64) {
	src := g.newRunSource()
	for _, t := range m.Tiles {
		elevation := src.Elevation(t.WorldX, t.WorldY)*0.75 + g.ellipticContinent(t, m, 0.85)*0.25
		g.spawnLandOrWater(t, elevation, threshold)
	}
}

func (g *LandmassGenerator) createInnerSea(m *hexgrid.HexMap, threshold float64) {
	src := g.newRunSource()
	for _, t := range m.Tiles {
		// Inverted sign: the elliptic continent carves an inland sea.
		elevation := src.Elevation(t.WorldX, t.WorldY) - g.ellipticContinent(t, m, 0.6)*0.3
		g.spawnLandOrWater(t, elevation, threshold)
	}
}

func (g *LandmassGenerator) createTwoContinents(m *hexgrid.HexMap, threshold float64) {
	splitByLatitude := g.chooseSplitByLatitude(m)
	src := g.newRunSource()
	for _, t := range m.Tiles {
		elevation := (src.Elevation(t.WorldX, t.WorldY) + g.twoContinentsBias(t, m, splitByLatitude)) / 2
		g.spawnLandOrWater(t, elevation, threshold)
	}
}

func (g *LandmassGenerator) createContinentAndIslands(m *hexgrid.HexMap, threshold float64) {
	isNorth := g.rng.Float64() < 0.5
	splitByLatitude := g.chooseSplitByLatitude(m)
	src := g.newRunSource()
	for _, t := range m.Tiles {
		bias := g.continentAndIslandsBias(t, m, isNorth, splitByLatitude)
		elevation := (src.Elevation(t.WorldX, t.WorldY) + bias) / 2
		g.spawnLandOrWater(t, elevation, threshold)
	}
}

func (g *LandmassGenerator) createThreeContinents(m *hexgrid.HexMap, threshold float64) {
	isNorth := g.rng.Float64() < 0.5
	src := g.newRunSource()
	for _, t := range m.Tiles {
		elevation := (src.Elevation(t.WorldX, t.WorldY) + g.threeContinentsBias(t, m, isNorth)) / 2
		g.spawnLandOrWater(t, elevation, threshold)
	}
}

func (g *LandmassGenerator) createFourCorners(m *hexgrid.HexMap, threshold float64) {
	src := g.newRunSource()
	for _, t := range m.Tiles {
		elevation := (src.Elevation(t.WorldX, t.WorldY) + g.fourCornersBias(t, m)) / 2
		g.spawnLandOrWater(t, elevation, threshold)
	}
}

// ellipticContinent returns the elevation bias of an elliptic continent
// covering roughly coverage..coverage+0.1 of the map extent. The ratio
// jitters per tile so the coastline stays ragged.
func (g *LandmassGenerator) ellipticContinent(t *hexgrid.Tile, m *hexgrid.HexMap, coverage float64) float64 {
	ratio := coverage + 0.1*g.rng.Float64()
	a := ratio * m.MaxLongitude
	b := ratio * m.MaxLatitude
	return ellipticBias(ellipticFactor(t.Longitude, t.Latitude, a, b), g.rng.Float64())
}

func (g *LandmassGenerator) twoContinentsBias(t *hexgrid.Tile, m *hexgrid.HexMap, splitByLatitude bool) float64 {
	factor := math.Abs(t.Longitude) / m.MaxLongitude
	if splitByLatitude {
		factor = math.Abs(t.Latitude) / m.MaxLatitude
	}
	if m.Params.WorldWrap {
		// The fold always measures the longitude seam, even when the split
		// axis is latitude. Tuned behavior, keep as is.
		factor = foldAtSeam(factor, t.Longitude, m.MaxLongitude, 1.5)
	}
	return separatorBias(factor, 0.6, g.rng.Float64())
}

func (g *LandmassGenerator) continentAndIslandsBias(t *hexgrid.Tile, m *hexgrid.HexMap, isNorth, splitByLatitude bool) float64 {
	var factor, hemisphere float64
	if splitByLatitude {
		factor = math.Abs(t.Latitude) / m.MaxLatitude
		hemisphere = t.Latitude
	} else {
		factor = math.Abs(t.Longitude) / m.MaxLongitude
		hemisphere = t.Longitude
	}
	// The opposite hemisphere keeps zero bias: mostly water, scattered islands.
	if isNorth != (hemisphere > 0) {
		factor = 0
	}
	if m.Params.WorldWrap {
		factor = foldAtSeam(factor, t.Longitude, m.MaxLongitude, 1.1)
	}
	return separatorBias(factor, 0.5, g.rng.Float64())
}

func (g *LandmassGenerator) threeContinentsBias(t *hexgrid.Tile, m *hexgrid.HexMap, isNorth bool) float64 {
	longFactor := math.Abs(t.Longitude) / m.MaxLongitude
	latFactor := math.Abs(t.Latitude) / m.MaxLatitude
	if m.Params.WorldWrap {
		longFactor = foldAtSeam(longFactor, t.Longitude, m.MaxLongitude, 1.5)
	}
	if isNorth == (t.Latitude > 0) {
		// Single-continent hemisphere: a meridian-centered band at reduced
		// width. The fold gain can push longFactor past 1, clamp before
		// inverting so the fractional exponent never sees a negative base.
		longFactor = (1 - math.Min(longFactor, 1)) * 0.7
	}
	factor := math.Min(longFactor, latFactor)
	return separatorBias(factor, 0.5, g.rng.Float64())
}

func (g *LandmassGenerator) fourCornersBias(t *hexgrid.Tile, m *hexgrid.HexMap) float64 {
	factor := math.Min(
		math.Abs(t.Longitude)/m.MaxLongitude,
		math.Abs(t.Latitude)/m.MaxLatitude,
	)
	return cornersBias(factor, g.rng.Float64())
}

// chooseSplitByLatitude picks the splitting axis for hemisphere templates:
// the longer grid dimension for rectangular maps, a coin flip when the
// aspect is ambiguous.
func (g *LandmassGenerator) chooseSplitByLatitude(m *hexgrid.HexMap) bool {
	p := m.Params
	switch {
	case p.Shape != hexgrid.ShapeRectangular:
		return g.rng.Float64() < 0.5
	case p.Height > p.Width:
		return true
	case p.Width > p.Height:
		return false
	default:
		return g.rng.Float64() < 0.5
	}
}

// forceFlatEarthWaterEdges overrides the base classification for flatEarth
// maps: the exact center tile and every grid-boundary tile (fewer than 6
// neighbors) are flooded together with their surroundings, keeping a clean
// water pole and perimeter. Writes only, idempotent.
func (g *LandmassGenerator) forceFlatEarthWaterEdges(m *hexgrid.HexMap) {
	for _, t := range m.Tiles {
		isCenter := t.Latitude == 0 && t.Longitude == 0
		if !isCenter && len(t.Neighbors()) >= 6 {
			continue
		}
		hops := 2
		if isCenter {
			hops = 3
		}
		g.forceWater(t, hops)
	}
}

func (g *LandmassGenerator) forceWater(t *hexgrid.Tile, hops int) {
	t.Terrain = g.waterTerrain
	if hops == 0 {
		return
	}
	for _, n := range t.Neighbors() {
		g.forceWater(n, hops-1)
	}
}
