package ruleset

// TerrainType is the broad class of a terrain entry.
type TerrainType string

const (
	TerrainLand  TerrainType = "Land"
	TerrainWater TerrainType = "Water"
)

// Terrain is one entry of a ruleset's terrain catalog.
type Terrain struct {
	Name        string      `json:"name"`
	DisplayName string      `json:"display_name"`
	Type        TerrainType `json:"type"`
}
