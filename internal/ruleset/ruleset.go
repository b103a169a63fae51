// Package ruleset holds the terrain catalog a generator resolves its land
// and water terrain ids from.
package ruleset

// Ruleset is a named terrain catalog. Order matters: lookups by type return
// the first matching entry.
type Ruleset struct {
	Name     string    `json:"name"`
	Terrains []Terrain `json:"terrains"`
}

// FirstTerrainOfType returns the name of the first terrain entry with the
// given type, or false if the catalog has none.
func (r *Ruleset) FirstTerrainOfType(tt TerrainType) (string, bool) {
	for _, t := range r.Terrains {
		if t.Type == tt {
			return t.Name, true
		}
	}
	return "", false
}

// Default returns the built-in catalog used when no ruleset file is given.
func Default() *Ruleset {
	return &Ruleset{
		Name: "default",
		Terrains: []Terrain{
			{Name: "grassland", DisplayName: "Grassland", Type: TerrainLand},
			{Name: "plains", DisplayName: "Plains", Type: TerrainLand},
			{Name: "ocean", DisplayName: "Ocean", Type: TerrainWater},
			{Name: "coast", DisplayName: "Coast", Type: TerrainWater},
		},
	}
}
