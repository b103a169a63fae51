package hexgrid

// MapType selects the landmass template used during generation.
type MapType string

const (
	MapTypeDefault             MapType = "default"
	MapTypePangaea             MapType = "pangaea"
	MapTypeInnerSea            MapType = "innerSea"
	MapTypeContinentAndIslands MapType = "continentAndIslands"
	MapTypeTwoContinents       MapType = "twoContinents"
	MapTypeThreeContinents     MapType = "threeContinents"
	MapTypeFourCorners         MapType = "fourCorners"
	MapTypeArchipelago         MapType = "archipelago"
)

// MapShape selects the grid geometry. FlatEarth maps are hexagonal with a
// water-forced pole and perimeter.
type MapShape string

const (
	ShapeRectangular MapShape = "rectangular"
	ShapeHexagonal   MapShape = "hexagonal"
	ShapeFlatEarth   MapShape = "flatEarth"
)

// MapParameters describes the grid to build and how to classify it.
// Width/Height apply to rectangular maps, Radius to hexagonal ones.
type MapParameters struct {
	Type           MapType  `json:"type"`
	Shape          MapShape `json:"shape"`
	Width          int      `json:"width"`
	Height         int      `json:"height"`
	Radius         int      `json:"radius"`
	WaterThreshold float64  `json:"water_threshold"`
	WorldWrap      bool     `json:"world_wrap"`
}
