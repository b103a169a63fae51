package hexgrid

import "math"

var sqrt3 = math.Sqrt(3)

// Tile is a single hex cell. Latitude and Longitude are centered geographic
// coordinates (0,0 in the middle of the map), WorldX/WorldY are pointy-top
// pixel centers at unit hex size, used for noise sampling. Terrain is empty
// until a generator classifies the tile.
type Tile struct {
	Col, Row  int
	Latitude  float64
	Longitude float64
	WorldX    float64
	WorldY    float64
	Terrain   string

	neighbors []*Tile
}

// Neighbors returns the adjacent tiles, 0 to 6 of them. Edge tiles of
// non-wrapped maps have fewer than 6.
func (t *Tile) Neighbors() []*Tile { return t.neighbors }

type coord struct{ col, row int }

// HexMap is a built grid plus the parameters it was built from. Tiles holds
// the tiles in canonical row-major order (rows outer, columns inner); every
// generation pass iterates this slice, which keeps per-tile random draws in
// a platform-independent order.
type HexMap struct {
	Params       MapParameters
	Tiles        []*Tile
	MaxLatitude  float64
	MaxLongitude float64

	byCoord map[coord]*Tile
}

// New builds the grid for the given parameters. Rectangular maps use odd-r
// offset storage coordinates; hexagonal and flatEarth maps use axial
// coordinates within the given radius.
func New(params MapParameters) *HexMap {
	m := &HexMap{Params: params, byCoord: map[coord]*Tile{}}
	if params.Shape == ShapeRectangular {
		m.buildRectangular()
	} else {
		m.buildHexagonal()
	}
	return m
}

// TileAt returns the tile with the given storage coordinate.
func (m *HexMap) TileAt(col, row int) (*Tile, bool) {
	t, ok := m.byCoord[coord{col, row}]
	return t, ok
}

func (m *HexMap) add(t *Tile) {
	m.Tiles = append(m.Tiles, t)
	m.byCoord[coord{t.Col, t.Row}] = t
}

func (m *HexMap) buildRectangular() {
	w, h := m.Params.Width, m.Params.Height
	m.MaxLongitude = float64(w-1) / 2
	m.MaxLatitude = float64(h-1) / 2

	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			m.add(&Tile{
				Col:       col,
				Row:       row,
				Longitude: float64(col) - m.MaxLongitude,
				Latitude:  float64(row) - m.MaxLatitude,
				WorldX:    sqrt3 * (float64(col) + 0.5*float64(row&1)),
				WorldY:    1.5 * float64(row),
			})
		}
	}

	// Odd-r offset neighbor deltas, indexed by row parity.
	even := [6][2]int{{1, 0}, {-1, 0}, {0, -1}, {-1, -1}, {0, 1}, {-1, 1}}
	odd := [6][2]int{{1, 0}, {-1, 0}, {1, -1}, {0, -1}, {1, 1}, {0, 1}}

	for _, t := range m.Tiles {
		deltas := even
		if t.Row&1 == 1 {
			deltas = odd
		}
		for _, d := range deltas {
			col, row := t.Col+d[0], t.Row+d[1]
			if m.Params.WorldWrap && w > 1 {
				col = ((col % w) + w) % w
			}
			if n, ok := m.byCoord[coord{col, row}]; ok {
				t.neighbors = append(t.neighbors, n)
			}
		}
	}
}

func (m *HexMap) buildHexagonal() {
	n := m.Params.Radius
	m.MaxLatitude = float64(n)
	m.MaxLongitude = float64(n)

	for r := -n; r <= n; r++ {
		qMin, qMax := max(-n, -r-n), min(n, -r+n)
		for q := qMin; q <= qMax; q++ {
			m.add(&Tile{
				Col:       q,
				Row:       r,
				Longitude: float64(q) + float64(r)/2,
				Latitude:  float64(r),
				WorldX:    sqrt3 * (float64(q) + float64(r)/2),
				WorldY:    1.5 * float64(r),
			})
		}
	}

	axial := [6][2]int{{1, 0}, {1, -1}, {0, -1}, {-1, 0}, {-1, 1}, {0, 1}}
	for _, t := range m.Tiles {
		for _, d := range axial {
			if nb, ok := m.byCoord[coord{t.Col + d[0], t.Row + d[1]}]; ok {
				t.neighbors = append(t.neighbors, nb)
			}
		}
	}
}
