package hexgrid

import "testing"

func TestRectangularTileCount(t *testing.T) {
	m := New(MapParameters{Shape: ShapeRectangular, Width: 10, Height: 8})
	if len(m.Tiles) != 80 {
		t.Fatalf("tile count = %d, want 80", len(m.Tiles))
	}
	if _, ok := m.TileAt(0, 0); !ok {
		t.Fatal("TileAt(0,0) not found")
	}
	if _, ok := m.TileAt(10, 0); ok {
		t.Fatal("TileAt(10,0) should not exist")
	}
}

func TestRectangularNeighborCounts(t *testing.T) {
	m := New(MapParameters{Shape: ShapeRectangular, Width: 10, Height: 8})

	interior, _ := m.TileAt(5, 4)
	if n := len(interior.Neighbors()); n != 6 {
		t.Errorf("interior tile has %d neighbors, want 6", n)
	}

	corner, _ := m.TileAt(0, 0)
	if n := len(corner.Neighbors()); n >= 6 || n == 0 {
		t.Errorf("corner tile has %d neighbors, want 1..5", n)
	}
}

func TestWorldWrapJoinsSeam(t *testing.T) {
	m := New(MapParameters{Shape: ShapeRectangular, Width: 10, Height: 8, WorldWrap: true})

	west, _ := m.TileAt(0, 4)
	found := false
	for _, n := range west.Neighbors() {
		if n.Col == 9 {
			found = true
		}
	}
	if !found {
		t.Error("wrap enabled but column 0 has no neighbor in column 9")
	}
	if n := len(west.Neighbors()); n != 6 {
		t.Errorf("seam tile on interior row has %d neighbors, want 6", n)
	}
}

func TestNoWrapKeepsSeamOpen(t *testing.T) {
	m := New(MapParameters{Shape: ShapeRectangular, Width: 10, Height: 8})
	west, _ := m.TileAt(0, 4)
	for _, n := range west.Neighbors() {
		if n.Col == 9 {
			t.Fatal("wrap disabled but seam columns are adjacent")
		}
	}
}

func TestHexagonalTileCount(t *testing.T) {
	// A hex map of radius N has 1 + 3N(N+1) tiles.
	for _, radius := range []int{0, 1, 3, 5} {
		m := New(MapParameters{Shape: ShapeHexagonal, Radius: radius})
		want := 1 + 3*radius*(radius+1)
		if len(m.Tiles) != want {
			t.Errorf("radius %d: tile count = %d, want %d", radius, len(m.Tiles), want)
		}
	}
}

func TestHexagonalCenterUnique(t *testing.T) {
	m := New(MapParameters{Shape: ShapeHexagonal, Radius: 4})
	centers := 0
	for _, tile := range m.Tiles {
		if tile.Latitude == 0 && tile.Longitude == 0 {
			centers++
		}
	}
	if centers != 1 {
		t.Fatalf("found %d center tiles, want 1", centers)
	}
}

func TestHexagonalNeighborCounts(t *testing.T) {
	m := New(MapParameters{Shape: ShapeHexagonal, Radius: 3})
	center, _ := m.TileAt(0, 0)
	if n := len(center.Neighbors()); n != 6 {
		t.Errorf("center has %d neighbors, want 6", n)
	}
	edge, _ := m.TileAt(3, 0)
	if n := len(edge.Neighbors()); n >= 6 {
		t.Errorf("edge tile has %d neighbors, want fewer than 6", n)
	}
}

func TestLatLongExtents(t *testing.T) {
	m := New(MapParameters{Shape: ShapeRectangular, Width: 9, Height: 5})
	if m.MaxLongitude != 4 || m.MaxLatitude != 2 {
		t.Fatalf("extents = (%f, %f), want (4, 2)", m.MaxLongitude, m.MaxLatitude)
	}
	for _, tile := range m.Tiles {
		if tile.Longitude < -m.MaxLongitude || tile.Longitude > m.MaxLongitude {
			t.Fatalf("tile (%d,%d) longitude %f outside extent", tile.Col, tile.Row, tile.Longitude)
		}
		if tile.Latitude < -m.MaxLatitude || tile.Latitude > m.MaxLatitude {
			t.Fatalf("tile (%d,%d) latitude %f outside extent", tile.Col, tile.Row, tile.Latitude)
		}
	}
}

func TestCanonicalTileOrder(t *testing.T) {
	p := MapParameters{Shape: ShapeHexagonal, Radius: 4}
	m1 := New(p)
	m2 := New(p)
	for i := range m1.Tiles {
		if m1.Tiles[i].Col != m2.Tiles[i].Col || m1.Tiles[i].Row != m2.Tiles[i].Row {
			t.Fatalf("tile order differs at index %d", i)
		}
	}
}
