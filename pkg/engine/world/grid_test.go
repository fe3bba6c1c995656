package world

import (
	"math"
	"testing"

	"github.com/rigterw/PCG/pkg/engine/errors"
)

func TestNewTileGrid_AllWalls(t *testing.T) {
	g, err := NewTileGrid(6, 4)
	if err != nil {
		t.Fatalf("NewTileGrid: %v", err)
	}
	if g.Width() != 6 || g.Height() != 4 {
		t.Errorf("got %dx%d, want 6x4", g.Width(), g.Height())
	}
	if n := g.Count(Tile.IsWalkable); n != 0 {
		t.Errorf("got %d walkable tiles in a new grid, want 0", n)
	}
}

func TestNewTileGrid_RejectsBadDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, -1}, {1 << 62, 4}, {math.MaxInt, 2}} {
		if _, err := NewTileGrid(dims[0], dims[1]); !errors.IsInvalidArgument(err) {
			t.Errorf("NewTileGrid(%d, %d): got %v, want INVALID_ARGUMENT", dims[0], dims[1], err)
		}
	}
}

func TestCarve(t *testing.T) {
	g, _ := NewTileGrid(10, 10)
	r := Rect{X0: 2, Y0: 3, X1: 4, Y1: 5}
	if err := g.Carve(r, TileFloor); err != nil {
		t.Fatalf("Carve: %v", err)
	}
	if n := g.Count(Tile.IsWalkable); n != r.Area() {
		t.Errorf("got %d walkable tiles, want %d", n, r.Area())
	}
	if g.At(Point{X: 2, Y: 3}) != TileFloor {
		t.Error("corner (2,3) should be floor")
	}
	if g.At(Point{X: 5, Y: 3}) != TileWall {
		t.Error("(5,3) outside the rect should stay a wall")
	}
}

func TestCarve_NeverLowers(t *testing.T) {
	g, _ := NewTileGrid(5, 5)
	r := Rect{X0: 1, Y0: 1, X1: 3, Y1: 3}
	_ = g.Carve(r, TileFloor)
	if err := g.Carve(r, TileWall); err != nil {
		t.Fatalf("Carve: %v", err)
	}
	if g.At(Point{X: 2, Y: 2}) != TileFloor {
		t.Error("carving a wall over floor should leave floor")
	}
}

func TestCarve_Errors(t *testing.T) {
	g, _ := NewTileGrid(5, 5)

	err := g.Carve(Rect{X0: 3, Y0: 1, X1: 1, Y1: 1}, TileFloor)
	if !errors.IsInvalidArgument(err) {
		t.Errorf("unordered rect: got %v, want INVALID_ARGUMENT", err)
	}

	err = g.Carve(Rect{X0: 3, Y0: 3, X1: 5, Y1: 4}, TileFloor)
	if !errors.IsOutOfRange(err) {
		t.Errorf("rect past the edge: got %v, want OUT_OF_RANGE", err)
	}
	if n := g.Count(Tile.IsWalkable); n != 0 {
		t.Errorf("failed carve changed %d tiles", n)
	}
}

func TestAt_OutOfBoundsIsWall(t *testing.T) {
	g, _ := NewTileGrid(3, 3)
	_ = g.Carve(g.Bounds(), TileFloor)
	for _, p := range []Point{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
		if g.At(p) != TileWall {
			t.Errorf("At(%s) = %d, want wall", p, g.At(p))
		}
	}
}

func TestPerimeter(t *testing.T) {
	g, _ := NewTileGrid(5, 4)
	if want := (Rect{X0: 1, Y0: 1, X1: 3, Y1: 2}); g.Playable() != want {
		t.Errorf("Playable() = %s, want %s", g.Playable(), want)
	}
	if !g.IsOnPerimeter(Point{X: 0, Y: 2}) {
		t.Error("(0,2) should be on the perimeter")
	}
	if g.IsOnPerimeter(Point{X: 2, Y: 2}) {
		t.Error("(2,2) should not be on the perimeter")
	}
	if g.IsOnPerimeter(Point{X: 9, Y: 9}) {
		t.Error("out-of-bounds points are not on the perimeter")
	}
}

func TestRows_IsACopy(t *testing.T) {
	g, _ := NewTileGrid(3, 2)
	_ = g.Carve(Rect{X0: 1, Y0: 0, X1: 1, Y1: 1}, TileFloor)

	rows := g.Rows()
	if len(rows) != 2 || len(rows[0]) != 3 {
		t.Fatalf("got %dx%d rows, want 2x3", len(rows), len(rows[0]))
	}
	if rows[1][1] != uint8(TileFloor) {
		t.Errorf("rows[1][1] = %d, want %d", rows[1][1], TileFloor)
	}
	rows[0][0] = 9
	if g.At(Point{X: 0, Y: 0}) != TileWall {
		t.Error("mutating Rows() output changed the grid")
	}
}

func TestClone_Independent(t *testing.T) {
	g, _ := NewTileGrid(3, 3)
	c := g.Clone()
	_ = c.Carve(Rect{X0: 1, Y0: 1, X1: 1, Y1: 1}, TileFloor)
	if g.At(Point{X: 1, Y: 1}) != TileWall {
		t.Error("carving the clone changed the original")
	}
}

func TestRect(t *testing.T) {
	r := RectFromPoints(Point{X: 5, Y: 1}, Point{X: 2, Y: 4})
	if want := (Rect{X0: 2, Y0: 1, X1: 5, Y1: 4}); r != want {
		t.Fatalf("RectFromPoints = %s, want %s", r, want)
	}
	if r.Width() != 4 || r.Height() != 4 || r.Area() != 16 {
		t.Errorf("got size %s area %d, want 4x4 area 16", r.Size(), r.Area())
	}
	if c := r.Center(); c != (Point{X: 3, Y: 2}) {
		t.Errorf("Center() = %s, want 3,2", c)
	}
	if !r.Overlaps(Rect{X0: 5, Y0: 4, X1: 8, Y1: 8}) {
		t.Error("rects sharing a corner tile should overlap")
	}
	if r.Overlaps(Rect{X0: 6, Y0: 1, X1: 8, Y1: 4}) {
		t.Error("adjacent rects should not overlap")
	}

	n := 0
	r.ForEach(func(p Point) {
		if !r.Contains(p) {
			t.Errorf("ForEach yielded %s outside %s", p, r)
		}
		n++
	})
	if n != r.Area() {
		t.Errorf("ForEach visited %d tiles, want %d", n, r.Area())
	}
}
