package generator

import (
	"testing"

	"github.com/rigterw/PCG/pkg/engine/errors"
	"github.com/rigterw/PCG/pkg/engine/random"
	"github.com/rigterw/PCG/pkg/engine/world"
)

func buildAndConnect(t *testing.T, seed int64, w, h int, minRoom, maxRoom world.Size) (*world.TileGrid, *RoomGrid, []Corridor, []int) {
	t.Helper()
	rng := random.NewSeededRoller(seed)
	grid := mustGrid(t, w, h)
	rg, err := BuildRooms(rng, grid, minRoom, maxRoom)
	if err != nil {
		t.Fatalf("seed %d: BuildRooms: %v", seed, err)
	}
	corridors, order, err := NewConnector(rng).Connect(rg, grid)
	if err != nil {
		t.Fatalf("seed %d: Connect: %v", seed, err)
	}
	return grid, rg, corridors, order
}

func TestConnect_SpanningTree(t *testing.T) {
	minRoom, maxRoom := world.Size{W: 3, H: 3}, world.Size{W: 6, H: 6}
	for seed := int64(1); seed <= 100; seed++ {
		grid, rg, corridors, order := buildAndConnect(t, seed, 34, 26, minRoom, maxRoom)

		if len(corridors) != rg.Len()-1 {
			t.Errorf("seed %d: got %d corridors for %d rooms, want %d", seed, len(corridors), rg.Len(), rg.Len()-1)
		}
		if len(order) != rg.Len() {
			t.Fatalf("seed %d: order has %d rooms, want %d", seed, len(order), rg.Len())
		}

		joined := map[int]bool{order[0]: true}
		for i, c := range corridors {
			if c.To != order[i+1] {
				t.Errorf("seed %d: corridor %d leads to %d, order says %d", seed, i, c.To, order[i+1])
			}
			if !joined[c.From] {
				t.Errorf("seed %d: corridor %d starts in unconnected room %d", seed, i, c.From)
			}
			if joined[c.To] {
				t.Errorf("seed %d: room %d joined twice", seed, c.To)
			}
			joined[c.To] = true

			if n, ok := rg.Neighbour(c.From, c.Side); !ok || n != c.To {
				t.Errorf("seed %d: corridor %d->%d does not match side %s", seed, c.From, c.To, c.Side)
			}
			if len(c.Segments) < 1 || len(c.Segments) > 3 {
				t.Errorf("seed %d: corridor %d has %d segments", seed, i, len(c.Segments))
			}
			for _, seg := range c.Segments {
				if seg.Width() != 1 && seg.Height() != 1 {
					t.Errorf("seed %d: segment %s is wider than one tile", seed, seg)
				}
				for id, room := range rg.Rooms {
					if seg.Overlaps(room) {
						t.Errorf("seed %d: corridor %d cuts through room %d", seed, i, id)
					}
				}
			}
		}

		checkAllFloorReachable(t, grid, rg.Rooms[order[0]].Center())
	}
}

func TestConnect_SingleRoom(t *testing.T) {
	size := world.Size{W: 3, H: 3}
	grid, _, corridors, order := buildAndConnect(t, 4, 5, 5, size, size)
	if len(corridors) != 0 {
		t.Errorf("got %d corridors, want 0", len(corridors))
	}
	if len(order) != 1 || order[0] != 0 {
		t.Errorf("got order %v, want [0]", order)
	}
	if n := grid.Count(world.Tile.IsWalkable); n != 9 {
		t.Errorf("got %d floor tiles, want 9", n)
	}
}

func TestConnect_Deterministic(t *testing.T) {
	minRoom, maxRoom := world.Size{W: 3, H: 3}, world.Size{W: 5, H: 5}
	gridA, _, corridorsA, orderA := buildAndConnect(t, 21, 30, 30, minRoom, maxRoom)
	gridB, _, corridorsB, orderB := buildAndConnect(t, 21, 30, 30, minRoom, maxRoom)

	if len(orderA) != len(orderB) || len(corridorsA) != len(corridorsB) {
		t.Fatal("same seed produced different room counts")
	}
	for i := range orderA {
		if orderA[i] != orderB[i] {
			t.Fatalf("orders differ at %d: %v vs %v", i, orderA, orderB)
		}
	}
	rowsA, rowsB := gridA.Rows(), gridB.Rows()
	for y := range rowsA {
		for x := range rowsA[y] {
			if rowsA[y][x] != rowsB[y][x] {
				t.Fatalf("grids differ at %d,%d", x, y)
			}
		}
	}
}

// threeByTwo is a 3x2 room grid with 3x3 rooms; only adjacency matters
func threeByTwo() *RoomGrid {
	rg := &RoomGrid{Columns: 3, Rows: 2}
	for row := 0; row < 2; row++ {
		for col := 0; col < 3; col++ {
			x, y := 1+col*4, 1+row*4
			rg.Rooms = append(rg.Rooms, world.Rect{X0: x, Y0: y, X1: x + 2, Y1: y + 2})
		}
	}
	rg.Sections = rg.Rooms
	return rg
}

func TestConnect_StallLimit(t *testing.T) {
	rg := threeByTwo()
	s := newConnectState(rg)
	// room 0 still has South open but always draws East, which is taken
	s.join(0)
	s.join(1)
	s.join(2)

	c := NewConnector(constRoller(1), WithSideRetries(3), WithStallLimit(5))
	_, err := c.grow(s, mustGrid(t, 13, 9))
	if !errors.IsConnectivityExhausted(err) {
		t.Fatalf("got %v, want CONNECTIVITY_EXHAUSTED", err)
	}
	if stalls := errors.GetMeta(err)["stalls"]; stalls != 6 {
		t.Errorf("gave up after %v stalls, want 6", stalls)
	}
}

func TestConnect_NoCandidates(t *testing.T) {
	s := newConnectState(threeByTwo())
	s.join(0)
	s.candidates = nil

	_, err := NewConnector(constRoller(1)).grow(s, mustGrid(t, 13, 9))
	if !errors.IsConnectivityExhausted(err) {
		t.Fatalf("got %v, want CONNECTIVITY_EXHAUSTED", err)
	}
}

func TestConnect_SaturatedRoomsLeavePool(t *testing.T) {
	rg := threeByTwo()
	grid := mustGrid(t, 13, 9)
	for _, r := range rg.Rooms {
		if err := grid.Carve(r, world.TileFloor); err != nil {
			t.Fatalf("Carve: %v", err)
		}
	}

	corridors, order, err := NewConnector(constRoller(1)).Connect(rg, grid)
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	if len(corridors) != 5 || len(order) != 6 {
		t.Errorf("got %d corridors and %d joined rooms, want 5 and 6", len(corridors), len(order))
	}
	checkAllFloorReachable(t, grid, rg.Rooms[0].Center())
}

func TestRouteCorridor_StaysInGap(t *testing.T) {
	left := world.Rect{X0: 1, Y0: 2, X1: 4, Y1: 6}
	right := world.Rect{X0: 9, Y0: 1, X1: 11, Y1: 3}

	for seed := int64(1); seed <= 50; seed++ {
		for _, d := range []world.Direction{world.East, world.West} {
			a, b := left, right
			if d == world.West {
				a, b = right, left
			}
			segs, err := routeCorridor(random.NewSeededRoller(seed), a, b, d)
			if err != nil {
				t.Fatalf("seed %d %s: %v", seed, d, err)
			}
			tiles := 0
			for _, s := range segs {
				if s.X0 <= left.X1 || s.X1 >= right.X0 {
					t.Errorf("seed %d %s: segment %s leaves the gap", seed, d, s)
				}
				tiles += s.Area()
			}
			if want := (Corridor{Segments: segs}).Length(); tiles != want {
				t.Errorf("Length() = %d, want %d", want, tiles)
			}
		}
	}

	if _, err := routeCorridor(random.NewSeededRoller(1), left, right, world.Direction(9)); !errors.IsInvalidArgument(err) {
		t.Errorf("bad direction: got %v, want INVALID_ARGUMENT", err)
	}
}
