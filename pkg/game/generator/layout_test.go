package generator

import (
	"testing"

	"github.com/rigterw/PCG/pkg/engine/random"
	"github.com/rigterw/PCG/pkg/engine/world"
)

func TestBuildRooms_Layout(t *testing.T) {
	minRoom, maxRoom := world.Size{W: 3, H: 3}, world.Size{W: 6, H: 6}
	for seed := int64(1); seed <= 100; seed++ {
		grid := mustGrid(t, 30, 22)
		rg, err := BuildRooms(random.NewSeededRoller(seed), grid, minRoom, maxRoom)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if rg.Len() != rg.Columns*rg.Rows {
			t.Fatalf("seed %d: %d rooms for a %dx%d grid", seed, rg.Len(), rg.Columns, rg.Rows)
		}

		carved := 0
		for id, room := range rg.Rooms {
			if !rg.Sections[id].ContainsRect(room) {
				t.Errorf("seed %d: room %d %s leaves its cell %s", seed, id, room, rg.Sections[id])
			}
			if !grid.Playable().ContainsRect(room) {
				t.Errorf("seed %d: room %d %s touches the border", seed, id, room)
			}
			for other := id + 1; other < rg.Len(); other++ {
				if room.Overlaps(rg.Rooms[other]) {
					t.Errorf("seed %d: rooms %d and %d overlap", seed, id, other)
				}
			}
			carved += room.Area()
		}
		if n := grid.Count(world.Tile.IsWalkable); n != carved {
			t.Errorf("seed %d: %d floor tiles, want %d", seed, n, carved)
		}
	}
}

func TestBuildRooms_SingleRoom(t *testing.T) {
	grid := mustGrid(t, 5, 5)
	size := world.Size{W: 3, H: 3}
	rg, err := BuildRooms(random.NewSeededRoller(1), grid, size, size)
	if err != nil {
		t.Fatalf("BuildRooms: %v", err)
	}
	if rg.Len() != 1 {
		t.Fatalf("got %d rooms, want 1", rg.Len())
	}
	if want := (world.Rect{X0: 1, Y0: 1, X1: 3, Y1: 3}); rg.Rooms[0] != want {
		t.Errorf("got room %s, want %s", rg.Rooms[0], want)
	}
}

func TestRoomGrid_Neighbours(t *testing.T) {
	rg := &RoomGrid{Columns: 3, Rows: 2, Rooms: make([]world.Rect, 6)}

	cases := []struct {
		id   int
		dir  world.Direction
		want int
		ok   bool
	}{
		{4, world.North, 1, true},
		{1, world.East, 2, true},
		{1, world.South, 4, true},
		{1, world.West, 0, true},
		{2, world.East, 0, false},
		{3, world.West, 0, false},
		{0, world.North, 0, false},
		{5, world.South, 0, false},
	}
	for _, tc := range cases {
		got, ok := rg.Neighbour(tc.id, tc.dir)
		if ok != tc.ok || (ok && got != tc.want) {
			t.Errorf("Neighbour(%d, %s) = (%d, %v), want (%d, %v)", tc.id, tc.dir, got, ok, tc.want, tc.ok)
		}
	}

	masks := map[int]world.SideMask{
		0: world.North.Bit() | world.West.Bit(),
		1: world.North.Bit(),
		5: world.South.Bit() | world.East.Bit(),
	}
	for id, want := range masks {
		if got := rg.BoundaryMask(id); got != want {
			t.Errorf("BoundaryMask(%d) = %04b, want %04b", id, got, want)
		}
	}

	single := &RoomGrid{Columns: 1, Rows: 1, Rooms: make([]world.Rect, 1)}
	if !single.BoundaryMask(0).Full() {
		t.Error("a lone room faces the boundary on every side")
	}
}
