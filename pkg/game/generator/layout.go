package generator

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/rigterw/PCG/pkg/engine/errors"
	"github.com/rigterw/PCG/pkg/engine/world"
)

// RoomGrid is the Columns x Rows arrangement of rooms. Room ids are
// row*Columns + col.
type RoomGrid struct {
	Columns  int
	Rows     int
	Sections []world.Rect // partition cell of each room
	Rooms    []world.Rect
}

// Len returns the number of rooms
func (g *RoomGrid) Len() int {
	return len(g.Rooms)
}

// ID returns the room id at (col, row)
func (g *RoomGrid) ID(col, row int) int {
	return row*g.Columns + col
}

// Cell returns the (col, row) of a room id
func (g *RoomGrid) Cell(id int) (col, row int) {
	return id % g.Columns, id / g.Columns
}

// Neighbour returns the id of the room beside id in direction d.
// ok is false when d leads off the grid.
func (g *RoomGrid) Neighbour(id int, d world.Direction) (n int, ok bool) {
	col, row := g.Cell(id)
	dx, dy := d.Delta()
	col, row = col+dx, row+dy
	if !d.IsValid() || col < 0 || col >= g.Columns || row < 0 || row >= g.Rows {
		return 0, false
	}
	return g.ID(col, row), true
}

// BoundaryMask returns the sides of a room that face the level edge
func (g *RoomGrid) BoundaryMask(id int) world.SideMask {
	var m world.SideMask
	for _, d := range world.AllDirections() {
		if _, ok := g.Neighbour(id, d); !ok {
			m = m.With(d)
		}
	}
	return m
}

// BuildRooms partitions both axes of grid, places one room in every cell and
// carves the rooms as floor.
func BuildRooms(rng dice.Roller, grid *world.TileGrid, minRoom, maxRoom world.Size) (*RoomGrid, error) {
	xCuts, err := Partition(rng, minRoom.W, maxRoom.W, grid.Width())
	if err != nil {
		return nil, errors.Wrap(err, "failed to partition columns")
	}
	yCuts, err := Partition(rng, minRoom.H, maxRoom.H, grid.Height())
	if err != nil {
		return nil, errors.Wrap(err, "failed to partition rows")
	}

	cols, rows := Sections(xCuts), Sections(yCuts)
	rg := &RoomGrid{
		Columns:  len(cols),
		Rows:     len(rows),
		Sections: make([]world.Rect, 0, len(cols)*len(rows)),
		Rooms:    make([]world.Rect, 0, len(cols)*len(rows)),
	}

	for _, ys := range rows {
		for _, xs := range cols {
			section := world.Rect{X0: xs.Lo, Y0: ys.Lo, X1: xs.Hi, Y1: ys.Hi}
			room, err := PlaceRoom(rng, section, minRoom, maxRoom)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to place room %d", len(rg.Rooms))
			}
			if err := grid.Carve(room, world.TileFloor); err != nil {
				return nil, errors.WrapWithCode(err, errors.CodeInternal, "room left the grid")
			}
			rg.Sections = append(rg.Sections, section)
			rg.Rooms = append(rg.Rooms, room)
		}
	}

	return rg, nil
}
