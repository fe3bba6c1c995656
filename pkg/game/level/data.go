// Package level holds the finished output of a generation: the tile grid,
// rooms, corridors and object placements. Data is immutable once built;
// every getter hands out a copy.
package level

import (
	"encoding/json"

	"github.com/rigterw/PCG/pkg/engine/world"
)

// Parts are the pieces a generator hands to New.
type Parts struct {
	Grid            *world.TileGrid
	TileSize        float64
	Seed            int64
	Rooms           []world.Rect
	Corridors       []Corridor
	ConnectionOrder []int
	Objects         []Placement
}

// Data is a generated level
type Data struct {
	grid      *world.TileGrid
	tileSize  float64
	seed      int64
	rooms     []world.Rect
	corridors []Corridor
	order     []int
	objects   []Placement
}

// New freezes parts into a Data. The grid and slices are copied, so the
// caller may keep mutating its own values.
func New(p Parts) *Data {
	return &Data{
		grid:      p.Grid.Clone(),
		tileSize:  p.TileSize,
		seed:      p.Seed,
		rooms:     cloneSlice(p.Rooms),
		corridors: cloneCorridors(p.Corridors),
		order:     cloneSlice(p.ConnectionOrder),
		objects:   cloneSlice(p.Objects),
	}
}

func cloneSlice[T any](s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	return out
}

func cloneCorridors(cs []Corridor) []Corridor {
	out := make([]Corridor, len(cs))
	for i, c := range cs {
		out[i] = c
		out[i].Segments = cloneSlice(c.Segments)
	}
	return out
}

// Width returns the level width in tiles
func (d *Data) Width() int { return d.grid.Width() }

// Height returns the level height in tiles
func (d *Data) Height() int { return d.grid.Height() }

// TileSize returns the world-unit size of one tile
func (d *Data) TileSize() float64 { return d.tileSize }

// Seed returns the seed the level was generated from
func (d *Data) Seed() int64 { return d.seed }

// Tiles returns the tile codes as rows, indexed [y][x]
func (d *Data) Tiles() [][]uint8 { return d.grid.Rows() }

// Tile returns the tile at p; out of bounds is a wall
func (d *Data) Tile(p world.Point) world.Tile { return d.grid.At(p) }

// Grid returns a copy of the tile grid
func (d *Data) Grid() *world.TileGrid { return d.grid.Clone() }

// Rooms returns the room rectangles indexed by room id
func (d *Data) Rooms() []world.Rect { return cloneSlice(d.rooms) }

// Corridors returns the carved corridors in the order they were dug
func (d *Data) Corridors() []Corridor { return cloneCorridors(d.corridors) }

// ConnectionOrder returns room ids in the order they joined the level
func (d *Data) ConnectionOrder() []int { return cloneSlice(d.order) }

// Objects returns the object placements
func (d *Data) Objects() []Placement { return cloneSlice(d.objects) }

// ObjectsOf returns the placements of one kind
func (d *Data) ObjectsOf(kind ObjectKind) []Placement {
	var out []Placement
	for _, o := range d.objects {
		if o.Kind == kind {
			out = append(out, o)
		}
	}
	return out
}

// RoomAt returns the id of the room containing p, or -1 for walls and corridors.
func (d *Data) RoomAt(p world.Point) int {
	for id, r := range d.rooms {
		if r.Contains(p) {
			return id
		}
	}
	return -1
}

type dataJSON struct {
	Width           int          `json:"width"`
	Height          int          `json:"height"`
	TileSize        float64      `json:"tile_size"`
	Seed            int64        `json:"seed"`
	Tiles           [][]int      `json:"tiles"`
	Rooms           []world.Rect `json:"rooms"`
	Corridors       []Corridor   `json:"corridors"`
	ConnectionOrder []int        `json:"connection_order"`
	Objects         []Placement  `json:"objects"`
}

// MarshalJSON encodes the level. Tiles are written as numbers rather than
// the base64 encoding/json would use for []uint8.
func (d *Data) MarshalJSON() ([]byte, error) {
	tiles := make([][]int, d.grid.Height())
	for y, row := range d.grid.Rows() {
		tiles[y] = make([]int, len(row))
		for x, t := range row {
			tiles[y][x] = int(t)
		}
	}
	return json.Marshal(dataJSON{
		Width:           d.grid.Width(),
		Height:          d.grid.Height(),
		TileSize:        d.tileSize,
		Seed:            d.seed,
		Tiles:           tiles,
		Rooms:           d.rooms,
		Corridors:       d.corridors,
		ConnectionOrder: d.order,
		Objects:         d.objects,
	})
}
