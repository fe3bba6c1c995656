// Package world provides generic 2D tile-grid primitives: tiles, rectangles,
// directions and reachability. They carry no dungeon semantics of their own.
package world

import (
	"math"

	"github.com/rigterw/PCG/pkg/engine/errors"
)

// Tile is a tile type code. Codes index into a consumer's asset palette.
type Tile uint8

// Tile codes
const (
	TileWall  Tile = 0
	TileFloor Tile = 1
)

// IsWalkable reports whether the tile has been carved.
func (t Tile) IsWalkable() bool {
	return t >= TileFloor
}

// TileGrid is a width x height grid of tile codes with row-major storage.
// A new grid is all walls; carving only ever raises a tile.
type TileGrid struct {
	tiles  []Tile
	width  int
	height int
}

// NewTileGrid creates a grid of the given dimensions filled with walls
func NewTileGrid(width, height int) (*TileGrid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.InvalidArgumentf("grid dimensions must be positive, got %dx%d", width, height)
	}
	if width > math.MaxInt/height {
		return nil, errors.InvalidArgumentf("grid of %dx%d tiles is too large", width, height)
	}
	return &TileGrid{
		tiles:  make([]Tile, width*height),
		width:  width,
		height: height,
	}, nil
}

// Width returns the number of columns in the grid
func (g *TileGrid) Width() int {
	return g.width
}

// Height returns the number of rows in the grid
func (g *TileGrid) Height() int {
	return g.height
}

// Bounds returns the rectangle covering the whole grid
func (g *TileGrid) Bounds() Rect {
	return Rect{X0: 0, Y0: 0, X1: g.width - 1, Y1: g.height - 1}
}

// Playable returns the rectangle inside the 1-tile perimeter
func (g *TileGrid) Playable() Rect {
	return Rect{X0: 1, Y0: 1, X1: g.width - 2, Y1: g.height - 2}
}

// IsValidPosition checks if a position is within grid bounds
func (g *TileGrid) IsValidPosition(p Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// IsPlayablePosition checks if a position is within the playable area (not on the perimeter)
func (g *TileGrid) IsPlayablePosition(p Point) bool {
	return p.X >= 1 && p.X < g.width-1 && p.Y >= 1 && p.Y < g.height-1
}

// IsOnPerimeter checks if a position is on the edge of the grid
func (g *TileGrid) IsOnPerimeter(p Point) bool {
	return g.IsValidPosition(p) && !g.IsPlayablePosition(p)
}

// At returns the tile at p, or TileWall if p is out of bounds
func (g *TileGrid) At(p Point) Tile {
	if !g.IsValidPosition(p) {
		return TileWall
	}
	return g.tiles[p.Y*g.width+p.X]
}

// Carve raises every tile in r to at least t. Tiles already above t keep
// their code. The whole rectangle must lie in the grid.
func (g *TileGrid) Carve(r Rect, t Tile) error {
	if !r.IsValid() {
		return errors.InvalidArgumentf("cannot carve unordered rect %s", r)
	}
	if !g.Bounds().ContainsRect(r) {
		return errors.OutOfRangef("rect %s lies outside the %dx%d grid", r, g.width, g.height).
			WithMeta("rect", r.String())
	}
	for y := r.Y0; y <= r.Y1; y++ {
		row := g.tiles[y*g.width : (y+1)*g.width]
		for x := r.X0; x <= r.X1; x++ {
			if row[x] < t {
				row[x] = t
			}
		}
	}
	return nil
}

// ForEachCell iterates over all cells in row-major order
func (g *TileGrid) ForEachCell(fn func(p Point, t Tile)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			fn(Point{X: x, Y: y}, g.tiles[y*g.width+x])
		}
	}
}

// Count returns how many cells satisfy keep
func (g *TileGrid) Count(keep func(t Tile) bool) int {
	n := 0
	for _, t := range g.tiles {
		if keep(t) {
			n++
		}
	}
	return n
}

// Rows returns a copy of the grid as rows of raw codes, indexed [y][x]
func (g *TileGrid) Rows() [][]uint8 {
	rows := make([][]uint8, g.height)
	for y := range rows {
		row := make([]uint8, g.width)
		for x := range row {
			row[x] = uint8(g.tiles[y*g.width+x])
		}
		rows[y] = row
	}
	return rows
}

// Clone returns an independent copy of the grid
func (g *TileGrid) Clone() *TileGrid {
	tiles := make([]Tile, len(g.tiles))
	copy(tiles, g.tiles)
	return &TileGrid{tiles: tiles, width: g.width, height: g.height}
}
