package world

import "fmt"

// Point is a tile coordinate. X is the column, Y the row.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns p moved by (dx, dy)
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// String returns "x,y"
func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Size is a width/height pair measured in tiles.
type Size struct {
	W int `json:"w"`
	H int `json:"h"`
}

// Positive reports whether both components are greater than zero.
func (s Size) Positive() bool {
	return s.W > 0 && s.H > 0
}

// String returns "WxH"
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.W, s.H)
}

// Rect is an axis-aligned rectangle with inclusive corners.
type Rect struct {
	X0 int `json:"x0"`
	Y0 int `json:"y0"`
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
}

// RectFromPoints returns the rectangle spanning a and b in any order.
func RectFromPoints(a, b Point) Rect {
	r := Rect{X0: a.X, Y0: a.Y, X1: b.X, Y1: b.Y}
	if r.X0 > r.X1 {
		r.X0, r.X1 = r.X1, r.X0
	}
	if r.Y0 > r.Y1 {
		r.Y0, r.Y1 = r.Y1, r.Y0
	}
	return r
}

// Width returns the number of columns covered
func (r Rect) Width() int {
	return r.X1 - r.X0 + 1
}

// Height returns the number of rows covered
func (r Rect) Height() int {
	return r.Y1 - r.Y0 + 1
}

// Size returns the width and height in tiles
func (r Rect) Size() Size {
	return Size{W: r.Width(), H: r.Height()}
}

// Area returns the number of tiles covered
func (r Rect) Area() int {
	return r.Width() * r.Height()
}

// IsValid reports whether the corners are ordered.
func (r Rect) IsValid() bool {
	return r.X0 <= r.X1 && r.Y0 <= r.Y1
}

// Center returns the centre tile, rounding towards the top-left.
func (r Rect) Center() Point {
	return Point{X: (r.X0 + r.X1) / 2, Y: (r.Y0 + r.Y1) / 2}
}

// Contains reports whether p lies inside r
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X0 && p.X <= r.X1 && p.Y >= r.Y0 && p.Y <= r.Y1
}

// ContainsRect reports whether o lies entirely inside r
func (r Rect) ContainsRect(o Rect) bool {
	return o.X0 >= r.X0 && o.X1 <= r.X1 && o.Y0 >= r.Y0 && o.Y1 <= r.Y1
}

// Overlaps reports whether r and o share at least one tile
func (r Rect) Overlaps(o Rect) bool {
	return r.X0 <= o.X1 && o.X0 <= r.X1 && r.Y0 <= o.Y1 && o.Y0 <= r.Y1
}

// ForEach calls fn for every tile in r, row by row.
func (r Rect) ForEach(fn func(p Point)) {
	for y := r.Y0; y <= r.Y1; y++ {
		for x := r.X0; x <= r.X1; x++ {
			fn(Point{X: x, Y: y})
		}
	}
}

// String returns "(x0,y0)-(x1,y1)"
func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", r.X0, r.Y0, r.X1, r.Y1)
}
