package generator

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/rigterw/PCG/pkg/engine/errors"
	"github.com/rigterw/PCG/pkg/engine/random"
	"github.com/rigterw/PCG/pkg/engine/world"
)

// Corridor joins room From to room To, leaving From on Side.
// Segments are disjoint one-tile-wide rects forming a path with at most one
// jog, which always lies in the wall gap between the two rooms.
type Corridor struct {
	From     int
	To       int
	Side     world.Direction
	Segments []world.Rect
}

// Length returns the number of tiles the corridor covers
func (c Corridor) Length() int {
	n := 0
	for _, s := range c.Segments {
		n += s.Area()
	}
	return n
}

// routeCorridor digs a path from room a towards its neighbour b on side d
func routeCorridor(rng dice.Roller, a, b world.Rect, d world.Direction) ([]world.Rect, error) {
	switch d {
	case world.East:
		return routeHorizontal(rng, a, b)
	case world.West:
		return routeHorizontal(rng, b, a)
	case world.South:
		return routeVertical(rng, a, b)
	case world.North:
		return routeVertical(rng, b, a)
	default:
		return nil, errors.InvalidArgumentf("cannot route corridor towards %s", d)
	}
}

// routeHorizontal joins left to right: out of left's east wall at row ya,
// along to the bend column, jog to row yb, then on into right's west wall.
func routeHorizontal(rng dice.Roller, left, right world.Rect) ([]world.Rect, error) {
	if left.X1+1 > right.X0-1 {
		return nil, errors.Internalf("rooms %s and %s leave no gap", left, right)
	}
	ya, err := random.Between(rng, left.Y0, left.Y1)
	if err != nil {
		return nil, err
	}
	yb, err := random.Between(rng, right.Y0, right.Y1)
	if err != nil {
		return nil, err
	}
	bend, err := random.Between(rng, left.X1+1, right.X0-1)
	if err != nil {
		return nil, err
	}

	segments := []world.Rect{{X0: left.X1 + 1, Y0: ya, X1: bend, Y1: ya}}
	if yb != ya {
		step := 1
		if yb < ya {
			step = -1
		}
		segments = append(segments, world.RectFromPoints(
			world.Point{X: bend, Y: ya + step},
			world.Point{X: bend, Y: yb},
		))
	}
	if bend < right.X0-1 {
		segments = append(segments, world.Rect{X0: bend + 1, Y0: yb, X1: right.X0 - 1, Y1: yb})
	}
	return segments, nil
}

// routeVertical joins top to bottom, mirroring routeHorizontal
func routeVertical(rng dice.Roller, top, bottom world.Rect) ([]world.Rect, error) {
	if top.Y1+1 > bottom.Y0-1 {
		return nil, errors.Internalf("rooms %s and %s leave no gap", top, bottom)
	}
	xa, err := random.Between(rng, top.X0, top.X1)
	if err != nil {
		return nil, err
	}
	xb, err := random.Between(rng, bottom.X0, bottom.X1)
	if err != nil {
		return nil, err
	}
	bend, err := random.Between(rng, top.Y1+1, bottom.Y0-1)
	if err != nil {
		return nil, err
	}

	segments := []world.Rect{{X0: xa, Y0: top.Y1 + 1, X1: xa, Y1: bend}}
	if xb != xa {
		step := 1
		if xb < xa {
			step = -1
		}
		segments = append(segments, world.RectFromPoints(
			world.Point{X: xa + step, Y: bend},
			world.Point{X: xb, Y: bend},
		))
	}
	if bend < bottom.Y0-1 {
		segments = append(segments, world.Rect{X0: xb, Y0: bend + 1, X1: xb, Y1: bottom.Y0 - 1})
	}
	return segments, nil
}
