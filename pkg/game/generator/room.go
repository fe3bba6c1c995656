package generator

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/rigterw/PCG/pkg/engine/errors"
	"github.com/rigterw/PCG/pkg/engine/random"
	"github.com/rigterw/PCG/pkg/engine/world"
)

// PlaceRoom picks a random room inside section. The room is at least
// minRoom and at most maxRoom in each dimension and never leaves section.
func PlaceRoom(rng dice.Roller, section world.Rect, minRoom, maxRoom world.Size) (world.Rect, error) {
	if !minRoom.Positive() || maxRoom.W < minRoom.W || maxRoom.H < minRoom.H {
		return world.Rect{}, errors.InvalidArgumentf("room sizes must satisfy 0 < min <= max, got min %s max %s", minRoom, maxRoom)
	}
	if !section.IsValid() || section.Width() < minRoom.W || section.Height() < minRoom.H {
		return world.Rect{}, errors.PlacementExhausted("section too small for a room").
			WithMeta("section", section.String()).
			WithMeta("min_room", minRoom.String())
	}

	x0, x1, err := placeSpan(rng, Span{Lo: section.X0, Hi: section.X1}, minRoom.W, maxRoom.W)
	if err != nil {
		return world.Rect{}, err
	}
	y0, y1, err := placeSpan(rng, Span{Lo: section.Y0, Hi: section.Y1}, minRoom.H, maxRoom.H)
	if err != nil {
		return world.Rect{}, err
	}
	return world.Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}, nil
}

// placeSpan picks [lo, hi] inside s with a length in [minLen, maxLen]
func placeSpan(rng dice.Roller, s Span, minLen, maxLen int) (lo, hi int, err error) {
	lo, err = random.Between(rng, s.Lo, s.Hi-minLen+1)
	if err != nil {
		return 0, 0, errors.Wrap(err, "failed to draw room corner")
	}
	length, err := random.Between(rng, minLen, min(maxLen, s.Hi-lo+1))
	if err != nil {
		return 0, 0, errors.Wrap(err, "failed to draw room size")
	}
	return lo, lo + length - 1, nil
}
