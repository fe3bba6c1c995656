package generator

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/rigterw/PCG/pkg/engine/errors"
	"github.com/rigterw/PCG/pkg/engine/random"
)

// Span is an inclusive range of indices along one axis
type Span struct {
	Lo, Hi int
}

// Len returns the number of indices covered
func (s Span) Len() int {
	return s.Hi - s.Lo + 1
}

// Partition splits an axis of axisLength tiles into sections and returns the
// cut points in ascending order. Cut points are wall indices: with an
// implicit leading cut at 0, section i spans (cut[i-1], cut[i]). The last
// cut is always axisLength-1, the far border.
//
// Every section is between minSize and maxSize tiles wide, except the last
// one, which absorbs whatever is too short to hold another section and so
// may be wider than maxSize. It is never narrower than minSize.
func Partition(rng dice.Roller, minSize, maxSize, axisLength int) ([]int, error) {
	if minSize < 1 || maxSize < minSize {
		return nil, errors.PlacementExhausted("section sizes must satisfy 1 <= min <= max").
			WithMeta("min", minSize).
			WithMeta("max", maxSize)
	}
	if minSize > axisLength-2 {
		return nil, errors.PlacementExhausted("axis too short for one section").
			WithMeta("min", minSize).
			WithMeta("axis_length", axisLength)
	}

	last := axisLength - 1
	cuts := make([]int, 0, axisLength/(minSize+1)+1)
	start := 1
	for {
		w, err := random.Between(rng, minSize, maxSize)
		if err != nil {
			return nil, errors.Wrap(err, "failed to draw section width")
		}
		end := start + w
		if end >= last || last-(end+1) < minSize {
			cuts = append(cuts, last)
			return cuts, nil
		}
		cuts = append(cuts, end)
		start = end + 1
	}
}

// Sections turns cut points into the spans between them
func Sections(cuts []int) []Span {
	spans := make([]Span, len(cuts))
	prev := 0
	for i, c := range cuts {
		spans[i] = Span{Lo: prev + 1, Hi: c - 1}
		prev = c
	}
	return spans
}
