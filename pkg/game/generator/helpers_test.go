package generator

import (
	"testing"

	"github.com/rigterw/PCG/pkg/engine/errors"
	"github.com/rigterw/PCG/pkg/engine/world"
)

// constRoller always rolls the same face, capped at the die size
type constRoller int

func (r constRoller) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, errors.InvalidArgumentf("die size must be positive, got %d", size)
	}
	return min(int(r), size), nil
}

func (r constRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func mustGrid(t *testing.T, w, h int) *world.TileGrid {
	t.Helper()
	g, err := world.NewTileGrid(w, h)
	if err != nil {
		t.Fatalf("NewTileGrid(%d, %d): %v", w, h, err)
	}
	return g
}

// checkAllFloorReachable fails the test unless every floor tile of g can be
// reached from start.
func checkAllFloorReachable(t *testing.T, g *world.TileGrid, start world.Point) {
	t.Helper()
	total := g.Count(world.Tile.IsWalkable)
	reachable := world.Reachable(g, start).Size()
	if reachable != total {
		t.Errorf("reachable floor tiles %d != total floor tiles %d (isolated rooms)", reachable, total)
	}
}
