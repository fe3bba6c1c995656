package levelgen

import (
	"github.com/rigterw/PCG/pkg/engine/errors"
	"github.com/rigterw/PCG/pkg/engine/world"
	"github.com/rigterw/PCG/pkg/game/level"
)

// Verify checks that a finished level is playable:
//   - every floor tile is reachable from the first connected room;
//   - every object stands on floor inside the room it names;
//   - when start and goal are in different rooms, every key and weapon can
//     be reached from the start without entering the goal room.
//
// A failure is an INTERNAL error: the generator produced a broken level.
func Verify(data *level.Data) error {
	order := data.ConnectionOrder()
	rooms := data.Rooms()
	if len(order) == 0 || len(rooms) == 0 {
		return errors.Internal("level has no rooms")
	}
	grid := data.Grid()

	origin := rooms[order[0]].Center()
	reach := world.Reachable(grid, origin)
	if walkable := grid.Count(world.Tile.IsWalkable); reach.Size() != walkable {
		return errors.Internal("level floor is not a single connected area").
			WithMeta("reachable", reach.Size()).
			WithMeta("floor", walkable)
	}

	for _, o := range data.Objects() {
		if o.Room < 0 || o.Room >= len(rooms) || !rooms[o.Room].Contains(o.Cell) {
			return errors.Internalf("%s at %s is outside room %d", o.Kind, o.Cell, o.Room)
		}
		if !grid.At(o.Cell).IsWalkable() {
			return errors.Internalf("%s at %s stands on a wall", o.Kind, o.Cell)
		}
	}

	return verifyGoalLast(data, grid, rooms)
}

// verifyGoalLast checks that the goal room is never a gatekeeper for the
// items the player needs on the way.
func verifyGoalLast(data *level.Data, grid *world.TileGrid, rooms []world.Rect) error {
	starts := data.ObjectsOf(level.ObjectStart)
	goals := data.ObjectsOf(level.ObjectGoal)
	if len(starts) == 0 || len(goals) == 0 || starts[0].Room == goals[0].Room {
		return nil
	}

	goalRoom := rooms[goals[0].Room]
	before := world.ReachableAvoiding(grid, starts[0].Cell, goalRoom.Contains)

	for _, kind := range []level.ObjectKind{level.ObjectKey, level.ObjectWeapon} {
		for _, o := range data.ObjectsOf(kind) {
			if !before.Has(o.Cell) {
				return errors.Internalf("%s at %s is only reachable through the goal room", o.Kind, o.Cell).
					WithMeta("goal_room", goals[0].Room)
			}
		}
	}
	return nil
}
