package world

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"
)

// Reachable collects every walkable tile reachable from start via N/E/S/W.
// The result is empty if start itself is not walkable.
func Reachable(g *TileGrid, start Point) mapset.Set[Point] {
	return ReachableAvoiding(g, start, nil)
}

// ReachableAvoiding is Reachable with the tiles for which blocked returns
// true treated as walls. A nil blocked blocks nothing.
func ReachableAvoiding(g *TileGrid, start Point, blocked func(Point) bool) mapset.Set[Point] {
	passable := func(p Point) bool {
		return g.At(p).IsWalkable() && (blocked == nil || !blocked(p))
	}

	visited := mapset.New[Point]()
	if !passable(start) {
		return visited
	}

	q := queue.New[Point]()
	q.Enqueue(start)
	visited.Put(start)

	for !q.Empty() {
		current := q.Dequeue()
		for _, dir := range AllDirections() {
			dx, dy := dir.Delta()
			n := current.Add(dx, dy)
			if passable(n) && !visited.Has(n) {
				visited.Put(n)
				q.Enqueue(n)
			}
		}
	}

	return visited
}

// PathDistance returns the length of the shortest walkable path from a to b.
// ok is false when b cannot be reached.
func PathDistance(g *TileGrid, a, b Point) (dist int, ok bool) {
	if !g.At(a).IsWalkable() || !g.At(b).IsWalkable() {
		return 0, false
	}

	type cellDist struct {
		p    Point
		dist int
	}

	visited := mapset.New[Point]()
	q := queue.New[cellDist]()
	q.Enqueue(cellDist{a, 0})
	visited.Put(a)

	for !q.Empty() {
		current := q.Dequeue()
		if current.p == b {
			return current.dist, true
		}
		for _, dir := range AllDirections() {
			dx, dy := dir.Delta()
			n := current.p.Add(dx, dy)
			if g.At(n).IsWalkable() && !visited.Has(n) {
				visited.Put(n)
				q.Enqueue(cellDist{n, current.dist + 1})
			}
		}
	}

	return 0, false
}
