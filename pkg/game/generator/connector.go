package generator

import (
	"slices"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"github.com/rigterw/PCG/pkg/engine/errors"
	"github.com/rigterw/PCG/pkg/engine/random"
	"github.com/rigterw/PCG/pkg/engine/world"
)

// Connector grows a spanning tree of corridors over a RoomGrid.
//
// Starting from one random room it repeatedly picks a connected room, a
// free side of that room, and digs to the unconnected neighbour on that
// side. Every room joins exactly once, so a grid of n rooms gets n-1
// corridors.
type Connector struct {
	rng  dice.Roller
	opts options
}

// NewConnector creates a connector drawing from rng
func NewConnector(rng dice.Roller, opts ...Option) *Connector {
	return &Connector{rng: rng, opts: applyOptions(opts)}
}

// connectState is the bookkeeping for one Connect call
type connectState struct {
	rooms     *RoomGrid
	used      []world.SideMask
	connected mapset.Set[int]
	// candidates holds connected rooms that may still lead somewhere, in
	// the order they joined; the set above is for membership only since
	// its iteration order is random.
	candidates []int
	order      []int
}

func newConnectState(rooms *RoomGrid) *connectState {
	s := &connectState{
		rooms:     rooms,
		used:      make([]world.SideMask, rooms.Len()),
		connected: mapset.New[int](),
		order:     make([]int, 0, rooms.Len()),
	}
	for id := range s.used {
		s.used[id] = rooms.BoundaryMask(id)
	}
	return s
}

// openSides returns the free sides of id whose neighbour is not connected yet
func (s *connectState) openSides(id int) []world.Direction {
	var open []world.Direction
	for _, d := range s.used[id].Free() {
		if n, ok := s.rooms.Neighbour(id, d); ok && !s.connected.Has(n) {
			open = append(open, d)
		}
	}
	return open
}

// Connect digs corridors into grid until every room is connected. It
// returns the corridors in digging order and the room ids in the order
// they joined, starting with the seed room.
func (c *Connector) Connect(rooms *RoomGrid, grid *world.TileGrid) ([]Corridor, []int, error) {
	total := rooms.Len()
	if total == 0 {
		return nil, nil, errors.InvalidArgumentf("no rooms to connect")
	}

	s := newConnectState(rooms)

	seed, err := random.Intn(c.rng, total)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to pick seed room")
	}
	s.join(seed)

	corridors, err := c.grow(s, grid)
	if err != nil {
		return nil, nil, err
	}
	return corridors, s.order, nil
}

// join marks id as connected
func (s *connectState) join(id int) {
	s.connected.Put(id)
	s.order = append(s.order, id)
	s.candidates = append(s.candidates, id)
}

// grow digs corridors until every room in s is connected
func (c *Connector) grow(s *connectState, grid *world.TileGrid) ([]Corridor, error) {
	total := s.rooms.Len()
	log := c.opts.logger.WithField("rooms", total)
	corridors := make([]Corridor, 0, total-len(s.order))
	stalls := 0

	for len(s.order) < total {
		if len(s.candidates) == 0 {
			return nil, errors.ConnectivityExhausted("no connected room has a free side").
				WithMeta("connected", len(s.order)).
				WithMeta("rooms", total)
		}
		if stalls > c.opts.stallLimit {
			return nil, errors.ConnectivityExhausted("no progress after repeated picks").
				WithMeta("stalls", stalls).
				WithMeta("connected", len(s.order)).
				WithMeta("rooms", total)
		}

		idx, err := random.Intn(c.rng, len(s.candidates))
		if err != nil {
			return nil, err
		}
		from := s.candidates[idx]

		// saturated rooms leave the pool for good: connected rooms never
		// become unconnected
		if len(s.openSides(from)) == 0 {
			s.candidates = slices.Delete(s.candidates, idx, idx+1)
			continue
		}

		side, to, found, err := c.pickSide(s, from)
		if err != nil {
			return nil, err
		}
		if !found {
			stalls++
			log.WithFields(logrus.Fields{"room": from, "stalls": stalls}).Debug("abandoned room pick")
			continue
		}
		stalls = 0

		segments, err := routeCorridor(c.rng, s.rooms.Rooms[from], s.rooms.Rooms[to], side)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to route corridor %d->%d", from, to)
		}
		for _, seg := range segments {
			if err := grid.Carve(seg, world.TileFloor); err != nil {
				return nil, errors.WrapWithCode(err, errors.CodeInternal, "corridor left the grid")
			}
		}

		s.used[from] = s.used[from].With(side)
		s.used[to] = s.used[to].With(side.Opposite())
		s.join(to)
		corridors = append(corridors, Corridor{From: from, To: to, Side: side, Segments: segments})
	}

	return corridors, nil
}

// pickSide draws free sides of from until one leads to an unconnected room,
// giving up after the configured number of draws.
func (c *Connector) pickSide(s *connectState, from int) (side world.Direction, to int, found bool, err error) {
	free := s.used[from].Free()
	for attempt := 0; attempt < c.opts.sideRetries; attempt++ {
		side, err = random.Choice(c.rng, free)
		if err != nil {
			return 0, 0, false, err
		}
		n, ok := s.rooms.Neighbour(from, side)
		if ok && !s.connected.Has(n) {
			return side, n, true, nil
		}
	}
	return 0, 0, false, nil
}
