package levelgen

import (
	"slices"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/zyedidia/generic/mapset"

	"github.com/rigterw/PCG/pkg/engine/errors"
	"github.com/rigterw/PCG/pkg/engine/random"
	"github.com/rigterw/PCG/pkg/engine/world"
	"github.com/rigterw/PCG/pkg/game/level"
)

// Counts says which objects to place on a level
type Counts struct {
	Markers bool `json:"markers" mapstructure:"markers"`
	Keys    int  `json:"keys" mapstructure:"keys"`
	Weapons int  `json:"weapons" mapstructure:"weapons"`
	Enemies int  `json:"enemies" mapstructure:"enemies"`
}

// IsZero reports whether Counts asks for nothing at all
func (c Counts) IsZero() bool {
	return !c.Markers && c.Keys == 0 && c.Weapons == 0 && c.Enemies == 0
}

// Total returns the number of placements Counts asks for. The counts must
// already be bounded, as Config.Validate does; Total does not guard overflow.
func (c Counts) Total() int {
	n := c.Keys + c.Weapons + c.Enemies
	if c.Markers {
		n += 2
	}
	return n
}

// placer tracks occupied tiles while objects go down one at a time
type placer struct {
	rng      dice.Roller
	rooms    []world.Rect
	tileSize float64
	occupied mapset.Set[world.Point]
	out      []level.Placement
}

// PlaceObjects places objects into rooms following the connection order.
//
// Start goes to the centre of the first room connected and Goal to the
// centre of the last; with a single room they share it. Keys go to distinct
// rooms other than the goal room, so every key is reachable before the goal.
// Weapons avoid the goal room and enemies avoid the start room. An object
// takes its room's centre when free, otherwise a random free tile of the room.
func PlaceObjects(rng dice.Roller, rooms []world.Rect, order []int, counts Counts, tileSize float64) ([]level.Placement, error) {
	if counts.Keys < 0 || counts.Weapons < 0 || counts.Enemies < 0 {
		return nil, errors.InvalidArgumentf("object counts must not be negative")
	}
	if len(order) == 0 {
		if counts.IsZero() {
			return nil, nil
		}
		return nil, errors.PlacementExhausted("no rooms to place objects in")
	}
	for _, id := range order {
		if id < 0 || id >= len(rooms) {
			return nil, errors.InvalidArgumentf("connection order names room %d of %d", id, len(rooms))
		}
	}

	area := 0
	for _, id := range order {
		area += rooms[id].Area()
	}
	// each count is compared alone first so the sum cannot overflow
	if counts.Keys > area || counts.Weapons > area || counts.Enemies > area || counts.Total() > area {
		return nil, errors.PlacementExhausted("more objects than room tiles").
			WithMeta("room_tiles", area)
	}

	p := &placer{
		rng:      rng,
		rooms:    rooms,
		tileSize: tileSize,
		occupied: mapset.New[world.Point](),
		out:      make([]level.Placement, 0, counts.Total()),
	}

	startRoom, goalRoom := order[0], order[len(order)-1]
	if counts.Markers {
		p.put(level.ObjectStart, startRoom, rooms[startRoom].Center())
		p.put(level.ObjectGoal, goalRoom, rooms[goalRoom].Center())
	}

	// with no goal marker nothing needs keeping clear
	notGoal, notStart := order, order
	if counts.Markers {
		notGoal = without(order, goalRoom)
		notStart = without(order, startRoom)
	}

	if err := p.placeKeys(counts.Keys, notGoal); err != nil {
		return nil, err
	}
	if err := p.placeAnywhere(level.ObjectWeapon, counts.Weapons, notGoal); err != nil {
		return nil, err
	}
	if err := p.placeAnywhere(level.ObjectEnemy, counts.Enemies, notStart); err != nil {
		return nil, err
	}

	return p.out, nil
}

func without(ids []int, drop int) []int {
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if id != drop {
			out = append(out, id)
		}
	}
	return out
}

func (p *placer) put(kind level.ObjectKind, room int, cell world.Point) {
	p.occupied.Put(cell)
	p.out = append(p.out, level.Placement{
		Kind:     kind,
		Cell:     cell,
		Position: level.PositionOf(cell, p.tileSize),
		Room:     room,
	})
}

// tryRoom places kind in room, returning false when the room has no free tile
func (p *placer) tryRoom(kind level.ObjectKind, room int) (bool, error) {
	r := p.rooms[room]
	if c := r.Center(); !p.occupied.Has(c) {
		p.put(kind, room, c)
		return true, nil
	}

	var free []world.Point
	r.ForEach(func(c world.Point) {
		if !p.occupied.Has(c) {
			free = append(free, c)
		}
	})
	if len(free) == 0 {
		return false, nil
	}
	c, err := random.Choice(p.rng, free)
	if err != nil {
		return false, err
	}
	p.put(kind, room, c)
	return true, nil
}

// placeKeys puts one key in each of n distinct rooms drawn from eligible
func (p *placer) placeKeys(n int, eligible []int) error {
	if n == 0 {
		return nil
	}
	candidates := slices.Clone(eligible)
	if err := random.Shuffle(p.rng, candidates); err != nil {
		return err
	}

	placed := 0
	for _, room := range candidates {
		if placed == n {
			break
		}
		ok, err := p.tryRoom(level.ObjectKey, room)
		if err != nil {
			return err
		}
		if ok {
			placed++
		}
	}
	if placed < n {
		return errors.PlacementExhausted("not enough rooms for keys").
			WithMeta("keys", n).
			WithMeta("rooms", len(eligible))
	}
	return nil
}

// placeAnywhere puts n objects in rooms drawn with replacement from eligible,
// dropping rooms as they fill up.
func (p *placer) placeAnywhere(kind level.ObjectKind, n int, eligible []int) error {
	candidates := slices.Clone(eligible)
	for placed := 0; placed < n; {
		if len(candidates) == 0 {
			return errors.PlacementExhausted("no free tiles left").
				WithMeta("kind", kind.String()).
				WithMeta("placed", placed).
				WithMeta("wanted", n)
		}
		i, err := random.Intn(p.rng, len(candidates))
		if err != nil {
			return err
		}
		ok, err := p.tryRoom(kind, candidates[i])
		if err != nil {
			return err
		}
		if !ok {
			candidates = slices.Delete(candidates, i, i+1)
			continue
		}
		placed++
	}
	return nil
}
