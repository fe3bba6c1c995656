package world

// Direction represents a cardinal direction. North is "up": decreasing Y.
type Direction int

// Direction constants
const (
	North Direction = iota
	East
	South
	West
)

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is a valid cardinal direction
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return d
	}
}

// Delta returns the X and Y offsets for this direction
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// IsHorizontal reports whether moving in d changes X.
func (d Direction) IsHorizontal() bool {
	return d == East || d == West
}

// Bit returns the SideMask bit for this direction, or 0 for an invalid one.
func (d Direction) Bit() SideMask {
	if !d.IsValid() {
		return 0
	}
	return SideMask(1) << uint(d)
}

// SideMask records which sides of a room are taken, either by a corridor or
// because the side faces the level boundary.
type SideMask uint8

// FullSideMask has every side taken.
const FullSideMask SideMask = 1<<4 - 1

// Has reports whether the side for d is taken.
func (m SideMask) Has(d Direction) bool {
	return m&d.Bit() != 0
}

// With returns m with the side for d taken.
func (m SideMask) With(d Direction) SideMask {
	return m | d.Bit()
}

// Full reports whether all four sides are taken.
func (m SideMask) Full() bool {
	return m&FullSideMask == FullSideMask
}

// Free returns the directions not yet taken, in North, East, South, West order.
func (m SideMask) Free() []Direction {
	var free []Direction
	for _, d := range AllDirections() {
		if !m.Has(d) {
			free = append(free, d)
		}
	}
	return free
}
