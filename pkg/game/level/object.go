package level

import (
	"github.com/rigterw/PCG/pkg/engine/errors"
	"github.com/rigterw/PCG/pkg/engine/world"
)

// ObjectKind is the closed set of things placed on a level.
type ObjectKind int

// Object kinds
const (
	ObjectStart ObjectKind = iota
	ObjectGoal
	ObjectKey
	ObjectWeapon
	ObjectEnemy
)

var objectKindNames = [...]string{"start", "goal", "key", "weapon", "enemy"}

// AllObjectKinds returns every kind in declaration order
func AllObjectKinds() []ObjectKind {
	return []ObjectKind{ObjectStart, ObjectGoal, ObjectKey, ObjectWeapon, ObjectEnemy}
}

// IsValid reports whether k is one of the declared kinds
func (k ObjectKind) IsValid() bool {
	return k >= ObjectStart && k <= ObjectEnemy
}

func (k ObjectKind) String() string {
	if !k.IsValid() {
		return "unknown"
	}
	return objectKindNames[k]
}

// ParseObjectKind converts a name such as "key" back to its kind
func ParseObjectKind(name string) (ObjectKind, error) {
	for i, n := range objectKindNames {
		if n == name {
			return ObjectKind(i), nil
		}
	}
	return 0, errors.InvalidArgumentf("unknown object kind %q", name)
}

// MarshalText encodes the kind by name, so JSON and map keys use "key" not 2.
func (k ObjectKind) MarshalText() ([]byte, error) {
	if !k.IsValid() {
		return nil, errors.InvalidArgumentf("invalid object kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind name
func (k *ObjectKind) UnmarshalText(text []byte) error {
	parsed, err := ParseObjectKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Position is a location in world units (tile coordinates times tile size).
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Placement puts one object on one tile of one room.
type Placement struct {
	Kind     ObjectKind  `json:"kind"`
	Cell     world.Point `json:"cell"`
	Position Position    `json:"position"`
	Room     int         `json:"room"`
}

// PositionOf scales a cell to world units
func PositionOf(cell world.Point, tileSize float64) Position {
	return Position{X: float64(cell.X) * tileSize, Y: float64(cell.Y) * tileSize}
}

// Corridor is a carved path between two rooms, as floor segments.
type Corridor struct {
	From     int          `json:"from"`
	To       int          `json:"to"`
	Segments []world.Rect `json:"segments"`
}
