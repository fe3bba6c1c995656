package generator

import (
	"fmt"

	"github.com/rigterw/PCG/pkg/engine/errors"
	"github.com/rigterw/PCG/pkg/engine/world"
	"github.com/rigterw/PCG/pkg/game/levelgen"
)

// DefaultTileSize is the world-unit width of one tile
const DefaultTileSize = 5.0

// MaxLevelSide bounds each level dimension, keeping a grid at most
// MaxLevelSide*MaxLevelSide tiles.
const MaxLevelSide = 1024

// Config describes the level to generate
type Config struct {
	LevelSize   world.Size      `json:"level_size" mapstructure:"level_size"`
	MinRoomSize world.Size      `json:"min_room_size" mapstructure:"min_room_size"`
	MaxRoomSize world.Size      `json:"max_room_size" mapstructure:"max_room_size"`
	TileSize    float64         `json:"tile_size" mapstructure:"tile_size"`
	Seed        int64           `json:"seed" mapstructure:"seed"` // 0 picks a fresh seed
	Objects     levelgen.Counts `json:"objects" mapstructure:"objects"`
}

// DefaultConfig returns a mid-sized level with start and goal markers
func DefaultConfig() Config {
	return Config{
		LevelSize:   world.Size{W: 40, H: 30},
		MinRoomSize: world.Size{W: 4, H: 4},
		MaxRoomSize: world.Size{W: 8, H: 7},
		TileSize:    DefaultTileSize,
		Objects:     levelgen.Counts{Markers: true, Keys: 1, Weapons: 1, Enemies: 3},
	}
}

// Validate checks the size relationships a level needs. It reports every
// bad field at once with code INVALID_CONFIG.
func (c Config) Validate() error {
	vb := errors.NewValidationBuilder().WithCode(errors.CodeInvalidConfig)

	errors.ValidatePositive("level_size.w", c.LevelSize.W, vb)
	errors.ValidatePositive("level_size.h", c.LevelSize.H, vb)
	if c.LevelSize.W > MaxLevelSide {
		vb.Fieldf("level_size.w", "must be at most %d, got %d", MaxLevelSide, c.LevelSize.W)
	}
	if c.LevelSize.H > MaxLevelSide {
		vb.Fieldf("level_size.h", "must be at most %d, got %d", MaxLevelSide, c.LevelSize.H)
	}
	errors.ValidatePositive("min_room_size.w", c.MinRoomSize.W, vb)
	errors.ValidatePositive("min_room_size.h", c.MinRoomSize.H, vb)
	errors.ValidatePositive("max_room_size.w", c.MaxRoomSize.W, vb)
	errors.ValidatePositive("max_room_size.h", c.MaxRoomSize.H, vb)

	if c.MinRoomSize.W > c.LevelSize.W-2 {
		vb.Fieldf("min_room_size.w", "must be at most level width - 2 (%d)", c.LevelSize.W-2)
	}
	if c.MinRoomSize.H > c.LevelSize.H-2 {
		vb.Fieldf("min_room_size.h", "must be at most level height - 2 (%d)", c.LevelSize.H-2)
	}
	if c.MaxRoomSize.W < c.MinRoomSize.W {
		vb.Field("max_room_size.w", "must not be below min_room_size.w")
	}
	if c.MaxRoomSize.H < c.MinRoomSize.H {
		vb.Field("max_room_size.h", "must not be below min_room_size.h")
	}
	if c.TileSize <= 0 {
		vb.Fieldf("tile_size", "must be positive, got %g", c.TileSize)
	}

	errors.ValidateMin("objects.keys", c.Objects.Keys, 0, vb)
	errors.ValidateMin("objects.weapons", c.Objects.Weapons, 0, vb)
	errors.ValidateMin("objects.enemies", c.Objects.Enemies, 0, vb)

	// no level can hold more objects than it has tiles
	if c.LevelSize.W > 0 && c.LevelSize.H > 0 && c.LevelSize.W <= MaxLevelSide && c.LevelSize.H <= MaxLevelSide {
		tiles := c.LevelSize.W * c.LevelSize.H
		for field, n := range map[string]int{
			"objects.keys":    c.Objects.Keys,
			"objects.weapons": c.Objects.Weapons,
			"objects.enemies": c.Objects.Enemies,
		} {
			if n > tiles {
				vb.Fieldf(field, "must be at most the level's %d tiles, got %d", tiles, n)
			}
		}
	}

	return vb.Build()
}

// Key identifies the level this config produces. Two configs with the same
// key and a non-zero seed generate identical levels.
func (c Config) Key() string {
	return fmt.Sprintf("%s/%s-%s/t%g/s%d/m%t-k%d-w%d-e%d",
		c.LevelSize, c.MinRoomSize, c.MaxRoomSize, c.TileSize, c.Seed,
		c.Objects.Markers, c.Objects.Keys, c.Objects.Weapons, c.Objects.Enemies)
}
