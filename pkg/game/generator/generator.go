// Package generator builds dungeon levels: it partitions the level into a
// grid of cells, places a room in each cell, joins the rooms with corridors
// and places objects along the order in which rooms were joined.
package generator

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/sirupsen/logrus"

	"github.com/rigterw/PCG/pkg/engine/errors"
	"github.com/rigterw/PCG/pkg/engine/random"
	"github.com/rigterw/PCG/pkg/engine/world"
	"github.com/rigterw/PCG/pkg/game/level"
	"github.com/rigterw/PCG/pkg/game/levelgen"
)

// LevelGenerator is an interface for level generation algorithms
type LevelGenerator interface {
	Generate(cfg Config) (*level.Data, error)
	Name() string
}

// Available generators
var (
	Partitioned = NewPartitionGenerator()
)

// DefaultGenerator is the default level generator
var DefaultGenerator LevelGenerator = Partitioned

// PartitionGenerator generates levels from a grid of partitioned rooms,
// seeding a fresh roller from the config on every call.
type PartitionGenerator struct {
	opts []Option
}

// NewPartitionGenerator creates a generator that passes opts to every run
func NewPartitionGenerator(opts ...Option) *PartitionGenerator {
	return &PartitionGenerator{opts: opts}
}

// Name returns the name of this generator
func (g *PartitionGenerator) Name() string {
	return "Partitioned Rooms"
}

// Generate creates a level. A zero seed is replaced by a time-based one,
// which the returned level records.
func (g *PartitionGenerator) Generate(cfg Config) (*level.Data, error) {
	if cfg.Seed == 0 {
		cfg.Seed = random.NewSeed()
	}
	return GenerateLevel(cfg, random.NewSeededRoller(cfg.Seed), g.opts...)
}

// GenerateLevel runs the whole pipeline with draws taken from roller.
// The config is validated before anything is allocated. On failure no
// level is returned.
func GenerateLevel(cfg Config, roller dice.Roller, opts ...Option) (*level.Data, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := applyOptions(opts)

	grid, err := world.NewTileGrid(cfg.LevelSize.W, cfg.LevelSize.H)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidConfig, "failed to allocate grid")
	}

	rooms, err := BuildRooms(roller, grid, cfg.MinRoomSize, cfg.MaxRoomSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build rooms")
	}

	corridors, order, err := NewConnector(roller, opts...).Connect(rooms, grid)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect rooms")
	}

	objects, err := levelgen.PlaceObjects(roller, rooms.Rooms, order, cfg.Objects, cfg.TileSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to place objects")
	}

	levelCorridors := make([]level.Corridor, len(corridors))
	for i, c := range corridors {
		levelCorridors[i] = level.Corridor{From: c.From, To: c.To, Segments: c.Segments}
	}

	o.logger.WithFields(logrus.Fields{
		"seed":      cfg.Seed,
		"columns":   rooms.Columns,
		"rows":      rooms.Rows,
		"corridors": len(corridors),
		"objects":   len(objects),
	}).Debug("generated level")

	data := level.New(level.Parts{
		Grid:            grid,
		TileSize:        cfg.TileSize,
		Seed:            cfg.Seed,
		Rooms:           rooms.Rooms,
		Corridors:       levelCorridors,
		ConnectionOrder: order,
		Objects:         objects,
	})
	if err := levelgen.Verify(data); err != nil {
		o.logger.WithError(err).WithField("seed", cfg.Seed).Error("generated level failed verification")
		return nil, err
	}
	return data, nil
}
