// Package levelcache memoises generated levels by their configuration.
// A level is fully determined by its configuration and seed, so only
// seeded configurations are cached.
package levelcache

import (
	"time"

	"github.com/dgraph-io/ristretto/v2"

	"github.com/rigterw/PCG/pkg/engine/errors"
	"github.com/rigterw/PCG/pkg/game/generator"
	"github.com/rigterw/PCG/pkg/game/level"
)

// Config sizes the cache. MaxTiles bounds the summed area of cached levels.
type Config struct {
	MaxTiles int64         `json:"max_tiles" mapstructure:"max_tiles"`
	TTL      time.Duration `json:"ttl" mapstructure:"ttl"`
}

// DefaultConfig holds roughly a thousand default-sized levels for an hour
func DefaultConfig() Config {
	return Config{
		MaxTiles: 1_200_000,
		TTL:      time.Hour,
	}
}

// Cache is safe for concurrent use
type Cache struct {
	levels *ristretto.Cache[string, *level.Data]
	ttl    time.Duration
}

// New creates a cache
func New(cfg Config) (*Cache, error) {
	if cfg.MaxTiles <= 0 {
		return nil, errors.InvalidConfigf("cache max_tiles must be positive, got %d", cfg.MaxTiles)
	}
	levels, err := ristretto.NewCache(&ristretto.Config[string, *level.Data]{
		NumCounters:        max(cfg.MaxTiles/10, 1000),
		MaxCost:            cfg.MaxTiles,
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create level cache")
	}
	return &Cache{levels: levels, ttl: cfg.TTL}, nil
}

// Get returns the cached level for cfg, if any
func (c *Cache) Get(cfg generator.Config) (*level.Data, bool) {
	if cfg.Seed == 0 {
		return nil, false
	}
	return c.levels.Get(cfg.Key())
}

// GetOrGenerate returns the cached level for cfg, generating and storing it
// on a miss. Unseeded configurations always generate.
func (c *Cache) GetOrGenerate(cfg generator.Config, gen generator.LevelGenerator) (*level.Data, error) {
	if data, ok := c.Get(cfg); ok {
		return data, nil
	}

	data, err := gen.Generate(cfg)
	if err != nil {
		return nil, err
	}
	if cfg.Seed != 0 {
		cost := int64(data.Width() * data.Height())
		if c.ttl > 0 {
			c.levels.SetWithTTL(cfg.Key(), data, cost, c.ttl)
		} else {
			c.levels.Set(cfg.Key(), data, cost)
		}
		c.levels.Wait()
	}
	return data, nil
}

// Close stops the cache's background goroutines
func (c *Cache) Close() {
	c.levels.Close()
}
