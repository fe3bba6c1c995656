// Package config loads runtime settings from defaults, an optional YAML
// file, a .env file, DUNGEON_ environment variables and command-line flags,
// in increasing order of precedence.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/rigterw/PCG/pkg/engine/errors"
	"github.com/rigterw/PCG/pkg/game/generator"
	"github.com/rigterw/PCG/pkg/game/level"
	"github.com/rigterw/PCG/pkg/game/levelcache"
	"github.com/rigterw/PCG/pkg/game/spawn"
	"github.com/rigterw/PCG/pkg/logging"
)

// EnvPrefix prefixes every environment variable, e.g. DUNGEON_SERVER_ADDR
const EnvPrefix = "DUNGEON"

// Server configures the HTTP level service
type Server struct {
	Addr         string   `json:"addr" mapstructure:"addr"`
	AllowOrigins []string `json:"allow_origins" mapstructure:"allow_origins"`
}

// Palette maps tile codes and object kind names to asset names
type Palette struct {
	Tiles   []string          `json:"tiles" mapstructure:"tiles"`
	Objects map[string]string `json:"objects" mapstructure:"objects"`
}

// Config is the full runtime configuration
type Config struct {
	Language  string            `json:"language" mapstructure:"language"`
	Generator generator.Config  `json:"generator" mapstructure:"generator"`
	Palette   Palette           `json:"palette" mapstructure:"palette"`
	Cache     levelcache.Config `json:"cache" mapstructure:"cache"`
	Log       logging.Config    `json:"log" mapstructure:"log"`
	Server    Server            `json:"server" mapstructure:"server"`
}

// SpawnPalette converts the configured palette
func (c *Config) SpawnPalette() (spawn.Palette, error) {
	return spawn.ParsePalette(c.Palette.Tiles, c.Palette.Objects)
}

// New returns a viper instance with every default registered and the
// environment bound. Flags can be bound onto it before calling Load.
func New() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func setDefaults(v *viper.Viper) {
	gen := generator.DefaultConfig()
	v.SetDefault("language", "en_GB")
	v.SetDefault("generator.level_size.w", gen.LevelSize.W)
	v.SetDefault("generator.level_size.h", gen.LevelSize.H)
	v.SetDefault("generator.min_room_size.w", gen.MinRoomSize.W)
	v.SetDefault("generator.min_room_size.h", gen.MinRoomSize.H)
	v.SetDefault("generator.max_room_size.w", gen.MaxRoomSize.W)
	v.SetDefault("generator.max_room_size.h", gen.MaxRoomSize.H)
	v.SetDefault("generator.tile_size", gen.TileSize)
	v.SetDefault("generator.seed", gen.Seed)
	v.SetDefault("generator.objects.markers", gen.Objects.Markers)
	v.SetDefault("generator.objects.keys", gen.Objects.Keys)
	v.SetDefault("generator.objects.weapons", gen.Objects.Weapons)
	v.SetDefault("generator.objects.enemies", gen.Objects.Enemies)

	palette := spawn.DefaultPalette()
	objects := make(map[string]any, len(palette.Objects))
	for _, k := range level.AllObjectKinds() {
		objects[k.String()] = palette.Objects[k]
	}
	v.SetDefault("palette.tiles", palette.Tiles)
	v.SetDefault("palette.objects", objects)

	cache := levelcache.DefaultConfig()
	v.SetDefault("cache.max_tiles", cache.MaxTiles)
	v.SetDefault("cache.ttl", cache.TTL)

	log := logging.DefaultConfig()
	v.SetDefault("log.level", log.Level)
	v.SetDefault("log.format", log.Format)
	v.SetDefault("log.file", log.File)
	v.SetDefault("log.max_size_mb", log.MaxSizeMB)
	v.SetDefault("log.max_backups", log.MaxBackups)
	v.SetDefault("log.max_age_days", log.MaxAgeDays)

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.allow_origins", []string{"*"})
}

// LoadDotEnv loads .env from the working directory if one exists.
// Variables already set in the environment win.
func LoadDotEnv() error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return errors.WrapWithCode(err, errors.CodeInvalidConfig, "failed to read .env")
	}
	return nil
}

// Load reads the optional config file at path into v and decodes the
// result. The generator section is validated.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidConfig, "failed to read config file").
				WithMeta("path", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidConfig, "failed to decode config")
	}
	if err := cfg.Generator.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

