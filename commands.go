package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rigterw/PCG/locales"
	"github.com/rigterw/PCG/pkg/engine/errors"
	"github.com/rigterw/PCG/pkg/game/devtools"
	"github.com/rigterw/PCG/pkg/game/generator"
	"github.com/rigterw/PCG/pkg/game/level"
	"github.com/rigterw/PCG/pkg/game/levelcache"
	"github.com/rigterw/PCG/pkg/game/seedcode"
	"github.com/rigterw/PCG/pkg/game/server"
	"github.com/rigterw/PCG/pkg/game/spawn"
)

// Output formats for generate
const (
	formatText     = "text"
	formatJSON     = "json"
	formatTiled    = "tiled"
	formatPreview  = "preview"
	formatManifest = "manifest"
)

var generateFormats = []string{formatText, formatJSON, formatTiled, formatPreview, formatManifest}

var (
	seedCode     string
	outputFormat string
	outputPath   string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one level",
	Long: `Generate one level and write it as a text dump, JSON, a Tiled map,
a coloured preview or a spawn manifest.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve levels over HTTP",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	defaults := generator.DefaultConfig()
	flags := generateCmd.Flags()
	flags.Int("width", defaults.LevelSize.W, "level width in tiles")
	flags.Int("height", defaults.LevelSize.H, "level height in tiles")
	flags.Int("min-room-w", defaults.MinRoomSize.W, "minimum room width")
	flags.Int("min-room-h", defaults.MinRoomSize.H, "minimum room height")
	flags.Int("max-room-w", defaults.MaxRoomSize.W, "maximum room width")
	flags.Int("max-room-h", defaults.MaxRoomSize.H, "maximum room height")
	flags.Float64("tile-size", defaults.TileSize, "world units per tile")
	flags.Int64("seed", 0, "random seed (0 picks one)")
	flags.Bool("markers", defaults.Objects.Markers, "place start and goal markers")
	flags.Int("keys", defaults.Objects.Keys, "number of keys")
	flags.Int("weapons", defaults.Objects.Weapons, "number of weapons")
	flags.Int("enemies", defaults.Objects.Enemies, "number of enemies")
	flags.StringVar(&seedCode, "code", "", "seed code to regenerate a shared level (overrides --seed)")
	flags.StringVarP(&outputFormat, "format", "f", formatText, "output format (text, json, tiled, preview, manifest)")
	flags.StringVarP(&outputPath, "out", "o", "", "write to this file instead of stdout")
	bindFlags(settings, flags, map[string]string{
		"generator.level_size.w":    "width",
		"generator.level_size.h":    "height",
		"generator.min_room_size.w": "min-room-w",
		"generator.min_room_size.h": "min-room-h",
		"generator.max_room_size.w": "max-room-w",
		"generator.max_room_size.h": "max-room-h",
		"generator.tile_size":       "tile-size",
		"generator.seed":            "seed",
		"generator.objects.markers": "markers",
		"generator.objects.keys":    "keys",
		"generator.objects.weapons": "weapons",
		"generator.objects.enemies": "enemies",
	})

	serveCmd.Flags().String("addr", ":8080", "listen address")
	bindFlags(settings, serveCmd.Flags(), map[string]string{
		"server.addr": "addr",
	})
}

func runGenerate(cmd *cobra.Command, args []string) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("format", outputFormat, generateFormats, vb)
	if err := vb.Build(); err != nil {
		return err
	}

	genCfg := cfg.Generator
	if seedCode != "" {
		seed, err := seedcode.Decode(seedCode)
		if err != nil {
			return err
		}
		genCfg.Seed = seed
	}

	data, err := generator.DefaultGenerator.Generate(genCfg)
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"generator": generator.DefaultGenerator.Name(),
		"seed":      data.Seed(),
		"rooms":     len(data.Rooms()),
	}).Info("level generated")

	var out io.Writer = cmd.OutOrStdout()
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return errors.Wrap(err, "failed to create output file")
		}
		defer f.Close()
		out = f
	}

	if err := writeLevel(out, data, outputFormat); err != nil {
		return err
	}

	stderr := cmd.ErrOrStderr()
	if outputPath != "" {
		fmt.Fprintln(stderr, locales.Getf("LEVEL_WRITTEN", outputPath))
	}
	fmt.Fprintln(stderr, locales.Getf("LEVEL_SEED_CODE", data.Seed(), seedcode.Encode(data.Seed())))
	return nil
}

func writeLevel(w io.Writer, data *level.Data, format string) error {
	switch format {
	case formatJSON:
		return writeJSON(w, data)
	case formatTiled:
		return writeJSON(w, data.ToTiled())
	case formatPreview:
		palette, err := cfg.SpawnPalette()
		if err != nil {
			return err
		}
		return devtools.RenderPreview(w, data, palette)
	case formatManifest:
		palette, err := cfg.SpawnPalette()
		if err != nil {
			return err
		}
		manifest, err := spawn.BuildManifest(data, palette)
		if err != nil {
			return err
		}
		return writeJSON(w, manifest)
	default:
		return devtools.DumpLevel(w, data)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, "failed to encode output")
	}
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	if !logrus.IsLevelEnabled(logrus.DebugLevel) {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	palette, err := cfg.SpawnPalette()
	if err != nil {
		return err
	}

	cache, err := levelcache.New(cfg.Cache)
	if err != nil {
		return err
	}
	defer cache.Close()

	srv := server.New(server.Options{
		Defaults:     cfg.Generator,
		Palette:      palette,
		Generator:    generator.DefaultGenerator,
		Cache:        cache,
		AllowOrigins: cfg.Server.AllowOrigins,
		Logger:       logrus.StandardLogger(),
	})
	return srv.Run(ctx, cfg.Server.Addr)
}
