// Command dungeongen generates dungeon levels from the command line or
// serves them over HTTP.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/gookit/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/rigterw/PCG/locales"
	"github.com/rigterw/PCG/pkg/config"
	"github.com/rigterw/PCG/pkg/logging"
)

var (
	settings   = config.New()
	cfg        *config.Config
	configPath string
	logCloser  io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "dungeongen",
	Short: "Procedural dungeon level generator",
	Long: `dungeongen partitions a level into a grid of rooms, joins them with corridors
and places a start, a goal, keys, weapons and enemies along the way.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCloser != nil {
			logCloser.Close()
		}
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "path to a YAML config file")
	flags.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	flags.String("language", locales.DefaultLanguage, "message catalogue language")
	bindFlags(settings, flags, map[string]string{
		"log.level": "log-level",
		"language":  "language",
	})

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig runs before every subcommand
func loadConfig(cmd *cobra.Command, args []string) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	loaded, err := config.Load(settings, configPath)
	if err != nil {
		return err
	}
	cfg = loaded

	if !locales.SetLanguage(cfg.Language) {
		logrus.WithField("language", cfg.Language).Warn("no catalogue for language, using default")
	}

	closer, err := logging.Configure(logrus.StandardLogger(), cfg.Log)
	if err != nil {
		return err
	}
	logCloser = closer
	return nil
}

// bindFlags binds viper keys to the named flags
func bindFlags(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		cobra.CheckErr(v.BindPFlag(key, flags.Lookup(name)))
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.Red.Sprintf("Error: %v", err))
		os.Exit(1)
	}
}
