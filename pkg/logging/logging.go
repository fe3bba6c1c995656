// Package logging configures the process-wide logrus logger.
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/rigterw/PCG/pkg/engine/errors"
)

// Config controls log level, format and optional rotating file output.
type Config struct {
	Level      string `json:"level" mapstructure:"level"`
	Format     string `json:"format" mapstructure:"format"`
	File       string `json:"file" mapstructure:"file"`
	MaxSizeMB  int    `json:"max_size_mb" mapstructure:"max_size_mb"`
	MaxBackups int    `json:"max_backups" mapstructure:"max_backups"`
	MaxAgeDays int    `json:"max_age_days" mapstructure:"max_age_days"`
}

// Log formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// DefaultConfig logs info and above as text to stderr
func DefaultConfig() Config {
	return Config{
		Level:      "info",
		Format:     FormatText,
		MaxSizeMB:  10,
		MaxBackups: 3,
		MaxAgeDays: 28,
	}
}

// Configure applies cfg to logger. When cfg.File is set, output goes to
// both stderr and a rotating file. The returned closer releases the file.
func Configure(logger *logrus.Logger, cfg Config) (io.Closer, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidConfig, "invalid log level").
			WithMeta("level", cfg.Level)
	}
	logger.SetLevel(level)

	switch cfg.Format {
	case "", FormatText:
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case FormatJSON:
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, errors.InvalidConfigf("unknown log format %q", cfg.Format).
			WithMeta("allowed", []string{FormatText, FormatJSON})
	}

	if cfg.File == "" {
		logger.SetOutput(os.Stderr)
		return nopCloser{}, nil
	}

	file := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
	}
	logger.SetOutput(io.MultiWriter(os.Stderr, file))
	return file, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
