// Package logging builds the zerolog logger shared by every surface.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds logging configuration.
type Config struct {
	Level      string `yaml:"level" toml:"level" default:"info"`
	Console    bool   `yaml:"console" toml:"console" default:"true"`
	File       bool   `yaml:"file" toml:"file"`
	FilePath   string `yaml:"file_path" toml:"file_path" default:"logs/marketask.log"`
	MaxSize    int    `yaml:"max_size" toml:"max_size" default:"50"` // megabytes
	MaxBackups int    `yaml:"max_backups" toml:"max_backups" default:"5"`
	MaxAge     int    `yaml:"max_age" toml:"max_age" default:"14"` // days

	// Out replaces stderr for the console writer. Used by tests.
	Out io.Writer `yaml:"-" toml:"-"`
}

// New creates a logger from cfg. Console output goes to stderr so that stdout
// stays free for the MCP stdio transport.
func New(cfg Config) zerolog.Logger {
	var writers []io.Writer

	if cfg.Console {
		out := cfg.Out
		if out == nil {
			out = os.Stderr
		}
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
			NoColor:    cfg.Out != nil,
		})
	}

	if cfg.File && cfg.FilePath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0o755); err == nil {
			writers = append(writers, &lumberjack.Logger{
				Filename:   cfg.FilePath,
				MaxSize:    cfg.MaxSize,
				MaxBackups: cfg.MaxBackups,
				MaxAge:     cfg.MaxAge,
				Compress:   true,
			})
		}
	}

	var w io.Writer
	switch len(writers) {
	case 0:
		w = io.Discard
	case 1:
		w = writers[0]
	default:
		w = zerolog.MultiLevelWriter(writers...)
	}

	return zerolog.New(w).
		Level(ParseLevel(cfg.Level)).
		With().
		Timestamp().
		Logger()
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}
