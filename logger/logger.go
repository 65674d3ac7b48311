// Package logger configures the diagnostic logger. Diagnostics are separate
// from the user-facing console output and are disabled unless a level is
// configured.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"

	"img2pdf/config"
)

var closer io.Closer

// Init sets up the global logger: a rotated file when cfg.File is set,
// otherwise a console writer on stderr.
func Init(cfg config.LoggingConfig) error {
	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		lvl = zerolog.Disabled
	}

	var out io.Writer
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return fmt.Errorf("create logs dir: %w", err)
		}
		lj := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
		}
		closer = lj
		out = lj
	} else {
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	}

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = zerolog.New(out).Level(lvl).With().Timestamp().Str("app", "img2pdf").Logger()
	return nil
}

// Close releases the log file, if one was opened.
func Close() {
	if closer != nil {
		_ = closer.Close()
		closer = nil
	}
}
