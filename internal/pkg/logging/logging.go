// Package logging builds the process-wide slog logger.
//
// Release mode writes JSON to stdout with timestamps rendered in the
// configured zone. Every other mode writes colored text through tint.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"tripmatch/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/lmittmann/tint"
)

func New(cfg config.LogConfig) *slog.Logger {
	return NewWithWriter(cfg, os.Stdout, gin.Mode() == gin.ReleaseMode)
}

func NewWithWriter(cfg config.LogConfig, w io.Writer, release bool) *slog.Logger {
	level := ParseLevel(cfg.Level)

	var handler slog.Handler
	if release {
		zone := Location(cfg)
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: level,
			ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
				if a.Key == slog.TimeKey {
					if t, ok := a.Value.Any().(time.Time); ok {
						a.Value = slog.StringValue(t.In(zone).Format(cfg.TimeFormat))
					}
				}
				return a
			},
		})
	} else {
		handler = tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			AddSource:  level == slog.LevelDebug,
		})
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func Location(cfg config.LogConfig) *time.Location {
	return time.FixedZone(cfg.TimeZone, cfg.TimeZoneOffset)
}
