package bootstrap

import (
	"log/slog"

	"tripmatch/internal/pkg/config"
	"tripmatch/internal/pkg/logging"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

// FxLogger routes fx's own lifecycle events through the application logger.
var FxLogger = fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
	l := &fxevent.SlogLogger{Logger: logger}
	l.UseLogLevel(slog.LevelDebug)
	return l
})

func NewLogger(cfg config.Config) *slog.Logger {
	return logging.New(cfg.Log)
}
