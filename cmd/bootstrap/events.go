package bootstrap

import (
	"context"
	"log/slog"

	"tripmatch/internal/infra/events"
	"tripmatch/internal/pkg/config"
	"tripmatch/internal/usecase/commands"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewGroupPublisher,
	),
)

// NewGroupPublisher falls back to a no-op publisher when REDIS_ADDR is unset.
func NewGroupPublisher(lc fx.Lifecycle, cfg config.Config) commands.GroupPublisher {
	if cfg.Redis.Addr == "" {
		slog.Info("REDIS_ADDR not set, group formed events are not published")
		return events.NopPublisher{}
	}

	client := events.NewRedisClient(cfg.Redis)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return events.NewRedisPublisher(client, cfg.Redis.Channel)
}
