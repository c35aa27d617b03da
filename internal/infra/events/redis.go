package events

import (
	"context"
	"log/slog"
	"time"

	"tripmatch/internal/pkg/config"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects using cfg. An unreachable server is only logged;
// publishing is best effort.
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		slog.Warn("unable to reach redis", "addr", cfg.Addr, "error", err.Error())
	} else {
		slog.Info("connected to redis", "addr", cfg.Addr)
	}
	return client
}
