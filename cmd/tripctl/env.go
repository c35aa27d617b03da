package main

import (
	"context"
	"time"

	"tripmatch/cmd/bootstrap"
	"tripmatch/cmd/bootstrap/components"
	"tripmatch/internal/pkg/config"

	"github.com/urfave/cli/v2"
	"go.uber.org/fx"
)

const appStopTimeout = 10 * time.Second

func loadConfig(c *cli.Context) (config.Config, error) {
	cfg, err := config.LoadEnv()
	if err != nil {
		return config.Config{}, err
	}
	if v := c.String("store"); v != "" {
		cfg.Store.Driver = v
	}
	if v := c.String("sqlite-path"); v != "" {
		cfg.Store.SQLitePath = v
	}
	return cfg, cfg.Validate()
}

// withApp builds the same object graph as the server without the HTTP layer,
// fills targets, runs fn, then stops every lifecycle hook.
func withApp(ctx context.Context, cfg config.Config, fn func() error, targets ...any) error {
	app := fx.New(
		fx.NopLogger,
		fx.Supply(cfg),
		bootstrap.LoggerModule,
		bootstrap.MetricsModule,
		bootstrap.PersistenceModule,
		bootstrap.EventsModule,
		bootstrap.JWTModule,
		components.UseCaseModule,
		fx.Populate(targets...),
	)
	if err := app.Start(ctx); err != nil {
		return err
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), appStopTimeout)
		defer cancel()
		_ = app.Stop(stopCtx)
	}()
	return fn()
}
