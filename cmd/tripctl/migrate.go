package main

import (
	"errors"
	"fmt"

	"tripmatch/internal/domain/trip"
	"tripmatch/internal/infra/db"
	"tripmatch/internal/infra/sqlitestore"
	"tripmatch/internal/pkg/config"
	"tripmatch/internal/usecase/shared"

	"github.com/urfave/cli/v2"
)

var migrateCmd = &cli.Command{
	Name:  "migrate",
	Usage: "Apply the schema to the configured store",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "engine",
			Usage: "override DB_MIGRATION_ENGINE (embedded, atlas)",
		},
	},
	Action: func(c *cli.Context) error {
		cfg, err := loadConfig(c)
		if err != nil {
			return err
		}
		if v := c.String("engine"); v != "" {
			cfg.Migration.Engine = v
		}

		switch cfg.Store.Driver {
		case config.StoreDriverPostgres:
			pool, cleanup, err := db.Connect(cfg.DB)
			if err != nil {
				return err
			}
			defer cleanup()
			if err := db.Migrate(c.Context, pool, cfg.DB, cfg.Migration); err != nil {
				return err
			}
		case config.StoreDriverSQLite:
			// Open applies the schema
			store, err := sqlitestore.Open(c.Context, cfg.Store.SQLitePath, trip.DefaultGroupSize, shared.DefaultRetryPolicy())
			if err != nil {
				return err
			}
			if err := store.Close(); err != nil {
				return err
			}
		default:
			return errors.New("the memory store has no schema to migrate")
		}

		fmt.Fprintf(c.App.Writer, "schema applied (store=%s)\n", cfg.Store.Driver)
		return nil
	},
}
