package bootstrap

import (
	"context"

	"tripmatch/internal/domain/trip"
	"tripmatch/internal/infra/db"
	"tripmatch/internal/infra/memstore"
	"tripmatch/internal/infra/query"
	"tripmatch/internal/infra/readstore"
	"tripmatch/internal/infra/sqlitestore"
	"tripmatch/internal/infra/uow"
	"tripmatch/internal/pkg/config"
	"tripmatch/internal/usecase/queries"
	"tripmatch/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewGroupSize,
		NewPersistence,
	),
)

// Persistence is the driver-selected storage: one UnitOfWork for the matcher
// plus the read stores for later inquiry.
type Persistence struct {
	fx.Out

	UoW     shared.UnitOfWork
	Groups  queries.GroupReadStore
	Pending queries.PendingReadStore
}

func NewGroupSize(cfg config.Config) (trip.GroupSize, error) {
	return trip.NewGroupSize(cfg.Match.GroupSize)
}

func NewPersistence(lc fx.Lifecycle, cfg config.Config, size trip.GroupSize, policy shared.RetryPolicy) (Persistence, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverSQLite:
		store, err := sqlitestore.Open(context.Background(), cfg.Store.SQLitePath, size, policy)
		if err != nil {
			return Persistence{}, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return store.Close()
			},
		})
		return Persistence{UoW: store, Groups: store, Pending: store}, nil

	case config.StoreDriverMemory:
		store := memstore.New(size, policy)
		return Persistence{UoW: store, Groups: store, Pending: store}, nil

	default:
		pool, err := NewDB(lc, cfg)
		if err != nil {
			return Persistence{}, err
		}
		q := query.New()
		return Persistence{
			UoW:     uow.NewPostgresUoW(pool, q, size, policy),
			Groups:  readstore.NewGroupReadStore(q, pool),
			Pending: readstore.NewPendingReadStore(q, pool),
		}, nil
	}
}

func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	if cfg.Migration.AutoApply {
		if err := db.Migrate(context.Background(), pool, cfg.DB, cfg.Migration); err != nil {
			cleanup()
			return nil, err
		}
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}
