package uow

import (
	"context"
	"errors"
	"log/slog"

	"tripmatch/internal/domain/trip"
	"tripmatch/internal/infra/query"
	"tripmatch/internal/infra/repository"
	"tripmatch/internal/pkg/errs"
	"tripmatch/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

type PostgresUoW struct {
	pool   *pgxpool.Pool
	q      *query.Queries
	size   trip.GroupSize
	policy shared.RetryPolicy
}

func NewPostgresUoW(pool *pgxpool.Pool, q *query.Queries, size trip.GroupSize, policy shared.RetryPolicy) *PostgresUoW {
	return &PostgresUoW{
		pool:   pool,
		q:      q,
		size:   size,
		policy: policy,
	}
}

// Serializable: if another matcher consumed or added rows this transaction
// read, commit fails with 40001 and the whole fn is retried.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	options := pgx.TxOptions{IsoLevel: pgx.Serializable}
	return shared.Retry(ctx, u.policy, isRetryableError, func(ctx context.Context) error {
		return u.runInTx(ctx, options, fn)
	})
}

func (u *PostgresUoW) Ping(ctx context.Context) error {
	return u.pool.Ping(ctx)
}

// Rolls back inline rather than via defer so retries do not pile up deferred calls
func (u *PostgresUoW) runInTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, shared.ErrTransactionBegin)
	}

	tx := &pgTx{
		dbtx: pgxTx,
		uow:  u,
	}

	err = fn(ctx, tx)
	if err == nil {
		if err = pgxTx.Commit(ctx); err == nil {
			return nil
		}
		err = errs.Mark(err, shared.ErrTransactionCommit)
	}

	if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
		if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("rollback failed", "error", rollbackErr.Error())
		}
	}
	return err
}

func isRetryableError(err error) bool {
	if shared.IsConflict(err) {
		return true
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx query.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	pendingRepo shared.PendingPool
	groupRepo   shared.GroupStore
}

func (t *pgTx) Pending() shared.PendingPool {
	if t.pendingRepo == nil {
		t.pendingRepo = repository.NewPendingRepository(t.uow.q, t.dbtx)
	}
	return t.pendingRepo
}

func (t *pgTx) Groups() shared.GroupStore {
	if t.groupRepo == nil {
		t.groupRepo = repository.NewGroupRepository(t.uow.q, t.dbtx, t.uow.size)
	}
	return t.groupRepo
}
