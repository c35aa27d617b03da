// Package sqlitestore keeps the pending pool and groups in a single SQLite
// file through the pure Go modernc driver. Every transaction begins
// IMMEDIATE, so matchers are serialized by the database write lock.
package sqlitestore

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"tripmatch/internal/domain/trip"
	"tripmatch/internal/infra"
	"tripmatch/internal/pkg/errs"
	"tripmatch/internal/usecase/shared"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const dsnParams = "?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_txlock=immediate"

var _ shared.UnitOfWork = (*Store)(nil)

type Store struct {
	db     *sql.DB
	size   trip.GroupSize
	policy shared.RetryPolicy
}

// Open creates parent directories, opens the database and applies the schema.
func Open(ctx context.Context, path string, size trip.GroupSize, policy shared.RetryPolicy) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errs.Wrap(err, "create sqlite directory")
	}

	db, err := sql.Open("sqlite", "file:"+path+dsnParams)
	if err != nil {
		return nil, errs.Wrap(err, "open sqlite database")
	}
	// one writer at a time; readers queue behind it instead of hitting SQLITE_BUSY
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errs.Wrap(err, "ping sqlite database")
	}
	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, errs.Wrap(err, "apply sqlite schema")
	}

	slog.Info("sqlite store opened", "path", path)
	return &Store{db: db, size: size, policy: policy}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return shared.Retry(ctx, s.policy, isRetryableError, func(ctx context.Context) error {
		return s.runInTx(ctx, fn)
	})
}

func (s *Store) runInTx(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	sqlTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errs.Mark(err, shared.ErrTransactionBegin)
	}

	err = fn(ctx, &sqliteTx{tx: sqlTx, size: s.size})
	if err == nil {
		if err = sqlTx.Commit(); err == nil {
			return nil
		}
		err = errs.Mark(err, shared.ErrTransactionCommit)
	}

	if rollbackErr := sqlTx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
		slog.Warn("rollback failed", "error", rollbackErr.Error())
	}
	return err
}

func isRetryableError(err error) bool {
	if shared.IsConflict(err) {
		return true
	}
	var sqErr *sqlite.Error
	if !errors.As(err, &sqErr) {
		return false
	}
	switch sqErr.Code() & 0xff {
	case sqlite3.SQLITE_BUSY, sqlite3.SQLITE_LOCKED:
		return true
	default:
		return false
	}
}

func classify(err error) infra.RepositoryErrorKind {
	if errors.Is(err, sql.ErrNoRows) {
		return infra.KindNotFound
	}
	var sqErr *sqlite.Error
	if errors.As(err, &sqErr) {
		switch sqErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return infra.KindDuplicateKey
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			return infra.KindForeignKeyViolated
		}
		switch sqErr.Code() & 0xff {
		case sqlite3.SQLITE_BUSY, sqlite3.SQLITE_LOCKED:
			return infra.KindSerialization
		}
	}
	return infra.KindDBFailure
}

// wrap keeps the driver error reachable so isRetryableError still sees SQLITE_BUSY.
func wrap(msg string, err error) error {
	return infra.NewRepoErr(classify(err), msg, err)
}
