package query

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const pendingColumns = `id, user_id, fingerprint, week_start_date, week_end_date, destination, interest, created_at`

// FOR UPDATE makes a competing matcher wait for, then conflict with, this one.
const findCompatiblePending = `
SELECT ` + pendingColumns + `
FROM pending_entries
WHERE fingerprint = $1
  AND user_id <> $2
ORDER BY created_at, id
LIMIT $3
FOR UPDATE`

type FindCompatiblePendingParams struct {
	Fingerprint   string
	ExcludeUserID string
	Limit         int32
}

func (q *Queries) FindCompatiblePending(ctx context.Context, db DBTX, arg FindCompatiblePendingParams) ([]PendingEntryRow, error) {
	rows, err := db.Query(ctx, findCompatiblePending, arg.Fingerprint, arg.ExcludeUserID, arg.Limit)
	if err != nil {
		return nil, err
	}
	return collectPendingRows(rows)
}

const existsPendingForUser = `
SELECT EXISTS (
  SELECT 1 FROM pending_entries WHERE user_id = $1 AND fingerprint = $2
)`

func (q *Queries) ExistsPendingForUser(ctx context.Context, db DBTX, userID, fingerprint string) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx, existsPendingForUser, userID, fingerprint).Scan(&exists)
	return exists, err
}

const insertPending = `
INSERT INTO pending_entries (` + pendingColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

type InsertPendingParams struct {
	ID            pgtype.UUID
	UserID        string
	Fingerprint   string
	WeekStartDate pgtype.Date
	WeekEndDate   pgtype.Date
	Destination   string
	Interest      string
	CreatedAt     pgtype.Timestamptz
}

func (q *Queries) InsertPending(ctx context.Context, db DBTX, arg InsertPendingParams) error {
	_, err := db.Exec(ctx, insertPending,
		arg.ID,
		arg.UserID,
		arg.Fingerprint,
		arg.WeekStartDate,
		arg.WeekEndDate,
		arg.Destination,
		arg.Interest,
		arg.CreatedAt,
	)
	return err
}

const deletePendingByIDs = `DELETE FROM pending_entries WHERE id = ANY($1::uuid[])`

// DeletePendingByIDs returns the number of rows actually removed.
func (q *Queries) DeletePendingByIDs(ctx context.Context, db DBTX, ids []pgtype.UUID) (int64, error) {
	tag, err := db.Exec(ctx, deletePendingByIDs, ids)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const listPendingByUser = `
SELECT ` + pendingColumns + `
FROM pending_entries
WHERE user_id = $1
ORDER BY created_at, id`

func (q *Queries) ListPendingByUser(ctx context.Context, db DBTX, userID string) ([]PendingEntryRow, error) {
	rows, err := db.Query(ctx, listPendingByUser, userID)
	if err != nil {
		return nil, err
	}
	return collectPendingRows(rows)
}

func collectPendingRows(rows pgx.Rows) ([]PendingEntryRow, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (PendingEntryRow, error) {
		var r PendingEntryRow
		err := row.Scan(
			&r.ID,
			&r.UserID,
			&r.Fingerprint,
			&r.WeekStartDate,
			&r.WeekEndDate,
			&r.Destination,
			&r.Interest,
			&r.CreatedAt,
		)
		return r, err
	})
}
