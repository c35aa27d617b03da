package sqlitestore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"tripmatch/internal/domain/trip"
	"tripmatch/internal/infra"
	"tripmatch/internal/usecase/shared"

	"github.com/google/uuid"
)

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type sqliteTx struct {
	tx   *sql.Tx
	size trip.GroupSize
}

func (t *sqliteTx) Pending() shared.PendingPool {
	return &pendingPool{q: t.tx}
}

func (t *sqliteTx) Groups() shared.GroupStore {
	return &groupStore{q: t.tx, size: t.size}
}

const pendingColumns = `id, user_id, week_start_date, week_end_date, destination, interest, created_at`

type pendingPool struct {
	q queryer
}

func (p *pendingPool) FindCompatible(ctx context.Context, fp trip.Fingerprint, excludeUserID string, limit int) ([]*trip.PendingEntry, error) {
	rows, err := p.q.QueryContext(ctx, `
SELECT `+pendingColumns+`
FROM pending_entries
WHERE fingerprint = ? AND user_id <> ?
ORDER BY created_at, id
LIMIT ?`, fp.String(), excludeUserID, limit)
	if err != nil {
		return nil, wrap("failed to find compatible pending entries", err)
	}
	return scanPendingRows(rows)
}

func (p *pendingPool) HasPending(ctx context.Context, userID string, fp trip.Fingerprint) (bool, error) {
	var exists bool
	err := p.q.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM pending_entries WHERE user_id = ? AND fingerprint = ?)`,
		userID, fp.String(),
	).Scan(&exists)
	if err != nil {
		return false, wrap("failed to check pending entry", err)
	}
	return exists, nil
}

func (p *pendingPool) Insert(ctx context.Context, entry *trip.PendingEntry) error {
	c := entry.Criteria()
	_, err := p.q.ExecContext(ctx, `
INSERT INTO pending_entries (id, user_id, fingerprint, week_start_date, week_end_date, destination, interest, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID().String(),
		entry.UserID(),
		entry.Fingerprint().String(),
		c.WeekStart().Format(trip.DateLayout),
		c.WeekEnd().Format(trip.DateLayout),
		c.Destination(),
		c.Interest(),
		entry.CreatedAt().UnixMicro(),
	)
	if err != nil {
		return wrap("failed to insert pending entry", err)
	}
	return nil
}

func (p *pendingPool) DeleteAll(ctx context.Context, ids []uuid.UUID) error {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return nil
	}

	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id.String()
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")

	res, err := p.q.ExecContext(ctx, `DELETE FROM pending_entries WHERE id IN (`+placeholders+`)`, args...)
	if err != nil {
		return wrap("failed to delete pending entries", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return wrap("failed to count deleted pending entries", err)
	}
	if n != int64(len(ids)) {
		return infra.NewRepoErr(infra.KindNotFound,
			fmt.Sprintf("deleted %d of %d pending entries", n, len(ids)), nil)
	}
	return nil
}

type groupStore struct {
	q    queryer
	size trip.GroupSize
}

func (g *groupStore) Create(ctx context.Context, group *trip.Group) error {
	members := group.Members()
	if err := g.size.ValidateMembers(members); err != nil {
		return err
	}

	c := group.Criteria()
	_, err := g.q.ExecContext(ctx, `
INSERT INTO travel_groups (id, fingerprint, week_start_date, week_end_date, destination, interest, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
		group.ID().String(),
		c.Fingerprint().String(),
		c.WeekStart().Format(trip.DateLayout),
		c.WeekEnd().Format(trip.DateLayout),
		c.Destination(),
		c.Interest(),
		group.CreatedAt().UnixMicro(),
	)
	if err != nil {
		return wrap("failed to insert group", err)
	}

	for pos, userID := range members {
		if _, err := g.q.ExecContext(ctx,
			`INSERT INTO travel_group_members (group_id, position, user_id) VALUES (?, ?, ?)`,
			group.ID().String(), pos, userID,
		); err != nil {
			return wrap("failed to insert group member", err)
		}
	}
	return nil
}

func scanPendingRows(rows *sql.Rows) ([]*trip.PendingEntry, error) {
	defer rows.Close()

	var entries []*trip.PendingEntry
	for rows.Next() {
		var (
			id, userID, start, end, destination, interest string
			createdAt                                     int64
		)
		if err := rows.Scan(&id, &userID, &start, &end, &destination, &interest, &createdAt); err != nil {
			return nil, wrap("failed to scan pending entry", err)
		}
		pid, err := uuid.Parse(id)
		if err != nil {
			return nil, wrap("corrupt pending entry id", err)
		}
		criteria, err := criteriaFromRow(start, end, destination, interest)
		if err != nil {
			return nil, wrap("corrupt pending entry criteria", err)
		}
		entries = append(entries, trip.ReconstructPendingEntry(pid, userID, criteria, time.UnixMicro(createdAt).UTC()))
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("failed to iterate pending entries", err)
	}
	return entries, nil
}

func criteriaFromRow(start, end, destination, interest string) (trip.Criteria, error) {
	s, err := time.Parse(trip.DateLayout, start)
	if err != nil {
		return trip.Criteria{}, err
	}
	e, err := time.Parse(trip.DateLayout, end)
	if err != nil {
		return trip.Criteria{}, err
	}
	return trip.NewCriteria(s, e, destination, interest)
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
