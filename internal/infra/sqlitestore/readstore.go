package sqlitestore

import (
	"context"
	"database/sql"
	"time"

	"tripmatch/internal/domain/trip"
	"tripmatch/internal/infra"
	"tripmatch/internal/usecase/queries"

	"github.com/google/uuid"
)

const groupColumns = `g.id, g.week_start_date, g.week_end_date, g.destination, g.interest, g.created_at`

var (
	_ queries.GroupReadStore   = (*Store)(nil)
	_ queries.PendingReadStore = (*Store)(nil)
)

func (s *Store) FindByID(ctx context.Context, id uuid.UUID) (*queries.GroupView, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+groupColumns+` FROM travel_groups g WHERE g.id = ?`, id.String())
	if err != nil {
		return nil, wrap("failed to get group", err)
	}
	groups, err := s.loadGroups(ctx, rows)
	if err != nil {
		return nil, err
	}
	if len(groups) == 0 {
		return nil, infra.NewRepoErr(infra.KindNotFound, "group not found", nil)
	}
	return queries.NewGroupView(groups[0]), nil
}

func (s *Store) FindByMemberFirstPage(ctx context.Context, userID string, limit int32) ([]*queries.GroupView, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT `+groupColumns+`
FROM travel_groups g
JOIN travel_group_members m ON m.group_id = g.id
WHERE m.user_id = ?
ORDER BY g.created_at DESC, g.id DESC
LIMIT ?`, userID, limit)
	if err != nil {
		return nil, wrap("failed to list groups for member", err)
	}
	return s.groupViews(ctx, rows)
}

func (s *Store) FindByMemberKeyset(ctx context.Context, userID string, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.GroupView, error) {
	after := lastCreatedAt.UnixMicro()
	rows, err := s.db.QueryContext(ctx, `
SELECT `+groupColumns+`
FROM travel_groups g
JOIN travel_group_members m ON m.group_id = g.id
WHERE m.user_id = ?
  AND (g.created_at < ? OR (g.created_at = ? AND g.id < ?))
ORDER BY g.created_at DESC, g.id DESC
LIMIT ?`, userID, after, after, lastID.String(), limit)
	if err != nil {
		return nil, wrap("failed to list groups for member", err)
	}
	return s.groupViews(ctx, rows)
}

func (s *Store) FindByUser(ctx context.Context, userID string) ([]*queries.PendingView, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT `+pendingColumns+`
FROM pending_entries
WHERE user_id = ?
ORDER BY created_at, id`, userID)
	if err != nil {
		return nil, wrap("failed to list pending entries", err)
	}
	entries, err := scanPendingRows(rows)
	if err != nil {
		return nil, err
	}
	views := make([]*queries.PendingView, len(entries))
	for i, e := range entries {
		views[i] = queries.NewPendingView(e)
	}
	return views, nil
}

func (s *Store) groupViews(ctx context.Context, rows *sql.Rows) ([]*queries.GroupView, error) {
	groups, err := s.loadGroups(ctx, rows)
	if err != nil {
		return nil, err
	}
	views := make([]*queries.GroupView, len(groups))
	for i, g := range groups {
		views[i] = queries.NewGroupView(g)
	}
	return views, nil
}

type groupHead struct {
	id        uuid.UUID
	criteria  trip.Criteria
	createdAt time.Time
}

// loadGroups drains rows before querying members; the pool has one connection.
func (s *Store) loadGroups(ctx context.Context, rows *sql.Rows) ([]*trip.Group, error) {
	heads, err := scanGroupHeads(rows)
	if err != nil {
		return nil, err
	}

	groups := make([]*trip.Group, 0, len(heads))
	for _, h := range heads {
		members, err := s.members(ctx, h.id)
		if err != nil {
			return nil, err
		}
		groups = append(groups, trip.ReconstructGroup(h.id, h.criteria, members, h.createdAt))
	}
	return groups, nil
}

func scanGroupHeads(rows *sql.Rows) ([]groupHead, error) {
	defer rows.Close()

	var heads []groupHead
	for rows.Next() {
		var (
			id, start, end, destination, interest string
			createdAt                             int64
		)
		if err := rows.Scan(&id, &start, &end, &destination, &interest, &createdAt); err != nil {
			return nil, wrap("failed to scan group", err)
		}
		gid, err := uuid.Parse(id)
		if err != nil {
			return nil, wrap("corrupt group id", err)
		}
		criteria, err := criteriaFromRow(start, end, destination, interest)
		if err != nil {
			return nil, wrap("corrupt group criteria", err)
		}
		heads = append(heads, groupHead{id: gid, criteria: criteria, createdAt: time.UnixMicro(createdAt).UTC()})
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("failed to iterate groups", err)
	}
	return heads, nil
}

func (s *Store) members(ctx context.Context, groupID uuid.UUID) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT user_id FROM travel_group_members WHERE group_id = ? ORDER BY position`, groupID.String())
	if err != nil {
		return nil, wrap("failed to list group members", err)
	}
	defer rows.Close()

	var members []string
	for rows.Next() {
		var m string
		if err := rows.Scan(&m); err != nil {
			return nil, wrap("failed to scan group member", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("failed to iterate group members", err)
	}
	return members, nil
}
