package query

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const insertGroup = `
INSERT INTO travel_groups (id, fingerprint, week_start_date, week_end_date, destination, interest, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

type InsertGroupParams struct {
	ID            pgtype.UUID
	Fingerprint   string
	WeekStartDate pgtype.Date
	WeekEndDate   pgtype.Date
	Destination   string
	Interest      string
	CreatedAt     pgtype.Timestamptz
}

func (q *Queries) InsertGroup(ctx context.Context, db DBTX, arg InsertGroupParams) error {
	_, err := db.Exec(ctx, insertGroup,
		arg.ID,
		arg.Fingerprint,
		arg.WeekStartDate,
		arg.WeekEndDate,
		arg.Destination,
		arg.Interest,
		arg.CreatedAt,
	)
	return err
}

// position is zero-based and follows the slice order.
const insertGroupMembers = `
INSERT INTO travel_group_members (group_id, position, user_id)
SELECT $1, m.ord - 1, m.user_id
FROM unnest($2::text[]) WITH ORDINALITY AS m(user_id, ord)`

func (q *Queries) InsertGroupMembers(ctx context.Context, db DBTX, groupID pgtype.UUID, members []string) (int64, error) {
	tag, err := db.Exec(ctx, insertGroupMembers, groupID, members)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const groupSelect = `
SELECT g.id, g.fingerprint, g.week_start_date, g.week_end_date, g.destination, g.interest, g.created_at,
       array_agg(m.user_id ORDER BY m.position) AS members
FROM travel_groups g
JOIN travel_group_members m ON m.group_id = g.id`

const getGroupByID = groupSelect + `
WHERE g.id = $1
GROUP BY g.id`

func (q *Queries) GetGroupByID(ctx context.Context, db DBTX, id pgtype.UUID) (GroupRow, error) {
	rows, err := db.Query(ctx, getGroupByID, id)
	if err != nil {
		return GroupRow{}, err
	}
	return pgx.CollectExactlyOneRow(rows, scanGroupRow)
}

const listGroupsByMember = groupSelect + `
WHERE g.id IN (SELECT group_id FROM travel_group_members WHERE user_id = $1)
GROUP BY g.id
ORDER BY g.created_at DESC, g.id DESC
LIMIT $2`

type ListGroupsByMemberParams struct {
	UserID string
	Limit  int32
}

func (q *Queries) ListGroupsByMember(ctx context.Context, db DBTX, arg ListGroupsByMemberParams) ([]GroupRow, error) {
	rows, err := db.Query(ctx, listGroupsByMember, arg.UserID, arg.Limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanGroupRow)
}

const listGroupsByMemberAfter = groupSelect + `
WHERE g.id IN (SELECT group_id FROM travel_group_members WHERE user_id = $1)
  AND (g.created_at, g.id) < ($2, $3)
GROUP BY g.id
ORDER BY g.created_at DESC, g.id DESC
LIMIT $4`

type ListGroupsByMemberAfterParams struct {
	UserID         string
	AfterCreatedAt pgtype.Timestamptz
	AfterID        pgtype.UUID
	Limit          int32
}

func (q *Queries) ListGroupsByMemberAfter(ctx context.Context, db DBTX, arg ListGroupsByMemberAfterParams) ([]GroupRow, error) {
	rows, err := db.Query(ctx, listGroupsByMemberAfter, arg.UserID, arg.AfterCreatedAt, arg.AfterID, arg.Limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanGroupRow)
}

func scanGroupRow(row pgx.CollectableRow) (GroupRow, error) {
	var r GroupRow
	err := row.Scan(
		&r.ID,
		&r.Fingerprint,
		&r.WeekStartDate,
		&r.WeekEndDate,
		&r.Destination,
		&r.Interest,
		&r.CreatedAt,
		&r.Members,
	)
	return r, err
}
