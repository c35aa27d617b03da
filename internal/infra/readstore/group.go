package readstore

import (
	"context"
	"time"

	"tripmatch/internal/infra"
	"tripmatch/internal/infra/query"
	"tripmatch/internal/infra/repository/converter"
	"tripmatch/internal/pkg/pgconv"
	"tripmatch/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type GroupViewQueries interface {
	GetGroupByID(ctx context.Context, db query.DBTX, id pgtype.UUID) (query.GroupRow, error)
	ListGroupsByMember(ctx context.Context, db query.DBTX, arg query.ListGroupsByMemberParams) ([]query.GroupRow, error)
	ListGroupsByMemberAfter(ctx context.Context, db query.DBTX, arg query.ListGroupsByMemberAfterParams) ([]query.GroupRow, error)
}

type GroupReadStore struct {
	queries GroupViewQueries
	db      query.DBTX
}

func NewGroupReadStore(queries GroupViewQueries, db query.DBTX) *GroupReadStore {
	return &GroupReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *GroupReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.GroupView, error) {
	row, err := r.queries.GetGroupByID(ctx, r.db, pgconv.UUIDToPgtype(id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get group by id", err)
	}
	return groupRowToView(row)
}

func (r *GroupReadStore) FindByMemberFirstPage(ctx context.Context, userID string, limit int32) ([]*queries.GroupView, error) {
	rows, err := r.queries.ListGroupsByMember(ctx, r.db, query.ListGroupsByMemberParams{
		UserID: userID,
		Limit:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list groups by member", err)
	}
	return groupRowsToViews(rows)
}

func (r *GroupReadStore) FindByMemberKeyset(ctx context.Context, userID string, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.GroupView, error) {
	rows, err := r.queries.ListGroupsByMemberAfter(ctx, r.db, query.ListGroupsByMemberAfterParams{
		UserID:         userID,
		AfterCreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		AfterID:        pgconv.UUIDToPgtype(lastID),
		Limit:          limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list groups by member keyset", err)
	}
	return groupRowsToViews(rows)
}

func groupRowToView(row query.GroupRow) (*queries.GroupView, error) {
	g, err := converter.GroupRowToDomain(row)
	if err != nil {
		return nil, infra.NewRepoErr(infra.KindDBFailure, "corrupt group row", err)
	}
	return queries.NewGroupView(g), nil
}

func groupRowsToViews(rows []query.GroupRow) ([]*queries.GroupView, error) {
	views := make([]*queries.GroupView, 0, len(rows))
	for _, row := range rows {
		v, err := groupRowToView(row)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}
