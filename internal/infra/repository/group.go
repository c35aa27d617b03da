package repository

import (
	"context"
	"fmt"

	"tripmatch/internal/domain/trip"
	"tripmatch/internal/infra"
	"tripmatch/internal/infra/query"
	"tripmatch/internal/infra/repository/converter"
	"tripmatch/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type GroupWriteQueries interface {
	InsertGroup(ctx context.Context, db query.DBTX, arg query.InsertGroupParams) error
	InsertGroupMembers(ctx context.Context, db query.DBTX, groupID pgtype.UUID, members []string) (int64, error)
}

type GroupRepository struct {
	queries GroupWriteQueries
	db      query.DBTX
	size    trip.GroupSize
}

func NewGroupRepository(queries GroupWriteQueries, db query.DBTX, size trip.GroupSize) *GroupRepository {
	return &GroupRepository{
		queries: queries,
		db:      db,
		size:    size,
	}
}

func (r *GroupRepository) Create(ctx context.Context, group *trip.Group) error {
	members := group.Members()
	if err := r.size.ValidateMembers(members); err != nil {
		return err
	}

	if err := r.queries.InsertGroup(ctx, r.db, converter.GroupToInsertParams(group)); err != nil {
		return infra.WrapRepoErr("failed to insert group", err)
	}
	inserted, err := r.queries.InsertGroupMembers(ctx, r.db, pgconv.UUIDToPgtype(group.ID()), members)
	if err != nil {
		return infra.WrapRepoErr("failed to insert group members", err)
	}
	if inserted != int64(len(members)) {
		return infra.NewRepoErr(infra.KindDBFailure,
			fmt.Sprintf("inserted %d of %d group members", inserted, len(members)), nil)
	}
	return nil
}
