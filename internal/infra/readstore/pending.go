package readstore

import (
	"context"

	"tripmatch/internal/infra"
	"tripmatch/internal/infra/query"
	"tripmatch/internal/infra/repository/converter"
	"tripmatch/internal/usecase/queries"
)

type PendingViewQueries interface {
	ListPendingByUser(ctx context.Context, db query.DBTX, userID string) ([]query.PendingEntryRow, error)
}

type PendingReadStore struct {
	queries PendingViewQueries
	db      query.DBTX
}

func NewPendingReadStore(queries PendingViewQueries, db query.DBTX) *PendingReadStore {
	return &PendingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PendingReadStore) FindByUser(ctx context.Context, userID string) ([]*queries.PendingView, error) {
	rows, err := r.queries.ListPendingByUser(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pending entries by user", err)
	}
	entries, err := converter.PendingRowsToDomain(rows)
	if err != nil {
		return nil, infra.NewRepoErr(infra.KindDBFailure, "corrupt pending entry row", err)
	}
	views := make([]*queries.PendingView, len(entries))
	for i, e := range entries {
		views[i] = queries.NewPendingView(e)
	}
	return views, nil
}
