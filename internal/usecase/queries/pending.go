package queries

import (
	"context"

	"tripmatch/internal/pkg/errs"
)

var ErrPendingQueryFailed = errs.New("pending query failed")

type PendingReadStore interface {
	FindByUser(ctx context.Context, userID string) ([]*PendingView, error)
}

type PendingQueries interface {
	ListForUser(ctx context.Context, userID string) ([]*PendingView, error)
}

type pendingQueriesImpl struct {
	store PendingReadStore
}

func NewPendingQueries(store PendingReadStore) PendingQueries {
	return &pendingQueriesImpl{store: store}
}

func (q *pendingQueriesImpl) ListForUser(ctx context.Context, userID string) ([]*PendingView, error) {
	views, err := q.store.FindByUser(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrPendingQueryFailed)
	}
	return views, nil
}
