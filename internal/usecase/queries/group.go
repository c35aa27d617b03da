package queries

import (
	"context"
	"time"

	"tripmatch/internal/infra"
	"tripmatch/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrGroupNotFound    = errs.New("group not found")
	ErrGroupQueryFailed = errs.New("group query failed")
)

type GroupReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*GroupView, error)
	FindByMemberFirstPage(ctx context.Context, userID string, limit int32) ([]*GroupView, error)
	FindByMemberKeyset(ctx context.Context, userID string, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*GroupView, error)
}

type GroupQueries interface {
	// GetForMember hides groups the user is not a member of behind ErrGroupNotFound.
	GetForMember(ctx context.Context, groupID uuid.UUID, userID string) (*GroupView, error)
	ListForMember(ctx context.Context, userID string, cursor *Cursor, limit int) ([]*GroupView, *Cursor, error)
}

type groupQueriesImpl struct {
	store GroupReadStore
}

func NewGroupQueries(store GroupReadStore) GroupQueries {
	return &groupQueriesImpl{store: store}
}

func (q *groupQueriesImpl) GetForMember(ctx context.Context, groupID uuid.UUID, userID string) (*GroupView, error) {
	view, err := q.store.FindByID(ctx, groupID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, errs.Mark(err, ErrGroupQueryFailed)
	}
	if !view.HasMember(userID) {
		return nil, ErrGroupNotFound
	}
	return view, nil
}

func (q *groupQueriesImpl) ListForMember(ctx context.Context, userID string, cursor *Cursor, limit int) ([]*GroupView, *Cursor, error) {
	limit = ValidateLimit(limit)
	var (
		rows []*GroupView
		err  error
	)
	// one extra row tells us whether another page exists
	if cursor == nil || cursor.After == "" {
		rows, err = q.store.FindByMemberFirstPage(ctx, userID, int32(limit+1)) // #nosec G115 -- bounded by MaxListLimit
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, errs.Mark(derr, ErrInvalidCursor)
		}
		rows, err = q.store.FindByMemberKeyset(ctx, userID, lastCreatedAt, lastID, int32(limit+1)) // #nosec G115 -- bounded by MaxListLimit
	}
	if err != nil {
		return nil, nil, errs.Mark(err, ErrGroupQueryFailed)
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
