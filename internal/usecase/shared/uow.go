package shared

import (
	"context"

	"tripmatch/internal/domain/trip"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: one atomic transaction over the pending pool and the group store.
	// fn may run more than once; it must not have side effects outside tx.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// Ping: storage liveness for health checks
	Ping(ctx context.Context) error
}

type Tx interface {
	Pending() PendingPool
	Groups() GroupStore
}

type PendingPool interface {
	// FindCompatible returns up to limit entries for fp, oldest first, skipping excludeUserID.
	FindCompatible(ctx context.Context, fp trip.Fingerprint, excludeUserID string, limit int) ([]*trip.PendingEntry, error)
	HasPending(ctx context.Context, userID string, fp trip.Fingerprint) (bool, error)
	// Insert fails with infra.KindDuplicateKey when userID already waits on the same fingerprint.
	Insert(ctx context.Context, entry *trip.PendingEntry) error
	// DeleteAll fails with infra.KindNotFound when any id is already gone.
	DeleteAll(ctx context.Context, ids []uuid.UUID) error
}

type GroupStore interface {
	// Create fails with trip.ErrInvalidGroup for a wrong member count or a repeated member.
	Create(ctx context.Context, group *trip.Group) error
}
