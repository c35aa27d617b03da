package repository

import (
	"context"
	"fmt"

	"tripmatch/internal/domain/trip"
	"tripmatch/internal/infra"
	"tripmatch/internal/infra/query"
	"tripmatch/internal/infra/repository/converter"
	"tripmatch/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type PendingWriteQueries interface {
	FindCompatiblePending(ctx context.Context, db query.DBTX, arg query.FindCompatiblePendingParams) ([]query.PendingEntryRow, error)
	ExistsPendingForUser(ctx context.Context, db query.DBTX, userID, fingerprint string) (bool, error)
	InsertPending(ctx context.Context, db query.DBTX, arg query.InsertPendingParams) error
	DeletePendingByIDs(ctx context.Context, db query.DBTX, ids []pgtype.UUID) (int64, error)
}

type PendingRepository struct {
	queries PendingWriteQueries
	db      query.DBTX
}

func NewPendingRepository(queries PendingWriteQueries, db query.DBTX) *PendingRepository {
	return &PendingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PendingRepository) FindCompatible(ctx context.Context, fp trip.Fingerprint, excludeUserID string, limit int) ([]*trip.PendingEntry, error) {
	if limit <= 0 {
		return nil, nil
	}
	rows, err := r.queries.FindCompatiblePending(ctx, r.db, query.FindCompatiblePendingParams{
		Fingerprint:   fp.String(),
		ExcludeUserID: excludeUserID,
		Limit:         int32(limit), // #nosec G115 -- bounded by group size
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find compatible pending entries", err)
	}
	entries, err := converter.PendingRowsToDomain(rows)
	if err != nil {
		return nil, infra.NewRepoErr(infra.KindDBFailure, "corrupt pending entry row", err)
	}
	return entries, nil
}

func (r *PendingRepository) HasPending(ctx context.Context, userID string, fp trip.Fingerprint) (bool, error) {
	exists, err := r.queries.ExistsPendingForUser(ctx, r.db, userID, fp.String())
	if err != nil {
		return false, infra.WrapRepoErr("failed to check pending entry", err)
	}
	return exists, nil
}

func (r *PendingRepository) Insert(ctx context.Context, entry *trip.PendingEntry) error {
	if err := r.queries.InsertPending(ctx, r.db, converter.PendingToInsertParams(entry)); err != nil {
		return infra.WrapRepoErr("failed to insert pending entry", err)
	}
	return nil
}

func (r *PendingRepository) DeleteAll(ctx context.Context, ids []uuid.UUID) error {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return nil
	}
	deleted, err := r.queries.DeletePendingByIDs(ctx, r.db, pgconv.UUIDsToPgtype(ids))
	if err != nil {
		return infra.WrapRepoErr("failed to delete pending entries", err)
	}
	if deleted != int64(len(ids)) {
		return infra.NewRepoErr(infra.KindNotFound,
			fmt.Sprintf("pending entries vanished: deleted %d of %d", deleted, len(ids)), nil)
	}
	return nil
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
