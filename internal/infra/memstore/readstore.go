package memstore

import (
	"bytes"
	"context"
	"sort"
	"time"

	"tripmatch/internal/domain/trip"
	"tripmatch/internal/infra"
	"tripmatch/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	_ queries.GroupReadStore   = (*Store)(nil)
	_ queries.PendingReadStore = (*Store)(nil)
)

func (s *Store) FindByID(_ context.Context, id uuid.UUID) (*queries.GroupView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.groups[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "group not found", nil)
	}
	return queries.NewGroupView(g), nil
}

func (s *Store) FindByMemberFirstPage(ctx context.Context, userID string, limit int32) ([]*queries.GroupView, error) {
	return s.findByMember(ctx, userID, nil, limit), nil
}

func (s *Store) FindByMemberKeyset(ctx context.Context, userID string, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.GroupView, error) {
	after := func(g *trip.Group) bool {
		if !g.CreatedAt().Equal(lastCreatedAt) {
			return g.CreatedAt().Before(lastCreatedAt)
		}
		id := g.ID()
		return bytes.Compare(id[:], lastID[:]) < 0
	}
	return s.findByMember(ctx, userID, after, limit), nil
}

// newest first, matching the Postgres read store
func (s *Store) findByMember(_ context.Context, userID string, keep func(*trip.Group) bool, limit int32) []*queries.GroupView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var found []*trip.Group
	for _, g := range s.groups {
		if !g.HasMember(userID) {
			continue
		}
		if keep != nil && !keep(g) {
			continue
		}
		found = append(found, g)
	}
	sort.Slice(found, func(i, j int) bool {
		if !found[i].CreatedAt().Equal(found[j].CreatedAt()) {
			return found[i].CreatedAt().After(found[j].CreatedAt())
		}
		a, b := found[i].ID(), found[j].ID()
		return bytes.Compare(a[:], b[:]) > 0
	})
	if limit >= 0 && len(found) > int(limit) {
		found = found[:limit]
	}

	views := make([]*queries.GroupView, len(found))
	for i, g := range found {
		views[i] = queries.NewGroupView(g)
	}
	return views
}

func (s *Store) FindByUser(_ context.Context, userID string) ([]*queries.PendingView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var entries []*trip.PendingEntry
	for _, e := range s.pending {
		if e.UserID() == userID {
			entries = append(entries, e)
		}
	}
	trip.SortOldestFirst(entries)

	views := make([]*queries.PendingView, len(entries))
	for i, e := range entries {
		views[i] = queries.NewPendingView(e)
	}
	return views, nil
}
