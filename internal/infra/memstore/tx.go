package memstore

import (
	"context"
	"fmt"

	"tripmatch/internal/domain/trip"
	"tripmatch/internal/infra"
	"tripmatch/internal/usecase/shared"

	"github.com/google/uuid"
)

type memTx struct {
	store   *Store
	stamps  map[trip.Fingerprint]uint64
	inserts []*trip.PendingEntry
	deletes map[uuid.UUID]trip.Fingerprint
	groups  []*trip.Group
}

func newTx(s *Store) *memTx {
	return &memTx{
		store:   s,
		stamps:  make(map[trip.Fingerprint]uint64),
		deletes: make(map[uuid.UUID]trip.Fingerprint),
	}
}

func (t *memTx) Pending() shared.PendingPool { return (*pendingPool)(t) }
func (t *memTx) Groups() shared.GroupStore   { return (*groupStore)(t) }

// stamp must be called with store.mu held.
func (t *memTx) stamp(fp trip.Fingerprint) {
	if _, ok := t.stamps[fp]; !ok {
		t.stamps[fp] = t.store.versions[fp]
	}
}

// visible lists entries for fp as this transaction sees them. Caller holds store.mu.
func (t *memTx) visible(fp trip.Fingerprint) []*trip.PendingEntry {
	var out []*trip.PendingEntry
	for id, e := range t.store.pending {
		if e.Fingerprint() != fp {
			continue
		}
		if _, gone := t.deletes[id]; gone {
			continue
		}
		out = append(out, e)
	}
	for _, e := range t.inserts {
		if e.Fingerprint() == fp {
			out = append(out, e)
		}
	}
	return out
}

type pendingPool memTx

func (p *pendingPool) FindCompatible(_ context.Context, fp trip.Fingerprint, excludeUserID string, limit int) ([]*trip.PendingEntry, error) {
	t := (*memTx)(p)
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()

	t.stamp(fp)
	var matches []*trip.PendingEntry
	for _, e := range t.visible(fp) {
		if e.UserID() != excludeUserID {
			matches = append(matches, e)
		}
	}
	trip.SortOldestFirst(matches)
	if limit >= 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

func (p *pendingPool) HasPending(_ context.Context, userID string, fp trip.Fingerprint) (bool, error) {
	t := (*memTx)(p)
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()

	t.stamp(fp)
	for _, e := range t.visible(fp) {
		if e.UserID() == userID {
			return true, nil
		}
	}
	return false, nil
}

func (p *pendingPool) Insert(_ context.Context, entry *trip.PendingEntry) error {
	t := (*memTx)(p)
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()

	fp := entry.Fingerprint()
	t.stamp(fp)
	for _, e := range t.visible(fp) {
		if e.UserID() == entry.UserID() {
			return infra.NewRepoErr(infra.KindDuplicateKey, "pending entry already exists for user and fingerprint", nil)
		}
	}
	t.inserts = append(t.inserts, entry)
	return nil
}

func (p *pendingPool) DeleteAll(_ context.Context, ids []uuid.UUID) error {
	t := (*memTx)(p)
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()

	for _, id := range ids {
		if _, gone := t.deletes[id]; gone {
			continue
		}
		e, ok := t.store.pending[id]
		if !ok {
			return infra.NewRepoErr(infra.KindNotFound, fmt.Sprintf("pending entry %s vanished", id), nil)
		}
		t.stamp(e.Fingerprint())
		t.deletes[id] = e.Fingerprint()
	}
	return nil
}

type groupStore memTx

func (g *groupStore) Create(_ context.Context, group *trip.Group) error {
	t := (*memTx)(g)
	if err := t.store.size.ValidateMembers(group.Members()); err != nil {
		return err
	}
	t.groups = append(t.groups, group)
	return nil
}
