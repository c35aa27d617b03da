// Package memstore is an in-process implementation of the pending pool and
// group store. Transactions are optimistic: every fingerprint a transaction
// reads or writes is stamped with its version, and commit fails with
// shared.ErrConflict if any stamp moved in the meantime.
package memstore

import (
	"context"
	"sync"

	"tripmatch/internal/domain/trip"
	"tripmatch/internal/pkg/errs"
	"tripmatch/internal/usecase/shared"

	"github.com/google/uuid"
)

var errVersionMoved = errs.New("memstore: fingerprint changed since read")

var _ shared.UnitOfWork = (*Store)(nil)

type Store struct {
	mu       sync.RWMutex
	pending  map[uuid.UUID]*trip.PendingEntry
	versions map[trip.Fingerprint]uint64
	groups   map[uuid.UUID]*trip.Group

	size   trip.GroupSize
	policy shared.RetryPolicy
}

func New(size trip.GroupSize, policy shared.RetryPolicy) *Store {
	return &Store{
		pending:  make(map[uuid.UUID]*trip.PendingEntry),
		versions: make(map[trip.Fingerprint]uint64),
		groups:   make(map[uuid.UUID]*trip.Group),
		size:     size,
		policy:   policy,
	}
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return shared.Retry(ctx, s.policy, shared.IsConflict, func(ctx context.Context) error {
		tx := newTx(s)
		if err := fn(ctx, tx); err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		return s.commit(tx)
	})
}

func (s *Store) Ping(_ context.Context) error {
	return nil
}

func (s *Store) commit(tx *memTx) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for fp, seen := range tx.stamps {
		if s.versions[fp] != seen {
			return errs.Mark(errVersionMoved, shared.ErrConflict)
		}
	}

	touched := make(map[trip.Fingerprint]struct{})
	for id, fp := range tx.deletes {
		delete(s.pending, id)
		touched[fp] = struct{}{}
	}
	for _, e := range tx.inserts {
		s.pending[e.ID()] = e
		touched[e.Fingerprint()] = struct{}{}
	}
	for _, g := range tx.groups {
		s.groups[g.ID()] = g
	}
	for fp := range touched {
		s.versions[fp]++
	}
	return nil
}

// PendingCount reports committed entries waiting on fp.
func (s *Store) PendingCount(fp trip.Fingerprint) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, e := range s.pending {
		if e.Fingerprint() == fp {
			n++
		}
	}
	return n
}

func (s *Store) GroupCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.groups)
}
