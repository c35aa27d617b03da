package trip

import (
	"bytes"
	"sort"
	"time"

	"github.com/google/uuid"
)

// PendingEntry is a submission waiting in the pool for compatible peers.
type PendingEntry struct {
	id          uuid.UUID
	userID      string
	criteria    Criteria
	fingerprint Fingerprint
	createdAt   time.Time
}

func NewPendingEntry(sub ValidSubmission, now time.Time) (*PendingEntry, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	return &PendingEntry{
		id:          id,
		userID:      sub.UserID(),
		criteria:    sub.Criteria(),
		fingerprint: sub.Criteria().Fingerprint(),
		createdAt:   now,
	}, nil
}

func ReconstructPendingEntry(id uuid.UUID, userID string, criteria Criteria, createdAt time.Time) *PendingEntry {
	return &PendingEntry{
		id:          id,
		userID:      userID,
		criteria:    criteria,
		fingerprint: criteria.Fingerprint(),
		createdAt:   createdAt,
	}
}

func (p *PendingEntry) ID() uuid.UUID            { return p.id }
func (p *PendingEntry) UserID() string           { return p.userID }
func (p *PendingEntry) Criteria() Criteria       { return p.criteria }
func (p *PendingEntry) Fingerprint() Fingerprint { return p.fingerprint }
func (p *PendingEntry) CreatedAt() time.Time     { return p.createdAt }

// OlderThan orders by createdAt, then by id.
func (p *PendingEntry) OlderThan(other *PendingEntry) bool {
	if !p.createdAt.Equal(other.createdAt) {
		return p.createdAt.Before(other.createdAt)
	}
	return bytes.Compare(p.id[:], other.id[:]) < 0
}

func SortOldestFirst(entries []*PendingEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].OlderThan(entries[j])
	})
}

func PendingIDs(entries []*PendingEntry) []uuid.UUID {
	ids := make([]uuid.UUID, len(entries))
	for i, e := range entries {
		ids[i] = e.id
	}
	return ids
}
