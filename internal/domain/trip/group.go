package trip

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
)

// GroupSize is the number of members every formed group has.
type GroupSize int

const DefaultGroupSize GroupSize = 4

func NewGroupSize(n int) (GroupSize, error) {
	if n < 2 {
		return 0, ErrInvalidGroupSize
	}
	return GroupSize(n), nil
}

// Peers is how many pending entries must be waiting for a new submission to form a group.
func (s GroupSize) Peers() int { return int(s) - 1 }

func (s GroupSize) ValidateMembers(members []string) error {
	if len(members) != int(s) {
		return &InvalidGroupError{Reason: fmt.Sprintf("expected %d members, got %d", s, len(members))}
	}
	seen := make(map[string]struct{}, len(members))
	for _, m := range members {
		if m == "" {
			return &InvalidGroupError{Reason: "empty member id"}
		}
		if _, dup := seen[m]; dup {
			return &InvalidGroupError{Reason: "duplicate member " + m}
		}
		seen[m] = struct{}{}
	}
	return nil
}

// Group is immutable once created.
type Group struct {
	id        uuid.UUID
	criteria  Criteria
	members   []string
	createdAt time.Time
}

func NewGroup(size GroupSize, criteria Criteria, members []string, now time.Time) (*Group, error) {
	if err := size.ValidateMembers(members); err != nil {
		return nil, err
	}
	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	return &Group{
		id:        id,
		criteria:  criteria,
		members:   slices.Clone(members),
		createdAt: now,
	}, nil
}

func ReconstructGroup(id uuid.UUID, criteria Criteria, members []string, createdAt time.Time) *Group {
	return &Group{
		id:        id,
		criteria:  criteria,
		members:   slices.Clone(members),
		createdAt: createdAt,
	}
}

func (g *Group) ID() uuid.UUID        { return g.id }
func (g *Group) Criteria() Criteria   { return g.criteria }
func (g *Group) CreatedAt() time.Time { return g.createdAt }

func (g *Group) Members() []string {
	return slices.Clone(g.members)
}

func (g *Group) HasMember(userID string) bool {
	return slices.Contains(g.members, userID)
}
