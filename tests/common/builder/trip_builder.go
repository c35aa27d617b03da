//go:build unit || e2e

package builder

import (
	"time"

	"tripmatch/internal/domain/identity"
	"tripmatch/internal/domain/trip"
	reqdto "tripmatch/internal/handler/dto/request"
	"tripmatch/internal/usecase/queries"

	"github.com/google/uuid"
)

type TripBuilder struct {
	UserID        string
	WeekStartDate string
	WeekEndDate   string
	Destination   string
	Interest      string
	CreatedAt     time.Time
}

func NewTripBuilder() *TripBuilder {
	return &TripBuilder{
		UserID:        "user-" + uuid.NewString()[:8],
		WeekStartDate: "2026-06-01",
		WeekEndDate:   "2026-06-07",
		Destination:   "Lisbon",
		Interest:      "hiking",
		CreatedAt:     time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (b *TripBuilder) With(mutate func(*TripBuilder)) *TripBuilder {
	mutate(b)
	return b
}

func (b *TripBuilder) ForUser(userID string) *TripBuilder {
	b.UserID = userID
	return b
}

// Build methods
func (b *TripBuilder) BuildSubmission() trip.Submission {
	return trip.Submission{
		UserID:        b.UserID,
		WeekStartDate: b.WeekStartDate,
		WeekEndDate:   b.WeekEndDate,
		Destination:   b.Destination,
		Interest:      b.Interest,
	}
}

// BuildValid panics on invalid input; builders are for well-formed fixtures.
func (b *TripBuilder) BuildValid() trip.ValidSubmission {
	sub, err := trip.Validate(b.BuildSubmission())
	if err != nil {
		panic(err)
	}
	return sub
}

func (b *TripBuilder) BuildPrincipal() identity.Principal {
	p, err := identity.NewPrincipal(b.UserID)
	if err != nil {
		panic(err)
	}
	return p
}

func (b *TripBuilder) BuildPendingEntry() *trip.PendingEntry {
	e, err := trip.NewPendingEntry(b.BuildValid(), b.CreatedAt)
	if err != nil {
		panic(err)
	}
	return e
}

// BuildGroup forms a group of the builder's criteria with members in the given order.
func (b *TripBuilder) BuildGroup(members ...string) *trip.Group {
	size, err := trip.NewGroupSize(len(members))
	if err != nil {
		panic(err)
	}
	g, err := trip.NewGroup(size, b.BuildValid().Criteria(), members, b.CreatedAt)
	if err != nil {
		panic(err)
	}
	return g
}

func (b *TripBuilder) BuildGroupView(members ...string) *queries.GroupView {
	return queries.NewGroupView(b.BuildGroup(members...))
}

func (b *TripBuilder) BuildPendingView() *queries.PendingView {
	return queries.NewPendingView(b.BuildPendingEntry())
}

func (b *TripBuilder) BuildMatchRequestDTO() reqdto.MatchRequest {
	return reqdto.MatchRequest{
		UserID:        b.UserID,
		WeekStartDate: b.WeekStartDate,
		WeekEndDate:   b.WeekEndDate,
		Destination:   b.Destination,
		Interest:      b.Interest,
	}
}
