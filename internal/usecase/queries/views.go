package queries

import "tripmatch/internal/domain/trip"

// NewGroupView flattens a domain group. Stores that keep domain objects use it.
func NewGroupView(g *trip.Group) *GroupView {
	c := g.Criteria()
	return &GroupView{
		ID:            g.ID(),
		WeekStartDate: c.WeekStart(),
		WeekEndDate:   c.WeekEnd(),
		Destination:   c.Destination(),
		Interest:      c.Interest(),
		Members:       g.Members(),
		CreatedAt:     g.CreatedAt(),
	}
}

func NewPendingView(e *trip.PendingEntry) *PendingView {
	c := e.Criteria()
	return &PendingView{
		ID:            e.ID(),
		WeekStartDate: c.WeekStart(),
		WeekEndDate:   c.WeekEnd(),
		Destination:   c.Destination(),
		Interest:      c.Interest(),
		CreatedAt:     e.CreatedAt(),
	}
}
