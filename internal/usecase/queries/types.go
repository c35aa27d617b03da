package queries

import (
	"time"

	"github.com/google/uuid"
)

// GroupView represents read-optimized group data
type GroupView struct {
	ID            uuid.UUID `json:"id"`
	WeekStartDate time.Time `json:"week_start_date"`
	WeekEndDate   time.Time `json:"week_end_date"`
	Destination   string    `json:"destination"`
	Interest      string    `json:"interest"`
	Members       []string  `json:"members"`
	CreatedAt     time.Time `json:"created_at"`
}

func (v *GroupView) HasMember(userID string) bool {
	for _, m := range v.Members {
		if m == userID {
			return true
		}
	}
	return false
}

// PendingView represents a submission still waiting for peers
type PendingView struct {
	ID            uuid.UUID `json:"id"`
	WeekStartDate time.Time `json:"week_start_date"`
	WeekEndDate   time.Time `json:"week_end_date"`
	Destination   string    `json:"destination"`
	Interest      string    `json:"interest"`
	CreatedAt     time.Time `json:"created_at"`
}
