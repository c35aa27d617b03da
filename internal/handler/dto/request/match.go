package request

import (
	"tripmatch/internal/domain/trip"
)

// MatchRequest fields are plain strings; trip.Validate decides what is missing or malformed.
type MatchRequest struct {
	// UserID is optional and, when sent, must equal the token subject.
	UserID        string `json:"uid"`
	WeekStartDate string `json:"weekStartDate"`
	WeekEndDate   string `json:"weekEndDate"`
	Destination   string `json:"destination"`
	Interest      string `json:"interest"`
}

func (r *MatchRequest) ToSubmission(verifiedUserID string) trip.Submission {
	return trip.Submission{
		UserID:        verifiedUserID,
		WeekStartDate: r.WeekStartDate,
		WeekEndDate:   r.WeekEndDate,
		Destination:   r.Destination,
		Interest:      r.Interest,
	}
}
