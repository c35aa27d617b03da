package trip

import (
	"strings"
	"time"
)

// Submission is the raw inbound request. Every field is an opaque string.
type Submission struct {
	UserID        string
	WeekStartDate string
	WeekEndDate   string
	Destination   string
	Interest      string
}

// ValidSubmission can only be produced by Validate.
type ValidSubmission struct {
	userID   string
	criteria Criteria
}

func (v ValidSubmission) UserID() string     { return v.userID }
func (v ValidSubmission) Criteria() Criteria { return v.criteria }
func (v ValidSubmission) IsZero() bool       { return v.userID == "" }

// Validate checks fields in a fixed order and stops at the first violation.
func Validate(s Submission) (ValidSubmission, error) {
	userID := strings.TrimSpace(s.UserID)
	if userID == "" {
		return ValidSubmission{}, &ValidationError{Field: "userId", Kind: KindMissingField}
	}

	start, err := parseDate("weekStartDate", s.WeekStartDate)
	if err != nil {
		return ValidSubmission{}, err
	}
	end, err := parseDate("weekEndDate", s.WeekEndDate)
	if err != nil {
		return ValidSubmission{}, err
	}

	criteria, err := NewCriteria(start, end, s.Destination, s.Interest)
	if err != nil {
		return ValidSubmission{}, err
	}

	return ValidSubmission{userID: userID, criteria: criteria}, nil
}

func parseDate(field, raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, &ValidationError{Field: field, Kind: KindMissingField}
	}
	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		return time.Time{}, &ValidationError{Field: field, Kind: KindInvalidRange}
	}
	return t, nil
}
