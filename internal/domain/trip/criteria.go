package trip

import (
	"strings"
	"time"
)

// DateLayout is the ISO-8601 calendar date format used on the wire and in storage.
const DateLayout = "2006-01-02"

type WeekRange struct {
	start time.Time
	end   time.Time
}

func NewWeekRange(start, end time.Time) (WeekRange, error) {
	start, end = truncateDate(start), truncateDate(end)
	if start.After(end) {
		return WeekRange{}, &ValidationError{Field: "weekEndDate", Kind: KindInvalidRange}
	}
	return WeekRange{start: start, end: end}, nil
}

func (w WeekRange) Start() time.Time { return w.start }
func (w WeekRange) End() time.Time   { return w.end }

// Criteria is what two submissions must share to be grouped together.
type Criteria struct {
	week        WeekRange
	destination string
	interest    string
}

func NewCriteria(start, end time.Time, destination, interest string) (Criteria, error) {
	week, err := NewWeekRange(start, end)
	if err != nil {
		return Criteria{}, err
	}
	destination = strings.TrimSpace(destination)
	if destination == "" {
		return Criteria{}, &ValidationError{Field: "destination", Kind: KindMissingField}
	}
	interest = strings.TrimSpace(interest)
	if interest == "" {
		return Criteria{}, &ValidationError{Field: "interest", Kind: KindMissingField}
	}
	return Criteria{week: week, destination: destination, interest: interest}, nil
}

func (c Criteria) WeekStart() time.Time { return c.week.start }
func (c Criteria) WeekEnd() time.Time   { return c.week.end }
func (c Criteria) Destination() string  { return c.destination }
func (c Criteria) Interest() string     { return c.interest }

func (c Criteria) Fingerprint() Fingerprint {
	return ComputeFingerprint(c.week.start, c.week.end, c.destination, c.interest)
}

func truncateDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
