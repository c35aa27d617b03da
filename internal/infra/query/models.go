package query

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type PendingEntryRow struct {
	ID            pgtype.UUID
	UserID        string
	Fingerprint   string
	WeekStartDate pgtype.Date
	WeekEndDate   pgtype.Date
	Destination   string
	Interest      string
	CreatedAt     pgtype.Timestamptz
}

type GroupRow struct {
	ID            pgtype.UUID
	Fingerprint   string
	WeekStartDate pgtype.Date
	WeekEndDate   pgtype.Date
	Destination   string
	Interest      string
	CreatedAt     pgtype.Timestamptz
	Members       []string
}
