package converter

import (
	"tripmatch/internal/domain/trip"
	"tripmatch/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func criteriaFromRow(start, end pgtype.Date, destination, interest string) (trip.Criteria, error) {
	s, err := pgconv.DateFromPgtype(start)
	if err != nil {
		return trip.Criteria{}, err
	}
	e, err := pgconv.DateFromPgtype(end)
	if err != nil {
		return trip.Criteria{}, err
	}
	return trip.NewCriteria(s, e, destination, interest)
}
