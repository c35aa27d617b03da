package converter

import (
	"tripmatch/internal/domain/trip"
	"tripmatch/internal/infra/query"
	"tripmatch/internal/pkg/errs"
	"tripmatch/internal/pkg/pgconv"
)

func PendingToInsertParams(e *trip.PendingEntry) query.InsertPendingParams {
	c := e.Criteria()
	return query.InsertPendingParams{
		ID:            pgconv.UUIDToPgtype(e.ID()),
		UserID:        e.UserID(),
		Fingerprint:   e.Fingerprint().String(),
		WeekStartDate: pgconv.DateToPgtype(c.WeekStart()),
		WeekEndDate:   pgconv.DateToPgtype(c.WeekEnd()),
		Destination:   c.Destination(),
		Interest:      c.Interest(),
		CreatedAt:     pgconv.TimeToPgtype(e.CreatedAt()),
	}
}

func PendingRowToDomain(row query.PendingEntryRow) (*trip.PendingEntry, error) {
	criteria, err := criteriaFromRow(row.WeekStartDate, row.WeekEndDate, row.Destination, row.Interest)
	if err != nil {
		return nil, errs.Wrap(err, "pending entry "+row.UserID)
	}
	return trip.ReconstructPendingEntry(
		pgconv.UUIDFromPgtype(row.ID),
		row.UserID,
		criteria,
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}

func PendingRowsToDomain(rows []query.PendingEntryRow) ([]*trip.PendingEntry, error) {
	out := make([]*trip.PendingEntry, 0, len(rows))
	for _, r := range rows {
		e, err := PendingRowToDomain(r)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func GroupToInsertParams(g *trip.Group) query.InsertGroupParams {
	c := g.Criteria()
	return query.InsertGroupParams{
		ID:            pgconv.UUIDToPgtype(g.ID()),
		Fingerprint:   c.Fingerprint().String(),
		WeekStartDate: pgconv.DateToPgtype(c.WeekStart()),
		WeekEndDate:   pgconv.DateToPgtype(c.WeekEnd()),
		Destination:   c.Destination(),
		Interest:      c.Interest(),
		CreatedAt:     pgconv.TimeToPgtype(g.CreatedAt()),
	}
}

func GroupRowToDomain(row query.GroupRow) (*trip.Group, error) {
	criteria, err := criteriaFromRow(row.WeekStartDate, row.WeekEndDate, row.Destination, row.Interest)
	if err != nil {
		return nil, errs.Wrap(err, "group row")
	}
	return trip.ReconstructGroup(
		pgconv.UUIDFromPgtype(row.ID),
		criteria,
		row.Members,
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}
