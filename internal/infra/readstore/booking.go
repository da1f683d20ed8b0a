package readstore

import (
	"context"
	"time"

	"mrbs/internal/infra"
	sqlc "mrbs/internal/infra/sqlc/generated"
	"mrbs/internal/pkg/pgconv"
	"mrbs/internal/usecase/queries"
)

type BookingReadQueries interface {
	ListBookingsStartingBetween(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsStartingBetweenParams) ([]sqlc.ListBookingsStartingBetweenRow, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

// FindStartingBetween runs as a single statement, so it sees one snapshot.
func (r *BookingReadStore) FindStartingBetween(ctx context.Context, from, to time.Time) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingsStartingBetween(ctx, r.db, sqlc.ListBookingsStartingBetweenParams{
		WindowFrom: pgconv.TimeToPgtype(from),
		WindowTo:   pgconv.TimeToPgtype(to),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}

	views := make([]*queries.BookingView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toBookingView(row))
	}
	return views, nil
}

func toBookingView(row sqlc.ListBookingsStartingBetweenRow) *queries.BookingView {
	return &queries.BookingView{
		ID:               row.ID,
		RoomID:           row.RoomID,
		RoomName:         row.RoomName,
		UserID:           row.UserID,
		BookedBy:         row.BookedBy,
		BookedByUsername: row.BookedByUsername,
		Title:            row.Title,
		Description:      pgconv.StringPtrFromPgtype(row.Description),
		StartTime:        pgconv.TimeFromPgtype(row.StartTime),
		EndTime:          pgconv.TimeFromPgtype(row.EndTime),
	}
}
