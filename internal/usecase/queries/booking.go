package queries

import (
	"context"
	"time"

	"mrbs/internal/domain/booking"
	"mrbs/internal/pkg/errs"
)

type BookingQueries interface {
	// ListByDayWindow returns bookings starting in [date at opens, date+1 at closes),
	// ordered by start time.
	ListByDayWindow(ctx context.Context, date time.Time, hours booking.OperatingHours) ([]*BookingView, error)
}

type BookingReadStore interface {
	FindStartingBetween(ctx context.Context, from, to time.Time) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
}

func NewBookingQueries(readStore BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{readStore: readStore}
}

func (q *bookingQueriesImpl) ListByDayWindow(ctx context.Context, date time.Time, hours booking.OperatingHours) ([]*BookingView, error) {
	window := hours.Window(date)
	views, err := q.readStore.FindStartingBetween(ctx, window.From, window.To)
	if err != nil {
		return nil, errs.Storage(err, "failed to list bookings")
	}
	return views, nil
}
