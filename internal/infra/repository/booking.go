package repository

import (
	"context"
	"time"

	"mrbs/internal/domain/booking"
	"mrbs/internal/infra"
	"mrbs/internal/infra/repository/converter"
	sqlc "mrbs/internal/infra/sqlc/generated"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (sqlc.CreateBookingRow, error)
	CountRoomOverlaps(ctx context.Context, db sqlc.DBTX, arg sqlc.CountRoomOverlapsParams) (int64, error)
	CountUserOverlaps(ctx context.Context, db sqlc.DBTX, arg sqlc.CountUserOverlapsParams) (int64, error)
	SumUserBookedSeconds(ctx context.Context, db sqlc.DBTX, arg sqlc.SumUserBookedSecondsParams) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) CountRoomOverlaps(ctx context.Context, roomID int64, slot booking.TimeSlot) (int64, error) {
	n, err := r.queries.CountRoomOverlaps(ctx, r.db, converter.RoomOverlapParams(roomID, slot))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count room overlaps", err)
	}
	return n, nil
}

func (r *BookingRepository) CountUserOverlaps(ctx context.Context, userID int64, slot booking.TimeSlot) (int64, error) {
	n, err := r.queries.CountUserOverlaps(ctx, r.db, converter.UserOverlapParams(userID, slot))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count user overlaps", err)
	}
	return n, nil
}

func (r *BookingRepository) SumUserDuration(ctx context.Context, userID int64, window booking.DayWindow) (time.Duration, error) {
	seconds, err := r.queries.SumUserBookedSeconds(ctx, r.db, converter.UserWindowParams(userID, window))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to sum booked time", err)
	}
	return time.Duration(seconds) * time.Second, nil
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (*booking.Booking, error) {
	row, err := r.queries.CreateBooking(ctx, r.db, converter.BookingToCreateParams(b))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return b.Persisted(row.ID, row.CreatedAt.Time), nil
}
