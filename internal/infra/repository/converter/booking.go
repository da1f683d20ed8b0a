package converter

import (
	"mrbs/internal/domain/booking"
	sqlc "mrbs/internal/infra/sqlc/generated"
	"mrbs/internal/pkg/pgconv"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	return sqlc.CreateBookingParams{
		RoomID:      b.RoomID(),
		UserID:      b.UserID(),
		Title:       b.Title().String(),
		Description: pgconv.StringPtrToPgtype(b.Description().Ptr()),
		StartTime:   pgconv.TimeToPgtype(b.StartTime()),
		EndTime:     pgconv.TimeToPgtype(b.EndTime()),
		CreatedAt:   pgconv.TimeToPgtype(b.CreatedAt()),
	}
}

func RoomOverlapParams(roomID int64, slot booking.TimeSlot) sqlc.CountRoomOverlapsParams {
	return sqlc.CountRoomOverlapsParams{
		RoomID:    roomID,
		EndTime:   pgconv.TimeToPgtype(slot.End()),
		StartTime: pgconv.TimeToPgtype(slot.Start()),
	}
}

func UserOverlapParams(userID int64, slot booking.TimeSlot) sqlc.CountUserOverlapsParams {
	return sqlc.CountUserOverlapsParams{
		UserID:    userID,
		EndTime:   pgconv.TimeToPgtype(slot.End()),
		StartTime: pgconv.TimeToPgtype(slot.Start()),
	}
}

func UserWindowParams(userID int64, window booking.DayWindow) sqlc.SumUserBookedSecondsParams {
	return sqlc.SumUserBookedSecondsParams{
		UserID:     userID,
		WindowFrom: pgconv.TimeToPgtype(window.From),
		WindowTo:   pgconv.TimeToPgtype(window.To),
	}
}
