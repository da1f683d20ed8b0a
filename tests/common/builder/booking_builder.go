//go:build unit || e2e

package builder

import (
	"time"

	"mrbs/internal/domain/booking"
	reqdto "mrbs/internal/handler/dto/request"
	sqlc "mrbs/internal/infra/sqlc/generated"
	"mrbs/internal/usecase"
	"mrbs/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

// Singapore has no DST, so a fixed zone keeps tests independent of tzdata.
var SGT = time.FixedZone("SGT", 8*60*60)

type BookingBuilder struct {
	ID          int64
	RoomID      int64
	UserID      int64
	Title       string
	Description *string
	StartTime   time.Time
	Periods     int
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:        1,
		RoomID:    1,
		UserID:    1,
		Title:     "Standup",
		StartTime: time.Date(2024, time.March, 10, 10, 0, 0, 0, SGT),
		Periods:   2,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) EndTime() time.Time {
	return b.StartTime.Add(time.Duration(b.Periods) * booking.PeriodLength)
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	title, err := booking.NewTitle(b.Title)
	if err != nil {
		return nil, err
	}
	desc, err := booking.NewDescription(b.Description)
	if err != nil {
		return nil, err
	}
	slot, err := booking.NewTimeSlot(b.StartTime, b.Periods)
	if err != nil {
		return nil, err
	}
	created, err := booking.NewBooking(b.RoomID, b.UserID, title, desc, slot, b.StartTime.Add(-time.Hour))
	if err != nil {
		return nil, err
	}
	return created.Persisted(b.ID, b.StartTime.Add(-time.Hour)), nil
}

func (b *BookingBuilder) BuildRequest() usecase.CreateBookingRequest {
	return usecase.CreateBookingRequest{
		RoomID:      b.RoomID,
		StartTime:   b.StartTime.Format(time.RFC3339),
		Periods:     b.Periods,
		Title:       b.Title,
		Description: b.Description,
	}
}

func (b *BookingBuilder) BuildDTO(sessionID string) reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		SessionID:       sessionID,
		RoomID:          b.RoomID,
		StartTime:       b.StartTime.Format(time.RFC3339),
		DurationPeriods: b.Periods,
		Title:           b.Title,
		Description:     b.Description,
	}
}

func (b *BookingBuilder) BuildView(roomName, bookedBy string) *queries.BookingView {
	return &queries.BookingView{
		ID:               b.ID,
		RoomID:           b.RoomID,
		RoomName:         roomName,
		UserID:           b.UserID,
		BookedBy:         bookedBy,
		BookedByUsername: bookedBy,
		Title:            b.Title,
		Description:      b.Description,
		StartTime:        b.StartTime,
		EndTime:          b.EndTime(),
	}
}

func (b *BookingBuilder) BuildInfra(roomName, bookedBy string) sqlc.ListBookingsStartingBetweenRow {
	var desc pgtype.Text
	if b.Description != nil {
		desc = pgtype.Text{String: *b.Description, Valid: true}
	}
	return sqlc.ListBookingsStartingBetweenRow{
		ID:               b.ID,
		RoomID:           b.RoomID,
		RoomName:         roomName,
		UserID:           b.UserID,
		BookedBy:         bookedBy,
		BookedByUsername: bookedBy,
		Title:            b.Title,
		Description:      desc,
		StartTime:        pgtype.Timestamptz{Time: b.StartTime, Valid: true},
		EndTime:          pgtype.Timestamptz{Time: b.EndTime(), Valid: true},
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithRoom(roomID int64) *BookingBuilder {
	b.RoomID = roomID
	return b
}

func (b *BookingBuilder) WithUser(userID int64) *BookingBuilder {
	b.UserID = userID
	return b
}

func (b *BookingBuilder) WithTitle(title string) *BookingBuilder {
	b.Title = title
	return b
}

func (b *BookingBuilder) WithDescription(desc string) *BookingBuilder {
	b.Description = &desc
	return b
}

func (b *BookingBuilder) WithStart(start time.Time) *BookingBuilder {
	b.StartTime = start
	return b
}

func (b *BookingBuilder) WithPeriods(periods int) *BookingBuilder {
	b.Periods = periods
	return b
}
