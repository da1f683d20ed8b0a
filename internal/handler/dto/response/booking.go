package response

import (
	"time"

	"mrbs/internal/domain/booking"
	"mrbs/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type CreatedBookingResponse struct {
	ID          int64     `json:"booking_id"`
	RoomID      int64     `json:"room_id"`
	UserID      int64     `json:"user_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
}

func FromBooking(b *booking.Booking) *CreatedBookingResponse {
	return &CreatedBookingResponse{
		ID:          b.ID(),
		RoomID:      b.RoomID(),
		UserID:      b.UserID(),
		Title:       b.Title().String(),
		Description: b.Description().Ptr(),
		StartTime:   b.StartTime(),
		EndTime:     b.EndTime(),
	}
}

type BookingResponse struct {
	ID               int64     `json:"booking_id"`
	RoomID           int64     `json:"room_id"`
	RoomName         string    `json:"room_name"`
	UserID           int64     `json:"user_id"`
	BookedBy         string    `json:"booked_by"`
	BookedByUsername string    `json:"booked_by_username"`
	Title            string    `json:"title"`
	Description      *string   `json:"description"`
	StartTime        time.Time `json:"start_time"`
	EndTime          time.Time `json:"end_time"`
}

func FromBookingViews(views []*queries.BookingView) ([]BookingResponse, error) {
	res := make([]BookingResponse, 0, len(views))
	if err := copier.Copy(&res, &views); err != nil {
		return nil, err
	}
	return res, nil
}
