package request

import (
	"mrbs/internal/usecase"
)

type CreateBookingRequest struct {
	SessionID       string  `json:"session_id"`
	RoomID          int64   `json:"room_id" binding:"required,gt=0"`
	StartTime       string  `json:"start_time" binding:"required"`
	DurationPeriods int     `json:"duration_periods"`
	Title           string  `json:"title"`
	Description     *string `json:"description,omitempty"`
}

// ToUseCase leaves period and title checks to the domain so the reasons match.
func (r *CreateBookingRequest) ToUseCase() usecase.CreateBookingRequest {
	return usecase.CreateBookingRequest{
		RoomID:      r.RoomID,
		StartTime:   r.StartTime,
		Periods:     r.DurationPeriods,
		Title:       r.Title,
		Description: r.Description,
	}
}

type ListBookingsQuery struct {
	Date string `form:"date" binding:"omitempty,yyyymmdd"`
}
