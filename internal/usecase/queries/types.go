package queries

import "time"

// RoomView represents read-optimized room data
type RoomView struct {
	ID          int64  `json:"room_id"`
	DisplayName string `json:"display_name"`
}

// BookingView is a booking joined with the names of its room and user
type BookingView struct {
	ID               int64     `json:"booking_id"`
	RoomID           int64     `json:"room_id"`
	RoomName         string    `json:"room_name"`
	UserID           int64     `json:"user_id"`
	BookedBy         string    `json:"booked_by"`
	BookedByUsername string    `json:"booked_by_username"`
	Title            string    `json:"title"`
	Description      *string   `json:"description,omitempty"`
	StartTime        time.Time `json:"start_time"`
	EndTime          time.Time `json:"end_time"`
}

// UserView never carries the password hash
type UserView struct {
	ID          int64      `json:"user_id"`
	Username    string     `json:"username"`
	DisplayName string     `json:"display_name"`
	Level       int        `json:"level"`
	LastLogin   *time.Time `json:"last_login,omitempty"`
}

type SessionView struct {
	TokenHash string
	UserID    int64
	CreatedAt time.Time
}
