package shared

import (
	"context"
	"time"

	"mrbs/internal/domain/booking"
	"mrbs/internal/domain/session"
	"mrbs/internal/domain/user"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	// LockUser and LockRoom hold until the transaction ends. Callers that need
	// both must take the user lock first.
	LockUser(ctx context.Context, userID int64) error
	LockRoom(ctx context.Context, roomID int64) error

	Bookings() BookingRepository
	Sessions() SessionRepository
	Users() UserRepository
}

type CommandReads interface {
	RoomByID(ctx context.Context, id int64) (*RoomSnapshot, error)
	UserByID(ctx context.Context, id int64) (*UserSnapshot, error)
}

type BookingRepository interface {
	CountRoomOverlaps(ctx context.Context, roomID int64, slot booking.TimeSlot) (int64, error)
	CountUserOverlaps(ctx context.Context, userID int64, slot booking.TimeSlot) (int64, error)
	// SumUserDuration totals the user's bookings starting inside the window.
	SumUserDuration(ctx context.Context, userID int64, window booking.DayWindow) (time.Duration, error)
	Create(ctx context.Context, b *booking.Booking) (*booking.Booking, error)
}

type SessionRepository interface {
	Create(ctx context.Context, s *session.Session) error
	Delete(ctx context.Context, tokenHash string) error
	PurgeCreatedBefore(ctx context.Context, before time.Time) (int64, error)
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, userID int64, at time.Time) error
	// CreateIfAbsent reports whether a row was inserted.
	CreateIfAbsent(ctx context.Context, u *user.User) (bool, error)
}
