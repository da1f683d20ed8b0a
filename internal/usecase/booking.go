package usecase

import (
	"context"
	"log/slog"
	"strings"

	"mrbs/internal/domain/booking"
	"mrbs/internal/domain/user"
	"mrbs/internal/pkg/clock"
	"mrbs/internal/pkg/errs"
	"mrbs/internal/usecase/commands"
	"mrbs/internal/usecase/queries"
	"mrbs/internal/usecase/shared"
)

// ErrInvalidCredentials is returned for an unknown username and for a wrong
// password alike.
var ErrInvalidCredentials = errs.NewKind(errs.ErrAuthentication, "invalid username or password")

const (
	reasonInvalidDate      = "date must be formatted as YYYY-MM-DD"
	reasonInvalidStartTime = "start_time must be RFC 3339 or YYYY-MM-DD HH:MM"
)

type LoginResult struct {
	SessionID string
	User      *queries.UserView
}

type CreateBookingRequest struct {
	RoomID      int64
	StartTime   string
	Periods     int
	Title       string
	Description *string
}

//go:generate mockgen -source=booking.go -destination=../../tests/mock/usecase/booking_service.go -package=usecase
type BookingService interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	Logout(ctx context.Context, sessionID string) error
	CreateBooking(ctx context.Context, sessionID string, req CreateBookingRequest) (*booking.Booking, error)
	// ListBookingsForDay takes YYYY-MM-DD; an empty date means today.
	ListBookingsForDay(ctx context.Context, date string) ([]*queries.BookingView, error)
	ListRooms(ctx context.Context) ([]*queries.RoomView, error)
	GetRoom(ctx context.Context, roomID int64) (*queries.RoomView, error)
	CurrentUser(ctx context.Context, sessionID string) (*queries.UserView, error)
	Authenticate(ctx context.Context, sessionID string) (int64, error)
}

type bookingServiceImpl struct {
	uow            shared.UnitOfWork
	credentials    CredentialStore
	sessions       SessionManager
	rooms          queries.RoomQueries
	users          queries.UserQueries
	bookingQueries queries.BookingQueries
	ledger         commands.BookingCommands
	hours          booking.OperatingHours
	clock          clock.Clock
}

func NewBookingService(
	uow shared.UnitOfWork,
	credentials CredentialStore,
	sessions SessionManager,
	rooms queries.RoomQueries,
	users queries.UserQueries,
	bookingQueries queries.BookingQueries,
	ledger commands.BookingCommands,
	hours booking.OperatingHours,
	clock clock.Clock,
) BookingService {
	return &bookingServiceImpl{
		uow:            uow,
		credentials:    credentials,
		sessions:       sessions,
		rooms:          rooms,
		users:          users,
		bookingQueries: bookingQueries,
		ledger:         ledger,
		hours:          hours,
		clock:          clock,
	}
}

func (s *bookingServiceImpl) Login(ctx context.Context, username, plaintext string) (*LoginResult, error) {
	credentials, err := user.NewCredentials(username, plaintext)
	if err != nil {
		s.credentials.BurnVerification(plaintext)
		return nil, ErrInvalidCredentials
	}

	record, err := s.credentials.FindByUsername(ctx, credentials.Username().Value())
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			s.credentials.BurnVerification(plaintext)
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.credentials.VerifyPassword(credentials.Password().Value(), record.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	sessionID, err := s.sessions.CreateSession(ctx, record.User.ID)
	if err != nil {
		return nil, err
	}

	s.afterLogin(ctx, record.User.ID)

	return &LoginResult{SessionID: sessionID, User: record.User}, nil
}

// afterLogin is housekeeping; a failure here never fails the login.
func (s *bookingServiceImpl) afterLogin(ctx context.Context, userID int64) {
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, userID, s.clock.Now())
	})
	if err != nil {
		slog.Warn("failed to update last login", "user_id", userID, "error", err.Error())
	}

	purged, err := s.sessions.PurgeExpired(ctx)
	if err != nil {
		slog.Warn("failed to purge expired sessions", "error", err.Error())
		return
	}
	if purged > 0 {
		slog.Debug("purged expired sessions", "count", purged)
	}
}

func (s *bookingServiceImpl) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessions.Revoke(ctx, sessionID); err != nil {
		slog.Warn("failed to revoke session", "error", err.Error())
	}
	return nil
}

func (s *bookingServiceImpl) Authenticate(ctx context.Context, sessionID string) (int64, error) {
	return s.sessions.Resolve(ctx, sessionID)
}

func (s *bookingServiceImpl) CreateBooking(ctx context.Context, sessionID string, req CreateBookingRequest) (*booking.Booking, error) {
	userID, err := s.sessions.Resolve(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	start, err := s.hours.ParseStartTime(strings.TrimSpace(req.StartTime))
	if err != nil {
		return nil, errs.Validation(reasonInvalidStartTime)
	}

	return s.ledger.Insert(ctx, commands.BookingCandidate{
		RoomID:      req.RoomID,
		UserID:      userID,
		StartTime:   start,
		Periods:     req.Periods,
		Title:       req.Title,
		Description: req.Description,
	})
}

func (s *bookingServiceImpl) ListBookingsForDay(ctx context.Context, date string) ([]*queries.BookingView, error) {
	day := s.hours.Today(s.clock.Now())
	if date = strings.TrimSpace(date); date != "" {
		parsed, err := s.hours.ParseDate(date)
		if err != nil {
			return nil, errs.Validation(reasonInvalidDate)
		}
		day = parsed
	}

	return s.bookingQueries.ListByDayWindow(ctx, day, s.hours)
}

func (s *bookingServiceImpl) ListRooms(ctx context.Context) ([]*queries.RoomView, error) {
	return s.rooms.ListAll(ctx)
}

func (s *bookingServiceImpl) GetRoom(ctx context.Context, roomID int64) (*queries.RoomView, error) {
	return s.rooms.Get(ctx, roomID)
}

func (s *bookingServiceImpl) CurrentUser(ctx context.Context, sessionID string) (*queries.UserView, error) {
	userID, err := s.sessions.Resolve(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	view, err := s.users.GetCurrentUser(ctx, userID)
	if err != nil {
		// The session outlived its user.
		if errs.Is(err, errs.ErrNotFound) {
			return nil, ErrInvalidSession
		}
		return nil, err
	}
	return view, nil
}
