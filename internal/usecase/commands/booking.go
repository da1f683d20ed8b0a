package commands

import (
	"context"
	"log/slog"
	"time"

	"mrbs/internal/domain/booking"
	"mrbs/internal/infra"
	"mrbs/internal/pkg/clock"
	"mrbs/internal/pkg/errs"
	"mrbs/internal/usecase/shared"
)

var (
	ErrRoomAlreadyBooked  = errs.NewKind(errs.ErrConflict, "room is already booked for this time")
	ErrUserBusy           = errs.NewKind(errs.ErrConflict, "you already have a booking at this time")
	ErrDailyQuotaExceeded = errs.NewKind(errs.ErrConflict, "daily booking quota exceeded")
)

const (
	reasonUnknownRoom = "room does not exist"
	reasonUnknownUser = "user does not exist"
	reasonMissingRef  = "referenced record does not exist"
)

// BookingCandidate is a booking request before the ledger has accepted it.
type BookingCandidate struct {
	RoomID      int64
	UserID      int64
	StartTime   time.Time
	Periods     int
	Title       string
	Description *string
}

// BookingPolicy holds the limits a non-admin booking has to respect.
type BookingPolicy struct {
	Hours      booking.OperatingHours
	DailyQuota time.Duration
}

type BookingCommands interface {
	Insert(ctx context.Context, candidate BookingCandidate) (*booking.Booking, error)
}

type bookingCommandsImpl struct {
	uow    shared.UnitOfWork
	policy BookingPolicy
	clock  clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, policy BookingPolicy, clock clock.Clock) BookingCommands {
	return &bookingCommandsImpl{
		uow:    uow,
		policy: policy,
		clock:  clock,
	}
}

// Insert validates the candidate, then runs the overlap checks and the write
// under the user and room locks. Two inserts for the same room never interleave.
func (b *bookingCommandsImpl) Insert(ctx context.Context, candidate BookingCandidate) (*booking.Booking, error) {
	entity, err := b.buildEntity(candidate)
	if err != nil {
		return nil, err
	}

	if err := b.ensureRoomExists(ctx, candidate.RoomID); err != nil {
		return nil, err
	}

	owner, err := b.loadUser(ctx, candidate.UserID)
	if err != nil {
		return nil, err
	}

	var persisted *booking.Booking
	err = b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.LockUser(ctx, owner.ID); err != nil {
			return errs.Storage(err, "failed to lock user")
		}
		if err := tx.LockRoom(ctx, entity.RoomID()); err != nil {
			return errs.Storage(err, "failed to lock room")
		}

		if err := b.checkRoomAvailable(ctx, tx, entity); err != nil {
			return err
		}

		if !owner.Level.IsAdmin() {
			if err := b.checkUserAvailable(ctx, tx, entity); err != nil {
				return err
			}
			if err := b.checkDailyQuota(ctx, tx, entity); err != nil {
				return err
			}
		}

		created, err := tx.Bookings().Create(ctx, entity)
		if err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return errs.Validation(missingReferenceReason(err))
			}
			return errs.Storage(err, "failed to insert booking")
		}
		persisted = created
		return nil
	})
	if err != nil {
		return nil, errs.OrStorage(err, "booking transaction failed")
	}

	slog.Info("booking created",
		"booking_id", persisted.ID(),
		"room_id", persisted.RoomID(),
		"user_id", persisted.UserID())

	return persisted, nil
}

func (b *bookingCommandsImpl) buildEntity(candidate BookingCandidate) (*booking.Booking, error) {
	slot, err := booking.NewTimeSlot(candidate.StartTime, candidate.Periods)
	if err != nil {
		return nil, errs.Validation(err.Error())
	}

	title, err := booking.NewTitle(candidate.Title)
	if err != nil {
		return nil, errs.Validation(err.Error())
	}

	description, err := booking.NewDescription(candidate.Description)
	if err != nil {
		return nil, errs.Validation(err.Error())
	}

	entity, err := booking.NewBooking(candidate.RoomID, candidate.UserID, title, description, slot, b.clock.Now())
	if err != nil {
		return nil, errs.Validation(err.Error())
	}
	return entity, nil
}

func (b *bookingCommandsImpl) ensureRoomExists(ctx context.Context, roomID int64) error {
	_, err := b.uow.CommandReads().RoomByID(ctx, roomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Validation(reasonUnknownRoom)
		}
		return errs.Storage(err, "failed to look up room")
	}
	return nil
}

func (b *bookingCommandsImpl) loadUser(ctx context.Context, userID int64) (*shared.UserSnapshot, error) {
	owner, err := b.uow.CommandReads().UserByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Validation(reasonUnknownUser)
		}
		return nil, errs.Storage(err, "failed to look up user")
	}
	return owner, nil
}

func (b *bookingCommandsImpl) checkRoomAvailable(ctx context.Context, tx shared.Tx, entity *booking.Booking) error {
	n, err := tx.Bookings().CountRoomOverlaps(ctx, entity.RoomID(), entity.TimeSlot())
	if err != nil {
		return errs.Storage(err, "failed to check room availability")
	}
	if n > 0 {
		return ErrRoomAlreadyBooked
	}
	return nil
}

func (b *bookingCommandsImpl) checkUserAvailable(ctx context.Context, tx shared.Tx, entity *booking.Booking) error {
	n, err := tx.Bookings().CountUserOverlaps(ctx, entity.UserID(), entity.TimeSlot())
	if err != nil {
		return errs.Storage(err, "failed to check user availability")
	}
	if n > 0 {
		return ErrUserBusy
	}
	return nil
}

func (b *bookingCommandsImpl) checkDailyQuota(ctx context.Context, tx shared.Tx, entity *booking.Booking) error {
	if b.policy.DailyQuota <= 0 {
		return nil
	}

	day := b.policy.Hours.DayOf(entity.StartTime())
	window := b.policy.Hours.Window(day)

	used, err := tx.Bookings().SumUserDuration(ctx, entity.UserID(), window)
	if err != nil {
		return errs.Storage(err, "failed to sum booked time")
	}
	if used+entity.TimeSlot().Duration() > b.policy.DailyQuota {
		return ErrDailyQuotaExceeded
	}
	return nil
}

// missingReferenceReason maps a booking foreign key violation to the row that
// vanished between the pre-checks and the insert.
func missingReferenceReason(err error) string {
	switch infra.ViolatedConstraint(err) {
	case infra.ConstraintBookingRoomFK:
		return reasonUnknownRoom
	case infra.ConstraintBookingUserFK:
		return reasonUnknownUser
	default:
		return reasonMissingRef
	}
}
