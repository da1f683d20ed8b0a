package booking

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

// PeriodLength is the scheduling unit booking durations are expressed in.
const PeriodLength = 30 * time.Minute

// MaxPeriods caps a single booking at one calendar day.
const MaxPeriods = 48

const (
	MaxTitleLength       = 255
	MaxDescriptionLength = 2000
)

var (
	ErrInvalidPeriods     = errors.New("duration must be at least one period")
	ErrTooManyPeriods     = errors.New("duration must be at most 48 periods")
	ErrInvalidTimeSlot    = errors.New("end time must be after start time")
	ErrMissingStartTime   = errors.New("start time is required")
	ErrEmptyTitle         = errors.New("title cannot be empty")
	ErrTitleTooLong       = errors.New("title is too long")
	ErrDescriptionTooLong = errors.New("description is too long")
	ErrInvalidRoomID      = errors.New("invalid room id")
	ErrInvalidUserID      = errors.New("invalid user id")
)

// TimeSlot is the half-open interval [start, end).
type TimeSlot struct {
	start time.Time
	end   time.Time
}

// NewTimeSlot derives the end from a whole number of periods.
func NewTimeSlot(start time.Time, periods int) (TimeSlot, error) {
	if start.IsZero() {
		return TimeSlot{}, ErrMissingStartTime
	}
	if periods <= 0 {
		return TimeSlot{}, ErrInvalidPeriods
	}
	if periods > MaxPeriods {
		return TimeSlot{}, ErrTooManyPeriods
	}
	end := start.Add(time.Duration(periods) * PeriodLength)
	if !end.After(start) {
		return TimeSlot{}, ErrInvalidTimeSlot
	}
	return TimeSlot{start: start, end: end}, nil
}

func (ts TimeSlot) Start() time.Time { return ts.start }
func (ts TimeSlot) End() time.Time   { return ts.end }

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

// Overlaps uses the half-open test, so back-to-back slots do not collide.
func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return ts.start.Before(other.end) && other.start.Before(ts.end)
}

type Title struct {
	value string
}

func NewTitle(s string) (Title, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Title{}, ErrEmptyTitle
	}
	if utf8.RuneCountInString(s) > MaxTitleLength {
		return Title{}, ErrTitleTooLong
	}
	return Title{value: s}, nil
}

func (t Title) String() string {
	return t.value
}

// Description is optional; the zero value means absent.
type Description struct {
	value *string
}

func NewDescription(s *string) (Description, error) {
	if s == nil {
		return Description{}, nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return Description{}, nil
	}
	if utf8.RuneCountInString(v) > MaxDescriptionLength {
		return Description{}, ErrDescriptionTooLong
	}
	return Description{value: &v}, nil
}

func (d Description) Ptr() *string {
	return d.value
}

func (d Description) String() string {
	if d.value == nil {
		return ""
	}
	return *d.value
}

func (d Description) IsEmpty() bool {
	return d.value == nil
}
