package booking

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidTimeOfDay = errors.New("invalid time of day, expected HH:MM")

type TimeOfDay struct {
	hour   int
	minute int
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}
	return TimeOfDay{hour: t.Hour(), minute: t.Minute()}, nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.hour, t.minute)
}

// OperatingHours describes a room's bookable day. The day opens on the
// reference date and closes on the following date, so 08:00-02:00 covers
// eighteen hours across midnight.
type OperatingHours struct {
	opens    TimeOfDay
	closes   TimeOfDay
	location *time.Location
}

func NewOperatingHours(opens, closes TimeOfDay, loc *time.Location) OperatingHours {
	if loc == nil {
		loc = time.UTC
	}
	return OperatingHours{opens: opens, closes: closes, location: loc}
}

func (h OperatingHours) Opens() TimeOfDay         { return h.opens }
func (h OperatingHours) Closes() TimeOfDay        { return h.closes }
func (h OperatingHours) Location() *time.Location { return h.location }

// DayWindow is the half-open range [From, To).
type DayWindow struct {
	From time.Time
	To   time.Time
}

func (w DayWindow) Contains(t time.Time) bool {
	return !t.Before(w.From) && t.Before(w.To)
}

// Window returns [date at opens, date+1 at closes). Only the calendar date of
// the argument, read in the operating location, matters.
func (h OperatingHours) Window(date time.Time) DayWindow {
	y, m, d := date.In(h.location).Date()
	return DayWindow{
		From: time.Date(y, m, d, h.opens.hour, h.opens.minute, 0, 0, h.location),
		To:   time.Date(y, m, d+1, h.closes.hour, h.closes.minute, 0, 0, h.location),
	}
}

// DayOf returns the reference date whose window contains t. A time after
// midnight but before closing belongs to the previous date.
func (h OperatingHours) DayOf(t time.Time) time.Time {
	local := t.In(h.location)
	y, m, d := local.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, h.location)
	if h.Window(today).Contains(t) {
		return today
	}
	yesterday := time.Date(y, m, d-1, 0, 0, 0, 0, h.location)
	if h.Window(yesterday).Contains(t) {
		return yesterday
	}
	return today
}

// Today is the reference date for now.
func (h OperatingHours) Today(now time.Time) time.Time {
	y, m, d := now.In(h.location).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, h.location)
}

// ParseDate reads YYYY-MM-DD in the operating location.
func (h OperatingHours) ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(time.DateOnly, s, h.location)
}

const localDateTimeLayout = "2006-01-02 15:04"

// ParseStartTime accepts RFC 3339, or the legacy "YYYY-MM-DD HH:MM" layout read
// in the operating location.
func (h OperatingHours) ParseStartTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation(localDateTimeLayout, s, h.location)
}
