package booking

import "time"

type Booking struct {
	id          int64
	roomID      int64
	userID      int64
	title       Title
	description Description
	slot        TimeSlot
	createdAt   time.Time
}

func NewBooking(roomID, userID int64, title Title, description Description, slot TimeSlot, now time.Time) (*Booking, error) {
	if roomID <= 0 {
		return nil, ErrInvalidRoomID
	}
	if userID <= 0 {
		return nil, ErrInvalidUserID
	}
	return &Booking{
		roomID:      roomID,
		userID:      userID,
		title:       title,
		description: description,
		slot:        slot,
		createdAt:   now,
	}, nil
}

// Persisted returns a copy carrying the storage-assigned id.
func (b *Booking) Persisted(id int64, createdAt time.Time) *Booking {
	cp := *b
	cp.id = id
	cp.createdAt = createdAt
	return &cp
}

func (b *Booking) ID() int64                { return b.id }
func (b *Booking) RoomID() int64            { return b.roomID }
func (b *Booking) UserID() int64            { return b.userID }
func (b *Booking) Title() Title             { return b.title }
func (b *Booking) Description() Description { return b.description }
func (b *Booking) TimeSlot() TimeSlot       { return b.slot }
func (b *Booking) StartTime() time.Time     { return b.slot.Start() }
func (b *Booking) EndTime() time.Time       { return b.slot.End() }
func (b *Booking) CreatedAt() time.Time     { return b.createdAt }
