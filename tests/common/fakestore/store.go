//go:build unit

// Package fakestore is an in-memory implementation of every storage port. It
// keeps the locking contract of the Postgres unit of work: LockUser and
// LockRoom hold until Within returns, and staged writes become visible only
// on commit, before the locks are released.
package fakestore

import (
	"context"
	"sort"
	"sync"
	"time"

	"mrbs/internal/domain/booking"
	"mrbs/internal/domain/session"
	"mrbs/internal/domain/user"
	"mrbs/internal/infra"
	"mrbs/internal/usecase/queries"
	"mrbs/internal/usecase/shared"
)

type userRow struct {
	id           int64
	username     string
	displayName  string
	passwordHash string
	level        user.Level
	lastLogin    *time.Time
}

type sessionRow struct {
	userID    int64
	createdAt time.Time
}

type bookingRow struct {
	id          int64
	roomID      int64
	userID      int64
	title       string
	description *string
	start       time.Time
	end         time.Time
}

type Store struct {
	mu       sync.RWMutex
	users    map[int64]*userRow
	rooms    map[int64]string
	sessions map[string]sessionRow
	bookings []*bookingRow
	nextUser int64
	nextBook int64

	locksMu sync.Mutex
	locks   map[lockKey]*sync.Mutex

	failMu     sync.Mutex
	failNext   error
	beforeNext func()
}

type lockKey struct {
	class int
	id    int64
}

const (
	lockClassRoom = 1
	lockClassUser = 2
)

func New() *Store {
	return &Store{
		users:    make(map[int64]*userRow),
		rooms:    make(map[int64]string),
		sessions: make(map[string]sessionRow),
		locks:    make(map[lockKey]*sync.Mutex),
	}
}

// --- seeding ---

func (s *Store) AddRoom(id int64, displayName string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms[id] = displayName
}

func (s *Store) DeleteRoom(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rooms, id)
}

func (s *Store) AddUser(username, displayName, passwordHash string, level user.Level) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextUser++
	s.users[s.nextUser] = &userRow{
		id:           s.nextUser,
		username:     user.NormalizeUsername(username),
		displayName:  displayName,
		passwordHash: passwordHash,
		level:        level,
	}
	return s.nextUser
}

func (s *Store) DeleteUser(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, id)
	for hash, row := range s.sessions {
		if row.userID == id {
			delete(s.sessions, hash)
		}
	}
}

// FailNextTx makes the next Within return err without running its callback.
func (s *Store) FailNextTx(err error) {
	s.failMu.Lock()
	defer s.failMu.Unlock()
	s.failNext = err
}

// BeforeNextTx runs fn when the next Within starts, ahead of its callback.
// Tests use it to change rows between a usecase's pre-checks and its write.
func (s *Store) BeforeNextTx(fn func()) {
	s.failMu.Lock()
	defer s.failMu.Unlock()
	s.beforeNext = fn
}

// --- inspection ---

func (s *Store) BookingCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.bookings)
}

func (s *Store) SessionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *Store) SessionCreatedAt(tokenHash string) (time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	row, ok := s.sessions[tokenHash]
	return row.createdAt, ok
}

func (s *Store) LastLogin(userID int64) *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if u, ok := s.users[userID]; ok {
		return u.lastLogin
	}
	return nil
}

func (s *Store) UserByUsername(username string) (int64, user.Level, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.username == username {
			return u.id, u.level, true
		}
	}
	return 0, 0, false
}

// --- shared.UnitOfWork ---

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.failMu.Lock()
	injected := s.failNext
	s.failNext = nil
	hook := s.beforeNext
	s.beforeNext = nil
	s.failMu.Unlock()
	if hook != nil {
		hook()
	}
	if injected != nil {
		return infra.WrapRepoErr("injected failure", injected)
	}

	tx := &fakeTx{store: s}
	defer tx.release()

	if err := fn(ctx, tx); err != nil {
		return err
	}
	tx.commit()
	return nil
}

func (s *Store) CommandReads() shared.CommandReads {
	return s
}

func (s *Store) RoomByID(_ context.Context, id int64) (*shared.RoomSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	name, ok := s.rooms[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "room not found")
	}
	return &shared.RoomSnapshot{ID: id, DisplayName: name}, nil
}

func (s *Store) UserByID(_ context.Context, id int64) (*shared.UserSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "user not found")
	}
	return &shared.UserSnapshot{ID: u.id, Username: u.username, Level: u.level}, nil
}

func (s *Store) mutexFor(key lockKey) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	m, ok := s.locks[key]
	if !ok {
		m = &sync.Mutex{}
		s.locks[key] = m
	}
	return m
}

// --- read stores ---

type UserReadStore struct{ s *Store }
type RoomReadStore struct{ s *Store }
type BookingReadStore struct{ s *Store }
type SessionReadStore struct{ s *Store }

func (s *Store) Users() *UserReadStore       { return &UserReadStore{s} }
func (s *Store) Rooms() *RoomReadStore       { return &RoomReadStore{s} }
func (s *Store) Bookings() *BookingReadStore { return &BookingReadStore{s} }
func (s *Store) Sessions() *SessionReadStore { return &SessionReadStore{s} }

func (r *UserReadStore) FindByID(_ context.Context, id int64) (*queries.UserView, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "user not found")
	}
	return u.view(), nil
}

func (r *UserReadStore) FindByUsername(_ context.Context, username string) (*queries.UserView, string, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.username == username {
			return u.view(), u.passwordHash, nil
		}
	}
	return nil, "", infra.NewRepoErr(infra.KindNotFound, "user not found")
}

func (u *userRow) view() *queries.UserView {
	return &queries.UserView{
		ID:          u.id,
		Username:    u.username,
		DisplayName: u.displayName,
		Level:       int(u.level),
		LastLogin:   u.lastLogin,
	}
}

func (r *RoomReadStore) FindByID(_ context.Context, id int64) (*queries.RoomView, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	name, ok := r.s.rooms[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "room not found")
	}
	return &queries.RoomView{ID: id, DisplayName: name}, nil
}

func (r *RoomReadStore) FindAll(_ context.Context) ([]*queries.RoomView, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	views := make([]*queries.RoomView, 0, len(r.s.rooms))
	for id, name := range r.s.rooms {
		views = append(views, &queries.RoomView{ID: id, DisplayName: name})
	}
	sort.Slice(views, func(i, j int) bool { return views[i].ID < views[j].ID })
	return views, nil
}

func (r *BookingReadStore) FindStartingBetween(_ context.Context, from, to time.Time) ([]*queries.BookingView, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var views []*queries.BookingView
	for _, b := range r.s.bookings {
		if b.start.Before(from) || !b.start.Before(to) {
			continue
		}
		owner := r.s.users[b.userID]
		views = append(views, &queries.BookingView{
			ID:               b.id,
			RoomID:           b.roomID,
			RoomName:         r.s.rooms[b.roomID],
			UserID:           b.userID,
			BookedBy:         owner.displayName,
			BookedByUsername: owner.username,
			Title:            b.title,
			Description:      b.description,
			StartTime:        b.start,
			EndTime:          b.end,
		})
	}
	sort.SliceStable(views, func(i, j int) bool { return views[i].StartTime.Before(views[j].StartTime) })
	return views, nil
}

func (r *SessionReadStore) FindActive(_ context.Context, tokenHash string, since time.Time) (*queries.SessionView, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	row, ok := r.s.sessions[tokenHash]
	if !ok || !row.createdAt.After(since) {
		return nil, infra.NewRepoErr(infra.KindNotFound, "session not found")
	}
	return &queries.SessionView{TokenHash: tokenHash, UserID: row.userID, CreatedAt: row.createdAt}, nil
}

// --- shared.Tx ---

type fakeTx struct {
	store  *Store
	held   []*sync.Mutex
	staged []func()
}

func (t *fakeTx) lock(key lockKey) {
	m := t.store.mutexFor(key)
	m.Lock()
	t.held = append(t.held, m)
}

func (t *fakeTx) LockUser(_ context.Context, userID int64) error {
	t.lock(lockKey{class: lockClassUser, id: userID})
	return nil
}

func (t *fakeTx) LockRoom(_ context.Context, roomID int64) error {
	t.lock(lockKey{class: lockClassRoom, id: roomID})
	return nil
}

func (t *fakeTx) commit() {
	if len(t.staged) == 0 {
		return
	}
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	for _, apply := range t.staged {
		apply()
	}
}

func (t *fakeTx) release() {
	for i := len(t.held) - 1; i >= 0; i-- {
		t.held[i].Unlock()
	}
}

func (t *fakeTx) Bookings() shared.BookingRepository { return &bookingRepo{t} }
func (t *fakeTx) Sessions() shared.SessionRepository { return &sessionRepo{t} }
func (t *fakeTx) Users() shared.UserRepository       { return &userRepo{t} }

type bookingRepo struct{ tx *fakeTx }

func (r *bookingRepo) count(match func(*bookingRow) bool, slot booking.TimeSlot) int64 {
	r.tx.store.mu.RLock()
	defer r.tx.store.mu.RUnlock()
	var n int64
	for _, b := range r.tx.store.bookings {
		if match(b) && b.start.Before(slot.End()) && slot.Start().Before(b.end) {
			n++
		}
	}
	return n
}

func (r *bookingRepo) CountRoomOverlaps(_ context.Context, roomID int64, slot booking.TimeSlot) (int64, error) {
	return r.count(func(b *bookingRow) bool { return b.roomID == roomID }, slot), nil
}

func (r *bookingRepo) CountUserOverlaps(_ context.Context, userID int64, slot booking.TimeSlot) (int64, error) {
	return r.count(func(b *bookingRow) bool { return b.userID == userID }, slot), nil
}

func (r *bookingRepo) SumUserDuration(_ context.Context, userID int64, window booking.DayWindow) (time.Duration, error) {
	r.tx.store.mu.RLock()
	defer r.tx.store.mu.RUnlock()
	var total time.Duration
	for _, b := range r.tx.store.bookings {
		if b.userID == userID && window.Contains(b.start) {
			total += b.end.Sub(b.start)
		}
	}
	return total, nil
}

func (r *bookingRepo) Create(_ context.Context, b *booking.Booking) (*booking.Booking, error) {
	s := r.tx.store
	s.mu.Lock()
	if _, ok := s.rooms[b.RoomID()]; !ok {
		s.mu.Unlock()
		return nil, infra.NewConstraintErr(infra.KindForeignKeyViolated, infra.ConstraintBookingRoomFK, "booking references a missing room")
	}
	if _, ok := s.users[b.UserID()]; !ok {
		s.mu.Unlock()
		return nil, infra.NewConstraintErr(infra.KindForeignKeyViolated, infra.ConstraintBookingUserFK, "booking references a missing user")
	}
	s.nextBook++
	id := s.nextBook
	s.mu.Unlock()

	row := &bookingRow{
		id:          id,
		roomID:      b.RoomID(),
		userID:      b.UserID(),
		title:       b.Title().String(),
		description: b.Description().Ptr(),
		start:       b.StartTime(),
		end:         b.EndTime(),
	}
	r.tx.staged = append(r.tx.staged, func() { s.bookings = append(s.bookings, row) })
	return b.Persisted(id, b.CreatedAt()), nil
}

type sessionRepo struct{ tx *fakeTx }

func (r *sessionRepo) Create(_ context.Context, sess *session.Session) error {
	s := r.tx.store
	r.tx.staged = append(r.tx.staged, func() {
		s.sessions[sess.TokenHash()] = sessionRow{userID: sess.UserID(), createdAt: sess.CreatedAt()}
	})
	return nil
}

func (r *sessionRepo) Delete(_ context.Context, tokenHash string) error {
	s := r.tx.store
	r.tx.staged = append(r.tx.staged, func() { delete(s.sessions, tokenHash) })
	return nil
}

func (r *sessionRepo) PurgeCreatedBefore(_ context.Context, before time.Time) (int64, error) {
	s := r.tx.store
	s.mu.RLock()
	var doomed []string
	for hash, row := range s.sessions {
		if !row.createdAt.After(before) {
			doomed = append(doomed, hash)
		}
	}
	s.mu.RUnlock()

	r.tx.staged = append(r.tx.staged, func() {
		for _, hash := range doomed {
			delete(s.sessions, hash)
		}
	})
	return int64(len(doomed)), nil
}

type userRepo struct{ tx *fakeTx }

func (r *userRepo) UpdateLastLogin(_ context.Context, userID int64, at time.Time) error {
	s := r.tx.store
	r.tx.staged = append(r.tx.staged, func() {
		if u, ok := s.users[userID]; ok {
			t := at
			u.lastLogin = &t
		}
	})
	return nil
}

func (r *userRepo) CreateIfAbsent(_ context.Context, u *user.User) (bool, error) {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.username == u.Username().Value() {
			return false, nil
		}
	}
	s.nextUser++
	id := s.nextUser
	row := &userRow{
		id:           id,
		username:     u.Username().Value(),
		displayName:  u.DisplayName(),
		passwordHash: u.PasswordHash(),
		level:        u.Level(),
	}
	r.tx.staged = append(r.tx.staged, func() { s.users[id] = row })
	return true, nil
}
