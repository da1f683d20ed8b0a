package repository

import (
	"context"

	"mrbs/internal/infra"
	sqlc "mrbs/internal/infra/sqlc/generated"
)

// Advisory lock classes. The key space of each class is independent.
const (
	lockClassRoom int32 = 1
	lockClassUser int32 = 2
)

type LockQueries interface {
	AcquireAdvisoryXactLock(ctx context.Context, db sqlc.DBTX, arg sqlc.AcquireAdvisoryXactLockParams) error
}

// AdvisoryLocker takes transaction-scoped PostgreSQL advisory locks. Ids are
// folded into the 32-bit key, so distinct ids may share a lock but the same id
// always maps to the same one.
type AdvisoryLocker struct {
	queries LockQueries
	db      sqlc.DBTX
}

func NewAdvisoryLocker(queries LockQueries, db sqlc.DBTX) *AdvisoryLocker {
	return &AdvisoryLocker{
		queries: queries,
		db:      db,
	}
}

func (l *AdvisoryLocker) LockRoom(ctx context.Context, roomID int64) error {
	return l.lock(ctx, lockClassRoom, roomID)
}

func (l *AdvisoryLocker) LockUser(ctx context.Context, userID int64) error {
	return l.lock(ctx, lockClassUser, userID)
}

func (l *AdvisoryLocker) lock(ctx context.Context, class int32, id int64) error {
	err := l.queries.AcquireAdvisoryXactLock(ctx, l.db, sqlc.AcquireAdvisoryXactLockParams{
		Class: class,
		Key:   int32(id), // #nosec G115 -- truncation only widens the lock
	})
	if err != nil {
		return infra.WrapRepoErr("failed to acquire advisory lock", err)
	}
	return nil
}
