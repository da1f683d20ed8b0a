package repository

import (
	"context"
	"time"

	"mrbs/internal/domain/session"
	"mrbs/internal/infra"
	sqlc "mrbs/internal/infra/sqlc/generated"
	"mrbs/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type SessionWriteQueries interface {
	CreateSession(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateSessionParams) error
	DeleteSession(ctx context.Context, db sqlc.DBTX, tokenHash string) error
	DeleteSessionsCreatedBefore(ctx context.Context, db sqlc.DBTX, createdAt pgtype.Timestamptz) (int64, error)
}

type SessionRepository struct {
	queries SessionWriteQueries
	db      sqlc.DBTX
}

func NewSessionRepository(queries SessionWriteQueries, db sqlc.DBTX) *SessionRepository {
	return &SessionRepository{
		queries: queries,
		db:      db,
	}
}

func (r *SessionRepository) Create(ctx context.Context, s *session.Session) error {
	err := r.queries.CreateSession(ctx, r.db, sqlc.CreateSessionParams{
		TokenHash: s.TokenHash(),
		UserID:    s.UserID(),
		CreatedAt: pgconv.TimeToPgtype(s.CreatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create session", err)
	}
	return nil
}

// Delete succeeds when no row matches.
func (r *SessionRepository) Delete(ctx context.Context, tokenHash string) error {
	if err := r.queries.DeleteSession(ctx, r.db, tokenHash); err != nil {
		return infra.WrapRepoErr("failed to delete session", err)
	}
	return nil
}

// PurgeCreatedBefore removes sessions created at or before the cutoff.
func (r *SessionRepository) PurgeCreatedBefore(ctx context.Context, before time.Time) (int64, error) {
	n, err := r.queries.DeleteSessionsCreatedBefore(ctx, r.db, pgconv.TimeToPgtype(before))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to purge sessions", err)
	}
	return n, nil
}
