package readstore

import (
	"context"
	"time"

	"mrbs/internal/infra"
	sqlc "mrbs/internal/infra/sqlc/generated"
	"mrbs/internal/pkg/pgconv"
	"mrbs/internal/usecase/queries"
)

type SessionReadQueries interface {
	FindActiveSession(ctx context.Context, db sqlc.DBTX, arg sqlc.FindActiveSessionParams) (sqlc.Sessions, error)
}

type SessionReadStore struct {
	queries SessionReadQueries
	db      sqlc.DBTX
}

func NewSessionReadStore(queries SessionReadQueries, db sqlc.DBTX) *SessionReadStore {
	return &SessionReadStore{
		queries: queries,
		db:      db,
	}
}

// FindActive does one indexed lookup whether the token was never issued or
// has expired, so both cases take the same path.
func (r *SessionReadStore) FindActive(ctx context.Context, tokenHash string, since time.Time) (*queries.SessionView, error) {
	row, err := r.queries.FindActiveSession(ctx, r.db, sqlc.FindActiveSessionParams{
		TokenHash: tokenHash,
		CreatedAt: pgconv.TimeToPgtype(since),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("session not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find session", err)
	}

	return &queries.SessionView{
		TokenHash: row.TokenHash,
		UserID:    row.UserID,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}
