package repository

import (
	"context"
	"time"

	"mrbs/internal/domain/user"
	"mrbs/internal/infra"
	"mrbs/internal/infra/repository/converter"
	sqlc "mrbs/internal/infra/sqlc/generated"
	"mrbs/internal/pkg/pgconv"
)

type UserWriteQueries interface {
	UpdateUserLastLogin(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserLastLoginParams) error
	CreateUserIfAbsent(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserIfAbsentParams) (int64, error)
}

type UserRepository struct {
	queries UserWriteQueries
	db      sqlc.DBTX
}

func NewUserRepository(queries UserWriteQueries, db sqlc.DBTX) *UserRepository {
	return &UserRepository{
		queries: queries,
		db:      db,
	}
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID int64, at time.Time) error {
	err := r.queries.UpdateUserLastLogin(ctx, r.db, sqlc.UpdateUserLastLoginParams{
		ID:        userID,
		LastLogin: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	return nil
}

func (r *UserRepository) CreateIfAbsent(ctx context.Context, u *user.User) (bool, error) {
	n, err := r.queries.CreateUserIfAbsent(ctx, r.db, converter.UserToCreateParams(u))
	if err != nil {
		return false, infra.WrapRepoErr("failed to create user", err)
	}
	return n > 0, nil
}
