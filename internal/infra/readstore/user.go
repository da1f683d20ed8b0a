package readstore

import (
	"context"

	"mrbs/internal/infra"
	sqlc "mrbs/internal/infra/sqlc/generated"
	"mrbs/internal/pkg/pgconv"
	"mrbs/internal/usecase/queries"
)

type UserReadQueries interface {
	FindUserByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.FindUserByIDRow, error)
	FindUserByUsername(ctx context.Context, db sqlc.DBTX, username string) (sqlc.Users, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries UserReadQueries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id int64) (*queries.UserView, error) {
	row, err := r.queries.FindUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return toUserViewFromFindByIDRow(row), nil
}

func (r *UserReadStore) FindByUsername(ctx context.Context, username string) (*queries.UserView, string, error) {
	row, err := r.queries.FindUserByUsername(ctx, r.db, username)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by username", err)
	}

	return toUserViewFromUsers(row), row.PasswordHash, nil
}

func toUserViewFromUsers(row sqlc.Users) *queries.UserView {
	return &queries.UserView{
		ID:          row.ID,
		Username:    row.Username,
		DisplayName: row.DisplayName,
		Level:       int(row.Level),
		LastLogin:   pgconv.TimePtrFromPgtype(row.LastLogin),
	}
}

func toUserViewFromFindByIDRow(row sqlc.FindUserByIDRow) *queries.UserView {
	return &queries.UserView{
		ID:          row.ID,
		Username:    row.Username,
		DisplayName: row.DisplayName,
		Level:       int(row.Level),
		LastLogin:   pgconv.TimePtrFromPgtype(row.LastLogin),
	}
}
