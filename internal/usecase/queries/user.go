package queries

import (
	"context"

	"mrbs/internal/infra"
	"mrbs/internal/pkg/errs"
)

var ErrUserNotFound = errs.NewKind(errs.ErrNotFound, "user not found")

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID int64) (*UserView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id int64) (*UserView, error)
	// FindByUsername expects a normalized username and also returns the stored hash.
	FindByUsername(ctx context.Context, username string) (*UserView, string, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID int64) (*UserView, error) {
	user, err := q.readStore.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Storage(err, "failed to load user")
	}
	return user, nil
}
