//go:build unit || e2e

package builder

import (
	"time"

	"mrbs/internal/domain/user"
	sqlc "mrbs/internal/infra/sqlc/generated"
	"mrbs/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type UserBuilder struct {
	ID           int64
	Username     string
	DisplayName  string
	PasswordHash string
	Level        int
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           1,
		Username:     "alice",
		DisplayName:  "Alice",
		PasswordHash: "hashed_password",
		Level:        int(user.LevelUser),
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	username, err := user.NewUsername(u.Username)
	if err != nil {
		return nil, err
	}

	level, err := user.NewLevel(u.Level)
	if err != nil {
		return nil, err
	}

	return user.NewUser(username, u.DisplayName, u.PasswordHash, level), nil
}

func (u *UserBuilder) BuildInfra() sqlc.Users {
	return sqlc.Users{
		ID:           u.ID,
		Username:     user.NormalizeUsername(u.Username),
		DisplayName:  u.DisplayName,
		PasswordHash: u.PasswordHash,
		Level:        int16(u.Level), // #nosec G115 -- levels are 1 or 2
		LastLogin:    pgtype.Timestamptz{},
		CreatedAt:    pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}
}

func (u *UserBuilder) BuildView() *queries.UserView {
	return &queries.UserView{
		ID:          u.ID,
		Username:    user.NormalizeUsername(u.Username),
		DisplayName: u.DisplayName,
		Level:       u.Level,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithID(id int64) *UserBuilder {
	u.ID = id
	return u
}

func (u *UserBuilder) WithUsername(username string) *UserBuilder {
	u.Username = username
	return u
}

func (u *UserBuilder) WithDisplayName(name string) *UserBuilder {
	u.DisplayName = name
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) WithLevel(level int) *UserBuilder {
	u.Level = level
	return u
}

func (u *UserBuilder) AsAdmin() *UserBuilder {
	u.Level = int(user.LevelAdmin)
	return u
}
