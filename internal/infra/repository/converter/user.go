package converter

import (
	"mrbs/internal/domain/user"
	sqlc "mrbs/internal/infra/sqlc/generated"
)

func UserToCreateParams(u *user.User) sqlc.CreateUserIfAbsentParams {
	return sqlc.CreateUserIfAbsentParams{
		Username:     u.Username().Value(),
		DisplayName:  u.DisplayName(),
		PasswordHash: u.PasswordHash(),
		Level:        int16(u.Level()), // #nosec G115 -- level is 1 or 2
	}
}
