package user

import "strings"

// User entity. Provisioning lives outside this service except for the
// bootstrap administrator.
type User struct {
	username     Username
	displayName  string
	passwordHash string
	level        Level
}

func NewUser(username Username, displayName, passwordHash string, level Level) *User {
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		displayName = username.Value()
	}
	return &User{
		username:     username,
		displayName:  displayName,
		passwordHash: passwordHash,
		level:        level,
	}
}

func (u *User) Username() Username   { return u.username }
func (u *User) DisplayName() string  { return u.displayName }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Level() Level         { return u.level }
