package user

import (
	"errors"
	"strings"
)

var (
	ErrInvalidUsername = errors.New("invalid username")
	ErrInvalidLevel    = errors.New("invalid user level")
	ErrEmptyPassword   = errors.New("password cannot be empty")
)

const MaxUsernameLength = 64

// Username is stored and looked up lower-cased. NewUsername is the only place
// that normalization happens.
type Username struct {
	value string
}

func NewUsername(s string) (Username, error) {
	s = NormalizeUsername(s)
	if s == "" || len(s) > MaxUsernameLength {
		return Username{}, ErrInvalidUsername
	}
	return Username{value: s}, nil
}

func NormalizeUsername(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func (u Username) Value() string {
	return u.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if s == "" {
		return Password{}, ErrEmptyPassword
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

// Credentials is what a login request carries once parsed.
type Credentials struct {
	username Username
	password Password
}

func NewCredentials(usernameStr, passwordStr string) (Credentials, error) {
	username, err := NewUsername(usernameStr)
	if err != nil {
		return Credentials{}, err
	}

	password, err := NewPassword(passwordStr)
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{username: username, password: password}, nil
}

func (c Credentials) Username() Username { return c.username }
func (c Credentials) Password() Password { return c.password }
