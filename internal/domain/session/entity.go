package session

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"time"
)

const tokenBytes = 32

var (
	ErrEmptyToken       = errors.New("session token cannot be empty")
	ErrTokenGeneration  = errors.New("session token generation failed")
	ErrInvalidSessionID = errors.New("invalid session user id")
)

// Token is the opaque bearer credential handed to the client. It is never
// persisted; storage only sees its Hash.
type Token struct {
	value string
}

func GenerateToken() (Token, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return Token{}, ErrTokenGeneration
	}
	return Token{value: base64.RawURLEncoding.EncodeToString(buf)}, nil
}

func ParseToken(s string) (Token, error) {
	if s == "" {
		return Token{}, ErrEmptyToken
	}
	return Token{value: s}, nil
}

func (t Token) Value() string { return t.value }

func (t Token) Hash() string {
	return HashToken(t.value)
}

// HashToken is the lookup key for a raw token.
func HashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

type Session struct {
	tokenHash string
	userID    int64
	createdAt time.Time
}

func NewSession(token Token, userID int64, now time.Time) (*Session, error) {
	if userID <= 0 {
		return nil, ErrInvalidSessionID
	}
	return &Session{tokenHash: token.Hash(), userID: userID, createdAt: now}, nil
}

func (s *Session) TokenHash() string    { return s.tokenHash }
func (s *Session) UserID() int64        { return s.userID }
func (s *Session) CreatedAt() time.Time { return s.createdAt }

func (s *Session) ExpiresAt(lifetime time.Duration) time.Time {
	return s.createdAt.Add(lifetime)
}

func (s *Session) IsActive(now time.Time, lifetime time.Duration) bool {
	return now.Before(s.ExpiresAt(lifetime))
}

// ActiveSince is the oldest creation time still considered active at now.
func ActiveSince(now time.Time, lifetime time.Duration) time.Time {
	return now.Add(-lifetime)
}
