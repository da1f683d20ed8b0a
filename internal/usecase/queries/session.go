package queries

import (
	"context"
	"time"
)

type SessionReadStore interface {
	// FindActive matches a token hash created strictly after since.
	FindActive(ctx context.Context, tokenHash string, since time.Time) (*SessionView, error)
}
