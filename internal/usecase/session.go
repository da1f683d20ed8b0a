package usecase

import (
	"context"
	"time"

	"mrbs/internal/domain/session"
	"mrbs/internal/infra"
	"mrbs/internal/pkg/clock"
	"mrbs/internal/pkg/errs"
	"mrbs/internal/usecase/queries"
	"mrbs/internal/usecase/shared"
)

// ErrInvalidSession covers unknown, expired and revoked sessions alike.
var ErrInvalidSession = errs.NewKind(errs.ErrAuthentication, "invalid session")

type SessionManager interface {
	CreateSession(ctx context.Context, userID int64) (string, error)
	Resolve(ctx context.Context, sessionID string) (int64, error)
	// Revoke is idempotent.
	Revoke(ctx context.Context, sessionID string) error
	PurgeExpired(ctx context.Context) (int64, error)
}

type sessionManagerImpl struct {
	uow       shared.UnitOfWork
	readStore queries.SessionReadStore
	lifetime  time.Duration
	clock     clock.Clock
}

func NewSessionManager(uow shared.UnitOfWork, readStore queries.SessionReadStore, lifetime time.Duration, clock clock.Clock) SessionManager {
	return &sessionManagerImpl{
		uow:       uow,
		readStore: readStore,
		lifetime:  lifetime,
		clock:     clock,
	}
}

func (m *sessionManagerImpl) CreateSession(ctx context.Context, userID int64) (string, error) {
	token, err := session.GenerateToken()
	if err != nil {
		return "", errs.Wrap(err, "failed to create session")
	}

	s, err := session.NewSession(token, userID, m.clock.Now())
	if err != nil {
		return "", errs.Validation(err.Error())
	}

	err = m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Sessions().Create(ctx, s)
	})
	if err != nil {
		return "", errs.OrStorage(err, "failed to store session")
	}

	return token.Value(), nil
}

func (m *sessionManagerImpl) Resolve(ctx context.Context, sessionID string) (int64, error) {
	token, err := session.ParseToken(sessionID)
	if err != nil {
		return 0, ErrInvalidSession
	}

	since := session.ActiveSince(m.clock.Now(), m.lifetime)
	view, err := m.readStore.FindActive(ctx, token.Hash(), since)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return 0, ErrInvalidSession
		}
		return 0, errs.Storage(err, "failed to resolve session")
	}

	return view.UserID, nil
}

func (m *sessionManagerImpl) Revoke(ctx context.Context, sessionID string) error {
	token, err := session.ParseToken(sessionID)
	if err != nil {
		return nil
	}

	err = m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Sessions().Delete(ctx, token.Hash())
	})
	if err != nil {
		return errs.OrStorage(err, "failed to revoke session")
	}
	return nil
}

func (m *sessionManagerImpl) PurgeExpired(ctx context.Context) (int64, error) {
	before := session.ActiveSince(m.clock.Now(), m.lifetime)

	var purged int64
	err := m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var purgeErr error
		purged, purgeErr = tx.Sessions().PurgeCreatedBefore(ctx, before)
		return purgeErr
	})
	if err != nil {
		return 0, errs.OrStorage(err, "failed to purge sessions")
	}
	return purged, nil
}
