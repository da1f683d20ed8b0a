package usecase

import (
	"context"
	"log/slog"

	"mrbs/internal/domain/user"
	"mrbs/internal/infra"
	"mrbs/internal/pkg/errs"
	"mrbs/internal/pkg/password"
	"mrbs/internal/usecase/queries"
	"mrbs/internal/usecase/shared"
)

const DefaultAdminUsername = "mrbs_admin"

var ErrUnknownUsername = errs.NewKind(errs.ErrNotFound, "unknown username")

// CredentialRecord pairs a user with the stored hash. It never leaves the usecase layer.
type CredentialRecord struct {
	User         *queries.UserView
	PasswordHash string
}

type CredentialStore interface {
	// FindByUsername normalizes the username before the lookup.
	FindByUsername(ctx context.Context, username string) (*CredentialRecord, error)
	VerifyPassword(plaintext, hash string) bool
	// BurnVerification costs the same as a VerifyPassword call that fails.
	BurnVerification(plaintext string)
	HashPassword(plaintext string) (string, error)
}

type credentialStoreImpl struct {
	readStore queries.UserReadStore
}

func NewCredentialStore(readStore queries.UserReadStore) CredentialStore {
	return &credentialStoreImpl{readStore: readStore}
}

func (c *credentialStoreImpl) FindByUsername(ctx context.Context, username string) (*CredentialRecord, error) {
	normalized := user.NormalizeUsername(username)
	if normalized == "" {
		return nil, ErrUnknownUsername
	}

	view, hash, err := c.readStore.FindByUsername(ctx, normalized)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUnknownUsername
		}
		return nil, errs.Storage(err, "failed to look up user")
	}

	return &CredentialRecord{User: view, PasswordHash: hash}, nil
}

func (c *credentialStoreImpl) VerifyPassword(plaintext, hash string) bool {
	return password.VerifyPassword(plaintext, hash)
}

func (c *credentialStoreImpl) BurnVerification(plaintext string) {
	password.BurnVerification(plaintext)
}

func (c *credentialStoreImpl) HashPassword(plaintext string) (string, error) {
	return password.HashPassword(plaintext)
}

// AdminSeeder creates the bootstrap administrator on startup.
type AdminSeeder interface {
	EnsureDefaultAdmin(ctx context.Context, plaintext string) (bool, error)
}

type adminSeederImpl struct {
	uow         shared.UnitOfWork
	credentials CredentialStore
}

func NewAdminSeeder(uow shared.UnitOfWork, credentials CredentialStore) AdminSeeder {
	return &adminSeederImpl{
		uow:         uow,
		credentials: credentials,
	}
}

// EnsureDefaultAdmin leaves an existing admin row untouched, including its password.
func (a *adminSeederImpl) EnsureDefaultAdmin(ctx context.Context, plaintext string) (bool, error) {
	if plaintext == "" {
		return false, nil
	}

	username, err := user.NewUsername(DefaultAdminUsername)
	if err != nil {
		return false, err
	}

	hash, err := a.credentials.HashPassword(plaintext)
	if err != nil {
		return false, errs.Wrap(err, "failed to hash admin password")
	}

	admin := user.NewUser(username, "Administrator", hash, user.LevelAdmin)

	var created bool
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var createErr error
		created, createErr = tx.Users().CreateIfAbsent(ctx, admin)
		return createErr
	})
	if err != nil {
		return false, errs.OrStorage(err, "failed to create admin user")
	}

	if created {
		slog.Info("default admin user created", "username", DefaultAdminUsername)
	}
	return created, nil
}
