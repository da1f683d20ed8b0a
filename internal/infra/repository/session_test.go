//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"mrbs/internal/domain/session"
	"mrbs/internal/infra"
	sqlc "mrbs/internal/infra/sqlc/generated"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSessionWriteQueries struct {
	mock.Mock
}

func (m *MockSessionWriteQueries) CreateSession(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateSessionParams) error {
	return m.Called(ctx, db, arg).Error(0)
}

func (m *MockSessionWriteQueries) DeleteSession(ctx context.Context, db sqlc.DBTX, tokenHash string) error {
	return m.Called(ctx, db, tokenHash).Error(0)
}

func (m *MockSessionWriteQueries) DeleteSessionsCreatedBefore(ctx context.Context, db sqlc.DBTX, createdAt pgtype.Timestamptz) (int64, error) {
	args := m.Called(ctx, db, createdAt)
	return args.Get(0).(int64), args.Error(1)
}

func TestSessionRepository_Create(t *testing.T) {
	now := time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC)
	token, err := session.GenerateToken()
	require.NoError(t, err)
	s, err := session.NewSession(token, 3, now)
	require.NoError(t, err)

	t.Run("ハッシュのみ保存する", func(t *testing.T) {
		mockQueries := new(MockSessionWriteQueries)
		mockQueries.On("CreateSession", mock.Anything, mock.Anything, sqlc.CreateSessionParams{
			TokenHash: token.Hash(),
			UserID:    3,
			CreatedAt: pgtype.Timestamptz{Time: now, Valid: true},
		}).Return(nil)

		require.NoError(t, NewSessionRepository(mockQueries, nil).Create(context.Background(), s))
		mockQueries.AssertExpectations(t)
		assert.NotEqual(t, token.Value(), token.Hash())
	})

	t.Run("ハッシュ衝突", func(t *testing.T) {
		mockQueries := new(MockSessionWriteQueries)
		mockQueries.On("CreateSession", mock.Anything, mock.Anything, mock.Anything).Return(&pgconn.PgError{Code: "23505"})

		err := NewSessionRepository(mockQueries, nil).Create(context.Background(), s)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})
}

func TestSessionRepository_DeleteAndPurge(t *testing.T) {
	cutoff := time.Date(2024, time.March, 3, 9, 0, 0, 0, time.UTC)

	t.Run("削除", func(t *testing.T) {
		mockQueries := new(MockSessionWriteQueries)
		mockQueries.On("DeleteSession", mock.Anything, mock.Anything, "hash").Return(nil)

		require.NoError(t, NewSessionRepository(mockQueries, nil).Delete(context.Background(), "hash"))
		mockQueries.AssertExpectations(t)
	})

	t.Run("削除のDB障害", func(t *testing.T) {
		mockQueries := new(MockSessionWriteQueries)
		mockQueries.On("DeleteSession", mock.Anything, mock.Anything, "hash").Return(assert.AnError)

		err := NewSessionRepository(mockQueries, nil).Delete(context.Background(), "hash")
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("期限切れの一括削除", func(t *testing.T) {
		mockQueries := new(MockSessionWriteQueries)
		mockQueries.On("DeleteSessionsCreatedBefore", mock.Anything, mock.Anything, pgtype.Timestamptz{Time: cutoff, Valid: true}).
			Return(int64(4), nil)

		n, err := NewSessionRepository(mockQueries, nil).PurgeCreatedBefore(context.Background(), cutoff)
		require.NoError(t, err)
		assert.Equal(t, int64(4), n)
	})
}
