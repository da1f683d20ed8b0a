//go:build unit

package repository

import (
	"context"
	"testing"

	"mrbs/internal/infra"
	sqlc "mrbs/internal/infra/sqlc/generated"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockLockQueries struct {
	mock.Mock
}

func (m *MockLockQueries) AcquireAdvisoryXactLock(ctx context.Context, db sqlc.DBTX, arg sqlc.AcquireAdvisoryXactLockParams) error {
	return m.Called(ctx, db, arg).Error(0)
}

func TestAdvisoryLocker(t *testing.T) {
	t.Run("部屋とユーザーは別のロッククラス", func(t *testing.T) {
		mockQueries := new(MockLockQueries)
		mockQueries.On("AcquireAdvisoryXactLock", mock.Anything, mock.Anything, sqlc.AcquireAdvisoryXactLockParams{Class: 2, Key: 7}).Return(nil).Once()
		mockQueries.On("AcquireAdvisoryXactLock", mock.Anything, mock.Anything, sqlc.AcquireAdvisoryXactLockParams{Class: 1, Key: 7}).Return(nil).Once()

		locker := NewAdvisoryLocker(mockQueries, nil)
		require.NoError(t, locker.LockUser(context.Background(), 7))
		require.NoError(t, locker.LockRoom(context.Background(), 7))
		mockQueries.AssertExpectations(t)
	})

	t.Run("ロック待ちタイムアウト", func(t *testing.T) {
		mockQueries := new(MockLockQueries)
		mockQueries.On("AcquireAdvisoryXactLock", mock.Anything, mock.Anything, mock.Anything).Return(&pgconn.PgError{Code: "55P03"})

		err := NewAdvisoryLocker(mockQueries, nil).LockRoom(context.Background(), 1)
		assert.True(t, infra.IsKind(err, infra.KindTimeout))
	})
}
