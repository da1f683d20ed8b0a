//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"mrbs/internal/domain/booking"
	"mrbs/internal/infra"
	sqlc "mrbs/internal/infra/sqlc/generated"
	"mrbs/tests/common/builder"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBookingWriteQueries struct {
	mock.Mock
}

func (m *MockBookingWriteQueries) CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (sqlc.CreateBookingRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.CreateBookingRow), args.Error(1)
}

func (m *MockBookingWriteQueries) CountRoomOverlaps(ctx context.Context, db sqlc.DBTX, arg sqlc.CountRoomOverlapsParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingWriteQueries) CountUserOverlaps(ctx context.Context, db sqlc.DBTX, arg sqlc.CountUserOverlapsParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingWriteQueries) SumUserBookedSeconds(ctx context.Context, db sqlc.DBTX, arg sqlc.SumUserBookedSecondsParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func TestBookingRepository_Create(t *testing.T) {
	b, err := builder.NewBookingBuilder().WithDescription("daily").BuildDomain()
	require.NoError(t, err)
	createdAt := time.Date(2024, time.March, 9, 12, 0, 0, 0, time.UTC)

	t.Run("採番されたIDを返す", func(t *testing.T) {
		mockQueries := new(MockBookingWriteQueries)
		mockQueries.On("CreateBooking", mock.Anything, mock.Anything, mock.MatchedBy(func(arg sqlc.CreateBookingParams) bool {
			return arg.RoomID == 1 && arg.UserID == 1 && arg.Title == "Standup" &&
				arg.Description.Valid && arg.Description.String == "daily" &&
				arg.StartTime.Time.Equal(b.StartTime()) && arg.EndTime.Time.Equal(b.EndTime())
		})).Return(sqlc.CreateBookingRow{ID: 42, CreatedAt: pgtype.Timestamptz{Time: createdAt, Valid: true}}, nil)

		saved, err := NewBookingRepository(mockQueries, nil).Create(context.Background(), b)
		require.NoError(t, err)
		assert.Equal(t, int64(42), saved.ID())
		assert.True(t, saved.CreatedAt().Equal(createdAt))
		assert.Equal(t, int64(1), b.ID(), "the input booking is not mutated")
		mockQueries.AssertExpectations(t)
	})

	t.Run("外部キー違反は制約名を保持する", func(t *testing.T) {
		for _, constraint := range []string{infra.ConstraintBookingRoomFK, infra.ConstraintBookingUserFK} {
			mockQueries := new(MockBookingWriteQueries)
			mockQueries.On("CreateBooking", mock.Anything, mock.Anything, mock.Anything).
				Return(sqlc.CreateBookingRow{}, &pgconn.PgError{Code: "23503", ConstraintName: constraint})

			saved, err := NewBookingRepository(mockQueries, nil).Create(context.Background(), b)
			assert.Nil(t, saved)
			assert.True(t, infra.IsKind(err, infra.KindForeignKeyViolated))
			assert.Equal(t, constraint, infra.ViolatedConstraint(err))
		}
	})
}

func TestBookingRepository_Counts(t *testing.T) {
	slot, err := booking.NewTimeSlot(time.Date(2024, time.March, 10, 10, 0, 0, 0, builder.SGT), 2)
	require.NoError(t, err)

	tests := []struct {
		name      string
		mockCount int64
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{name: "重複なし", mockCount: 0},
		{name: "重複あり", mockCount: 2},
		{name: "DB障害", mockError: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run("room/"+tt.name, func(t *testing.T) {
			mockQueries := new(MockBookingWriteQueries)
			mockQueries.On("CountRoomOverlaps", mock.Anything, mock.Anything, sqlc.CountRoomOverlapsParams{
				RoomID:    5,
				EndTime:   pgtype.Timestamptz{Time: slot.End(), Valid: true},
				StartTime: pgtype.Timestamptz{Time: slot.Start(), Valid: true},
			}).Return(tt.mockCount, tt.mockError)

			n, err := NewBookingRepository(mockQueries, nil).CountRoomOverlaps(context.Background(), 5, slot)
			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(err, tt.wantKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.mockCount, n)
			mockQueries.AssertExpectations(t)
		})

		t.Run("user/"+tt.name, func(t *testing.T) {
			mockQueries := new(MockBookingWriteQueries)
			mockQueries.On("CountUserOverlaps", mock.Anything, mock.Anything, sqlc.CountUserOverlapsParams{
				UserID:    7,
				EndTime:   pgtype.Timestamptz{Time: slot.End(), Valid: true},
				StartTime: pgtype.Timestamptz{Time: slot.Start(), Valid: true},
			}).Return(tt.mockCount, tt.mockError)

			n, err := NewBookingRepository(mockQueries, nil).CountUserOverlaps(context.Background(), 7, slot)
			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(err, tt.wantKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.mockCount, n)
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestBookingRepository_SumUserDuration(t *testing.T) {
	window := booking.DayWindow{
		From: time.Date(2024, time.March, 10, 8, 0, 0, 0, builder.SGT),
		To:   time.Date(2024, time.March, 11, 2, 0, 0, 0, builder.SGT),
	}

	mockQueries := new(MockBookingWriteQueries)
	mockQueries.On("SumUserBookedSeconds", mock.Anything, mock.Anything, sqlc.SumUserBookedSecondsParams{
		UserID:     3,
		WindowFrom: pgtype.Timestamptz{Time: window.From, Valid: true},
		WindowTo:   pgtype.Timestamptz{Time: window.To, Valid: true},
	}).Return(int64(5400), nil)

	d, err := NewBookingRepository(mockQueries, nil).SumUserDuration(context.Background(), 3, window)
	require.NoError(t, err)
	assert.Equal(t, 90*time.Minute, d)
	mockQueries.AssertExpectations(t)
}
