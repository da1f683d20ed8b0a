//go:build unit

package booking_test

import (
	"strings"
	"testing"
	"time"

	"mrbs/internal/domain/booking"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var start = time.Date(2024, time.March, 10, 10, 0, 0, 0, time.UTC)

func TestTimeSlot(t *testing.T) {
	t.Run("終了時刻は期間数×30分", func(t *testing.T) {
		for periods := 1; periods <= 36; periods++ {
			slot, err := booking.NewTimeSlot(start, periods)
			require.NoError(t, err)
			assert.Equal(t, time.Duration(periods)*30*time.Minute, slot.End().Sub(slot.Start()))
			assert.Equal(t, slot.Duration(), slot.End().Sub(slot.Start()))
		}
	})

	t.Run("期間数が0以下はエラー", func(t *testing.T) {
		for _, p := range []int{0, -1} {
			_, err := booking.NewTimeSlot(start, p)
			assert.ErrorIs(t, err, booking.ErrInvalidPeriods)
		}
	})

	t.Run("期間数の上限", func(t *testing.T) {
		slot, err := booking.NewTimeSlot(start, booking.MaxPeriods)
		require.NoError(t, err)
		assert.Equal(t, 24*time.Hour, slot.Duration())

		_, err = booking.NewTimeSlot(start, booking.MaxPeriods+1)
		assert.ErrorIs(t, err, booking.ErrTooManyPeriods)
	})

	t.Run("桁あふれする期間数は拒否", func(t *testing.T) {
		// 1<<52 periods of 30m wraps int64 nanoseconds back to a small offset.
		for _, p := range []int{1<<52 + 2, 1<<52 - 2, 1 << 62} {
			_, err := booking.NewTimeSlot(start, p)
			assert.ErrorIs(t, err, booking.ErrTooManyPeriods, "periods=%d", p)
		}
	})

	t.Run("開始時刻なしはエラー", func(t *testing.T) {
		_, err := booking.NewTimeSlot(time.Time{}, 1)
		assert.ErrorIs(t, err, booking.ErrMissingStartTime)
	})

	t.Run("重なり判定", func(t *testing.T) {
		standup, _ := booking.NewTimeSlot(start, 2)
		cases := []struct {
			name    string
			from    time.Time
			periods int
			want    bool
		}{
			{name: "途中から重なる", from: start.Add(30 * time.Minute), periods: 1, want: true},
			{name: "同一区間", from: start, periods: 2, want: true},
			{name: "包含する", from: start.Add(-30 * time.Minute), periods: 4, want: true},
			{name: "直後に隣接", from: start.Add(time.Hour), periods: 1, want: false},
			{name: "直前に隣接", from: start.Add(-30 * time.Minute), periods: 1, want: false},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				other, err := booking.NewTimeSlot(tc.from, tc.periods)
				require.NoError(t, err)
				assert.Equal(t, tc.want, standup.Overlaps(other))
				assert.Equal(t, tc.want, other.Overlaps(standup))
			})
		}
	})

}

func TestTitleAndDescription(t *testing.T) {
	title, err := booking.NewTitle("  Standup  ")
	require.NoError(t, err)
	assert.Equal(t, "Standup", title.String())

	_, err = booking.NewTitle("   ")
	assert.ErrorIs(t, err, booking.ErrEmptyTitle)

	_, err = booking.NewTitle(strings.Repeat("あ", booking.MaxTitleLength+1))
	assert.ErrorIs(t, err, booking.ErrTitleTooLong)

	empty, err := booking.NewDescription(nil)
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())

	blank := "  "
	empty, err = booking.NewDescription(&blank)
	require.NoError(t, err)
	assert.Nil(t, empty.Ptr())

	long := strings.Repeat("x", booking.MaxDescriptionLength+1)
	_, err = booking.NewDescription(&long)
	assert.ErrorIs(t, err, booking.ErrDescriptionTooLong)
}

func TestBooking(t *testing.T) {
	title, _ := booking.NewTitle("Standup")
	desc, _ := booking.NewDescription(nil)
	slot, _ := booking.NewTimeSlot(start, 2)
	now := start.Add(-time.Hour)

	t.Run("基本成功ケース", func(t *testing.T) {
		b, err := booking.NewBooking(1, 2, title, desc, slot, now)
		require.NoError(t, err)

		assert.Zero(t, b.ID())
		assert.Equal(t, int64(1), b.RoomID())
		assert.Equal(t, int64(2), b.UserID())
		assert.True(t, b.EndTime().Equal(start.Add(time.Hour)))

		saved := b.Persisted(42, now)
		assert.Equal(t, int64(42), saved.ID())
		assert.Zero(t, b.ID(), "元のエンティティは変更されない")
	})

	t.Run("ID検証", func(t *testing.T) {
		_, err := booking.NewBooking(0, 2, title, desc, slot, now)
		assert.ErrorIs(t, err, booking.ErrInvalidRoomID)

		_, err = booking.NewBooking(1, 0, title, desc, slot, now)
		assert.ErrorIs(t, err, booking.ErrInvalidUserID)
	})

	t.Run("保存後も入力値を保持する", func(t *testing.T) {
		b, err := booking.NewBooking(1, 2, title, desc, slot, now)
		require.NoError(t, err)
		createdAt := now.Add(time.Second)

		saved := b.Persisted(7, createdAt)

		got := []any{saved.ID(), saved.RoomID(), saved.UserID(), saved.Title().String(), saved.StartTime(), saved.EndTime(), saved.CreatedAt()}
		want := []any{int64(7), b.RoomID(), b.UserID(), b.Title().String(), b.StartTime(), b.EndTime(), createdAt}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Booking mismatch (-want +got):\n%s", diff)
		}
	})
}
