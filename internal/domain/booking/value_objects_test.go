//go:build unit

package booking_test

import (
	"testing"
	"time"

	"servemart/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		d, err := booking.ParseDate("2026-09-15")
		require.NoError(t, err)
		assert.Equal(t, "2026-09-15", d.String())
	})

	t.Run("invalid inputs", func(t *testing.T) {
		for _, in := range []string{"", "15-09-2026", "2026/09/15", "2026-13-01", "tomorrow"} {
			_, err := booking.ParseDate(in)
			assert.Error(t, err, "input %q", in)
		}
	})
}

func TestDateComparisons(t *testing.T) {
	base := booking.NewDate(2026, time.September, 1)

	assert.True(t, base.Before(base.AddDays(1)))
	assert.True(t, base.AddDays(1).After(base))
	assert.True(t, base.Equal(booking.NewDate(2026, time.September, 1)))
	assert.False(t, base.Before(base))
	assert.False(t, base.After(base))

	t.Run("AddDays crosses month boundary", func(t *testing.T) {
		assert.Equal(t, "2026-10-01", booking.NewDate(2026, time.September, 30).AddDays(1).String())
	})

	t.Run("DateOf drops the time component", func(t *testing.T) {
		late := time.Date(2026, time.September, 1, 23, 59, 59, 0, time.UTC)
		assert.True(t, booking.DateOf(late).Equal(base))
	})
}

func TestParseTimeOfDay(t *testing.T) {
	t.Run("accepted layouts", func(t *testing.T) {
		testCases := []struct {
			in   string
			want string
		}{
			{in: "09:30", want: "09:30:00"},
			{in: "09:30:15", want: "09:30:15"},
			{in: "00:00", want: "00:00:00"},
			{in: "23:59", want: "23:59:00"},
		}

		for _, tc := range testCases {
			got, err := booking.ParseTimeOfDay(tc.in)
			require.NoError(t, err, "input %q", tc.in)
			assert.Equal(t, tc.want, got.String())
		}
	})

	t.Run("invalid inputs", func(t *testing.T) {
		for _, in := range []string{"", "25:00", "12:60", "noon", "9:30am"} {
			_, err := booking.ParseTimeOfDay(in)
			assert.Error(t, err, "input %q", in)
		}
	})
}

func TestNewTimeOfDay(t *testing.T) {
	t.Run("range validation", func(t *testing.T) {
		_, err := booking.NewTimeOfDay(24, 0, 0)
		assert.Error(t, err)
		_, err = booking.NewTimeOfDay(-1, 0, 0)
		assert.Error(t, err)
		_, err = booking.NewTimeOfDay(12, 60, 0)
		assert.Error(t, err)
		_, err = booking.NewTimeOfDay(12, 0, 60)
		assert.Error(t, err)

		got, err := booking.NewTimeOfDay(23, 59, 59)
		require.NoError(t, err)
		assert.Equal(t, 23, got.Hour())
		assert.Equal(t, 59, got.Minute())
		assert.Equal(t, 59, got.Second())
	})

	t.Run("ordering", func(t *testing.T) {
		morning, _ := booking.NewTimeOfDay(9, 0, 0)
		evening, _ := booking.NewTimeOfDay(18, 0, 0)

		assert.True(t, morning.Before(evening))
		assert.False(t, evening.Before(morning))
		assert.False(t, morning.Before(morning))
	})
}
