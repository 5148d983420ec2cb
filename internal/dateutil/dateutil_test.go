package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestKey_ZeroPadded(t *testing.T) {
	d := time.Date(2024, time.May, 5, 13, 45, 0, 0, time.Local)
	require.Equal(t, "2024-05-05", Key(d))
}

func TestMonthRange_FixedUpperBound(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		from  string
		to    string
	}{
		{2024, time.February, "2024-02-01", "2024-02-31"},
		{2024, time.December, "2024-12-01", "2024-12-31"},
		{2025, time.April, "2025-04-01", "2025-04-31"},
	}
	for _, tt := range tests {
		from, to := MonthRange(tt.year, tt.month)
		require.Equal(t, tt.from, from)
		require.Equal(t, tt.to, to)
	}
}

func TestMonthRange_LexicalOrderMatchesChronological(t *testing.T) {
	from, to := MonthRange(2024, time.February)
	require.True(t, from <= "2024-02-15" && "2024-02-15" <= to)
	require.False(t, from <= "2024-03-01" && "2024-03-01" <= to)
	require.False(t, from <= "2024-01-31" && "2024-01-31" <= to)
}

func TestValid(t *testing.T) {
	require.True(t, Valid("2024-05-05"))
	require.False(t, Valid("2024-5-5"))
	require.False(t, Valid("2024-13-01"))
	require.False(t, Valid("2024-02-30"))
	require.False(t, Valid("yesterday"))
	require.False(t, Valid(""))
}

func TestShift(t *testing.T) {
	got, err := Shift("2024-03-01", -1)
	require.NoError(t, err)
	require.Equal(t, "2024-02-29", got) // leap year

	got, err = Shift("2024-12-31", 1)
	require.NoError(t, err)
	require.Equal(t, "2025-01-01", got)

	_, err = Shift("bogus", 1)
	require.Error(t, err)
}

func TestToday_IsValidKey(t *testing.T) {
	require.True(t, Valid(Today()))
}
