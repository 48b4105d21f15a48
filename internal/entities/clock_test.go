package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in     string
		hour   int
		minute int
		ok     bool
	}{
		{"09:00", 9, 0, true},
		{"00:00", 0, 0, true},
		{"23:59", 23, 59, true},
		{"24:00", 0, 0, false},
		{"12:60", 0, 0, false},
		{"-1:30", 0, 0, false},
		{"9", 0, 0, false},
		{"9:0:0", 0, 0, false},
		{"ab:cd", 0, 0, false},
		{"", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			hour, minute, err := ParseClock(tt.in)
			if !tt.ok {
				require.ErrorIs(t, err, ErrInvalidSchedule)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.hour, hour)
			require.Equal(t, tt.minute, minute)
		})
	}
}

func TestValidateTimezone(t *testing.T) {
	loc, err := ValidateTimezone("Asia/Tokyo")
	require.NoError(t, err)
	require.Equal(t, "Asia/Tokyo", loc.String())

	_, err = ValidateTimezone("Not/AZone")
	require.ErrorIs(t, err, ErrInvalidSchedule)
}

func TestDateOnly(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	// 23:30 local truncates to that local day, not the UTC day.
	in := time.Date(2025, 6, 2, 23, 30, 0, 0, tokyo)
	require.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), DateOnly(in))

	in = time.Date(2025, 6, 2, 0, 15, 0, 0, time.UTC)
	require.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), DateOnly(in))
}
