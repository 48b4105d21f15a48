package scheduler

import (
	"testing"
	"time"

	"github.com/ShivamShwaira/Daily-Standup-Slackbot/internal/entities"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBuildSpec(t *testing.T) {
	spec, err := BuildSpec("09:00", "Asia/Tokyo")
	require.NoError(t, err)
	require.Equal(t, "CRON_TZ=Asia/Tokyo 0 9 * * MON-FRI", spec)

	spec, err = BuildSpec("18:45", "Europe/Berlin")
	require.NoError(t, err)
	require.Equal(t, "CRON_TZ=Europe/Berlin 45 18 * * MON-FRI", spec)
}

func TestBuildSpecRejectsBadInput(t *testing.T) {
	tests := []struct {
		name      string
		timeOfDay string
		timezone  string
	}{
		{"not a clock", "morning", "Asia/Tokyo"},
		{"hour out of range", "24:00", "Asia/Tokyo"},
		{"minute out of range", "09:60", "Asia/Tokyo"},
		{"missing minute", "09", "Asia/Tokyo"},
		{"unknown zone", "09:00", "Mars/Olympus"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildSpec(tt.timeOfDay, tt.timezone)
			require.ErrorIs(t, err, entities.ErrInvalidSchedule)
		})
	}
}

func TestSpecFiresAtTenantWallClock(t *testing.T) {
	// Tokyo 09:00 is fixed regardless of the host timezone: from Sunday
	// noon UTC the next workday fire is Monday 09:00 JST, i.e. midnight UTC.
	spec, err := BuildSpec("09:00", "Asia/Tokyo")
	require.NoError(t, err)

	sched, err := cron.ParseStandard(spec)
	require.NoError(t, err)

	from := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) // Sunday
	next := sched.Next(from)
	require.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), next.UTC())
}

func TestSpecSkipsWeekends(t *testing.T) {
	spec, err := BuildSpec("09:00", "Asia/Tokyo")
	require.NoError(t, err)

	sched, err := cron.ParseStandard(spec)
	require.NoError(t, err)

	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	// Friday after the fire time: the next one is Monday, not Saturday.
	from := time.Date(2025, 6, 6, 10, 0, 0, 0, tokyo)
	next := sched.Next(from)
	require.Equal(t, time.Date(2025, 6, 9, 9, 0, 0, 0, tokyo), next)
}

func TestSpecTracksWallClockAcrossDST(t *testing.T) {
	spec, err := BuildSpec("09:00", "America/New_York")
	require.NoError(t, err)

	sched, err := cron.ParseStandard(spec)
	require.NoError(t, err)

	// DST ends Sunday 2025-11-02; Monday's 09:00 is EST (UTC-5), so the
	// fire moves to 14:00 UTC instead of staying at the EDT offset.
	from := time.Date(2025, 11, 1, 12, 0, 0, 0, time.UTC) // Saturday
	next := sched.Next(from)
	require.Equal(t, time.Date(2025, 11, 3, 14, 0, 0, 0, time.UTC), next.UTC())
}

func TestRegistryRegisterReplaceRemove(t *testing.T) {
	reg := New(zap.NewNop().Sugar(), func(string) {})

	require.NoError(t, reg.Register("ws1", "09:00", "Asia/Tokyo"))
	require.Equal(t, 1, reg.Len())

	// Re-registering replaces, never duplicates.
	require.NoError(t, reg.Register("ws1", "10:00", "Europe/Berlin"))
	require.Equal(t, 1, reg.Len())

	require.NoError(t, reg.Register("ws2", "09:00", "America/New_York"))
	require.Equal(t, 2, reg.Len())

	reg.Remove("ws1")
	require.Equal(t, 1, reg.Len())

	// Removing an unknown workspace is a no-op.
	reg.Remove("ws1")
	require.Equal(t, 1, reg.Len())
}

func TestRegistryRegisterInvalidLeavesOthersIntact(t *testing.T) {
	reg := New(zap.NewNop().Sugar(), func(string) {})

	require.NoError(t, reg.Register("ws1", "09:00", "Asia/Tokyo"))
	require.ErrorIs(t, reg.Register("ws2", "9am", "Asia/Tokyo"), entities.ErrInvalidSchedule)
	require.ErrorIs(t, reg.Register("ws3", "09:00", "Not/AZone"), entities.ErrInvalidSchedule)
	require.Equal(t, 1, reg.Len())
}
