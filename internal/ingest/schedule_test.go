package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIntervalMorning(t *testing.T) {
	start, end, ok := ParseInterval("08:30 - 10:00 AM")

	require.True(t, ok)
	assert.Equal(t, "08:30", start)
	assert.Equal(t, "10:00", end)
}

func TestParseIntervalAfternoonMeridiemAppliesToBoth(t *testing.T) {
	start, end, ok := ParseInterval("1:00 - 2:30 PM")

	require.True(t, ok)
	assert.Equal(t, "13:00", start)
	assert.Equal(t, "14:30", end)
}

func TestParseIntervalNoonAndMidnight(t *testing.T) {
	start, end, ok := ParseInterval("12:00 - 1:30 PM")
	require.True(t, ok)
	assert.Equal(t, "12:00", start)
	assert.Equal(t, "13:30", end)

	start, end, ok = ParseInterval("12:15 - 12:45 AM")
	require.True(t, ok)
	assert.Equal(t, "00:15", start)
	assert.Equal(t, "00:45", end)
}

func TestParseIntervalMalformed(t *testing.T) {
	for _, raw := range []string{"", "08:30", "08:30 - 10:00 - 11:00", "morning - late", "8 - 9 AM"} {
		_, _, ok := ParseInterval(raw)
		assert.False(t, ok, raw)
	}
}

func TestExtractScheduleDegradesToNil(t *testing.T) {
	assert.Nil(t, extractSchedule("", "08:30 - 10:00 AM"))
	assert.Nil(t, extractSchedule("Monday", ""))
	assert.Nil(t, extractSchedule("Monday", "later"))

	sched := extractSchedule("Monday", "08:30 - 10:00 AM")
	require.NotNil(t, sched)
	assert.Equal(t, "Monday", sched.Day)
	assert.Equal(t, "08:30 - 10:00 AM", sched.Raw)
	assert.Equal(t, "08:30", sched.Start)
	assert.Equal(t, "10:00", sched.End)
}
