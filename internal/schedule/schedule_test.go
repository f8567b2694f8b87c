package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// One window per weekday, Monday first.
var testWindows = [7]Window{
	{Open: "0700", Close: "2200"},
	{Open: "0700", Close: "2200"},
	{Open: "0700", Close: "2200"},
	{Open: "0700", Close: "2200"},
	{Open: "0700", Close: "1700"},
	{Open: "0900", Close: "1700"},
	{Open: "1200", Close: "2000"},
}

func TestWeekly_Contains(t *testing.T) {
	weekly, err := New(testWindows, 10*time.Minute)
	require.NoError(t, err)

	// 2012-01-02 was a Monday, 2012-01-01 a Sunday.
	testCases := []struct {
		name string
		at   time.Time
		keep bool
	}{
		{
			name: "Mid-window",
			at:   time.Date(2012, 1, 2, 12, 0, 0, 0, time.UTC),
			keep: true,
		},
		{
			name: "Exactly at widened open",
			at:   time.Date(2012, 1, 2, 6, 50, 0, 0, time.UTC),
			keep: true,
		},
		{
			name: "One minute before widened open",
			at:   time.Date(2012, 1, 2, 6, 49, 0, 0, time.UTC),
			keep: false,
		},
		{
			name: "Exactly at widened close",
			at:   time.Date(2012, 1, 2, 22, 10, 0, 0, time.UTC),
			keep: true,
		},
		{
			name: "One minute after widened close",
			at:   time.Date(2012, 1, 2, 22, 11, 0, 0, time.UTC),
			keep: false,
		},
		{
			name: "Overnight maintenance reboot",
			at:   time.Date(2012, 1, 2, 3, 0, 0, 0, time.UTC),
			keep: false,
		},
		{
			name: "Sunday uses the Sunday window",
			at:   time.Date(2012, 1, 1, 11, 50, 0, 0, time.UTC),
			keep: true,
		},
		{
			name: "Sunday morning before the late opening",
			at:   time.Date(2012, 1, 1, 8, 0, 0, 0, time.UTC),
			keep: false,
		},
		{
			name: "Friday closes earlier than Monday",
			at:   time.Date(2012, 1, 6, 18, 0, 0, 0, time.UTC),
			keep: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.keep, weekly.Contains(tc.at))
		})
	}
}

func TestWeekly_ZeroTolerance(t *testing.T) {
	weekly, err := New(testWindows, 0)
	require.NoError(t, err)

	assert.True(t, weekly.Contains(time.Date(2012, 1, 2, 7, 0, 0, 0, time.UTC)))
	assert.False(t, weekly.Contains(time.Date(2012, 1, 2, 6, 59, 0, 0, time.UTC)))
}

func TestNew_InvalidClock(t *testing.T) {
	bad := testWindows
	bad[3].Close = "25cd"

	_, err := New(bad, 10*time.Minute)
	assert.Error(t, err)
}
