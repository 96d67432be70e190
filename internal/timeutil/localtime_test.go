package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalToUTC(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want time.Time
	}{
		{"winter is GMT", "2025-01-15T19:00", time.Date(2025, 1, 15, 19, 0, 0, 0, time.UTC)},
		{"summer is BST", "2025-07-04T19:00", time.Date(2025, 7, 4, 18, 0, 0, 0, time.UTC)},
		{"date only is local midnight", "2025-07-04", time.Date(2025, 7, 3, 23, 0, 0, 0, time.UTC)},
		{"seconds and space separator", "2025-07-04 19:00:30", time.Date(2025, 7, 4, 18, 0, 30, 0, time.UTC)},
		{"spring gap uses pre-jump offset", "2025-03-30T01:30", time.Date(2025, 3, 30, 1, 30, 0, 0, time.UTC)},
		{"after spring jump", "2025-03-30T02:30", time.Date(2025, 3, 30, 1, 30, 0, 0, time.UTC)},
		{"autumn overlap picks earlier instant", "2025-10-26T01:30", time.Date(2025, 10, 26, 0, 30, 0, 0, time.UTC)},
		{"after autumn overlap", "2025-10-26T02:30", time.Date(2025, 10, 26, 2, 30, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LocalToUTC(tt.in)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s got %s", tt.want, got)
		})
	}
}

func TestLocalToUTC_Invalid(t *testing.T) {
	for _, in := range []string{"", "tomorrow", "2025-13-01", "2025-07-04T25:00"} {
		_, err := LocalToUTC(in)
		assert.Error(t, err, in)
	}
}

func TestUTCToLocal_RoundTrip(t *testing.T) {
	for _, in := range []string{"2025-01-15T19:00", "2025-07-04T19:00", "2025-10-26T02:30", "2025-03-30T03:00"} {
		utc, err := LocalToUTC(in)
		require.NoError(t, err)
		assert.Equal(t, in, UTCToLocal(utc))
	}
}

func TestParseInstant(t *testing.T) {
	got, err := ParseInstant("2025-07-04T18:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 7, 4, 18, 0, 0, 0, time.UTC), got)

	got, err = ParseInstant("2025-07-04T19:00:00+01:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 7, 4, 18, 0, 0, 0, time.UTC), got)

	got, err = ParseInstant(" 2025-07-04 ")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 7, 3, 23, 0, 0, 0, time.UTC), got)

	_, err = ParseInstant("07/04/2025")
	require.Error(t, err)
}
