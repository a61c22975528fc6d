package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestParseAndFormatDate(t *testing.T) {
	d, err := parseDate("2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-10", formatDate(d))

	for _, invalid := range []string{"", "10-03-2025", "2025-3-1", "2025-03-10T00:00:00Z", "yesterday"} {
		_, err := parseDate(invalid)
		assert.Error(t, err, "expected %q to be rejected", invalid)
	}
}

func TestParseAndFormatTimeOfDay(t *testing.T) {
	tests := []struct {
		in   string
		secs int
	}{
		{"00:00:00", 0},
		{"06:20:00", 22800},
		{"22:30:00", 81000},
		{"23:59:59", 86399},
	}
	for _, tt := range tests {
		v, err := parseTimeOfDay(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.secs, int(time.Duration(v)/time.Second))
		assert.Equal(t, tt.in, formatTimeOfDay(v))
	}

	for _, invalid := range []string{"", "7:00", "24:00:00", "22:61:00", "10pm"} {
		_, err := parseTimeOfDay(invalid)
		assert.Error(t, err, "expected %q to be rejected", invalid)
	}
}

func TestFormatTimeOfDayPadsComponents(t *testing.T) {
	v := datatypes.NewTime(6, 5, 4, 0)
	assert.Equal(t, "06:05:04", formatTimeOfDay(v))
}
