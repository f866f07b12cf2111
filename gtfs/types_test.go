package gtfs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVTimeUnmarshal(t *testing.T) {
	tests := []struct {
		csv     string
		minutes float64
		valid   bool
	}{
		{"08:30:00", 510, true},
		{"00:00:00", 0, true},
		{"08:30:30", 510.5, true},
		{"25:15:00", 1515, true},
		{"08:30", 0, false},
		{"08:60:00", 0, false},
		{"08:30:99", 0, false},
		{"eight:30:00", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.csv, func(t *testing.T) {
			var ct CSVTime
			err := ct.UnmarshalCSV(tt.csv)
			if !tt.valid {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.minutes, ct.Minutes())
		})
	}
}

func TestCSVBoolUnmarshal(t *testing.T) {
	var b CSVBool

	require.NoError(t, b.UnmarshalCSV("1"))
	assert.True(t, bool(b))

	require.NoError(t, b.UnmarshalCSV("0"))
	assert.False(t, bool(b))

	require.NoError(t, b.UnmarshalCSV(""))
	assert.False(t, bool(b))

	assert.ErrorIs(t, b.UnmarshalCSV("2"), ErrInvalidBoolField)
}

func TestCSVDateUnmarshal(t *testing.T) {
	var d CSVDate
	require.NoError(t, d.UnmarshalCSV("20241216"))
	assert.Equal(t, time.Date(2024, time.December, 16, 0, 0, 0, 0, time.UTC), d.Time)

	assert.Error(t, d.UnmarshalCSV("2024-12-16"))
}
