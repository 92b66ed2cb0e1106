package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatProviderDate(t *testing.T) {
	assert.Equal(t, "2024-11-05 15:00", FormatProviderDate(time.Date(2024, 11, 5, 9, 30, 0, 0, time.UTC)))
}

func TestParseProviderDate(t *testing.T) {
	type TestCase struct {
		Name     string
		Value    string
		Expected time.Time
		Err      bool
	}

	want := time.Date(2024, 11, 5, 9, 30, 0, 0, time.UTC)
	testCases := []TestCase{
		{Name: "with seconds", Value: "2024-11-05 15:00:00", Expected: want},
		{Name: "without seconds", Value: "2024-11-05 15:00", Expected: want},
		{Name: "human readable", Value: "05 Nov 2024, 03:00 PM", Expected: want},
		{Name: "unknown format", Value: "yesterday", Err: true},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			got, err := ParseProviderDate(tc.Value)
			if tc.Err {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.True(t, tc.Expected.Equal(got), "got %s", got)
		})
	}
}
