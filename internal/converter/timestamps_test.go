package converter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{
			name:     "space separated is UTC",
			input:    "2025-03-15 09:08:33",
			expected: time.Date(2025, 3, 15, 9, 8, 33, 0, time.UTC),
		},
		{
			name:     "iso with numeric offset",
			input:    "2025-03-15T09:08:33+0000",
			expected: time.Date(2025, 3, 15, 9, 8, 33, 0, time.UTC),
		},
		{
			name:     "iso with non-zero offset",
			input:    "2025-03-15T11:08:33+0200",
			expected: time.Date(2025, 3, 15, 9, 8, 33, 0, time.UTC),
		},
		{
			name:     "iso with colon offset",
			input:    "2025-03-15T04:08:33-05:00",
			expected: time.Date(2025, 3, 15, 9, 8, 33, 0, time.UTC),
		},
		{
			name:     "iso with Z",
			input:    "2025-03-15T09:08:33Z",
			expected: time.Date(2025, 3, 15, 9, 8, 33, 0, time.UTC),
		},
		{
			name:     "iso without offset is UTC",
			input:    "2025-03-15T09:08:33",
			expected: time.Date(2025, 3, 15, 9, 8, 33, 0, time.UTC),
		},
		{
			name:     "surrounding whitespace",
			input:    "  2025-03-15 09:08:33\n",
			expected: time.Date(2025, 3, 15, 9, 8, 33, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(tt.input)
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(got), "expected %s, got %s", tt.expected, got)
		})
	}
}

func TestParseTimestamp_Empty(t *testing.T) {
	got, err := ParseTimestamp("")
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestParseTimestamp_Invalid(t *testing.T) {
	inputs := []string{
		"not a date",
		"15/03/2025",
		"2025-03-15",
		"2025-03-15T09:08:33.123Z",
		"2025-13-40 09:08:33",
		"   ",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := ParseTimestamp(input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUnparseableTimestamp)
		})
	}
}

func TestFormatCanonical(t *testing.T) {
	t.Run("utc", func(t *testing.T) {
		ts := time.Date(2025, 3, 15, 9, 8, 33, 0, time.UTC)
		assert.Equal(t, "2025-03-15T09:08:33.000Z", FormatCanonical(ts))
	})

	t.Run("converts to utc", func(t *testing.T) {
		ts := time.Date(2025, 3, 15, 11, 8, 33, 0, time.FixedZone("CEST", 2*60*60))
		assert.Equal(t, "2025-03-15T09:08:33.000Z", FormatCanonical(ts))
	})

	t.Run("milliseconds are always zero", func(t *testing.T) {
		ts := time.Date(2025, 3, 15, 9, 8, 33, 987_000_000, time.UTC)
		assert.Equal(t, "2025-03-15T09:08:33.000Z", FormatCanonical(ts))
	})

	t.Run("zero time is empty", func(t *testing.T) {
		assert.Equal(t, "", FormatCanonical(time.Time{}))
	})
}

func TestParseThenFormat(t *testing.T) {
	ts, err := ParseTimestamp("2025-03-15 09:08:33")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-15T09:08:33.000Z", FormatCanonical(ts))

	none, err := ParseTimestamp("")
	require.NoError(t, err)
	assert.Equal(t, "", FormatCanonical(none))
}
