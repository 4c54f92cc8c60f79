package wallabag

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/wallabag2karakeep/internal/logger"
)

const twoEntries = `[
	{
		"id": 100,
		"title": "How to Use Docker Compose for Development",
		"url": "https://docs.docker.com/compose/gettingstarted/",
		"is_archived": 1,
		"is_starred": true,
		"created_at": "2025-01-15 08:30:00",
		"tags": ["docker", "devops"],
		"annotations": [{"quote": "Use volume mounts", "text": "Remember"}]
	},
	{
		"url": "https://example.com",
		"is_archived": 0,
		"tags": []
	}
]`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReader_ReadFile(t *testing.T) {
	reader := NewReader(logger.NewNop())

	t.Run("bare array", func(t *testing.T) {
		result, err := reader.ReadFile(writeFile(t, "export.json", twoEntries))
		require.NoError(t, err)

		require.Len(t, result.Entries, 2)
		assert.Empty(t, result.Skipped)
		assert.Equal(t, 2, result.Total())
		assert.Equal(t, "100", result.Entries[0].DisplayID())
		assert.True(t, bool(result.Entries[0].IsArchived))
		assert.Equal(t, "https://example.com", result.Entries[1].URL)
	})

	t.Run("entries wrapper", func(t *testing.T) {
		result, err := reader.ReadFile(writeFile(t, "wrapped.json", `{"entries": `+twoEntries+`, "page": 1}`))
		require.NoError(t, err)
		assert.Len(t, result.Entries, 2)
	})

	t.Run("empty array", func(t *testing.T) {
		result, err := reader.ReadFile(writeFile(t, "empty.json", `[]`))
		require.NoError(t, err)
		assert.Empty(t, result.Entries)
		assert.Equal(t, 0, result.Total())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := reader.ReadFile(filepath.Join(t.TempDir(), "nope.json"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := reader.ReadFile(writeFile(t, "broken.json", `[{"url": `))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidJSON)
	})
}

func TestReader_Decode_Structure(t *testing.T) {
	reader := NewReader(logger.NewNop())

	tests := []struct {
		name  string
		input string
	}{
		{name: "object without entries", input: `{"items": []}`},
		{name: "entries is not a list", input: `{"entries": {"url": "https://example.com"}}`},
		{name: "string", input: `"hello"`},
		{name: "number", input: `42`},
		{name: "null", input: `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := reader.Decode([]byte(tt.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUnexpectedStructure)
		})
	}
}

func TestReader_Decode_SkipsInvalidRecords(t *testing.T) {
	reader := NewReader(logger.NewNop())

	input := `[
		{"url": "https://example.com/ok"},
		{"url": 123},
		"just a string",
		null,
		{"url": "https://example.com/also-ok", "is_archived": "maybe"},
		{"url": "https://example.com/last", "unknown_field": true}
	]`

	result, err := reader.Decode([]byte(input))
	require.NoError(t, err)

	require.Len(t, result.Entries, 2)
	assert.Equal(t, "https://example.com/ok", result.Entries[0].URL)
	assert.Equal(t, "https://example.com/last", result.Entries[1].URL)

	require.Len(t, result.Skipped, 4)
	assert.Equal(t, []int{1, 2, 3, 4}, []int{
		result.Skipped[0].Index, result.Skipped[1].Index, result.Skipped[2].Index, result.Skipped[3].Index,
	})
	assert.Contains(t, result.Skipped[1].Reason, "a string")
	assert.Contains(t, result.Skipped[2].Reason, "null")
	assert.Equal(t, 6, result.Total())
}

func TestReader_Decode_InvalidJSON(t *testing.T) {
	reader := NewReader(logger.NewNop())

	for _, input := range []string{"", "   ", "{not json}", "nope"} {
		_, err := reader.Decode([]byte(input))
		assert.ErrorIs(t, err, ErrInvalidJSON, "input %q", input)
	}
}

func TestReader_Read(t *testing.T) {
	reader := NewReader(logger.NewNop())

	result, err := reader.Read(strings.NewReader(`{"entries": [{"url": "https://example.com"}]}`))
	require.NoError(t, err)
	assert.Len(t, result.Entries, 1)
}
