package exporters

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/wallabag2karakeep/internal/entities"
)

func TestJSONExporter_Export(t *testing.T) {
	t.Run("creates parent directories and writes items", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "deeper", "out.json")
		exporter := NewJSONExporter(path)

		items := []entities.OmnivoreBookmark{
			{
				ID:     "wb-1",
				Title:  "Café & Crème <b>",
				URL:    "https://example.com",
				Labels: []string{},
				State:  entities.BookmarkStateActive,
			},
		}

		result, err := exporter.Export(items)
		require.NoError(t, err)
		assert.Equal(t, path, result.Path)
		assert.Equal(t, 1, result.ItemsWritten)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		content := string(data)

		assert.Equal(t, result.BytesWritten, len(data))
		assert.True(t, strings.HasPrefix(content, "[\n  {\n    \"id\": \"wb-1\""))
		assert.True(t, strings.HasSuffix(content, "]\n"))
		assert.Contains(t, content, "Café & Crème <b>")
		assert.Contains(t, content, `"labels": []`)
	})

	t.Run("empty list", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.json")
		result, err := NewJSONExporter(path).Export([]entities.APIBookmark(nil))
		require.NoError(t, err)
		assert.Equal(t, 0, result.ItemsWritten)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "[]\n", string(data))
	})

	t.Run("overwrites existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.json")
		require.NoError(t, os.WriteFile(path, []byte("old content that is longer"), 0644))

		_, err := NewJSONExporter(path).Export([]string{"a"})
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "[\n  \"a\"\n]\n", string(data))
	})
}

func TestWriteJSON_APIBookmark(t *testing.T) {
	item := entities.APIBookmark{CreateBookmarkRequest: entities.NewCreateBookmarkRequest("https://example.com/?a=1&b=2")}
	item.Tags = &entities.AttachTagsRequest{Tags: []entities.TagAttachment{{TagName: "go"}}}

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, []entities.APIBookmark{item}))

	out := buf.String()
	assert.Contains(t, out, `"url": "https://example.com/?a=1&b=2"`)
	assert.Contains(t, out, `"_tags": {`)
	assert.NotContains(t, out, `"title"`)
	assert.NotContains(t, out, `"note"`)
}
