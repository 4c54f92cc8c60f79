package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullEntryJSON = `{
	"id": 100,
	"uid": null,
	"title": "How to Use Docker Compose for Development",
	"url": "https://docs.docker.com/compose/gettingstarted/",
	"language": "en",
	"reading_time": 7,
	"is_archived": 1,
	"is_starred": 1,
	"is_public": false,
	"created_at": "2025-01-15 08:30:00",
	"published_at": "2024-12-01 00:00:00",
	"published_by": ["Docker Inc."],
	"tags": ["docker", "devops", "containers"],
	"annotations": [
		{
			"id": 10,
			"text": "Remember to use volume mounts for hot reload",
			"quote": "Use volume mounts to share code between your host and container",
			"ranges": [{"start": "/article/p[3]", "startOffset": 0, "end": "/article/p[3]", "endOffset": 60}],
			"created_at": "2025-01-20T09:15:00+0000"
		}
	],
	"user_id": 1
}`

func decodeEntry(t *testing.T, raw string) WallabagEntry {
	t.Helper()
	var entry WallabagEntry
	require.NoError(t, json.Unmarshal([]byte(raw), &entry))
	return entry
}

func TestWallabagEntry_Decode(t *testing.T) {
	t.Run("full entry", func(t *testing.T) {
		entry := decodeEntry(t, fullEntryJSON)

		require.NotNil(t, entry.ID)
		assert.Equal(t, int64(100), *entry.ID)
		assert.Equal(t, "How to Use Docker Compose for Development", entry.Title)
		assert.True(t, bool(entry.IsArchived))
		assert.True(t, bool(entry.IsStarred))
		assert.Len(t, entry.Tags, 3)
		assert.Equal(t, TagKindBare, entry.Tags[0].Kind)
		assert.Equal(t, []string{"Docker Inc."}, entry.PublishedBy)
		require.Len(t, entry.Annotations, 1)
		assert.Equal(t, "Remember to use volume mounts for hot reload", entry.Annotations[0].Text)
		require.Len(t, entry.Annotations[0].Ranges, 1)
		assert.Equal(t, 60, entry.Annotations[0].Ranges[0].EndOffset)
	})

	t.Run("minimal entry gets defaults", func(t *testing.T) {
		entry := decodeEntry(t, `{"url": "https://example.com", "tags": []}`)

		assert.Nil(t, entry.ID)
		assert.Empty(t, entry.Title)
		assert.False(t, bool(entry.IsArchived))
		assert.False(t, bool(entry.IsStarred))
		assert.Empty(t, entry.Tags)
		assert.Empty(t, entry.Annotations)
	})

	t.Run("unknown fields are ignored", func(t *testing.T) {
		entry := decodeEntry(t, `{"url": "https://example.com", "some_future_field": "value", "another_field": 42}`)
		assert.Equal(t, "https://example.com", entry.URL)
	})

	t.Run("wrong field type is an error", func(t *testing.T) {
		var entry WallabagEntry
		err := json.Unmarshal([]byte(`{"url": 42}`), &entry)
		assert.Error(t, err)
	})
}

func TestFlag_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
		wantErr  bool
	}{
		{name: "true", input: `true`, expected: true},
		{name: "false", input: `false`, expected: false},
		{name: "one", input: `1`, expected: true},
		{name: "zero", input: `0`, expected: false},
		{name: "null", input: `null`, expected: false},
		{name: "numeric string", input: `"1"`, expected: true},
		{name: "word string", input: `"yes"`, wantErr: true},
		{name: "object", input: `{}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f Flag
			err := json.Unmarshal([]byte(tt.input), &f)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, bool(f))
		})
	}

	t.Run("absent flag defaults to false", func(t *testing.T) {
		entry := decodeEntry(t, `{"url": "https://example.com", "is_archived": null}`)
		assert.False(t, bool(entry.IsArchived))
		assert.False(t, bool(entry.IsStarred))
	})
}

func TestTag_UnmarshalJSON(t *testing.T) {
	var tags []Tag
	err := json.Unmarshal([]byte(`[
		"python",
		{"id": 10, "label": "css", "slug": "css"},
		{"id": 11, "slug": "only-slug"},
		42,
		null,
		{"label": 7}
	]`), &tags)
	require.NoError(t, err)
	require.Len(t, tags, 6)

	assert.Equal(t, BareTag("python"), tags[0])
	assert.Equal(t, ObjectTag(10, "css", "css"), tags[1])

	assert.Equal(t, TagKindObject, tags[2].Kind)
	assert.False(t, tags[2].HasLabel)
	assert.Equal(t, "only-slug", tags[2].Slug)

	assert.Equal(t, TagKindUnknown, tags[3].Kind)
	assert.Equal(t, TagKindUnknown, tags[4].Kind)

	assert.Equal(t, TagKindObject, tags[5].Kind)
	assert.False(t, tags[5].HasLabel)
}

func TestWallabagEntry_SourceID(t *testing.T) {
	id := int64(1455)
	entry := WallabagEntry{ID: &id}

	got, ok := entry.SourceID()
	assert.True(t, ok)
	assert.Equal(t, "1455", got)
	assert.Equal(t, "1455", entry.DisplayID())

	_, ok = WallabagEntry{}.SourceID()
	assert.False(t, ok)
	assert.Equal(t, "None", WallabagEntry{}.DisplayID())
}

func TestAPIBookmark_Marshal(t *testing.T) {
	title := "Article"
	item := APIBookmark{CreateBookmarkRequest: NewCreateBookmarkRequest("https://example.com")}
	item.Title = &title

	data, err := json.Marshal(item)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"type": "link",
		"url": "https://example.com",
		"title": "Article",
		"archived": false,
		"favourited": false,
		"source": "import",
		"crawlPriority": "low"
	}`, string(data))

	item.Tags = &AttachTagsRequest{Tags: []TagAttachment{{TagName: "go"}}}
	data, err = json.Marshal(item)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"_tags":{"tags":[{"tagName":"go"}]}`)
}
