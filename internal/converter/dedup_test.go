package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mrlokans/wallabag2karakeep/internal/entities"
	"github.com/mrlokans/wallabag2karakeep/internal/logger"
)

func entryWith(id int64, url string) entities.WallabagEntry {
	e := entities.WallabagEntry{URL: url, Title: url}
	if id != 0 {
		e.ID = int64Ptr(id)
	}
	return e
}

func displayIDs(entries []entities.WallabagEntry) []string {
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.DisplayID())
	}
	return ids
}

func TestDeduplicate(t *testing.T) {
	log := logger.NewNop()

	entries := []entities.WallabagEntry{
		entryWith(1, "https://example.com/a"),
		entryWith(2, "HTTPS://EXAMPLE.com/a?utm_source=rss"),
		entryWith(3, ""),
		entryWith(1, "https://example.com/b"),
		entryWith(0, "https://example.com/c"),
		entryWith(0, "https://example.com/c"),
	}

	t.Run("by url", func(t *testing.T) {
		result := Deduplicate(entries, DedupByURL, log)
		assert.Equal(t, []string{"1", "1", "None"}, displayIDs(result))
		assert.Equal(t, "https://example.com/a", result[0].URL)
		assert.Equal(t, "https://example.com/b", result[1].URL)
	})

	t.Run("by source id", func(t *testing.T) {
		result := Deduplicate(entries, DedupBySourceID, log)
		assert.Equal(t, []string{"1", "2", "3", "None", "None"}, displayIDs(result))
	})

	t.Run("wallabag-id is an alias", func(t *testing.T) {
		assert.Equal(t,
			Deduplicate(entries, DedupBySourceID, log),
			Deduplicate(entries, DedupByWallabagID, log),
		)
	})

	t.Run("none is identity", func(t *testing.T) {
		assert.Equal(t, entries, Deduplicate(entries, DedupNone, log))
	})

	t.Run("unknown mode is identity", func(t *testing.T) {
		assert.Equal(t, entries, Deduplicate(entries, DedupMode("title"), log))
	})

	t.Run("two records with the same normalized url", func(t *testing.T) {
		pair := []entities.WallabagEntry{
			entryWith(10, "https://example.com/post/"),
			entryWith(11, "https://example.com/post?ref=hn"),
		}
		result := Deduplicate(pair, DedupByURL, log)
		assert.Len(t, result, 1)
		assert.Equal(t, "10", result[0].DisplayID())
	})
}
