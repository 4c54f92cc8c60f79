package converter

import (
	"github.com/mrlokans/wallabag2karakeep/internal/entities"
	"github.com/mrlokans/wallabag2karakeep/internal/logger"
)

type DedupMode string

const (
	DedupByURL      DedupMode = "url"
	DedupNone       DedupMode = "none"
	DedupBySourceID DedupMode = "source-id"
	// DedupByWallabagID is the name the command line has always used for
	// DedupBySourceID.
	DedupByWallabagID DedupMode = "wallabag-id"
)

var DedupModes = []DedupMode{DedupByURL, DedupNone, DedupByWallabagID, DedupBySourceID}

// Deduplicate drops later entries whose key collides with an earlier one,
// keeping the order of the survivors.
//
// By URL the key is NormalizeURL and entries without a URL are dropped.
// By source id entries without an id always survive. Unknown modes and
// DedupNone return the input unchanged.
func Deduplicate(entries []entities.WallabagEntry, mode DedupMode, log logger.Logger) []entities.WallabagEntry {
	var keyOf func(entities.WallabagEntry) (key string, keep bool)

	switch mode {
	case DedupByURL:
		keyOf = func(e entities.WallabagEntry) (string, bool) {
			if e.URL == "" {
				log.Debug("Entry without URL dropped", logger.String("id", e.DisplayID()))
				return "", false
			}
			return NormalizeURL(e.URL), true
		}
	case DedupBySourceID, DedupByWallabagID:
		keyOf = func(e entities.WallabagEntry) (string, bool) {
			id, _ := e.SourceID()
			return id, true
		}
	default:
		return entries
	}

	seen := make(map[string]struct{}, len(entries))
	unique := make([]entities.WallabagEntry, 0, len(entries))

	for _, entry := range entries {
		key, keep := keyOf(entry)
		if !keep {
			continue
		}
		if key == "" {
			unique = append(unique, entry)
			continue
		}
		if _, dup := seen[key]; dup {
			log.Debugf("Duplicate entry skipped (mode=%s): %s", mode, key)
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, entry)
	}

	return unique
}
