package converter

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

var ErrUnparseableTimestamp = errors.New("unparseable timestamp")

// canonicalLayout is what Karakeep expects. Wallabag has no sub-second
// precision so milliseconds are always zero.
const canonicalLayout = "2006-01-02T15:04:05.000Z"

type timestampFormat struct {
	shape   *regexp.Regexp
	layouts []string
}

// Accepted wallabag formats, tried in order. The shape check keeps
// time.Parse from also accepting fractional seconds or other variants.
var wallabagFormats = []timestampFormat{
	{
		// 2025-03-15T09:08:33+0000, +00:00 or Z
		shape:   regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(Z|[+-]\d{2}:?\d{2})$`),
		layouts: []string{"2006-01-02T15:04:05Z0700", "2006-01-02T15:04:05Z07:00"},
	},
	{
		// 2025-03-15 09:08:33, UTC
		shape:   regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`),
		layouts: []string{"2006-01-02 15:04:05"},
	},
	{
		// 2025-03-15T09:08:33, UTC
		shape:   regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}$`),
		layouts: []string{"2006-01-02T15:04:05"},
	},
}

// ParseTimestamp parses a wallabag timestamp. An empty string is not an
// error and yields the zero time. Values without an offset are UTC.
func ParseTimestamp(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}

	value := strings.TrimSpace(raw)
	for _, format := range wallabagFormats {
		if !format.shape.MatchString(value) {
			continue
		}
		for _, layout := range format.layouts {
			if t, err := time.Parse(layout, value); err == nil {
				return t, nil
			}
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrUnparseableTimestamp, raw)
}

// FormatCanonical renders t in UTC as 2025-03-15T09:08:33.000Z.
// The zero time renders as an empty string.
func FormatCanonical(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Truncate(time.Second).Format(canonicalLayout)
}
