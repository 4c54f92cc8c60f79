package converter

import (
	"net/url"
	"strings"
)

// Query parameters that only carry referral information and are dropped
// when comparing URLs.
var trackingParams = map[string]struct{}{
	"utm_source":   {},
	"utm_medium":   {},
	"utm_campaign": {},
	"utm_term":     {},
	"utm_content":  {},
	"ref":          {},
	"source":       {},
}

// IsValidURL reports whether raw is an absolute http(s) URL with a host.
func IsValidURL(raw string) bool {
	if raw == "" {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	return (scheme == "http" || scheme == "https") && u.Host != ""
}

// NormalizeURL returns the deduplication key for a URL: trailing slashes
// and tracking parameters removed, scheme and host lowercased. The result
// is never shown to the user.
func NormalizeURL(raw string) string {
	trimmed := strings.TrimRight(strings.TrimSpace(raw), "/")

	u, err := url.Parse(trimmed)
	if err != nil {
		return trimmed
	}

	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.RawQuery = stripTrackingParams(u.RawQuery)
	u.ForceQuery = false

	return u.String()
}

// stripTrackingParams keeps the remaining pairs verbatim and in order.
func stripTrackingParams(rawQuery string) string {
	if rawQuery == "" {
		return ""
	}

	kept := make([]string, 0)
	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}
		key, _, _ := strings.Cut(pair, "=")
		if decoded, err := url.QueryUnescape(key); err == nil {
			key = decoded
		}
		if _, tracking := trackingParams[strings.ToLower(key)]; tracking {
			continue
		}
		kept = append(kept, pair)
	}

	return strings.Join(kept, "&")
}
