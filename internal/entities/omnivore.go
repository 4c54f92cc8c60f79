package entities

type BookmarkState string

const (
	BookmarkStateActive   BookmarkState = "Active"
	BookmarkStateArchived BookmarkState = "Archived"
)

// OmnivoreBookmark is one element of an Omnivore export, the format the
// Karakeep web UI accepts for bulk imports.
type OmnivoreBookmark struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	URL         string        `json:"url"`
	Description string        `json:"description"`
	SavedAt     string        `json:"savedAt"`
	Slug        string        `json:"slug"`
	Labels      []string      `json:"labels"`
	State       BookmarkState `json:"state"`
}
