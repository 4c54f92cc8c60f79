package converter

import (
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/mrlokans/wallabag2karakeep/internal/entities"
	"github.com/mrlokans/wallabag2karakeep/internal/utils"
)

const (
	DefaultMaxNoteLength = 5000

	truncationMarker = "..."
)

// APIOptions controls how ToAPI builds the create payload.
type APIOptions struct {
	TagsMode      TagsMode
	IncludeNotes  bool
	MaxNoteLength int
}

func DefaultAPIOptions() APIOptions {
	return APIOptions{
		TagsMode:      TagsModePreserve,
		IncludeNotes:  true,
		MaxNoteLength: DefaultMaxNoteLength,
	}
}

// ToOmnivore converts an entry to the flat-list format. It returns nil
// without an error when the entry has no usable http(s) URL. The only
// error is ErrUnparseableTimestamp for a malformed created_at.
func ToOmnivore(entry entities.WallabagEntry, mode TagsMode) (*entities.OmnivoreBookmark, error) {
	if !IsValidURL(entry.URL) {
		return nil, nil
	}

	created, err := ParseTimestamp(entry.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("entry %s created_at: %w", entry.DisplayID(), err)
	}

	state := entities.BookmarkStateActive
	if entry.IsArchived {
		state = entities.BookmarkStateArchived
	}

	title := entry.Title
	if title == "" {
		title = entry.URL
	}

	return &entities.OmnivoreBookmark{
		ID:          bookmarkID(entry),
		Title:       title,
		URL:         entry.URL,
		Description: "",
		SavedAt:     FormatCanonical(created),
		Slug:        utils.Slugify(title),
		Labels:      ExtractLabels(entry.Tags, mode),
		State:       state,
	}, nil
}

// ToAPI converts an entry to a create-bookmark payload with the attach-tags
// payload folded in. Nil without an error means the URL was not usable.
func ToAPI(entry entities.WallabagEntry, opts APIOptions) (*entities.APIBookmark, error) {
	if !IsValidURL(entry.URL) {
		return nil, nil
	}

	created, err := ParseTimestamp(entry.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("entry %s created_at: %w", entry.DisplayID(), err)
	}

	req := entities.NewCreateBookmarkRequest(entry.URL)
	req.Archived = bool(entry.IsArchived)
	req.Favourited = bool(entry.IsStarred)
	req.Title = optional(truncateTitle(entry.Title))
	req.CreatedAt = optional(FormatCanonical(created))
	if opts.IncludeNotes {
		req.Note = optional(truncateNote(BuildNote(entry), opts.MaxNoteLength))
	}

	bookmark := &entities.APIBookmark{CreateBookmarkRequest: req}

	labels := ExtractLabels(entry.Tags, opts.TagsMode)
	if len(labels) > 0 {
		attachments := make([]entities.TagAttachment, 0, len(labels))
		for _, label := range labels {
			attachments = append(attachments, entities.TagAttachment{TagName: label})
		}
		bookmark.Tags = &entities.AttachTagsRequest{Tags: attachments}
	}

	return bookmark, nil
}

// bookmarkID prefers the wallabag id and falls back to a hash of the URL,
// which is stable across runs.
func bookmarkID(entry entities.WallabagEntry) string {
	if id, ok := entry.SourceID(); ok {
		return "wb-" + id
	}
	return fmt.Sprintf("wb-%x", xxhash.Sum64String(entry.URL))
}

// truncateTitle keeps titles within Karakeep's limit, marker included.
func truncateTitle(title string) string {
	if utils.RuneLen(title) <= entities.MaxBookmarkTitleLength {
		return title
	}
	keep := entities.MaxBookmarkTitleLength - len(truncationMarker)
	return utils.TruncateRunes(title, keep) + truncationMarker
}

// truncateNote cuts at limit characters and then appends the marker.
func truncateNote(note string, limit int) string {
	if limit < 0 {
		limit = 0
	}
	if utils.RuneLen(note) <= limit {
		return note
	}
	return utils.TruncateRunes(note, limit) + truncationMarker
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
