package entities

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Flag is a boolean-ish field from a wallabag export. Exports written by
// different wallabag versions use true/false, 0/1 or null for the same field.
type Flag bool

func (f *Flag) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		*f = false
		return nil
	}

	switch raw[0] {
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			return fmt.Errorf("invalid flag value %s: %w", raw, err)
		}
		*f = Flag(b)
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return fmt.Errorf("invalid flag value %s: %w", raw, err)
		}
		n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return fmt.Errorf("invalid flag value %q", s)
		}
		*f = n != 0
		return nil
	default:
		n, err := strconv.ParseFloat(string(raw), 64)
		if err != nil {
			return fmt.Errorf("invalid flag value %s", raw)
		}
		*f = n != 0
		return nil
	}
}

type TagKind string

const (
	TagKindBare    TagKind = "bare"    // full export: "tags": ["go", "web"]
	TagKindObject  TagKind = "object"  // API export: "tags": [{"id": 1, "label": "go", "slug": "go"}]
	TagKindUnknown TagKind = "unknown" // anything else, skipped during label extraction
)

// Tag is one element of an entry's tag list. Decoding never fails: shapes
// that are neither a string nor an object are kept as TagKindUnknown.
type Tag struct {
	Kind  TagKind `json:"-"`
	ID    int64   `json:"id,omitempty"`
	Label string  `json:"label,omitempty"`
	Slug  string  `json:"slug,omitempty"`

	HasLabel bool `json:"-"`
}

// BareTag builds a tag as found in full wallabag exports.
func BareTag(label string) Tag {
	return Tag{Kind: TagKindBare, Label: label, HasLabel: true}
}

// ObjectTag builds a tag as returned by the wallabag API.
func ObjectTag(id int64, label, slug string) Tag {
	return Tag{Kind: TagKindObject, ID: id, Label: label, Slug: slug, HasLabel: true}
}

func (t *Tag) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)
	*t = Tag{Kind: TagKindUnknown}
	if len(raw) == 0 {
		return nil
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			*t = BareTag(s)
		}
	case '{':
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(raw, &fields); err != nil {
			return nil
		}
		t.Kind = TagKindObject
		if v, ok := fields["label"]; ok {
			var label string
			if json.Unmarshal(v, &label) == nil && !bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
				t.Label = label
				t.HasLabel = true
			}
		}
		if v, ok := fields["slug"]; ok {
			_ = json.Unmarshal(v, &t.Slug)
		}
		if v, ok := fields["id"]; ok {
			_ = json.Unmarshal(v, &t.ID)
		}
	}
	return nil
}

// AnnotationRange is the XPath range of a highlight inside the article.
type AnnotationRange struct {
	Start       string `json:"start"`
	StartOffset int    `json:"startOffset"`
	End         string `json:"end"`
	EndOffset   int    `json:"endOffset"`
}

// Annotation is a highlight on a wallabag entry. Quote is the highlighted
// passage, Text is the note the user attached to it.
type Annotation struct {
	ID                     *int64            `json:"id,omitempty"`
	AnnotatorSchemaVersion string            `json:"annotator_schema_version,omitempty"`
	CreatedAt              string            `json:"created_at,omitempty"`
	UpdatedAt              string            `json:"updated_at,omitempty"`
	Text                   string            `json:"text"`
	Quote                  string            `json:"quote"`
	Ranges                 []AnnotationRange `json:"ranges,omitempty"`
	User                   string            `json:"user,omitempty"`
}

// WallabagEntry is a single entry of a wallabag JSON export.
//
// Both the full export ("export_all") and the API shape ("entries_for_user")
// decode into this struct. Every field is optional and unknown fields are
// ignored so that exports from newer wallabag versions still load.
type WallabagEntry struct {
	ID             *int64         `json:"id,omitempty"`
	UID            string         `json:"uid,omitempty"`
	Title          string         `json:"title,omitempty"`
	URL            string         `json:"url,omitempty"`
	Content        string         `json:"content,omitempty"`
	DomainName     string         `json:"domain_name,omitempty"`
	Language       string         `json:"language,omitempty"`
	Mimetype       string         `json:"mimetype,omitempty"`
	ReadingTime    int            `json:"reading_time,omitempty"`
	PreviewPicture string         `json:"preview_picture,omitempty"`
	HTTPStatus     string         `json:"http_status,omitempty"`
	Headers        map[string]any `json:"headers,omitempty"`

	IsArchived  Flag   `json:"is_archived"`
	ArchivedAt  string `json:"archived_at,omitempty"`
	IsStarred   Flag   `json:"is_starred"`
	StarredAt   string `json:"starred_at,omitempty"`
	IsPublic    Flag   `json:"is_public"`
	IsNotParsed Flag   `json:"is_not_parsed"`

	CreatedAt   string   `json:"created_at,omitempty"`
	UpdatedAt   string   `json:"updated_at,omitempty"`
	PublishedAt string   `json:"published_at,omitempty"`
	PublishedBy []string `json:"published_by,omitempty"`

	OriginURL      string `json:"origin_url,omitempty"`
	GivenURL       string `json:"given_url,omitempty"`
	HashedURL      string `json:"hashed_url,omitempty"`
	HashedGivenURL string `json:"hashed_given_url,omitempty"`

	Tags        []Tag        `json:"tags"`
	Annotations []Annotation `json:"annotations"`

	UserName  string `json:"user_name,omitempty"`
	UserEmail string `json:"user_email,omitempty"`
	UserID    *int64 `json:"user_id,omitempty"`
}

// SourceID returns the wallabag id as a string and whether the entry has one.
func (e WallabagEntry) SourceID() (string, bool) {
	if e.ID == nil {
		return "", false
	}
	return strconv.FormatInt(*e.ID, 10), true
}

// DisplayID is used in log lines; entries without an id show as "None".
func (e WallabagEntry) DisplayID() string {
	if id, ok := e.SourceID(); ok {
		return id
	}
	return "None"
}
