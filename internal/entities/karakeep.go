package entities

const (
	BookmarkTypeLink     = "link"
	BookmarkSourceImport = "import"
	CrawlPriorityLow     = "low"

	// MaxBookmarkTitleLength is the longest title Karakeep accepts.
	MaxBookmarkTitleLength = 1000
)

// CreateBookmarkRequest is the body of POST /api/v1/bookmarks for link bookmarks.
// Optional fields are pointers so that absent values are omitted rather
// than sent as empty strings.
type CreateBookmarkRequest struct {
	Type          string  `json:"type"`
	URL           string  `json:"url"`
	Title         *string `json:"title,omitempty"`
	Archived      bool    `json:"archived"`
	Favourited    bool    `json:"favourited"`
	Note          *string `json:"note,omitempty"`
	Summary       *string `json:"summary,omitempty"`
	CreatedAt     *string `json:"createdAt,omitempty"`
	Source        string  `json:"source"`
	CrawlPriority string  `json:"crawlPriority"`
}

// NewCreateBookmarkRequest fills in the constant discriminator fields.
func NewCreateBookmarkRequest(url string) CreateBookmarkRequest {
	return CreateBookmarkRequest{
		Type:          BookmarkTypeLink,
		URL:           url,
		Source:        BookmarkSourceImport,
		CrawlPriority: CrawlPriorityLow,
	}
}

type TagAttachment struct {
	TagName string `json:"tagName"`
}

// AttachTagsRequest is the body of POST /api/v1/bookmarks/{id}/tags.
type AttachTagsRequest struct {
	Tags []TagAttachment `json:"tags"`
}

// APIBookmark is one element of the api-json output file. The create payload
// is flattened into the object and the tag payload, when present, sits under
// the auxiliary "_tags" key. A consumer dispatching to Karakeep splits them
// back into two requests.
type APIBookmark struct {
	CreateBookmarkRequest
	Tags *AttachTagsRequest `json:"_tags,omitempty"`
}
