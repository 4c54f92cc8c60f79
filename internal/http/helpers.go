package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/wallabag2karakeep/internal/converter"
	"github.com/mrlokans/wallabag2karakeep/internal/services"
)

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"` // machine-readable error code
	RunID string `json:"run_id,omitempty"`
}

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message, Code: "bad_request"})
}

// optionsFromQuery overlays query parameters on the server defaults.
func optionsFromQuery(c *gin.Context, defaults services.Options) (services.Options, error) {
	opts := defaults

	if v, ok := c.GetQuery("format"); ok {
		if !oneOf(services.Format(v), services.Formats) {
			return opts, fmt.Errorf("invalid format %q", v)
		}
		opts.Format = services.Format(v)
	}

	if v, ok := c.GetQuery("dedup"); ok {
		if !oneOf(converter.DedupMode(v), converter.DedupModes) {
			return opts, fmt.Errorf("invalid dedup mode %q", v)
		}
		opts.DedupMode = converter.DedupMode(v)
	}

	if v, ok := c.GetQuery("tags_mode"); ok {
		if !oneOf(converter.TagsMode(v), converter.TagsModes) {
			return opts, fmt.Errorf("invalid tags mode %q", v)
		}
		opts.TagsMode = converter.TagsMode(v)
	}

	if v, ok := c.GetQuery("include_notes"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return opts, fmt.Errorf("invalid include_notes %q", v)
		}
		opts.IncludeNotes = b
	}

	if v, ok := c.GetQuery("max_note_length"); ok {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return opts, fmt.Errorf("invalid max_note_length %q", v)
		}
		opts.MaxNoteLength = n
	}

	return opts, nil
}

func oneOf[T comparable](value T, allowed []T) bool {
	for _, a := range allowed {
		if a == value {
			return true
		}
	}
	return false
}
