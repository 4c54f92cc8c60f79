package http

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/wallabag2karakeep/internal/converter"
	"github.com/mrlokans/wallabag2karakeep/internal/services"
)

func contextWithQuery(query string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("POST", "/api/v1/convert?"+query, nil)
	return c
}

func TestOptionsFromQuery(t *testing.T) {
	defaults := services.DefaultOptions()

	t.Run("no query keeps defaults", func(t *testing.T) {
		opts, err := optionsFromQuery(contextWithQuery(""), defaults)
		require.NoError(t, err)
		assert.Equal(t, defaults, opts)
	})

	t.Run("all parameters", func(t *testing.T) {
		query := "format=api-json&dedup=wallabag-id&tags_mode=lowercase&include_notes=false&max_note_length=100"
		opts, err := optionsFromQuery(contextWithQuery(query), defaults)
		require.NoError(t, err)

		assert.Equal(t, services.FormatAPIJSON, opts.Format)
		assert.Equal(t, converter.DedupByWallabagID, opts.DedupMode)
		assert.Equal(t, converter.TagsModeLowercase, opts.TagsMode)
		assert.False(t, opts.IncludeNotes)
		assert.Equal(t, 100, opts.MaxNoteLength)
	})

	invalid := []string{
		"format=csv",
		"dedup=title",
		"tags_mode=upper",
		"include_notes=maybe",
		"max_note_length=-1",
		"max_note_length=lots",
	}
	for _, query := range invalid {
		t.Run(query, func(t *testing.T) {
			_, err := optionsFromQuery(contextWithQuery(query), defaults)
			assert.Error(t, err)
		})
	}
}
