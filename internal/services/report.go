package services

import (
	"time"

	"github.com/mrlokans/wallabag2karakeep/internal/converter"
	"github.com/mrlokans/wallabag2karakeep/internal/entities"
	"github.com/mrlokans/wallabag2karakeep/internal/exporters"
	"github.com/mrlokans/wallabag2karakeep/internal/utils"
	"github.com/mrlokans/wallabag2karakeep/internal/wallabag"
)

// Report describes one run of the pipeline. It is what gets audited and
// what the history row is built from. The converted items are kept out
// of the JSON form.
type Report struct {
	RunID      string `json:"run_id"`
	Trigger    string `json:"trigger,omitempty"`
	InputPath  string `json:"input_path,omitempty"`
	OutputPath string `json:"output_path,omitempty"`
	DryRun     bool   `json:"dry_run"`

	Format        Format              `json:"format"`
	DedupMode     converter.DedupMode `json:"dedup_mode"`
	TagsMode      converter.TagsMode  `json:"tags_mode"`
	IncludeNotes  bool                `json:"include_notes"`
	MaxNoteLength int                 `json:"max_note_length"`

	EntriesRead       int `json:"entries_read"`
	EntriesInvalid    int `json:"entries_invalid"`
	EntriesAfterDedup int `json:"entries_after_dedup"`
	Converted         int `json:"converted"`

	SkippedEntries []SkippedEntry           `json:"skipped_entries"`
	InvalidRecords []wallabag.SkippedRecord `json:"invalid_records"`

	Written *exporters.ExportResult `json:"written,omitempty"`

	Status     entities.RunStatus `json:"status"`
	Error      string             `json:"error,omitempty"`
	StartedAt  time.Time          `json:"started_at"`
	DurationMs int64              `json:"duration_ms"`

	omnivore []entities.OmnivoreBookmark
	api      []entities.APIBookmark
}

// Skipped counts entries dropped for an unusable URL.
func (r *Report) Skipped() int {
	return len(r.SkippedEntries)
}

// Items returns the converted records as a slice of the output format's
// type, ready for the JSON writer.
func (r *Report) Items() any {
	if r.Format == FormatAPIJSON {
		return r.api
	}
	return r.omnivore
}

// Preview returns at most n converted records.
func (r *Report) Preview(n int) any {
	if r.Format == FormatAPIJSON {
		return r.api[:min(n, len(r.api))]
	}
	return r.omnivore[:min(n, len(r.omnivore))]
}

func (r *Report) addSkipped(entry entities.WallabagEntry, reason string) {
	r.SkippedEntries = append(r.SkippedEntries, SkippedEntry{
		ID:     entry.DisplayID(),
		URL:    entry.URL,
		Reason: reason,
	})
}

func (r *Report) finish(err error) {
	r.DurationMs = time.Since(r.StartedAt).Milliseconds()
	if err != nil {
		r.Status = entities.RunStatusFailed
		r.Error = err.Error()
		return
	}
	r.Status = entities.RunStatusSuccess
}

// ConversionRun is the history row for this report.
func (r *Report) ConversionRun() *entities.ConversionRun {
	errorMsg := r.Error
	if utils.RuneLen(errorMsg) > 500 {
		errorMsg = utils.TruncateRunes(errorMsg, 497) + "..."
	}

	return &entities.ConversionRun{
		RunID:             r.RunID,
		Trigger:           r.Trigger,
		InputPath:         r.InputPath,
		OutputPath:        r.OutputPath,
		Format:            string(r.Format),
		DedupMode:         string(r.DedupMode),
		TagsMode:          string(r.TagsMode),
		DryRun:            r.DryRun,
		EntriesRead:       r.EntriesRead,
		EntriesInvalid:    r.EntriesInvalid,
		EntriesAfterDedup: r.EntriesAfterDedup,
		Converted:         r.Converted,
		Skipped:           r.Skipped(),
		Status:            r.Status,
		ErrorMsg:          errorMsg,
		DurationMs:        r.DurationMs,
		CreatedAt:         r.StartedAt,
	}
}
