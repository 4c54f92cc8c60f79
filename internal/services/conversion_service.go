package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mrlokans/wallabag2karakeep/internal/converter"
	"github.com/mrlokans/wallabag2karakeep/internal/entities"
	"github.com/mrlokans/wallabag2karakeep/internal/logger"
	"github.com/mrlokans/wallabag2karakeep/internal/wallabag"
)

type Format string

const (
	FormatOmnivore Format = "omnivore"
	FormatAPIJSON  Format = "api-json"
)

var Formats = []Format{FormatOmnivore, FormatAPIJSON}

var ErrUnknownFormat = errors.New("unknown output format")

// Options are the conversion settings shared by every trigger.
type Options struct {
	Format        Format
	DedupMode     converter.DedupMode
	TagsMode      converter.TagsMode
	IncludeNotes  bool
	MaxNoteLength int
}

func DefaultOptions() Options {
	return Options{
		Format:        FormatOmnivore,
		DedupMode:     converter.DedupByURL,
		TagsMode:      converter.TagsModePreserve,
		IncludeNotes:  true,
		MaxNoteLength: converter.DefaultMaxNoteLength,
	}
}

// SkippedEntry is an entry that decoded fine but was not converted.
type SkippedEntry struct {
	ID     string `json:"id"`
	URL    string `json:"url"`
	Reason string `json:"reason"`
}

// ConversionService converts already-read entries. It holds no state
// between calls.
type ConversionService struct {
	log logger.Logger
}

func NewConversionService(log logger.Logger) *ConversionService {
	return &ConversionService{log: log}
}

// Convert deduplicates and converts entries. Entries without a usable
// URL are skipped and reported. An unparseable created_at stops the whole
// conversion; the returned report then holds the counts reached so far.
func (s *ConversionService) Convert(read wallabag.ReadResult, opts Options) (*Report, error) {
	report := newReport(opts)
	report.EntriesRead = len(read.Entries)
	report.EntriesInvalid = len(read.Skipped)
	if read.Skipped != nil {
		report.InvalidRecords = read.Skipped
	}

	if opts.Format != FormatOmnivore && opts.Format != FormatAPIJSON {
		return report, fmt.Errorf("%w: %q", ErrUnknownFormat, opts.Format)
	}

	entries := converter.Deduplicate(read.Entries, opts.DedupMode, s.log)
	report.EntriesAfterDedup = len(entries)
	s.log.Info("Deduplicated entries",
		logger.String("mode", string(opts.DedupMode)),
		logger.Int("remaining", len(entries)))

	apiOpts := converter.APIOptions{
		TagsMode:      opts.TagsMode,
		IncludeNotes:  opts.IncludeNotes,
		MaxNoteLength: opts.MaxNoteLength,
	}

	for _, entry := range entries {
		converted, err := s.convertEntry(entry, opts.Format, apiOpts, report)
		if err != nil {
			return report, err
		}
		if !converted {
			s.log.Warnf("Skipped entry id=%s (invalid URL: %s)", entry.DisplayID(), entry.URL)
			report.addSkipped(entry, "invalid URL")
		}
	}

	return report, nil
}

func (s *ConversionService) convertEntry(entry entities.WallabagEntry, format Format, apiOpts converter.APIOptions, report *Report) (bool, error) {
	switch format {
	case FormatAPIJSON:
		item, err := converter.ToAPI(entry, apiOpts)
		if err != nil || item == nil {
			return false, err
		}
		report.api = append(report.api, *item)
	default:
		item, err := converter.ToOmnivore(entry, apiOpts.TagsMode)
		if err != nil || item == nil {
			return false, err
		}
		report.omnivore = append(report.omnivore, *item)
	}
	report.Converted++
	return true, nil
}

func newReport(opts Options) *Report {
	return &Report{
		RunID:          uuid.NewString(),
		Format:         opts.Format,
		DedupMode:      opts.DedupMode,
		TagsMode:       opts.TagsMode,
		IncludeNotes:   opts.IncludeNotes,
		MaxNoteLength:  opts.MaxNoteLength,
		StartedAt:      time.Now(),
		SkippedEntries: []SkippedEntry{},
		InvalidRecords: []wallabag.SkippedRecord{},
		omnivore:       []entities.OmnivoreBookmark{},
		api:            []entities.APIBookmark{},
	}
}
