// Package wallabag reads wallabag JSON exports.
package wallabag

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/wallabag2karakeep/internal/entities"
	"github.com/mrlokans/wallabag2karakeep/internal/logger"
)

var ErrInvalidJSON = errors.New("invalid JSON")

// ErrUnexpectedStructure is returned when the top level of the export is
// neither an array of entries nor an object with an "entries" array.
var ErrUnexpectedStructure = errors.New("unexpected JSON structure: expected a list or an object with an 'entries' key")

// SkippedRecord describes an array element that could not be decoded.
type SkippedRecord struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

type ReadResult struct {
	Entries []entities.WallabagEntry
	Skipped []SkippedRecord
}

// Total is the number of elements found in the export, valid or not.
func (r ReadResult) Total() int {
	return len(r.Entries) + len(r.Skipped)
}

type Reader struct {
	log logger.Logger
}

func NewReader(log logger.Logger) *Reader {
	return &Reader{log: log}
}

// ReadFile reads a whole export from disk. A missing file is reported
// with an error wrapping os.ErrNotExist.
func (r *Reader) ReadFile(path string) (ReadResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ReadResult{}, err
	}

	result, err := r.Decode(data)
	if err != nil {
		return ReadResult{}, fmt.Errorf("%s: %w", path, err)
	}
	return result, nil
}

// Read decodes an export from a stream, used by the HTTP handler.
func (r *Reader) Read(src io.Reader) (ReadResult, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return ReadResult{}, fmt.Errorf("failed to read input: %w", err)
	}
	return r.Decode(data)
}

// Decode accepts both export shapes. Elements that do not decode into a
// WallabagEntry are logged and collected in Skipped; they never fail the
// whole read.
func (r *Reader) Decode(data []byte) (ReadResult, error) {
	rawEntries, err := topLevelEntries(data)
	if err != nil {
		return ReadResult{}, err
	}

	result := ReadResult{
		Entries: make([]entities.WallabagEntry, 0, len(rawEntries)),
	}

	for idx, raw := range rawEntries {
		entry, err := decodeEntry(raw)
		if err != nil {
			r.log.Warnf("Skipping entry %d: validation error: %v", idx, err)
			result.Skipped = append(result.Skipped, SkippedRecord{Index: idx, Reason: err.Error()})
			continue
		}
		result.Entries = append(result.Entries, entry)
	}

	return result, nil
}

func topLevelEntries(data []byte) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrInvalidJSON)
	}

	switch trimmed[0] {
	case '[':
		var entries []json.RawMessage
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}
		return entries, nil
	case '{':
		var wrapper map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &wrapper); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}
		raw, ok := wrapper["entries"]
		if !ok {
			return nil, ErrUnexpectedStructure
		}
		var entries []json.RawMessage
		if err := json.Unmarshal(raw, &entries); err != nil {
			return nil, fmt.Errorf("%w: 'entries' is not a list", ErrUnexpectedStructure)
		}
		return entries, nil
	default:
		if !json.Valid(trimmed) {
			return nil, ErrInvalidJSON
		}
		return nil, ErrUnexpectedStructure
	}
}

func decodeEntry(raw json.RawMessage) (entities.WallabagEntry, error) {
	var entry entities.WallabagEntry

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return entry, fmt.Errorf("expected an object, got %s", describeJSON(trimmed))
	}
	if err := json.Unmarshal(trimmed, &entry); err != nil {
		return entities.WallabagEntry{}, err
	}
	return entry, nil
}

func describeJSON(raw []byte) string {
	if len(raw) == 0 {
		return "nothing"
	}
	switch raw[0] {
	case '[':
		return "a list"
	case '"':
		return "a string"
	case 'n':
		return "null"
	case 't', 'f':
		return "a boolean"
	default:
		return "a number"
	}
}
