package exporters

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
)

// JSONExporter writes the output file: a JSON array indented with two
// spaces, non-ASCII and HTML characters left unescaped, trailing newline.
type JSONExporter struct {
	OutputPath string
}

func NewJSONExporter(outputPath string) *JSONExporter {
	return &JSONExporter{OutputPath: outputPath}
}

// Export writes items to OutputPath, creating parent directories.
func (exporter *JSONExporter) Export(items any) (ExportResult, error) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, items); err != nil {
		return ExportResult{}, err
	}

	if dir := filepath.Dir(exporter.OutputPath); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return ExportResult{}, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(exporter.OutputPath, buf.Bytes(), 0644); err != nil {
		return ExportResult{}, fmt.Errorf("failed to write output: %w", err)
	}

	return ExportResult{
		Path:         exporter.OutputPath,
		ItemsWritten: countItems(items),
		BytesWritten: buf.Len(),
	}, nil
}

// WriteJSON encodes items the same way the output file is written.
// A nil slice is written as an empty array.
func WriteJSON(w io.Writer, items any) error {
	if isNilSlice(items) {
		items = []struct{}{}
	}

	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(items); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}

func countItems(items any) int {
	v := reflect.ValueOf(items)
	if v.Kind() == reflect.Slice || v.Kind() == reflect.Array {
		return v.Len()
	}
	return 0
}

func isNilSlice(items any) bool {
	if items == nil {
		return true
	}
	v := reflect.ValueOf(items)
	return v.Kind() == reflect.Slice && v.IsNil()
}
