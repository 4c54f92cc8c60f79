package exporters

// Exporter persists converted bookmarks. Items are plain serializable
// records, either OmnivoreBookmark or APIBookmark values.
type Exporter interface {
	Export(items any) (ExportResult, error)
}

type ExportResult struct {
	Path         string `json:"path"`
	ItemsWritten int    `json:"items_written"`
	BytesWritten int    `json:"bytes_written"`
}
