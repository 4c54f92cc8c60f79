package entities

import "time"

type RunStatus string

const (
	RunStatusSuccess RunStatus = "success"
	RunStatusFailed  RunStatus = "failed"
)

// ConversionRun records one invocation of the convert pipeline.
type ConversionRun struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	RunID             string    `gorm:"uniqueIndex;size:36" json:"run_id"`
	Trigger           string    `gorm:"size:20" json:"trigger"` // "cli", "http", "schedule"
	InputPath         string    `gorm:"size:1024" json:"input_path,omitempty"`
	OutputPath        string    `gorm:"size:1024" json:"output_path,omitempty"`
	Format            string    `gorm:"size:20" json:"format"`
	DedupMode         string    `gorm:"size:20" json:"dedup_mode"`
	TagsMode          string    `gorm:"size:20" json:"tags_mode"`
	DryRun            bool      `json:"dry_run"`
	EntriesRead       int       `json:"entries_read"`
	EntriesInvalid    int       `json:"entries_invalid"`
	EntriesAfterDedup int       `json:"entries_after_dedup"`
	Converted         int       `json:"converted"`
	Skipped           int       `json:"skipped"`
	Status            RunStatus `gorm:"size:20;index" json:"status"`
	ErrorMsg          string    `gorm:"size:500" json:"error_msg,omitempty"`
	DurationMs        int64     `json:"duration_ms"`
	CreatedAt         time.Time `gorm:"index" json:"created_at"`
}

func (ConversionRun) TableName() string {
	return "conversion_runs"
}
