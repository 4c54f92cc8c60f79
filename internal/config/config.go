package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type (
	Config struct {
		Convert
		Log
		History
		Audit
		HTTP
		Schedule
	}

	Convert struct {
		Format        string // "omnivore" or "api-json"
		DedupMode     string // "url", "none", "wallabag-id"
		TagsMode      string // "preserve", "lowercase", "strip"
		IncludeNotes  bool
		MaxNoteLength int
	}
	Log struct {
		Level  string // Overrides the -v count when set
		Pretty bool
	}
	History struct {
		Enabled       bool
		DatabasePath  string
		RetentionDays int
	}
	Audit struct {
		Dir           string // Empty disables audit reports
		RetentionDays int
	}
	HTTP struct {
		Port                     int32
		Host                     string
		ShutdownTimeoutInSeconds int
	}
	Schedule struct {
		Cron       string // Cron format: "0 * * * *" = hourly
		InputPath  string
		OutputPath string
	}
)

// NewConfig reads defaults, an optional config file and W2K_* environment
// variables, later sources winning.
func NewConfig(configFile string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault("format", "omnivore")
	v.SetDefault("dedup_mode", "url")
	v.SetDefault("tags_mode", "preserve")
	v.SetDefault("include_notes", true)
	v.SetDefault("max_note_length", DefaultMaxNoteLength)

	v.SetDefault("log_level", "")
	v.SetDefault("log_pretty", false)

	v.SetDefault("history_enabled", false)
	v.SetDefault("history_database_path", DefaultDatabasePath)
	v.SetDefault("history_retention_days", DefaultRetentionDays)

	v.SetDefault("audit_dir", "")
	v.SetDefault("audit_retention_days", DefaultRetentionDays)

	v.SetDefault("port", 8189)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)

	v.SetDefault("schedule_cron", "0 * * * *") // Hourly at :00
	v.SetDefault("schedule_input_path", "")
	v.SetDefault("schedule_output_path", "")

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	return &Config{
		Convert: Convert{
			Format:        v.GetString("FORMAT"),
			DedupMode:     v.GetString("DEDUP_MODE"),
			TagsMode:      v.GetString("TAGS_MODE"),
			IncludeNotes:  v.GetBool("INCLUDE_NOTES"),
			MaxNoteLength: v.GetInt("MAX_NOTE_LENGTH"),
		},
		Log: Log{
			Level:  v.GetString("LOG_LEVEL"),
			Pretty: v.GetBool("LOG_PRETTY"),
		},
		History: History{
			Enabled:       v.GetBool("HISTORY_ENABLED"),
			DatabasePath:  v.GetString("HISTORY_DATABASE_PATH"),
			RetentionDays: v.GetInt("HISTORY_RETENTION_DAYS"),
		},
		Audit: Audit{
			Dir:           v.GetString("AUDIT_DIR"),
			RetentionDays: v.GetInt("AUDIT_RETENTION_DAYS"),
		},
		HTTP: HTTP{
			Port:                     v.GetInt32("PORT"),
			Host:                     v.GetString("HOST"),
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Schedule: Schedule{
			Cron:       v.GetString("SCHEDULE_CRON"),
			InputPath:  v.GetString("SCHEDULE_INPUT_PATH"),
			OutputPath: v.GetString("SCHEDULE_OUTPUT_PATH"),
		},
	}, nil
}

// HistoryPath returns the history database path, or "" when history is off.
func (c *Config) HistoryPath() string {
	if !c.History.Enabled {
		return ""
	}
	return c.History.DatabasePath
}
