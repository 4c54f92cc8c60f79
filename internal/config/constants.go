package config

const (
	// EnvPrefix is prepended to every environment variable, e.g. W2K_FORMAT.
	EnvPrefix = "W2K"

	// DefaultDatabasePath is where the run history lives when enabled.
	DefaultDatabasePath = "./wallabag2karakeep.db"

	DefaultMaxNoteLength = 5000

	// DefaultRetentionDays applies to audit reports and history rows.
	DefaultRetentionDays = 30
)
