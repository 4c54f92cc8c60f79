// Package database stores the history of conversion runs in SQLite.
//
// # Layout
//
//	database/
//	├── database.go      # Connection setup and migrations
//	└── runs/            # Conversion run history
//
// # Usage
//
//	db, err := database.NewDatabase("./wallabag2karakeep.db")
//	runsRepo := runs.NewRepository(db.DB)
//	recent, err := runsRepo.ListRuns(20)
//
// runs.Repository implements services.RunRecorder.
package database
