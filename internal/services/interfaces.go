package services

import "github.com/mrlokans/wallabag2karakeep/internal/entities"

// RunRecorder stores the outcome of a run. Implemented by runs.Repository.
type RunRecorder interface {
	RecordRun(run *entities.ConversionRun) error
}

// ReportAuditor keeps a copy of a run report. Implemented by audit.Auditor.
type ReportAuditor interface {
	SaveJSON(id string, data any) (string, error)
}
