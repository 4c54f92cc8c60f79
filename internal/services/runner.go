package services

import (
	"errors"
	"fmt"

	"github.com/mrlokans/wallabag2karakeep/internal/exporters"
	"github.com/mrlokans/wallabag2karakeep/internal/logger"
	"github.com/mrlokans/wallabag2karakeep/internal/wallabag"
)

// ErrReadInput wraps every failure to load the input export.
var ErrReadInput = errors.New("failed to read input")

const (
	TriggerCLI      = "cli"
	TriggerHTTP     = "http"
	TriggerSchedule = "schedule"
)

// FileJob converts one export file into one output file.
type FileJob struct {
	InputPath  string
	OutputPath string
	Options    Options
	DryRun     bool
	Trigger    string
}

// Runner handles the common conversion workflow:
// read → deduplicate → convert → write → audit → record.
//
// The CLI, the HTTP handler and the scheduler all go through it so that
// every run ends up in the history and the audit directory the same way.
type Runner struct {
	reader   *wallabag.Reader
	service  *ConversionService
	recorder RunRecorder
	auditor  ReportAuditor
	log      logger.Logger
}

func NewRunner(reader *wallabag.Reader, service *ConversionService, log logger.Logger) *Runner {
	return &Runner{
		reader:  reader,
		service: service,
		log:     log,
	}
}

// WithHistory records every run through recorder.
func (r *Runner) WithHistory(recorder RunRecorder) *Runner {
	r.recorder = recorder
	return r
}

// WithAudit saves every run report through auditor.
func (r *Runner) WithAudit(auditor ReportAuditor) *Runner {
	r.auditor = auditor
	return r
}

// RunFile executes a FileJob. The report is returned even when the run
// fails so that callers can show how far it got.
func (r *Runner) RunFile(job FileJob) (*Report, error) {
	read, err := r.reader.ReadFile(job.InputPath)
	if err != nil {
		report := newReport(job.Options)
		r.describe(report, job)
		return report, r.finish(report, fmt.Errorf("%w: %w", ErrReadInput, err))
	}

	report, err := r.service.Convert(read, job.Options)
	r.describe(report, job)
	if err != nil {
		return report, r.finish(report, err)
	}

	if !job.DryRun {
		written, err := exporters.NewJSONExporter(job.OutputPath).Export(report.Items())
		if err != nil {
			return report, r.finish(report, err)
		}
		report.Written = &written
	}

	return report, r.finish(report, nil)
}

// RunBytes converts an export held in memory. Nothing is written; the
// caller decides what to do with report.Items().
func (r *Runner) RunBytes(data []byte, opts Options, trigger string) (*Report, error) {
	read, err := r.reader.Decode(data)
	if err != nil {
		report := newReport(opts)
		report.Trigger = trigger
		return report, r.finish(report, fmt.Errorf("%w: %w", ErrReadInput, err))
	}

	report, err := r.service.Convert(read, opts)
	report.Trigger = trigger
	return report, r.finish(report, err)
}

func (r *Runner) describe(report *Report, job FileJob) {
	report.Trigger = job.Trigger
	report.InputPath = job.InputPath
	report.OutputPath = job.OutputPath
	report.DryRun = job.DryRun
}

// finish stamps the outcome and stores the report. Failing to audit or
// record is logged but does not change the outcome of the run.
func (r *Runner) finish(report *Report, runErr error) error {
	report.finish(runErr)

	if r.auditor != nil {
		if filename, err := r.auditor.SaveJSON(report.RunID, report); err != nil {
			r.log.Error("Failed to save audit report", logger.Error(err))
		} else {
			r.log.Debugf("Saved audit report %s", filename)
		}
	}

	if r.recorder != nil {
		if err := r.recorder.RecordRun(report.ConversionRun()); err != nil {
			r.log.Error("Failed to record conversion run", logger.Error(err))
		}
	}

	return runErr
}
