package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mrlokans/wallabag2karakeep/internal/logger"
	"github.com/mrlokans/wallabag2karakeep/internal/services"
)

var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// ValidateCronSchedule checks a standard five-field cron expression.
func ValidateCronSchedule(schedule string) error {
	_, err := cronParser.Parse(schedule)
	return err
}

// JobRunner is satisfied by services.Runner.
type JobRunner interface {
	RunFile(job services.FileJob) (*services.Report, error)
}

// ConversionScheduler re-runs one conversion job on a cron schedule.
// A failed run is logged and the next one happens as planned.
type ConversionScheduler struct {
	runner   JobRunner
	job      services.FileJob
	schedule string
	log      logger.Logger

	cron      *cron.Cron
	entryID   cron.EntryID
	mu        sync.RWMutex
	isRunning bool
}

func NewConversionScheduler(runner JobRunner, job services.FileJob, schedule string, log logger.Logger) *ConversionScheduler {
	job.Trigger = services.TriggerSchedule
	return &ConversionScheduler{
		runner:   runner,
		job:      job,
		schedule: schedule,
		log:      log,
		cron:     cron.New(cron.WithParser(cronParser)),
	}
}

// Start registers the job and starts the cron loop. The scheduler stops
// when ctx is cancelled.
func (s *ConversionScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if err := ValidateCronSchedule(s.schedule); err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", s.schedule, err)
	}

	entryID, err := s.cron.AddFunc(s.schedule, func() {
		_, _ = s.RunNow()
	})
	if err != nil {
		return fmt.Errorf("failed to schedule conversion job: %w", err)
	}
	s.entryID = entryID

	s.cron.Start()
	s.isRunning = true

	s.log.Info("Conversion scheduler started",
		logger.String("schedule", s.schedule),
		logger.String("input", s.job.InputPath),
		logger.String("output", s.job.OutputPath))

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return nil
}

// Stop waits for a running conversion to finish.
func (s *ConversionScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	done := s.cron.Stop()
	<-done.Done()
	s.cron.Remove(s.entryID)

	s.isRunning = false
	s.log.Info("Conversion scheduler stopped")
}

// RunNow runs the job once, outside of the schedule.
func (s *ConversionScheduler) RunNow() (*services.Report, error) {
	startTime := time.Now()

	report, err := s.runner.RunFile(s.job)
	if err != nil {
		s.log.Error("Scheduled conversion failed", logger.Error(err))
		return report, err
	}

	s.log.Infof("Scheduled conversion: converted %d, skipped %d in %v",
		report.Converted, report.Skipped(), time.Since(startTime).Round(time.Millisecond))
	return report, nil
}

func (s *ConversionScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// GetNextRunTime returns when the next conversion will occur.
func (s *ConversionScheduler) GetNextRunTime() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}

	for _, entry := range s.cron.Entries() {
		if entry.ID == s.entryID {
			t := entry.Next
			return &t
		}
	}
	return nil
}
