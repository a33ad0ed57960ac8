// Package scheduler runs background maintenance tasks on cron schedules.
package scheduler

import (
	"github.com/ecotrack-team/ecotrack/internal/logger"
	"github.com/robfig/cron/v3"
)

// Scheduler manages named cron tasks.
type Scheduler struct {
	cron *cron.Cron
}

// New creates a scheduler using the standard five-field cron format
// (descriptors like @hourly are accepted too).
func New() *Scheduler {
	c := cron.New(cron.WithParser(cron.NewParser(
		cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
	)))
	return &Scheduler{cron: c}
}

// AddTask registers a task under the given cron schedule. Task failures are
// logged and terminal for that run only.
func (s *Scheduler) AddTask(name, schedule string, fn func() error) error {
	_, err := s.cron.AddFunc(schedule, func() {
		if err := fn(); err != nil {
			logger.Log.Errorw("scheduled task failed", "task", name, "error", err)
			return
		}
		logger.Log.Infow("scheduled task completed", "task", name)
	})
	if err != nil {
		return err
	}

	logger.Log.Infow("scheduled task registered", "task", name, "schedule", schedule)
	return nil
}

// Start starts the scheduler in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops the scheduler and waits for running tasks to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
