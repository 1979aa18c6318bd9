package watch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"

	"git.home.luguber.info/inful/targetcheck/internal/logfields"
)

// Scheduler runs periodic inspection passes alongside the filesystem
// watcher, so a quiet tree still gets re-checked.
type Scheduler struct {
	scheduler gocron.Scheduler
}

// NewScheduler creates a stopped scheduler.
func NewScheduler() (*Scheduler, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}
	return &Scheduler{scheduler: s}, nil
}

// Start begins executing scheduled jobs.
func (s *Scheduler) Start(ctx context.Context) error {
	s.scheduler.Start()
	slog.Debug("Scheduler started")
	return nil
}

// Stop shuts the scheduler down, waiting for running jobs to finish.
func (s *Scheduler) Stop(ctx context.Context) error {
	if err := s.scheduler.Shutdown(); err != nil {
		return fmt.Errorf("failed to shut down scheduler: %w", err)
	}
	slog.Debug("Scheduler stopped")
	return nil
}

// ScheduleEvery registers a task to run at a fixed interval and returns the
// job ID.
func (s *Scheduler) ScheduleEvery(name string, interval time.Duration, task func()) (string, error) {
	if interval <= 0 {
		return "", fmt.Errorf("interval must be positive, got %v", interval)
	}

	job, err := s.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(task),
		gocron.WithName(name),
	)
	if err != nil {
		return "", fmt.Errorf("failed to schedule job %q: %w", name, err)
	}

	slog.Info("Scheduled periodic job",
		logfields.ScheduleID(job.ID().String()),
		logfields.ScheduleName(name),
		slog.Duration("interval", interval))

	return job.ID().String(), nil
}
