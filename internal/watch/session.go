package watch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"git.home.luguber.info/inful/targetcheck/internal/inspect"
	"git.home.luguber.info/inful/targetcheck/internal/layout"
	"git.home.luguber.info/inful/targetcheck/internal/logfields"
	"git.home.luguber.info/inful/targetcheck/internal/metrics"
)

// Session drives continuous inspection: an initial pass, filesystem-triggered
// passes, and an optional fixed-interval schedule. Passes never overlap; a
// failing pass is reported and watching continues. Only context cancellation
// ends the session.
type Session struct {
	svc      *inspect.Service
	layout   layout.Layout
	recorder metrics.Recorder
	debounce time.Duration
	interval time.Duration
	paths    []string
	out      io.Writer

	mu sync.Mutex // serializes inspection passes
}

// NewSession creates a watch session over the given project layout.
func NewSession(svc *inspect.Service, lay layout.Layout) *Session {
	return &Session{
		svc:      svc,
		layout:   lay,
		recorder: metrics.NoopRecorder{},
		debounce: 500 * time.Millisecond,
		out:      os.Stdout,
	}
}

// WithRecorder replaces the metrics recorder (noop by default).
func (s *Session) WithRecorder(r metrics.Recorder) *Session {
	if r != nil {
		s.recorder = r
	}
	return s
}

// WithDebounce sets the filesystem event coalescing window.
func (s *Session) WithDebounce(d time.Duration) *Session {
	if d > 0 {
		s.debounce = d
	}
	return s
}

// WithInterval adds periodic re-inspection independent of filesystem
// activity. Zero leaves the schedule off.
func (s *Session) WithInterval(d time.Duration) *Session {
	s.interval = d
	return s
}

// WithPaths watches additional paths beyond the build directory. Relative
// paths are resolved against the project root.
func (s *Session) WithPaths(paths ...string) *Session {
	s.paths = append(s.paths, paths...)
	return s
}

// WithOutput redirects console output, mainly for tests.
func (s *Session) WithOutput(w io.Writer) *Session {
	if w != nil {
		s.out = w
		s.svc = s.svc.WithOutput(w)
	}
	return s
}

// Run blocks until ctx is cancelled.
func (s *Session) Run(ctx context.Context) error {
	buildDir := s.layout.BuildDir()

	fmt.Fprintf(s.out, "👀 Watching %s (debounce %v)\n\n", buildDir, s.debounce)

	s.runPass(ctx, metrics.TriggerInitial)

	watcher, err := NewWatcher(s.watchPaths(), s.debounce, func(cbCtx context.Context) {
		s.runPass(cbCtx, metrics.TriggerFSEvent)
	})
	if err != nil {
		return fmt.Errorf("failed to set up watch session: %w", err)
	}
	if err := watcher.Start(ctx); err != nil {
		watcher.Stop(ctx)
		return fmt.Errorf("failed to start watch session: %w", err)
	}
	defer watcher.Stop(context.Background())

	if s.interval > 0 {
		scheduler, err := NewScheduler()
		if err != nil {
			return fmt.Errorf("failed to set up periodic inspection: %w", err)
		}
		if _, err := scheduler.ScheduleEvery("periodic-inspection", s.interval, func() {
			s.runPass(ctx, metrics.TriggerSchedule)
		}); err != nil {
			return fmt.Errorf("failed to schedule periodic inspection: %w", err)
		}
		if err := scheduler.Start(ctx); err != nil {
			return err
		}
		defer scheduler.Stop(context.Background())
	}

	<-ctx.Done()
	slog.Info("Watch session shutting down")
	return nil
}

// runPass executes one inspection. Errors are reported, recorded, and
// swallowed; the session keeps watching.
func (s *Session) runPass(ctx context.Context, trigger metrics.TriggerLabel) {
	if ctx.Err() != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.recorder.IncWatchTrigger(trigger)

	s.svc.Inspect(ctx, s.layout.BuildDir()).Match(
		func(report inspect.Report) {
			s.recorder.ObserveInspectionDuration(report.Duration)
			s.recorder.IncInspectionOutcome(metrics.OutcomeFor(report.TimedOut, report.ToolExitCode))
			s.recorder.SetTargetCount(report.TargetCount())
		},
		func(err error) {
			s.recorder.IncInspectionOutcome(metrics.OutcomeError)
			slog.Error("Inspection pass failed",
				slog.String("trigger", string(trigger)), logfields.Error(err))
		},
	)

	fmt.Fprintln(s.out)
}

// watchPaths resolves the watch set: the build directory plus any extras.
func (s *Session) watchPaths() []string {
	paths := []string{s.layout.BuildDir()}
	for _, p := range s.paths {
		if !filepath.IsAbs(p) {
			p = filepath.Join(s.layout.Root, p)
		}
		paths = append(paths, p)
	}
	return paths
}
