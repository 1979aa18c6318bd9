// Package inspect implements the core build-target inspection pass: verify
// the conventional build directory, obtain the tool's target listing, and
// report the result.
package inspect

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/targetcheck/internal/cmake"
	"git.home.luguber.info/inful/targetcheck/internal/foundation"
	"git.home.luguber.info/inful/targetcheck/internal/logfields"
)

// Service runs inspection passes. Human-readable progress goes to the
// configured writer (stdout by default); structured diagnostics go to slog.
type Service struct {
	runner cmake.Runner
	out    io.Writer
}

// NewService creates an inspection service backed by the given runner.
func NewService(runner cmake.Runner) *Service {
	return &Service{
		runner: runner,
		out:    os.Stdout,
	}
}

// WithOutput redirects human-readable progress, mainly for tests.
func (s *Service) WithOutput(w io.Writer) *Service {
	if w != nil {
		s.out = w
	}
	return s
}

// Inspect performs one pass against buildDir. The error arm is reserved for
// unrecoverable preconditions (missing build directory, unlaunchable tool);
// a timeout or a failing tool exit is a reportable conclusion carried in the
// Report. Passes are independent and idempotent: re-running against an
// unchanged tree yields the same listing.
func (s *Service) Inspect(ctx context.Context, buildDir string) foundation.Result[Report, error] {
	runID := uuid.NewString()
	start := time.Now()

	slog.Debug("Starting inspection pass",
		logfields.RunID(runID), logfields.BuildDir(buildDir))

	info, err := os.Stat(buildDir)
	if err != nil || !info.IsDir() {
		fmt.Fprintf(s.out, "❌ Build directory not found: %s\n", buildDir)
		return foundation.Err[Report](fmt.Errorf("%w: %s", ErrBuildDirNotFound, buildDir))
	}

	res, err := s.runner.TargetHelp(ctx, buildDir)
	if err != nil {
		return foundation.Err[Report](fmt.Errorf("%w: %w", ErrToolUnavailable, err))
	}

	report := Report{
		RunID:        runID,
		BuildDir:     buildDir,
		Duration:     time.Since(start),
		TimedOut:     res.TimedOut,
		ToolExitCode: res.ExitCode,
	}

	switch {
	case res.TimedOut:
		fmt.Fprintln(s.out, "⚠️  Timeout while checking targets")
		slog.Warn("Inspection timed out",
			logfields.RunID(runID), logfields.BuildDir(buildDir))

	case res.ExitCode != 0:
		fmt.Fprintf(s.out, "⚠️  Could not list targets (tool exited with %d)\n", res.ExitCode)
		slog.Warn("Build tool exited with failure",
			logfields.RunID(runID), logfields.ExitCode(res.ExitCode))

	default:
		report.Targets = cmake.ParseTargetListing(res.Stdout)
		fmt.Fprintln(s.out, "✅ Available targets:")
		for _, target := range report.Targets {
			fmt.Fprintf(s.out, "   - %s\n", target)
		}
	}

	slog.Debug("Inspection pass finished",
		logfields.RunID(runID),
		logfields.TargetCount(report.TargetCount()),
		logfields.DurationMS(float64(report.Duration.Milliseconds())))

	return foundation.Ok[Report, error](report)
}
