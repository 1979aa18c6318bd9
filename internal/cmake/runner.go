// Package cmake drives the external cmake binary and parses its target
// listing output. All invocation goes through the Runner interface so tests
// and alternative strategies can substitute the real binary.
package cmake

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"time"

	cerrors "git.home.luguber.info/inful/targetcheck/internal/cmake/errors"
	"git.home.luguber.info/inful/targetcheck/internal/logfields"
)

// DefaultTimeout bounds a single target-help invocation.
const DefaultTimeout = 30 * time.Second

// RunResult captures one completed cmake invocation. A populated RunResult
// means the process was launched; its own verdict (exit code, timeout) is
// data, not an error.
type RunResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
	TimedOut bool
}

// Runner abstracts how the target listing is obtained from the build tool.
// Implementations return an error only when the tool could not be invoked at
// all; a launched process that timed out or exited non-zero is reported
// through RunResult.
type Runner interface {
	TargetHelp(ctx context.Context, buildDir string) (RunResult, error)
}

// BinaryRunner invokes the cmake binary found on PATH.
type BinaryRunner struct {
	// Binary is the executable name or path, typically "cmake".
	Binary string
	// Timeout bounds each invocation; DefaultTimeout when zero.
	Timeout time.Duration
}

// NewBinaryRunner returns a runner for the given binary with the default timeout.
func NewBinaryRunner(binary string) *BinaryRunner {
	if binary == "" {
		binary = "cmake"
	}
	return &BinaryRunner{Binary: binary, Timeout: DefaultTimeout}
}

// TargetHelp runs `cmake --build <buildDir> --target help` and captures its
// output. The invocation is bounded by the configured timeout; expiry is
// reported via RunResult.TimedOut rather than an error.
func (r *BinaryRunner) TargetHelp(ctx context.Context, buildDir string) (RunResult, error) {
	binPath, err := exec.LookPath(r.Binary)
	if err != nil {
		return RunResult{}, fmt.Errorf("%w: %w", cerrors.ErrBinaryNotFound, err)
	}

	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	// #nosec G204 -- binPath is from exec.LookPath, buildDir from layout resolution
	cmd := exec.CommandContext(runCtx, binPath, "--build", buildDir, "--target", "help")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	// Children spawned by the tool can inherit the output pipes; without a
	// wait delay they would stall Wait past the deadline after the kill.
	cmd.WaitDelay = time.Second

	slog.Debug("Invoking build tool", logfields.Binary(binPath), logfields.BuildDir(buildDir))

	if err := cmd.Start(); err != nil {
		return RunResult{}, fmt.Errorf("%w: %w", cerrors.ErrInvocationFailed, err)
	}

	waitErr := cmd.Wait()

	// Distinguish our own timeout expiring from the caller cancelling.
	if runCtx.Err() == context.DeadlineExceeded && ctx.Err() == nil {
		return RunResult{
			Stdout:   stdout.String(),
			Stderr:   stderr.String(),
			ExitCode: -1,
			TimedOut: true,
		}, nil
	}
	if ctx.Err() != nil {
		return RunResult{}, fmt.Errorf("%w: %w", cerrors.ErrInvocationFailed, ctx.Err())
	}

	exitCode := 0
	if waitErr != nil {
		if ee, ok := waitErr.(*exec.ExitError); ok && ee.ProcessState != nil {
			exitCode = ee.ProcessState.ExitCode()
		} else {
			return RunResult{}, fmt.Errorf("%w: %w", cerrors.ErrInvocationFailed, waitErr)
		}
	} else if cmd.ProcessState != nil {
		exitCode = cmd.ProcessState.ExitCode()
	}

	return RunResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
		TimedOut: false,
	}, nil
}
