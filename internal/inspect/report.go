package inspect

import (
	"time"

	"git.home.luguber.info/inful/targetcheck/internal/cmake"
)

// Report is the outcome of one inspection pass. It is constructed fresh per
// run and never persisted.
type Report struct {
	// RunID uniquely identifies this pass in logs and metrics.
	RunID string
	// BuildDir is the directory that was inspected.
	BuildDir string
	// Targets holds the parsed listing; empty when the tool produced no
	// recognizable lines, timed out, or failed.
	Targets cmake.TargetListing
	// Duration covers the tool invocation and parse.
	Duration time.Duration
	// TimedOut records that the invocation hit its deadline. The run still
	// concludes successfully; consumers decide how loudly to warn.
	TimedOut bool
	// ToolExitCode is the tool's own exit status; zero when clean. A
	// non-zero value is a reportable conclusion, fatal only under strict
	// caller policy.
	ToolExitCode int
}

// Clean reports whether the tool ran to completion with a zero exit status.
func (r Report) Clean() bool {
	return !r.TimedOut && r.ToolExitCode == 0
}

// TargetCount returns the number of parsed target names.
func (r Report) TargetCount() int {
	return len(r.Targets)
}
