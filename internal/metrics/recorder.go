package metrics

import "time"

// OutcomeLabel enumerates inspection result categories for counters.
type OutcomeLabel string

const (
	OutcomeSuccess    OutcomeLabel = "success"
	OutcomeTimeout    OutcomeLabel = "timeout"
	OutcomeToolFailed OutcomeLabel = "tool_failed"
	OutcomeError      OutcomeLabel = "error"
)

// TriggerLabel enumerates what caused a watch-mode inspection pass.
type TriggerLabel string

const (
	TriggerInitial  TriggerLabel = "initial"
	TriggerFSEvent  TriggerLabel = "fs_event"
	TriggerSchedule TriggerLabel = "schedule"
)

// Recorder defines observability hooks for inspection metrics. Implementations
// may forward to Prometheus, OpenTelemetry, etc. All methods must be safe on
// the zero value so NoopRecorder can be injected unconditionally.
type Recorder interface {
	ObserveInspectionDuration(d time.Duration)
	IncInspectionOutcome(outcome OutcomeLabel)
	SetTargetCount(n int)
	IncWatchTrigger(trigger TriggerLabel)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveInspectionDuration(time.Duration) {}
func (NoopRecorder) IncInspectionOutcome(OutcomeLabel)       {}
func (NoopRecorder) SetTargetCount(int)                      {}
func (NoopRecorder) IncWatchTrigger(TriggerLabel)            {}

// OutcomeFor classifies a finished pass for the outcome counter.
func OutcomeFor(timedOut bool, toolExitCode int) OutcomeLabel {
	switch {
	case timedOut:
		return OutcomeTimeout
	case toolExitCode != 0:
		return OutcomeToolFailed
	default:
		return OutcomeSuccess
	}
}
