package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID       = "run_id"
	KeyProjectRoot = "project_root"
	KeyBuildDir    = "build_dir"
	KeyBinary      = "binary"
	KeyTarget      = "target"
	KeyTargetCount = "target_count"
	KeyExitCode    = "exit_code"
	KeyStage       = "stage"
	KeyDurationMS  = "duration_ms"
	KeyScheduleID  = "schedule_id"
	KeySchedule    = "schedule_name"
	KeyPath        = "path"
	KeyVersion     = "version"
	KeyError       = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr        { return slog.String(KeyRunID, id) }
func ProjectRoot(p string) slog.Attr   { return slog.String(KeyProjectRoot, p) }
func BuildDir(d string) slog.Attr      { return slog.String(KeyBuildDir, d) }
func Binary(b string) slog.Attr        { return slog.String(KeyBinary, b) }
func Target(t string) slog.Attr        { return slog.String(KeyTarget, t) }
func TargetCount(n int) slog.Attr      { return slog.Int(KeyTargetCount, n) }
func ExitCode(code int) slog.Attr      { return slog.Int(KeyExitCode, code) }
func Stage(name string) slog.Attr      { return slog.String(KeyStage, name) }
func DurationMS(ms float64) slog.Attr  { return slog.Float64(KeyDurationMS, ms) }
func ScheduleID(id string) slog.Attr   { return slog.String(KeyScheduleID, id) }
func ScheduleName(n string) slog.Attr  { return slog.String(KeySchedule, n) }
func Path(p string) slog.Attr          { return slog.String(KeyPath, p) }
func Version(v string) slog.Attr       { return slog.String(KeyVersion, v) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
