package inspect

import "errors"

var (
	// ErrBuildDirNotFound indicates the conventional build directory is
	// missing, so no inspection was attempted.
	ErrBuildDirNotFound = errors.New("build directory not found")
	// ErrToolUnavailable indicates the build tool could not be located or
	// launched. Distinct from a timeout, which is a reportable conclusion.
	ErrToolUnavailable = errors.New("build tool unavailable")
)
