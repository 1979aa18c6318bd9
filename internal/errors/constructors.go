package errors

// Convenience functions for common error patterns

// Config errors

func ConfigNotFound(path string) *TargetCheckError {
	return New(CategoryConfig, SeverityFatal, "configuration file not found").
		WithContext("path", path)
}

func ConfigInvalid(path string, cause error) *TargetCheckError {
	return Wrap(cause, CategoryConfig, SeverityFatal, "configuration file invalid").
		WithContext("path", path)
}

func ValidationFailed(field, reason string) *TargetCheckError {
	return New(CategoryValidation, SeverityFatal, "validation failed").
		WithContext("field", field).
		WithContext("reason", reason)
}

// Layout errors

func BuildDirNotFound(dir string) *TargetCheckError {
	return New(CategoryFileSystem, SeverityFatal, "build directory not found").
		WithContext("build_dir", dir)
}

func LayoutError(operation string, cause error) *TargetCheckError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "project layout resolution failed").
		WithContext("operation", operation)
}

// Tool errors

func ToolUnavailable(binary string, cause error) *TargetCheckError {
	return Wrap(cause, CategoryTool, SeverityFatal, "build tool could not be invoked").
		WithContext("binary", binary)
}

func ToolFailed(exitCode int, cause error) *TargetCheckError {
	return Wrap(cause, CategoryTool, SeverityError, "build tool exited with failure").
		WithContext("exit_code", exitCode)
}

func InspectionError(cause error) *TargetCheckError {
	return Wrap(cause, CategoryInspection, SeverityFatal, "target inspection failed")
}

// Watch errors

func WatchError(message string, cause error) *TargetCheckError {
	return Wrap(cause, CategoryWatch, SeverityFatal, message)
}

// Internal errors

func InternalError(message string, cause error) *TargetCheckError {
	return Wrap(cause, CategoryInternal, SeverityFatal, message)
}
