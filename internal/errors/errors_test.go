package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"
)

func TestTargetCheckError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *TargetCheckError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(CategoryConfig, SeverityFatal, "configuration invalid"),
			expected: "config (fatal): configuration invalid",
		},
		{
			name:     "error with cause",
			err:      Wrap(fmt.Errorf("file not found"), CategoryConfig, SeverityFatal, "failed to load config"),
			expected: "config (fatal): failed to load config: file not found",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := test.err.Error()
			if result != test.expected {
				t.Errorf("Error() = %q, want %q", result, test.expected)
			}
		})
	}
}

func TestTargetCheckError_WithContext(t *testing.T) {
	err := New(CategoryTool, SeverityWarning, "tool failed").
		WithContext("binary", "cmake").
		WithContext("exit_code", 2)

	if err.Context == nil {
		t.Fatal("Context should not be nil")
	}

	if err.Context["binary"] != "cmake" {
		t.Errorf("Context[binary] = %v, want cmake", err.Context["binary"])
	}

	if err.Context["exit_code"] != 2 {
		t.Errorf("Context[exit_code] = %v, want 2", err.Context["exit_code"])
	}
}

func TestIsCategory(t *testing.T) {
	configErr := New(CategoryConfig, SeverityFatal, "config error")
	toolErr := New(CategoryTool, SeverityWarning, "tool error")
	standardErr := fmt.Errorf("standard error")

	tests := []struct {
		name     string
		err      error
		category ErrorCategory
		expected bool
	}{
		{"config error matches config category", configErr, CategoryConfig, true},
		{"config error doesn't match tool category", configErr, CategoryTool, false},
		{"tool error matches tool category", toolErr, CategoryTool, true},
		{"standard error doesn't match any category", standardErr, CategoryConfig, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := IsCategory(test.err, test.category)
			if result != test.expected {
				t.Errorf("IsCategory() = %v, want %v", result, test.expected)
			}
		})
	}
}

func TestIsRetryable(t *testing.T) {
	retryableErr := Retryable(CategoryInspection, SeverityWarning, "timeout")
	nonRetryableErr := New(CategoryConfig, SeverityFatal, "invalid")
	standardErr := fmt.Errorf("standard error")

	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"retryable error", retryableErr, true},
		{"non-retryable error", nonRetryableErr, false},
		{"standard error", standardErr, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := IsRetryable(test.err)
			if result != test.expected {
				t.Errorf("IsRetryable() = %v, want %v", result, test.expected)
			}
		})
	}
}

func TestExitCodesAreBinary(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, nil)

	if code := adapter.ExitCodeFor(nil); code != 0 {
		t.Errorf("ExitCodeFor(nil) = %d, want 0", code)
	}

	// Every error class maps to 1; consumers branch on success/failure only.
	errs := []error{
		BuildDirNotFound("/proj/build"),
		ToolUnavailable("cmake", fmt.Errorf("not found")),
		ToolFailed(2, fmt.Errorf("exit status 2")),
		ConfigNotFound("targetcheck.yaml"),
		fmt.Errorf("plain error"),
	}
	for _, err := range errs {
		if code := adapter.ExitCodeFor(err); code != 1 {
			t.Errorf("ExitCodeFor(%v) = %d, want 1", err, code)
		}
	}
}

func TestFormatError(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, nil)

	t.Run("config errors show bare message", func(t *testing.T) {
		got := adapter.FormatError(ConfigNotFound("targetcheck.yaml"))
		want := "configuration file not found"
		if got != want {
			t.Errorf("FormatError() = %q, want %q", got, want)
		}
	})

	t.Run("other categories prefixed", func(t *testing.T) {
		got := adapter.FormatError(BuildDirNotFound("/proj/build"))
		want := "filesystem: build directory not found"
		if got != want {
			t.Errorf("FormatError() = %q, want %q", got, want)
		}
	})

	t.Run("verbose shows full error", func(t *testing.T) {
		verbose := NewCLIErrorAdapter(true, nil)
		err := ToolUnavailable("cmake", fmt.Errorf("not in PATH"))
		got := verbose.FormatError(err)
		want := err.Error()
		if got != want {
			t.Errorf("FormatError() = %q, want %q", got, want)
		}
	})
}

func TestConvenienceFunctions(t *testing.T) {
	t.Run("BuildDirNotFound", func(t *testing.T) {
		err := BuildDirNotFound("/proj/build")
		if err.Category != CategoryFileSystem {
			t.Errorf("Category = %v, want %v", err.Category, CategoryFileSystem)
		}
		if err.Severity != SeverityFatal {
			t.Errorf("Severity = %v, want %v", err.Severity, SeverityFatal)
		}
		if err.Context["build_dir"] != "/proj/build" {
			t.Errorf("Context[build_dir] = %v, want /proj/build", err.Context["build_dir"])
		}
	})

	t.Run("ToolUnavailable", func(t *testing.T) {
		cause := fmt.Errorf("executable not found")
		err := ToolUnavailable("cmake", cause)
		if err.Category != CategoryTool {
			t.Errorf("Category = %v, want %v", err.Category, CategoryTool)
		}
		if !stdErrors.Is(err, cause) {
			t.Errorf("Cause should match wrapped cause: %v", cause)
		}
	})

	t.Run("ValidationFailed", func(t *testing.T) {
		err := ValidationFailed("inspect.timeout", "not a duration")
		if err.Category != CategoryValidation {
			t.Errorf("Category = %v, want %v", err.Category, CategoryValidation)
		}
		if err.Context["field"] != "inspect.timeout" {
			t.Errorf("Context[field] = %v, want inspect.timeout", err.Context["field"])
		}
		if err.Context["reason"] != "not a duration" {
			t.Errorf("Context[reason] = %v, want not a duration", err.Context["reason"])
		}
	})
}
