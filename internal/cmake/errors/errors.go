package errors

// Package errors provides sentinel errors for build tool invocation.
// These enable consistent classification while keeping user-facing
// messages descriptive via wrapping.

import "errors"

var (
	// ErrBinaryNotFound indicates the cmake executable was not detected on PATH.
	ErrBinaryNotFound = errors.New("cmake binary not found")
	// ErrInvocationFailed indicates the cmake process could not be launched.
	ErrInvocationFailed = errors.New("cmake invocation failed")
)
