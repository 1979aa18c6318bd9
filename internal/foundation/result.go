// Package foundation provides small generic building blocks shared across
// targetcheck: an explicit Result type for fallible service boundaries and an
// Option type for values that may legitimately be absent.
package foundation

import "fmt"

// Result represents either a success value or an error, never both.
// It is used at service boundaries where the caller must handle both
// outcomes explicitly instead of threading (T, error) tuples through
// intermediate layers.
type Result[T any, E error] struct {
	value T
	err   E
	isOk  bool
}

// Ok constructs a successful Result carrying value.
func Ok[T any, E error](value T) Result[T, E] {
	return Result[T, E]{value: value, isOk: true}
}

// Err constructs a failed Result carrying err.
func Err[T any, E error](err E) Result[T, E] {
	return Result[T, E]{err: err, isOk: false}
}

// IsOk reports whether the Result holds a success value.
func (r Result[T, E]) IsOk() bool {
	return r.isOk
}

// IsErr reports whether the Result holds an error.
func (r Result[T, E]) IsErr() bool {
	return !r.isOk
}

// Unwrap returns the success value and panics if the Result is an error.
// Callers should prefer Match or UnwrapOr unless success was already checked.
func (r Result[T, E]) Unwrap() T {
	if !r.isOk {
		panic(fmt.Sprintf("called Unwrap on an error Result: %v", r.err))
	}
	return r.value
}

// UnwrapErr returns the error and panics if the Result is a success.
func (r Result[T, E]) UnwrapErr() E {
	if r.isOk {
		panic("called UnwrapErr on a success Result")
	}
	return r.err
}

// UnwrapOr returns the success value, or fallback if the Result is an error.
func (r Result[T, E]) UnwrapOr(fallback T) T {
	if !r.isOk {
		return fallback
	}
	return r.value
}

// Match invokes exactly one of onOk or onErr depending on the Result state.
func (r Result[T, E]) Match(onOk func(T), onErr func(E)) {
	if r.isOk {
		onOk(r.value)
		return
	}
	onErr(r.err)
}

// ToTuple converts the Result back to the conventional (T, error) pair.
func (r Result[T, E]) ToTuple() (T, error) {
	if r.isOk {
		return r.value, nil
	}
	return r.value, r.err
}

// MapResult transforms the success value of a Result, leaving errors intact.
func MapResult[T, U any, E error](r Result[T, E], fn func(T) U) Result[U, E] {
	if r.isOk {
		return Ok[U, E](fn(r.value))
	}
	return Err[U, E](r.err)
}
