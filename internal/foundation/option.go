package foundation

import "fmt"

// Option represents a value that may be absent. It replaces pointer-plus-nil
// conventions in places where absence is an ordinary outcome rather than an
// error, such as version control metadata outside a repository.
type Option[T any] struct {
	value  T
	isSome bool
}

// Some constructs an Option holding value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, isSome: true}
}

// None constructs an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether the Option holds a value.
func (o Option[T]) IsSome() bool {
	return o.isSome
}

// IsNone reports whether the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.isSome
}

// Unwrap returns the contained value and panics if the Option is empty.
func (o Option[T]) Unwrap() T {
	if !o.isSome {
		panic("called Unwrap on an empty Option")
	}
	return o.value
}

// UnwrapOr returns the contained value, or fallback if the Option is empty.
func (o Option[T]) UnwrapOr(fallback T) T {
	if !o.isSome {
		return fallback
	}
	return o.value
}

// Match invokes onSome with the value when present, otherwise onNone.
func (o Option[T]) Match(onSome func(T), onNone func()) {
	if o.isSome {
		onSome(o.value)
		return
	}
	onNone()
}

// FromPointer converts a possibly nil pointer into an Option.
func FromPointer[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// String renders the Option for logs and debugging output.
func (o Option[T]) String() string {
	if !o.isSome {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}
