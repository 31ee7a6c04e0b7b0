package core

import "errors"

// ErrOverflow is the panic value of Fallible.Unwrap on a flagged result.
var ErrOverflow = errors.New("arithmetic overflow")

// Fallible is a value paired with an overflow flag.
//
// When Overflow is false, Value is the exact result. When Overflow is true,
// Value is still well defined: the wrapped result, or the sentinel quotient
// and remainder of a division by zero.
type Fallible[T any] struct {
	Value    T
	Overflow bool
}

// Exact returns an unflagged result.
func Exact[T any](value T) Fallible[T] {
	return Fallible[T]{Value: value}
}

// Flagged returns value with the given overflow flag.
func Flagged[T any](value T, overflow bool) Fallible[T] {
	return Fallible[T]{Value: value, Overflow: overflow}
}

// Get returns the value and the overflow flag.
func (f Fallible[T]) Get() (T, bool) { return f.Value, f.Overflow }

// Unwrap returns the value, panicking with ErrOverflow if it is flagged.
func (f Fallible[T]) Unwrap() T {
	if f.Overflow {
		panic(ErrOverflow)
	}
	return f.Value
}

// Wrapped returns the value regardless of the flag.
func (f Fallible[T]) Wrapped() T { return f.Value }

// Or returns alternative when the result is flagged.
func (f Fallible[T]) Or(alternative T) T {
	if f.Overflow {
		return alternative
	}
	return f.Value
}

// Combine ORs another overflow flag into f.
func (f Fallible[T]) Combine(overflow bool) Fallible[T] {
	f.Overflow = f.Overflow || overflow
	return f
}

// Map transforms the value of f and keeps its flag.
func Map[T, U any](f Fallible[T], fn func(T) U) Fallible[U] {
	return Fallible[U]{Value: fn(f.Value), Overflow: f.Overflow}
}

// Then chains a fallible step after f; the flags of both steps are combined.
func Then[T, U any](f Fallible[T], fn func(T) Fallible[U]) Fallible[U] {
	return fn(f.Value).Combine(f.Overflow)
}
