// Package result provides a container that lets a service report a value,
// an error, or both at once without using the error return for expected
// failures.
package result

import "errors"

// ErrInvalidResult is the panic value raised when a Result that was not
// built by FromResult, FromError or FromPartial is dispatched.
var ErrInvalidResult = errors.New("result: neither value nor error is set")

type state uint8

const (
	stateInvalid state = iota
	stateSuccess
	stateError
	statePartial
)

// Result holds a value of type T, an error of type E, or both. The zero
// value is invalid.
type Result[T, E any] struct {
	value T
	err   E
	state state
}

// FromResult returns a successful Result.
func FromResult[T, E any](value T) Result[T, E] {
	return Result[T, E]{value: value, state: stateSuccess}
}

// FromError returns a failed Result.
func FromError[T, E any](err E) Result[T, E] {
	return Result[T, E]{err: err, state: stateError}
}

// FromPartial returns a Result carrying a usable value together with the
// error encountered while producing it.
func FromPartial[T, E any](value T, err E) Result[T, E] {
	return Result[T, E]{value: value, err: err, state: statePartial}
}

func (r Result[T, E]) IsSuccess() bool { return r.state == stateSuccess }
func (r Result[T, E]) IsError() bool   { return r.state == stateError }
func (r Result[T, E]) IsPartial() bool { return r.state == statePartial }

// Valid reports whether r was built by one of the constructors.
func (r Result[T, E]) Valid() bool { return r.state != stateInvalid }

// Value returns the value and whether one is present. Partial results carry
// a value.
func (r Result[T, E]) Value() (T, bool) {
	return r.value, r.state == stateSuccess || r.state == statePartial
}

// Err returns the error and whether one is present. Partial results carry
// an error.
func (r Result[T, E]) Err() (E, bool) {
	return r.err, r.state == stateError || r.state == statePartial
}

// Switch invokes onSuccess or onError and returns its result. A partial
// result goes to onSuccess; use SwitchPartial to handle it separately.
func Switch[T, E, R any](r Result[T, E], onSuccess func(T) R, onError func(E) R) R {
	switch r.state {
	case stateSuccess, statePartial:
		return onSuccess(r.value)
	case stateError:
		return onError(r.err)
	default:
		panic(ErrInvalidResult)
	}
}

// SwitchPartial is Switch with an extra handler for partial results. A nil
// onPartial behaves like Switch.
func SwitchPartial[T, E, R any](r Result[T, E], onSuccess func(T) R, onError func(E) R, onPartial func(T, E) R) R {
	if r.state == statePartial && onPartial != nil {
		return onPartial(r.value, r.err)
	}
	return Switch(r, onSuccess, onError)
}

// Match is the non-returning form of Switch.
func (r Result[T, E]) Match(onSuccess func(T), onError func(E)) {
	switch r.state {
	case stateSuccess, statePartial:
		onSuccess(r.value)
	case stateError:
		onError(r.err)
	default:
		panic(ErrInvalidResult)
	}
}

// MatchPartial is the non-returning form of SwitchPartial.
func (r Result[T, E]) MatchPartial(onSuccess func(T), onError func(E), onPartial func(T, E)) {
	if r.state == statePartial && onPartial != nil {
		onPartial(r.value, r.err)
		return
	}
	r.Match(onSuccess, onError)
}
