/*
Package result provides a type for the result of a computation that may fail.

	type Result error value = Ok value | Err error

Result implements the tagged union protocol of package variant, with the
alternatives' payload types being T and error.
*/
package result

import (
	"fmt"
	"reflect"

	"github.com/npillmayer/pmatch/maybe"
)

// Tags of the alternatives of Result.
const (
	OkTag = iota
	ErrTag
)

// Result is either Ok(value) or Err(error). The zero value is Ok(zero T).
type Result[T any] struct {
	value T
	err   error
}

func Ok[T any](x T) Result[T] {
	return Result[T]{value: x}
}

// Err wraps a non-nil error. Err(nil) is Ok(zero T).
func Err[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// Of lifts a Go-style (value, error) pair.
func Of[T any](x T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(x)
}

// Get returns the Go-style (value, error) pair.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

func (r Result[T]) IsOk() bool {
	return r.err == nil
}

func (r Result[T]) WithDefault(def T) T {
	if r.err == nil {
		return r.value
	}
	return def
}

// ToMaybe forgets the error.
func (r Result[T]) ToMaybe() maybe.Maybe[T] {
	if r.err == nil {
		return maybe.Just(r.value)
	}
	return maybe.Nothing[T]()
}

func (r Result[T]) String() string {
	if r.err == nil {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}

func Map[T, S any](f func(T) S, r Result[T]) Result[S] {
	if r.err != nil {
		return Err[S](r.err)
	}
	return Ok(f(r.value))
}

func AndThen[T, S any](f func(T) Result[S], r Result[T]) Result[S] {
	if r.err != nil {
		return Err[S](r.err)
	}
	return f(r.value)
}

// MapError transforms the error of an Err.
func MapError[T any](f func(error) error, r Result[T]) Result[T] {
	if r.err != nil {
		return Err[T](f(r.err))
	}
	return r
}

// --- Tagged union ----------------------------------------------------------

func (r Result[T]) Tag() int {
	if r.err != nil {
		return ErrTag
	}
	return OkTag
}

func (r Result[T]) Value() any {
	if r.err != nil {
		return r.err
	}
	return r.value
}

func (r Result[T]) Alternatives() []reflect.Type {
	return []reflect.Type{reflect.TypeFor[T](), reflect.TypeFor[error]()}
}
