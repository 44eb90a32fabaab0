/*
Package maybe provides an option type.

	type Maybe a = Nothing | Just a

Maybe is a tagged union with two alternatives and may be used as the subject
of a pmatch expression:

	pmatch.Cases[maybe.Maybe[int], string]().When(
		pmatch.Then1(pattern.As[maybe.Maybe[int], int](), strconv.Itoa),
		pmatch.Value(pattern.Any[maybe.Maybe[int]](), "-"),
	)
*/
package maybe

import (
	"fmt"
	"reflect"
)

// Tags of the alternatives of Maybe.
const (
	NothingTag = iota
	JustTag
)

// None is the payload of the Nothing alternative.
type None struct{}

// Maybe is either Nothing or Just a value. The zero value is Nothing.
type Maybe[T any] struct {
	value T
	just  bool
}

// Just wraps x.
func Just[T any](x T) Maybe[T] {
	return Maybe[T]{value: x, just: true}
}

// Nothing returns an empty Maybe.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// Get returns the wrapped value and true, or the zero value and false.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.just
}

// IsNothing is true for an empty Maybe.
func (m Maybe[T]) IsNothing() bool {
	return !m.just
}

func (m Maybe[T]) WithDefault(def T) T {
	if m.just {
		return m.value
	}
	return def
}

func (m Maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.just {
		return Just(f(m.value))
	}
	return m
}

func (m Maybe[T]) String() string {
	if m.just {
		return fmt.Sprintf("Just(%v)", m.value)
	}
	return "Nothing"
}

// --- Tagged union ----------------------------------------------------------

// Tag returns JustTag or NothingTag.
func (m Maybe[T]) Tag() int {
	if m.just {
		return JustTag
	}
	return NothingTag
}

// Value returns the payload of the active alternative: None{} for Nothing.
func (m Maybe[T]) Value() any {
	if m.just {
		return m.value
	}
	return None{}
}

// Alternatives lists the payload types, indexed by tag.
func (m Maybe[T]) Alternatives() []reflect.Type {
	return []reflect.Type{reflect.TypeFor[None](), reflect.TypeFor[T]()}
}

// ---------------------------------------------------------------------------

func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	if v, ok := x.Get(); ok {
		return f(v)
	}
	return Nothing[S]()
}

func Map[T, S any](f func(T) S, x Maybe[T]) Maybe[S] {
	if v, ok := x.Get(); ok {
		return Just(f(v))
	}
	return Nothing[S]()
}
