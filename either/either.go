/*
Package either provides a sum type of two alternatives.

Haskell:

	type Either a b = Left a | Right b

Stand-in in Go is a struct with a discriminator, implementing the tagged union
protocol of package variant. If both alternatives share the same type, type
patterns cannot tell them apart; match by alternative index instead.
*/
package either

import (
	"fmt"
	"reflect"
)

// Tags of the alternatives of Either.
const (
	LeftTag = iota
	RightTag
)

// Either holds a value of type L or of type R. The zero value is Left(zero L).
type Either[L, R any] struct {
	discr      bool // true ⇒ right
	leftField  L
	rightField R
}

func Left[L, R any](l L) Either[L, R] {
	return Either[L, R]{leftField: l}
}

func Right[L, R any](r R) Either[L, R] {
	return Either[L, R]{discr: true, rightField: r}
}

func (e Either[L, R]) IsLeft() bool {
	return !e.discr
}

func (e Either[L, R]) IsRight() bool {
	return e.discr
}

// GetLeft returns the left value, if e is a Left.
func (e Either[L, R]) GetLeft() (L, bool) {
	return e.leftField, !e.discr
}

// GetRight returns the right value, if e is a Right.
func (e Either[L, R]) GetRight() (R, bool) {
	return e.rightField, e.discr
}

// Swap exchanges the alternatives.
func (e Either[L, R]) Swap() Either[R, L] {
	if e.discr {
		return Left[R, L](e.rightField)
	}
	return Right[R, L](e.leftField)
}

func (e Either[L, R]) String() string {
	if e.discr {
		return fmt.Sprintf("Right(%v)", e.rightField)
	}
	return fmt.Sprintf("Left(%v)", e.leftField)
}

// Fold applies fl or fr, depending on the alternative of e.
func Fold[L, R, T any](e Either[L, R], fl func(L) T, fr func(R) T) T {
	if e.discr {
		return fr(e.rightField)
	}
	return fl(e.leftField)
}

// --- Tagged union ----------------------------------------------------------

func (e Either[L, R]) Tag() int {
	if e.discr {
		return RightTag
	}
	return LeftTag
}

func (e Either[L, R]) Value() any {
	if e.discr {
		return e.rightField
	}
	return e.leftField
}

func (e Either[L, R]) Alternatives() []reflect.Type {
	return []reflect.Type{reflect.TypeFor[L](), reflect.TypeFor[R]()}
}
