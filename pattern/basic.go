package pattern

import (
	"cmp"
	"fmt"
	"reflect"
	"strings"

	"github.com/cockroachdb/errors"
)

// nobind is embedded by patterns which bind nothing.
type nobind[S any] struct{}

func (nobind[S]) Bind(S) Tuple { return nil }
func (nobind[S]) Binds() []reflect.Type { return nil }

// --- Wildcard --------------------------------------------------------------

type wildcard[S any] struct {
	nobind[S]
}

// Any is the wildcard pattern. It matches every subject and binds nothing.
// A wildcard case terminates a case list.
func Any[S any]() Pattern[S] {
	return wildcard[S]{}
}

func (wildcard[S]) Match(S) bool { return true }
func (wildcard[S]) Kind() Kind { return KindWildcard }
func (wildcard[S]) String() string { return "_" }

// --- Literals --------------------------------------------------------------

type literal[S comparable] struct {
	nobind[S]
	v S
}

// Lit matches subjects equal to v.
func Lit[S comparable](v S) Pattern[S] {
	return literal[S]{v: v}
}

func (l literal[S]) Match(s S) bool { return s == l.v }
func (l literal[S]) Kind() Kind { return KindLiteral }
func (l literal[S]) Key() any { return l.v }
func (l literal[S]) String() string { return fmt.Sprintf("lit(%#v)", l.v) }

type foldLiteral[S ~string] struct {
	nobind[S]
	v S
}

// LitFold matches strings equal to v under Unicode case-folding.
func LitFold[S ~string](v S) Pattern[S] {
	return foldLiteral[S]{v: v}
}

func (l foldLiteral[S]) Match(s S) bool { return strings.EqualFold(string(s), string(l.v)) }
func (l foldLiteral[S]) Kind() Kind { return KindLiteral }
func (l foldLiteral[S]) String() string { return fmt.Sprintf("lit_ci(%q)", string(l.v)) }

type equiv[S any] struct {
	nobind[S]
	v any
}

// Equiv matches subjects loosely equal to v: numbers are equal if their values
// are, independent of their Go types, and strings are coerced to numbers if
// compared to one.
//
//	Equiv[any](1) matches int(1), 1.0, uint8(1) and "1"
//
func Equiv[S any](v any) Pattern[S] {
	return equiv[S]{v: v}
}

func (e equiv[S]) Match(s S) bool { return equal(any(s), e.v) }
func (e equiv[S]) Kind() Kind { return KindLiteral }
func (e equiv[S]) String() string { return fmt.Sprintf("equiv(%v)", e.v) }

// --- Relational patterns ---------------------------------------------------

type relation[S any] struct {
	nobind[S]
	desc string
	test func(S) bool
}

func (r relation[S]) Match(s S) bool { return r.test(s) }
func (r relation[S]) Kind() Kind { return KindRelational }
func (r relation[S]) String() string { return r.desc }

func Eq[S comparable](v S) Pattern[S] {
	return relation[S]{desc: fmt.Sprintf("== %v", v), test: func(s S) bool { return s == v }}
}

func Ne[S comparable](v S) Pattern[S] {
	return relation[S]{desc: fmt.Sprintf("!= %v", v), test: func(s S) bool { return s != v }}
}

func Lt[S cmp.Ordered](v S) Pattern[S] {
	return relation[S]{desc: fmt.Sprintf("< %v", v), test: func(s S) bool { return s < v }}
}

func Le[S cmp.Ordered](v S) Pattern[S] {
	return relation[S]{desc: fmt.Sprintf("<= %v", v), test: func(s S) bool { return s <= v }}
}

func Gt[S cmp.Ordered](v S) Pattern[S] {
	return relation[S]{desc: fmt.Sprintf("> %v", v), test: func(s S) bool { return s > v }}
}

func Ge[S cmp.Ordered](v S) Pattern[S] {
	return relation[S]{desc: fmt.Sprintf(">= %v", v), test: func(s S) bool { return s >= v }}
}

// Between matches subjects within [lo, hi], with bounds b deciding which ends
// of the interval are included.
func Between[S cmp.Ordered](lo, hi S, b Bounds) Pattern[S] {
	return relation[S]{
		desc: b.format(lo, hi),
		test: func(s S) bool { return within(s, lo, hi, b) },
	}
}

// Bounds tells which ends of an interval are included.
type Bounds uint8

const (
	Closed     Bounds = iota // [lo, hi]
	Open                     // (lo, hi)
	OpenClosed               // (lo, hi]
	ClosedOpen               // [lo, hi)
)

func (b Bounds) lowIncluded() bool { return b == Closed || b == ClosedOpen }
func (b Bounds) highIncluded() bool { return b == Closed || b == OpenClosed }

func (b Bounds) format(lo, hi any) string {
	l, r := "(", ")"
	if b.lowIncluded() {
		l = "["
	}
	if b.highIncluded() {
		r = "]"
	}
	return fmt.Sprintf("in %s%v, %v%s", l, lo, hi, r)
}

func within[T cmp.Ordered](x, lo, hi T, b Bounds) bool {
	if x < lo || x > hi {
		return false
	}
	if x == lo && !b.lowIncluded() {
		return false
	}
	if x == hi && !b.highIncluded() {
		return false
	}
	return x == x // false for NaN
}

// --- Predicates ------------------------------------------------------------

type predicate[S any] struct {
	nobind[S]
	f func(S) bool
}

// Pred matches subjects for which f is true. f must be free of side effects.
func Pred[S any](f func(S) bool) Pattern[S] {
	return predicate[S]{f: f}
}

func (p predicate[S]) Match(s S) bool { return p.f(s) }
func (p predicate[S]) Kind() Kind { return KindPredicate }
func (p predicate[S]) String() string { return "pred" }

func (p predicate[S]) Validate() error {
	if p.f == nil {
		return errors.Wrap(ErrPattern, "nil predicate")
	}
	return nil
}
