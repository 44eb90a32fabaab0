package pattern

import (
	"fmt"
	"reflect"

	"github.com/cockroachdb/errors"
)

// Tuple holds the values bound by a pattern, in order.
type Tuple []any

// At returns the i-th value of t as an A. The value's type has to be
// assignable to A, which is what handler and predicate checks guarantee.
// A nil value yields the zero value of A.
func At[A any](t Tuple, i int) A {
	return Assign[A](t[i])
}

// Assign returns v as an A, following Go's assignability rules rather than
// requiring the dynamic type of v to be A. E.g., a []int is returned as a
// named slice type A with underlying type []int.
func Assign[A any](v any) A {
	if a, ok := v.(A); ok || v == nil {
		return a
	}
	var a A
	reflect.ValueOf(&a).Elem().Set(reflect.ValueOf(v))
	return a
}

// Kind classifies patterns.
type Kind uint8

const (
	KindWildcard Kind = iota
	KindLiteral
	KindRelational
	KindPredicate
	KindType  // test on the type of the active alternative
	KindAlt   // test on the index of the active alternative
	KindHas   // structural test on fields
	KindBind  // binds the subject
	KindGuard // predicate over bound values
	KindAnd
	KindOr
	KindNot
)

var kindNames = [...]string{"wildcard", "literal", "relational", "predicate", "type",
	"alt", "has", "bind", "guard", "and", "or", "not"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// Pattern is the capability set every pattern has.
type Pattern[S any] interface {
	Match(S) bool
	Bind(S) Tuple          // assumes Match(S) returned true
	Binds() []reflect.Type // static types of the bound values
	Kind() Kind
}

// --- Optional capabilities -------------------------------------------------

// Validator is implemented by patterns which may be misconfigured.
type Validator interface {
	Validate() error
}

// MatchBinder is implemented by patterns which have to compute their bindings
// to decide a match. MatchBind does both at once.
type MatchBinder[S any] interface {
	MatchBind(S) (Tuple, bool)
}

// Wrapper is implemented by patterns decorating another pattern, which
// decides which alternative of a tagged union they are tied to.
type Wrapper[S any] interface {
	Unwrap() Pattern[S]
}

// Keyed is implemented by literal patterns testing for equality with a
// comparable key.
type Keyed interface {
	Key() any
}

// Tie denotes the alternative of a tagged union a pattern is restricted to.
// Either Type or Index is set. Simple is true if the pattern tests for the
// alternative only, with no further sub-pattern.
type Tie struct {
	Type   reflect.Type
	Index  int
	Simple bool
}

// Tied is implemented by patterns which may only ever match one alternative of
// a tagged union. Tie returns false if the pattern turns out not to be tied.
type Tied interface {
	Tie() (Tie, bool)
}

// --- Errors ----------------------------------------------------------------

// ErrGuardArity is flagged if a guard predicate does not fit the number of
// values bound by its inner pattern.
var ErrGuardArity = errors.New("guard predicate does not fit arity of pattern")

// ErrPredicateSignature is flagged if a guard predicate cannot accept the
// types of values bound by its inner pattern.
var ErrPredicateSignature = errors.New("guard predicate does not fit bound types")

// ErrPattern is flagged for malformed patterns.
var ErrPattern = errors.New("malformed pattern")

// Validate reports configuration errors of p and of all patterns it is
// composed of.
func Validate[S any](p Pattern[S]) error {
	if p == nil {
		return errors.Wrap(ErrPattern, "nil pattern")
	}
	if v, ok := p.(Validator); ok {
		return v.Validate()
	}
	return nil
}

// Arity returns the number of values p binds.
func Arity[S any](p Pattern[S]) int {
	return len(p.Binds())
}

// TieOf returns the alternative p is tied to, looking through wrappers.
// Ties found beneath a wrapper are never simple.
func TieOf[S any](p Pattern[S]) (Tie, bool) {
	wrapped := false
	for p != nil {
		if t, ok := p.(Tied); ok {
			tie, ok := t.Tie()
			tie.Simple = tie.Simple && !wrapped
			return tie, ok
		}
		w, ok := p.(Wrapper[S])
		if !ok {
			break
		}
		p = w.Unwrap()
		wrapped = true
	}
	return Tie{}, false
}

// String returns a printable representation of p.
func String[S any](p Pattern[S]) string {
	if p == nil {
		return "nil"
	}
	if s, ok := p.(fmt.Stringer); ok {
		return s.String()
	}
	return p.Kind().String()
}

func combine(errs ...error) error {
	var err error
	for _, e := range errs {
		err = errors.CombineErrors(err, e)
	}
	return err
}
