package pattern

import (
	"fmt"
	"reflect"

	"github.com/cockroachdb/errors"
)

// Predicate tests the values bound by a pattern. Check is called once, when a
// guard is created, with the types the guarded pattern binds.
type Predicate interface {
	Check(binds []reflect.Type) error
	Test(Tuple) bool
}

type guard[S any] struct {
	inner Pattern[S]
	pred  Predicate
	err   error
}

// When guards inner with pred: the guard matches if inner matches and pred
// holds for the values inner binds. The guard binds the same values as inner.
//
// A predicate not fitting the values bound by inner, e.g. a single-value
// predicate over a pattern binding two values, is a configuration error
// reported by Validate.
func When[S any](inner Pattern[S], pred Predicate) Pattern[S] {
	g := guard[S]{inner: inner, pred: pred}
	switch {
	case inner == nil:
		g.err = errors.Wrap(ErrPattern, "guard of nil pattern")
	case pred == nil:
		g.err = errors.Wrap(ErrPattern, "guard without predicate")
	default:
		g.err = pred.Check(inner.Binds())
	}
	if g.err != nil {
		tracer().Debugf("guard %s: %v", g, g.err)
	}
	return g
}

func (g guard[S]) Match(s S) bool {
	_, ok := g.MatchBind(s)
	return ok
}

// MatchBind binds the values of the inner pattern once and tests them.
func (g guard[S]) MatchBind(s S) (Tuple, bool) {
	if g.err != nil {
		return nil, false
	}
	t, ok := MatchBind(g.inner, s)
	if !ok || !g.pred.Test(t) {
		return nil, false
	}
	return t, true
}

func (g guard[S]) Bind(s S) Tuple {
	return g.inner.Bind(s)
}

func (g guard[S]) Binds() []reflect.Type {
	if g.inner == nil {
		return nil
	}
	return g.inner.Binds()
}

func (g guard[S]) Kind() Kind { return KindGuard }
func (g guard[S]) Unwrap() Pattern[S] { return g.inner }

func (g guard[S]) Validate() error {
	if g.inner == nil {
		return g.err
	}
	return combine(g.err, Validate(g.inner))
}

func (g guard[S]) String() string {
	inner := "<nil>"
	if g.inner != nil {
		inner = String(g.inner)
	}
	if s, ok := g.pred.(fmt.Stringer); ok {
		return fmt.Sprintf("%s if %s", inner, s)
	}
	return inner + " if <pred>"
}

// --- Function predicates ---------------------------------------------------

type tuplePred struct {
	f func(Tuple) bool
}

// All creates a predicate over all values bound by a pattern.
func All(f func(Tuple) bool) Predicate {
	return tuplePred{f: f}
}

func (p tuplePred) Check([]reflect.Type) error {
	if p.f == nil {
		return errors.Wrap(ErrPattern, "nil predicate")
	}
	return nil
}

func (p tuplePred) Test(t Tuple) bool { return p.f(t) }
func (p tuplePred) String() string { return "all(…)" }

type unaryPred[A any] struct {
	f func(A) bool
}

// Test creates a predicate over the single value bound by a pattern.
func Test[A any](f func(A) bool) Predicate {
	return unaryPred[A]{f: f}
}

func (p unaryPred[A]) Check(binds []reflect.Type) error {
	if err := checkUnary(binds); err != nil {
		return err
	}
	if p.f == nil {
		return errors.Wrap(ErrPattern, "nil predicate")
	}
	if a := reflect.TypeFor[A](); !binds[0].AssignableTo(a) {
		return errors.Wrapf(ErrPredicateSignature, "predicate over %v, pattern binds %v", a, binds[0])
	}
	return nil
}

func (p unaryPred[A]) Test(t Tuple) bool {
	return p.f(At[A](t, 0))
}

func (p unaryPred[A]) String() string {
	return fmt.Sprintf("test(%v)", reflect.TypeFor[A]())
}

func checkUnary(binds []reflect.Type) error {
	if len(binds) != 1 {
		return errors.Wrapf(ErrGuardArity, "single-value predicate over pattern binding %d values", len(binds))
	}
	return nil
}

type funcPred struct {
	fn reflect.Value
}

// Fn creates a predicate from an arbitrary function fn, which has to accept the
// values bound by a pattern as parameters, and return a bool.
//
//	When(BindAs(Has(x, y)), Fn(func(x, y int) bool { return x < y }))
//
func Fn(fn any) Predicate {
	return funcPred{fn: reflect.ValueOf(fn)}
}

func (p funcPred) Check(binds []reflect.Type) error {
	if p.fn.Kind() != reflect.Func || p.fn.IsNil() {
		return errors.Wrapf(ErrPredicateSignature, "predicate is not a function: %v", p.fn.Kind())
	}
	ft := p.fn.Type()
	if ft.IsVariadic() || ft.NumOut() != 1 || ft.Out(0).Kind() != reflect.Bool {
		return errors.Wrapf(ErrPredicateSignature, "predicate has signature %v", ft)
	}
	if ft.NumIn() != len(binds) {
		return errors.Wrapf(ErrGuardArity, "predicate takes %d values, pattern binds %d", ft.NumIn(), len(binds))
	}
	for i, b := range binds {
		if !b.AssignableTo(ft.In(i)) {
			return errors.Wrapf(ErrPredicateSignature, "predicate parameter %d is %v, pattern binds %v",
				i, ft.In(i), b)
		}
	}
	return nil
}

func (p funcPred) Test(t Tuple) bool {
	ft := p.fn.Type()
	args := make([]reflect.Value, len(t))
	for i, v := range t {
		if v == nil {
			args[i] = reflect.Zero(ft.In(i))
		} else {
			args[i] = reflect.ValueOf(v)
		}
	}
	return p.fn.Call(args)[0].Bool()
}

func (p funcPred) String() string {
	if !p.fn.IsValid() {
		return "fn(nil)"
	}
	return fmt.Sprintf("fn(%v)", p.fn.Type())
}
