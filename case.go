package pmatch

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/npillmayer/pmatch/pattern"
)

// form tells how a handler takes its arguments.
type form uint8

const (
	formNone    form = iota // no arguments
	formSubject             // the subject
	formArgs                // the values bound by the pattern
)

// Case pairs a pattern with a handler producing values of type R.
// Cases are created by Do, Value, With, Then1, Then2, Then3 and Then, and
// are immutable.
type Case[S, R any] struct {
	pat     pattern.Pattern[S]
	form    form
	zero    func() R
	subject func(S) R
	args    func(pattern.Tuple) R
	handler string // printable description of the handler
	err     error
}

// Pattern returns the pattern of c.
func (c Case[S, R]) Pattern() pattern.Pattern[S] {
	return c.pat
}

func (c Case[S, R]) isWildcard() bool {
	return c.pat != nil && c.pat.Kind() == pattern.KindWildcard
}

// fire calls the handler. t holds the values bound by the pattern if the
// handler takes them.
func (c *Case[S, R]) fire(s S, t pattern.Tuple) R {
	switch c.form {
	case formNone:
		return c.zero()
	case formSubject:
		return c.subject(s)
	}
	return c.args(t)
}

func (c Case[S, R]) String() string {
	p := "<nil>"
	if c.pat != nil {
		p = pattern.String(c.pat)
	}
	return p + " → " + c.handler
}

// --- Case constructors -----------------------------------------------------

// Do creates a case calling fn if p matches. p must not bind values.
// The pattern's bindings are never computed.
func Do[S, R any](p pattern.Pattern[S], fn func() R) Case[S, R] {
	return Case[S, R]{
		pat:     p,
		form:    formNone,
		zero:    fn,
		handler: "func()",
		err:     checkHandler(p, fn == nil),
	}
}

// Value creates a case producing v if p matches, ignoring whatever p binds.
// The pattern's bindings are never computed.
func Value[S, R any](p pattern.Pattern[S], v R) Case[S, R] {
	c := Case[S, R]{
		pat:     p,
		form:    formNone,
		zero:    Const(v),
		handler: fmt.Sprintf("value %v", v),
	}
	if p == nil {
		c.err = errors.Wrap(pattern.ErrPattern, "nil pattern")
	}
	return c
}

// With creates a case calling fn with the subject if p matches. p must not
// bind values.
func With[S, R any](p pattern.Pattern[S], fn func(S) R) Case[S, R] {
	return Case[S, R]{
		pat:     p,
		form:    formSubject,
		subject: fn,
		handler: fmt.Sprintf("func(%v)", reflect.TypeFor[S]()),
		err:     checkHandler(p, fn == nil),
	}
}

// Then1 creates a case calling fn with the single value p binds.
func Then1[S, A, R any](p pattern.Pattern[S], fn func(A) R) Case[S, R] {
	params := []reflect.Type{reflect.TypeFor[A]()}
	return Case[S, R]{
		pat:  p,
		form: formArgs,
		args: func(t pattern.Tuple) R {
			return fn(pattern.At[A](t, 0))
		},
		handler: signature(params),
		err:     checkHandler(p, fn == nil, params...),
	}
}

// Then2 creates a case calling fn with the two values p binds.
func Then2[S, A, B, R any](p pattern.Pattern[S], fn func(A, B) R) Case[S, R] {
	params := []reflect.Type{reflect.TypeFor[A](), reflect.TypeFor[B]()}
	return Case[S, R]{
		pat:  p,
		form: formArgs,
		args: func(t pattern.Tuple) R {
			return fn(pattern.At[A](t, 0), pattern.At[B](t, 1))
		},
		handler: signature(params),
		err:     checkHandler(p, fn == nil, params...),
	}
}

// Then3 creates a case calling fn with the three values p binds.
func Then3[S, A, B, C, R any](p pattern.Pattern[S], fn func(A, B, C) R) Case[S, R] {
	params := []reflect.Type{reflect.TypeFor[A](), reflect.TypeFor[B](), reflect.TypeFor[C]()}
	return Case[S, R]{
		pat:  p,
		form: formArgs,
		args: func(t pattern.Tuple) R {
			return fn(pattern.At[A](t, 0), pattern.At[B](t, 1), pattern.At[C](t, 2))
		},
		handler: signature(params),
		err:     checkHandler(p, fn == nil, params...),
	}
}

// Then creates a case calling fn with the values p binds. fn may be any
// function taking parameters the bound values are assignable to, and returning
// a single value assignable to R. This is checked when the match expression is
// built.
func Then[S, R any](p pattern.Pattern[S], fn any) Case[S, R] {
	c := Case[S, R]{pat: p, form: formArgs}
	fv := reflect.ValueOf(fn)
	if fv.Kind() != reflect.Func || fv.IsNil() {
		c.handler = fmt.Sprintf("%T", fn)
		c.err = errors.Wrapf(ErrHandlerSignature, "handler is not a function: %T", fn)
		return c
	}
	ft := fv.Type()
	c.handler = ft.String()
	params := make([]reflect.Type, ft.NumIn())
	for i := range params {
		params[i] = ft.In(i)
	}
	c.err = checkHandler(p, false, params...)
	if c.err == nil && (ft.IsVariadic() || ft.NumOut() != 1 || !ft.Out(0).AssignableTo(reflect.TypeFor[R]())) {
		c.err = errors.Wrapf(ErrHandlerSignature, "handler %v does not return %v", ft, reflect.TypeFor[R]())
	}
	c.args = func(t pattern.Tuple) R {
		in := make([]reflect.Value, len(t))
		for i, v := range t {
			if v == nil {
				in[i] = reflect.Zero(params[i])
			} else {
				in[i] = reflect.ValueOf(v)
			}
		}
		out := fv.Call(in)[0]
		if out.Kind() == reflect.Interface && out.IsNil() {
			var zero R
			return zero
		}
		return pattern.Assign[R](out.Interface())
	}
	return c
}

// --- Fallback --------------------------------------------------------------

// Fallback is called if no case of a match expression matches.
type Fallback[S, R any] struct {
	call    func(S) R
	handler string
}

// Else creates a fallback calling fn with the subject.
func Else[S, R any](fn func(S) R) Fallback[S, R] {
	return Fallback[S, R]{call: fn, handler: fmt.Sprintf("func(%v)", reflect.TypeFor[S]())}
}

// ElseDo creates a fallback calling fn.
func ElseDo[S, R any](fn func() R) Fallback[S, R] {
	fb := Fallback[S, R]{handler: "func()"}
	if fn != nil {
		fb.call = Ignore[S](fn)
	}
	return fb
}

// ElseValue creates a fallback producing v.
func ElseValue[S, R any](v R) Fallback[S, R] {
	return Fallback[S, R]{call: Ignore[S](Const(v)), handler: fmt.Sprintf("value %v", v)}
}

// --- Helpers ---------------------------------------------------------------

func signature(params []reflect.Type) string {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.String()
	}
	return "func(" + strings.Join(names, ", ") + ")"
}

// checkHandler checks that a handler with parameter types params accepts the
// values bound by p.
func checkHandler[S any](p pattern.Pattern[S], nilHandler bool, params ...reflect.Type) error {
	if p == nil {
		return errors.Wrap(pattern.ErrPattern, "nil pattern")
	}
	if nilHandler {
		return errors.Wrap(ErrHandlerSignature, "nil handler")
	}
	if err := pattern.Validate(p); err != nil {
		return err
	}
	binds := p.Binds()
	if len(binds) != len(params) {
		return errors.Wrapf(ErrHandlerSignature, "pattern %s binds %d values, handler takes %d",
			pattern.String(p), len(binds), len(params))
	}
	for i, b := range binds {
		if !b.AssignableTo(params[i]) {
			return errors.Wrapf(ErrHandlerSignature, "pattern %s binds %v at position %d, handler takes %v",
				pattern.String(p), b, i, params[i])
		}
	}
	return nil
}
