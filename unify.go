package pmatch

import (
	"reflect"

	"github.com/cockroachdb/errors"
	"github.com/npillmayer/pmatch/either"
)

// Void is the result type of statement-style match expressions, whose handlers
// are called for their side effects only. See Statements.
type Void struct{}

func isVoid[R any]() bool {
	return reflect.TypeFor[R]() == reflect.TypeFor[Void]()
}

// Lift converts the results of case c with conv, so that handlers producing
// different types can be combined into one match expression.
//
//	pmatch.Cases[int, float64]().When(
//		pmatch.Lift(pmatch.Value(pattern.Lit(0), 0), intToFloat),
//		…
//
func Lift[S, A, B any](c Case[S, A], conv func(A) B) Case[S, B] {
	l := Case[S, B]{pat: c.pat, form: c.form, handler: c.handler, err: c.err}
	if conv == nil {
		l.err = errors.CombineErrors(l.err, errors.Wrap(ErrHandlerSignature, "nil conversion"))
		return l
	}
	switch c.form {
	case formNone:
		if c.zero != nil {
			l.zero = func() B { return conv(c.zero()) }
		}
	case formSubject:
		if c.subject != nil {
			l.subject = Compose(c.subject, conv)
		}
	case formArgs:
		if c.args != nil {
			l.args = Compose(c.args, conv)
		}
	}
	return l
}

// LiftElse converts the results of fallback fb with conv.
func LiftElse[S, A, B any](fb Fallback[S, A], conv func(A) B) Fallback[S, B] {
	l := Fallback[S, B]{handler: fb.handler}
	if fb.call != nil && conv != nil {
		l.call = Compose(fb.call, conv)
	}
	return l
}

// AsLeft converts the results of case c into the left alternative of an Either.
// The type of the right alternative has to be stated:
//
//	pmatch.AsLeft[string](pmatch.Value(pattern.Lit(1), 1))   // Case[int, either.Either[int, string]]
//
func AsLeft[Rt, S, L any](c Case[S, L]) Case[S, either.Either[L, Rt]] {
	return Lift(c, either.Left[L, Rt])
}

// AsRight converts the results of case c into the right alternative of an
// Either. The type of the left alternative has to be stated.
func AsRight[Lt, S, R any](c Case[S, R]) Case[S, either.Either[Lt, R]] {
	return Lift(c, either.Right[Lt, R])
}
