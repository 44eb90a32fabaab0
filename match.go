package pmatch

import (
	"github.com/cockroachdb/errors"
)

// Evaluate matches subject against cases, in order, calling the handler of the
// first case matching. If no case matches, fallback is called.
// With fallback being nil, the cases have to end with a wildcard case.
//
// Evaluate validates the cases on every call. Clients evaluating the same cases
// repeatedly should build an Expr once, using Cases.
func Evaluate[S, R any](subject S, cases []Case[S, R], fallback *Fallback[S, R]) (R, error) {
	var e *Expr[S, R]
	var err error
	b := Cases[S, R]().When(cases...)
	switch {
	case len(cases) == 0 && fallback == nil:
		err = ErrNoCases
	case fallback == nil:
		e, err = b.Total()
	default:
		e, err = b.OtherwiseWith(*fallback)
	}
	if err != nil {
		var zero R
		return zero, err
	}
	return e.Eval(subject), nil
}

// --- One-shot matching -----------------------------------------------------

// Matching is a match expression bound to a subject, evaluated as soon as it
// is terminated.
type Matching[S, R any] struct {
	subject S
	b       *Builder[S, R]
}

// Match starts a match expression for subject, which is evaluated as soon as it
// is terminated:
//
//	name := pmatch.Match[int, string](n).When(
//		pmatch.Value(pattern.Lit(1), "one"),
//		pmatch.Value(pattern.Lit(2), "two"),
//	).OtherwiseValue("many")
//
// Configuration errors of the cases are programming errors, and will panic.
func Match[S, R any](subject S, opts ...Option) *Matching[S, R] {
	return &Matching[S, R]{subject: subject, b: Cases[S, R](opts...)}
}

// When appends cases.
func (m *Matching[S, R]) When(cases ...Case[S, R]) *Matching[S, R] {
	return &Matching[S, R]{subject: m.subject, b: m.b.When(cases...)}
}

// Total evaluates a match expression ending in a wildcard case.
func (m *Matching[S, R]) Total() R {
	return mustEval(m.b.Total())(m.subject)
}

// Otherwise evaluates the match expression, calling fn with the subject if no
// case matches.
func (m *Matching[S, R]) Otherwise(fn func(S) R) R {
	return mustEval(m.b.Otherwise(fn))(m.subject)
}

// OtherwiseDo evaluates the match expression, calling fn if no case matches.
func (m *Matching[S, R]) OtherwiseDo(fn func() R) R {
	return mustEval(m.b.OtherwiseDo(fn))(m.subject)
}

// OtherwiseValue evaluates the match expression, producing v if no case matches.
func (m *Matching[S, R]) OtherwiseValue(v R) R {
	return mustEval(m.b.OtherwiseValue(v))(m.subject)
}

func mustEval[S, R any](e *Expr[S, R], err error) func(S) R {
	if err != nil {
		panic(errors.Wrap(err, "pmatch"))
	}
	return e.Eval
}
