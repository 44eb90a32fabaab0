package pmatch

import (
	"fmt"
	"reflect"

	"github.com/npillmayer/pmatch/pattern"
)

// Stmt is a validated statement-style match expression. Its handlers are called
// for their side effects only; Stmt does not produce a value.
type Stmt[S any] struct {
	expr *Expr[S, Void]
}

// Exec matches s against the cases, calling the handler of the first case
// matching, or the fallback.
func (st *Stmt[S]) Exec(s S) {
	st.expr.Eval(s)
}

// Strategy returns the evaluation strategy chosen for st.
func (st *Stmt[S]) Strategy() Strategy {
	return st.expr.Strategy()
}

// Describe returns a printable tree of the cases of st.
func (st *Stmt[S]) Describe() string {
	return st.expr.Describe()
}

// StmtBuilder assembles the cases of a statement-style match expression.
// Like Builder, it is persistent.
type StmtBuilder[S any] struct {
	b *Builder[S, Void]
}

// Statements starts building a statement-style match expression.
func Statements[S any](opts ...Option) *StmtBuilder[S] {
	return &StmtBuilder[S]{b: Cases[S, Void](opts...)}
}

// When appends cases, in order of priority.
func (sb *StmtBuilder[S]) When(cases ...Case[S, Void]) *StmtBuilder[S] {
	return &StmtBuilder[S]{b: sb.b.When(cases...)}
}

// End terminates a statement-style match expression which ends in a wildcard
// case.
func (sb *StmtBuilder[S]) End() (*Stmt[S], error) {
	return stmt(sb.b.total())
}

// Otherwise terminates a statement-style match expression with a fallback
// calling fn with the subject. The expression must not have a wildcard case.
func (sb *StmtBuilder[S]) Otherwise(fn func(S)) (*Stmt[S], error) {
	fb := Fallback[S, Void]{handler: fmt.Sprintf("func(%v)", reflect.TypeFor[S]())}
	if fn != nil {
		fb.call = func(s S) Void {
			fn(s)
			return Void{}
		}
	}
	return stmt(sb.b.otherwise(fb))
}

// OtherwiseDo terminates a statement-style match expression with a fallback
// calling fn.
func (sb *StmtBuilder[S]) OtherwiseDo(fn func()) (*Stmt[S], error) {
	fb := Fallback[S, Void]{handler: "func()"}
	if fn != nil {
		fb.call = func(S) Void {
			fn()
			return Void{}
		}
	}
	return stmt(sb.b.otherwise(fb))
}

func stmt[S any](e *Expr[S, Void], err error) (*Stmt[S], error) {
	if err != nil {
		return nil, err
	}
	return &Stmt[S]{expr: e}, nil
}

// --- Statement cases -------------------------------------------------------

// Act creates a statement case calling fn if p matches. p must not bind values.
func Act[S any](p pattern.Pattern[S], fn func()) Case[S, Void] {
	var h func() Void
	if fn != nil {
		h = func() Void {
			fn()
			return Void{}
		}
	}
	return Do(p, h)
}

// ActWith creates a statement case calling fn with the subject if p matches.
// p must not bind values.
func ActWith[S any](p pattern.Pattern[S], fn func(S)) Case[S, Void] {
	var h func(S) Void
	if fn != nil {
		h = func(s S) Void {
			fn(s)
			return Void{}
		}
	}
	return With(p, h)
}

// Act1 creates a statement case calling fn with the single value p binds.
func Act1[S, A any](p pattern.Pattern[S], fn func(A)) Case[S, Void] {
	var h func(A) Void
	if fn != nil {
		h = func(a A) Void {
			fn(a)
			return Void{}
		}
	}
	return Then1(p, h)
}

// Act2 creates a statement case calling fn with the two values p binds.
func Act2[S, A, B any](p pattern.Pattern[S], fn func(A, B)) Case[S, Void] {
	var h func(A, B) Void
	if fn != nil {
		h = func(a A, b B) Void {
			fn(a, b)
			return Void{}
		}
	}
	return Then2(p, h)
}

// Act3 creates a statement case calling fn with the three values p binds.
func Act3[S, A, B, C any](p pattern.Pattern[S], fn func(A, B, C)) Case[S, Void] {
	var h func(A, B, C) Void
	if fn != nil {
		h = func(a A, b B, c C) Void {
			fn(a, b, c)
			return Void{}
		}
	}
	return Then3(p, h)
}
