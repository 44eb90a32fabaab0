package pmatch

import (
	"github.com/npillmayer/pmatch/pattern"
	"github.com/npillmayer/pmatch/variant"
)

// Expr is a validated match expression. It is immutable and may be evaluated
// concurrently.
type Expr[S, R any] struct {
	cases    []Case[S, R]
	fallback *Fallback[S, R] // nil if terminated by a wildcard
	strategy Strategy
	schema   *variant.Schema[S]
	ties     []int       // prefilter: alternative per case, -1 if untied
	byTag    []int       // variant table: first case per tag, -1 for fallback
	noTag    int         // variant table: case for subjects without known tag
	literals map[any]int // literal table: first case per literal
	orElse   int         // literal table: wildcard case, or -1
}

// Eval matches s against the cases, calling the handler of the first case
// matching. If no case matches, the fallback is called.
func (e *Expr[S, R]) Eval(s S) R {
	switch e.strategy {
	case StrategyVariantTable:
		return e.dispatchTag(s)
	case StrategyLiteralTable:
		return e.dispatchLiteral(s)
	case StrategyPrefilter:
		return e.sequence(s, e.schema.Tag(s))
	}
	return e.sequence(s, variant.NoTag)
}

// Strategy returns the evaluation strategy chosen for e.
func (e *Expr[S, R]) Strategy() Strategy {
	return e.strategy
}

// Len returns the number of cases.
func (e *Expr[S, R]) Len() int {
	return len(e.cases)
}

// sequence tries the cases in order. tag is the active alternative of s when
// prefiltering.
func (e *Expr[S, R]) sequence(s S, tag int) R {
	for i := range e.cases {
		c := &e.cases[i]
		if e.ties != nil && e.ties[i] >= 0 && e.ties[i] != tag {
			continue
		}
		if c.form != formArgs { // handler takes no bound values ⇒ do not bind
			if c.pat.Match(s) {
				return c.fire(s, nil)
			}
			continue
		}
		if t, ok := pattern.MatchBind(c.pat, s); ok {
			return c.fire(s, t)
		}
	}
	return e.otherwise(s)
}

func (e *Expr[S, R]) otherwise(s S) R {
	if e.fallback == nil { // unreachable for a wildcard-terminated expression
		var zero R
		return zero
	}
	return e.fallback.call(s)
}

func (e *Expr[S, R]) dispatchTag(s S) R {
	i := e.noTag
	if tag := e.schema.Tag(s); tag >= 0 && tag < len(e.byTag) {
		i = e.byTag[tag]
	}
	if i < 0 {
		return e.otherwise(s)
	}
	return e.cases[i].fire(s, nil)
}

func (e *Expr[S, R]) dispatchLiteral(s S) R {
	i, ok := e.literals[any(s)]
	if !ok {
		i = e.orElse
	}
	if i < 0 {
		return e.otherwise(s)
	}
	return e.cases[i].fire(s, nil)
}
