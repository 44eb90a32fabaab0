package pattern

import (
	"fmt"
	"reflect"

	"github.com/cockroachdb/errors"
)

// --- Placeholder predicates ------------------------------------------------

// Unary is a predicate over a single bound value. Unary predicates are built
// from the placeholder X and may be combined with And, Or and Not:
//
//	X.Gt(0).And(X.Lt(10))
//
// Values are compared loosely, i.e. numbers by value regardless of their Go
// types.
type Unary struct {
	f    func(any) bool
	desc string
}

// Placeholder stands for the single value bound by a guarded pattern.
type Placeholder struct{}

// X is the placeholder for the single value bound by a guarded pattern.
var X Placeholder

func relational(op string, v any, f func(int) bool) Unary {
	return Unary{
		desc: fmt.Sprintf("_ %s %v", op, v),
		f: func(x any) bool {
			c, ok := compare(x, v)
			return ok && f(c)
		},
	}
}

func (Placeholder) Eq(v any) Unary {
	return Unary{desc: fmt.Sprintf("_ == %v", v), f: func(x any) bool { return equal(x, v) }}
}

func (Placeholder) Ne(v any) Unary {
	return Unary{desc: fmt.Sprintf("_ != %v", v), f: func(x any) bool { return !equal(x, v) }}
}

func (Placeholder) Lt(v any) Unary { return relational("<", v, func(c int) bool { return c < 0 }) }
func (Placeholder) Le(v any) Unary { return relational("<=", v, func(c int) bool { return c <= 0 }) }
func (Placeholder) Gt(v any) Unary { return relational(">", v, func(c int) bool { return c > 0 }) }
func (Placeholder) Ge(v any) Unary { return relational(">=", v, func(c int) bool { return c >= 0 }) }

// In tests for the placeholder being within [lo, hi], with b deciding which
// ends are included.
func (Placeholder) In(lo, hi any, b Bounds) Unary {
	return Rng(lo, hi, b)
}

// Rng is a single-value predicate testing for the value being within [lo, hi],
// with b deciding which ends are included.
func Rng(lo, hi any, b Bounds) Unary {
	return Unary{
		desc: "_ " + b.format(lo, hi),
		f: func(x any) bool {
			cl, okl := compare(x, lo)
			ch, okh := compare(x, hi)
			if !okl || !okh {
				return false
			}
			return (cl > 0 || (cl == 0 && b.lowIncluded())) &&
				(ch < 0 || (ch == 0 && b.highIncluded()))
		},
	}
}

func (u Unary) And(v Unary) Unary {
	return Unary{desc: fmt.Sprintf("(%s && %s)", u.desc, v.desc), f: func(x any) bool { return u.f(x) && v.f(x) }}
}

func (u Unary) Or(v Unary) Unary {
	return Unary{desc: fmt.Sprintf("(%s || %s)", u.desc, v.desc), f: func(x any) bool { return u.f(x) || v.f(x) }}
}

func (u Unary) Not() Unary {
	return Unary{desc: "!" + u.desc, f: func(x any) bool { return !u.f(x) }}
}

func (u Unary) Check(binds []reflect.Type) error {
	if u.f == nil {
		return errors.Wrap(ErrPattern, "empty placeholder predicate")
	}
	return checkUnary(binds)
}

func (u Unary) Test(t Tuple) bool { return u.f(t[0]) }
func (u Unary) String() string { return u.desc }

// --- Argument expressions --------------------------------------------------

// Expr is an arithmetic expression over the values bound by a pattern.
// Arg(i) denotes the i-th bound value. Operands which are not expressions are
// constants.
//
//	Arg(0).Add(Arg(1)).Gt(10)
//	Arg(0).Mod(2).Eq(0)
//
// Integer operands yield integer results, everything else is computed in
// float64. Strings are parsed as numbers. Expressions over values which are not
// numbers, and divisions by zero, make comparisons fail.
type Expr struct {
	eval    func(Tuple) (any, bool)
	maxArg  int
	invalid bool // negative argument index
	desc    string
}

// Arg refers to the i-th value bound by a guarded pattern.
func Arg(i int) Expr {
	return Expr{
		eval: func(t Tuple) (any, bool) {
			return t[i], true
		},
		maxArg:  i,
		invalid: i < 0,
		desc:    fmt.Sprintf("arg<%d>", i),
	}
}

func operand(v any) Expr {
	if e, ok := v.(Expr); ok {
		return e
	}
	return Expr{
		eval:   func(Tuple) (any, bool) { return v, true },
		maxArg: -1,
		desc:   fmt.Sprint(v),
	}
}

func (e Expr) arith(op arithOp, v any) Expr {
	o := operand(v)
	return Expr{
		eval: func(t Tuple) (any, bool) {
			a, ok := e.eval(t)
			if !ok {
				return nil, false
			}
			b, ok := o.eval(t)
			if !ok {
				return nil, false
			}
			return arith(op, a, b)
		},
		maxArg:  max(e.maxArg, o.maxArg),
		invalid: e.invalid || o.invalid,
		desc:    fmt.Sprintf("(%s %s %s)", e.desc, arithSymbols[op], o.desc),
	}
}

func (e Expr) Add(v any) Expr { return e.arith(opAdd, v) }
func (e Expr) Sub(v any) Expr { return e.arith(opSub, v) }
func (e Expr) Mul(v any) Expr { return e.arith(opMul, v) }
func (e Expr) Div(v any) Expr { return e.arith(opDiv, v) }
func (e Expr) Mod(v any) Expr { return e.arith(opMod, v) }

func (e Expr) String() string { return e.desc }

// Cond is a predicate over the values bound by a pattern, built from
// comparisons of expressions.
type Cond struct {
	test    func(Tuple) bool
	maxArg  int
	invalid bool
	desc    string
}

func (e Expr) compare(op string, v any, f func(int) bool) Cond {
	o := operand(v)
	return Cond{
		test: func(t Tuple) bool {
			a, ok := e.eval(t)
			if !ok {
				return false
			}
			b, ok := o.eval(t)
			if !ok {
				return false
			}
			c, ok := compare(a, b)
			return ok && f(c)
		},
		maxArg:  max(e.maxArg, o.maxArg),
		invalid: e.invalid || o.invalid,
		desc:    fmt.Sprintf("%s %s %s", e.desc, op, o.desc),
	}
}

func (e Expr) Eq(v any) Cond {
	o := operand(v)
	return Cond{
		test: func(t Tuple) bool {
			a, ok := e.eval(t)
			if !ok {
				return false
			}
			b, ok := o.eval(t)
			return ok && equal(a, b)
		},
		maxArg:  max(e.maxArg, o.maxArg),
		invalid: e.invalid || o.invalid,
		desc:    fmt.Sprintf("%s == %s", e.desc, o.desc),
	}
}

func (e Expr) Ne(v any) Cond { return e.Eq(v).Not() }
func (e Expr) Lt(v any) Cond { return e.compare("<", v, func(c int) bool { return c < 0 }) }
func (e Expr) Le(v any) Cond { return e.compare("<=", v, func(c int) bool { return c <= 0 }) }
func (e Expr) Gt(v any) Cond { return e.compare(">", v, func(c int) bool { return c > 0 }) }
func (e Expr) Ge(v any) Cond { return e.compare(">=", v, func(c int) bool { return c >= 0 }) }

func (c Cond) And(d Cond) Cond {
	return Cond{
		test:    func(t Tuple) bool { return c.test(t) && d.test(t) },
		maxArg:  max(c.maxArg, d.maxArg),
		invalid: c.invalid || d.invalid,
		desc:    fmt.Sprintf("(%s && %s)", c.desc, d.desc),
	}
}

func (c Cond) Or(d Cond) Cond {
	return Cond{
		test:    func(t Tuple) bool { return c.test(t) || d.test(t) },
		maxArg:  max(c.maxArg, d.maxArg),
		invalid: c.invalid || d.invalid,
		desc:    fmt.Sprintf("(%s || %s)", c.desc, d.desc),
	}
}

func (c Cond) Not() Cond {
	return Cond{
		test:    func(t Tuple) bool { return !c.test(t) },
		maxArg:  c.maxArg,
		invalid: c.invalid,
		desc:    "!" + c.desc,
	}
}

// Check verifies that every argument the condition refers to is bound.
func (c Cond) Check(binds []reflect.Type) error {
	if c.test == nil {
		return errors.Wrap(ErrPattern, "empty condition")
	}
	if c.invalid {
		return errors.Wrapf(ErrGuardArity, "negative argument index in %s", c.desc)
	}
	if c.maxArg >= len(binds) {
		return errors.Wrapf(ErrGuardArity, "%s refers to arg<%d>, pattern binds %d values",
			c.desc, c.maxArg, len(binds))
	}
	return nil
}

func (c Cond) Test(t Tuple) bool { return c.test(t) }
func (c Cond) String() string { return c.desc }
