package pattern

import (
	"reflect"
	"strings"

	"github.com/cockroachdb/errors"
)

// MatchBind matches p against s and, on success, returns the values p binds.
// Patterns implementing MatchBinder bind only once.
func MatchBind[S any](p Pattern[S], s S) (Tuple, bool) {
	if mb, ok := p.(MatchBinder[S]); ok {
		return mb.MatchBind(s)
	}
	if !p.Match(s) {
		return nil, false
	}
	return p.Bind(s), true
}

func describe[S any](op string, ps []Pattern[S]) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = String(p)
	}
	return op + "(" + strings.Join(parts, ", ") + ")"
}

func validateAll[S any](op string, ps []Pattern[S]) error {
	if len(ps) == 0 {
		return errors.Wrapf(ErrPattern, "%s without operands", op)
	}
	var err error
	for _, p := range ps {
		err = combine(err, Validate(p))
	}
	return err
}

// --- And -------------------------------------------------------------------

type and[S any] struct {
	ps []Pattern[S]
}

// And matches if all of ps match. It binds the values of all operands, in order.
func And[S any](ps ...Pattern[S]) Pattern[S] {
	return and[S]{ps: ps}
}

func (a and[S]) Match(s S) bool {
	for _, p := range a.ps {
		if !p.Match(s) {
			return false
		}
	}
	return true
}

func (a and[S]) Bind(s S) Tuple {
	var t Tuple
	for _, p := range a.ps {
		t = append(t, p.Bind(s)...)
	}
	return t
}

func (a and[S]) MatchBind(s S) (Tuple, bool) {
	var t Tuple
	for _, p := range a.ps {
		pt, ok := MatchBind(p, s)
		if !ok {
			return nil, false
		}
		t = append(t, pt...)
	}
	return t, true
}

func (a and[S]) Binds() []reflect.Type {
	var ts []reflect.Type
	for _, p := range a.ps {
		if p == nil {
			continue // reported by Validate
		}
		ts = append(ts, p.Binds()...)
	}
	return ts
}

func (a and[S]) Kind() Kind { return KindAnd }
func (a and[S]) String() string { return describe("and", a.ps) }
func (a and[S]) Validate() error { return validateAll("and", a.ps) }

// Tie reports the alternative of the first tied operand.
func (a and[S]) Tie() (Tie, bool) {
	for _, p := range a.ps {
		if t, ok := TieOf(p); ok {
			t.Simple = false
			return t, true
		}
	}
	return Tie{}, false
}

// --- Or --------------------------------------------------------------------

type or[S any] struct {
	ps      []Pattern[S]
	uniform bool // all operands bind the same types
}

// Or matches if any of ps matches. If all operands bind values of the same
// types, Or binds the values of the first matching operand; otherwise it binds
// nothing.
func Or[S any](ps ...Pattern[S]) Pattern[S] {
	o := or[S]{ps: ps, uniform: len(ps) > 0}
	for _, p := range ps {
		if p == nil || ps[0] == nil || !sameTypes(p.Binds(), ps[0].Binds()) {
			o.uniform = false
		}
	}
	return o
}

func sameTypes(a, b []reflect.Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (o or[S]) Match(s S) bool {
	for _, p := range o.ps {
		if p.Match(s) {
			return true
		}
	}
	return false
}

func (o or[S]) Bind(s S) Tuple {
	if !o.uniform {
		return nil
	}
	t, _ := o.MatchBind(s)
	return t
}

func (o or[S]) MatchBind(s S) (Tuple, bool) {
	for _, p := range o.ps {
		if !o.uniform {
			if p.Match(s) {
				return nil, true
			}
			continue
		}
		if t, ok := MatchBind(p, s); ok {
			return t, true
		}
	}
	return nil, false
}

func (o or[S]) Binds() []reflect.Type {
	if !o.uniform {
		return nil
	}
	return o.ps[0].Binds()
}

func (o or[S]) Kind() Kind { return KindOr }
func (o or[S]) String() string { return describe("or", o.ps) }
func (o or[S]) Validate() error { return validateAll("or", o.ps) }

// --- Not -------------------------------------------------------------------

type not[S any] struct {
	nobind[S]
	p Pattern[S]
}

// Not matches if p does not. It binds nothing.
func Not[S any](p Pattern[S]) Pattern[S] {
	return not[S]{p: p}
}

func (n not[S]) Match(s S) bool { return !n.p.Match(s) }
func (n not[S]) Kind() Kind { return KindNot }
func (n not[S]) String() string { return "not(" + String(n.p) + ")" }
func (n not[S]) Validate() error { return Validate(n.p) }
