package pattern

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/npillmayer/pmatch/variant"
)

func joinSub[A any](sub []Pattern[A]) Pattern[A] {
	switch len(sub) {
	case 0:
		return nil
	case 1:
		return sub[0]
	}
	return And(sub...)
}

// --- Type of active alternative --------------------------------------------

type isType[S, A any] struct {
	sub Pattern[A]
}

// Is matches subjects whose active alternative is of type A. For tagged unions
// (see package variant) the payload of the active alternative is tested,
// otherwise the dynamic type of the subject. Optional sub-patterns are matched
// against the payload, and Is binds whatever they bind.
//
//	Is[Shape, Circle]()
//	Is[maybe.Maybe[int], int](Gt(0))
//
func Is[S, A any](sub ...Pattern[A]) Pattern[S] {
	return isType[S, A]{sub: joinSub(sub)}
}

// As matches like Is[S, A]() and binds the payload.
func As[S, A any]() Pattern[S] {
	return isType[S, A]{sub: Bind[A]()}
}

func (p isType[S, A]) active(s S) (A, bool) {
	a, ok := variant.Active(any(s)).(A)
	return a, ok
}

func (p isType[S, A]) Match(s S) bool {
	a, ok := p.active(s)
	if !ok {
		return false
	}
	return p.sub == nil || p.sub.Match(a)
}

func (p isType[S, A]) Bind(s S) Tuple {
	if p.sub == nil {
		return nil
	}
	a, _ := p.active(s)
	return p.sub.Bind(a)
}

func (p isType[S, A]) MatchBind(s S) (Tuple, bool) {
	a, ok := p.active(s)
	if !ok {
		return nil, false
	}
	if p.sub == nil {
		return nil, true
	}
	return MatchBind(p.sub, a)
}

func (p isType[S, A]) Binds() []reflect.Type {
	if p.sub == nil {
		return nil
	}
	return p.sub.Binds()
}

func (p isType[S, A]) Kind() Kind { return KindType }

func (p isType[S, A]) Tie() (Tie, bool) {
	return Tie{Type: reflect.TypeFor[A](), Index: variant.NoTag, Simple: p.sub == nil}, true
}

func (p isType[S, A]) Validate() error {
	if p.sub == nil {
		return nil
	}
	return Validate(p.sub)
}

func (p isType[S, A]) String() string {
	if p.sub == nil {
		return fmt.Sprintf("is<%s>", reflect.TypeFor[A]())
	}
	return fmt.Sprintf("is<%s>(%s)", reflect.TypeFor[A](), String(p.sub))
}

// --- Type sets -------------------------------------------------------------

type typeSet[S any] struct {
	nobind[S]
	types  []reflect.Type
	negate bool
}

// IsOneOf matches subjects whose active alternative has one of the given types.
func IsOneOf[S any](types ...reflect.Type) Pattern[S] {
	return typeSet[S]{types: types}
}

// IsNoneOf matches subjects whose active alternative has none of the given types.
func IsNoneOf[S any](types ...reflect.Type) Pattern[S] {
	return typeSet[S]{types: types, negate: true}
}

func (p typeSet[S]) Match(s S) bool {
	t := reflect.TypeOf(variant.Active(any(s)))
	for _, u := range p.types {
		if t == u {
			return !p.negate
		}
	}
	return p.negate
}

func (p typeSet[S]) Kind() Kind { return KindType }

func (p typeSet[S]) String() string {
	names := make([]string, len(p.types))
	for i, t := range p.types {
		names[i] = fmt.Sprint(t)
	}
	op := "in"
	if p.negate {
		op = "not_in"
	}
	return fmt.Sprintf("is_%s<%s>", op, strings.Join(names, ","))
}

// --- Index of active alternative -------------------------------------------

type altIndex[S variant.Tagged] struct {
	i   int
	sub Pattern[any]
}

// Alt matches tagged union values whose active alternative has index i.
// Optional sub-patterns are matched against the payload. Alt is the only way
// to tell apart alternatives which share a payload type.
func Alt[S variant.Tagged](i int, sub ...Pattern[any]) Pattern[S] {
	return altIndex[S]{i: i, sub: joinSub(sub)}
}

func (p altIndex[S]) Match(s S) bool {
	if any(s) == nil || s.Tag() != p.i {
		return false
	}
	return p.sub == nil || p.sub.Match(s.Value())
}

func (p altIndex[S]) Bind(s S) Tuple {
	if p.sub == nil {
		return nil
	}
	return p.sub.Bind(s.Value())
}

func (p altIndex[S]) MatchBind(s S) (Tuple, bool) {
	if any(s) == nil || s.Tag() != p.i {
		return nil, false
	}
	if p.sub == nil {
		return nil, true
	}
	return MatchBind(p.sub, s.Value())
}

func (p altIndex[S]) Binds() []reflect.Type {
	if p.sub == nil {
		return nil
	}
	return p.sub.Binds()
}

func (p altIndex[S]) Kind() Kind { return KindAlt }

func (p altIndex[S]) Tie() (Tie, bool) {
	return Tie{Index: p.i, Simple: p.sub == nil}, true
}

func (p altIndex[S]) Validate() error {
	if p.sub == nil {
		return nil
	}
	return Validate(p.sub)
}

func (p altIndex[S]) String() string {
	if p.sub == nil {
		return fmt.Sprintf("alt<%d>", p.i)
	}
	return fmt.Sprintf("alt<%d>(%s)", p.i, String(p.sub))
}
