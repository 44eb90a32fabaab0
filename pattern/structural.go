package pattern

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/cockroachdb/errors"
)

// Member describes a named field of subjects of type S, possibly absent.
// Create members with Field or FieldOK.
type Member[S any] struct {
	name string
	typ  reflect.Type
	get  func(S) (any, bool)
	test func(any) bool // optional sub-pattern on the field's value
	desc string
	err  error
}

// Field describes a field of S, read by get. Optional sub-patterns restrict the
// field's value.
//
//	Has(Field("x", func(p Point) int { return p.X }, Gt(0)))
//
func Field[S, F any](name string, get func(S) F, sub ...Pattern[F]) Member[S] {
	m := member[S, F](name, sub)
	if get == nil {
		m.err = errors.Wrapf(ErrPattern, "field %q without getter", name)
		return m
	}
	m.get = func(s S) (any, bool) {
		return get(s), true
	}
	return m
}

// FieldOK describes an optional field of S, e.g. a map entry. get returns false
// if the field is absent; subjects without the field do not match.
func FieldOK[S, F any](name string, get func(S) (F, bool), sub ...Pattern[F]) Member[S] {
	m := member[S, F](name, sub)
	if get == nil {
		m.err = errors.Wrapf(ErrPattern, "field %q without getter", name)
		return m
	}
	m.get = func(s S) (any, bool) {
		return get(s)
	}
	return m
}

func member[S, F any](name string, sub []Pattern[F]) Member[S] {
	m := Member[S]{name: name, typ: reflect.TypeFor[F](), desc: name}
	if p := joinSub(sub); p != nil {
		m.test = func(v any) bool {
			f, _ := v.(F)
			return p.Match(f)
		}
		m.desc = name + ":" + String(p)
		m.err = Validate(p)
	}
	return m
}

// --- Has -------------------------------------------------------------------

type has[S any] struct {
	nobind[S]
	fields []Member[S]
}

// Has matches subjects which have all the given fields, with field values
// matching the fields' sub-patterns. Has binds nothing; wrap it into BindAs
// to bind the fields' values.
func Has[S any](fields ...Member[S]) Pattern[S] {
	return has[S]{fields: fields}
}

func (h has[S]) Match(s S) bool {
	for _, f := range h.fields {
		v, ok := f.get(s)
		if !ok {
			return false
		}
		if f.test != nil && !f.test(v) {
			return false
		}
	}
	return true
}

func (h has[S]) values(s S) Tuple {
	t := make(Tuple, len(h.fields))
	for i, f := range h.fields {
		t[i], _ = f.get(s)
	}
	return t
}

func (h has[S]) types() []reflect.Type {
	ts := make([]reflect.Type, len(h.fields))
	for i, f := range h.fields {
		ts[i] = f.typ
	}
	return ts
}

func (h has[S]) Kind() Kind { return KindHas }

func (h has[S]) Validate() error {
	if len(h.fields) == 0 {
		return errors.Wrap(ErrPattern, "has without fields")
	}
	var err error
	for _, f := range h.fields {
		err = combine(err, f.err)
	}
	return err
}

func (h has[S]) String() string {
	names := make([]string, len(h.fields))
	for i, f := range h.fields {
		names[i] = f.desc
	}
	return "has{" + strings.Join(names, ", ") + "}"
}

// --- Binding ---------------------------------------------------------------

type bindSubject[S any] struct{}

// Bind matches every subject and binds it.
func Bind[S any]() Pattern[S] {
	return bindSubject[S]{}
}

func (bindSubject[S]) Match(S) bool { return true }
func (bindSubject[S]) Bind(s S) Tuple { return Tuple{s} }
func (bindSubject[S]) Binds() []reflect.Type { return []reflect.Type{reflect.TypeFor[S]()} }
func (bindSubject[S]) Kind() Kind { return KindBind }
func (bindSubject[S]) String() string { return "bind" }

type bindAs[S any] struct {
	sub    Pattern[S]
	fields *has[S]
}

// BindAs matches if sub does. It binds the subject followed by the values sub
// binds. If sub is a Has pattern, BindAs binds the values of its fields instead.
//
//	BindAs(Has(Field("x", getX), Field("y", getY)))   // binds (x, y)
//	BindAs(Gt(0))                                     // binds the subject
//
func BindAs[S any](sub Pattern[S]) Pattern[S] {
	b := bindAs[S]{sub: sub}
	if h, ok := sub.(has[S]); ok {
		b.fields = &h
	}
	return b
}

func (b bindAs[S]) Match(s S) bool {
	return b.sub.Match(s)
}

func (b bindAs[S]) Bind(s S) Tuple {
	if b.fields != nil {
		return b.fields.values(s)
	}
	return append(Tuple{s}, b.sub.Bind(s)...)
}

func (b bindAs[S]) MatchBind(s S) (Tuple, bool) {
	if b.fields != nil {
		if !b.fields.Match(s) {
			return nil, false
		}
		return b.fields.values(s), true
	}
	t, ok := MatchBind(b.sub, s)
	if !ok {
		return nil, false
	}
	return append(Tuple{s}, t...), true
}

func (b bindAs[S]) Binds() []reflect.Type {
	if b.fields != nil {
		return b.fields.types()
	}
	if b.sub == nil {
		return []reflect.Type{reflect.TypeFor[S]()}
	}
	return append([]reflect.Type{reflect.TypeFor[S]()}, b.sub.Binds()...)
}

func (b bindAs[S]) Kind() Kind { return KindBind }
func (b bindAs[S]) Unwrap() Pattern[S] { return b.sub }
func (b bindAs[S]) String() string { return fmt.Sprintf("bind(%s)", String(b.sub)) }

func (b bindAs[S]) Validate() error {
	if b.sub == nil {
		return errors.Wrap(ErrPattern, "bind of nil pattern")
	}
	return Validate(b.sub)
}
