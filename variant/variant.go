package variant

import (
	"fmt"
	"reflect"

	"github.com/cockroachdb/errors"
)

// Tagged is implemented by values of tagged unions.
type Tagged interface {
	Tag() int   // index of the active alternative; -1 if none is active
	Value() any // payload of the active alternative
}

// Alternatives is implemented by tagged union types which know their set of
// alternatives. Alternatives() must not depend on the receiver's state, as it
// will be called on the zero value.
type Alternatives interface {
	Tagged
	Alternatives() []reflect.Type
}

// ErrUnknownAlternative is flagged if a type or index does not denote any
// alternative of a tagged union.
var ErrUnknownAlternative = errors.New("not an alternative of tagged union")

// ErrAmbiguousAlternative is flagged if a type denotes more than one alternative
// of a tagged union.
var ErrAmbiguousAlternative = errors.New("type denotes more than one alternative of tagged union")

// ErrSchema is flagged if a schema does not fit the subject type it is used for.
var ErrSchema = errors.New("schema does not describe subject type")

// NoTag is the tag of a subject which has no active alternative known to a schema.
const NoTag = -1

// Active returns the payload of v if v is Tagged, v itself otherwise.
func Active(v any) any {
	if t, ok := v.(Tagged); ok {
		return t.Value()
	}
	return v
}

// --- Schema ----------------------------------------------------------------

// Schema describes the alternatives of a tagged union with subject type S.
// Schemas are immutable and safe for concurrent use.
type Schema[S any] struct {
	alts  []reflect.Type
	index map[reflect.Type]int // type → tag; -2 for types present more than once
	tag   func(S) int
	value func(S) any
	err   error
}

// Resolve returns the schema for S if S implements Alternatives.
func Resolve[S any]() (*Schema[S], bool) {
	var zero S
	a, ok := any(zero).(Alternatives)
	if !ok {
		return nil, false
	}
	sch := newSchema[S](a.Alternatives())
	sch.tag = func(s S) int {
		if t, ok := any(s).(Tagged); ok {
			return t.Tag()
		}
		return NoTag
	}
	sch.value = func(s S) any {
		return Active(any(s))
	}
	tracer().Debugf("resolved schema for %s: %v", reflect.TypeFor[S](), sch.alts)
	return sch, true
}

// Of creates a schema for an interface sum S, with one alternative per sample,
// tagged in order of the samples. The dynamic type of each sample denotes the
// alternative.
//
// Samples must not be nil and must not be tagged unions themselves: type
// patterns look into the active alternative of a tagged union, which would
// contradict tagging by dynamic type. Such a schema carries an error, see Err.
func Of[S any](samples ...S) *Schema[S] {
	alts := make([]reflect.Type, 0, len(samples))
	var err error
	for i, smpl := range samples {
		t := reflect.TypeOf(any(smpl))
		switch {
		case t == nil:
			err = errors.CombineErrors(err, errors.Wrapf(ErrSchema, "sample #%d is nil", i))
		case t.Implements(reflect.TypeFor[Tagged]()):
			err = errors.CombineErrors(err, errors.Wrapf(ErrSchema,
				"sample #%d of type %v is a tagged union", i, t))
		}
		alts = append(alts, t)
	}
	sch := newSchema[S](alts)
	sch.err = err
	sch.tag = func(s S) int {
		if t := reflect.TypeOf(any(s)); t != nil {
			if i, ok := sch.index[t]; ok && i >= 0 {
				return i
			}
		}
		return NoTag
	}
	sch.value = func(s S) any {
		return any(s)
	}
	return sch
}

func newSchema[S any](alts []reflect.Type) *Schema[S] {
	sch := &Schema[S]{
		alts:  alts,
		index: make(map[reflect.Type]int, len(alts)),
	}
	for i, t := range alts {
		if _, dup := sch.index[t]; dup {
			sch.index[t] = -2
			continue
		}
		sch.index[t] = i
	}
	return sch
}

// Err returns the error found when the schema was created, if any. Match
// expressions refuse schemas with errors.
func (sch *Schema[S]) Err() error {
	return sch.err
}

// Len returns the number of alternatives.
func (sch *Schema[S]) Len() int {
	return len(sch.alts)
}

// Tag returns the tag of the active alternative of s, or NoTag.
func (sch *Schema[S]) Tag(s S) int {
	t := sch.tag(s)
	if t < 0 || t >= len(sch.alts) {
		return NoTag
	}
	return t
}

// Value returns the payload of the active alternative of s.
func (sch *Schema[S]) Value(s S) any {
	return sch.value(s)
}

// Alternative returns the payload type of alternative i.
func (sch *Schema[S]) Alternative(i int) reflect.Type {
	if i < 0 || i >= len(sch.alts) {
		return nil
	}
	return sch.alts[i]
}

// Name returns a printable name for alternative i.
func (sch *Schema[S]) Name(i int) string {
	if t := sch.Alternative(i); t != nil {
		return t.String()
	}
	return fmt.Sprintf("<no alternative %d>", i)
}

// Index returns the tag of the alternative with payload type t.
// Only exact type identity counts: an interface type does not denote the
// alternatives implementing it.
func (sch *Schema[S]) Index(t reflect.Type) (int, error) {
	i, ok := sch.index[t]
	switch {
	case !ok:
		return NoTag, errors.Wrapf(ErrUnknownAlternative, "%v in %s", t, sch)
	case i < 0:
		return NoTag, errors.Wrapf(ErrAmbiguousAlternative, "%v in %s", t, sch)
	}
	return i, nil
}

// CheckIndex returns an error if i is not a valid tag.
func (sch *Schema[S]) CheckIndex(i int) error {
	if i < 0 || i >= len(sch.alts) {
		return errors.Wrapf(ErrUnknownAlternative, "index %d in %s", i, sch)
	}
	return nil
}

func (sch *Schema[S]) String() string {
	return fmt.Sprintf("%s%v", reflect.TypeFor[S](), sch.alts)
}
