package css

import (
	"reflect"
	"strings"

	"github.com/npillmayer/pmatch"
	"github.com/npillmayer/pmatch/pattern"
)

/*
type PositionT
	= Unset
	| Static
	| Relative top right bottom left
	| Absolute top right bottom left
	| Fixed top right bottom left
*/

// Tags of the alternatives of PositionT.
const (
	PosUnset = iota
	PosStatic
	PosRelative
	PosAbsolute
	PosFixed
)

// Payloads of the alternatives of PositionT without offsets.
type (
	NoPosition     struct{}
	StaticPosition struct{}
)

// PositionT is an option type for CSS positions. The zero value is unset.
//
// Relative, Absolute and Fixed share the payload type Offsets, thus type
// patterns cannot tell them apart. Use pattern.Alt with the tag instead.
type PositionT struct {
	offsets Offsets
	tag     uint8
}

type PositionOffset struct {
	Dim DimenT
	Dir PosDir
}

// Offsets are the offset properties of a position, ordered by PosDir.
type Offsets []PositionOffset

// PosDir is either Top, Right, Bottom or Left.
type PosDir uint8

const (
	Top PosDir = iota
	Right
	Bottom
	Left
)

func (dir PosDir) String() string {
	switch dir {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	}
	return "?"
}

// NormalizeOffsets normalizes offset properties (Top, Right, Bottom, Left) into
// a 4-way slice, ordered by PosDir. Invalid directions are silently dropped.
// Missing offsets are Auto.
func NormalizeOffsets(offsets []PositionOffset) Offsets {
	norm := ZeroOffsets()
	for _, o := range offsets {
		if o.Dir <= Left {
			norm[int(o.Dir)] = o
		}
	}
	return norm
}

// ZeroOffsets returns (Top, Right, Bottom, Left) = (auto, auto, auto, auto)
func ZeroOffsets() Offsets {
	zeros := make(Offsets, 4)
	for i := Top; i <= Left; i++ {
		zeros[i].Dir = i
	}
	return zeros
}

// Static creates a CSS position of value `static`.
func Static() PositionT {
	return PositionT{tag: PosStatic}
}

// Relative creates a CSS position of value `relative`, given optional offsets.
// offsets may be provided partially or none at all.
func Relative(offsets []PositionOffset) PositionT {
	return PositionT{tag: PosRelative, offsets: NormalizeOffsets(offsets)}
}

// Absolute creates a CSS position of value `absolute`, given optional offsets.
// offsets may be provided partially or none at all.
func Absolute(offsets []PositionOffset) PositionT {
	return PositionT{tag: PosAbsolute, offsets: NormalizeOffsets(offsets)}
}

// Fixed creates a CSS position of value `fixed`, given optional offsets.
// offsets may be provided partially or none at all.
func Fixed(offsets []PositionOffset) PositionT {
	return PositionT{tag: PosFixed, offsets: NormalizeOffsets(offsets)}
}

var positions = must(pmatch.Cases[string, PositionT]().When(
	pmatch.Do(pattern.Lit("static"), Static),
	pmatch.Do(pattern.Lit("relative"), func() PositionT { return Relative(nil) }),
	pmatch.Do(pattern.Lit("absolute"), func() PositionT { return Absolute(nil) }),
	pmatch.Do(pattern.Lit("fixed"), func() PositionT { return Fixed(nil) }),
).OtherwiseValue(PositionT{}))

// ParsePosition returns an optional position type from a property string.
// It will never return an error, even with illegal input, but instead will then
// return an unset position.
func ParsePosition(p string) PositionT {
	return positions.Eval(strings.ToLower(strings.TrimSpace(p)))
}

// --- Tagged union ----------------------------------------------------------

func (p PositionT) Tag() int {
	return int(p.tag)
}

func (p PositionT) Value() any {
	switch p.tag {
	case PosUnset:
		return NoPosition{}
	case PosStatic:
		return StaticPosition{}
	}
	return p.offsets
}

func (p PositionT) Alternatives() []reflect.Type {
	o := reflect.TypeFor[Offsets]()
	return []reflect.Type{reflect.TypeFor[NoPosition](), reflect.TypeFor[StaticPosition](), o, o, o}
}

// ---------------------------------------------------------------------------

func offsetsOf(p PositionT) Offsets {
	return p.offsets
}

var positionOffsets = must(pmatch.Cases[PositionT, Offsets]().When(
	pmatch.With(pattern.Alt[PositionT](PosRelative), offsetsOf),
	pmatch.With(pattern.Alt[PositionT](PosAbsolute), offsetsOf),
	pmatch.With(pattern.Alt[PositionT](PosFixed), offsetsOf),
).Otherwise(func(PositionT) Offsets { return ZeroOffsets() }))

// Offsets returns the offsets of a relative, absolute or fixed position, and
// zero offsets otherwise.
func (p PositionT) Offsets() Offsets {
	return positionOffsets.Eval(p)
}

// IsUnset returns true if p is unset.
func (p PositionT) IsUnset() bool {
	return p.tag == PosUnset
}

// IsRelative returns true if p represents a valid relative position.
func (p PositionT) IsRelative() bool {
	return p.tag == PosRelative
}

// IsAbsolute returns true if p represents a valid absolute position.
func (p PositionT) IsAbsolute() bool {
	return p.tag == PosAbsolute
}

// IsFixed returns true if p represents a fixed position.
func (p PositionT) IsFixed() bool {
	return p.tag == PosFixed
}

func (p PositionT) String() string {
	switch p.tag {
	case PosStatic:
		return "static"
	case PosRelative:
		return "relative"
	case PosAbsolute:
		return "absolute"
	case PosFixed:
		return "fixed"
	}
	return "unset"
}
