package css

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/npillmayer/pmatch"
	"github.com/npillmayer/pmatch/maybe"
	"github.com/npillmayer/pmatch/pattern"
	"github.com/npillmayer/tyse/core/dimen"
	. "github.com/npillmayer/tyse/core/percent"
)

/*
type DimenT
	= Auto
	| Inherit
	| Initial
	| JustDimen dimen
	| Percentage Percent
*/

// Tags of the alternatives of DimenT.
const (
	DimenAuto = iota
	DimenInherit
	DimenInitial
	DimenJust
	DimenPercent
)

// Payloads of the keyword alternatives of DimenT.
type (
	AutoValue    struct{}
	InheritValue struct{}
	InitialValue struct{}
)

// DimenT is an option type for CSS dimensions. The zero value is Auto.
type DimenT struct {
	d       dimen.DU
	percent Percent
	tag     uint8
}

func Auto() DimenT {
	return DimenT{tag: DimenAuto}
}

func Inherit() DimenT {
	return DimenT{tag: DimenInherit}
}

func Initial() DimenT {
	return DimenT{tag: DimenInitial}
}

// JustDimen creates a CSS dimension with a fixed value of x.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{d: x, tag: DimenJust}
}

// Percentage creates a CSS dimension with a %-relative value.
func Percentage(n Percent) DimenT {
	return DimenT{percent: n, tag: DimenPercent}
}

// --- Tagged union ----------------------------------------------------------

func (d DimenT) Tag() int {
	return int(d.tag)
}

func (d DimenT) Value() any {
	switch d.tag {
	case DimenInherit:
		return InheritValue{}
	case DimenInitial:
		return InitialValue{}
	case DimenJust:
		return d.d
	case DimenPercent:
		return d.percent
	}
	return AutoValue{}
}

func (d DimenT) Alternatives() []reflect.Type {
	return []reflect.Type{
		reflect.TypeFor[AutoValue](),
		reflect.TypeFor[InheritValue](),
		reflect.TypeFor[InitialValue](),
		reflect.TypeFor[dimen.DU](),
		reflect.TypeFor[Percent](),
	}
}

// ---------------------------------------------------------------------------

var fixedDimen = must(pmatch.Cases[DimenT, maybe.Maybe[dimen.DU]]().When(
	pmatch.Then1(pattern.As[DimenT, dimen.DU](), maybe.Just[dimen.DU]),
).OtherwiseValue(maybe.Nothing[dimen.DU]()))

// Fixed returns the value of a fixed dimension, or Nothing.
func (d DimenT) Fixed() maybe.Maybe[dimen.DU] {
	return fixedDimen.Eval(d)
}

// Or returns the value of a fixed dimension, or def for every other alternative.
func (d DimenT) Or(def dimen.DU) dimen.DU {
	return d.Fixed().WithDefault(def)
}

// IsAuto returns true if d is Auto.
func (d DimenT) IsAuto() bool {
	return d.tag == DimenAuto
}

// IsRelative returns true if d is a percentage.
func (d DimenT) IsRelative() bool {
	return d.tag == DimenPercent
}

func (d DimenT) String() string {
	return pmatch.Match[DimenT, string](d).When(
		pmatch.Value(pattern.Alt[DimenT](DimenAuto), "auto"),
		pmatch.Value(pattern.Alt[DimenT](DimenInherit), "inherit"),
		pmatch.Value(pattern.Alt[DimenT](DimenInitial), "initial"),
		pmatch.Then1(pattern.As[DimenT, dimen.DU](), func(x dimen.DU) string { return fmt.Sprint(x) }),
		pmatch.Then1(pattern.As[DimenT, Percent](), func(p Percent) string { return fmt.Sprint(p) }),
	).OtherwiseValue("?")
}

// --- Keywords --------------------------------------------------------------

var dimenKeywords = must(pmatch.Cases[string, maybe.Maybe[DimenT]]().When(
	pmatch.Value(pattern.Lit("auto"), maybe.Just(Auto())),
	pmatch.Value(pattern.Lit("inherit"), maybe.Just(Inherit())),
	pmatch.Value(pattern.Lit("initial"), maybe.Just(Initial())),
).OtherwiseValue(maybe.Nothing[DimenT]()))

// DimenKeyword returns the dimension denoted by a CSS keyword (auto, inherit or
// initial), or Nothing for any other input. Keywords are case-insensitive.
func DimenKeyword(s string) maybe.Maybe[DimenT] {
	d := dimenKeywords.Eval(strings.ToLower(strings.TrimSpace(s)))
	if d.IsNothing() {
		tracer().Debugf("not a dimension keyword: %q", s)
	}
	return d
}
