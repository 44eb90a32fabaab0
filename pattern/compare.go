package pattern

import (
	"cmp"
	"math"
	"reflect"
	"strings"

	"github.com/spf13/cast"
)

// Loose comparison of bound values. Guard expressions and Equiv patterns
// compare values of possibly different Go types: numbers compare by value
// regardless of their concrete (or named) types, strings lexically, and mixed
// operands are coerced with cast.

// number is a loosely typed numeric value. Unsigned values beyond the range
// of int64 are held in u and flagged huge; they are not integers for
// arithmetic, which falls back to floats.
type number struct {
	i     int64
	u     uint64
	f     float64
	isInt bool
	huge  bool
}

func asNumber(v any) (number, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return number{i: rv.Int(), f: float64(rv.Int()), isInt: true}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return number{u: u, f: float64(u), huge: true}, true
		}
		return number{i: int64(u), f: float64(u), isInt: true}, true
	case reflect.Float32, reflect.Float64:
		return number{f: rv.Float()}, true
	}
	return number{}, false
}

// coerceNumber converts v to a number, parsing strings.
func coerceNumber(v any) (number, bool) {
	if n, ok := asNumber(v); ok {
		return n, true
	}
	if s, ok := v.(string); ok {
		f, err := cast.ToFloat64E(strings.TrimSpace(s))
		if err != nil {
			return number{}, false
		}
		if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
			return number{i: int64(f), f: f, isInt: true}, true
		}
		return number{f: f}, true
	}
	return number{}, false
}

func compareNumbers(x, y number) (int, bool) {
	switch {
	case x.huge && y.huge:
		return cmp.Compare(x.u, y.u), true
	case x.huge && y.isInt:
		return 1, true
	case y.huge && x.isInt:
		return -1, true
	}
	if x.isInt && y.isInt {
		return cmp.Compare(x.i, y.i), true
	}
	if math.IsNaN(x.f) || math.IsNaN(y.f) {
		return 0, false
	}
	return cmp.Compare(x.f, y.f), true
}

// compare compares a and b loosely. ok is false if a and b are not comparable.
func compare(a, b any) (int, bool) {
	xa, na := asNumber(a)
	xb, nb := asNumber(b)
	switch {
	case na && nb:
		return compareNumbers(xa, xb)
	case na:
		if xb, ok := coerceNumber(b); ok {
			return compareNumbers(xa, xb)
		}
	case nb:
		if xa, ok := coerceNumber(a); ok {
			return compareNumbers(xa, xb)
		}
	}
	sa, erra := cast.ToStringE(a)
	sb, errb := cast.ToStringE(b)
	if erra == nil && errb == nil {
		return strings.Compare(sa, sb), true
	}
	return 0, false
}

// equal tests a and b for loose equality.
func equal(a, b any) bool {
	if c, ok := compare(a, b); ok {
		return c == 0
	}
	if a == nil || b == nil {
		return a == b
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta == tb && ta.Comparable() {
		return a == b
	}
	return false
}

// --- Arithmetic ------------------------------------------------------------

type arithOp uint8

const (
	opAdd arithOp = iota
	opSub
	opMul
	opDiv
	opMod
)

var arithSymbols = [...]string{"+", "-", "*", "/", "%"}

func arith(op arithOp, a, b any) (any, bool) {
	x, ok := coerceNumber(a)
	if !ok {
		return nil, false
	}
	y, ok := coerceNumber(b)
	if !ok {
		return nil, false
	}
	if x.isInt && y.isInt {
		switch op {
		case opAdd:
			return x.i + y.i, true
		case opSub:
			return x.i - y.i, true
		case opMul:
			return x.i * y.i, true
		case opDiv:
			if y.i == 0 {
				return nil, false
			}
			return x.i / y.i, true
		case opMod:
			if y.i == 0 {
				return nil, false
			}
			return x.i % y.i, true
		}
	}
	switch op {
	case opAdd:
		return x.f + y.f, true
	case opSub:
		return x.f - y.f, true
	case opMul:
		return x.f * y.f, true
	case opDiv:
		if y.f == 0 {
			return nil, false
		}
		return x.f / y.f, true
	case opMod:
		if y.f == 0 {
			return nil, false
		}
		return math.Mod(x.f, y.f), true
	}
	return nil, false
}
