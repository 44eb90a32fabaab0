package css

import (
	"math"
	"strings"

	"github.com/aymerick/douceur/parser"
	"github.com/cockroachdb/errors"
	"github.com/npillmayer/pmatch"
	"github.com/npillmayer/pmatch/pattern"
	"github.com/npillmayer/pmatch/result"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
	"github.com/spf13/cast"
)

// ErrIllegalValue is flagged for property values which cannot be interpreted.
var ErrIllegalValue = errors.New("illegal CSS property value")

// Style holds the box properties of an inline style declaration block.
// Properties other than width, height, position and the offsets are ignored.
type Style struct {
	Width, Height DimenT
	Position      PositionT
}

type styleBuilder struct {
	style   Style
	offsets []PositionOffset
}

// setter stores the value of a single declaration.
type setter func(*styleBuilder, string) error

func dimenSetter(set func(*Style, DimenT)) setter {
	return func(sb *styleBuilder, v string) error {
		d, err := ParseDimen(v)
		if err != nil {
			return err
		}
		set(&sb.style, d)
		return nil
	}
}

func offsetSetter(dir PosDir) setter {
	return func(sb *styleBuilder, v string) error {
		d, err := ParseDimen(v)
		if err != nil {
			return err
		}
		sb.offsets = append(sb.offsets, PositionOffset{Dim: d, Dir: dir})
		return nil
	}
}

var properties = must(pmatch.Cases[string, setter]().When(
	pmatch.Value(pattern.Lit("width"), dimenSetter(func(s *Style, d DimenT) { s.Width = d })),
	pmatch.Value(pattern.Lit("height"), dimenSetter(func(s *Style, d DimenT) { s.Height = d })),
	pmatch.Value(pattern.Lit("position"), setter(func(sb *styleBuilder, v string) error {
		sb.style.Position = ParsePosition(v)
		return nil
	})),
	pmatch.Value(pattern.Lit("top"), offsetSetter(Top)),
	pmatch.Value(pattern.Lit("right"), offsetSetter(Right)),
	pmatch.Value(pattern.Lit("bottom"), offsetSetter(Bottom)),
	pmatch.Value(pattern.Lit("left"), offsetSetter(Left)),
).OtherwiseValue(nil))

// placement attaches offsets to positions which accept them.
var placement = must(pmatch.Cases[PositionT, func([]PositionOffset) PositionT]().When(
	pmatch.Value(pattern.Alt[PositionT](PosRelative), Relative),
	pmatch.Value(pattern.Alt[PositionT](PosAbsolute), Absolute),
	pmatch.Value(pattern.Alt[PositionT](PosFixed), Fixed),
).OtherwiseValue(nil))

// ParseStyle interprets an inline style declaration block, e.g.
//
//	"position: absolute; top: 10pt; width: 50%"
//
// Offsets are attached to the position only if it is relative, absolute or
// fixed. The first illegal property value stops parsing.
func ParseStyle(text string) (Style, error) {
	decls, err := parser.ParseDeclarations(text)
	if err != nil {
		return Style{}, errors.Wrap(err, "parsing style declarations")
	}
	sb := &styleBuilder{}
	for _, decl := range decls {
		prop := strings.ToLower(decl.Property)
		set := properties.Eval(prop)
		if set == nil {
			tracer().Debugf("ignoring CSS property %q", decl.Property)
			continue
		}
		if err := set(sb, decl.Value); err != nil {
			return Style{}, errors.Wrapf(err, "property %q", prop)
		}
	}
	if attach := placement.Eval(sb.style.Position); attach != nil {
		sb.style.Position = attach(sb.offsets)
	} else if len(sb.offsets) > 0 {
		tracer().Debugf("offsets without positioning ignored")
	}
	return sb.style, nil
}

// --- Dimension values ------------------------------------------------------

func number(s string, unit string) (float64, error) {
	n, err := cast.ToFloat64E(strings.TrimSpace(strings.TrimSuffix(s, unit)))
	if err != nil {
		return 0, errors.Wrapf(ErrIllegalValue, "%q is not a number", s)
	}
	return n, nil
}

func points(s string) result.Result[DimenT] {
	n, err := number(s, "pt")
	if err != nil {
		return result.Err[DimenT](err)
	}
	return result.Ok(JustDimen(dimen.DU(n * float64(dimen.PT))))
}

func percentage(s string) result.Result[DimenT] {
	n, err := number(s, "%")
	if err != nil {
		return result.Err[DimenT](err)
	}
	if math.IsInf(n, 0) || n != math.Trunc(n) {
		return result.Err[DimenT](errors.Wrapf(ErrIllegalValue, "percentage %q is not a whole number", s))
	}
	return result.Ok(Percentage(percent.FromInt(int(n))))
}

func keyword(s string) result.Result[DimenT] {
	if d, ok := DimenKeyword(s).Get(); ok {
		return result.Ok(d)
	}
	return result.Err[DimenT](errors.Wrapf(ErrIllegalValue, "unknown dimension %q", s))
}

var dimenValues = must(pmatch.Cases[string, result.Result[DimenT]]().When(
	pmatch.With(pattern.Pred(func(s string) bool { return strings.HasSuffix(s, "%") }), percentage),
	pmatch.With(pattern.Pred(func(s string) bool { return strings.HasSuffix(s, "pt") }), points),
	pmatch.With(pattern.Lit("0"), points),
).Otherwise(keyword))

// ParseDimen interprets a CSS dimension value. Supported are the keywords
// auto, inherit and initial, as well as point and whole-numbered percentage
// values.
func ParseDimen(s string) (DimenT, error) {
	return dimenValues.Eval(strings.ToLower(strings.TrimSpace(s))).Get()
}
