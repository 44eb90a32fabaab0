package pmatch

import (
	"reflect"

	"github.com/cockroachdb/errors"
	"github.com/npillmayer/pmatch/pattern"
	"github.com/npillmayer/pmatch/persistent/vector"
)

// Builder assembles the cases of a match expression with subjects of type S and
// results of type R.
//
// Builders are persistent: When returns a new builder, leaving the receiver
// unchanged. A builder may therefore serve as a common prefix for several
// match expressions.
type Builder[S, R any] struct {
	props
	cases    vector.Vector[Case[S, R]]
	wildcard int // index of the wildcard case, or -1
	errs     []error
}

// Cases starts building a match expression. Clients state the result type R
// once; every handler and the fallback have to produce an R.
func Cases[S, R any](opts ...Option) *Builder[S, R] {
	b := &Builder[S, R]{
		props:    defaultProps(),
		cases:    vector.Immutable[Case[S, R]](vector.DegreeExponent(3)),
		wildcard: -1,
	}
	for _, option := range opts {
		b.props = option.config(b.props)
	}
	return b
}

// When appends cases, in order of priority.
// Problems with cases are collected and reported when the builder is terminated.
func (b *Builder[S, R]) When(cases ...Case[S, R]) *Builder[S, R] {
	nb := *b
	nb.errs = b.errs[:len(b.errs):len(b.errs)] // force copy on append
	for _, c := range cases {
		i := nb.cases.Len()
		if nb.wildcard >= 0 {
			nb.errs = append(nb.errs, errors.Wrapf(ErrCaseAfterWildcard,
				"case #%d %s follows wildcard case #%d", i, c, nb.wildcard))
		}
		if c.err != nil {
			nb.errs = append(nb.errs, errors.Wrapf(c.err, "case #%d", i))
		} else if err := pattern.Validate(c.pat); err != nil {
			nb.errs = append(nb.errs, errors.Wrapf(err, "case #%d", i))
		}
		if c.isWildcard() && nb.wildcard < 0 {
			nb.wildcard = i
		}
		nb.cases = nb.cases.Push(c)
	}
	return &nb
}

// Len returns the number of cases.
func (b *Builder[S, R]) Len() int {
	return b.cases.Len()
}

// Total terminates a match expression which ends in a wildcard case, thus
// accepts every subject.
func (b *Builder[S, R]) Total() (*Expr[S, R], error) {
	if isVoid[R]() {
		return nil, errors.Wrap(ErrVoidResult, "use Statements")
	}
	return b.total()
}

// Otherwise terminates a match expression with a fallback calling fn with the
// subject. The expression must not have a wildcard case.
func (b *Builder[S, R]) Otherwise(fn func(S) R) (*Expr[S, R], error) {
	return b.OtherwiseWith(Else(fn))
}

// OtherwiseDo terminates a match expression with a fallback calling fn.
func (b *Builder[S, R]) OtherwiseDo(fn func() R) (*Expr[S, R], error) {
	return b.OtherwiseWith(ElseDo[S](fn))
}

// OtherwiseValue terminates a match expression with a fallback producing v.
func (b *Builder[S, R]) OtherwiseValue(v R) (*Expr[S, R], error) {
	return b.OtherwiseWith(ElseValue[S](v))
}

// OtherwiseWith terminates a match expression with fallback fb.
func (b *Builder[S, R]) OtherwiseWith(fb Fallback[S, R]) (*Expr[S, R], error) {
	if isVoid[R]() {
		return nil, errors.Wrap(ErrVoidResult, "use Statements")
	}
	return b.otherwise(fb)
}

// ---------------------------------------------------------------------------

func (b *Builder[S, R]) total() (*Expr[S, R], error) {
	errs := b.errs
	if last, ok := b.cases.Last().Get(); !ok || !last.isWildcard() {
		errs = append(errs[:len(errs):len(errs)], errors.Wrapf(ErrNotExhaustive,
			"%d cases, last is not a wildcard", b.cases.Len()))
	}
	return b.build(nil, errs)
}

func (b *Builder[S, R]) otherwise(fb Fallback[S, R]) (*Expr[S, R], error) {
	errs := b.errs[:len(b.errs):len(b.errs)]
	if b.wildcard >= 0 {
		errs = append(errs, errors.Wrapf(ErrWildcardAndFallback, "wildcard at case #%d", b.wildcard))
	}
	if fb.call == nil {
		errs = append(errs, errors.Wrap(ErrHandlerSignature, "nil fallback"))
	}
	return b.build(&fb, errs)
}

func (b *Builder[S, R]) build(fb *Fallback[S, R], errs []error) (*Expr[S, R], error) {
	e := &Expr[S, R]{
		cases:    b.cases.Slice(),
		fallback: fb,
	}
	if len(errs) == 0 {
		if err := e.plan(b.props); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		err := combineErrors(errs)
		tracer().Errorf("match %v → %v: %v", reflect.TypeFor[S](), reflect.TypeFor[R](), err)
		return nil, err
	}
	tracer().Debugf("match %v → %v: %d cases, strategy %s",
		reflect.TypeFor[S](), reflect.TypeFor[R](), len(e.cases), e.strategy)
	return e, nil
}
