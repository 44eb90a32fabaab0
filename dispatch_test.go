package pmatch_test

import (
	"math"
	"sync"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/npillmayer/pmatch"
	"github.com/npillmayer/pmatch/either"
	"github.com/npillmayer/pmatch/maybe"
	. "github.com/npillmayer/pmatch/pattern"
	"github.com/npillmayer/pmatch/result"
	"github.com/npillmayer/pmatch/variant"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
)

type shape interface {
	area() float64
}

type circle struct{ r float64 }
type square struct{ a float64 }
type rect struct{ w, h float64 }
type triangle struct{ b, h float64 }

func (c circle) area() float64   { return math.Pi * c.r * c.r }
func (s square) area() float64   { return s.a * s.a }
func (r rect) area() float64     { return r.w * r.h }
func (t triangle) area() float64 { return t.b * t.h / 2 }

var shapes = variant.Of[shape](circle{}, square{}, rect{})

type M = maybe.Maybe[int]

// both builds a match expression twice, with default options and sequentially,
// and checks that both agree on every subject.
func both[S, R any](t *testing.T, strategy pmatch.Strategy, build func(...pmatch.Option) (*pmatch.Expr[S, R], error),
	subjects ...S) {
	//
	t.Helper()
	fast, err := build()
	require.NoError(t, err)
	seq, err := build(pmatch.Sequential())
	require.NoError(t, err)
	assert.Equal(t, strategy, fast.Strategy(), "strategy")
	assert.Equal(t, pmatch.StrategySequential, seq.Strategy(), "sequential strategy")
	for _, s := range subjects {
		assert.Equal(t, seq.Eval(s), fast.Eval(s), "subject %v", s)
	}
}

func TestVariantTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmatch")
	defer teardown()
	//
	maybes := []M{maybe.Just(1), maybe.Just(-3), maybe.Nothing[int](), {}}
	both(t, pmatch.StrategyVariantTable, func(opts ...pmatch.Option) (*pmatch.Expr[M, string], error) {
		return pmatch.Cases[M, string](opts...).When(
			pmatch.Value(Is[M, int](), "just"),
			pmatch.Value(Is[M, maybe.None](), "nothing"),
		).OtherwiseValue("?")
	}, maybes...)
	both(t, pmatch.StrategyVariantTable, func(opts ...pmatch.Option) (*pmatch.Expr[M, string], error) {
		return pmatch.Cases[M, string](opts...).When(
			pmatch.With(Is[M, int](), M.String),
		).OtherwiseValue("unlisted")
	}, maybes...)
	both(t, pmatch.StrategyVariantTable, func(opts ...pmatch.Option) (*pmatch.Expr[M, int], error) {
		return pmatch.Cases[M, int](opts...).When(
			pmatch.Value(Is[M, int](), 1),
			pmatch.Value(Is[M, int](), 2), // shadowed
			pmatch.Value(Any[M](), 3),
		).Total()
	}, maybes...)
	//
	type E = either.Either[int, string]
	both(t, pmatch.StrategyVariantTable, func(opts ...pmatch.Option) (*pmatch.Expr[E, string], error) {
		return pmatch.Cases[E, string](opts...).When(
			pmatch.Value(Is[E, string](), "right"),
			pmatch.Value(Alt[E](either.LeftTag), "left"),
		).Total()
	}, either.Left[int, string](1), either.Right[int]("x"))
}

func TestInterfaceSum(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmatch")
	defer teardown()
	//
	subjects := []shape{circle{1}, square{2}, rect{2, 3}, triangle{2, 2}, nil}
	both(t, pmatch.StrategyVariantTable, func(opts ...pmatch.Option) (*pmatch.Expr[shape, string], error) {
		return pmatch.Cases[shape, string](append(opts, pmatch.Over(shapes))...).When(
			pmatch.Value(Is[shape, circle](), "round"),
			pmatch.Value(Is[shape, square](), "square"),
		).OtherwiseValue("other")
	}, subjects...)
	both(t, pmatch.StrategyPrefilter, func(opts ...pmatch.Option) (*pmatch.Expr[shape, float64], error) {
		return pmatch.Cases[shape, float64](append(opts, pmatch.Over(shapes))...).When(
			pmatch.Then1(As[shape, circle](), func(c circle) float64 { return c.r }),
			pmatch.Then1(As[shape, rect](), func(r rect) float64 { return r.w }),
			pmatch.Value(Pred(func(s shape) bool { return s != nil && s.area() > 1 }), 1.0),
		).OtherwiseValue(0)
	}, subjects...)
	//
	_, err := pmatch.Cases[shape, string](pmatch.Over(shapes)).When(
		pmatch.Value(Is[shape, triangle](), "triangle"),
	).OtherwiseValue("other")
	assert.True(t, errors.Is(err, variant.ErrUnknownAlternative))
	_, err = pmatch.Cases[int, string](pmatch.Over(shapes)).OtherwiseValue("")
	assert.True(t, errors.Is(err, variant.ErrSchema))
	//
	// type patterns look into tagged unions, thus they cannot be alternatives
	// of an interface sum
	_, err = pmatch.Cases[any, string](pmatch.Over(variant.Of[any](maybe.Just(1), "s"))).When(
		pmatch.Value(Is[any, M](), "maybe"),
		pmatch.Value(Is[any, string](), "string"),
	).OtherwiseValue("other")
	assert.True(t, errors.Is(err, variant.ErrSchema), "expected schema error, got %v", err)
	seq, err := pmatch.Cases[any, string]().When(
		pmatch.Value(Is[any, int](), "int"),
		pmatch.Value(Is[any, string](), "string"),
	).OtherwiseValue("other")
	require.NoError(t, err)
	assert.Equal(t, "int", seq.Eval(maybe.Just(1)))
}

func TestPrefilter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmatch")
	defer teardown()
	//
	maybes := []M{maybe.Just(1), maybe.Just(0), maybe.Just(-3), maybe.Nothing[int]()}
	both(t, pmatch.StrategyPrefilter, func(opts ...pmatch.Option) (*pmatch.Expr[M, int], error) {
		return pmatch.Cases[M, int](opts...).When(
			pmatch.Value(Is[M, int](Gt(0)), 1),
			pmatch.Then1(As[M, int](), func(n int) int { return n * 10 }),
			pmatch.Value(Pred(M.IsNothing), -1),
		).OtherwiseValue(99)
	}, maybes...)
	//
	type R = result.Result[int]
	results := []R{result.Ok(7), result.Err[int](errors.New("failed"))}
	both(t, pmatch.StrategyPrefilter, func(opts ...pmatch.Option) (*pmatch.Expr[R, string], error) {
		return pmatch.Cases[R, string](opts...).When(
			pmatch.Value(Is[R, int](), "ok"),
			pmatch.Then1(As[R, error](), func(err error) string { return err.Error() }),
		).OtherwiseValue("?")
	}, results...)
}

func TestAmbiguousAlternative(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmatch")
	defer teardown()
	//
	type E = either.Either[int, int]
	_, err := pmatch.Cases[E, string]().When(
		pmatch.Value(Is[E, int](), "left or right?"),
		pmatch.Value(Any[E](), "other"),
	).Total()
	assert.True(t, errors.Is(err, pmatch.ErrAmbiguousAlternative))
	_, err = pmatch.Cases[E, string](pmatch.Sequential()).When(
		pmatch.Value(Is[E, int](), "left or right?"),
		pmatch.Value(Any[E](), "other"),
	).Total()
	assert.True(t, errors.Is(err, pmatch.ErrAmbiguousAlternative), "reported without fast path, too")
	//
	both(t, pmatch.StrategyVariantTable, func(opts ...pmatch.Option) (*pmatch.Expr[E, string], error) {
		return pmatch.Cases[E, string](opts...).When(
			pmatch.Value(Alt[E](either.RightTag), "right"),
			pmatch.Value(Alt[E](either.LeftTag), "left"),
		).Total()
	}, either.Left[int, int](1), either.Right[int](1))
	_, err = pmatch.Cases[E, string]().When(pmatch.Value(Alt[E](2), "third")).OtherwiseValue("")
	assert.True(t, errors.Is(err, variant.ErrUnknownAlternative))
}

func TestLiteralTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmatch")
	defer teardown()
	//
	both(t, pmatch.StrategyLiteralTable, func(opts ...pmatch.Option) (*pmatch.Expr[string, int], error) {
		return pmatch.Cases[string, int](opts...).When(
			pmatch.Value(Lit("a"), 1),
			pmatch.Value(Lit("b"), 2),
			pmatch.Value(Lit("a"), 3),
			pmatch.Value(Any[string](), 0),
		).Total()
	}, "a", "b", "c", "")
	both(t, pmatch.StrategyLiteralTable, func(opts ...pmatch.Option) (*pmatch.Expr[int, string], error) {
		return pmatch.Cases[int, string](opts...).When(
			pmatch.Value(Lit(1), "one"),
			pmatch.Value(Lit(2), "two"),
		).Otherwise(func(n int) string { return "many" })
	}, 0, 1, 2, 3)
	both(t, pmatch.StrategySequential, func(opts ...pmatch.Option) (*pmatch.Expr[int, string], error) {
		return pmatch.Cases[int, string](opts...).When(
			pmatch.Value(Lit(1), "one"),
			pmatch.Value(Gt(1), "more"),
		).OtherwiseValue("less")
	}, 0, 1, 2)
}

func TestConfiguration(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmatch")
	defer teardown()
	//
	cases := []pmatch.Case[M, string]{
		pmatch.Value(Is[M, int](), "just"),
		pmatch.Value(Any[M](), "nothing"),
	}
	conf := testconfig.Conf{pmatch.KeyFastPath: false}
	e, err := pmatch.Cases[M, string](pmatch.WithConfig(conf)).When(cases...).Total()
	require.NoError(t, err)
	assert.Equal(t, pmatch.StrategyPrefilter, e.Strategy())
	conf = testconfig.Conf{pmatch.KeyFastPath: false, pmatch.KeyPrefilter: false}
	e, err = pmatch.Cases[M, string](pmatch.WithConfig(conf)).When(cases...).Total()
	require.NoError(t, err)
	assert.Equal(t, pmatch.StrategySequential, e.Strategy())
	e, err = pmatch.Cases[M, string](pmatch.WithConfig(testconfig.Conf{})).When(cases...).Total()
	require.NoError(t, err)
	assert.Equal(t, pmatch.StrategyVariantTable, e.Strategy())
	assert.Equal(t, "just", e.Eval(maybe.Just(0)))
}

func TestConcurrentEvaluation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmatch")
	defer teardown()
	//
	justs, nothings := atomic.NewInt64(0), atomic.NewInt64(0)
	for _, opt := range []pmatch.Option{pmatch.Sequential(), pmatch.WithConfig(testconfig.Conf{})} {
		e, err := pmatch.Statements[M](opt).When(
			pmatch.Act1(As[M, int](), func(n int) { justs.Add(int64(n)) }),
			pmatch.Act(Any[M](), func() { nothings.Inc() }),
		).End()
		require.NoError(t, err)
		var wg sync.WaitGroup
		for g := 0; g < 8; g++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := 0; i < 1000; i++ {
					if i%2 == 0 {
						e.Exec(maybe.Just(1))
					} else {
						e.Exec(maybe.Nothing[int]())
					}
				}
			}()
		}
		wg.Wait()
	}
	assert.Equal(t, int64(8000), justs.Load())
	assert.Equal(t, int64(8000), nothings.Load())
}

func TestStrategyNames(t *testing.T) {
	names := map[pmatch.Strategy]string{
		pmatch.StrategySequential:   "sequential",
		pmatch.StrategyVariantTable: "variant-table",
		pmatch.StrategyPrefilter:    "variant-prefilter",
		pmatch.StrategyLiteralTable: "literal-table",
	}
	for s, name := range names {
		assert.Equal(t, name, s.String())
	}
}
