package pattern_test

import (
	"math"
	"reflect"
	"strconv"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/npillmayer/pmatch/maybe"
	. "github.com/npillmayer/pmatch/pattern"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
)

type point struct {
	X, Y int
}

var (
	px = Field("x", func(p point) int { return p.X })
	py = Field("y", func(p point) int { return p.Y })
)

func TestLiterals(t *testing.T) {
	assert.True(t, Lit(7).Match(7))
	assert.False(t, Lit(7).Match(8))
	assert.Equal(t, 7, Lit(7).(Keyed).Key())
	assert.True(t, LitFold("GET").Match("get"))
	assert.False(t, LitFold("GET").Match("post"))
	assert.Equal(t, KindLiteral, LitFold("x").Kind())
	assert.True(t, Equiv[any](1).Match(1.0))
	assert.True(t, Equiv[any](1).Match(uint8(1)))
	assert.True(t, Equiv[any](1).Match("1"))
	assert.False(t, Equiv[any](1).Match("one"))
	assert.True(t, Equiv[string]("abc").Match("abc"))
}

func TestRelational(t *testing.T) {
	assert.True(t, Lt(3).Match(2))
	assert.False(t, Lt(3).Match(3))
	assert.True(t, Le(3).Match(3))
	assert.True(t, Gt(3.5).Match(4.0))
	assert.True(t, Ge("b").Match("b"))
	assert.True(t, Eq(3).Match(3))
	assert.True(t, Ne(3).Match(4))
	cases := []struct {
		b      Bounds
		lo, hi bool
	}{
		{Closed, true, true},
		{Open, false, false},
		{OpenClosed, false, true},
		{ClosedOpen, true, false},
	}
	for _, c := range cases {
		p := Between(1, 9, c.b)
		assert.Equal(t, c.lo, p.Match(1), "low end of %s", String(p))
		assert.Equal(t, c.hi, p.Match(9), "high end of %s", String(p))
		assert.True(t, p.Match(5))
		assert.False(t, p.Match(0))
		assert.False(t, p.Match(10))
	}
}

func TestComposition(t *testing.T) {
	p := And(BindAs(Gt(0)), BindAs(Lt(10)))
	require.True(t, p.Match(5))
	assert.Equal(t, Tuple{5, 5}, p.Bind(5))
	assert.Len(t, p.Binds(), 2)
	assert.False(t, p.Match(11))
	//
	o := Or(BindAs(Lit(1)), BindAs(Lit(2)))
	assert.True(t, o.Match(2))
	assert.Equal(t, Tuple{2}, o.Bind(2))
	assert.Equal(t, []reflect.Type{reflect.TypeFor[int]()}, o.Binds())
	//
	mixed := Or(Bind[int](), Lit(3))
	assert.True(t, mixed.Match(3))
	assert.Nil(t, mixed.Binds(), "operands of different binding signatures make Or bind nothing")
	assert.Nil(t, mixed.Bind(3))
	//
	n := Not(Lit(1))
	assert.True(t, n.Match(2))
	assert.False(t, n.Match(1))
	assert.Nil(t, n.Binds())
	//
	assert.Error(t, Validate(And[int]()))
}

func TestAlternatives(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pmatch.pattern")
	defer teardown()
	//
	just := Is[maybe.Maybe[int], int]()
	nothing := Is[maybe.Maybe[int], maybe.None]()
	assert.True(t, just.Match(maybe.Just(3)))
	assert.False(t, just.Match(maybe.Nothing[int]()))
	assert.True(t, nothing.Match(maybe.Nothing[int]()))
	tie, ok := TieOf(just)
	require.True(t, ok)
	assert.True(t, tie.Simple)
	assert.Equal(t, reflect.TypeFor[int](), tie.Type)
	//
	pos := Is[maybe.Maybe[int], int](Gt(0))
	assert.True(t, pos.Match(maybe.Just(3)))
	assert.False(t, pos.Match(maybe.Just(-3)))
	tie, _ = TieOf(pos)
	assert.False(t, tie.Simple)
	//
	as := As[maybe.Maybe[int], int]()
	assert.Equal(t, Tuple{3}, as.Bind(maybe.Just(3)))
	//
	alt := Alt[maybe.Maybe[string]](maybe.JustTag)
	assert.True(t, alt.Match(maybe.Just("x")))
	assert.False(t, alt.Match(maybe.Nothing[string]()))
	altx := Alt[maybe.Maybe[string]](maybe.JustTag, BindAs(Equiv[any]("x")))
	assert.True(t, altx.Match(maybe.Just("x")))
	assert.Equal(t, Tuple{"x"}, altx.Bind(maybe.Just("x")))
	//
	oneOf := IsOneOf[any](reflect.TypeFor[int](), reflect.TypeFor[string]())
	assert.True(t, oneOf.Match("s"))
	assert.False(t, oneOf.Match(1.0))
	assert.True(t, IsNoneOf[any](reflect.TypeFor[int]()).Match(1.0))
	_, ok = TieOf(oneOf)
	assert.False(t, ok)
}

func TestStructural(t *testing.T) {
	h := Has(px, py)
	assert.True(t, h.Match(point{1, 2}))
	assert.Nil(t, h.Binds())
	b := BindAs(h)
	assert.Equal(t, Tuple{1, 2}, b.Bind(point{1, 2}))
	assert.Equal(t, []reflect.Type{reflect.TypeFor[int](), reflect.TypeFor[int]()}, b.Binds())
	//
	positive := Has(Field("x", func(p point) int { return p.X }, Gt(0)))
	assert.True(t, positive.Match(point{1, 0}))
	assert.False(t, positive.Match(point{-1, 0}))
	//
	env := map[string]string{"HOME": "/root"}
	home := FieldOK("HOME", func(m map[string]string) (string, bool) {
		v, ok := m["HOME"]
		return v, ok
	})
	shell := FieldOK("SHELL", func(m map[string]string) (string, bool) {
		v, ok := m["SHELL"]
		return v, ok
	})
	assert.True(t, Has(home).Match(env))
	assert.False(t, Has(home, shell).Match(env))
	assert.Equal(t, Tuple{"/root"}, BindAs(Has(home)).Bind(env))
	//
	bs := BindAs(Lit(4))
	assert.Equal(t, Tuple{4}, bs.Bind(4))
	assert.Error(t, Validate(Has[point]()))
}

func TestGuardShortCircuit(t *testing.T) {
	calls := atomic.NewInt32(0)
	g := When(Bind[int](), Test(func(n int) bool {
		calls.Inc()
		return n > 0
	}))
	never := When(And(Lit(1), Lit(2)), All(func(Tuple) bool {
		calls.Inc()
		return true
	}))
	assert.False(t, never.Match(1))
	assert.Equal(t, int32(0), calls.Load())
	assert.True(t, g.Match(5))
	assert.False(t, g.Match(-5))
	assert.Equal(t, int32(2), calls.Load())
}

type countingBind struct {
	binds *atomic.Int32
}

func (c countingBind) Match(int) bool { return true }
func (c countingBind) Bind(s int) Tuple {
	c.binds.Inc()
	return Tuple{s}
}
func (c countingBind) Binds() []reflect.Type { return []reflect.Type{reflect.TypeFor[int]()} }
func (c countingBind) Kind() Kind            { return KindBind }

func TestGuardBindsOnce(t *testing.T) {
	inner := countingBind{binds: atomic.NewInt32(0)}
	g := When[int](inner, X.Gt(0))
	mb, ok := g.(MatchBinder[int])
	require.True(t, ok)
	tuple, ok := mb.MatchBind(3)
	require.True(t, ok)
	assert.Equal(t, Tuple{3}, tuple)
	assert.Equal(t, int32(1), inner.binds.Load())
}

func TestGuardArity(t *testing.T) {
	err := Validate(When(BindAs(Has(px, py)), X.Gt(0)))
	assert.True(t, errors.Is(err, ErrGuardArity), "err = %v", err)
	err = Validate(When(Lit(1), Test(func(int) bool { return true })))
	assert.True(t, errors.Is(err, ErrGuardArity), "err = %v", err)
	err = Validate(When(BindAs(Has(px)), Arg(1).Gt(0)))
	assert.True(t, errors.Is(err, ErrGuardArity), "err = %v", err)
	err = Validate(When(BindAs(Has(px)), Arg(-1).Gt(0)))
	assert.True(t, errors.Is(err, ErrGuardArity), "err = %v", err)
	err = Validate(When(Bind[string](), Test(func(int) bool { return true })))
	assert.True(t, errors.Is(err, ErrPredicateSignature), "err = %v", err)
	err = Validate(When(BindAs(Has(px, py)), Fn(func(x int) bool { return true })))
	assert.True(t, errors.Is(err, ErrGuardArity), "err = %v", err)
	err = Validate(When(BindAs(Has(px, py)), Fn(func(x, y string) bool { return true })))
	assert.True(t, errors.Is(err, ErrPredicateSignature), "err = %v", err)
	// a misconfigured guard never matches
	assert.False(t, When(Lit(1), X.Gt(0)).Match(1))
}

func TestGuardPredicates(t *testing.T) {
	xy := BindAs(Has(px, py))
	sum := When(xy, Arg(0).Add(Arg(1)).Gt(10))
	assert.True(t, sum.Match(point{5, 6}))
	assert.False(t, sum.Match(point{5, 5}))
	assert.Equal(t, Tuple{5, 6}, sum.Bind(point{5, 6}))
	//
	diag := When(xy, Arg(0).Eq(Arg(1)).Or(Arg(0).Mul(-1).Eq(Arg(1))))
	assert.True(t, diag.Match(point{3, 3}))
	assert.True(t, diag.Match(point{3, -3}))
	assert.False(t, diag.Match(point{3, 4}))
	//
	even := When(Bind[int](), Arg(0).Mod(2).Eq(0))
	assert.True(t, even.Match(4))
	assert.False(t, even.Match(3))
	byZero := When(Bind[int](), Arg(0).Div(0).Gt(0))
	assert.False(t, byZero.Match(4))
	//
	lt := When(xy, Fn(func(x, y int) bool { return x < y }))
	assert.True(t, lt.Match(point{1, 2}))
	assert.False(t, lt.Match(point{2, 1}))
	//
	digit := When(Bind[int](), X.Ge(0).And(X.Le(9)))
	assert.True(t, digit.Match(0))
	assert.False(t, digit.Match(10))
	assert.True(t, When(Bind[int](), X.Eq(3).Not()).Match(4))
	assert.True(t, When(Bind[float64](), Rng(0, 1, ClosedOpen)).Match(0.5))
	assert.False(t, When(Bind[float64](), Rng(0, 1, ClosedOpen)).Match(1.0))
	assert.True(t, When(Bind[int](), X.In(1, 3, Open)).Match(2))
	assert.True(t, When(Bind[string](), X.Gt(5)).Match("10"), "strings compare to numbers numerically")
	assert.True(t, When(Bind[string](), Test(func(s string) bool {
		_, err := strconv.Atoi(s)
		return err == nil
	})).Match("42"))
	//
	huge := uint64(math.MaxUint64)
	assert.False(t, Equiv[any](huge).Match(-1))
	assert.True(t, Equiv[any](huge).Match(huge))
	assert.False(t, Equiv[any](huge).Match(huge-1))
	assert.True(t, When(Bind[uint64](), X.Gt(0)).Match(huge))
	assert.True(t, When(Bind[uint64](), X.Gt(uint64(math.MaxInt64))).Match(huge))
	assert.False(t, When(Bind[int64](), X.Gt(huge)).Match(math.MaxInt64))
	assert.True(t, When(Bind[uint64](), Rng(0, huge, Closed)).Match(huge-1))
}

type ints []int

func TestAssignablePredicates(t *testing.T) {
	three := When(Bind[[]int](), Test(func(x ints) bool { return len(x) == 3 }))
	require.NoError(t, Validate(three))
	assert.True(t, three.Match([]int{1, 2, 3}))
	assert.False(t, three.Match([]int{1}))
	//
	sum := When(Bind[[]int](), Fn(func(x ints) bool { return len(x) == 2 && x[0]+x[1] == 5 }))
	require.NoError(t, Validate(sum))
	assert.True(t, sum.Match([]int{2, 3}))
	//
	assert.Equal(t, ints{4}, At[ints](Tuple{[]int{4}}, 0))
	assert.Equal(t, 0, At[int](Tuple{nil}, 0))
}

func TestNilOperands(t *testing.T) {
	assert.True(t, errors.Is(Validate(Or(nil, Lit(1))), ErrPattern))
	assert.True(t, errors.Is(Validate(Or(Lit(1), nil)), ErrPattern))
	assert.True(t, errors.Is(Validate(And[int](nil)), ErrPattern))
	assert.True(t, errors.Is(Validate(BindAs[int](nil)), ErrPattern))
	assert.Equal(t, 1, Arity(BindAs[int](nil)))
	assert.Equal(t, "or(nil, lit(1))", String(Or(nil, Lit(1))))
}

func TestString(t *testing.T) {
	assert.Equal(t, "_", String(Any[int]()))
	assert.Equal(t, "lit(7)", String(Lit(7)))
	assert.Equal(t, "bind(has{x, y}) if arg<0> < arg<1>",
		String(When(BindAs(Has(px, py)), Arg(0).Lt(Arg(1)))))
	assert.Equal(t, "and(< 3, not(lit(1)))", String(And(Lt(3), Not(Lit(1)))))
}
