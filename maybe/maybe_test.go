package maybe_test

import (
	"strconv"
	"testing"

	"github.com/npillmayer/pmatch"
	. "github.com/npillmayer/pmatch/maybe"
	"github.com/npillmayer/pmatch/pattern"
	"github.com/npillmayer/pmatch/variant"
)

func TestMaybeSimple(t *testing.T) {
	x := Just(7) // infers type
	y := Nothing[int]()
	if v, ok := x.Get(); !ok || v != 7 {
		t.Errorf("expected x to be Just(7), is %v", x)
	}
	if _, ok := y.Get(); ok || !y.IsNothing() {
		t.Errorf("expected y to be Nothing, is %v", y)
	}
	var z Maybe[string]
	if !z.IsNothing() {
		t.Errorf("expected zero value to be Nothing, is %v", z)
	}
}

func TestMaybeMatch(t *testing.T) {
	show, err := pmatch.Cases[Maybe[int], string]().When(
		pmatch.Then1(pattern.As[Maybe[int], int](), strconv.Itoa),
		pmatch.Value(pattern.Any[Maybe[int]](), "-"),
	).Total()
	if err != nil {
		t.Fatal(err)
	}
	if s := show.Eval(Just(7)); s != "7" {
		t.Errorf("expected Just(7) to show as 7, is %q", s)
	}
	if s := show.Eval(Nothing[int]()); s != "-" {
		t.Errorf("expected Nothing to show as -, is %q", s)
	}
	sch, ok := variant.Resolve[Maybe[int]]()
	if !ok || sch.Len() != 2 {
		t.Fatalf("expected Maybe to be a tagged union of 2 alternatives, schema is %v", sch)
	}
	if sch.Tag(Nothing[int]()) != NothingTag || sch.Tag(Just(1)) != JustTag {
		t.Errorf("unexpected tags for Maybe")
	}
}

func TestMaybeWithDefault(t *testing.T) {
	x := Just(7)
	xx := x.WithDefault(100)
	if xx != 7 {
		t.Logf("y = %d", xx)
		t.Error("expected Just(7) to have value 7, isn't")
	}

	y := Nothing[int]()
	yy := y.WithDefault(100)
	if yy != 100 {
		t.Logf("y = %d", yy)
		t.Error("expected Nothing to default to 100, isn't")
	}
}

func TestMaybeMap(t *testing.T) {
	x := Just(7)
	xx := x.Map(func(n int) int {
		return n * 2
	})
	if v := xx.WithDefault(0); v != 14 {
		t.Logf("x * 2 = %d", v)
		t.Error("expected Just(7).Map(…) to return 14, didn't")
	}

	s := Map(strconv.Itoa, Just(10))
	if v := s.WithDefault(""); v != "10" {
		t.Logf("x = %q", v)
		t.Error("expected Map(Itoa, Just 10) to return \"10\", didn't")
	}

	y := Nothing[int]()
	yy := y.Map(func(n int) int {
		return n * 2
	})
	if !yy.IsNothing() {
		t.Error("expected Nothing.Map(…) to return Nothing, didn't")
	}
}

func TestMaybeAndThen(t *testing.T) {
	gt0 := func(n int) Maybe[bool] {
		if n > 0 {
			return Just(true)
		}
		return Nothing[bool]()
	}
	if isGreater := AndThen(gt0, Just(7)); isGreater.IsNothing() {
		t.Error("expected Just(7) |> andThen(gt0) to be true, isn't")
	}
	if isGreater := AndThen(gt0, Just(-7)); !isGreater.IsNothing() {
		t.Error("expected Just(-7) |> andThen(gt0) to be Nothing, isn't")
	}
	if isGreater := AndThen(gt0, Nothing[int]()); !isGreater.IsNothing() {
		t.Error("expected Nothing |> andThen(gt0) to be Nothing, isn't")
	}
}
