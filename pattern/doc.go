/*
Package pattern implements patterns for pmatch expressions.

A pattern is a predicate over a subject value together with an extractor
for the values it binds:

	Match(S) bool   // does the subject fit?
	Bind(S) Tuple   // values handed to a case handler; only called after a match

The number and types of bound values are a static property of a pattern,
reported by Binds(). Patterns are immutable and side-effect free, thus may
be shared between goroutines.

Patterns come in a closed set of kinds (see Kind), which lets the evaluator
recognize shapes it can dispatch more efficiently:

	Any[S]()                      wildcard, binds nothing
	Lit(7), LitFold("get")        literal equality
	Lt(0), Between(1, 9, Closed)  relational tests
	Pred(func(S) bool)            arbitrary predicate
	Is[S, A](), Alt[S](1)         alternative tests on tagged unions
	Has(Field(…), …)              structural tests
	Bind[S](), BindAs(sub)        value binding
	When(p, pred)                 guards over the values bound by p
	And(…), Or(…), Not(p)         composition

Guard predicates are either plain Go functions or small expressions over
bound values:

	When(BindAs(Has(x, y)), Arg(0).Add(Arg(1)).Gt(10))
	When(Bind[int](), X.Gt(0).And(X.Lt(10)))

Configuration errors, like a guard predicate referencing more values than its
pattern binds, are reported by Validate and surface when a match expression is
built, never during matching.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package pattern

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pmatch.pattern'.
func tracer() tracing.Trace {
	return tracing.Select("pmatch.pattern")
}
