/*
Package pmatch evaluates match expressions: ordered lists of (pattern, handler)
cases applied to a subject value.

	describe, err := pmatch.Cases[int, string]().When(
		pmatch.Value(pattern.Lit(0), "zero"),
		pmatch.Then1(pattern.When(pattern.Bind[int](), pattern.X.Lt(0)),
			func(n int) string { return fmt.Sprintf("negative %d", n) }),
		pmatch.Value(pattern.Between(1, 9, pattern.Closed), "digit"),
	).Otherwise(strconv.Itoa)

	describe.Eval(7)   // "digit"

Cases are tried in declaration order and the first case whose pattern accepts
the subject wins. Its pattern binds a tuple of values which is handed to the
case's handler. If no case matches, the fallback is called. Every handler and
the fallback produce values of the one result type R stated by the client.

Match expressions are assembled by a persistent Builder and validated when
terminated: handler signatures not fitting their patterns' bindings, cases
following a wildcard, a missing wildcard for Total, and guards not fitting their
patterns are all reported then. Evaluation itself never fails.

When a match expression is built, pmatch looks at the shape of its cases and
chooses an evaluation strategy:

■ For subjects being tagged unions (see package variant) where every case
tests for an alternative only, the subject's tag is read once and dispatched
through a table.

■ For tagged unions with mixed cases, cases tied to an alternative which
is not the active one are skipped without being tried.

■ For case lists consisting of literals only, the subject is looked up in a map.

■ Otherwise, cases are tried one after the other.

All strategies produce the same results. Built expressions are immutable and
may be evaluated concurrently.

Statement-style matches, where handlers are called for their side effects
only, are built with Statements.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pmatch

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pmatch'.
func tracer() tracing.Trace {
	return tracing.Select("pmatch")
}
