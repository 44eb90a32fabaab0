package pmatch

import (
	"github.com/cockroachdb/errors"
	"github.com/npillmayer/pmatch/pattern"
	"github.com/npillmayer/pmatch/variant"
)

// ErrHandlerSignature is flagged if a handler cannot accept the values bound by
// its case's pattern.
var ErrHandlerSignature = errors.New("handler signature does not fit pattern bindings")

// ErrCaseAfterWildcard is flagged for cases following a wildcard case, as they
// are unreachable.
var ErrCaseAfterWildcard = errors.New("case after wildcard is unreachable")

// ErrNotExhaustive is flagged if a match expression terminated without a
// fallback has no wildcard case.
var ErrNotExhaustive = errors.New("match without fallback is not terminated by a wildcard case")

// ErrWildcardAndFallback is flagged if a fallback is given for a match
// expression already terminated by a wildcard case.
var ErrWildcardAndFallback = errors.New("fallback given for match terminated by wildcard")

// ErrVoidResult is flagged if a match expression of result type Void is
// requested to produce a value. Use Statements instead.
var ErrVoidResult = errors.New("statement-style match cannot produce a value")

// ErrNoCases is flagged for match expressions with neither cases nor fallback.
var ErrNoCases = errors.New("match without cases and fallback")

// Errors of guards and tagged unions, re-exported for convenience.
var (
	ErrGuardArity           = pattern.ErrGuardArity
	ErrAmbiguousAlternative = variant.ErrAmbiguousAlternative
)

func combineErrors(errs []error) error {
	var err error
	for _, e := range errs {
		err = errors.CombineErrors(err, e)
	}
	return err
}
