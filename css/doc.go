/*
Package css provides option types for CSS style properties.

CSS properties are plentyful and some of them are complicated. Values like
dimensions or positions may be given as keywords ("auto", "inherit") or as
concrete values, which makes them sum types. This package models them as
tagged unions, which may be matched against with package pmatch:

	width := pmatch.Match[css.DimenT, dimen.DU](w).When(
		pmatch.Then1(pattern.As[css.DimenT, dimen.DU](), identity),
		pmatch.Value(pattern.Is[css.DimenT, css.AutoValue](), available),
	).OtherwiseValue(0)

Status

This is a very first draft. It is unstable and the API will change without
notice. Please be patient.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

// see
// https://developer.mozilla.org/en-US/docs/Web/CSS/Reference#dom-css_cssom

import (
	"github.com/npillmayer/pmatch"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pmatch.css'.
func tracer() tracing.Trace {
	return tracing.Select("pmatch.css")
}

// must is for package level match expressions, which are known to be valid.
func must[S, R any](e *pmatch.Expr[S, R], err error) *pmatch.Expr[S, R] {
	if err != nil {
		panic(err)
	}
	return e
}
