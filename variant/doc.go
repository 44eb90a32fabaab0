/*
Package variant describes tagged unions: closed sets of alternatives with a
runtime-readable active tag.

Go has no sum types. Two stand-ins are supported:

Types implementing Alternatives carry their tag and payload themselves,
e.g. maybe.Maybe or either.Either:

	func (m Maybe[T]) Tag() int                     // index of active alternative
	func (m Maybe[T]) Value() any                   // payload of active alternative
	func (m Maybe[T]) Alternatives() []reflect.Type // payload types, indexed by tag

Interface sums, i.e. an interface type S together with a closed set of concrete
types implementing it, are described by a Schema built from sample values:

	shapes := variant.Of[Shape](Circle{}, Square{}, Triangle{})

The schema assigns tags in sample order and is used by pmatch to dispatch on
the dynamic type of a subject.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package variant

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pmatch.variant'.
func tracer() tracing.Trace {
	return tracing.Select("pmatch.variant")
}
