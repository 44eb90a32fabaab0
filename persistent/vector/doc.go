/*
Package vector implements an immutable persistent vector, designed for use-cases
similar to Go slices which are appended to but never shrink.

An immutable persistent vector has copy-on-write behaviour: Each “modification” of the vector
(appending or replacement) creates a copy, leaving the original unmodified.
Under the hood, copy-on-write retains most of the memory held by the original, and creates
a new incarnation of the path to the modified slot only. Thus, most of the structure/memory
is shared between original and copy, transparently to clients.

The vector is a bit-partitioned trie of degree 2^k with a separate tail bucket, which makes
appending amortized O(1) and indexing O(log_{2^k} n).

pmatch uses vectors to store the case lists of persistent match builders: extending a
builder never disturbs expressions built from its predecessors.

Immutable vectors are inherently concurrency-safe.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package vector

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pmatch.vector'.
func tracer() tracing.Trace {
	return tracing.Select("pmatch.vector")
}
