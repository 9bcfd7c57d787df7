/*
Package suffixarray builds suffix arrays in linear time and answers
substring queries over them.

Construction uses SA-IS (induced sorting). On top of the suffix array the
package derives the inverse rank array, the LCP array (Kasai) and a
range-minimum structure over it, which gives O(1) longest-common-prefix
queries between any two suffixes. Pattern search is a binary search over
suffix order.

Ordering is by byte value. Nothing here is Unicode-aware; the optional
NFC normalization of the builder only rewrites the input before it is
indexed.

	sa, err := suffixarray.NewBuilder().Build([]byte("banana"))
	if err != nil {
		...
	}
	l, r, _ := sa.FindOccurrences([]byte("ana")) // r-l == 2

A built SuffixArray is immutable and safe for concurrent queries. Build
itself must not run concurrently with anything else on the same value.
*/
package suffixarray

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'suffixarray'
func tracer() tracing.Trace {
	return tracing.Select("suffixarray")
}
