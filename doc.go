/*
Package blocklist provides a sequence container that stores its elements in
a doubly-linked chain of fixed-capacity blocks, a structure commonly known
as an unrolled linked list.

# Unrolled linked lists

From Wikipedia:
In computer programming, an unrolled linked list is a variation on the
linked list which stores multiple elements in each node. It can
dramatically increase cache performance, while decreasing the memory
overhead associated with storing list metadata such as references. It is
related to the B-tree.

Every block except possibly the last one is kept at least half full. An
insertion into a full block splits it in two; a removal that would leave a
block underfull either borrows an element from the next block or absorbs
that block entirely. This single balancing rule bounds the per-element
memory overhead and keeps positional lookups proportional to the number of
blocks rather than the number of elements.

Due to their internal structure, block lists have performance
characteristics between those of a slice and a plain linked list:

	Operation      |  Block list     |  Slice
	---------------+-----------------+--------
	Index          |  O(n/M)         |  O(1)
	Iterate        |  O(n)           |  O(n)
	Insert at i    |  O(n/M + M)     |  O(n)
	Remove at i    |  O(n/M + M)     |  O(n)
	Insert at curs.|  O(M)           |  O(n)

where M is the block capacity. For workloads that edit frequently near a
cursor position, block lists offer stable performance without the shifting
costs of a flat array.

Lists are not safe for concurrent use; a list has a single logical owner.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package blocklist

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to a global core-tracer. A package-level accessor would
// usually be called T, but generic code in this package would shadow that
// name with its type parameter.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
