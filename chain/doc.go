/*
Package chain implements a sequence container backed by a doubly linked
chain of fixed-capacity nodes, commonly known as an unrolled linked list.

Each node stores up to M elements in a dense array prefix, where M is a
fixed even capacity chosen at construction time. The chain is bounded by two
permanent sentinel nodes which never hold data. Balancing follows a single
rule: every node except possibly the last one is at least half full. An
insertion into a full node splits it, a removal that would drop a node below
half occupancy either borrows one element from its successor or absorbs the
successor entirely.

Compared to a plain linked list, grouping elements into blocks improves
cache locality and cuts per-element link overhead; compared to a flat array
it keeps insertion and removal near a known cursor position cheap, because
only one block ever has to shift its elements.

Current status:
  - fixed-capacity nodes with sentinel-bounded chain,
  - index-to-(node,offset) locator,
  - insertion with predecessor redirection and half-split on overflow,
  - removal with successor borrow and full merge on underflow,
  - bidirectional mutating cursor with an explicit movement state machine,
  - in-order traversal and per-node diagnostic views,
  - strict structural invariant checker for tests.

The package is not safe for concurrent use; a chain has a single logical
owner.
*/
package chain

func must(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
