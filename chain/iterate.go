package chain

import "iter"

// ForEach walks elements in logical order.
//
// Iteration stops early if fn returns false.
func (c *Chain[T]) ForEach(fn func(item T) bool) {
	if c == nil || fn == nil {
		return
	}
	for n := c.head.next; n != c.tail; n = n.next {
		for i := 0; i < n.count; i++ {
			if !fn(n.data[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over all elements in logical order.
func (c *Chain[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		c.ForEach(yield)
	}
}

// NodeView is a read-only per-node snapshot used for diagnostics and
// rendering. Items aliases the node's backing storage and is only valid
// until the next mutation.
type NodeView[T any] struct {
	Items    []T
	Capacity int
}

// Nodes returns an iterator over per-node views in chain order. Sentinels
// are not included.
func (c *Chain[T]) Nodes() iter.Seq[NodeView[T]] {
	return func(yield func(NodeView[T]) bool) {
		if c == nil {
			return
		}
		for n := c.head.next; n != c.tail; n = n.next {
			view := NodeView[T]{
				Items:    n.data[:n.count:n.count],
				Capacity: len(n.data),
			}
			if !yield(view) {
				return
			}
		}
	}
}
