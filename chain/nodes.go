package chain

// node is one block of the chain: a fixed-capacity element array with a
// dense live prefix plus links to both neighbors.
//
// The two sentinel nodes head and tail never hold data; they are allocated
// once per chain and never unlinked. Unlinking a real node deliberately
// leaves its own prev/next intact so that a cursor parked on it can still
// step off.
type node[T any] struct {
	// data is the fixed backing storage; valid elements are data[:count].
	data  []T
	count int
	prev  *node[T]
	next  *node[T]
}

func newNode[T any](capacity int) *node[T] {
	return &node[T]{data: make([]T, capacity)}
}

// push appends item at the first free slot.
func (n *node[T]) push(item T) {
	must(n.count < len(n.data), "node push exceeds fixed capacity")
	n.data[n.count] = item
	n.count++
}

// insert places item at offset, shifting the rest of the live prefix right.
func (n *node[T]) insert(offset int, item T) {
	must(n.count < len(n.data), "node insert exceeds fixed capacity")
	must(offset >= 0 && offset <= n.count, "node insert offset out of range")
	copy(n.data[offset+1:n.count+1], n.data[offset:n.count])
	n.data[offset] = item
	n.count++
}

// remove deletes the element at offset, shifting the remainder left and
// zeroing the vacated slot so stale elements do not pin memory.
func (n *node[T]) remove(offset int) {
	must(offset >= 0 && offset < n.count, "node remove offset out of range")
	copy(n.data[offset:], n.data[offset+1:n.count])
	var zero T
	n.data[n.count-1] = zero
	n.count--
}

// truncate drops the live prefix down to k elements, zeroing vacated slots.
func (n *node[T]) truncate(k int) {
	must(k >= 0 && k <= n.count, "node truncate out of range")
	var zero T
	for i := k; i < n.count; i++ {
		n.data[i] = zero
	}
	n.count = k
}
