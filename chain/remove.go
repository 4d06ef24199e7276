package chain

// remove deletes the element at (n, offset) and restores the half-full
// rule. The cases are evaluated in priority order:
//  1. last node losing its only element: splice the node out,
//  2. last node, or a node staying above half occupancy: plain removal,
//  3. borrow-eligible successor: pull its first element over,
//  4. otherwise: absorb the successor entirely and splice it out.
//
// A merge cannot overflow n: reaching case 4 means the successor holds at
// most m/2 elements, and n holds m/2 - 1 after the removal.
//
// size shrinks by exactly one per call.
func (c *Chain[T]) remove(n *node[T], offset int) {
	must(n != c.head && n != c.tail, "remove targets a sentinel")
	must(offset >= 0 && offset < n.count, "remove offset out of range")
	half := c.cfg.NodeSize / 2
	switch {
	case n.next == c.tail && n.count == 1:
		n.remove(offset)
		n.prev.next = c.tail
		c.tail.prev = n.prev
	case n.next == c.tail || n.count > half:
		n.remove(offset)
	case n.next.count > half:
		n.remove(offset)
		n.push(n.next.data[0])
		n.next.remove(0)
	default:
		n.remove(offset)
		next := n.next
		for i := 0; i < next.count; i++ {
			n.push(next.data[i])
		}
		next.next.prev = n
		n.next = next.next
	}
	c.size--
}
