package chain

import "reflect"

// insert places item at the requested (node, offset) slot and returns the
// position where it actually landed, which may differ from the request when
// a redirection or split applies.
//
// The cases are evaluated in priority order:
//  1. empty chain: splice a fresh node between the sentinels,
//  2. offset 0 with a non-full real predecessor: append there instead,
//  3. append position with a full last node: open a fresh node before tail,
//  4. room in the target node: shift and place,
//  5. split: move the upper half of the full node into a fresh successor,
//     then place into whichever half owns the offset.
//
// size grows by exactly one per successful call.
func (c *Chain[T]) insert(n *node[T], offset int, item T) (position[T], error) {
	if isAbsent(item) {
		return position[T]{}, ErrNilElement
	}
	m := c.cfg.NodeSize
	var landed position[T]
	switch {
	case c.size == 0:
		fresh := newNode[T](m)
		fresh.push(item)
		c.spliceAfter(c.head, fresh)
		landed = position[T]{node: fresh}
	case offset == 0 && n.prev != c.head && n.prev.count < m:
		// Keeps nodes packed from the left without shifting inside n.
		n.prev.push(item)
		landed = position[T]{node: n.prev, offset: n.prev.count - 1}
	case offset == 0 && n == c.tail && n.prev.count == m:
		fresh := newNode[T](m)
		fresh.push(item)
		c.spliceAfter(c.tail.prev, fresh)
		landed = position[T]{node: fresh}
	case n.count < m:
		n.insert(offset, item)
		landed = position[T]{node: n, offset: offset}
	default:
		// n is full. Split off its upper half into a fresh successor; both
		// halves end up with m/2 elements before the new one is placed, so
		// neither violates the half-full rule.
		fresh := newNode[T](m)
		c.spliceAfter(n, fresh)
		half := m / 2
		for i := half; i < m; i++ {
			fresh.push(n.data[i])
		}
		n.truncate(half)
		if offset <= half {
			n.insert(offset, item)
			landed = position[T]{node: n, offset: offset}
		} else {
			fresh.insert(offset-half, item)
			landed = position[T]{node: fresh, offset: offset - half}
		}
	}
	c.size++
	return landed, nil
}

// spliceAfter links fresh into the chain immediately after n.
func (c *Chain[T]) spliceAfter(n, fresh *node[T]) {
	fresh.prev = n
	fresh.next = n.next
	n.next.prev = fresh
	n.next = fresh
}

// isAbsent reports whether item is a nil value of a nillable kind.
//
// Value kinds are never absent; the check exists so that pointer-, map-, or
// interface-typed chains refuse nil elements up front instead of handing
// them to a comparison or rendering later.
func isAbsent[T any](item T) bool {
	v := reflect.ValueOf(&item).Elem()
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
