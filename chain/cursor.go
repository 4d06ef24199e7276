package chain

import "fmt"

// direction records the most recent cursor movement, which determines the
// target of a subsequent Set or Remove.
type direction int8

const (
	noTarget     direction = iota
	behindCursor           // last move was Next: the touched element sits behind the cursor
	aheadCursor            // last move was Prev: the touched element sits ahead of the cursor
)

// Cursor is a bidirectional traversal handle that may mutate the chain it
// walks. It keeps its own (node, offset, index) triple, so edits at the
// cursor position skip the positional locator entirely.
//
// Set and Remove operate on the element the last movement stepped over;
// calling either without a movement context is a protocol error. A chain
// must not be mutated through anything else while a cursor is live.
type Cursor[T any] struct {
	chain  *Chain[T]
	node   *node[T]
	offset int
	index  int
	dir    direction
}

// Cursor returns a cursor positioned at the start of the chain.
func (c *Chain[T]) Cursor() *Cursor[T] {
	cur, err := c.CursorAt(0)
	must(err == nil, "cursor at index 0 must resolve")
	return cur
}

// CursorAt returns a cursor positioned just before the element at index.
// index == Len() yields a cursor at the append position.
func (c *Chain[T]) CursorAt(index int) (*Cursor[T], error) {
	if c == nil {
		return nil, fmt.Errorf("%w: nil chain", ErrInvalidConfig)
	}
	p, err := c.locate(index)
	if err != nil {
		return nil, err
	}
	return &Cursor[T]{chain: c, node: p.node, offset: p.offset, index: index}, nil
}

// HasNext reports whether a forward step remains.
func (cur *Cursor[T]) HasNext() bool {
	return cur != nil && cur.index < cur.chain.size
}

// HasPrev reports whether a backward step remains.
func (cur *Cursor[T]) HasPrev() bool {
	return cur != nil && cur.index > 0
}

// NextIndex returns the logical index of the element a Next call would
// return, which equals Len() at the append position.
func (cur *Cursor[T]) NextIndex() int {
	if cur == nil {
		return 0
	}
	return cur.index
}

// PrevIndex returns the logical index of the element a Prev call would
// return, which is -1 at the start of the chain.
func (cur *Cursor[T]) PrevIndex() int {
	if cur == nil {
		return -1
	}
	return cur.index - 1
}

// Next returns the element ahead of the cursor and steps over it.
func (cur *Cursor[T]) Next() (T, error) {
	var zero T
	if !cur.HasNext() {
		return zero, fmt.Errorf("%w: at end of chain", ErrExhausted)
	}
	cur.normalize()
	item := cur.node.data[cur.offset]
	cur.offset++
	if cur.offset >= cur.node.count {
		cur.node = cur.node.next
		cur.offset = 0
	}
	cur.index++
	cur.dir = behindCursor
	return item, nil
}

// Prev steps backward and returns the element now ahead of the cursor.
func (cur *Cursor[T]) Prev() (T, error) {
	var zero T
	if !cur.HasPrev() {
		return zero, fmt.Errorf("%w: at start of chain", ErrExhausted)
	}
	cur.offset--
	if cur.offset < 0 {
		cur.node = cur.node.prev
		cur.offset = cur.node.count - 1
	}
	cur.index--
	cur.dir = aheadCursor
	return cur.node.data[cur.offset], nil
}

// normalize rolls the position forward across node seams until it points at
// a live slot. An offset may transiently equal a node's live count after
// Add landed an element on a node's last occupied slot.
func (cur *Cursor[T]) normalize() {
	for cur.node != cur.chain.tail && cur.offset >= cur.node.count {
		cur.node = cur.node.next
		cur.offset = 0
	}
}

// Remove deletes the element the last movement stepped over.
//
// After Next it removes the element just passed (behind the cursor); after
// Prev it removes the element just returned (ahead of the cursor), leaving
// the logical index untouched. Calling Remove without a prior movement, or
// twice after one movement, is a protocol error.
func (cur *Cursor[T]) Remove() error {
	if cur == nil || cur.dir == noTarget {
		return fmt.Errorf("%w: Remove needs a preceding Next or Prev", ErrNoMovement)
	}
	if cur.dir == behindCursor {
		cur.offset--
		if cur.offset < 0 {
			cur.node = cur.node.prev
			cur.offset = cur.node.count - 1
		}
		cur.index--
	}
	cur.chain.remove(cur.node, cur.offset)
	if cur.node.count == 0 {
		// The removal spliced the cursor's own node out of the chain. The
		// unlinked node keeps its prev/next, but a later Add must not land
		// an element there, so reattach the cursor to the live chain.
		p, err := cur.chain.locate(cur.index)
		must(err == nil, "cursor index must stay in range after removal")
		cur.node = p.node
		cur.offset = p.offset
	}
	cur.dir = noTarget
	return nil
}

// Set overwrites the element the last movement stepped over.
//
// Set keeps the movement context: it may be repeated, and a later Remove is
// still legal, matching the usual list-iterator protocol.
func (cur *Cursor[T]) Set(item T) error {
	if cur == nil || cur.dir == noTarget {
		return fmt.Errorf("%w: Set needs a preceding Next or Prev", ErrNoMovement)
	}
	if isAbsent(item) {
		return ErrNilElement
	}
	if cur.dir == aheadCursor {
		cur.node.data[cur.offset] = item
		return nil
	}
	if cur.offset > 0 {
		cur.node.data[cur.offset-1] = item
		return nil
	}
	p := cur.node.prev
	p.data[p.count-1] = item
	return nil
}

// Add inserts item at the cursor position and advances just past it, so a
// sequence of Add calls appends in order. Add clears the movement context.
func (cur *Cursor[T]) Add(item T) error {
	if cur == nil {
		return fmt.Errorf("%w: nil cursor", ErrInvalidConfig)
	}
	landed, err := cur.chain.insert(cur.node, cur.offset, item)
	if err != nil {
		return err
	}
	cur.node = landed.node
	cur.offset = landed.offset + 1
	if cur.offset >= cur.chain.cfg.NodeSize {
		cur.node = landed.node.next
		cur.offset = 0
	}
	cur.index++
	cur.dir = noTarget
	return nil
}
