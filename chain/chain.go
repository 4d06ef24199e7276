package chain

import "fmt"

// Chain is a sequence container storing elements in a doubly linked chain
// of fixed-capacity nodes.
//
// Every node except possibly the last one holds at least NodeSize/2
// elements, which bounds the number of nodes a positional lookup has to
// traverse. The zero value is not usable; chains are created with New.
type Chain[T any] struct {
	cfg  Config
	head *node[T]
	tail *node[T]
	size int
}

// position addresses one slot inside the chain.
//
// offset may equal node.count only when node is the tail sentinel, which
// denotes the append position.
type position[T any] struct {
	node   *node[T]
	offset int
}

// New creates an empty chain with validated configuration.
func New[T any](cfg Config) (*Chain[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	head := &node[T]{}
	tail := &node[T]{}
	head.next = tail
	tail.prev = head
	return &Chain[T]{cfg: cfg, head: head, tail: tail}, nil
}

// Config returns a copy of the effective chain configuration.
func (c *Chain[T]) Config() Config {
	return c.cfg
}

// NodeSize returns the fixed per-node element capacity.
func (c *Chain[T]) NodeSize() int {
	return c.cfg.NodeSize
}

// IsEmpty reports whether the chain has no elements.
func (c *Chain[T]) IsEmpty() bool {
	return c == nil || c.size == 0
}

// Len returns the number of elements in the chain.
func (c *Chain[T]) Len() int {
	if c == nil {
		return 0
	}
	return c.size
}

// locate resolves a logical index to a (node, offset) pair by walking node
// counts from the front. An empty chain and index == size both resolve to
// the append position (tail, 0).
func (c *Chain[T]) locate(index int) (position[T], error) {
	if index < 0 || index > c.size {
		return position[T]{}, fmt.Errorf("%w: %d", ErrIndexOutOfBounds, index)
	}
	if c.size == 0 || index == c.size {
		return position[T]{node: c.tail}, nil
	}
	n := c.head.next
	pos := 0
	for pos+n.count <= index {
		pos += n.count
		n = n.next
	}
	return position[T]{node: n, offset: index - pos}, nil
}

// At returns the element at index.
func (c *Chain[T]) At(index int) (T, error) {
	var zero T
	if c == nil || index < 0 || index >= c.Len() {
		return zero, fmt.Errorf("%w: %d", ErrIndexOutOfBounds, index)
	}
	p, err := c.locate(index)
	if err != nil {
		return zero, err
	}
	return p.node.data[p.offset], nil
}

// InsertAt inserts item before the element at index; index == Len()
// appends. The structure is left unchanged when an error is returned.
func (c *Chain[T]) InsertAt(index int, item T) error {
	if c == nil {
		return fmt.Errorf("%w: nil chain", ErrInvalidConfig)
	}
	p, err := c.locate(index)
	if err != nil {
		return err
	}
	_, err = c.insert(p.node, p.offset, item)
	return err
}

// Push appends item at the end of the chain.
func (c *Chain[T]) Push(item T) error {
	return c.InsertAt(c.Len(), item)
}

// RemoveAt deletes and returns the element at index.
func (c *Chain[T]) RemoveAt(index int) (T, error) {
	var zero T
	if c == nil || index < 0 || index >= c.Len() {
		return zero, fmt.Errorf("%w: %d", ErrIndexOutOfBounds, index)
	}
	p, err := c.locate(index)
	if err != nil {
		return zero, err
	}
	item := p.node.data[p.offset]
	c.remove(p.node, p.offset)
	return item, nil
}
