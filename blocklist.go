package blocklist

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"iter"

	"github.com/npillmayer/blocklist/chain"
)

// Errors surfaced by this package are the engine's sentinel errors,
// re-exported so that callers need not import package chain.
var (
	ErrInvalidConfig    = chain.ErrInvalidConfig
	ErrIndexOutOfBounds = chain.ErrIndexOutOfBounds
	ErrNilElement       = chain.ErrNilElement
	ErrNoMovement       = chain.ErrNoMovement
	ErrExhausted        = chain.ErrExhausted
)

// List stores an ordered sequence of elements in fixed-capacity blocks.
//
// The zero value is a valid empty list with the default block size; lists
// with a custom block size are created with WithNodeSize.
type List[T any] struct {
	chain *chain.Chain[T]
}

// New creates an empty list with the default block size.
func New[T any]() *List[T] {
	l, err := WithNodeSize[T](chain.DefaultNodeSize)
	assert(err == nil, "default node size must validate")
	return l
}

// WithNodeSize creates an empty list whose blocks hold m elements each.
// m must be a positive even number.
func WithNodeSize[T any](m int) (*List[T], error) {
	c, err := chain.New[T](chain.Config{NodeSize: m})
	if err != nil {
		return nil, err
	}
	return &List[T]{chain: c}, nil
}

// ensure materializes the backing chain, so that the zero value behaves
// like an empty list with the default block size.
func (l *List[T]) ensure() *chain.Chain[T] {
	if l.chain == nil {
		c, err := chain.New[T](chain.Config{})
		assert(err == nil, "default chain config must validate")
		l.chain = c
	}
	return l.chain
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.chain.Len()
}

// IsEmpty reports whether the list has no elements.
func (l *List[T]) IsEmpty() bool {
	return l.Len() == 0
}

// NodeSize returns the fixed block capacity of this list.
func (l *List[T]) NodeSize() int {
	return l.ensure().NodeSize()
}

// At returns the element at index.
func (l *List[T]) At(index int) (T, error) {
	return l.ensure().At(index)
}

// Insert places item before the element at index; index == Len() appends.
func (l *List[T]) Insert(index int, item T) error {
	return l.ensure().InsertAt(index, item)
}

// Append adds item at the end of the list.
func (l *List[T]) Append(item T) error {
	return l.ensure().Push(item)
}

// RemoveAt deletes and returns the element at index.
func (l *List[T]) RemoveAt(index int) (T, error) {
	return l.ensure().RemoveAt(index)
}

// Values returns an iterator over all elements in logical order.
func (l *List[T]) Values() iter.Seq[T] {
	return l.ensure().Values()
}

// Iterator returns a mutating bidirectional cursor at the start of the
// list. The list must not be modified through anything else while the
// cursor is in use.
func (l *List[T]) Iterator() *chain.Cursor[T] {
	return l.ensure().Cursor()
}

// IteratorAt returns a mutating bidirectional cursor positioned just
// before the element at index; index == Len() starts at the append
// position.
func (l *List[T]) IteratorAt(index int) (*chain.Cursor[T], error) {
	return l.ensure().CursorAt(index)
}
