package chain

import "errors"

var (
	// ErrInvalidConfig signals an invalid chain configuration.
	ErrInvalidConfig = errors.New("chain: invalid configuration")
	// ErrIndexOutOfBounds signals an invalid positional index.
	ErrIndexOutOfBounds = errors.New("chain: index out of bounds")
	// ErrNilElement signals an attempt to store a nil element.
	ErrNilElement = errors.New("chain: nil element")
	// ErrNoMovement signals a cursor mutation without a preceding movement.
	ErrNoMovement = errors.New("chain: cursor has no movement context")
	// ErrExhausted signals a cursor step beyond either end of the chain.
	ErrExhausted = errors.New("chain: traversal exhausted")
)
