package chain

import "fmt"

// Check validates structural chain invariants.
//
// This checker is intentionally strict and meant for tests: sentinel links
// must be mutual, every real node except the last must be at least half
// full, and the recorded size must match the sum of node counts.
func (c *Chain[T]) Check() error {
	if c == nil {
		return fmt.Errorf("%w: nil chain", ErrInvalidConfig)
	}
	if c.head == nil || c.tail == nil {
		return fmt.Errorf("%w: missing sentinel", ErrInvalidConfig)
	}
	if c.head.count != 0 || c.tail.count != 0 {
		return fmt.Errorf("%w: sentinel holds data", ErrInvalidConfig)
	}
	m := c.cfg.NodeSize
	total := 0
	prev := c.head
	for n := c.head.next; n != c.tail; n = n.next {
		if n == nil {
			return fmt.Errorf("%w: broken next link after %d elements", ErrInvalidConfig, total)
		}
		if n.prev != prev {
			return fmt.Errorf("%w: prev link not mutual", ErrInvalidConfig)
		}
		if len(n.data) != m {
			return fmt.Errorf("%w: node capacity %d, want %d", ErrInvalidConfig, len(n.data), m)
		}
		if n.count < 1 || n.count > m {
			return fmt.Errorf("%w: node count %d outside [1,%d]", ErrInvalidConfig, n.count, m)
		}
		if n.next != c.tail && n.count < m/2 {
			return fmt.Errorf("%w: non-last node count %d below half capacity %d",
				ErrInvalidConfig, n.count, m/2)
		}
		total += n.count
		prev = n
	}
	if c.tail.prev != prev {
		return fmt.Errorf("%w: tail prev link not mutual", ErrInvalidConfig)
	}
	if total != c.size {
		return fmt.Errorf("%w: size %d differs from node total %d", ErrInvalidConfig, c.size, total)
	}
	return nil
}
