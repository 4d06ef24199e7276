package chain

import "fmt"

// DefaultNodeSize is the node capacity used when none is configured.
const DefaultNodeSize = 4

// Config configures a chain of fixed-capacity nodes.
type Config struct {
	// NodeSize is the fixed per-node element capacity M. It must be a
	// positive even number; zero selects DefaultNodeSize.
	NodeSize int
}

func (cfg Config) normalized() Config {
	if cfg.NodeSize == 0 {
		cfg.NodeSize = DefaultNodeSize
	}
	return cfg
}

func (cfg Config) validate() error {
	cfg = cfg.normalized()
	if cfg.NodeSize <= 0 {
		return fmt.Errorf("%w: node size %d must be positive", ErrInvalidConfig, cfg.NodeSize)
	}
	if cfg.NodeSize%2 != 0 {
		return fmt.Errorf("%w: node size %d must be even", ErrInvalidConfig, cfg.NodeSize)
	}
	return nil
}
