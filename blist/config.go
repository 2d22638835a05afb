package blist

import (
	"fmt"

	"github.com/npillmayer/blist/svec"
)

const (
	// DefaultNodeCapacity is the node capacity used when a Config leaves
	// NodeCapacity unset.
	DefaultNodeCapacity = 128
	// MinNodeCapacity is the smallest node capacity a Config may request.
	MinNodeCapacity = 4
	// MaxNodeCapacity is the largest node capacity a Config may request,
	// bounded by svec's fixed backing array size.
	MaxNodeCapacity = svec.MaxCapacity
)

// Config configures the node capacity of a BList.
type Config struct {
	// NodeCapacity is N: the maximum number of elements held by a leaf, or
	// children held by an internal node. Must be even and in
	// [MinNodeCapacity, MaxNodeCapacity]. Zero means DefaultNodeCapacity.
	NodeCapacity int
}

func (cfg Config) normalized() Config {
	if cfg.NodeCapacity == 0 {
		cfg.NodeCapacity = DefaultNodeCapacity
	}
	return cfg
}

func (cfg Config) validate() error {
	cfg = cfg.normalized()
	if cfg.NodeCapacity < MinNodeCapacity || cfg.NodeCapacity > MaxNodeCapacity {
		return fmt.Errorf("%w: node capacity %d not in [%d, %d]", ErrInvalidConfig, cfg.NodeCapacity, MinNodeCapacity, MaxNodeCapacity)
	}
	if cfg.NodeCapacity%2 != 0 {
		return fmt.Errorf("%w: node capacity %d is not even", ErrInvalidConfig, cfg.NodeCapacity)
	}
	return nil
}

func (cfg Config) half() int {
	return cfg.NodeCapacity / 2
}
