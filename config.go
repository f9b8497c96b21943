package dlist

import "fmt"

const (
	// DefaultMinCapacity is the count an over-capacity cache is trimmed back to.
	DefaultMinCapacity = 1000
	// DefaultMaxCapacity is the count at which a cache is considered full.
	DefaultMaxCapacity = 10000
)

// CacheOptions holds the capacity configuration for an MRU cache.
type CacheOptions struct {
	// MinCapacity is the number of entries kept after an eviction pass.
	MinCapacity int `json:"min_capacity"`
	// MaxCapacity is the number of entries at which the cache is full.
	// Eviction kicks in once it is exceeded.
	MaxCapacity int `json:"max_capacity"`
}

// DefaultCacheOptions returns the default capacity settings.
func DefaultCacheOptions() CacheOptions {
	return CacheOptions{
		MinCapacity: DefaultMinCapacity,
		MaxCapacity: DefaultMaxCapacity,
	}
}

// Validate checks the capacity settings for consistency.
func (o CacheOptions) Validate() error {
	if o.MaxCapacity <= 0 {
		return fmt.Errorf("max capacity must be positive, got %d", o.MaxCapacity)
	}
	if o.MinCapacity < 0 {
		return fmt.Errorf("min capacity can't be negative, got %d", o.MinCapacity)
	}
	if o.MinCapacity > o.MaxCapacity {
		return fmt.Errorf("min capacity %d exceeds max capacity %d", o.MinCapacity, o.MaxCapacity)
	}
	return nil
}
