package hashmap

import (
	"math"

	"github.com/specterops/collections/collection"
)

const (
	defaultCapacity   = 16
	minimumCapacity   = 4
	maximumCapacity   = 1 << 30
	defaultLoadFactor = 0.75
)

// EvictionPolicy is consulted after every insertion into a linked map. Returning true removes eldest, the entry at
// the head of the iteration chain. size includes the entry that was just inserted.
type EvictionPolicy[K comparable, V any] func(eldest collection.Entry[K, V], size int) bool

type config struct {
	capacity    int
	loadFactor  float64
	accessOrder bool
	eviction    any
}

type Option func(cfg *config)

// WithCapacity sets the initial number of buckets. The value is rounded up to a power of two.
func WithCapacity(capacity int) Option {
	return func(cfg *config) {
		cfg.capacity = capacity
	}
}

func WithLoadFactor(loadFactor float64) Option {
	return func(cfg *config) {
		cfg.loadFactor = loadFactor
	}
}

// WithAccessOrder switches a linked map from insertion order to access order: every successful Get or Put moves the
// entry to the tail of the iteration chain. Plain maps ignore this option.
func WithAccessOrder() Option {
	return func(cfg *config) {
		cfg.accessOrder = true
	}
}

// WithEvictionPolicy installs a policy on a linked map. A policy whose key and value types differ from the map's is
// ignored, as are policies given to plain maps.
func WithEvictionPolicy[K comparable, V any](policy EvictionPolicy[K, V]) Option {
	return func(cfg *config) {
		cfg.eviction = policy
	}
}

func newConfig(options []Option) config {
	cfg := config{
		capacity:   defaultCapacity,
		loadFactor: defaultLoadFactor,
	}

	for _, option := range options {
		option(&cfg)
	}

	// Do not fail on invalid sizing but ensure that the map remains functional
	if cfg.capacity < minimumCapacity {
		cfg.capacity = minimumCapacity
	} else if cfg.capacity > maximumCapacity {
		cfg.capacity = maximumCapacity
	} else {
		cfg.capacity = roundUpToPowerOfTwo(cfg.capacity)
	}

	if cfg.loadFactor <= 0 || math.IsNaN(cfg.loadFactor) || math.IsInf(cfg.loadFactor, 0) {
		cfg.loadFactor = defaultLoadFactor
	}

	return cfg
}

func roundUpToPowerOfTwo(value int) int {
	capacity := 1

	for capacity < value {
		capacity <<= 1
	}

	return capacity
}

// capacityFor returns a bucket count that holds size entries without a resize.
func capacityFor(size int, loadFactor float64) int {
	return int(float64(size)/loadFactor) + 1
}
