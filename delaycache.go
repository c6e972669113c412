package delaycache

import (
	"fmt"
	"strings"

	"github.com/hupe1980/delaycache/internal/policy"
)

// Policy selects the eviction policy of a cache.
type Policy uint8

const (
	// PolicyUnknown is the zero value; New rejects it.
	PolicyUnknown Policy = iota
	// PolicyFIFO evicts in insertion order; hits do not reorder.
	PolicyFIFO
	// PolicyLRU evicts the least recently used entry; hits promote.
	PolicyLRU
	// PolicyLFU evicts the least frequently used entry, least recently
	// used first among equals.
	PolicyLFU
)

// String returns the lowercase policy name.
func (p Policy) String() string {
	switch p {
	case PolicyFIFO:
		return "fifo"
	case PolicyLRU:
		return "lru"
	case PolicyLFU:
		return "lfu"
	default:
		return "unknown"
	}
}

// ParsePolicy parses a policy name, case-insensitively.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(s) {
	case "fifo":
		return PolicyFIFO, nil
	case "lru":
		return PolicyLRU, nil
	case "lfu":
		return PolicyLFU, nil
	default:
		return PolicyUnknown, fmt.Errorf("%w: %q", ErrInvalidPolicy, s)
	}
}

// Stats is a point-in-time snapshot of a cache's serving state.
type Stats struct {
	Hits     uint64
	Misses   uint64
	CurrSize uint64
	Capacity uint64
	Delayed  int
}

// Cache is the public façade over a policy engine. It forwards every call
// and holds no logic beyond dispatch and counter snapshots.
//
// Not safe for concurrent use; see the package documentation.
type Cache struct {
	policy Policy
	engine policy.Engine
	logger *Logger
}

// New creates a cache with the given policy and byte capacity.
func New(p Policy, capacity uint64, optFns ...Option) (*Cache, error) {
	opts := options{
		logger: NoopLogger(),
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	cfg := policy.Config{
		Capacity:     capacity,
		StrictReplay: opts.strictReplay,
	}

	var engine policy.Engine
	switch p {
	case PolicyFIFO:
		engine = policy.NewFIFO(cfg)
	case PolicyLRU:
		engine = policy.NewLRU(cfg)
	case PolicyLFU:
		engine = policy.NewLFU(cfg)
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidPolicy, p)
	}

	return &Cache{
		policy: p,
		engine: engine,
		logger: opts.logger.WithPolicy(p),
	}, nil
}

// Policy returns the cache's eviction policy.
func (c *Cache) Policy() Policy {
	return c.policy
}

// InsertImmediate admits data under key, evicting victims if the budget
// would overflow. A no-op when key is already present; the caller's slice
// is not retained.
func (c *Cache) InsertImmediate(key uint64, data []byte) {
	c.engine.InsertImmediate(policy.Request{Key: key, Data: data})
}

// InsertDelayed records an insert request tagged with the key's presence at
// enqueue time. No state changes until DrainDelayed.
func (c *Cache) InsertDelayed(key uint64, data []byte) {
	c.engine.InsertDelayed(policy.Request{Key: key, Data: data})
}

// GetImmediate returns a borrow of the cached payload on a hit. On a miss,
// data (if non-nil) is admitted through an immediate insert and ok is
// false. The returned slice is valid until the next mutating call.
func (c *Cache) GetImmediate(key uint64, data []byte) ([]byte, bool) {
	return c.engine.GetImmediate(policy.Request{Key: key, Data: data})
}

// GetDelayed records a get request tagged with the key's presence at
// enqueue time and returns a borrow of the payload when presently cached.
// Counters and policy state stay untouched until DrainDelayed.
func (c *Cache) GetDelayed(key uint64, data []byte) ([]byte, bool) {
	return c.engine.GetDelayed(policy.Request{Key: key, Data: data})
}

// EraseImmediate removes key and returns the bytes freed, zero if absent.
func (c *Cache) EraseImmediate(key uint64) uint64 {
	return c.engine.EraseImmediate(key)
}

// DrainDelayed replays the delayed buffer in enqueue order, bumping the hit
// or miss counter per record's enqueue-time tag, then clears the buffer.
func (c *Cache) DrainDelayed() {
	c.engine.DrainDelayed()
}

// Clear resets entries, ordering state, the delayed buffer and counters.
func (c *Cache) Clear() {
	c.engine.Clear()
}

// DumpStatus appends the current ordering to the file at path. Best-effort:
// an unopenable path is ignored.
func (c *Cache) DumpStatus(path string) {
	if err := c.engine.DumpStatus(path); err != nil {
		c.logger.Debug("status dump failed", "path", path, "error", err)
	}
}

// IncrCapacity raises the byte ceiling by n bytes.
func (c *Cache) IncrCapacity(n uint64) {
	c.engine.IncrCapacity(n)
}

// DecrCapacity lowers the byte ceiling by n bytes, saturating at zero.
// Nothing is evicted until the next immediate insert.
func (c *Cache) DecrCapacity(n uint64) {
	c.engine.DecrCapacity(n)
}

// ForceEvict eagerly drops entries in policy order until at least n bytes
// are freed or the cache is empty.
func (c *Cache) ForceEvict(n uint64) {
	c.engine.ForceEvict(n)
}

// Capacity returns the byte ceiling.
func (c *Cache) Capacity() uint64 {
	return c.engine.Capacity()
}

// CurrSize returns the summed byte length of all cached entries.
func (c *Cache) CurrSize() uint64 {
	return c.engine.CurrSize()
}

// HitCount returns the number of hits since the last Clear.
func (c *Cache) HitCount() uint64 {
	return c.engine.Counters().Hits
}

// MissCount returns the number of misses since the last Clear.
func (c *Cache) MissCount() uint64 {
	return c.engine.Counters().Misses
}

// CountDelayed returns the number of pending delayed requests.
func (c *Cache) CountDelayed() int {
	return c.engine.CountDelayed()
}

// Stats returns a snapshot of the serving counters and sizes.
func (c *Cache) Stats() Stats {
	counters := c.engine.Counters()
	return Stats{
		Hits:     counters.Hits,
		Misses:   counters.Misses,
		CurrSize: c.engine.CurrSize(),
		Capacity: c.engine.Capacity(),
		Delayed:  c.engine.CountDelayed(),
	}
}
