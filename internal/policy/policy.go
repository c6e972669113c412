package policy

import (
	"github.com/hupe1980/delaycache/internal/store"
)

// Tag classifies a delayed request at enqueue time. The tag reflects
// presence at enqueue, not at drain.
type Tag uint8

const (
	// TagUnknown marks a request that has not been classified.
	TagUnknown Tag = iota
	// TagHit marks a key that was cached when the request was enqueued.
	TagHit
	// TagMiss marks a key that was absent when the request was enqueued.
	TagMiss
)

// Request carries one cache operation. Data is borrowed for the duration of
// the call; engines copy it before retaining.
type Request struct {
	Key  uint64
	Data []byte
	Tag  Tag
}

// Counters holds the serving counters shared by all engines.
type Counters struct {
	Hits   uint64
	Misses uint64
}

// Config configures an engine.
type Config struct {
	// Capacity is the byte ceiling enforced on immediate inserts and drain.
	Capacity uint64
	// StrictReplay makes DrainDelayed apply the policy promotion for HIT
	// records instead of replaying them as no-op inserts.
	StrictReplay bool
}

// Engine is the common contract of the FIFO, LRU and LFU engines.
type Engine interface {
	InsertImmediate(req Request)
	InsertDelayed(req Request)
	GetImmediate(req Request) ([]byte, bool)
	GetDelayed(req Request) ([]byte, bool)
	EraseImmediate(key uint64) uint64
	DrainDelayed()
	ForceEvict(n uint64)
	Clear()
	DumpStatus(path string) error

	IncrCapacity(n uint64)
	DecrCapacity(n uint64)
	Capacity() uint64
	CurrSize() uint64
	CountDelayed() int
	Counters() Counters
}

// core carries the state every engine shares: the payload store, the byte
// budget, the delayed-request buffer and the serving counters.
type core struct {
	capacity uint64
	strict   bool
	store    *store.Store
	delayed  []Request
	counters Counters
}

func newCore(cfg Config) core {
	return core{
		capacity: cfg.Capacity,
		strict:   cfg.StrictReplay,
		store:    store.New(),
	}
}

// enqueue records a delayed request, tagging it with the presence of the
// key at enqueue time and copying the payload.
func (c *core) enqueue(req Request) {
	rec := Request{
		Key:  req.Key,
		Data: append([]byte(nil), req.Data...),
		Tag:  TagMiss,
	}
	if c.store.Contains(req.Key) {
		rec.Tag = TagHit
	}
	c.delayed = append(c.delayed, rec)
}

// drain replays the delayed buffer in enqueue order. Every record bumps the
// counter matching its tag. In strict mode a HIT record whose key is still
// cached replays the policy promotion; every other record that carries a
// payload goes through insert, which is a no-op for keys that are present.
// A record without a payload only bumps its counter.
func (c *core) drain(insert func(Request), promote func(key uint64) bool) {
	for _, rec := range c.delayed {
		if rec.Tag == TagHit {
			c.counters.Hits++
		} else {
			c.counters.Misses++
		}
		if c.strict && rec.Tag == TagHit && promote(rec.Key) {
			continue
		}
		if rec.Data == nil {
			// Nothing to admit; the record only carried its tag.
			continue
		}
		insert(rec)
	}
	c.delayed = nil
}

func (c *core) clearBase() {
	c.store.Clear()
	c.delayed = nil
	c.counters = Counters{}
}

// IncrCapacity raises the byte ceiling by n.
func (c *core) IncrCapacity(n uint64) {
	c.capacity += n
}

// DecrCapacity lowers the byte ceiling by n, saturating at zero. No entry
// is evicted; the next immediate insert performs lazy eviction.
func (c *core) DecrCapacity(n uint64) {
	if n > c.capacity {
		c.capacity = 0
		return
	}
	c.capacity -= n
}

// Capacity returns the byte ceiling.
func (c *core) Capacity() uint64 {
	return c.capacity
}

// CurrSize returns the summed byte length of all cached entries.
func (c *core) CurrSize() uint64 {
	return c.store.TotalBytes()
}

// CountDelayed returns the number of pending delayed requests.
func (c *core) CountDelayed() int {
	return len(c.delayed)
}

// Counters returns a snapshot of the serving counters.
func (c *core) Counters() Counters {
	return c.counters
}
