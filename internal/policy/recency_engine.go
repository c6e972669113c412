package policy

import (
	"github.com/hupe1980/delaycache/internal/recency"
)

// recencyEngine backs both the FIFO and the LRU policy. The two differ in a
// single transition: LRU promotes a key to the front of the recency index on
// a hit, FIFO leaves the order untouched. Eviction pops the back in both.
type recencyEngine struct {
	core
	order   *recency.Index
	promote bool
}

// NewFIFO creates a first-in-first-out engine.
func NewFIFO(cfg Config) Engine {
	return &recencyEngine{
		core:  newCore(cfg),
		order: recency.New(),
	}
}

// NewLRU creates a least-recently-used engine.
func NewLRU(cfg Config) Engine {
	return &recencyEngine{
		core:    newCore(cfg),
		order:   recency.New(),
		promote: true,
	}
}

// evictOverflows pops victims from the back of the recency index until an
// incoming payload fits, or the cache is empty.
func (e *recencyEngine) evictOverflows(incoming uint64) {
	for e.store.TotalBytes()+incoming > e.capacity {
		victim, ok := e.order.PopBack()
		if !ok {
			return
		}
		e.store.Remove(victim)
	}
}

// InsertImmediate admits the payload, evicting victims first if needed.
// Re-inserting a present key is a no-op; the stored payload is kept.
func (e *recencyEngine) InsertImmediate(req Request) {
	if e.store.Contains(req.Key) {
		return
	}
	size := uint64(len(req.Data))
	e.evictOverflows(size)
	if e.store.TotalBytes()+size > e.capacity {
		// Larger than the whole budget; nothing left to evict.
		return
	}
	e.store.Put(req.Key, req.Data)
	e.order.PushFront(req.Key)
}

// InsertDelayed tags and enqueues the request without touching cache state.
func (e *recencyEngine) InsertDelayed(req Request) {
	e.enqueue(req)
}

// GetImmediate returns a borrow of the payload on a hit. On a miss the
// supplied payload, if any, is admitted through an immediate insert.
func (e *recencyEngine) GetImmediate(req Request) ([]byte, bool) {
	if b, ok := e.store.Get(req.Key); ok {
		e.counters.Hits++
		if e.promote {
			e.order.MoveToFront(req.Key)
		}
		return b, true
	}
	e.counters.Misses++
	if req.Data != nil {
		e.InsertImmediate(req)
	}
	return nil, false
}

// GetDelayed tags and enqueues the request. Cache state, order and counters
// stay untouched; the payload is returned if presently cached.
func (e *recencyEngine) GetDelayed(req Request) ([]byte, bool) {
	e.enqueue(req)
	return e.store.Get(req.Key)
}

// EraseImmediate removes the key and returns the bytes freed, zero if absent.
func (e *recencyEngine) EraseImmediate(key uint64) uint64 {
	if !e.order.Remove(key) {
		return 0
	}
	return e.store.Remove(key)
}

// DrainDelayed replays the delayed buffer in enqueue order.
func (e *recencyEngine) DrainDelayed() {
	e.drain(e.InsertImmediate, e.replayHit)
}

// replayHit applies the strict-mode replay of a HIT record: LRU promotes,
// FIFO does nothing. Returns false when the key was evicted since enqueue,
// in which case the record falls back to an insert.
func (e *recencyEngine) replayHit(key uint64) bool {
	if !e.promote {
		return e.store.Contains(key)
	}
	return e.order.MoveToFront(key)
}

// ForceEvict drops entries in policy order until at least n bytes are freed
// or the cache is empty.
func (e *recencyEngine) ForceEvict(n uint64) {
	var freed uint64
	for freed < n {
		victim, ok := e.order.PopBack()
		if !ok {
			return
		}
		freed += e.store.Remove(victim)
	}
}

// Clear resets entries, ordering, delayed buffer and counters.
func (e *recencyEngine) Clear() {
	e.clearBase()
	e.order.Clear()
}

// DumpStatus appends one line with the keys in recency order, most recent
// first.
func (e *recencyEngine) DumpStatus(path string) error {
	return appendStatus(path, recencyLine(e.order.Keys()))
}
