package policy

import (
	"github.com/hupe1980/delaycache/internal/recency"
)

// lfuEngine tracks a hit count per key and keeps the keys of each distinct
// count in an LRU bucket: least recently used at the front, most recent at
// the back. minFreq names the smallest populated bucket, giving O(1) victim
// selection. A fresh insertion always enters at frequency 1, regardless of
// any count the key held before an earlier eviction.
type lfuEngine struct {
	core
	freqOf  map[uint64]uint64
	buckets map[uint64]*recency.Index
	minFreq uint64
}

// NewLFU creates a least-frequently-used engine.
func NewLFU(cfg Config) Engine {
	return &lfuEngine{
		core:    newCore(cfg),
		freqOf:  make(map[uint64]uint64),
		buckets: make(map[uint64]*recency.Index),
	}
}

func (e *lfuEngine) bucket(count uint64) *recency.Index {
	b, ok := e.buckets[count]
	if !ok {
		b = recency.New()
		e.buckets[count] = b
	}
	return b
}

// nextPopulated returns the smallest bucket count strictly greater than
// after, or zero when no such bucket exists.
func (e *lfuEngine) nextPopulated(after uint64) uint64 {
	var next uint64
	for count := range e.buckets {
		if count > after && (next == 0 || count < next) {
			next = count
		}
	}
	return next
}

// advance moves key from its current bucket to the next one, updating
// minFreq when the old bucket empties. Returns false if key is absent.
func (e *lfuEngine) advance(key uint64) bool {
	count, ok := e.freqOf[key]
	if !ok {
		return false
	}
	old := e.buckets[count]
	old.Remove(key)
	e.freqOf[key] = count + 1
	e.bucket(count + 1).PushBack(key)
	if old.Len() == 0 {
		delete(e.buckets, count)
		if e.minFreq == count {
			e.minFreq = count + 1
		}
	}
	return true
}

// evictOverflows removes the least recently used key of the minimum
// frequency bucket until the incoming payload fits, or the cache is empty.
func (e *lfuEngine) evictOverflows(incoming uint64) {
	for e.store.TotalBytes()+incoming > e.capacity {
		b, ok := e.buckets[e.minFreq]
		if !ok {
			return
		}
		victim, _ := b.PopFront()
		delete(e.freqOf, victim)
		e.store.Remove(victim)
		if b.Len() == 0 {
			delete(e.buckets, e.minFreq)
			e.minFreq = e.nextPopulated(e.minFreq)
		}
	}
}

// InsertImmediate admits the payload at frequency 1, evicting victims first
// if needed. Re-inserting a present key is a no-op.
func (e *lfuEngine) InsertImmediate(req Request) {
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
	e.freqOf[req.Key] = 1
	e.bucket(1).PushBack(req.Key)
	e.minFreq = 1
}

// InsertDelayed tags and enqueues the request without touching cache state.
func (e *lfuEngine) InsertDelayed(req Request) {
	e.enqueue(req)
}

// GetImmediate returns a borrow of the payload on a hit and advances the
// key's frequency. On a miss the supplied payload, if any, is admitted at
// frequency 1.
func (e *lfuEngine) GetImmediate(req Request) ([]byte, bool) {
	if b, ok := e.store.Get(req.Key); ok {
		e.counters.Hits++
		e.advance(req.Key)
		return b, true
	}
	e.counters.Misses++
	if req.Data != nil {
		e.InsertImmediate(req)
	}
	return nil, false
}

// GetDelayed tags and enqueues the request. Frequencies, buckets and
// counters stay untouched; the payload is returned if presently cached.
func (e *lfuEngine) GetDelayed(req Request) ([]byte, bool) {
	e.enqueue(req)
	return e.store.Get(req.Key)
}

// EraseImmediate removes the key and returns the bytes freed, zero if absent.
func (e *lfuEngine) EraseImmediate(key uint64) uint64 {
	count, ok := e.freqOf[key]
	if !ok {
		return 0
	}
	b := e.buckets[count]
	b.Remove(key)
	delete(e.freqOf, key)
	n := e.store.Remove(key)
	if b.Len() == 0 {
		delete(e.buckets, count)
		if e.minFreq == count {
			e.minFreq = e.nextPopulated(count)
		}
	}
	return n
}

// DrainDelayed replays the delayed buffer in enqueue order. In strict mode
// a HIT record advances the key's frequency instead of replaying as an
// insert.
func (e *lfuEngine) DrainDelayed() {
	e.drain(e.InsertImmediate, e.advance)
}

// ForceEvict drops entries in frequency order until at least n bytes are
// freed or the cache is empty.
func (e *lfuEngine) ForceEvict(n uint64) {
	var freed uint64
	for freed < n {
		b, ok := e.buckets[e.minFreq]
		if !ok {
			return
		}
		victim, _ := b.PopFront()
		delete(e.freqOf, victim)
		freed += e.store.Remove(victim)
		if b.Len() == 0 {
			delete(e.buckets, e.minFreq)
			e.minFreq = e.nextPopulated(e.minFreq)
		}
	}
}

// Clear resets entries, frequency state, delayed buffer and counters.
func (e *lfuEngine) Clear() {
	e.clearBase()
	e.freqOf = make(map[uint64]uint64)
	e.buckets = make(map[uint64]*recency.Index)
	e.minFreq = 0
}

// DumpStatus appends one line per non-empty bucket in ascending count
// order, keys most recent first, followed by a blank line.
func (e *lfuEngine) DumpStatus(path string) error {
	counts := make([]uint64, 0, len(e.buckets))
	for count := range e.buckets {
		counts = append(counts, count)
	}
	sortUint64(counts)

	lines := make([]string, 0, len(counts)+1)
	for _, count := range counts {
		lines = append(lines, bucketLine(count, e.buckets[count].KeysReverse()))
	}
	lines = append(lines, "")
	return appendStatus(path, lines...)
}
