// Package policy implements the eviction engines behind the cache façade.
//
// Three engines share one contract: FIFO and LRU over a recency index, LFU
// over a frequency index that reuses the recency index type as per-frequency
// LRU buckets. Every accessor exists in an immediate form (state mutates
// with the call) and a delayed form (the request is recorded with a HIT/MISS
// tag captured at enqueue time and replayed in bulk by DrainDelayed).
//
// Engines are not safe for concurrent use; callers provide external mutual
// exclusion when needed.
package policy
