// Package delaycache provides a delayable fixed-buffer cache for vector
// workloads.
//
// The cache stores opaque byte payloads keyed by a 64-bit identifier under
// a byte-level capacity budget, with interchangeable eviction policies
// (FIFO, LRU, LFU). Every accessor exists in two forms:
//
//   - Immediate: cache state mutates synchronously with the call.
//   - Delayed: the request is recorded together with a HIT/MISS tag
//     captured at enqueue time, and replayed in bulk by DrainDelayed.
//
// Delayed mode lets a caller batch a window of requests and apply the cache
// evolution atomically with respect to external work, without locking.
//
// # Quick Start
//
//	cache, _ := delaycache.New(delaycache.PolicyLRU, 64<<20)
//
//	cache.InsertImmediate(1, payload)
//	if b, ok := cache.GetImmediate(1, nil); ok {
//	    _ = b // borrowed; valid until the next mutating call
//	}
//
//	cache.GetDelayed(2, payload2) // tagged MISS, no state change
//	cache.DrainDelayed()          // counters bumped, key 2 admitted
//
// # Concurrency
//
// A Cache is single-threaded by design: no method is safe to call
// concurrently with any other method on the same instance. Callers that
// need concurrency provide external mutual exclusion around the façade.
//
// # Collaborators
//
// The loader package reads query and ground-truth vector files, the
// workload package generates request key streams, the replay package drives
// a key sequence through a cache, and the dataset package fetches dataset
// files from local, S3 or MinIO sources.
package delaycache
