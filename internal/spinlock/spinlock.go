// Package spinlock provides a test-and-set spinlock.
//
// The cache core is single-threaded and does not take this lock; it exists
// for callers that wrap a cache façade behind their own mutual exclusion.
package spinlock

import (
	"runtime"
	"sync/atomic"
)

// Lock is a test-and-set spinlock. The zero value is unlocked.
type Lock struct {
	flag atomic.Bool
}

// Lock spins until the lock is acquired, yielding the processor between
// attempts.
func (l *Lock) Lock() {
	for !l.flag.CompareAndSwap(false, true) {
		runtime.Gosched()
	}
}

// TryLock acquires the lock without spinning. Returns false if it is held.
func (l *Lock) TryLock() bool {
	return l.flag.CompareAndSwap(false, true)
}

// Unlock releases the lock.
func (l *Lock) Unlock() {
	l.flag.Store(false)
}
