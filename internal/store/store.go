// Package store owns the byte payloads held by a cache engine.
//
// The store is a flat key→buffer map with byte accounting. It never evicts
// on its own; the policy engine drives every removal. Returned slices must
// be treated as read-only.
package store

// Store maps keys to owned byte buffers and tracks the total byte size.
type Store struct {
	entries map[uint64][]byte
	bytes   uint64
}

// New creates an empty payload store.
func New() *Store {
	return &Store{
		entries: make(map[uint64][]byte),
	}
}

// Put copies b into a freshly owned buffer under key. The caller's slice is
// not retained. An existing entry under the same key is replaced.
func (s *Store) Put(key uint64, b []byte) {
	if old, ok := s.entries[key]; ok {
		s.bytes -= uint64(len(old))
	}
	buf := make([]byte, len(b))
	copy(buf, b)
	s.entries[key] = buf
	s.bytes += uint64(len(buf))
}

// Get returns a borrow of the stored buffer. ok=false if absent.
func (s *Store) Get(key uint64) ([]byte, bool) {
	b, ok := s.entries[key]
	return b, ok
}

// Remove deletes the entry and returns its byte length, or zero if absent.
func (s *Store) Remove(key uint64) uint64 {
	b, ok := s.entries[key]
	if !ok {
		return 0
	}
	delete(s.entries, key)
	n := uint64(len(b))
	s.bytes -= n
	return n
}

// Len returns the byte length of the entry under key, or zero if absent.
func (s *Store) Len(key uint64) uint64 {
	return uint64(len(s.entries[key]))
}

// Contains reports whether key is present.
func (s *Store) Contains(key uint64) bool {
	_, ok := s.entries[key]
	return ok
}

// Count returns the number of entries.
func (s *Store) Count() int {
	return len(s.entries)
}

// TotalBytes returns the sum of all entry lengths.
func (s *Store) TotalBytes() uint64 {
	return s.bytes
}

// Clear drops every entry.
func (s *Store) Clear() {
	s.entries = make(map[uint64][]byte)
	s.bytes = 0
}
