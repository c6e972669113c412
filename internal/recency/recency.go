// Package recency maintains an ordered key sequence with O(1) keyed
// removal, used as the recency index of the FIFO and LRU policies and as
// the per-frequency bucket of the LFU policy.
package recency

import "container/list"

// Index is a doubly-linked key sequence with a key→element lookup.
// The front is the most recently touched end for FIFO/LRU use; LFU buckets
// append at the back and evict from the front.
type Index struct {
	order *list.List
	pos   map[uint64]*list.Element
}

// New creates an empty index.
func New() *Index {
	return &Index{
		order: list.New(),
		pos:   make(map[uint64]*list.Element),
	}
}

// PushFront inserts key at the front. The key must not be present.
func (x *Index) PushFront(key uint64) {
	x.pos[key] = x.order.PushFront(key)
}

// PushBack inserts key at the back. The key must not be present.
func (x *Index) PushBack(key uint64) {
	x.pos[key] = x.order.PushBack(key)
}

// MoveToFront promotes key to the front. Returns false if key is absent.
func (x *Index) MoveToFront(key uint64) bool {
	e, ok := x.pos[key]
	if !ok {
		return false
	}
	x.order.MoveToFront(e)
	return true
}

// Remove deletes key from the sequence. Returns false if key is absent.
func (x *Index) Remove(key uint64) bool {
	e, ok := x.pos[key]
	if !ok {
		return false
	}
	x.order.Remove(e)
	delete(x.pos, key)
	return true
}

// Front returns the front key. ok=false when empty.
func (x *Index) Front() (uint64, bool) {
	e := x.order.Front()
	if e == nil {
		return 0, false
	}
	return e.Value.(uint64), true
}

// Back returns the back key. ok=false when empty.
func (x *Index) Back() (uint64, bool) {
	e := x.order.Back()
	if e == nil {
		return 0, false
	}
	return e.Value.(uint64), true
}

// PopFront removes and returns the front key. ok=false when empty.
func (x *Index) PopFront() (uint64, bool) {
	e := x.order.Front()
	if e == nil {
		return 0, false
	}
	key := e.Value.(uint64)
	x.order.Remove(e)
	delete(x.pos, key)
	return key, true
}

// PopBack removes and returns the back key. ok=false when empty.
func (x *Index) PopBack() (uint64, bool) {
	e := x.order.Back()
	if e == nil {
		return 0, false
	}
	key := e.Value.(uint64)
	x.order.Remove(e)
	delete(x.pos, key)
	return key, true
}

// Contains reports whether key is present.
func (x *Index) Contains(key uint64) bool {
	_, ok := x.pos[key]
	return ok
}

// Len returns the number of keys.
func (x *Index) Len() int {
	return x.order.Len()
}

// Keys returns the keys front-to-back.
func (x *Index) Keys() []uint64 {
	keys := make([]uint64, 0, x.order.Len())
	for e := x.order.Front(); e != nil; e = e.Next() {
		keys = append(keys, e.Value.(uint64))
	}
	return keys
}

// KeysReverse returns the keys back-to-front.
func (x *Index) KeysReverse() []uint64 {
	keys := make([]uint64, 0, x.order.Len())
	for e := x.order.Back(); e != nil; e = e.Prev() {
		keys = append(keys, e.Value.(uint64))
	}
	return keys
}

// Clear drops every key.
func (x *Index) Clear() {
	x.order.Init()
	x.pos = make(map[uint64]*list.Element)
}
