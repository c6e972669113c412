package recency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexPushFrontOrder(t *testing.T) {
	x := New()

	x.PushFront(1)
	x.PushFront(2)
	x.PushFront(3)

	assert.Equal(t, []uint64{3, 2, 1}, x.Keys())
	assert.Equal(t, []uint64{1, 2, 3}, x.KeysReverse())
	assert.Equal(t, 3, x.Len())
}

func TestIndexMoveToFront(t *testing.T) {
	x := New()
	x.PushFront(1)
	x.PushFront(2)
	x.PushFront(3)

	assert.True(t, x.MoveToFront(1))
	assert.Equal(t, []uint64{1, 3, 2}, x.Keys())

	assert.False(t, x.MoveToFront(42))
}

func TestIndexRemove(t *testing.T) {
	x := New()
	x.PushFront(1)
	x.PushFront(2)
	x.PushFront(3)

	assert.True(t, x.Remove(2))
	assert.False(t, x.Remove(2))
	assert.Equal(t, []uint64{3, 1}, x.Keys())
	assert.False(t, x.Contains(2))
}

func TestIndexEnds(t *testing.T) {
	x := New()

	_, ok := x.Front()
	assert.False(t, ok)
	_, ok = x.Back()
	assert.False(t, ok)
	_, ok = x.PopBack()
	assert.False(t, ok)
	_, ok = x.PopFront()
	assert.False(t, ok)

	x.PushBack(1)
	x.PushBack(2)
	x.PushBack(3)

	front, ok := x.Front()
	assert.True(t, ok)
	assert.Equal(t, uint64(1), front)

	back, ok := x.Back()
	assert.True(t, ok)
	assert.Equal(t, uint64(3), back)

	popped, ok := x.PopFront()
	assert.True(t, ok)
	assert.Equal(t, uint64(1), popped)

	popped, ok = x.PopBack()
	assert.True(t, ok)
	assert.Equal(t, uint64(3), popped)

	assert.Equal(t, 1, x.Len())
}

func TestIndexClear(t *testing.T) {
	x := New()
	x.PushFront(1)
	x.PushFront(2)

	x.Clear()

	assert.Equal(t, 0, x.Len())
	assert.False(t, x.Contains(1))
	assert.Empty(t, x.Keys())
}
