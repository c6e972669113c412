package policy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkLFUInvariants asserts that the store, the frequency map, the bucket
// lists and minFreq agree.
func checkLFUInvariants(t *testing.T, e Engine) {
	t.Helper()
	le := e.(*lfuEngine)

	inBuckets := 0
	var minPopulated uint64
	for count, b := range le.buckets {
		require.Positive(t, b.Len(), "bucket %d is present but empty", count)
		for _, key := range b.Keys() {
			assert.True(t, le.store.Contains(key), "key %d in bucket but not in store", key)
			assert.Equal(t, count, le.freqOf[key], "key %d bucket disagrees with freqOf", key)
		}
		inBuckets += b.Len()
		if minPopulated == 0 || count < minPopulated {
			minPopulated = count
		}
	}
	assert.Equal(t, le.store.Count(), inBuckets)
	assert.Equal(t, le.store.Count(), len(le.freqOf))
	if le.store.Count() > 0 {
		assert.Equal(t, minPopulated, le.minFreq)
	}
	assert.LessOrEqual(t, e.CurrSize(), e.Capacity())
}

func TestLFUEvictionByFrequency(t *testing.T) {
	e := NewLFU(Config{Capacity: 8})

	insertKeys(e, 1, 2)
	e.GetImmediate(Request{Key: 1})
	e.GetImmediate(Request{Key: 1})
	insertKeys(e, 3)

	le := e.(*lfuEngine)
	assert.False(t, le.store.Contains(2), "entry 2 should have been evicted")
	assert.True(t, le.store.Contains(1))
	assert.True(t, le.store.Contains(3))
	assert.Equal(t, uint64(3), le.freqOf[1])
	assert.Equal(t, uint64(1), le.freqOf[3])
	assert.Equal(t, uint64(1), le.minFreq)
	checkLFUInvariants(t, e)
}

func TestLFUTieBreaksLeastRecentlyUsed(t *testing.T) {
	e := NewLFU(Config{Capacity: 12})

	insertKeys(e, 1, 2, 3)
	// All at frequency 1; 1 is the least recently used of the bucket.
	insertKeys(e, 4)

	le := e.(*lfuEngine)
	assert.False(t, le.store.Contains(1))
	assert.True(t, le.store.Contains(2))
	checkLFUInvariants(t, e)
}

func TestLFUHitAdvancesBucket(t *testing.T) {
	e := NewLFU(Config{Capacity: 16})
	insertKeys(e, 1, 2)

	e.GetImmediate(Request{Key: 2})

	le := e.(*lfuEngine)
	assert.Equal(t, uint64(1), le.freqOf[1])
	assert.Equal(t, uint64(2), le.freqOf[2])
	assert.Equal(t, uint64(1), le.minFreq)
	assert.Equal(t, []uint64{1}, le.buckets[1].Keys())
	assert.Equal(t, []uint64{2}, le.buckets[2].Keys())
	checkLFUInvariants(t, e)
}

func TestLFUMinFreqAdvancesWhenBucketEmpties(t *testing.T) {
	e := NewLFU(Config{Capacity: 8})
	insertKeys(e, 1, 2)

	e.GetImmediate(Request{Key: 1})
	e.GetImmediate(Request{Key: 2})

	le := e.(*lfuEngine)
	// Bucket 1 emptied when 2 advanced; both keys now sit at frequency 2.
	assert.Equal(t, uint64(2), le.minFreq)
	checkLFUInvariants(t, e)
}

func TestLFUReinsertAfterEvictionStartsAtFrequencyOne(t *testing.T) {
	e := NewLFU(Config{Capacity: 8})

	insertKeys(e, 1, 2)
	e.GetImmediate(Request{Key: 1})
	e.GetImmediate(Request{Key: 1})

	// Evict 1 explicitly, then bring it back: history is not preserved.
	e.EraseImmediate(1)
	insertKeys(e, 1)

	le := e.(*lfuEngine)
	assert.Equal(t, uint64(1), le.freqOf[1])
	checkLFUInvariants(t, e)
}

func TestLFUEraseUpdatesMinFreq(t *testing.T) {
	e := NewLFU(Config{Capacity: 16})
	insertKeys(e, 1, 2)
	e.GetImmediate(Request{Key: 2}) // 2 at freq 2, 1 at freq 1

	assert.Equal(t, uint64(4), e.EraseImmediate(1))

	le := e.(*lfuEngine)
	assert.Equal(t, uint64(2), le.minFreq)
	checkLFUInvariants(t, e)

	assert.Equal(t, uint64(4), e.EraseImmediate(2))
	assert.Equal(t, uint64(0), e.CurrSize())
}

func TestLFUForceEvict(t *testing.T) {
	e := NewLFU(Config{Capacity: 40})
	for key := uint64(1); key <= 10; key++ {
		insertKeys(e, key)
	}
	e.GetImmediate(Request{Key: 1}) // protect 1 at frequency 2

	e.ForceEvict(12)

	le := e.(*lfuEngine)
	assert.Equal(t, uint64(28), e.CurrSize())
	assert.True(t, le.store.Contains(1), "the hot entry should outlive the purge")
	// Frequency-1 victims in bucket order: 2, 3, 4.
	for _, victim := range []uint64{2, 3, 4} {
		assert.False(t, le.store.Contains(victim))
	}
	checkLFUInvariants(t, e)
}

func TestLFUOversizedPayloadNotAdmitted(t *testing.T) {
	e := NewLFU(Config{Capacity: 8})
	insertKeys(e, 1)

	e.InsertImmediate(Request{Key: 2, Data: make([]byte, 64)})

	le := e.(*lfuEngine)
	assert.False(t, le.store.Contains(2))
	checkLFUInvariants(t, e)
}

func TestLFUClear(t *testing.T) {
	e := NewLFU(Config{Capacity: 16})
	insertKeys(e, 1, 2)
	e.GetImmediate(Request{Key: 1})

	e.Clear()

	le := e.(*lfuEngine)
	assert.Equal(t, uint64(0), e.CurrSize())
	assert.Equal(t, Counters{}, e.Counters())
	assert.Empty(t, le.freqOf)
	assert.Empty(t, le.buckets)
	assert.Equal(t, uint64(0), le.minFreq)
}

func TestLFUDumpStatus(t *testing.T) {
	e := NewLFU(Config{Capacity: 16})
	insertKeys(e, 1, 2)
	e.GetImmediate(Request{Key: 2})

	path := filepath.Join(t.TempDir(), "cache-dump.csv")
	require.NoError(t, e.DumpStatus(path))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1: 1, \n2: 2, \n\n", string(b))
}
