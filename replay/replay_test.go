package replay

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/delaycache"
)

func newCache(t *testing.T, policy delaycache.Policy, capacity uint64) *delaycache.Cache {
	t.Helper()
	cache, err := delaycache.New(policy, capacity)
	require.NoError(t, err)
	return cache
}

func TestRunImmediate(t *testing.T) {
	cache := newCache(t, delaycache.PolicyLRU, 64)
	runner := New(cache, FixedPayload(4))

	report, err := runner.Run(context.Background(), []uint64{1, 2, 1, 3, 1})
	require.NoError(t, err)

	assert.Equal(t, 5, report.Requests)
	assert.Equal(t, uint64(2), report.Hits)
	assert.Equal(t, uint64(3), report.Misses)
	assert.Equal(t, 0, report.Drains)
}

func TestRunWindowed(t *testing.T) {
	cache := newCache(t, delaycache.PolicyLRU, 64)
	runner := New(cache, FixedPayload(4), WithWindow(2))

	report, err := runner.Run(context.Background(), []uint64{1, 2, 1, 3, 1})
	require.NoError(t, err)

	assert.Equal(t, 5, report.Requests)
	// Windows: [1,2] both misses; [1,3] hit+miss; [1] hit at final drain.
	assert.Equal(t, uint64(2), report.Hits)
	assert.Equal(t, uint64(3), report.Misses)
	assert.Equal(t, 3, report.Drains)
	assert.Equal(t, 0, cache.CountDelayed())
}

func TestRunWindowDrainsExactMultiple(t *testing.T) {
	cache := newCache(t, delaycache.PolicyFIFO, 64)
	runner := New(cache, FixedPayload(4), WithWindow(2))

	report, err := runner.Run(context.Background(), []uint64{1, 2, 3, 4})
	require.NoError(t, err)

	assert.Equal(t, 2, report.Drains)
	assert.Equal(t, 0, cache.CountDelayed())
}

func TestRunReportsOnlyOwnCounters(t *testing.T) {
	cache := newCache(t, delaycache.PolicyLRU, 64)
	cache.GetImmediate(99, []byte{9, 9, 9, 9}) // pre-run miss

	runner := New(cache, FixedPayload(4))
	report, err := runner.Run(context.Background(), []uint64{99})
	require.NoError(t, err)

	assert.Equal(t, uint64(1), report.Hits)
	assert.Equal(t, uint64(0), report.Misses)
}

func TestRunPacedCancellation(t *testing.T) {
	cache := newCache(t, delaycache.PolicyLRU, 64)
	// One request per hour, and the context is canceled before the run:
	// the first Wait already fails, so no request is issued.
	runner := New(cache, FixedPayload(4), WithRate(1.0/3600))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := runner.Run(ctx, []uint64{1, 2, 3})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, report.Requests)
}

func TestFixedPayload(t *testing.T) {
	fn := FixedPayload(4)
	assert.Equal(t, []byte{7, 7, 7, 7}, fn(7))
	assert.Equal(t, []byte{0, 0, 0, 0}, fn(256))
}
