// Package replay drives a request key sequence through a cache.
//
// A runner issues one get per key, either immediately or through the
// delayed path with a drain every window requests, and reports the serving
// counters accumulated by the run. Requests can be paced with a rate
// limiter to mimic an external arrival process.
package replay

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/hupe1980/delaycache"
)

// PayloadFunc supplies the payload inserted on a miss for a key. A nil
// return admits nothing.
type PayloadFunc func(key uint64) []byte

// FixedPayload returns a PayloadFunc yielding the key's low byte repeated
// size times, handy for synthetic runs.
func FixedPayload(size int) PayloadFunc {
	return func(key uint64) []byte {
		buf := make([]byte, size)
		for i := range buf {
			buf[i] = byte(key)
		}
		return buf
	}
}

// Report summarizes one run.
type Report struct {
	Requests int
	Hits     uint64
	Misses   uint64
	Drains   int
}

type options struct {
	window  int
	limiter *rate.Limiter
}

// Option configures a Runner.
type Option func(*options)

// WithWindow switches the run to the delayed path, draining after every n
// requests and once more at the end. n <= 0 keeps the immediate path.
func WithWindow(n int) Option {
	return func(o *options) {
		o.window = n
	}
}

// WithRate paces requests at n per second with burst 1.
func WithRate(n float64) Option {
	return func(o *options) {
		o.limiter = rate.NewLimiter(rate.Limit(n), 1)
	}
}

// Runner replays key sequences against a single cache.
type Runner struct {
	cache   *delaycache.Cache
	payload PayloadFunc
	opts    options
}

// New creates a runner over cache. payload supplies miss payloads.
func New(cache *delaycache.Cache, payload PayloadFunc, optFns ...Option) *Runner {
	opts := options{}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Runner{
		cache:   cache,
		payload: payload,
		opts:    opts,
	}
}

// Run replays keys in order and returns the counters accumulated by this
// run. With pacing configured, a canceled context aborts the run and
// returns the partial report with the context's error.
func (r *Runner) Run(ctx context.Context, keys []uint64) (Report, error) {
	before := r.cache.Stats()
	report := Report{}

	pending := 0
	for _, key := range keys {
		if r.opts.limiter != nil {
			if err := r.opts.limiter.Wait(ctx); err != nil {
				return r.finish(before, report), err
			}
		}

		data := r.payload(key)
		if r.opts.window <= 0 {
			r.cache.GetImmediate(key, data)
		} else {
			r.cache.GetDelayed(key, data)
			pending++
			if pending == r.opts.window {
				r.cache.DrainDelayed()
				report.Drains++
				pending = 0
			}
		}
		report.Requests++
	}
	if pending > 0 {
		r.cache.DrainDelayed()
		report.Drains++
	}
	return r.finish(before, report), nil
}

func (r *Runner) finish(before delaycache.Stats, report Report) Report {
	after := r.cache.Stats()
	report.Hits = after.Hits - before.Hits
	report.Misses = after.Misses - before.Misses
	return report
}
