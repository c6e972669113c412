// Package workload generates request key streams for cache experiments.
//
// The generators follow the YCSB workload model: a counter tracks the keys
// inserted so far, and a chooser draws request keys from a uniform,
// scrambled-zipfian or skewed-latest distribution bounded by that counter.
// All generators are deterministic for a given seed.
package workload

import (
	"fmt"
	"math/rand"
	"strings"
)

// Distribution names a request key distribution.
type Distribution uint8

const (
	// DistUnknown is the zero value; Generate rejects it.
	DistUnknown Distribution = iota
	// DistUniform draws keys uniformly over the record space.
	DistUniform
	// DistZipfian draws keys from a scrambled zipfian distribution.
	DistZipfian
	// DistLatest skews towards the most recently inserted keys.
	DistLatest
)

// String returns the lowercase distribution name.
func (d Distribution) String() string {
	switch d {
	case DistUniform:
		return "uniform"
	case DistZipfian:
		return "zipfian"
	case DistLatest:
		return "latest"
	default:
		return "unknown"
	}
}

// ParseDistribution parses a distribution name, case-insensitively.
func ParseDistribution(s string) (Distribution, error) {
	switch strings.ToLower(s) {
	case "uniform":
		return DistUniform, nil
	case "zipfian":
		return DistZipfian, nil
	case "latest":
		return DistLatest, nil
	default:
		return DistUnknown, fmt.Errorf("unknown distribution: %q", s)
	}
}

// Generator produces a stream of request keys.
type Generator interface {
	Next() uint64
}

// Counter is a monotonic key sequence tracking inserted records.
type Counter struct {
	next uint64
}

// NewCounter creates a counter whose first Next returns start.
func NewCounter(start uint64) *Counter {
	return &Counter{next: start}
}

// Next returns the next key and advances the counter.
func (c *Counter) Next() uint64 {
	v := c.next
	c.next++
	return v
}

// Last returns the most recently returned key.
func (c *Counter) Last() uint64 {
	return c.next - 1
}

// Uniform draws keys uniformly from [lo, hi].
type Uniform struct {
	rng *rand.Rand
	lo  uint64
	hi  uint64
}

// NewUniform creates a uniform generator over [lo, hi].
func NewUniform(seed int64, lo, hi uint64) *Uniform {
	return &Uniform{
		rng: rand.New(rand.NewSource(seed)),
		lo:  lo,
		hi:  hi,
	}
}

// Next returns a uniformly distributed key.
func (u *Uniform) Next() uint64 {
	return u.lo + uint64(u.rng.Int63n(int64(u.hi-u.lo+1)))
}

// Generate produces a request sequence of count keys over a record space of
// records keys, drawn from the given distribution. A chosen key is redrawn
// while it exceeds the last inserted record.
func Generate(dist Distribution, records, count int, seed int64) (*Sequence, error) {
	if records <= 0 || count < 0 {
		return nil, fmt.Errorf("invalid workload shape: records=%d count=%d", records, count)
	}

	inserted := NewCounter(0)
	for i := 0; i < records; i++ {
		inserted.Next()
	}
	last := inserted.Last()

	var chooser Generator
	switch dist {
	case DistUniform:
		chooser = NewUniform(seed, 0, last)
	case DistZipfian:
		chooser = NewScrambledZipfian(uint64(records), seed)
	case DistLatest:
		chooser = NewSkewedLatest(inserted, seed)
	default:
		return nil, fmt.Errorf("unknown distribution: %d", dist)
	}

	keys := make([]uint64, 0, count)
	for i := 0; i < count; i++ {
		key := chooser.Next()
		for key > last {
			key = chooser.Next()
		}
		keys = append(keys, key)
	}
	return &Sequence{Keys: keys}, nil
}
