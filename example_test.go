package delaycache_test

import (
	"fmt"

	"github.com/hupe1980/delaycache"
)

func Example() {
	cache, err := delaycache.New(delaycache.PolicyLRU, 8)
	if err != nil {
		panic(err)
	}

	cache.InsertImmediate(1, []byte{0xAA, 0xAA, 0xAA, 0xAA})

	// Delayed requests are tagged now and replayed on drain.
	cache.GetDelayed(1, nil)
	cache.GetDelayed(2, []byte{0xBB, 0xBB, 0xBB, 0xBB})
	cache.DrainDelayed()

	fmt.Println("hits:", cache.HitCount())
	fmt.Println("misses:", cache.MissCount())
	fmt.Println("bytes:", cache.CurrSize())
	// Output:
	// hits: 1
	// misses: 1
	// bytes: 8
}
