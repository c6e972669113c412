package workload

import (
	"bufio"
	"fmt"
	"os"
	"sort"
)

// Sequence is a generated request key stream.
type Sequence struct {
	Keys []uint64
}

// KeyFreq pairs a key with its occurrence count in a sequence.
type KeyFreq struct {
	Key   uint64
	Count int
}

// UniqueByFrequency returns the distinct keys of the sequence with their
// occurrence counts, most frequent first. Equal counts order by key.
func (s *Sequence) UniqueByFrequency() []KeyFreq {
	counts := make(map[uint64]int)
	for _, key := range s.Keys {
		counts[key]++
	}
	freqs := make([]KeyFreq, 0, len(counts))
	for key, count := range counts {
		freqs = append(freqs, KeyFreq{Key: key, Count: count})
	}
	sort.Slice(freqs, func(i, j int) bool {
		if freqs[i].Count != freqs[j].Count {
			return freqs[i].Count > freqs[j].Count
		}
		return freqs[i].Key < freqs[j].Key
	})
	return freqs
}

// Unique returns the number of distinct keys in the sequence.
func (s *Sequence) Unique() int {
	seen := make(map[uint64]struct{})
	for _, key := range s.Keys {
		seen[key] = struct{}{}
	}
	return len(seen)
}

// ExportFrequency appends one "key,count" CSV line per distinct key to the
// file at path, most frequent first.
func (s *Sequence) ExportFrequency(path string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	for _, kf := range s.UniqueByFrequency() {
		if _, err := fmt.Fprintf(bw, "%d,%d\n", kf.Key, kf.Count); err != nil {
			return err
		}
	}
	return bw.Flush()
}
