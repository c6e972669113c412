package loader

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/delaycache/internal/conv"
)

// GroundTruth holds the per-query top-K neighbor IDs of a dataset.
type GroundTruth struct {
	TopK      int
	Neighbors [][]uint32
}

// ReadGroundTruth loads the ground-truth file at path. Unlike the query
// reader, truncation is fatal: every header-announced row must be present.
func ReadGroundTruth(path string, optFns ...Option) (*GroundTruth, error) {
	_ = applyOptions(optFns)

	rc, err := openPayload(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	br := bufio.NewReader(rc)

	var numVectors, topK uint32
	if err := binary.Read(br, binary.LittleEndian, &numVectors); err != nil {
		return nil, fmt.Errorf("read vector count: %w", err)
	}
	if err := binary.Read(br, binary.LittleEndian, &topK); err != nil {
		return nil, fmt.Errorf("read top-k: %w", err)
	}

	k, err := conv.Uint32ToInt(topK)
	if err != nil {
		return nil, err
	}

	neighbors := make([][]uint32, 0, numVectors)
	for i := uint32(0); i < numVectors; i++ {
		row := make([]uint32, k)
		if err := binary.Read(br, binary.LittleEndian, row); err != nil {
			if errors.Is(err, io.EOF) {
				// Every announced row must be present; a short file is
				// truncation, not a clean end.
				err = io.ErrUnexpectedEOF
			}
			return nil, fmt.Errorf("read ground-truth row %d: %w", i, err)
		}
		neighbors = append(neighbors, row)
	}

	return &GroundTruth{TopK: k, Neighbors: neighbors}, nil
}

// Bitmap returns the neighbor IDs of query i as a roaring bitmap.
func (g *GroundTruth) Bitmap(i int) *roaring.Bitmap {
	return roaring.BitmapOf(g.Neighbors[i]...)
}

// Coverage returns the fraction of all ground-truth neighbor IDs contained
// in the given key set, e.g. the keys currently held by a cache. Keys above
// the 32-bit ID space cannot appear in any row and are skipped.
func (g *GroundTruth) Coverage(keys []uint64) float64 {
	cached := roaring.New()
	for _, key := range keys {
		id, err := conv.Uint64ToUint32(key)
		if err != nil {
			continue
		}
		cached.Add(id)
	}

	var have, total uint64
	for i := range g.Neighbors {
		row := g.Bitmap(i)
		total += row.GetCardinality()
		have += row.AndCardinality(cached)
	}
	if total == 0 {
		return 0
	}
	return float64(have) / float64(total)
}
