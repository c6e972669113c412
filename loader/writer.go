package loader

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/hupe1980/delaycache/internal/conv"
)

// WriteVectors writes vectors to path in the plain query-file layout. Every
// vector must match the profile's byte length.
func WriteVectors(path string, vectors Vectors, profile VectorProfile) error {
	if err := profile.validate(); err != nil {
		return err
	}

	count, err := conv.IntToUint32(len(vectors))
	if err != nil {
		return err
	}
	dimension, err := conv.IntToUint32(profile.Dimension)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	if err := binary.Write(bw, binary.LittleEndian, count); err != nil {
		return err
	}
	if err := binary.Write(bw, binary.LittleEndian, dimension); err != nil {
		return err
	}
	vecSize := profile.VectorBytes()
	for _, v := range vectors {
		if len(v.Data) != vecSize {
			return fmt.Errorf("vector %d: %w: got %d bytes, want %d", v.ID, ErrInvalidProfile, len(v.Data), vecSize)
		}
		if _, err := bw.Write(v.Data); err != nil {
			return err
		}
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	return f.Sync()
}

// WriteGroundTruth writes g to path in the plain ground-truth layout. Every
// row must hold exactly TopK neighbor IDs.
func WriteGroundTruth(path string, g *GroundTruth) error {
	count, err := conv.IntToUint32(len(g.Neighbors))
	if err != nil {
		return err
	}
	topK, err := conv.IntToUint32(g.TopK)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	if err := binary.Write(bw, binary.LittleEndian, count); err != nil {
		return err
	}
	if err := binary.Write(bw, binary.LittleEndian, topK); err != nil {
		return err
	}
	for i, row := range g.Neighbors {
		if len(row) != g.TopK {
			return fmt.Errorf("ground-truth row %d: got %d ids, want %d", i, len(row), g.TopK)
		}
		if err := binary.Write(bw, binary.LittleEndian, row); err != nil {
			return err
		}
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	return f.Sync()
}
