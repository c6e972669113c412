package loader

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Dataset pairs a query file with its ground truth.
type Dataset struct {
	Queries     Vectors
	GroundTruth *GroundTruth
}

// LoadDataset loads the query and ground-truth files concurrently and
// validates that they agree on the vector count.
func LoadDataset(ctx context.Context, queryPath, groundTruthPath string, profile VectorProfile, optFns ...Option) (*Dataset, error) {
	g, _ := errgroup.WithContext(ctx)

	var ds Dataset
	g.Go(func() error {
		queries, err := ReadVectors(queryPath, profile, optFns...)
		if err != nil {
			return err
		}
		ds.Queries = queries
		return nil
	})
	g.Go(func() error {
		gt, err := ReadGroundTruth(groundTruthPath, optFns...)
		if err != nil {
			return err
		}
		ds.GroundTruth = gt
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(ds.Queries) != len(ds.GroundTruth.Neighbors) {
		return nil, &ErrCountMismatch{
			Queries: len(ds.Queries),
			Rows:    len(ds.GroundTruth.Neighbors),
		}
	}
	return &ds, nil
}
