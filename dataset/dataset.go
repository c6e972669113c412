// Package dataset fetches query and ground-truth files to the local
// filesystem before loading, from a local directory, S3 or MinIO.
package dataset

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a named dataset file does not exist at the
// source.
var ErrNotFound = errors.New("dataset file not found")

// Fetcher copies a named dataset file to a local destination path.
type Fetcher interface {
	Fetch(ctx context.Context, name, dst string) error
}
