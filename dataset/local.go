package dataset

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalFetcher copies files out of a local directory.
type LocalFetcher struct {
	dir string
}

// NewLocal creates a fetcher rooted at dir.
func NewLocal(dir string) *LocalFetcher {
	return &LocalFetcher{dir: dir}
}

// Fetch copies the named file to dst.
func (l *LocalFetcher) Fetch(ctx context.Context, name, dst string) error {
	src, err := os.Open(filepath.Join(l.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
