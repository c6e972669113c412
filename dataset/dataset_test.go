package dataset

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalFetcherRoundTrip(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(src, "queries.bin"), []byte("payload"), 0o644))

	dst := filepath.Join(t.TempDir(), "queries.bin")
	f := NewLocal(src)
	require.NoError(t, f.Fetch(context.Background(), "queries.bin", dst))

	b, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), b)
}

func TestLocalFetcherNotFound(t *testing.T) {
	f := NewLocal(t.TempDir())

	err := f.Fetch(context.Background(), "missing.bin", filepath.Join(t.TempDir(), "out"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestS3FetcherKeyJoining(t *testing.T) {
	f := NewS3(nil, "bucket", "datasets/")
	assert.Equal(t, "datasets/queries.bin", f.key("queries.bin"))

	f = NewS3(nil, "bucket", "")
	assert.Equal(t, "queries.bin", f.key("queries.bin"))
}

func TestMinioFetcherKeyJoining(t *testing.T) {
	f := NewMinio(nil, "bucket", "spacev1b")
	assert.Equal(t, "spacev1b/gt.bin", f.key("gt.bin"))
}
