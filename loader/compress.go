package loader

import (
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// openPayload opens the file at path, transparently decompressing by
// extension: .zst via zstd, .lz4 via lz4, anything else plain.
func openPayload(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	switch filepath.Ext(path) {
	case ".zst":
		zr, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &zstdReadCloser{zr: zr, f: f}, nil
	case ".lz4":
		return &lz4ReadCloser{r: lz4.NewReader(f), f: f}, nil
	default:
		return f, nil
	}
}

type zstdReadCloser struct {
	zr *zstd.Decoder
	f  *os.File
}

func (r *zstdReadCloser) Read(p []byte) (int, error) {
	return r.zr.Read(p)
}

func (r *zstdReadCloser) Close() error {
	r.zr.Close()
	return r.f.Close()
}

type lz4ReadCloser struct {
	r *lz4.Reader
	f *os.File
}

func (r *lz4ReadCloser) Read(p []byte) (int, error) {
	return r.r.Read(p)
}

func (r *lz4ReadCloser) Close() error {
	return r.f.Close()
}
