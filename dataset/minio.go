package dataset

import (
	"context"
	"fmt"
	"path"

	"github.com/minio/minio-go/v7"
)

// MinioFetcher downloads dataset files from MinIO or any S3-compatible
// endpoint.
type MinioFetcher struct {
	client *minio.Client
	bucket string
	prefix string
}

// NewMinio creates a fetcher over bucket. prefix is prepended to all names.
func NewMinio(client *minio.Client, bucket, prefix string) *MinioFetcher {
	return &MinioFetcher{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}
}

func (f *MinioFetcher) key(name string) string {
	return path.Join(f.prefix, name)
}

// Fetch downloads the named object to dst.
func (f *MinioFetcher) Fetch(ctx context.Context, name, dst string) error {
	err := f.client.FGetObject(ctx, f.bucket, f.key(name), dst, minio.GetObjectOptions{})
	if err != nil {
		errResp := minio.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" || errResp.Code == "NotFound" {
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return err
	}
	return nil
}
