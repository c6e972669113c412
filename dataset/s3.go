package dataset

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3Fetcher downloads dataset files from an S3 bucket.
type S3Fetcher struct {
	client     *s3.Client
	downloader *manager.Downloader
	bucket     string
	prefix     string
}

// NewS3 creates a fetcher over bucket. prefix is prepended to all names
// (e.g. "datasets/").
func NewS3(client *s3.Client, bucket, prefix string) *S3Fetcher {
	return &S3Fetcher{
		client:     client,
		downloader: manager.NewDownloader(client),
		bucket:     bucket,
		prefix:     prefix,
	}
}

// NewS3FromConfig creates a fetcher using the default AWS configuration
// chain (environment, shared config, instance role).
func NewS3FromConfig(ctx context.Context, bucket, prefix string) (*S3Fetcher, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return NewS3(s3.NewFromConfig(cfg), bucket, prefix), nil
}

func (f *S3Fetcher) key(name string) string {
	return path.Join(f.prefix, name)
}

// Fetch downloads the named object to dst.
func (f *S3Fetcher) Fetch(ctx context.Context, name, dst string) error {
	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	_, err = f.downloader.Download(ctx, out, &s3.GetObjectInput{
		Bucket: aws.String(f.bucket),
		Key:    aws.String(f.key(name)),
	})
	if err != nil {
		out.Close()
		os.Remove(dst)
		var nsk *types.NoSuchKey
		var nf *types.NotFound
		if errors.As(err, &nsk) || errors.As(err, &nf) {
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return err
	}
	return out.Close()
}
