// Package s3 provides a termsource.Source backed by Amazon S3.
package s3

import (
	"context"
	"errors"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/subsurf/simterms/termsource"
)

// Client is the interface for the S3 operations used by Source.
// *s3.Client satisfies it.
type Client interface {
	manager.DownloadAPIClient
}

// Source implements termsource.Source for S3.
type Source struct {
	downloader *manager.Downloader
	bucket     string
	prefix     string
}

// New creates a Source using the default AWS configuration chain
// (environment, shared config, instance role).
// rootPrefix is prepended to all keys (e.g. "terminology/").
func New(ctx context.Context, bucket, rootPrefix string) (*Source, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return NewSource(s3.NewFromConfig(cfg), bucket, rootPrefix), nil
}

// NewSource creates a Source from an existing client.
func NewSource(client Client, bucket, rootPrefix string) *Source {
	return &Source{
		downloader: manager.NewDownloader(client),
		bucket:     bucket,
		prefix:     rootPrefix,
	}
}

func (s *Source) key(name string) string {
	return path.Join(s.prefix, name)
}

// Fetch downloads the named document.
func (s *Source) Fetch(ctx context.Context, name string) ([]byte, error) {
	buf := manager.NewWriteAtBuffer(nil)

	_, err := s.downloader.Download(ctx, buf, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(name)),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, termsource.ErrNotFound
		}
		var nf *types.NotFound
		if errors.As(err, &nf) {
			return nil, termsource.ErrNotFound
		}
		return nil, err
	}

	return buf.Bytes(), nil
}
