// Package minio provides a termsource.Source for MinIO and S3-compatible
// object stores.
package minio

import (
	"context"
	"io"
	"path"

	"github.com/minio/minio-go/v7"
	"github.com/subsurf/simterms/termsource"
)

// Source implements termsource.Source for MinIO.
type Source struct {
	client *minio.Client
	bucket string
	prefix string
}

// NewSource creates a MinIO-backed source.
// rootPrefix is prepended to all keys (e.g. "terminology/").
func NewSource(client *minio.Client, bucket, rootPrefix string) *Source {
	return &Source{
		client: client,
		bucket: bucket,
		prefix: rootPrefix,
	}
}

func (s *Source) key(name string) string {
	return path.Join(s.prefix, name)
}

// Fetch downloads the named document.
func (s *Source) Fetch(ctx context.Context, name string) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.key(name), minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = obj.Close() }()

	data, err := io.ReadAll(obj)
	if err != nil {
		// GetObject is lazy: existence errors surface on first read.
		errResp := minio.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" || errResp.Code == "NotFound" {
			return nil, termsource.ErrNotFound
		}
		return nil, err
	}
	return data, nil
}
