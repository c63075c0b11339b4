package s3

import (
	"context"

	"github.com/bornholm/menud/internal/source"
	"github.com/bornholm/menud/pkg/menu"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
)

// Source fetches the menu document from an S3 bucket.
type Source struct {
	client *minio.Client
	bucket string
	key    string
}

// Load implements source.Source.
func (s *Source) Load(ctx context.Context) (*menu.Config, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	object, err := s.client.GetObject(ctx, s.bucket, s.key, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	defer object.Close()

	cfg, err := source.DecodeDocument(object)
	if err != nil {
		return nil, errors.Wrapf(err, "could not decode menu document 's3://%s/%s'", s.bucket, s.key)
	}

	return cfg, nil
}

func NewSource(client *minio.Client, bucket string, key string) *Source {
	return &Source{
		client: client,
		bucket: bucket,
		key:    key,
	}
}

var _ source.Source = &Source{}
