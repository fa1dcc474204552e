// Package storage persists uploaded menu images through a gocloud blob
// bucket so the same code serves a local directory in development and an
// object store in production.
package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"panaderia/config"
	"panaderia/internal/domain/service"
	"panaderia/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // register the file:// bucket scheme
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type blobStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// New opens the configured upload bucket and returns a service.FileStore.
func New(params Params) (service.FileStore, error) {
	if params.Config.Uploads == nil || params.Config.Uploads.BucketURL == "" {
		return nil, errors.New("uploads bucket URL must be configured")
	}

	bucket, err := blob.OpenBucket(context.Background(), params.Config.Uploads.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open upload bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(params.Config.Uploads.PublicBaseURL, "/"),
	}, nil
}

// Save writes the content under key and returns its public URL.
func (s *blobStore) Save(ctx context.Context, key string, content io.Reader, contentType string) (string, error) {
	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to open bucket writer")
	}

	if _, err := io.Copy(writer, content); err != nil {
		_ = writer.Close()

		return "", errors.Wrap(err, "failed to write upload")
	}
	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finish upload")
	}

	return s.publicBaseURL + "/" + key, nil
}
