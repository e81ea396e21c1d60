// Package storage implements the image store over gocloud.dev blob buckets.
package storage

import (
	"context"
	"log/slog"
	"strings"

	"menuqr/config"
	"menuqr/internal/domain/constants"
	"menuqr/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"

	// Registers the gs:// scheme with blob.OpenBucket.
	_ "gocloud.dev/blob/gcsblob"
)

// blobImageStore persists QR images into a blob bucket and derives public
// URLs from a configured prefix. Writing the same key overwrites the previous
// object, so repeated generation for one menu never accumulates garbage.
type blobImageStore struct {
	bucket    *blob.Bucket
	urlPrefix string
	logger    *slog.Logger
}

// ImageStoreParams holds dependencies for the image store, injected by Fx.
type ImageStoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewImageStore creates an ImageStore backed by the configured provider.
func NewImageStore(params ImageStoreParams) (service.ImageStore, error) {
	cfg := params.Config.Storage
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		return nil, errors.New("storage provider must be configured")
	}

	var bucket *blob.Bucket
	var urlPrefix string
	var err error

	switch cfg.Provider {
	case constants.StorageProviderLocal:
		if cfg.Local == nil || cfg.Local.Path == "" {
			return nil, errors.New("local path is required for local provider")
		}
		logger.Info("Using local filesystem image store",
			slog.String("path", cfg.Local.Path),
		)

		bucket, err = fileblob.OpenBucket(cfg.Local.Path, &fileblob.Options{CreateDir: true})
		if err != nil {
			return nil, errors.Wrap(err, "failed to open local bucket")
		}
		urlPrefix = cfg.Local.URLPrefix

	case constants.StorageProviderGCS:
		if cfg.GCS == nil || cfg.GCS.Bucket == "" {
			return nil, errors.New("bucket is required for gcs provider")
		}
		if cfg.GCS.PublicBaseURL == "" {
			return nil, errors.New("public base URL is required for gcs provider")
		}
		logger.Info("Using GCS image store",
			slog.String("bucket", cfg.GCS.Bucket),
		)

		bucket, err = blob.OpenBucket(params.Ctx, "gs://"+cfg.GCS.Bucket)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open gcs bucket %s", cfg.GCS.Bucket)
		}
		urlPrefix = cfg.GCS.PublicBaseURL

	default:
		return nil, errors.Errorf("unknown storage provider: %s", cfg.Provider)
	}

	// Register lifecycle hook to close the bucket on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing image store bucket")

			return bucket.Close()
		},
	})

	return newBlobImageStore(bucket, urlPrefix, logger), nil
}

func newBlobImageStore(bucket *blob.Bucket, urlPrefix string, logger *slog.Logger) service.ImageStore {
	return &blobImageStore{
		bucket:    bucket,
		urlPrefix: strings.TrimSuffix(urlPrefix, "/"),
		logger:    logger,
	}
}

// Persist writes the image under the given key and returns its public URL.
func (s *blobImageStore) Persist(ctx context.Context, key string, image []byte) (string, error) {
	if key == "" {
		return "", errors.New("image key must not be empty")
	}

	opts := &blob.WriterOptions{ContentType: "image/png"}
	if err := s.bucket.WriteAll(ctx, key, image, opts); err != nil {
		return "", errors.Wrapf(err, "failed to write image %s", key)
	}

	return s.urlPrefix + "/" + key, nil
}
