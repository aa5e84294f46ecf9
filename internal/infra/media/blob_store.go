// Package media implements the MediaStore on top of gocloud.dev blob buckets.
package media

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"

	"vidtube/config"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Register the bucket schemes used in deployment and development.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

// blobStore stores uploaded media in a gocloud.dev bucket and addresses
// objects by public URL.
type blobStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
	maxUploadSize int64
	logger        *slog.Logger
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and returns it as a service.MediaStore.
func New(params Params) (service.MediaStore, error) {
	cfg := params.Config.Media
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("media bucket URL must be provided")
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open media bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		maxUploadSize: cfg.MaxUploadSize,
		logger:        params.Logger,
	}, nil
}

// NewWithBucket builds a store around an existing bucket. Used in tests with
// an in-memory bucket.
func NewWithBucket(bucket *blob.Bucket, publicBaseURL string, maxUploadSize int64, logger *slog.Logger) service.MediaStore {
	return &blobStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		maxUploadSize: maxUploadSize,
		logger:        logger,
	}
}

// Store writes the file under a unique key and returns its public URL.
func (s *blobStore) Store(ctx context.Context, filename, contentType string, r io.Reader) (string, error) {
	key := uniqueKey(filename)

	if s.maxUploadSize > 0 {
		r = io.LimitReader(r, s.maxUploadSize+1)
	}

	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to open bucket writer")
	}

	written, err := io.Copy(w, r)
	if err != nil {
		_ = w.Close()

		return "", errors.Wrap(err, "failed to write media object")
	}
	if err := w.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finalize media object")
	}

	if s.maxUploadSize > 0 && written > s.maxUploadSize {
		// The object landed over the cap; remove it and reject the upload.
		if delErr := s.bucket.Delete(ctx, key); delErr != nil {
			s.logger.Warn("failed to delete oversized media object",
				slog.String("key", key),
				slog.String("error", delErr.Error()),
			)
		}

		return "", domainerrors.ErrMediaTooLarge
	}

	s.logger.Debug("media object stored",
		slog.String("key", key),
		slog.Int64("bytes", written),
	)

	return s.publicBaseURL + "/" + key, nil
}

// Remove deletes a previously stored object by its public URL. Unknown URLs
// are ignored so entity updates never fail on a missing old file.
func (s *blobStore) Remove(ctx context.Context, url string) error {
	if url == "" {
		return nil
	}

	key := strings.TrimPrefix(url, s.publicBaseURL+"/")
	if key == url {
		// Not one of ours.
		return nil
	}

	exists, err := s.bucket.Exists(ctx, key)
	if err != nil {
		return errors.Wrap(err, "failed to check media object")
	}
	if !exists {
		return nil
	}

	return errors.Wrap(s.bucket.Delete(ctx, key), "failed to delete media object")
}

// uniqueKey prefixes the sanitized filename with a UUID so concurrent uploads
// of identically named files never collide.
func uniqueKey(filename string) string {
	base := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		default:
			return '-'
		}
	}, base)

	return fmt.Sprintf("%s-%s", uuid.NewString(), base)
}
