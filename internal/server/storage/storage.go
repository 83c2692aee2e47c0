// Package storage keeps uploaded file contents, either in a local directory
// or in an S3-compatible bucket.
package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/filedesk/internal/common"
	"github.com/dmitrijs2005/filedesk/internal/server/config"
	"github.com/google/uuid"
)

// Store holds blobs by key. Deleting a missing key is not an error.
type Store interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, key string) error
}

// NewKey returns a fresh, date-partitioned key.
func NewKey(now time.Time) string {
	return fmt.Sprintf("files/%d/%02d/%02d/%v", now.Year(), now.Month(), now.Day(), uuid.New())
}

// New builds the store selected by cfg.StorageDriver.
func New(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.StorageDriver {
	case config.StorageLocal:
		return NewLocalStore(cfg.StorageDir)
	case config.StorageS3:
		return NewS3Store(ctx, S3Config{
			Bucket:       cfg.S3Bucket,
			Region:       cfg.S3Region,
			BaseEndpoint: cfg.S3BaseEndpoint,
			AccessKey:    cfg.S3RootUser,
			SecretKey:    cfg.S3RootPassword,
		})
	default:
		return nil, fmt.Errorf("%w: %q", common.ErrorInvalidStorageKind, cfg.StorageDriver)
	}
}
