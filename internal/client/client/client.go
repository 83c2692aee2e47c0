package client

import (
	"context"
	"io"

	"github.com/dmitrijs2005/filedesk/internal/client/models"
)

// Client is the file backend contract used by the store and the CLI.
type Client interface {
	UploadFile(ctx context.Context, name string, r io.Reader) (models.FileRecord, error)
	UploadLabelFile(ctx context.Context, name string, r io.Reader) (models.FileRecord, error)
	ListFiles(ctx context.Context) ([]models.FileRecord, error)
	DeleteFile(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}
