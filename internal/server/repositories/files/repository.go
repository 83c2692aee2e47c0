// Package files persists file metadata.
package files

import (
	"context"

	"github.com/dmitrijs2005/filedesk/internal/server/models"
)

// Repository stores file records. Lookups and deletes of an unknown id return
// common.ErrorNotFound.
type Repository interface {
	Create(ctx context.Context, f *models.File) error
	// List returns every record, newest first.
	List(ctx context.Context) ([]*models.File, error)
	GetByID(ctx context.Context, id string) (*models.File, error)
	// Delete removes the record and returns it as it was stored.
	Delete(ctx context.Context, id string) (*models.File, error)
}
