// Package repomanager owns the metadata store connection and hands out
// repositories, optionally bound to a transaction.
package repomanager

import (
	"context"

	"github.com/dmitrijs2005/filedesk/internal/server/repositories/files"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	Files() files.Repository
	// InTx runs fn with a repository whose changes commit only if fn returns
	// nil.
	InTx(ctx context.Context, fn func(ctx context.Context, repo files.Repository) error) error
	Close() error
}
