package repomanager

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/filedesk/internal/server/repositories/files"
)

// InMemoryRepositoryManager serves a single MemoryRepository. InTx serializes
// transactions but cannot roll back.
type InMemoryRepositoryManager struct {
	mu    sync.Mutex
	files *files.MemoryRepository
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{files: files.NewMemoryRepository()}
}

func (m *InMemoryRepositoryManager) Files() files.Repository {
	return m.files
}

func (m *InMemoryRepositoryManager) InTx(ctx context.Context, fn func(ctx context.Context, repo files.Repository) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx, m.files)
}

func (m *InMemoryRepositoryManager) RunMigrations(context.Context) error {
	return nil
}

func (m *InMemoryRepositoryManager) Close() error {
	return nil
}
