package files

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/dmitrijs2005/filedesk/internal/common"
	"github.com/dmitrijs2005/filedesk/internal/server/models"
)

// MemoryRepository keeps records in process memory. It is used when no
// database DSN is configured.
type MemoryRepository struct {
	mu    sync.RWMutex
	files map[string]models.File
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{files: make(map[string]models.File)}
}

func (r *MemoryRepository) Create(_ context.Context, f *models.File) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.files[f.ID]; ok {
		return fmt.Errorf("file %s already exists", f.ID)
	}
	r.files[f.ID] = *f
	return nil
}

func (r *MemoryRepository) List(_ context.Context) ([]*models.File, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.File, 0, len(r.files))
	for _, f := range r.files {
		f := f
		result = append(result, &f)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].UploadedAt.Equal(result[j].UploadedAt) {
			return result[i].UploadedAt.After(result[j].UploadedAt)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id string) (*models.File, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.files[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &f, nil
}

func (r *MemoryRepository) Delete(_ context.Context, id string) (*models.File, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, ok := r.files[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	delete(r.files, id)
	return &f, nil
}
