// Package services holds the server's file operations: validation, blob
// storage and metadata kept consistent with each other.
package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"strings"
	"time"

	"github.com/dmitrijs2005/filedesk/internal/common"
	"github.com/dmitrijs2005/filedesk/internal/filex"
	"github.com/dmitrijs2005/filedesk/internal/logging"
	"github.com/dmitrijs2005/filedesk/internal/server/models"
	"github.com/dmitrijs2005/filedesk/internal/server/repositories/files"
	"github.com/dmitrijs2005/filedesk/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/filedesk/internal/server/storage"
	"github.com/google/uuid"
)

// Upload describes one incoming file.
type Upload struct {
	Kind        string
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

type FileService struct {
	repos        repomanager.RepositoryManager
	blobs        storage.Store
	logger       logging.Logger
	maxSize      int64
	allowedTypes []string
	now          func() time.Time
}

func NewFileService(repos repomanager.RepositoryManager, blobs storage.Store, logger logging.Logger, maxSize int64, allowedTypes []string) *FileService {
	return &FileService{
		repos:        repos,
		blobs:        blobs,
		logger:       logger.With("module", "file_service"),
		maxSize:      maxSize,
		allowedTypes: allowedTypes,
		now:          time.Now,
	}
}

// Upload validates u, stores its content and records its metadata. The blob
// is removed again if the record cannot be written.
func (s *FileService) Upload(ctx context.Context, u Upload) (*models.File, error) {
	name := filex.SafeName(u.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: empty file name", common.ErrorMissingFile)
	}
	if s.maxSize > 0 && u.Size > s.maxSize {
		return nil, fmt.Errorf("%w: %d bytes, limit %d", common.ErrorFileTooLarge, u.Size, s.maxSize)
	}

	contentType := mediaType(u.ContentType)
	if !s.allowed(contentType) {
		return nil, fmt.Errorf("%w: %q", common.ErrorUnsupportedType, contentType)
	}

	kind := u.Kind
	if kind == "" {
		kind = models.KindFile
	}

	now := s.now().UTC()
	f := &models.File{
		ID:          uuid.NewString(),
		Name:        name,
		Kind:        kind,
		ContentType: contentType,
		Size:        u.Size,
		StorageKey:  storage.NewKey(now),
		UploadedAt:  now,
	}

	if err := s.blobs.Put(ctx, f.StorageKey, u.Body, u.Size, contentType); err != nil {
		return nil, fmt.Errorf("store content: %w", err)
	}

	if err := s.repos.Files().Create(ctx, f); err != nil {
		if derr := s.blobs.Delete(context.WithoutCancel(ctx), f.StorageKey); derr != nil {
			s.logger.Error(ctx, "orphaned blob", "key", f.StorageKey, "error", derr)
		}
		return nil, fmt.Errorf("save metadata: %w", err)
	}

	s.logger.Info(ctx, "file uploaded", "id", f.ID, "name", f.Name, "kind", f.Kind, "size", f.Size)
	return f, nil
}

func (s *FileService) List(ctx context.Context) ([]*models.File, error) {
	return s.repos.Files().List(ctx)
}

// Delete removes the record and then its content inside one metadata
// transaction, so with Postgres the record survives a failed content delete.
func (s *FileService) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return common.ErrorNotFound
	}

	err := s.repos.InTx(ctx, func(ctx context.Context, repo files.Repository) error {
		f, err := repo.Delete(ctx, id)
		if err != nil {
			return err
		}
		if err := s.blobs.Delete(ctx, f.StorageKey); err != nil {
			return fmt.Errorf("delete content: %w", err)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, common.ErrorNotFound) {
			s.logger.Error(ctx, "delete failed", "id", id, "error", err)
		}
		return err
	}

	s.logger.Info(ctx, "file deleted", "id", id)
	return nil
}

func (s *FileService) allowed(contentType string) bool {
	if len(s.allowedTypes) == 0 {
		return true
	}
	for _, t := range s.allowedTypes {
		if strings.HasSuffix(t, "/") {
			if strings.HasPrefix(contentType, t) {
				return true
			}
		} else if contentType == t {
			return true
		}
	}
	return false
}

// mediaType strips parameters and lowercases; unparsable values become
// application/octet-stream.
func mediaType(v string) string {
	mt, _, err := mime.ParseMediaType(v)
	if err != nil || mt == "" {
		return "application/octet-stream"
	}
	return mt
}
