package files

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/filedesk/internal/common"
	"github.com/dmitrijs2005/filedesk/internal/dbx"
	"github.com/dmitrijs2005/filedesk/internal/server/models"
)

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, f *models.File) error {
	query := `
		INSERT INTO files (id, name, kind, content_type, size, storage_key, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	res, err := r.db.ExecContext(ctx, query,
		f.ID, f.Name, f.Kind, f.ContentType, f.Size, f.StorageKey, f.UploadedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n != 1 {
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
	return nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.File, error) {
	query := `SELECT id, name, kind, content_type, size, storage_key, uploaded_at FROM files
		ORDER BY uploaded_at DESC, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select files: %w", err)
	}
	defer rows.Close()

	result := make([]*models.File, 0)
	for rows.Next() {
		var item models.File
		if err := rows.Scan(&item.ID, &item.Name, &item.Kind, &item.ContentType, &item.Size, &item.StorageKey, &item.UploadedAt); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.File, error) {
	query := `SELECT id, name, kind, content_type, size, storage_key, uploaded_at FROM files
		WHERE id=$1`
	return scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) (*models.File, error) {
	query := `DELETE FROM files WHERE id=$1
		RETURNING id, name, kind, content_type, size, storage_key, uploaded_at`
	return scanOne(r.db.QueryRowContext(ctx, query, id))
}

func scanOne(row *sql.Row) (*models.File, error) {
	var f models.File
	err := row.Scan(&f.ID, &f.Name, &f.Kind, &f.ContentType, &f.Size, &f.StorageKey, &f.UploadedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan file: %w", err)
	}
	return &f, nil
}
