package files

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/filedesk/internal/common"
	"github.com/dmitrijs2005/filedesk/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var columns = []string{"id", "name", "kind", "content_type", "size", "storage_key", "uploaded_at"}

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return NewPostgresRepository(db), mock, db
}

func sampleFile() *models.File {
	return &models.File{
		ID:          "0b9c7c3e-7d1a-4a53-9a39-0f6f2b1f0c11",
		Name:        "report.pdf",
		Kind:        models.KindFile,
		ContentType: "application/pdf",
		Size:        42,
		StorageKey:  "files/2026/10/19/key",
		UploadedAt:  time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC),
	}
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	f := sampleFile()
	mock.ExpectExec(`(?s)^\s*INSERT\s+INTO\s+files\b.*VALUES\s*\(\$1, \$2, \$3, \$4, \$5, \$6, \$7\)`).
		WithArgs(f.ID, f.Name, f.Kind, f.ContentType, f.Size, f.StorageKey, f.UploadedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), f))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		result func(e *sqlmock.ExpectedExec)
		want   string
	}{
		{"db error", func(e *sqlmock.ExpectedExec) { e.WillReturnError(errors.New("db down")) }, `db error: .*db down`},
		{"rows affected error", func(e *sqlmock.ExpectedExec) {
			e.WillReturnResult(sqlmock.NewErrorResult(errors.New("rows-err")))
		}, `rows affected error: .*rows-err`},
		{"no rows", func(e *sqlmock.ExpectedExec) { e.WillReturnResult(sqlmock.NewResult(0, 0)) }, `unexpected rows affected: 0`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, db := newRepoWithMock(t)
			defer db.Close()

			tt.result(mock.ExpectExec(`INSERT\s+INTO\s+files`))

			err := repo.Create(context.Background(), sampleFile())
			require.Error(t, err)
			assert.Regexp(t, regexp.MustCompile(tt.want), err.Error())
		})
	}
}

func TestList_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	newer, older := sampleFile(), sampleFile()
	older.ID, older.UploadedAt = "older", newer.UploadedAt.Add(-time.Hour)

	rows := sqlmock.NewRows(columns).
		AddRow(newer.ID, newer.Name, newer.Kind, newer.ContentType, newer.Size, newer.StorageKey, newer.UploadedAt).
		AddRow(older.ID, older.Name, older.Kind, older.ContentType, older.Size, older.StorageKey, older.UploadedAt)

	mock.ExpectQuery(`(?s)SELECT id, name, kind, content_type, size, storage_key, uploaded_at FROM files\s+ORDER BY uploaded_at DESC`).
		WillReturnRows(rows)

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []*models.File{newer, older}, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestList_Empty(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM files`).WillReturnRows(sqlmock.NewRows(columns))

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestList_Errors(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM files`).WillReturnError(errors.New("boom"))
	_, err := repo.List(context.Background())
	assert.ErrorContains(t, err, "failed to select files")

	mock.ExpectQuery(`FROM files`).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("x"))
	_, err = repo.List(context.Background())
	assert.Error(t, err)

	mock.ExpectQuery(`FROM files`).WillReturnRows(
		sqlmock.NewRows(columns).
			AddRow("a", "n", "file", "text/plain", 1, "k", time.Now()).
			RowError(0, errors.New("row-err")))
	_, err = repo.List(context.Background())
	assert.ErrorContains(t, err, "row-err")
}

func TestGetByID(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	f := sampleFile()
	mock.ExpectQuery(`(?s)SELECT .* FROM files\s+WHERE id=\$1`).
		WithArgs(f.ID).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(f.ID, f.Name, f.Kind, f.ContentType, f.Size, f.StorageKey, f.UploadedAt))

	got, err := repo.GetByID(context.Background(), f.ID)
	require.NoError(t, err)
	assert.Equal(t, f, got)

	mock.ExpectQuery(`WHERE id=\$1`).WithArgs("nope").WillReturnError(sql.ErrNoRows)
	_, err = repo.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestDelete(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	f := sampleFile()
	mock.ExpectQuery(`(?s)DELETE FROM files WHERE id=\$1\s+RETURNING id, name, kind, content_type, size, storage_key, uploaded_at`).
		WithArgs(f.ID).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(f.ID, f.Name, f.Kind, f.ContentType, f.Size, f.StorageKey, f.UploadedAt))

	got, err := repo.Delete(context.Background(), f.ID)
	require.NoError(t, err)
	assert.Equal(t, f.StorageKey, got.StorageKey)

	mock.ExpectQuery(`DELETE FROM files`).WithArgs("gone").WillReturnRows(sqlmock.NewRows(columns))
	_, err = repo.Delete(context.Background(), "gone")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	mock.ExpectQuery(`DELETE FROM files`).WithArgs("x").WillReturnError(errors.New("db down"))
	_, err = repo.Delete(context.Background(), "x")
	assert.ErrorContains(t, err, "failed to scan file: db down")

	require.NoError(t, mock.ExpectationsWereMet())
}
