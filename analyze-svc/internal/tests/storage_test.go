package tests

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"review-insights/analyze-svc/internal/domain"
	"review-insights/analyze-svc/internal/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeAnalysisFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestFileStore_GetAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.json")
	writeAnalysisFile(t, path, `[
	  {"restaurant_id": 1, "restaurant_name": "کافه"},
	  {"id": 2, "name": "کباب"},
	  {"restaurant_name": "بدون شناسه"}
	]`)

	store, err := storage.NewFileStore(path)
	require.NoError(t, err)

	analysis, err := store.GetAnalysis(1)
	require.NoError(t, err)
	assert.JSONEq(t, `{"restaurant_id": 1, "restaurant_name": "کافه"}`, string(analysis.Payload))

	_, err = store.GetAnalysis(2)
	assert.NoError(t, err)

	_, err = store.GetAnalysis(999)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	writeAnalysisFile(t, path, `[
	  {"restaurant_id": 1, "restaurant_name": "کافه"},
	  {"id": 2, "name": "کباب ترش"},
	  {"restaurant_id": 3, "restaurant_name": "سفره‌خانه"}
	]`)
	changed, err := store.Reload()
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, changed)

	_, err = store.GetAnalysis(3)
	assert.NoError(t, err)
}

func TestFileStore_BadFile(t *testing.T) {
	_, err := storage.NewFileStore(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "output.json")
	writeAnalysisFile(t, path, `{"restaurant_id": 1}`)
	_, err = storage.NewFileStore(path)
	assert.Error(t, err)
}

func TestPostgresStore_GetAnalysis(t *testing.T) {
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sqlMock.ExpectQuery("SELECT data FROM analysis_results").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"data"}).AddRow([]byte(`{"restaurant_id":1}`)))
	sqlMock.ExpectQuery("SELECT data FROM analysis_results").
		WithArgs(2).
		WillReturnError(sql.ErrNoRows)
	sqlMock.ExpectQuery("SELECT data FROM analysis_results").
		WithArgs(3).
		WillReturnError(sql.ErrConnDone)

	store := storage.NewPostgresStore(db)

	analysis, err := store.GetAnalysis(1)
	require.NoError(t, err)
	assert.Equal(t, `{"restaurant_id":1}`, string(analysis.Payload))

	_, err = store.GetAnalysis(2)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = store.GetAnalysis(3)
	assert.ErrorIs(t, err, sql.ErrConnDone)

	assert.NoError(t, sqlMock.ExpectationsWereMet())
}
