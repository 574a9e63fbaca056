// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-service-template/internal/logger"
	"github.com/MKhiriev/go-service-template/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestExampleRepo(t *testing.T) (*exampleRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	return &exampleRepository{
		DB:     db,
		logger: logger.Nop(),
		now:    func() time.Time { return fixedNow },
	}, mock
}

func exampleRows(examples ...models.Example) *sqlmock.Rows {
	rows := sqlmock.NewRows(exampleColumns)
	for _, e := range examples {
		rows.AddRow(e.ID, e.Name, e.Description, e.IsActive, e.CreatedAt, e.UpdatedAt)
	}
	return rows
}

func sampleExample(id int64) models.Example {
	return models.Example{
		ID:          id,
		Name:        "Item",
		Description: "desc",
		IsActive:    true,
		CreatedAt:   fixedNow,
		UpdatedAt:   fixedNow,
	}
}

// ── Create ────────────────────────────────────────────────────────────────────

func TestExampleRepository_Create(t *testing.T) {
	repo, mock := newTestExampleRepo(t)

	mock.ExpectQuery("INSERT INTO examples").
		WithArgs("Item", "desc", true, fixedNow, fixedNow).
		WillReturnRows(exampleRows(sampleExample(1)))

	created, err := repo.Create(context.Background(), models.Example{Name: "Item", Description: "desc", IsActive: true})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, fixedNow, created.CreatedAt)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExampleRepository_Create_Error(t *testing.T) {
	repo, mock := newTestExampleRepo(t)

	mock.ExpectQuery("INSERT INTO examples").WillReturnError(errors.New("boom"))

	_, err := repo.Create(context.Background(), models.Example{Name: "Item"})
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

// ── Get ───────────────────────────────────────────────────────────────────────

func TestExampleRepository_Get(t *testing.T) {
	repo, mock := newTestExampleRepo(t)

	mock.ExpectQuery("SELECT id, name, description, is_active, created_at, updated_at FROM examples WHERE id = \\$1").
		WithArgs(int64(5)).
		WillReturnRows(exampleRows(sampleExample(5)))

	got, err := repo.Get(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, sampleExample(5), got)
}

func TestExampleRepository_Get_NotFound(t *testing.T) {
	repo, mock := newTestExampleRepo(t)

	mock.ExpectQuery("FROM examples").
		WithArgs(int64(404)).
		WillReturnRows(exampleRows())

	_, err := repo.Get(context.Background(), 404)
	assert.ErrorIs(t, err, ErrExampleNotFound)
}

func TestExampleRepository_Get_NonRetryableError(t *testing.T) {
	repo, mock := newTestExampleRepo(t)

	mock.ExpectQuery("FROM examples").
		WillReturnError(pgError(pgerrcode.UndefinedTable))

	_, err := repo.Get(context.Background(), 1)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet(), "non-retryable errors must not be retried")
}

func TestExampleRepository_Get_GivesUpAfterRetries(t *testing.T) {
	repo, mock := newTestExampleRepo(t)

	for range readAttempts {
		mock.ExpectQuery("FROM examples").WillReturnError(pgError(pgerrcode.DeadlockDetected))
	}

	_, err := repo.Get(context.Background(), 1)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── List / Count ──────────────────────────────────────────────────────────────

func TestExampleRepository_List(t *testing.T) {
	repo, mock := newTestExampleRepo(t)

	mock.ExpectQuery("ORDER BY created_at DESC, id DESC LIMIT 20 OFFSET 20").
		WillReturnRows(exampleRows(sampleExample(3), sampleExample(2)))

	got, err := repo.List(context.Background(), 20, 20)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(3), got[0].ID)
}

func TestExampleRepository_List_Empty(t *testing.T) {
	repo, mock := newTestExampleRepo(t)

	mock.ExpectQuery("FROM examples").WillReturnRows(exampleRows())

	got, err := repo.List(context.Background(), 20, 0)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestExampleRepository_List_RowError(t *testing.T) {
	repo, mock := newTestExampleRepo(t)

	rows := exampleRows(sampleExample(1)).RowError(0, errors.New("broken row"))
	mock.ExpectQuery("FROM examples").WillReturnRows(rows)

	_, err := repo.List(context.Background(), 20, 0)
	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestExampleRepository_Count(t *testing.T) {
	repo, mock := newTestExampleRepo(t)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM examples").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, count)
}

// ── Update ────────────────────────────────────────────────────────────────────

func TestExampleRepository_Update(t *testing.T) {
	repo, mock := newTestExampleRepo(t)

	example := sampleExample(9)
	example.Name = "renamed"
	example.UpdatedAt = time.Time{}

	want := sampleExample(9)
	want.Name = "renamed"

	mock.ExpectQuery("UPDATE examples SET").
		WithArgs("renamed", "desc", true, fixedNow, int64(9)).
		WillReturnRows(exampleRows(want))

	got, err := repo.Update(context.Background(), example)
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExampleRepository_Update_NotFound(t *testing.T) {
	repo, mock := newTestExampleRepo(t)

	mock.ExpectQuery("UPDATE examples SET").WillReturnRows(exampleRows())

	_, err := repo.Update(context.Background(), sampleExample(9))
	assert.ErrorIs(t, err, ErrExampleNotFound)
}

// ── Delete ────────────────────────────────────────────────────────────────────

func TestExampleRepository_Delete(t *testing.T) {
	tests := []struct {
		name    string
		result  driver.Result
		execErr error
		wantErr error
	}{
		{name: "deleted", result: sqlmock.NewResult(0, 1)},
		{name: "missing", result: sqlmock.NewResult(0, 0), wantErr: ErrExampleNotFound},
		{name: "driver error", execErr: errors.New("boom"), wantErr: ErrExecutingStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestExampleRepo(t)

			exp := mock.ExpectExec("DELETE FROM examples WHERE id = \\$1").WithArgs(int64(3))
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(tt.result)
			}

			err := repo.Delete(context.Background(), 3)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── Search ────────────────────────────────────────────────────────────────────

func TestExampleRepository_Search(t *testing.T) {
	repo, mock := newTestExampleRepo(t)

	since := fixedNow.Add(-24 * time.Hour)
	mock.ExpectQuery("LOWER\\(name\\) LIKE").
		WithArgs("%item%", "%item%", since).
		WillReturnRows(exampleRows(sampleExample(1)))

	got, err := repo.Search(context.Background(), models.ExampleFilter{Query: " Item ", CreatedSince: since})
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTimeScanner(t *testing.T) {
	var got time.Time

	require.NoError(t, timeScanner{&got}.Scan(fixedNow))
	assert.Equal(t, fixedNow, got)

	require.NoError(t, timeScanner{&got}.Scan("2026-03-01 12:00:00.5+00:00"))
	assert.True(t, got.Equal(fixedNow.Add(500*time.Millisecond)))

	require.NoError(t, timeScanner{&got}.Scan([]byte("2026-03-01T12:00:00Z")))
	assert.True(t, got.Equal(fixedNow))

	require.NoError(t, timeScanner{&got}.Scan(nil))
	assert.True(t, got.IsZero())

	assert.Error(t, timeScanner{&got}.Scan("yesterday"))
	assert.Error(t, timeScanner{&got}.Scan(42))
}
