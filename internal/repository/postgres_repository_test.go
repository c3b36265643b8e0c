package repository

import (
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tempizhere/golinks/internal/models"
	"go.uber.org/zap"
)

func newMockRepo(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err, "Failed to create sqlmock")
	t.Cleanup(func() { db.Close() })

	repo, err := NewPostgresRepository(db, zap.NewNop())
	require.NoError(t, err)
	return repo, mock
}

func TestNewPostgresRepository_NilDatabase(t *testing.T) {
	_, err := NewPostgresRepository(nil, zap.NewNop())
	assert.Error(t, err)
}

func TestPostgresRepository_Insert(t *testing.T) {
	repo, mock := newMockRepo(t)

	query := regexp.QuoteMeta("INSERT INTO links (short_code, original_url, description, is_enabled) VALUES ($1, $2, $3, $4)")

	mock.ExpectExec(query).
		WithArgs("docs", "https://example.com", nil, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Insert("docs", "https://example.com", nil, 1)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_Insert_Duplicate(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("INSERT INTO links").
		WithArgs("docs", "https://example.com", nil, 1).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := repo.Insert("docs", "https://example.com", nil, 1)
	assert.ErrorIs(t, err, ErrCodeExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_Insert_DatabaseError(t *testing.T) {
	repo, mock := newMockRepo(t)

	dbErr := errors.New("connection reset")
	mock.ExpectExec("INSERT INTO links").
		WithArgs("docs", "https://example.com", nil, 1).
		WillReturnError(dbErr)

	err := repo.Insert("docs", "https://example.com", nil, 1)
	assert.ErrorIs(t, err, dbErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_UpdateFields(t *testing.T) {
	newURL := "https://new.example.com"
	disabled := 0

	tests := []struct {
		name         string
		patch        models.LinkPatch
		query        string
		args         []driver.Value
		expectedRows int64
	}{
		{
			name:         "URL only",
			patch:        models.LinkPatch{OriginalURL: &newURL},
			query:        "UPDATE links SET original_url = $1 WHERE short_code = $2",
			args:         []driver.Value{newURL, "docs"},
			expectedRows: 1,
		},
		{
			name:         "Disable",
			patch:        models.LinkPatch{IsEnabled: &disabled},
			query:        "UPDATE links SET is_enabled = $1 WHERE short_code = $2",
			args:         []driver.Value{disabled, "docs"},
			expectedRows: 1,
		},
		{
			name:         "Clear description",
			patch:        models.LinkPatch{SetDescription: true},
			query:        "UPDATE links SET description = $1 WHERE short_code = $2",
			args:         []driver.Value{nil, "docs"},
			expectedRows: 1,
		},
		{
			name:         "All fields",
			patch:        models.LinkPatch{OriginalURL: &newURL, IsEnabled: &disabled, SetDescription: true},
			query:        "UPDATE links SET original_url = $1, is_enabled = $2, description = $3 WHERE short_code = $4",
			args:         []driver.Value{newURL, disabled, nil, "docs"},
			expectedRows: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepo(t)

			mock.ExpectExec(regexp.QuoteMeta(tt.query)).
				WithArgs(tt.args...).
				WillReturnResult(sqlmock.NewResult(0, tt.expectedRows))

			rows, err := repo.UpdateFields("docs", tt.patch)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedRows, rows)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostgresRepository_UpdateFields_EmptyPatch(t *testing.T) {
	repo, mock := newMockRepo(t)

	rows, err := repo.UpdateFields("docs", models.LinkPatch{})
	assert.NoError(t, err)
	assert.Equal(t, int64(0), rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_Get(t *testing.T) {
	repo, mock := newMockRepo(t)

	created := time.Now()
	columns := []string{"short_code", "original_url", "description", "is_enabled", "created_at", "last_visited_at", "visit_count"}

	mock.ExpectQuery("SELECT (.+) FROM links WHERE short_code").
		WithArgs("docs").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("docs", "https://example.com", nil, 1, created, nil, int64(5)))

	link, err := repo.Get("docs")
	assert.NoError(t, err)
	assert.NotNil(t, link)
	assert.Equal(t, "docs", link.ShortCode)
	assert.Equal(t, "https://example.com", link.OriginalURL)
	assert.Nil(t, link.Description)
	assert.Equal(t, 1, link.IsEnabled)
	assert.Nil(t, link.LastVisitedAt)
	assert.Equal(t, int64(5), link.VisitCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_Get_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	columns := []string{"short_code", "original_url", "description", "is_enabled", "created_at", "last_visited_at", "visit_count"}
	mock.ExpectQuery("SELECT (.+) FROM links WHERE short_code").
		WithArgs("nope").
		WillReturnRows(sqlmock.NewRows(columns))

	link, err := repo.Get("nope")
	assert.NoError(t, err)
	assert.Nil(t, link)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_GetAll(t *testing.T) {
	repo, mock := newMockRepo(t)

	created := time.Now()
	desc := "internal docs"
	columns := []string{"short_code", "original_url", "description", "is_enabled", "created_at", "last_visited_at", "visit_count"}

	mock.ExpectQuery("SELECT (.+) FROM links").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("docs", "https://example.com/docs", desc, 1, created, nil, int64(0)).
			AddRow("wiki", "https://example.com/wiki", nil, 0, created, created, int64(7)))

	links, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, links, 2)
	assert.Equal(t, "docs", links[0].ShortCode)
	assert.Equal(t, "internal docs", *links[0].Description)
	assert.Equal(t, 0, links[1].IsEnabled)
	assert.NotNil(t, links[1].LastVisitedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_GetCodes(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT short_code FROM links").
		WillReturnRows(sqlmock.NewRows([]string{"short_code"}).
			AddRow("docs").
			AddRow("wiki"))

	codes, err := repo.GetCodes()
	assert.NoError(t, err)
	assert.Equal(t, []string{"docs", "wiki"}, codes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_Delete(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("DELETE FROM links WHERE short_code").
		WithArgs("docs").
		WillReturnResult(sqlmock.NewResult(0, 1))

	rows, err := repo.Delete("docs")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	mock.ExpectExec("DELETE FROM links WHERE short_code").
		WithArgs("nope").
		WillReturnResult(sqlmock.NewResult(0, 0))

	rows, err = repo.Delete("nope")
	assert.NoError(t, err)
	assert.Equal(t, int64(0), rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_IncrementVisit(t *testing.T) {
	repo, mock := newMockRepo(t)

	query := regexp.QuoteMeta("UPDATE links SET last_visited_at = CURRENT_TIMESTAMP, visit_count = visit_count + 1 WHERE short_code = $1")
	mock.ExpectExec(query).
		WithArgs("docs").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.IncrementVisit("docs"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("plain error")))
}
