package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/tempizhere/golinks/internal/models"
	"go.uber.org/zap"
)

// linkColumns — список колонок таблицы links в порядке сканирования
const linkColumns = "short_code, original_url, description, is_enabled, created_at, last_visited_at, visit_count"

// PostgresRepository реализует интерфейс Repository с использованием PostgreSQL
type PostgresRepository struct {
	db     Database
	logger *zap.Logger
}

// NewPostgresRepository создаёт новый экземпляр PostgresRepository
func NewPostgresRepository(db Database, logger *zap.Logger) (*PostgresRepository, error) {
	if db == nil {
		return nil, errors.New("database is not configured")
	}
	return &PostgresRepository{
		db:     db,
		logger: logger,
	}, nil
}

// Insert сохраняет новую ссылку; created_at и visit_count выставляет база
func (r *PostgresRepository) Insert(code, url string, description *string, enabled int) error {
	_, err := r.db.Exec(
		"INSERT INTO links (short_code, original_url, description, is_enabled) VALUES ($1, $2, $3, $4)",
		code, url, description, enabled,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrCodeExists
		}
		r.logger.Error("Failed to insert link", zap.String("short_code", code), zap.Error(err))
		return err
	}
	return nil
}

// UpdateFields собирает параметризованный UPDATE только из заданных полей патча
func (r *PostgresRepository) UpdateFields(code string, patch models.LinkPatch) (int64, error) {
	setParts := make([]string, 0, 3)
	args := make([]interface{}, 0, 4)

	if patch.OriginalURL != nil {
		args = append(args, *patch.OriginalURL)
		setParts = append(setParts, fmt.Sprintf("original_url = $%d", len(args)))
	}
	if patch.IsEnabled != nil {
		args = append(args, *patch.IsEnabled)
		setParts = append(setParts, fmt.Sprintf("is_enabled = $%d", len(args)))
	}
	if patch.SetDescription {
		// nil-указатель записывает в колонку NULL
		args = append(args, patch.Description)
		setParts = append(setParts, fmt.Sprintf("description = $%d", len(args)))
	}
	if len(setParts) == 0 {
		return 0, nil
	}

	args = append(args, code)
	query := fmt.Sprintf("UPDATE links SET %s WHERE short_code = $%d", strings.Join(setParts, ", "), len(args))

	res, err := r.db.Exec(query, args...)
	if err != nil {
		r.logger.Error("Failed to update link", zap.String("short_code", code), zap.Error(err))
		return 0, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		r.logger.Error("Failed to get affected rows", zap.String("short_code", code), zap.Error(err))
		return 0, err
	}
	return rows, nil
}

// Get возвращает ссылку по короткому коду, (nil, nil) если записи нет
func (r *PostgresRepository) Get(code string) (*models.Link, error) {
	row := r.db.QueryRow("SELECT "+linkColumns+" FROM links WHERE short_code = $1", code)

	var link models.Link
	err := row.Scan(&link.ShortCode, &link.OriginalURL, &link.Description,
		&link.IsEnabled, &link.CreatedAt, &link.LastVisitedAt, &link.VisitCount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get link", zap.String("short_code", code), zap.Error(err))
		return nil, err
	}
	return &link, nil
}

// GetAll возвращает все ссылки таблицы
func (r *PostgresRepository) GetAll() ([]models.Link, error) {
	rows, err := r.db.Query("SELECT " + linkColumns + " FROM links")
	if err != nil {
		r.logger.Error("Failed to list links", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	links := make([]models.Link, 0)
	for rows.Next() {
		var link models.Link
		if err := rows.Scan(&link.ShortCode, &link.OriginalURL, &link.Description,
			&link.IsEnabled, &link.CreatedAt, &link.LastVisitedAt, &link.VisitCount); err != nil {
			r.logger.Error("Failed to scan link row", zap.Error(err))
			return nil, err
		}
		links = append(links, link)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Failed to iterate link rows", zap.Error(err))
		return nil, err
	}
	return links, nil
}

// GetCodes возвращает только колонку short_code
func (r *PostgresRepository) GetCodes() ([]string, error) {
	rows, err := r.db.Query("SELECT short_code FROM links")
	if err != nil {
		r.logger.Error("Failed to list short codes", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	codes := make([]string, 0)
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			r.logger.Error("Failed to scan short code", zap.Error(err))
			return nil, err
		}
		codes = append(codes, code)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Failed to iterate short codes", zap.Error(err))
		return nil, err
	}
	return codes, nil
}

// Delete удаляет ссылку по короткому коду
func (r *PostgresRepository) Delete(code string) (int64, error) {
	res, err := r.db.Exec("DELETE FROM links WHERE short_code = $1", code)
	if err != nil {
		r.logger.Error("Failed to delete link", zap.String("short_code", code), zap.Error(err))
		return 0, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		r.logger.Error("Failed to get affected rows", zap.String("short_code", code), zap.Error(err))
		return 0, err
	}
	return rows, nil
}

// IncrementVisit обновляет счётчик и время визита одним атомарным запросом
func (r *PostgresRepository) IncrementVisit(code string) error {
	_, err := r.db.Exec(
		"UPDATE links SET last_visited_at = CURRENT_TIMESTAMP, visit_count = visit_count + 1 WHERE short_code = $1",
		code,
	)
	if err != nil {
		r.logger.Error("Failed to increment visit count", zap.String("short_code", code), zap.Error(err))
		return err
	}
	return nil
}

// isUniqueViolation распознаёт нарушение уникальности первичного ключа
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
