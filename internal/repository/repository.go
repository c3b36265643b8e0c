// Package repository содержит адаптеры хранилища ссылок
package repository

import (
	"database/sql"
	"errors"

	"github.com/tempizhere/golinks/internal/models"
)

// ErrCodeExists возвращается при попытке вставить ссылку с уже занятым коротким кодом
var ErrCodeExists = errors.New("short code already exists")

// Repository определяет интерфейс для работы с хранилищем ссылок
type Repository interface {
	// Insert сохраняет новую ссылку; при занятом коде возвращает ErrCodeExists
	Insert(code, url string, description *string, enabled int) error
	// UpdateFields применяет частичное обновление и возвращает число затронутых строк
	UpdateFields(code string, patch models.LinkPatch) (int64, error)
	// Get возвращает ссылку по коду; (nil, nil) означает отсутствие записи
	Get(code string) (*models.Link, error)
	// GetAll возвращает все ссылки
	GetAll() ([]models.Link, error)
	// GetCodes возвращает только список коротких кодов
	GetCodes() ([]string, error)
	// Delete удаляет ссылку и возвращает число затронутых строк
	Delete(code string) (int64, error)
	// IncrementVisit атомарно увеличивает счётчик визитов и выставляет last_visited_at
	IncrementVisit(code string) error
}

// Database определяет интерфейс для работы с базой данных
type Database interface {
	// Ping проверяет соединение с базой данных
	Ping() error
	// Close закрывает соединение с базой данных
	Close() error
	// Exec выполняет SQL-команду без возврата результатов
	Exec(query string, args ...interface{}) (sql.Result, error)
	// Query выполняет SQL-запрос и возвращает результаты
	Query(query string, args ...interface{}) (*sql.Rows, error)
	// QueryRow выполняет SQL-запрос и возвращает одну строку результата
	QueryRow(query string, args ...interface{}) *sql.Row
}
