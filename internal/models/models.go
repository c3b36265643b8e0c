// Package models содержит модели данных сервиса коротких ссылок
package models

import (
	"bytes"
	"encoding/json"
	"time"
)

// Link представляет запись таблицы links
type Link struct {
	ShortCode     string     `json:"short_code" db:"short_code"`
	OriginalURL   string     `json:"original_url" db:"original_url"`
	Description   *string    `json:"description" db:"description"`
	IsEnabled     int        `json:"is_enabled" db:"is_enabled"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	LastVisitedAt *time.Time `json:"last_visited_at" db:"last_visited_at"`
	VisitCount    int64      `json:"visit_count" db:"visit_count"`
}

// CreateLinkRequest представляет тело запроса на создание ссылки
type CreateLinkRequest struct {
	ShortCode   string  `json:"short_code"`
	URL         string  `json:"url"`
	Description *string `json:"description"`
}

// CreateLinkResponse представляет ответ на успешное создание ссылки
type CreateLinkResponse struct {
	Message     string `json:"message"`
	ShortCode   string `json:"short_code"`
	ShortURL    string `json:"short_url"`
	OriginalURL string `json:"original_url"`
}

// BatchCreateItem представляет элемент пакетного запроса на создание ссылок
type BatchCreateItem struct {
	ShortCode   string  `json:"short_code"`
	URL         string  `json:"url"`
	Description *string `json:"description"`
}

// BatchCreated представляет успешно созданную ссылку в пакетном ответе
type BatchCreated struct {
	ShortCode   string  `json:"short_code"`
	ShortURL    string  `json:"short_url"`
	OriginalURL string  `json:"original_url"`
	Description *string `json:"description"`
}

// BatchCreateError представляет ошибку по одному элементу пакета
type BatchCreateError struct {
	OriginalURL string `json:"original_url"`
	ShortCode   string `json:"short_code,omitempty"`
	Error       string `json:"error"`
}

// BatchCreateResult содержит результаты пакетного создания ссылок
type BatchCreateResult struct {
	Success []BatchCreated     `json:"success"`
	Errors  []BatchCreateError `json:"errors"`
}

// BatchCreateResponse представляет тело ответа пакетного создания
type BatchCreateResponse struct {
	Message string             `json:"message"`
	Success []BatchCreated     `json:"success"`
	Errors  []BatchCreateError `json:"errors"`
}

// UpdateLinkRequest представляет тело PATCH-запроса.
// Каждое поле различает отсутствие, явный null и значение.
type UpdateLinkRequest struct {
	URL         OptionalString `json:"url"`
	IsEnabled   OptionalInt    `json:"is_enabled"`
	Description OptionalString `json:"description"`
}

// MessageResponse представляет ответ с информационным сообщением
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse представляет стандартное тело ошибки
type ErrorResponse struct {
	Error string `json:"error"`
}

// LinkPatch описывает частичное обновление записи links.
// Nil-поле означает "не трогать колонку"; для description признак
// SetDescription позволяет явно записать NULL.
type LinkPatch struct {
	OriginalURL    *string
	IsEnabled      *int
	Description    *string
	SetDescription bool
}

// Empty сообщает, что патч не затрагивает ни одной колонки
func (p LinkPatch) Empty() bool {
	return p.OriginalURL == nil && p.IsEnabled == nil && !p.SetDescription
}

// OptionalString представляет опциональное строковое поле JSON.
// Set выставляется при любом упоминании поля, Value остаётся nil при явном null.
type OptionalString struct {
	Set   bool
	Value *string
}

// UnmarshalJSON реализует json.Unmarshaler
func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}

// OptionalInt представляет опциональное числовое поле JSON
type OptionalInt struct {
	Set   bool
	Value *int
}

// UnmarshalJSON реализует json.Unmarshaler
func (o *OptionalInt) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}
