// Package service содержит бизнес-логику жизненного цикла коротких ссылок
package service

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/tempizhere/golinks/internal/models"
	"github.com/tempizhere/golinks/internal/repository"
	"github.com/tempizhere/golinks/internal/shortcode"
	"go.uber.org/zap"
)

var (
	ErrMissingFields  = errors.New("missing required fields")
	ErrEmptyCode      = errors.New("empty short code")
	ErrCodeSlash      = errors.New("short code contains slashes")
	ErrInvalidCode    = errors.New("invalid short code format")
	ErrInvalidURL     = errors.New("invalid URL format")
	ErrEmptyURL       = errors.New("empty URL")
	ErrInvalidEnabled = errors.New("invalid value for is_enabled")
	ErrNotFound       = errors.New("link not found")
	ErrEmptyBatch     = errors.New("empty batch")
	ErrNoFields       = errors.New("no fields to update")
)

// Service реализует операции над ссылками поверх репозитория
type Service struct {
	repo       repository.Repository
	baseURL    string
	codeLength int
	logger     *zap.Logger
}

// NewService создаёт новый экземпляр Service
func NewService(repo repository.Repository, baseURL string, codeLength int, logger *zap.Logger) *Service {
	if codeLength <= 0 {
		codeLength = shortcode.DefaultLength
	}
	return &Service{
		repo:       repo,
		baseURL:    baseURL,
		codeLength: codeLength,
		logger:     logger,
	}
}

// BaseURL возвращает базовый адрес коротких ссылок
func (s *Service) BaseURL() string {
	return s.baseURL
}

// ShortURL собирает абсолютный короткий URL для кода
func (s *Service) ShortURL(code string) string {
	return strings.TrimRight(s.baseURL, "/") + "/" + code
}

// CreateLink создаёт одну ссылку и возвращает нормализованный код.
// Код и URL обязательны; ссылка создаётся включённой.
func (s *Service) CreateLink(code, rawURL string, description *string) (string, error) {
	if code == "" || rawURL == "" {
		return "", ErrMissingFields
	}

	normalized := shortcode.Normalize(code)
	if normalized == "" {
		return "", ErrEmptyCode
	}
	if strings.Contains(normalized, "/") {
		return "", ErrCodeSlash
	}
	if !shortcode.IsValid(normalized) {
		return "", ErrInvalidCode
	}
	if !isValidURL(rawURL) {
		return "", ErrInvalidURL
	}

	if err := s.repo.Insert(normalized, rawURL, description, 1); err != nil {
		return normalized, err
	}
	return normalized, nil
}

// CreateBatch создаёт ссылки пакетно. Элементы обрабатываются последовательно
// и независимо: ошибка по одному элементу не прерывает пакет.
func (s *Service) CreateBatch(items []models.BatchCreateItem) (models.BatchCreateResult, error) {
	result := models.BatchCreateResult{
		Success: make([]models.BatchCreated, 0),
		Errors:  make([]models.BatchCreateError, 0),
	}
	if len(items) == 0 {
		return result, ErrEmptyBatch
	}

	for _, item := range items {
		if item.URL == "" {
			result.Errors = append(result.Errors, models.BatchCreateError{
				OriginalURL: item.URL,
				ShortCode:   item.ShortCode,
				Error:       "URL is required",
			})
			continue
		}
		if !isValidURL(item.URL) {
			result.Errors = append(result.Errors, models.BatchCreateError{
				OriginalURL: item.URL,
				ShortCode:   item.ShortCode,
				Error:       "Invalid URL format",
			})
			continue
		}

		code := shortcode.Normalize(item.ShortCode)
		if code == "" {
			generated, err := shortcode.GenerateRandom(s.codeLength)
			if err != nil {
				s.logger.Error("Failed to generate short code", zap.Error(err))
				result.Errors = append(result.Errors, models.BatchCreateError{
					OriginalURL: item.URL,
					Error:       "Failed to generate short_code",
				})
				continue
			}
			code = generated
		} else if !shortcode.IsValid(code) {
			result.Errors = append(result.Errors, models.BatchCreateError{
				OriginalURL: item.URL,
				ShortCode:   code,
				Error:       "Invalid short_code format. Only alphanumeric characters, hyphens, and underscores are allowed.",
			})
			continue
		}

		if err := s.repo.Insert(code, item.URL, item.Description, 1); err != nil {
			message := "Database error during link creation"
			if errors.Is(err, repository.ErrCodeExists) {
				message = fmt.Sprintf("Short_code '%s' already exists", code)
			}
			result.Errors = append(result.Errors, models.BatchCreateError{
				OriginalURL: item.URL,
				ShortCode:   code,
				Error:       message,
			})
			continue
		}

		result.Success = append(result.Success, models.BatchCreated{
			ShortCode:   code,
			ShortURL:    s.ShortURL(code),
			OriginalURL: item.URL,
			Description: item.Description,
		})
	}

	return result, nil
}

// GetLink возвращает ссылку по коду из пути
func (s *Service) GetLink(code string) (*models.Link, error) {
	normalized := shortcode.Normalize(code)
	if normalized == "" {
		return nil, ErrEmptyCode
	}

	link, err := s.repo.Get(normalized)
	if err != nil {
		return nil, err
	}
	if link == nil {
		return nil, ErrNotFound
	}
	return link, nil
}

// UpdateLink применяет частичное обновление к ссылке; сам код не изменяется
func (s *Service) UpdateLink(code string, req models.UpdateLinkRequest) error {
	normalized := shortcode.Normalize(code)
	if normalized == "" {
		return ErrEmptyCode
	}

	var patch models.LinkPatch
	if req.URL.Set {
		if req.URL.Value == nil || strings.TrimSpace(*req.URL.Value) == "" {
			return ErrEmptyURL
		}
		if !isValidURL(*req.URL.Value) {
			return ErrInvalidURL
		}
		patch.OriginalURL = req.URL.Value
	}
	if req.IsEnabled.Set {
		if req.IsEnabled.Value == nil || (*req.IsEnabled.Value != 0 && *req.IsEnabled.Value != 1) {
			return ErrInvalidEnabled
		}
		patch.IsEnabled = req.IsEnabled.Value
	}
	if req.Description.Set {
		// явный null очищает колонку
		patch.SetDescription = true
		patch.Description = req.Description.Value
	}
	if patch.Empty() {
		return ErrNoFields
	}

	rows, err := s.repo.UpdateFields(normalized, patch)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteLink удаляет ссылку по коду из пути
func (s *Service) DeleteLink(code string) error {
	normalized := shortcode.Normalize(code)
	if normalized == "" {
		return ErrEmptyCode
	}

	rows, err := s.repo.Delete(normalized)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// ListLinks возвращает все ссылки
func (s *Service) ListLinks() ([]models.Link, error) {
	return s.repo.GetAll()
}

// ListCodes возвращает плоский список коротких кодов
func (s *Service) ListCodes() ([]string, error) {
	return s.repo.GetCodes()
}

// Resolve возвращает целевой URL для редиректа и учитывает визит.
// Отключённая и отсутствующая ссылка неразличимы для вызывающего.
// Счётчик обновляется до выдачи ответа; ошибка записи счётчика
// отменяет редирект.
func (s *Service) Resolve(code string) (string, error) {
	normalized := shortcode.Normalize(code)
	if normalized == "" || !shortcode.IsValid(normalized) {
		return "", ErrInvalidCode
	}

	link, err := s.repo.Get(normalized)
	if err != nil {
		return "", err
	}
	if link == nil || link.IsEnabled != 1 {
		return "", ErrNotFound
	}

	if err := s.repo.IncrementVisit(normalized); err != nil {
		return "", err
	}
	return link.OriginalURL, nil
}

// isValidURL проверяет, что строка разбирается как абсолютный URL
func isValidURL(raw string) bool {
	u, err := url.ParseRequestURI(raw)
	return err == nil && u.Scheme != "" && u.Host != ""
}
