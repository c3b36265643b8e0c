// Package app содержит HTTP-обработчики сервиса коротких ссылок
package app

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tempizhere/golinks/internal/models"
	"github.com/tempizhere/golinks/internal/repository"
	"github.com/tempizhere/golinks/internal/service"
	"go.uber.org/zap"
)

// App содержит хендлеры и зависимости
type App struct {
	svc    *service.Service
	db     repository.Database
	logger *zap.Logger
}

// NewApp создаёт новое приложение
func NewApp(svc *service.Service, db repository.Database, logger *zap.Logger) *App {
	return &App{svc: svc, db: db, logger: logger}
}

// HandleRedirect обрабатывает GET-запросы на "/{shortcode}"
func (a *App) HandleRedirect(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "shortcode")

	target, err := a.svc.Resolve(code)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCode):
			a.writeError(w, http.StatusBadRequest, "Invalid short_code format")
		case errors.Is(err, service.ErrNotFound):
			a.writeError(w, http.StatusNotFound, "Short_code not found or disabled.")
		default:
			a.logger.Error("Redirect lookup failed", zap.String("short_code", code), zap.Error(err))
			a.writeError(w, http.StatusInternalServerError, "Internal server error during redirect lookup")
		}
		return
	}

	w.Header().Set("Location", target)
	w.WriteHeader(http.StatusFound)
}

// HandleCreateLink обрабатывает POST-запросы на "/api/links".
// Тело-объект создаёт одну ссылку, тело-массив — пакет.
func (a *App) HandleCreateLink(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		a.writeError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	if isJSONArray(body) {
		a.handleCreateBatch(w, body)
		return
	}

	var req models.CreateLinkRequest
	if err := json.Unmarshal(body, &req); err != nil {
		a.writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	code, err := a.svc.CreateLink(req.ShortCode, req.URL, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			a.writeError(w, http.StatusBadRequest, "Missing required fields: short_code and url are required.")
		case errors.Is(err, service.ErrEmptyCode):
			a.writeError(w, http.StatusBadRequest, "short_code cannot be empty.")
		case errors.Is(err, service.ErrCodeSlash):
			a.writeError(w, http.StatusBadRequest, "short_code cannot contain slashes")
		case errors.Is(err, service.ErrInvalidCode):
			a.writeError(w, http.StatusBadRequest, "Invalid short_code format. Only alphanumeric characters, hyphens, and underscores are allowed.")
		case errors.Is(err, service.ErrInvalidURL):
			a.writeError(w, http.StatusBadRequest, "Invalid URL format.")
		case errors.Is(err, repository.ErrCodeExists):
			a.writeError(w, http.StatusConflict, fmt.Sprintf("Short_code '%s' already exists.", code))
		default:
			a.logger.Error("Link creation failed", zap.Error(err))
			a.writeError(w, http.StatusInternalServerError, "Internal server error during link creation.")
		}
		return
	}

	a.writeJSON(w, http.StatusCreated, models.CreateLinkResponse{
		Message:     "Link created successfully",
		ShortCode:   code,
		ShortURL:    a.svc.ShortURL(code),
		OriginalURL: req.URL,
	})
}

// handleCreateBatch обрабатывает пакетное создание ссылок
func (a *App) handleCreateBatch(w http.ResponseWriter, body []byte) {
	var items []models.BatchCreateItem
	if err := json.Unmarshal(body, &items); err != nil {
		a.writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	result, err := a.svc.CreateBatch(items)
	if err != nil {
		if errors.Is(err, service.ErrEmptyBatch) {
			a.writeError(w, http.StatusBadRequest, "Empty array provided")
			return
		}
		a.logger.Error("Batch creation failed", zap.Error(err))
		a.writeError(w, http.StatusInternalServerError, "Internal server error during link creation.")
		return
	}

	status := http.StatusCreated
	if len(result.Success) == 0 {
		status = http.StatusBadRequest
	}
	a.writeJSON(w, status, models.BatchCreateResponse{
		Message: fmt.Sprintf("Processed %d links: %d created, %d failed",
			len(items), len(result.Success), len(result.Errors)),
		Success: result.Success,
		Errors:  result.Errors,
	})
}

// HandleGetLink обрабатывает GET-запросы на "/api/links/{shortcode}"
func (a *App) HandleGetLink(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "shortcode")

	link, err := a.svc.GetLink(code)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyCode):
			a.writeError(w, http.StatusBadRequest, "Missing shortcode in path.")
		case errors.Is(err, service.ErrNotFound):
			a.writeError(w, http.StatusNotFound, fmt.Sprintf("Link with shortcode '%s' not found.", code))
		default:
			a.logger.Error("Link retrieval failed", zap.String("short_code", code), zap.Error(err))
			a.writeError(w, http.StatusInternalServerError, "Internal server error during link retrieval.")
		}
		return
	}

	a.writeJSON(w, http.StatusOK, link)
}

// HandleUpdateLink обрабатывает PATCH-запросы на "/api/links/{shortcode}"
func (a *App) HandleUpdateLink(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "shortcode")

	var req models.UpdateLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if err := a.svc.UpdateLink(code, req); err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyCode):
			a.writeError(w, http.StatusBadRequest, "Short code not provided in the URL path.")
		case errors.Is(err, service.ErrEmptyURL):
			a.writeError(w, http.StatusBadRequest, "URL cannot be empty or null.")
		case errors.Is(err, service.ErrInvalidURL):
			a.writeError(w, http.StatusBadRequest, "Invalid URL format.")
		case errors.Is(err, service.ErrInvalidEnabled):
			a.writeError(w, http.StatusBadRequest, "Invalid value for is_enabled. Must be 0 or 1.")
		case errors.Is(err, service.ErrNoFields):
			a.writeError(w, http.StatusBadRequest, "No valid fields provided for update (url, is_enabled, description).")
		case errors.Is(err, service.ErrNotFound):
			a.writeError(w, http.StatusNotFound, fmt.Sprintf("Short code '%s' not found.", code))
		default:
			a.logger.Error("Link update failed", zap.String("short_code", code), zap.Error(err))
			a.writeError(w, http.StatusInternalServerError, "Internal server error during link update.")
		}
		return
	}

	a.writeJSON(w, http.StatusOK, models.MessageResponse{
		Message: fmt.Sprintf("Link with short code '%s' updated successfully", code),
	})
}

// HandleDeleteLink обрабатывает DELETE-запросы на "/api/links/{shortcode}"
func (a *App) HandleDeleteLink(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "shortcode")

	if err := a.svc.DeleteLink(code); err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyCode):
			a.writeError(w, http.StatusBadRequest, "Missing shortcode in path.")
		case errors.Is(err, service.ErrNotFound):
			a.writeError(w, http.StatusNotFound, fmt.Sprintf("Link with shortcode '%s' not found.", code))
		default:
			a.logger.Error("Link deletion failed", zap.String("short_code", code), zap.Error(err))
			a.writeError(w, http.StatusInternalServerError, "Internal server error during link deletion.")
		}
		return
	}

	a.writeJSON(w, http.StatusOK, models.MessageResponse{
		Message: fmt.Sprintf("Link with shortcode '%s' deleted successfully.", code),
	})
}

// HandleListLinks обрабатывает GET-запросы на "/api/links"
func (a *App) HandleListLinks(w http.ResponseWriter, r *http.Request) {
	links, err := a.svc.ListLinks()
	if err != nil {
		a.logger.Error("Link listing failed", zap.Error(err))
		a.writeError(w, http.StatusInternalServerError, "Internal server error during link listing.")
		return
	}
	a.writeJSON(w, http.StatusOK, links)
}

// HandleListShortcodes обрабатывает GET-запросы на "/api/shortcodes"
func (a *App) HandleListShortcodes(w http.ResponseWriter, r *http.Request) {
	codes, err := a.svc.ListCodes()
	if err != nil {
		a.logger.Error("Shortcode listing failed", zap.Error(err))
		a.writeError(w, http.StatusInternalServerError, "Internal server error during shortcode listing.")
		return
	}
	a.writeJSON(w, http.StatusOK, codes)
}

// HandlePing обрабатывает GET-запросы на "/ping"
func (a *App) HandlePing(w http.ResponseWriter, r *http.Request) {
	if a.db == nil {
		a.writeError(w, http.StatusInternalServerError, "Database not configured")
		return
	}
	if err := a.db.Ping(); err != nil {
		a.writeError(w, http.StatusInternalServerError, "Database connection failed")
		return
	}
	w.WriteHeader(http.StatusOK)
}

// writeJSON пишет JSON-ответ с проверкой ошибок
func (a *App) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "Failed to encode JSON", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		a.logger.Error("Failed to write response", zap.Error(err))
	}
}

// writeError пишет стандартное тело ошибки {"error": "..."}
func (a *App) writeError(w http.ResponseWriter, status int, message string) {
	a.writeJSON(w, status, models.ErrorResponse{Error: message})
}

// isJSONArray определяет по первому значащему байту, что тело — JSON-массив
func isJSONArray(body []byte) bool {
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '['
}
