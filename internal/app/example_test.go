package app_test

import (
	"fmt"
	"net/http/httptest"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/tempizhere/golinks/internal/app"
	"github.com/tempizhere/golinks/internal/repository"
	"github.com/tempizhere/golinks/internal/service"
	"go.uber.org/zap"
)

// ExampleApp_HandleCreateLink демонстрирует создание короткой ссылки через HTTP API
func ExampleApp_HandleCreateLink() {
	// Создаём зависимости
	repo := repository.NewMemoryRepository()
	svc := service.NewService(repo, "http://localhost:8080", 4, zap.NewNop())
	appInstance := app.NewApp(svc, nil, zap.NewNop())

	r := chi.NewRouter()
	r.Post("/api/links", appInstance.HandleCreateLink)

	// Создаём HTTP запрос
	body := strings.NewReader(`{"short_code": "docs", "url": "https://example.com/documentation"}`)
	req := httptest.NewRequest("POST", "/api/links", body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	fmt.Printf("Статус: %d\n", w.Code)
	fmt.Printf("Тело: %s\n", w.Body.String())

	// Output:
	// Статус: 201
	// Тело: {"message":"Link created successfully","short_code":"docs","short_url":"http://localhost:8080/docs","original_url":"https://example.com/documentation"}
}

// ExampleApp_HandleRedirect демонстрирует редирект по короткому коду
func ExampleApp_HandleRedirect() {
	repo := repository.NewMemoryRepository()
	svc := service.NewService(repo, "http://localhost:8080", 4, zap.NewNop())
	appInstance := app.NewApp(svc, nil, zap.NewNop())

	_ = repo.Insert("docs", "https://example.com/documentation", nil, 1)

	r := chi.NewRouter()
	r.Get("/{shortcode}", appInstance.HandleRedirect)

	req := httptest.NewRequest("GET", "/docs", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	fmt.Printf("Статус: %d\n", w.Code)
	fmt.Printf("Location: %s\n", w.Header().Get("Location"))

	// Output:
	// Статус: 302
	// Location: https://example.com/documentation
}
