// Package middleware содержит HTTP middleware сервиса
package middleware

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/tempizhere/golinks/internal/models"
	"go.uber.org/zap"
)

const bearerPrefix = "Bearer "

// AuthMiddleware проверяет Bearer-токен на всех маршрутах /api/*.
// Токен сравнивается с настроенным секретом за постоянное время.
func AuthMiddleware(apiToken string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, bearerPrefix) {
				writeAuthError(w, "Unauthorized - Missing or malformed Authorization header.")
				return
			}

			token := strings.TrimPrefix(authHeader, bearerPrefix)
			if subtle.ConstantTimeCompare([]byte(token), []byte(apiToken)) != 1 {
				logger.Warn("Rejected API request with invalid token", zap.String("uri", r.RequestURI))
				writeAuthError(w, "Unauthorized - Invalid token.")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// writeAuthError пишет JSON-тело ошибки аутентификации
func writeAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: message})
}
