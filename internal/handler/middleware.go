package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/GoArmGo/JobBoard/internal/core/ports"
	"github.com/google/uuid"
)

// RequestLogger — middleware для логирования HTTP-запросов.
func RequestLogger(logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// Оборачиваем ResponseWriter, чтобы знать статус
			ww := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(ww, r)

			duration := time.Since(start)
			logger.Info("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.statusCode,
				"duration_ms", duration.Milliseconds(),
			)
		})
	}
}

// responseWriter нужен, чтобы перехватывать код ответа
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

type ctxKey int

const subjectKey ctxKey = 0

// SubjectFromContext достает ID аутентифицированного пользователя из контекста запроса.
func SubjectFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(subjectKey).(uuid.UUID)
	return id, ok
}

// Authenticate — middleware аутентификации, единственная точка проверки токена.
// Извлекает bearer-токен из заголовка Authorization, проверяет его через
// TokenService и кладет subject в контекст запроса. Просроченный и невалидный
// токен дают один и тот же ответ 401: по нему нельзя понять причину отказа.
func Authenticate(tokens ports.TokenService, logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := r.Header.Get("Authorization")
			if !strings.HasPrefix(h, "Bearer ") {
				respondWithError(w, http.StatusUnauthorized, "No token, auth denied", logger)
				return
			}

			userID, err := tokens.Verify(strings.TrimPrefix(h, "Bearer "))
			if err != nil {
				logger.Warn("token verification failed", "error", err)
				respondWithError(w, http.StatusUnauthorized, "Token invalid", logger)
				return
			}

			ctx := context.WithValue(r.Context(), subjectKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
