package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/GoArmGo/JobBoard/internal/config"
	"github.com/GoArmGo/JobBoard/internal/core/ports"
	"github.com/GoArmGo/JobBoard/internal/handler"
	"github.com/GoArmGo/JobBoard/internal/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter собирает маршруты API. Вынесено из runServer,
// чтобы тесты могли поднять роутер поверх httptest.
func NewRouter(
	logger *slog.Logger,
	authUseCase usecase.AuthUseCase,
	jobUseCase usecase.JobUseCase,
	tokens ports.TokenService,
	requestTimeout time.Duration,
) chi.Router {
	authHandler := handler.NewAuthHandler(authUseCase, logger)
	jobHandler := handler.NewJobHandler(jobUseCase, logger)

	r := chi.NewRouter()
	r.Use(handler.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
	})

	r.Route("/api/jobs", func(r chi.Router) {
		// публичная выдача, токен не нужен
		r.Get("/public", jobHandler.GetPublicJobs)

		// защищенные маршруты
		r.Group(func(r chi.Router) {
			r.Use(handler.Authenticate(tokens, logger))
			r.Get("/", jobHandler.GetMyJobs)
			r.Post("/", jobHandler.CreateJob)
			r.Put("/{id}", jobHandler.UpdateJob)
			r.Delete("/{id}", jobHandler.DeleteJob)
		})
	})

	return r
}

// runServer запускает HTTP сервер и блокируется до отмены контекста
func runServer(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	authUseCase usecase.AuthUseCase,
	jobUseCase usecase.JobUseCase,
	tokens ports.TokenService,
) error {
	r := NewRouter(logger, authUseCase, jobUseCase, tokens, cfg.RequestTimeout)

	serverAddr := fmt.Sprintf(":%s", cfg.ServerPort)
	server := &http.Server{
		Addr:    serverAddr,
		Handler: r,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server started", "addr", serverAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("ошибка при запуске сервера: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutdown signal received, stopping server")

	ctxServer, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctxServer); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	logger.Info("server stopped gracefully")
	return nil
}
