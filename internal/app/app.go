package app

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/GoArmGo/JobBoard/internal/config"
	"github.com/GoArmGo/JobBoard/internal/core/ports"
	"github.com/GoArmGo/JobBoard/internal/database/client"
	"github.com/GoArmGo/JobBoard/internal/usecase"
)

type App struct {
	Config      *config.Config
	logger      *slog.Logger
	dbClient    *client.Client
	authUseCase usecase.AuthUseCase
	jobUseCase  usecase.JobUseCase
	tokens      ports.TokenService
}

func NewApp(cfg *config.Config,
	logger *slog.Logger,
	dbClient *client.Client,
	authUseCase usecase.AuthUseCase,
	jobUseCase usecase.JobUseCase,
	tokens ports.TokenService) *App {
	return &App{
		Config:      cfg,
		logger:      logger,
		dbClient:    dbClient,
		authUseCase: authUseCase,
		jobUseCase:  jobUseCase,
		tokens:      tokens,
	}
}

// LoggerIns возвращает основной логгер приложения
func (a *App) LoggerIns() *slog.Logger {
	return a.logger
}

func (a *App) Run(ctx context.Context) error {
	// канал для graceful shutdown
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := runServer(ctx, a.Config, a.logger, a.authUseCase, a.jobUseCase, a.tokens); err != nil {
		return err
	}

	a.logger.Info("shutting down")

	// аккуратно закрываем ресурсы
	if closeErr := a.Shutdown(); closeErr != nil {
		a.logger.Error("shutdown error", "error", closeErr)
	}

	a.logger.Info("stopped cleanly")
	return nil
}

// Shutdown закрывает все ресурсы приложения
func (a *App) Shutdown() error {
	if a.dbClient != nil {
		if err := a.dbClient.Close(); err != nil {
			return fmt.Errorf("ошибка закрытия БД: %w", err)
		}
	}
	return nil
}
