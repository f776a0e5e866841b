package di

import (
	"github.com/GoArmGo/JobBoard/internal/app"
	"github.com/GoArmGo/JobBoard/internal/config"
	"github.com/GoArmGo/JobBoard/internal/database/client"
	"github.com/GoArmGo/JobBoard/internal/database/storage"
	"github.com/GoArmGo/JobBoard/internal/logger"
	"github.com/GoArmGo/JobBoard/internal/token"
	"github.com/GoArmGo/JobBoard/internal/usecase"
)

// BuildApp инициализирует все зависимости и возвращает готовый объект App.
func BuildApp() (*app.App, error) {
	// 1. Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	slogCfg := logger.SlogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	}
	slogger := logger.NewSlog(slogCfg)

	slogger.Info("logger initialized", "level", cfg.LogLevel, "format", cfg.LogFormat)

	// 2. Инициализация PostgreSQL клиента (подключение + миграции)
	dbClient, err := client.NewClient(cfg, slogger)
	if err != nil {
		return nil, err
	}

	// 3. Инициализация хранилищ
	userStorage := storage.NewUserStorage(dbClient.DB, slogger)
	jobStorage := storage.NewJobStorage(dbClient.DB, slogger)

	// 4. Инициализация сервиса токенов
	tokenService := token.NewJWTService(cfg.JWTSecret, cfg.TokenTTL)

	// 5. Инициализация бизнес-логики (usecases)
	authUseCase := usecase.NewAuthUseCase(userStorage, tokenService, cfg.BcryptCost, slogger)
	jobUseCase := usecase.NewJobUseCase(jobStorage, slogger)

	// 6. Сборка итогового приложения
	application := app.NewApp(
		cfg,
		slogger,
		dbClient,
		authUseCase,
		jobUseCase,
		tokenService,
	)

	slogger.Info("all dependencies initialized")
	return application, nil
}
