package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/JobBoard/internal/core/ports"
	"github.com/GoArmGo/JobBoard/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// authUseCase implements AuthUseCase
type authUseCase struct {
	userStorage ports.UserStorage
	tokens      ports.TokenService
	bcryptCost  int
	logger      *slog.Logger
}

// NewAuthUseCase создает новый экземпляр AuthUseCase
func NewAuthUseCase(
	userStorage ports.UserStorage,
	tokens ports.TokenService,
	bcryptCost int,
	logger *slog.Logger,
) AuthUseCase {
	return &authUseCase{
		userStorage: userStorage,
		tokens:      tokens,
		bcryptCost:  bcryptCost,
		logger:      logger,
	}
}

// Register регистрирует нового пользователя и выпускает для него токен
func (uc *authUseCase) Register(ctx context.Context, name, email, password string) (*AuthResult, error) {
	email = domain.NormalizeEmail(email)

	if name == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: name, email и password обязательны", domain.ErrValidation)
	}

	// 1. Хешируем пароль. Дорогая операция, выполняется до записи в бд
	hash, err := bcrypt.GenerateFromPassword([]byte(password), uc.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка хеширования пароля: %w", err)
	}

	// 2. Сохраняем пользователя; дубликат email ловит уникальный индекс
	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := uc.userStorage.CreateUser(ctx, user); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("usecase: ошибка при сохранении пользователя: %w", err)
	}

	// 3. Выпускаем токен
	tok, err := uc.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка выпуска токена: %w", err)
	}

	uc.logger.Info("user registered", "user_id", user.ID)
	return &AuthResult{Token: tok, User: user.Public()}, nil
}

// Login проверяет учетные данные и выпускает токен
func (uc *authUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = domain.NormalizeEmail(email)

	user, err := uc.userStorage.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("usecase: ошибка при поиске пользователя: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	tok, err := uc.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка выпуска токена: %w", err)
	}

	uc.logger.Info("user logged in", "user_id", user.ID)
	return &AuthResult{Token: tok, User: user.Public()}, nil
}
