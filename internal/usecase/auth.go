package usecase

import (
	"context"

	"github.com/GoArmGo/JobBoard/internal/domain"
)

// AuthResult — результат регистрации или входа: токен плюс
// публичная проекция пользователя.
type AuthResult struct {
	Token string            `json:"token"`
	User  domain.PublicUser `json:"user"`
}

// AuthUseCase определяет интерфейс бизнес-логики регистрации и входа.
type AuthUseCase interface {
	// Register регистрирует нового пользователя: нормализует email, хеширует
	// пароль, сохраняет запись и выпускает токен.
	// Возвращает domain.ErrValidation при пустых полях и domain.ErrEmailTaken,
	// если нормализованный email уже занят.
	Register(ctx context.Context, name, email, password string) (*AuthResult, error)

	// Login проверяет учетные данные и выпускает токен.
	// И для неизвестного email, и для неверного пароля возвращает одну и ту же
	// domain.ErrInvalidCredentials — по ответу нельзя понять, что именно не совпало.
	Login(ctx context.Context, email, password string) (*AuthResult, error)
}
