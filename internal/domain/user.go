package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User представляет модель пользователя в системе.
// Соответствует таблице 'users' в базе данных.
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// PublicUser — безопасная проекция пользователя для ответов API.
// Хеш пароля сюда не попадает никогда.
type PublicUser struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// Public возвращает проекцию пользователя без учетных данных.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}

// NormalizeEmail приводит email к каноническому виду: обрезает пробелы
// и переводит в нижний регистр. Применяется перед любым сравнением и записью.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
