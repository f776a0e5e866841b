package jobboard

import "github.com/GoArmGo/JobBoard/internal/domain"

// AuthResponse — ответ API на регистрацию и вход.
type AuthResponse struct {
	Token string            `json:"token"`
	User  domain.PublicUser `json:"user"`
}

// MessageResponse — ответ API с одним текстовым полем,
// используется и для ошибок, и для подтверждения удаления.
type MessageResponse struct {
	Msg string `json:"msg"`
}

// RegisterRequest — тело запроса регистрации.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest — тело запроса входа.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
