package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/GoArmGo/JobBoard/internal/usecase"
)

// AuthHandler — обработчик HTTP-запросов регистрации и входа.
type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	logger      *slog.Logger
}

// NewAuthHandler создаёт новый экземпляр AuthHandler.
func NewAuthHandler(uc usecase.AuthUseCase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{authUseCase: uc, logger: logger}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register — регистрирует пользователя и возвращает токен с публичной проекцией.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid register request body", "error", err)
		respondWithError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	result, err := h.authUseCase.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		respondWithDomainError(w, err, h.logger)
		return
	}

	h.logger.Info("register completed", "user_id", result.User.ID)
	respondWithJSON(w, http.StatusOK, result, h.logger)
}

// Login — проверяет учетные данные и возвращает токен.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid login request body", "error", err)
		respondWithError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	result, err := h.authUseCase.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondWithDomainError(w, err, h.logger)
		return
	}

	h.logger.Info("login completed", "user_id", result.User.ID)
	respondWithJSON(w, http.StatusOK, result, h.logger)
}
