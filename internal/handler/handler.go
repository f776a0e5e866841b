package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/GoArmGo/JobBoard/internal/domain"
)

// respondWithJSON — отправляет JSON-ответ клиенту.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}, logger *slog.Logger) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		logger.Error("failed to marshal JSON response", "error", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err = w.Write(response); err != nil {
		logger.Error("failed to write HTTP response", "error", err)
	}
}

// respondWithError — отправляет JSON-ответ с ошибкой в формате {"msg": ...}.
func respondWithError(w http.ResponseWriter, code int, message string, logger *slog.Logger) {
	respondWithJSON(w, code, map[string]string{"msg": message}, logger)
}

// respondWithDomainError маппит доменные ошибки на HTTP-статусы.
// Всё, что не входит в доменную таксономию, логируется и схлопывается
// в общий 500 — детали инфраструктурных сбоев клиенту не уходят.
func respondWithDomainError(w http.ResponseWriter, err error, logger *slog.Logger) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		respondWithError(w, http.StatusBadRequest, "Please provide all required fields", logger)
	case errors.Is(err, domain.ErrEmailTaken):
		respondWithError(w, http.StatusBadRequest, "User already exists", logger)
	case errors.Is(err, domain.ErrInvalidCredentials):
		respondWithError(w, http.StatusBadRequest, "Invalid credentials", logger)
	case errors.Is(err, domain.ErrJobNotFound):
		respondWithError(w, http.StatusNotFound, "Job not found", logger)
	case errors.Is(err, domain.ErrForbidden):
		respondWithError(w, http.StatusForbidden, "Unauthorized", logger)
	default:
		logger.Error("internal server error", "error", err)
		respondWithError(w, http.StatusInternalServerError, "Server error", logger)
	}
}
