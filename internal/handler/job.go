package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/GoArmGo/JobBoard/internal/domain"
	"github.com/GoArmGo/JobBoard/internal/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// JobHandler — обработчик HTTP-запросов для работы с вакансиями.
type JobHandler struct {
	jobUseCase usecase.JobUseCase
	logger     *slog.Logger
}

// NewJobHandler создаёт новый экземпляр JobHandler.
func NewJobHandler(uc usecase.JobUseCase, logger *slog.Logger) *JobHandler {
	return &JobHandler{jobUseCase: uc, logger: logger}
}

// CreateJob — создает вакансию от имени аутентифицированного пользователя.
func (h *JobHandler) CreateJob(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := SubjectFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "No token, auth denied", h.logger)
		return
	}

	var input domain.JobInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logger.Warn("invalid create job request body", "error", err)
		respondWithError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	job, err := h.jobUseCase.Create(r.Context(), ownerID, input)
	if err != nil {
		respondWithDomainError(w, err, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, job, h.logger)
}

// GetMyJobs — возвращает вакансии аутентифицированного пользователя.
func (h *JobHandler) GetMyJobs(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := SubjectFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "No token, auth denied", h.logger)
		return
	}

	jobs, err := h.jobUseCase.ListOwned(r.Context(), ownerID)
	if err != nil {
		respondWithDomainError(w, err, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, jobs, h.logger)
}

// GetPublicJobs — возвращает все вакансии, авторизация не требуется.
func (h *JobHandler) GetPublicJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.jobUseCase.ListPublic(r.Context())
	if err != nil {
		respondWithDomainError(w, err, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, jobs, h.logger)
}

// UpdateJob — заменяет изменяемые поля вакансии, доступно только владельцу.
func (h *JobHandler) UpdateJob(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := SubjectFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "No token, auth denied", h.logger)
		return
	}

	jobID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.logger.Warn("invalid job id parameter", "id", chi.URLParam(r, "id"), "error", err)
		respondWithError(w, http.StatusBadRequest, "Invalid job id", h.logger)
		return
	}

	var input domain.JobInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logger.Warn("invalid update job request body", "error", err)
		respondWithError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	job, err := h.jobUseCase.Update(r.Context(), ownerID, jobID, input)
	if err != nil {
		respondWithDomainError(w, err, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, job, h.logger)
}

// DeleteJob — удаляет вакансию, доступно только владельцу.
func (h *JobHandler) DeleteJob(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := SubjectFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "No token, auth denied", h.logger)
		return
	}

	jobID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.logger.Warn("invalid job id parameter", "id", chi.URLParam(r, "id"), "error", err)
		respondWithError(w, http.StatusBadRequest, "Invalid job id", h.logger)
		return
	}

	if err := h.jobUseCase.Delete(r.Context(), ownerID, jobID); err != nil {
		respondWithDomainError(w, err, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"msg": "Job deleted successfully"}, h.logger)
}
