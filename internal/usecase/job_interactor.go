package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/JobBoard/internal/core/ports"
	"github.com/GoArmGo/JobBoard/internal/domain"
	"github.com/google/uuid"
)

// jobUseCase implements JobUseCase
type jobUseCase struct {
	jobStorage ports.JobStorage
	logger     *slog.Logger
}

// NewJobUseCase создает новый экземпляр JobUseCase
func NewJobUseCase(jobStorage ports.JobStorage, logger *slog.Logger) JobUseCase {
	return &jobUseCase{jobStorage: jobStorage, logger: logger}
}

// validateInput проверяет обязательные поля и значение workMode.
// Применяется и при создании, и при обновлении.
func validateInput(input *domain.JobInput) error {
	if input.Title == "" || input.Company == "" || input.Location == "" || input.Description == "" {
		return fmt.Errorf("%w: title, company, location и description обязательны", domain.ErrValidation)
	}
	if input.WorkMode == "" {
		input.WorkMode = domain.WorkModeOnsite
	}
	if !input.WorkMode.Valid() {
		return fmt.Errorf("%w: недопустимый workMode %q", domain.ErrValidation, input.WorkMode)
	}
	if input.Technologies == nil {
		input.Technologies = []string{}
	}
	return nil
}

// Create сохраняет новую вакансию от имени ownerID
func (uc *jobUseCase) Create(ctx context.Context, ownerID uuid.UUID, input domain.JobInput) (*domain.Job, error) {
	if err := validateInput(&input); err != nil {
		return nil, err
	}

	job := &domain.Job{
		Title:        input.Title,
		Company:      input.Company,
		Location:     input.Location,
		Description:  input.Description,
		Price:        input.Price,
		WorkMode:     input.WorkMode,
		Technologies: input.Technologies,
		OwnerID:      ownerID,
		CreatedAt:    time.Now(),
	}

	if err := uc.jobStorage.SaveJob(ctx, job); err != nil {
		return nil, fmt.Errorf("usecase: ошибка при сохранении вакансии: %w", err)
	}

	uc.logger.Info("job created", "job_id", job.ID, "owner_id", ownerID)
	return job, nil
}

// ListOwned возвращает все вакансии пользователя
func (uc *jobUseCase) ListOwned(ctx context.Context, ownerID uuid.UUID) ([]domain.Job, error) {
	jobs, err := uc.jobStorage.ListJobsByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка при получении вакансий пользователя: %w", err)
	}
	return jobs, nil
}

// ListPublic возвращает все вакансии независимо от владельца
func (uc *jobUseCase) ListPublic(ctx context.Context) ([]domain.Job, error) {
	jobs, err := uc.jobStorage.ListAllJobs(ctx)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка при получении всех вакансий: %w", err)
	}
	return jobs, nil
}

// Update заменяет изменяемые поля вакансии.
// Проверка владельца выполняется до любой мутации: без нее любой
// аутентифицированный пользователь мог бы править чужие вакансии.
func (uc *jobUseCase) Update(ctx context.Context, ownerID, jobID uuid.UUID, input domain.JobInput) (*domain.Job, error) {
	job, err := uc.jobStorage.GetJobByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.OwnerID != ownerID {
		uc.logger.Warn("job update forbidden", "job_id", jobID, "owner_id", job.OwnerID, "caller_id", ownerID)
		return nil, domain.ErrForbidden
	}

	if err := validateInput(&input); err != nil {
		return nil, err
	}

	// OwnerID и CreatedAt не трогаем, даже если клиент их прислал
	job.Title = input.Title
	job.Company = input.Company
	job.Location = input.Location
	job.Description = input.Description
	job.Price = input.Price
	job.WorkMode = input.WorkMode
	job.Technologies = input.Technologies

	if err := uc.jobStorage.UpdateJob(ctx, job); err != nil {
		return nil, fmt.Errorf("usecase: ошибка при обновлении вакансии: %w", err)
	}

	uc.logger.Info("job updated", "job_id", jobID, "owner_id", ownerID)
	return job, nil
}

// Delete удаляет вакансию с теми же проверками, что и Update
func (uc *jobUseCase) Delete(ctx context.Context, ownerID, jobID uuid.UUID) error {
	job, err := uc.jobStorage.GetJobByID(ctx, jobID)
	if err != nil {
		return err
	}
	if job.OwnerID != ownerID {
		uc.logger.Warn("job delete forbidden", "job_id", jobID, "owner_id", job.OwnerID, "caller_id", ownerID)
		return domain.ErrForbidden
	}

	if err := uc.jobStorage.DeleteJob(ctx, jobID); err != nil {
		return fmt.Errorf("usecase: ошибка при удалении вакансии: %w", err)
	}

	uc.logger.Info("job deleted", "job_id", jobID, "owner_id", ownerID)
	return nil
}
