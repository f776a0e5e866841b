package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/JobBoard/internal/domain"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// JobStorage реализует интерфейс ports.JobStorage поверх PostgreSQL
type JobStorage struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewJobStorage создает новый экземпляр JobStorage
func NewJobStorage(db *sqlx.DB, logger *slog.Logger) *JobStorage {
	return &JobStorage{db: db, logger: logger}
}

// SaveJob сохраняет новую вакансию в базе данных
func (s *JobStorage) SaveJob(ctx context.Context, job *domain.Job) error {
	start := time.Now()

	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}

	query := `
	INSERT INTO jobs (id, title, company, location, description, price, work_mode, technologies, owner_id, created_at)
	VALUES (:id, :title, :company, :location, :description, :price, :work_mode, :technologies, :owner_id, :created_at)
	`

	_, err := s.db.NamedExecContext(ctx, query, job)
	if err != nil {
		s.logger.Error("failed to save job", "title", job.Title, "owner_id", job.OwnerID, "error", err)
		return fmt.Errorf("ошибка при сохранении вакансии: %w", err)
	}

	s.logger.Info("job saved successfully",
		"job_id", job.ID,
		"owner_id", job.OwnerID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// GetJobByID получает вакансию по ID
func (s *JobStorage) GetJobByID(ctx context.Context, id uuid.UUID) (*domain.Job, error) {
	var job domain.Job
	query := `SELECT * FROM jobs WHERE id = $1 LIMIT 1`

	err := s.db.GetContext(ctx, &job, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrJobNotFound
		}
		s.logger.Error("failed to get job by id", "job_id", id, "error", err)
		return nil, fmt.Errorf("ошибка при получении вакансии по ID: %w", err)
	}

	return &job, nil
}

// ListJobsByOwner получает все вакансии пользователя, без пагинации
func (s *JobStorage) ListJobsByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Job, error) {
	start := time.Now()

	q := `
	SELECT * FROM jobs
	WHERE owner_id = $1
	ORDER BY created_at DESC
	`

	jobs := []domain.Job{}
	if err := s.db.SelectContext(ctx, &jobs, q, ownerID); err != nil {
		s.logger.Error("failed to list jobs by owner", "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("ошибка при получении вакансий пользователя: %w", err)
	}

	s.logger.Info("listed jobs by owner",
		"owner_id", ownerID,
		"count", len(jobs),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return jobs, nil
}

// ListAllJobs получает все вакансии независимо от владельца
func (s *JobStorage) ListAllJobs(ctx context.Context) ([]domain.Job, error) {
	start := time.Now()

	q := `
	SELECT * FROM jobs
	ORDER BY created_at DESC
	`

	jobs := []domain.Job{}
	if err := s.db.SelectContext(ctx, &jobs, q); err != nil {
		s.logger.Error("failed to list all jobs", "error", err)
		return nil, fmt.Errorf("ошибка при получении всех вакансий: %w", err)
	}

	s.logger.Info("listed all jobs",
		"count", len(jobs),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return jobs, nil
}

// UpdateJob перезаписывает изменяемые поля вакансии.
// owner_id и created_at намеренно не входят в запрос: они неизменяемы.
func (s *JobStorage) UpdateJob(ctx context.Context, job *domain.Job) error {
	start := time.Now()

	query := `
	UPDATE jobs
	SET title = :title,
	    company = :company,
	    location = :location,
	    description = :description,
	    price = :price,
	    work_mode = :work_mode,
	    technologies = :technologies
	WHERE id = :id
	`

	res, err := s.db.NamedExecContext(ctx, query, job)
	if err != nil {
		s.logger.Error("failed to update job", "job_id", job.ID, "error", err)
		return fmt.Errorf("ошибка при обновлении вакансии: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при получении числа обновленных строк: %w", err)
	}
	if rows == 0 {
		return domain.ErrJobNotFound
	}

	s.logger.Info("job updated successfully",
		"job_id", job.ID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// DeleteJob удаляет вакансию по ID
func (s *JobStorage) DeleteJob(ctx context.Context, id uuid.UUID) error {
	start := time.Now()

	res, err := s.db.ExecContext(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		s.logger.Error("failed to delete job", "job_id", id, "error", err)
		return fmt.Errorf("ошибка при удалении вакансии: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при получении числа удаленных строк: %w", err)
	}
	if rows == 0 {
		return domain.ErrJobNotFound
	}

	s.logger.Info("job deleted successfully",
		"job_id", id,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}
