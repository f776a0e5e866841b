package usecase

import (
	"context"

	"github.com/GoArmGo/JobBoard/internal/domain"
	"github.com/google/uuid"
)

// JobUseCase определяет интерфейс бизнес-логики работы с вакансиями.
// Все мутации принимают ID аутентифицированного пользователя явным параметром:
// токен здесь уже не перепроверяется, это зона ответственности middleware.
type JobUseCase interface {
	// Create сохраняет новую вакансию от имени ownerID.
	// title, company, location и description обязательны (domain.ErrValidation),
	// workMode по умолчанию Onsite, technologies — пустой список.
	Create(ctx context.Context, ownerID uuid.UUID, input domain.JobInput) (*domain.Job, error)

	// ListOwned возвращает все вакансии пользователя.
	ListOwned(ctx context.Context, ownerID uuid.UUID) ([]domain.Job, error)

	// ListPublic возвращает все вакансии независимо от владельца.
	ListPublic(ctx context.Context) ([]domain.Job, error)

	// Update заменяет изменяемые поля вакансии. Возвращает domain.ErrJobNotFound,
	// если вакансии нет, и domain.ErrForbidden, если она принадлежит другому
	// пользователю — проверка владельца выполняется до любой мутации.
	Update(ctx context.Context, ownerID, jobID uuid.UUID, input domain.JobInput) (*domain.Job, error)

	// Delete удаляет вакансию с теми же проверками существования и владельца, что и Update.
	Delete(ctx context.Context, ownerID, jobID uuid.UUID) error
}
