package ports

import (
	"context"

	"github.com/GoArmGo/JobBoard/internal/domain"
	"github.com/google/uuid"
)

// UserStorage определяет методы для взаимодействия с хранилищем пользователей.
type UserStorage interface {
	// CreateUser сохраняет нового пользователя. Возвращает domain.ErrEmailTaken,
	// если нормализованный email уже занят.
	CreateUser(ctx context.Context, user *domain.User) error

	// GetUserByEmail ищет пользователя по нормализованному email.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// GetUserByID ищет пользователя по внутреннему ID.
	GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// JobStorage определяет методы для взаимодействия с хранилищем вакансий.
type JobStorage interface {
	SaveJob(ctx context.Context, job *domain.Job) error
	GetJobByID(ctx context.Context, id uuid.UUID) (*domain.Job, error)
	ListJobsByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Job, error)
	ListAllJobs(ctx context.Context) ([]domain.Job, error)

	// UpdateJob перезаписывает только изменяемые поля вакансии.
	// owner_id и created_at в запрос обновления не входят.
	UpdateJob(ctx context.Context, job *domain.Job) error
	DeleteJob(ctx context.Context, id uuid.UUID) error
}

// TokenService выпускает и проверяет bearer-токены.
type TokenService interface {
	// Issue выпускает подписанный токен с вшитым subject и сроком действия.
	Issue(userID uuid.UUID) (string, error)

	// Verify проверяет подпись и срок действия токена и возвращает subject.
	// Возвращает domain.ErrTokenExpired либо domain.ErrInvalidToken.
	Verify(token string) (uuid.UUID, error)
}
