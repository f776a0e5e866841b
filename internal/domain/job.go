package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// WorkMode — формат работы по вакансии.
type WorkMode string

const (
	WorkModeOnsite WorkMode = "Onsite"
	WorkModeRemote WorkMode = "Remote"
	WorkModeHybrid WorkMode = "Hybrid"
)

// Valid проверяет, что значение входит в перечисление.
func (m WorkMode) Valid() bool {
	switch m {
	case WorkModeOnsite, WorkModeRemote, WorkModeHybrid:
		return true
	}
	return false
}

// Job представляет модель вакансии в системе,
// соответствует таблице jobs в бд.
type Job struct {
	ID           uuid.UUID      `json:"id" db:"id"`
	Title        string         `json:"title" db:"title"`
	Company      string         `json:"company" db:"company"`
	Location     string         `json:"location" db:"location"`
	Description  string         `json:"description" db:"description"`
	Price        *float64       `json:"price" db:"price"`
	WorkMode     WorkMode       `json:"workMode" db:"work_mode"`
	Technologies pq.StringArray `json:"technologies" db:"technologies"`
	OwnerID      uuid.UUID      `json:"ownerId" db:"owner_id"`
	CreatedAt    time.Time      `json:"createdAt" db:"created_at"`
}

func (Job) TableName() string {
	return "jobs"
}

// JobInput — изменяемые поля вакансии, приходящие от клиента.
// OwnerID и CreatedAt сюда не входят: они выставляются один раз при создании
// и не меняются ни при каком обновлении.
type JobInput struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	Description  string   `json:"description"`
	Price        *float64 `json:"price"`
	WorkMode     WorkMode `json:"workMode"`
	Technologies []string `json:"technologies"`
}
