package listing

import (
	"strings"

	"github.com/GoArmGo/JobBoard/internal/domain"
)

// StatusAll — значение критерия статуса, при котором фильтрация по статусу выключена.
const StatusAll = "all"

// Criteria — набор критериев фильтрации локального списка вакансий.
// Нулевое значение не фильтрует ничего. Каждый активный критерий —
// независимый предикат, применяются они конъюнктивно: вакансия попадает
// в выдачу, только если проходит все активные фильтры.
type Criteria struct {
	// Search — поиск по подстроке в title, company и description без учета регистра.
	Search string

	// Status — фильтр по статусу. Поле статуса в модели вакансии пока не заведено,
	// поэтому любое значение кроме пустого и "all" не пропускает ни одной записи.
	Status string

	// Location — подстрока в location без учета регистра.
	Location string

	// WorkMode — точное совпадение формата работы; пустое значение — фильтр выключен.
	WorkMode domain.WorkMode

	// MinPrice и MaxPrice — границы бюджета включительно.
	// Вакансия без бюджета сравнивается как 0.
	MinPrice *float64
	MaxPrice *float64
}

// Active сообщает, задан ли хотя бы один критерий.
func (c Criteria) Active() bool {
	return c.Search != "" ||
		(c.Status != "" && c.Status != StatusAll) ||
		c.Location != "" ||
		c.WorkMode != "" ||
		c.MinPrice != nil ||
		c.MaxPrice != nil
}

// Apply возвращает отфильтрованный список. Функция чистая: исходный срез
// не меняется, результат пересчитывается целиком при каждом вызове.
func (c Criteria) Apply(jobs []domain.Job) []domain.Job {
	result := make([]domain.Job, 0, len(jobs))
	for _, job := range jobs {
		if c.matches(&job) {
			result = append(result, job)
		}
	}
	return result
}

func (c Criteria) matches(job *domain.Job) bool {
	if c.Search != "" {
		term := strings.ToLower(c.Search)
		if !strings.Contains(strings.ToLower(job.Title), term) &&
			!strings.Contains(strings.ToLower(job.Company), term) &&
			!strings.Contains(strings.ToLower(job.Description), term) {
			return false
		}
	}

	if c.Status != "" && c.Status != StatusAll {
		return false
	}

	if c.Location != "" {
		if !strings.Contains(strings.ToLower(job.Location), strings.ToLower(c.Location)) {
			return false
		}
	}

	if c.WorkMode != "" && job.WorkMode != c.WorkMode {
		return false
	}

	price := 0.0
	if job.Price != nil {
		price = *job.Price
	}
	if c.MinPrice != nil && price < *c.MinPrice {
		return false
	}
	if c.MaxPrice != nil && price > *c.MaxPrice {
		return false
	}

	return true
}
