package listing_test

import (
	"reflect"
	"testing"

	"github.com/GoArmGo/JobBoard/internal/domain"
	"github.com/GoArmGo/JobBoard/internal/listing"
	"github.com/google/uuid"
)

func price(v float64) *float64 { return &v }

func sampleJobs() []domain.Job {
	return []domain.Job{
		{
			ID: uuid.New(), Title: "Backend Developer", Company: "Acme",
			Location: "New York", Description: "Build REST APIs in Go",
			WorkMode: domain.WorkModeOnsite, Price: price(5000),
			Technologies: []string{"Go", "PostgreSQL"},
		},
		{
			ID: uuid.New(), Title: "Frontend Engineer", Company: "Globex",
			Location: "Berlin", Description: "React dashboards",
			WorkMode: domain.WorkModeRemote, Price: price(3000),
			Technologies: []string{"React"},
		},
		{
			ID: uuid.New(), Title: "Data Analyst", Company: "Initech",
			Location: "new york", Description: "SQL reporting",
			WorkMode: domain.WorkModeHybrid, Price: nil,
			Technologies: []string{},
		},
	}
}

func titles(jobs []domain.Job) []string {
	out := make([]string, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, j.Title)
	}
	return out
}

func TestCriteria_Apply(t *testing.T) {
	jobs := sampleJobs()

	tests := []struct {
		name     string
		criteria listing.Criteria
		want     []string
	}{
		{
			name:     "zero criteria keeps everything",
			criteria: listing.Criteria{},
			want:     []string{"Backend Developer", "Frontend Engineer", "Data Analyst"},
		},
		{
			name:     "search matches title case-insensitively",
			criteria: listing.Criteria{Search: "backend"},
			want:     []string{"Backend Developer"},
		},
		{
			name:     "search matches description",
			criteria: listing.Criteria{Search: "sql report"},
			want:     []string{"Data Analyst"},
		},
		{
			name:     "search matches company",
			criteria: listing.Criteria{Search: "globex"},
			want:     []string{"Frontend Engineer"},
		},
		{
			name:     "location substring ignores case",
			criteria: listing.Criteria{Location: "NEW YORK"},
			want:     []string{"Backend Developer", "Data Analyst"},
		},
		{
			name:     "work mode exact match",
			criteria: listing.Criteria{WorkMode: domain.WorkModeRemote},
			want:     []string{"Frontend Engineer"},
		},
		{
			name:     "min price treats missing price as zero",
			criteria: listing.Criteria{MinPrice: price(1)},
			want:     []string{"Backend Developer", "Frontend Engineer"},
		},
		{
			name:     "max price",
			criteria: listing.Criteria{MaxPrice: price(3000)},
			want:     []string{"Frontend Engineer", "Data Analyst"},
		},
		{
			name:     "price bounds inclusive",
			criteria: listing.Criteria{MinPrice: price(3000), MaxPrice: price(3000)},
			want:     []string{"Frontend Engineer"},
		},
		{
			name: "criteria combine conjunctively",
			criteria: listing.Criteria{
				Search:   "e",
				Location: "new york",
				MinPrice: price(1000),
			},
			want: []string{"Backend Developer"},
		},
		{
			name:     "status all is inactive",
			criteria: listing.Criteria{Status: listing.StatusAll},
			want:     []string{"Backend Developer", "Frontend Engineer", "Data Analyst"},
		},
		{
			name:     "specific status matches nothing",
			criteria: listing.Criteria{Status: "open"},
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := titles(tt.criteria.Apply(jobs))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Apply() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCriteria_ApplyIdempotent(t *testing.T) {
	jobs := sampleJobs()
	criteria := listing.Criteria{Search: "e", MinPrice: price(1000)}

	once := criteria.Apply(jobs)
	twice := criteria.Apply(once)

	if !reflect.DeepEqual(titles(once), titles(twice)) {
		t.Errorf("Apply() is not idempotent: %v vs %v", titles(once), titles(twice))
	}
}

func TestCriteria_ClearRestoresSource(t *testing.T) {
	jobs := sampleJobs()

	// активный фильтр сужает выдачу
	filtered := listing.Criteria{WorkMode: domain.WorkModeRemote}.Apply(jobs)
	if len(filtered) == len(jobs) {
		t.Fatal("filter did not narrow the list")
	}

	// сброс фильтров — нулевые критерии — возвращает исходный список целиком
	restored := listing.Criteria{}.Apply(jobs)
	if !reflect.DeepEqual(restored, jobs) {
		t.Error("cleared criteria must restore the unfiltered source list")
	}
}

func TestCriteria_ApplyDoesNotMutateSource(t *testing.T) {
	jobs := sampleJobs()
	snapshot := append([]domain.Job{}, jobs...)

	listing.Criteria{Search: "backend"}.Apply(jobs)

	if !reflect.DeepEqual(jobs, snapshot) {
		t.Error("Apply() mutated the source slice")
	}
}

func TestCriteria_Active(t *testing.T) {
	tests := []struct {
		name     string
		criteria listing.Criteria
		want     bool
	}{
		{name: "zero value", criteria: listing.Criteria{}, want: false},
		{name: "status all", criteria: listing.Criteria{Status: listing.StatusAll}, want: false},
		{name: "search set", criteria: listing.Criteria{Search: "go"}, want: true},
		{name: "min price set", criteria: listing.Criteria{MinPrice: price(0)}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.criteria.Active(); got != tt.want {
				t.Errorf("Active() = %v, want %v", got, tt.want)
			}
		})
	}
}
