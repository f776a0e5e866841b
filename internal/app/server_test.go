package app_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/GoArmGo/JobBoard/internal/app"
	"github.com/GoArmGo/JobBoard/internal/domain"
	"github.com/GoArmGo/JobBoard/internal/token"
	"github.com/GoArmGo/JobBoard/internal/usecase"
	"github.com/google/uuid"
)

// mockAuthUseCase implements usecase.AuthUseCase for transport tests.
type mockAuthUseCase struct {
	registerResult *usecase.AuthResult
	registerErr    error
	loginResult    *usecase.AuthResult
	loginErr       error
}

func (m *mockAuthUseCase) Register(context.Context, string, string, string) (*usecase.AuthResult, error) {
	return m.registerResult, m.registerErr
}

func (m *mockAuthUseCase) Login(context.Context, string, string) (*usecase.AuthResult, error) {
	return m.loginResult, m.loginErr
}

// mockJobUseCase implements usecase.JobUseCase and записывает,
// с каким subject его вызвали.
type mockJobUseCase struct {
	lastOwner uuid.UUID
	job       *domain.Job
	jobs      []domain.Job
	err       error
}

func (m *mockJobUseCase) Create(_ context.Context, ownerID uuid.UUID, input domain.JobInput) (*domain.Job, error) {
	m.lastOwner = ownerID
	if m.err != nil {
		return nil, m.err
	}
	job := &domain.Job{
		ID: uuid.New(), Title: input.Title, Company: input.Company,
		Location: input.Location, Description: input.Description,
		WorkMode: domain.WorkModeOnsite, Technologies: []string{},
		OwnerID: ownerID, CreatedAt: time.Now(),
	}
	m.job = job
	return job, nil
}

func (m *mockJobUseCase) ListOwned(_ context.Context, ownerID uuid.UUID) ([]domain.Job, error) {
	m.lastOwner = ownerID
	return m.jobs, m.err
}

func (m *mockJobUseCase) ListPublic(context.Context) ([]domain.Job, error) {
	return m.jobs, m.err
}

func (m *mockJobUseCase) Update(_ context.Context, ownerID, _ uuid.UUID, _ domain.JobInput) (*domain.Job, error) {
	m.lastOwner = ownerID
	return m.job, m.err
}

func (m *mockJobUseCase) Delete(_ context.Context, ownerID, _ uuid.UUID) error {
	m.lastOwner = ownerID
	return m.err
}

func newTestServer(t *testing.T, authUC usecase.AuthUseCase, jobUC usecase.JobUseCase, tokens *token.JWTService) *httptest.Server {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := app.NewRouter(logger, authUC, jobUC, tokens, time.Minute)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func doRequest(t *testing.T, method, url, bearer, body string) (*http.Response, map[string]json.RawMessage) {
	t.Helper()

	req, err := http.NewRequest(method, url, strings.NewReader(body))
	if err != nil {
		t.Fatalf("NewRequest() error = %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	t.Cleanup(func() { resp.Body.Close() })

	var payload map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		payload = nil
	}
	return resp, payload
}

func msgOf(t *testing.T, payload map[string]json.RawMessage) string {
	t.Helper()
	var msg string
	if raw, ok := payload["msg"]; ok {
		_ = json.Unmarshal(raw, &msg)
	}
	return msg
}

func TestRouter_AuthEndpoints(t *testing.T) {
	userID := uuid.New()
	result := &usecase.AuthResult{
		Token: "signed-token",
		User:  domain.PublicUser{ID: userID, Name: "Ann", Email: "ann@x.com"},
	}

	tests := []struct {
		name     string
		path     string
		authUC   *mockAuthUseCase
		body     string
		wantCode int
		wantMsg  string
	}{
		{
			name:     "register success",
			path:     "/api/auth/register",
			authUC:   &mockAuthUseCase{registerResult: result},
			body:     `{"name":"Ann","email":"ann@x.com","password":"secret1"}`,
			wantCode: http.StatusOK,
		},
		{
			name:     "register duplicate email",
			path:     "/api/auth/register",
			authUC:   &mockAuthUseCase{registerErr: domain.ErrEmailTaken},
			body:     `{"name":"Ann","email":"ann@x.com","password":"secret1"}`,
			wantCode: http.StatusBadRequest,
			wantMsg:  "User already exists",
		},
		{
			name:     "register validation error",
			path:     "/api/auth/register",
			authUC:   &mockAuthUseCase{registerErr: domain.ErrValidation},
			body:     `{"email":"ann@x.com"}`,
			wantCode: http.StatusBadRequest,
			wantMsg:  "Please provide all required fields",
		},
		{
			name:     "login invalid credentials",
			path:     "/api/auth/login",
			authUC:   &mockAuthUseCase{loginErr: domain.ErrInvalidCredentials},
			body:     `{"email":"ann@x.com","password":"wrong"}`,
			wantCode: http.StatusBadRequest,
			wantMsg:  "Invalid credentials",
		},
		{
			name:     "register malformed body",
			path:     "/api/auth/register",
			authUC:   &mockAuthUseCase{},
			body:     `{not json`,
			wantCode: http.StatusBadRequest,
			wantMsg:  "Invalid request body",
		},
	}

	tokens := token.NewJWTService("test-secret", time.Hour)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, tt.authUC, &mockJobUseCase{}, tokens)

			resp, payload := doRequest(t, http.MethodPost, srv.URL+tt.path, "", tt.body)
			if resp.StatusCode != tt.wantCode {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.wantCode)
			}
			if tt.wantMsg != "" && msgOf(t, payload) != tt.wantMsg {
				t.Errorf("msg = %q, want %q", msgOf(t, payload), tt.wantMsg)
			}
			if tt.wantCode == http.StatusOK {
				var tok string
				_ = json.Unmarshal(payload["token"], &tok)
				if tok != "signed-token" {
					t.Errorf("token = %q, want %q", tok, "signed-token")
				}
				if _, ok := payload["user"]; !ok {
					t.Error("response must include the user projection")
				}
			}
		})
	}
}

func TestRouter_AuthorizationStateMachine(t *testing.T) {
	tokens := token.NewJWTService("test-secret", time.Hour)
	expired := token.NewJWTService("test-secret", -time.Minute)

	userID := uuid.New()
	valid, err := tokens.Issue(userID)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	expiredTok, err := expired.Issue(userID)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	tests := []struct {
		name     string
		bearer   string
		wantCode int
		wantMsg  string
	}{
		{name: "no token", bearer: "", wantCode: http.StatusUnauthorized, wantMsg: "No token, auth denied"},
		{name: "garbage token", bearer: "garbage", wantCode: http.StatusUnauthorized, wantMsg: "Token invalid"},
		// просроченный токен дает тот же ответ, что и невалидный
		{name: "expired token", bearer: expiredTok, wantCode: http.StatusUnauthorized, wantMsg: "Token invalid"},
		{name: "valid token", bearer: valid, wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jobUC := &mockJobUseCase{jobs: []domain.Job{}}
			srv := newTestServer(t, &mockAuthUseCase{}, jobUC, tokens)

			resp, payload := doRequest(t, http.MethodGet, srv.URL+"/api/jobs", tt.bearer, "")
			if resp.StatusCode != tt.wantCode {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.wantCode)
			}
			if tt.wantMsg != "" && msgOf(t, payload) != tt.wantMsg {
				t.Errorf("msg = %q, want %q", msgOf(t, payload), tt.wantMsg)
			}
			if tt.wantCode == http.StatusOK && jobUC.lastOwner != userID {
				t.Errorf("handler received subject %v, want %v", jobUC.lastOwner, userID)
			}
		})
	}
}

func TestRouter_JobEndpoints(t *testing.T) {
	tokens := token.NewJWTService("test-secret", time.Hour)
	userID := uuid.New()
	bearer, err := tokens.Issue(userID)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	jobID := uuid.New()

	tests := []struct {
		name     string
		method   string
		path     string
		bearer   string
		body     string
		jobUC    *mockJobUseCase
		wantCode int
		wantMsg  string
	}{
		{
			name:   "public listing needs no token",
			method: http.MethodGet, path: "/api/jobs/public",
			jobUC:    &mockJobUseCase{jobs: []domain.Job{}},
			wantCode: http.StatusOK,
		},
		{
			name:   "create job",
			method: http.MethodPost, path: "/api/jobs", bearer: bearer,
			body:     `{"title":"Dev","company":"Acme","location":"NYC","description":"Build stuff"}`,
			jobUC:    &mockJobUseCase{},
			wantCode: http.StatusOK,
		},
		{
			name:   "create without required fields",
			method: http.MethodPost, path: "/api/jobs", bearer: bearer,
			body:     `{"title":"Dev"}`,
			jobUC:    &mockJobUseCase{err: domain.ErrValidation},
			wantCode: http.StatusBadRequest,
			wantMsg:  "Please provide all required fields",
		},
		{
			name:   "update with malformed id",
			method: http.MethodPut, path: "/api/jobs/not-a-uuid", bearer: bearer,
			body:     `{"title":"Dev"}`,
			jobUC:    &mockJobUseCase{},
			wantCode: http.StatusBadRequest,
			wantMsg:  "Invalid job id",
		},
		{
			name:   "update of foreign job",
			method: http.MethodPut, path: "/api/jobs/" + jobID.String(), bearer: bearer,
			body:     `{"title":"Dev","company":"Acme","location":"NYC","description":"Build stuff"}`,
			jobUC:    &mockJobUseCase{err: domain.ErrForbidden},
			wantCode: http.StatusForbidden,
			wantMsg:  "Unauthorized",
		},
		{
			name:   "update of unknown job",
			method: http.MethodPut, path: "/api/jobs/" + jobID.String(), bearer: bearer,
			body:     `{"title":"Dev","company":"Acme","location":"NYC","description":"Build stuff"}`,
			jobUC:    &mockJobUseCase{err: domain.ErrJobNotFound},
			wantCode: http.StatusNotFound,
			wantMsg:  "Job not found",
		},
		{
			name:   "delete success",
			method: http.MethodDelete, path: "/api/jobs/" + jobID.String(), bearer: bearer,
			jobUC:    &mockJobUseCase{},
			wantCode: http.StatusOK,
			wantMsg:  "Job deleted successfully",
		},
		{
			name:   "storage failure collapses to 500",
			method: http.MethodGet, path: "/api/jobs/public",
			jobUC:    &mockJobUseCase{err: context.DeadlineExceeded},
			wantCode: http.StatusInternalServerError,
			wantMsg:  "Server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, &mockAuthUseCase{}, tt.jobUC, tokens)

			resp, payload := doRequest(t, tt.method, srv.URL+tt.path, tt.bearer, tt.body)
			if resp.StatusCode != tt.wantCode {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.wantCode)
			}
			if tt.wantMsg != "" && msgOf(t, payload) != tt.wantMsg {
				t.Errorf("msg = %q, want %q", msgOf(t, payload), tt.wantMsg)
			}
			if tt.name == "create job" {
				if tt.jobUC.lastOwner != userID {
					t.Errorf("Create() received owner %v, want %v", tt.jobUC.lastOwner, userID)
				}
				var owner uuid.UUID
				_ = json.Unmarshal(payload["ownerId"], &owner)
				if owner != userID {
					t.Errorf("response ownerId = %v, want %v", owner, userID)
				}
			}
		})
	}
}
