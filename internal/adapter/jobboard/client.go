package jobboard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/GoArmGo/JobBoard/internal/domain"
	"github.com/google/uuid"
)

// APIClient представляет клиент для взаимодействия с REST API доски вакансий.
// Используется терминальным клиентом и интеграционными тестами.
type APIClient struct {
	httpClient *http.Client
	baseURL    string
	token      string // bearer-токен; пустой для анонимных запросов
}

// NewAPIClient создает новый экземпляр APIClient.
func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
	}
}

// SetToken запоминает bearer-токен для последующих защищенных запросов.
// Аналог сохранения токена в браузерном хранилище у веб-клиента.
func (c *APIClient) SetToken(token string) {
	c.token = token
}

// ClearToken сбрасывает сохраненный токен (logout).
func (c *APIClient) ClearToken() {
	c.token = ""
}

// do выполняет HTTP-запрос и декодирует успешный ответ в out.
// Неуспешный статус превращается в ошибку с сообщением сервера.
func (c *APIClient) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("ошибка кодирования тела запроса: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("ошибка создания HTTP-запроса: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("ошибка выполнения HTTP-запроса: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var msg MessageResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&msg); decodeErr == nil && msg.Msg != "" {
			return fmt.Errorf("API вернул статус %d: %s", resp.StatusCode, msg.Msg)
		}
		return fmt.Errorf("API вернул статус %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("ошибка декодирования JSON ответа: %w", err)
	}
	return nil
}

// Register регистрирует пользователя и запоминает выданный токен.
func (c *APIClient) Register(ctx context.Context, name, email, password string) (*AuthResponse, error) {
	var res AuthResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/register", RegisterRequest{Name: name, Email: email, Password: password}, &res)
	if err != nil {
		return nil, err
	}
	c.token = res.Token
	return &res, nil
}

// Login выполняет вход и запоминает выданный токен.
func (c *APIClient) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	var res AuthResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", LoginRequest{Email: email, Password: password}, &res)
	if err != nil {
		return nil, err
	}
	c.token = res.Token
	return &res, nil
}

// PublicJobs получает все вакансии, токен не требуется.
func (c *APIClient) PublicJobs(ctx context.Context) ([]domain.Job, error) {
	var jobs []domain.Job
	if err := c.do(ctx, http.MethodGet, "/api/jobs/public", nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// MyJobs получает вакансии текущего пользователя.
func (c *APIClient) MyJobs(ctx context.Context) ([]domain.Job, error) {
	var jobs []domain.Job
	if err := c.do(ctx, http.MethodGet, "/api/jobs", nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// CreateJob создает вакансию от имени текущего пользователя.
func (c *APIClient) CreateJob(ctx context.Context, input domain.JobInput) (*domain.Job, error) {
	var job domain.Job
	if err := c.do(ctx, http.MethodPost, "/api/jobs", input, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// UpdateJob обновляет вакансию текущего пользователя.
func (c *APIClient) UpdateJob(ctx context.Context, id uuid.UUID, input domain.JobInput) (*domain.Job, error) {
	var job domain.Job
	if err := c.do(ctx, http.MethodPut, "/api/jobs/"+id.String(), input, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// DeleteJob удаляет вакансию текущего пользователя.
func (c *APIClient) DeleteJob(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/jobs/"+id.String(), nil, nil)
}
