package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/iudanet/carscope/pkg/api"
)

// DefaultTimeout время ожидания ответа сервера по умолчанию
const DefaultTimeout = 30 * time.Second

// RequestIDHeader заголовок с идентификатором запроса
const RequestIDHeader = "X-Request-ID"

// StatusError ответ сервера с кодом вне диапазона 2xx
type StatusError struct {
	Detail     string
	Body       string
	StatusCode int
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, e.Body)
}

// IsStatus сообщает, что err - ответ сервера с указанным кодом
func IsStatus(err error, code int) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == code
}

// Client представляет HTTP клиент для взаимодействия с backend
type Client struct {
	http    *resty.Client
	logger  *slog.Logger
	baseURL string
}

// Option настраивает Client
type Option func(*Client)

// WithTimeout задает таймаут запросов
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.http.SetTimeout(timeout)
	}
}

// WithLogger задает логгер для запросов
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient создает новый API клиент
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		logger:  slog.Default(),
		http: resty.New().
			SetTimeout(DefaultTimeout).
			SetHeader("Accept", "application/json").
			// Ограничиваем количество редиректов
			SetRedirectPolicy(resty.FlexibleRedirectPolicy(10)),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.http.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if req.Header.Get(RequestIDHeader) == "" {
			req.SetHeader(RequestIDHeader, uuid.NewString())
		}
		return nil
	})
	c.http.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		c.logger.Debug("http request",
			"method", resp.Request.Method,
			"url", resp.Request.URL,
			"status", resp.StatusCode(),
			"duration", resp.Time(),
			"request_id", resp.Request.Header.Get(RequestIDHeader))
		return nil
	})

	return c
}

// BaseURL возвращает адрес backend
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Timeout возвращает таймаут запросов
func (c *Client) Timeout() time.Duration {
	return c.http.GetClient().Timeout
}

// doRequest выполняет HTTP запрос.
// token добавляется как Bearer, если не пустой; result может быть nil.
func (c *Client) doRequest(ctx context.Context, method, path, token string, body, result any) error {
	req := c.http.R().SetContext(ctx)

	if token != "" {
		req.SetAuthToken(token)
	}
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		req.SetHeader("Content-Type", "application/json").SetBody(jsonData)
	}

	resp, err := req.Execute(method, c.baseURL+path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	respBody := resp.Body()

	// Проверяем статус код
	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		statusErr := &StatusError{StatusCode: resp.StatusCode(), Body: string(respBody)}
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && len(errResp.Detail) > 0 {
			statusErr.Detail = errResp.Message()
		}
		return statusErr
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
