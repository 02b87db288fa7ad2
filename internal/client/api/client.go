// Package api implements the gateway to the Khutwa backend: one HTTP client
// that attaches the stored bearer token to every request and reports every
// failure as *Error.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/iudanet/khutwa/pkg/api"
)

// DefaultTimeout is the client-enforced limit for a single request
const DefaultTimeout = 30 * time.Second

//go:generate moq -out token_source_mock.go . TokenSource

// TokenSource provides the bearer token for outgoing requests.
// storage.TokenStorage satisfies it.
type TokenSource interface {
	GetToken(ctx context.Context) (token string, ok bool, err error)
}

// Option настраивает Client
type Option func(*Client)

// WithTimeout overrides DefaultTimeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets the logger used for request diagnostics
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// FilePart описывает файл для multipart запроса
type FilePart struct {
	Content  io.Reader
	Field    string
	FileName string
}

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	tokens     TokenSource
	logger     *slog.Logger
	baseURL    string
}

// NewClient создает новый API клиент.
// baseURL указывает на корень сервера, все пути разрешаются относительно <root>/api.
func NewClient(baseURL string, tokens TokenSource, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/") + "/api",
		tokens:  tokens,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// BaseURL returns the resolved API root (<server>/api)
func (c *Client) BaseURL() string {
	return c.baseURL
}

// doRequest выполняет JSON запрос
func (c *Client) doRequest(ctx context.Context, method, path string, query url.Values, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return &Error{Kind: KindUnexpected, Message: "failed to encode request", Err: err}
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := c.newRequest(ctx, method, path, query, bodyReader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(ctx, req, result)
}

// doMultipart отправляет multipart/form-data с полями и необязательным файлом
func (c *Client) doMultipart(ctx context.Context, method, path string, fields map[string]string, file *FilePart, result any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for k, v := range fields {
		if err := writer.WriteField(k, v); err != nil {
			return &Error{Kind: KindUnexpected, Message: "failed to encode form", Err: err}
		}
	}

	if file != nil && file.Content != nil {
		field := file.Field
		if field == "" {
			field = "photo"
		}
		part, err := writer.CreateFormFile(field, file.FileName)
		if err != nil {
			return &Error{Kind: KindUnexpected, Message: "failed to encode form", Err: err}
		}
		if _, err := io.Copy(part, file.Content); err != nil {
			return &Error{Kind: KindUnexpected, Message: "failed to read attachment", Err: err}
		}
	}

	if err := writer.Close(); err != nil {
		return &Error{Kind: KindUnexpected, Message: "failed to encode form", Err: err}
	}

	req, err := c.newRequest(ctx, method, path, nil, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.send(ctx, req, result)
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, &Error{Kind: KindUnexpected, Message: "failed to create request", Err: err}
	}
	req.Header.Set("Accept", "application/json")

	// Токен читается перед каждым запросом: после logout заголовок не отправляется
	if c.tokens != nil {
		token, ok, err := c.tokens.GetToken(ctx)
		if err != nil {
			return nil, &Error{Kind: KindUnexpected, Message: "failed to read session token", Err: err}
		}
		if ok && token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	return req, nil
}

// send выполняет запрос и декодирует ответ или классифицирует ошибку
func (c *Client) send(ctx context.Context, req *http.Request, result any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		apiErr := transportError(ctx, err)
		if apiErr.Kind != KindCanceled {
			c.logger.WarnContext(ctx, "request failed",
				"method", req.Method,
				"path", req.URL.Path,
				"error", err,
			)
		}
		return apiErr
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportError(ctx, err)
	}

	c.logger.DebugContext(ctx, "request completed",
		"method", req.Method,
		"path", req.URL.Path,
		"status", resp.StatusCode,
	)

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError(resp.StatusCode, respBody)
	}

	// Декодируем успешный ответ
	if result != nil && len(bytes.TrimSpace(respBody)) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return &Error{
				Kind:    KindUnexpected,
				Status:  resp.StatusCode,
				Message: "received an invalid response from the server",
				Err:     err,
			}
		}
	}

	return nil
}

// statusError строит *Error из non-2xx ответа
func statusError(status int, body []byte) *Error {
	apiErr := &Error{
		Kind:   kindForStatus(status),
		Status: status,
	}

	var errResp api.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		apiErr.Message = errResp.Message
		if apiErr.Message == "" {
			apiErr.Message = errResp.Error
		}
		apiErr.Fields = errResp.Errors
	}

	raw := strings.TrimSpace(string(body))
	apiErr.Err = fmt.Errorf("server responded with status %d: %s", status, raw)

	if status >= http.StatusInternalServerError {
		// Текст 5xx не показываем пользователю
		apiErr.Message = "The server encountered an error. Please try again later."
	}

	return apiErr
}

// Health проверяет доступность сервера
func (c *Client) Health(ctx context.Context) error {
	return c.doRequest(ctx, http.MethodGet, "/health", nil, nil, nil)
}
