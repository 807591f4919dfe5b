package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/exp/slog"

	"alcatelz/internal/app/client/config"
	"alcatelz/internal/domain/block"
	"alcatelz/internal/domain/record"
)

const userAgent = "Alcatelz-Client/1.0"

// ServerError - ответ сервера со статусом 4xx/5xx
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("ошибка сервера: статус %d", e.Status)
	}
	return e.Message
}

// Is сопоставляет статусы ответа с доменными ошибками
func (e *ServerError) Is(target error) bool {
	switch target {
	case record.ErrNotFound:
		return e.Status == http.StatusNotFound
	case record.ErrExpired:
		return e.Status == http.StatusGone
	case record.ErrInvalidData:
		return e.Status == http.StatusUnprocessableEntity
	case record.ErrFetch:
		return e.Status == http.StatusBadGateway
	}
	return false
}

type httpClient struct {
	client  *http.Client
	log     *slog.Logger
	baseURL string
}

func NewHTTPClient(cfg *config.Config, log *slog.Logger) *httpClient {
	client := &http.Client{
		Timeout: cfg.Timeout,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 2,
		},
	}

	return &httpClient{
		client:  client,
		log:     log,
		baseURL: cfg.BaseURL(),
	}
}

// HealthCheck проверяет доступность сервера
func (h *httpClient) HealthCheck(ctx context.Context) error {
	resp, err := h.doRequest(ctx, http.MethodGet, "/api/v1/health", nil, nil)
	if err != nil {
		return fmt.Errorf("сервер недоступен: %w", err)
	}
	return h.parseResponse(resp, nil)
}

// Resources возвращает ленту сообщества
func (h *httpClient) Resources(ctx context.Context, query string) (*record.Listing, error) {
	var out record.Listing
	if err := h.get(ctx, "/api/v1/resources", searchParams(query), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Resource возвращает отрисованную страницу ресурса
func (h *httpClient) Resource(ctx context.Context, name string, view record.View) (*record.Page, error) {
	var out record.Page
	if err := h.get(ctx, "/api/v1/resources/"+url.PathEscape(name), viewParams(view), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Shared возвращает общую страницу
func (h *httpClient) Shared(ctx context.Context, id string, view record.View) (*record.Page, error) {
	var out record.Page
	if err := h.get(ctx, "/api/v1/shared/"+url.PathEscape(id), viewParams(view), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (h *httpClient) Categories(ctx context.Context) ([]record.Category, error) {
	var out struct {
		Categories []record.Category `json:"categories"`
	}
	if err := h.get(ctx, "/api/v1/categories", nil, &out); err != nil {
		return nil, err
	}
	return out.Categories, nil
}

func (h *httpClient) Category(ctx context.Context, name, query string) (*record.CategoryPage, error) {
	var out record.CategoryPage
	path := "/api/v1/categories/" + url.PathEscape(name) + "/resources"
	if err := h.get(ctx, path, searchParams(query), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Publish отправляет ресурс и возвращает recordName
func (h *httpClient) Publish(ctx context.Context, req record.ContributeRequest) (string, error) {
	resp, err := h.doRequest(ctx, http.MethodPost, "/api/v1/resources", nil, req)
	if err != nil {
		return "", err
	}

	var created struct {
		RecordName string `json:"recordName"`
	}
	if err := h.parseResponse(resp, &created); err != nil {
		return "", err
	}
	return created.RecordName, nil
}

func (h *httpClient) get(ctx context.Context, path string, params url.Values, result any) error {
	resp, err := h.doRequest(ctx, http.MethodGet, path, params, nil)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, result)
}

func (h *httpClient) doRequest(ctx context.Context, method, path string, params url.Values, body any) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("ошибка маршалинга тела запроса: %w", err)
		}
		reqBody = bytes.NewReader(jsonData)
	}

	target := h.baseURL + path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	h.log.Debug("Отправка запроса", "method", method, "url", req.URL.String())

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса: %w", err)
	}
	return resp, nil
}

func (h *httpClient) parseResponse(resp *http.Response, result any) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	h.log.Debug("Получен ответ", "status", resp.StatusCode, "bytes", len(body))

	if resp.StatusCode >= 400 {
		var problem struct {
			Detail string `json:"detail"`
			Error  string `json:"error"`
		}
		se := &ServerError{Status: resp.StatusCode}
		if err := json.Unmarshal(body, &problem); err == nil {
			se.Message = problem.Detail
			if se.Message == "" {
				se.Message = problem.Error
			}
		}
		return se
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("ошибка парсинга ответа: %w", err)
		}
	}
	return nil
}

func searchParams(query string) url.Values {
	params := url.Values{}
	if q := strings.TrimSpace(query); q != "" {
		params.Set("q", q)
	}
	return params
}

func viewParams(view record.View) url.Values {
	params := searchParams(view.Query)
	if view.Theme == block.ThemeDark {
		params.Set("theme", string(block.ThemeDark))
	}
	if len(view.Expanded) > 0 {
		params.Set("expanded", strings.Join(view.Expanded, ","))
	}
	return params
}

// IsServerError сообщает статус ответа сервера, если err пришла от него
func IsServerError(err error) (int, bool) {
	var se *ServerError
	if errors.As(err, &se) {
		return se.Status, true
	}
	return 0, false
}
