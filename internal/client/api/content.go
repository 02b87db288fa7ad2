package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/iudanet/khutwa/internal/models"
	"github.com/iudanet/khutwa/pkg/api"
)

// ListContent возвращает страницу образовательных материалов
func (c *Client) ListContent(ctx context.Context, params url.Values) (*api.ContentListResponse, error) {
	var resp api.ContentListResponse
	if err := c.doRequest(ctx, http.MethodGet, "/educational-content", params, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetContent возвращает материал по ID; сервер увеличивает счетчик просмотров
func (c *Client) GetContent(ctx context.Context, id string) (*models.Content, error) {
	var resp api.ContentResponse
	if err := c.doRequest(ctx, http.MethodGet, "/educational-content/"+url.PathEscape(id), nil, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Content == nil {
		return nil, &Error{Kind: KindNotFound, Message: "content not found"}
	}
	return resp.Content, nil
}

// ContentByCategory возвращает все материалы категории
func (c *Client) ContentByCategory(ctx context.Context, category string) ([]models.Content, error) {
	var resp api.ContentCategoryResponse
	path := "/educational-content/category/" + url.PathEscape(category)
	if err := c.doRequest(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Content, nil
}

// CreateContent создает материал (только admin)
func (c *Client) CreateContent(ctx context.Context, fields map[string]string, photo *FilePart) (*models.Content, error) {
	var resp api.ContentResponse
	if err := c.doMultipart(ctx, http.MethodPost, "/educational-content", fields, photo, &resp); err != nil {
		return nil, err
	}
	if resp.Content == nil {
		return nil, &Error{Kind: KindUnexpected, Message: "received an invalid response from the server"}
	}
	return resp.Content, nil
}

// UpdateContent обновляет материал (только admin)
func (c *Client) UpdateContent(ctx context.Context, id string, fields map[string]string, photo *FilePart) (*models.Content, error) {
	var resp api.ContentResponse
	path := "/educational-content/" + url.PathEscape(id)
	if err := c.doMultipart(ctx, http.MethodPut, path, fields, photo, &resp); err != nil {
		return nil, err
	}
	if resp.Content == nil {
		return nil, &Error{Kind: KindUnexpected, Message: "received an invalid response from the server"}
	}
	return resp.Content, nil
}

// DeleteContent удаляет материал (только admin)
func (c *Client) DeleteContent(ctx context.Context, id string) error {
	return c.doRequest(ctx, http.MethodDelete, "/educational-content/"+url.PathEscape(id), nil, nil, nil)
}

// ContentStats возвращает статистику материалов (только admin)
func (c *Client) ContentStats(ctx context.Context) (*models.ContentStats, error) {
	var resp api.ContentStatsResponse
	if err := c.doRequest(ctx, http.MethodGet, "/educational-content/stats/overview", nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Stats, nil
}
