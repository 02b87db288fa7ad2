package api

import (
	"context"
	"net/http"

	"github.com/iudanet/khutwa/internal/models"
	"github.com/iudanet/khutwa/pkg/api"
)

// SignUp регистрирует нового пользователя
func (c *Client) SignUp(ctx context.Context, req api.SignUpRequest) (*api.AuthResponse, error) {
	var resp api.AuthResponse
	if err := c.doRequest(ctx, http.MethodPost, "/users/signup", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SignIn выполняет аутентификацию пользователя
func (c *Client) SignIn(ctx context.Context, req api.SignInRequest) (*api.AuthResponse, error) {
	var resp api.AuthResponse
	if err := c.doRequest(ctx, http.MethodPost, "/users/signin", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetProfile возвращает профиль текущего пользователя
func (c *Client) GetProfile(ctx context.Context) (*models.User, error) {
	var resp api.ProfileResponse
	if err := c.doRequest(ctx, http.MethodGet, "/users/profile", nil, nil, &resp); err != nil {
		return nil, err
	}
	if resp.User == nil {
		return nil, &Error{Kind: KindUnexpected, Message: "received an invalid response from the server"}
	}
	return resp.User, nil
}

// UpdateProfile обновляет профиль (multipart: поля + необязательное фото)
func (c *Client) UpdateProfile(ctx context.Context, fields map[string]string, photo *FilePart) (*models.User, error) {
	var resp api.ProfileResponse
	if err := c.doMultipart(ctx, http.MethodPut, "/users/profile", fields, photo, &resp); err != nil {
		return nil, err
	}
	if resp.User == nil {
		return nil, &Error{Kind: KindUnexpected, Message: "received an invalid response from the server"}
	}
	return resp.User, nil
}
