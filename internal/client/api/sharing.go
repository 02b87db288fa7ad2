package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/iudanet/khutwa/internal/models"
	"github.com/iudanet/khutwa/pkg/api"
)

// Share grants targetUserID read access to the caller's data
func (c *Client) Share(ctx context.Context, targetUserID string) (*api.ShareResponse, error) {
	var resp api.ShareResponse
	req := api.ShareRequest{TargetUserID: targetUserID}
	if err := c.doRequest(ctx, http.MethodPost, "/users/share", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Unshare revokes a grant the caller made
func (c *Client) Unshare(ctx context.Context, targetUserID string) error {
	return c.doRequest(ctx, http.MethodDelete, "/users/unshare/"+url.PathEscape(targetUserID), nil, nil, nil)
}

// RemoveSharedUser drops a grant made to the caller by ownerID
func (c *Client) RemoveSharedUser(ctx context.Context, ownerID string) error {
	return c.doRequest(ctx, http.MethodDelete, "/users/shared/remove/"+url.PathEscape(ownerID), nil, nil, nil)
}

// UsersICanSee lists the users the caller has granted access to
func (c *Client) UsersICanSee(ctx context.Context) ([]models.SharedUser, error) {
	return c.listSharedUsers(ctx, "/users/shared/users-i-can-see")
}

// UsersSharingWithMe lists the users who granted access to the caller
func (c *Client) UsersSharingWithMe(ctx context.Context) ([]models.SharedUser, error) {
	return c.listSharedUsers(ctx, "/users/shared/users-sharing-with-me")
}

// SearchUsers ищет пользователей, которым можно предоставить доступ
func (c *Client) SearchUsers(ctx context.Context, query string) ([]models.ShareCandidate, error) {
	var resp api.SearchUsersResponse
	params := url.Values{"search": []string{query}}
	if err := c.doRequest(ctx, http.MethodGet, "/users/shared/search", params, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Users, nil
}

func (c *Client) listSharedUsers(ctx context.Context, path string) ([]models.SharedUser, error) {
	var resp api.SharedUsersResponse
	if err := c.doRequest(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Users, nil
}
