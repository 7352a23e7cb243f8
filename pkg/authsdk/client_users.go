package authsdk

import (
	"context"
	"net/http"
	"net/url"
)

// Me can be passed as a user id to address the caller.
const Me = "me"

// CreateUser registers a new non-administrator account. Requires an
// administrator's access token.
func (c *Client) CreateUser(ctx context.Context, accessToken string, req CreateUserRequest) (*CreateUserResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/users", req, accessToken)
	if err != nil {
		return nil, err
	}

	var out CreateUserResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetUser fetches a user by id, or the caller when id is Me.
func (c *Client) GetUser(ctx context.Context, accessToken, id string) (*UserResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/users/"+url.PathEscape(id), nil, accessToken)
	if err != nil {
		return nil, err
	}

	var out UserResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteUser removes a non-administrator account and its tokens.
func (c *Client) DeleteUser(ctx context.Context, accessToken, id string) (*StatusResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodDelete, "/v1/users/"+url.PathEscape(id), nil, accessToken)
	if err != nil {
		return nil, err
	}

	var out StatusResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ChangeAdminPermissions grants or revokes administrator permissions.
// action is "grant" or "revoke".
func (c *Client) ChangeAdminPermissions(ctx context.Context, accessToken, id, action string) (*PermissionChangeResponse, error) {
	path := "/v1/users/admin-permissions/" + url.PathEscape(id) + "/" + url.PathEscape(action)
	resp, err := c.doRequest(ctx, http.MethodPatch, path, nil, accessToken)
	if err != nil {
		return nil, err
	}

	var out PermissionChangeResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
