package authsdk

import (
	"context"
	"net/http"
)

// Authorize exchanges an email and password for a new token pair.
func (c *Client) Authorize(ctx context.Context, email, password string) (*TokenPair, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/authorize", AuthorizeRequest{
		Email:    email,
		Password: password,
	}, "")
	if err != nil {
		return nil, err
	}

	var pair TokenPair
	if err := decodeJSON(resp, &pair, http.StatusOK); err != nil {
		return nil, err
	}
	return &pair, nil
}

// Refresh rotates a refresh token. The old pair is revoked on success.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/refresh", RefreshRequest{
		RefreshToken: refreshToken,
	}, "")
	if err != nil {
		return nil, err
	}

	var pair TokenPair
	if err := decodeJSON(resp, &pair, http.StatusOK); err != nil {
		return nil, err
	}
	return &pair, nil
}

// Logout revokes the pair accessToken belongs to.
func (c *Client) Logout(ctx context.Context, accessToken string) (*StatusResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodDelete, "/v1/logout", nil, accessToken)
	if err != nil {
		return nil, err
	}

	var out StatusResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
