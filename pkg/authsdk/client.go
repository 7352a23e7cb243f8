package authsdk

import (
	"net/http"
	"strings"
	"time"
)

// Client is a client for the session token authority. It is stateless: the
// caller keeps the token pair and passes the access token to calls that
// need one.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a new client for the service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}
