package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client preconfigured
// for talking to the blog API.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:3000")
//	resp, err := client.R().SetHeader("X-User-ID", "42").Get("/admin/dashboard")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient with baseURL, a JSON Accept header
// and a request timeout.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(baseURL string) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetTimeout(30 * time.Second)

	return &HTTPClient{Client: client}
}

// WithBearer returns a request carrying "Authorization: Bearer <token>".
func (c *HTTPClient) WithBearer(token string) *resty.Request {
	return c.R().SetAuthToken(token)
}

// WithUserID returns a request carrying the X-User-ID identity header.
func (c *HTTPClient) WithUserID(userID string) *resty.Request {
	return c.R().SetHeader("X-User-ID", userID)
}
