// Package officeapi is the resty-backed client for the external office REST
// API that owns clients, articles and orders. The client is explicitly
// constructed and injected; nothing here reads ambient globals.
package officeapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/FranciscoAraya01/sistemaOficina-ft/internal/config"
)

// Client wraps the upstream HTTP surface with basic auth on every request.
type Client struct {
	httpClient *resty.Client
}

// NewClient builds an office API client from the provided configuration.
func NewClient(cfg config.UpstreamConfig) *Client {
	restyClient := resty.New()
	restyClient.
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetBasicAuth(cfg.Username, cfg.Password).
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)

	return &Client{httpClient: restyClient}
}

// apiError represents an upstream error payload. The backend is not fully
// consistent, so both message fields are tolerated.
type apiError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (e *apiError) text() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}

// Get fetches path and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(out).
		SetError(apiErr).
		Get(path)

	return checkResponse(resp, err, "GET", path, apiErr)
}

// Post sends body as JSON to path, decoding the response into out when out is
// non-nil.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	apiErr := new(apiError)

	req := c.httpClient.R().
		SetContext(ctx).
		SetBody(body).
		SetError(apiErr)
	if out != nil {
		req.SetResult(out)
	}

	resp, err := req.Post(path)
	return checkResponse(resp, err, "POST", path, apiErr)
}

// Put sends body as JSON to path, decoding the response into out when out is
// non-nil.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	apiErr := new(apiError)

	req := c.httpClient.R().
		SetContext(ctx).
		SetBody(body).
		SetError(apiErr)
	if out != nil {
		req.SetResult(out)
	}

	resp, err := req.Put(path)
	return checkResponse(resp, err, "PUT", path, apiErr)
}

// Delete removes the resource at path.
func (c *Client) Delete(ctx context.Context, path string) error {
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetError(apiErr).
		Delete(path)

	return checkResponse(resp, err, "DELETE", path, apiErr)
}

func checkResponse(resp *resty.Response, err error, method, path string, apiErr *apiError) error {
	if err != nil {
		return fmt.Errorf("office api %s %s: %w", method, path, err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		message := apiErr.text()
		if message == "" {
			message = resp.Status()
		}
		return fmt.Errorf("office api %s %s: status=%d, message=%s", method, path, resp.StatusCode(), message)
	}

	return nil
}
