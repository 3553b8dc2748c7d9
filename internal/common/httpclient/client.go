// Package httpclient provides the GET client shared by the upstream resolvers.
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Error variables for HTTP client errors
var (
	// ErrRequestFailed is returned when the request could not be sent or read
	ErrRequestFailed = errors.New("HTTP request failed")
	// ErrUnexpectedStatus is returned for any non-2xx response
	ErrUnexpectedStatus = errors.New("unexpected HTTP status")
)

// DefaultTimeout bounds a single request.
const DefaultTimeout = 30 * time.Second

// Client issues single-attempt GET requests. Failures are reported once;
// there is no retry.
type Client struct {
	client *http.Client
	// defaultHeaders are applied to every request
	defaultHeaders map[string]string
}

// New creates a client with DefaultTimeout.
func New() *Client {
	return &Client{
		client: &http.Client{Timeout: DefaultTimeout},
	}
}

// SetHTTPClient replaces the underlying HTTP client (useful for testing).
func (c *Client) SetHTTPClient(client *http.Client) {
	c.client = client
}

// SetDefaultHeaders sets headers applied to every request before
// request-specific headers.
func (c *Client) SetDefaultHeaders(headers map[string]string) {
	c.defaultHeaders = headers
}

// Get performs a GET request and returns the full response body.
// Headers with an empty value are not sent.
func (c *Client) Get(ctx context.Context, url string, headers map[string]string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}

	for key, value := range c.defaultHeaders {
		if value != "" {
			req.Header.Set(key, value)
		}
	}
	for key, value := range headers {
		if value != "" {
			req.Header.Set(key, value)
		}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: status %d from %s", ErrUnexpectedStatus, resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response body: %v", ErrRequestFailed, err)
	}
	return body, nil
}

// BearerToken returns the Authorization header value for token, or the
// empty string when no token is configured.
func BearerToken(token string) string {
	if token == "" {
		return ""
	}
	return "Bearer " + token
}
