// ABOUTME: HTTP client for the StudyLink platform API
// ABOUTME: Stamps bearer identity onto outgoing calls and logs traffic

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

// Client is the single point of outbound HTTP communication. Every feature
// wrapper goes through do(), so identity attachment and traffic logging
// happen in exactly one place.
type Client struct {
	baseURL    string
	httpClient *http.Client
	authToken  string
}

// New creates a new API client with the given base URL.
// No request timeout is set; a hung request blocks only the caller
// awaiting it, and callers cancel through their context.
func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

// SetAuthorization replaces the default bearer token attached to
// non-exempt requests. An empty token removes the header entirely.
// The session authority is the only caller; the single-writer discipline
// keeps the header consistent with the current session.
func (c *Client) SetAuthorization(token string) {
	c.authToken = token
}

// ErrorResponse represents an API error body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Code    int    `json:"code"`
}

// APIError is a non-2xx response surfaced to the caller.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend error (status %d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend returned status %d", e.Status)
}

// IsExempt reports whether a request may legitimately leave without an
// Authorization header: token issuance, login, and user registration are
// the only calls made before a session exists.
func IsExempt(method, path string) bool {
	if strings.Contains(path, "/auth/login") || strings.Contains(path, "/auth/tokens") {
		return true
	}
	if method == http.MethodPost && strings.Contains(path, "/users") {
		return true
	}
	return false
}

// Get issues a GET request to the given path with optional query values.
func (c *Client) Get(ctx context.Context, path string, query url.Values, result any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, result)
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, result any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, result)
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, result any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, result)
}

// Patch issues a PATCH request with an optional JSON body.
func (c *Client) Patch(ctx context.Context, path string, body, result any) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, result)
}

// Delete issues a DELETE request to the given path.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// do executes a request and decodes the JSON response into result.
// Non-2xx responses return *APIError; the client never retries and never
// acts on an authorization failure beyond logging it.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	attached := false
	if !IsExempt(method, path) && c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
		attached = true
	}
	slog.Debug("API request", "method", method, "url", fullURL, "token_attached", attached)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.handleRequestError(ctx, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response from backend: %w", err)
	}
	slog.Debug("API response", "status", resp.StatusCode, "path", path, "body", truncateForLog(respBody))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if resp.StatusCode == http.StatusUnauthorized {
			// Deliberate policy: a 401 is logged but never clears the
			// persisted credential or the session.
			slog.Warn("Unauthorized response, keeping session", "path", path)
		} else {
			slog.Error("API error response", "status", resp.StatusCode, "path", path, "body", truncateForLog(respBody))
		}
		return errorFromResponse(resp.StatusCode, respBody)
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("invalid response from backend: %w", err)
		}
	}
	return nil
}

// handleRequestError converts context errors to user-friendly messages
func (c *Client) handleRequestError(ctx context.Context, err error) error {
	if ctx.Err() == context.Canceled {
		return fmt.Errorf("request canceled")
	}
	if ctx.Err() == context.DeadlineExceeded {
		return fmt.Errorf("request timed out")
	}
	return fmt.Errorf("cannot connect to backend at %s: %w", c.baseURL, err)
}

// errorFromResponse parses API error responses
func errorFromResponse(status int, body []byte) error {
	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil || errResp.Error == "" {
		return &APIError{Status: status}
	}
	return &APIError{Status: status, Message: errResp.Error}
}

// logBodyLimit caps response body size in diagnostics.
const logBodyLimit = 512

func truncateForLog(body []byte) string {
	if len(body) > logBodyLimit {
		return string(body[:logBodyLimit]) + "..."
	}
	return string(body)
}
