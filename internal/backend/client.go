package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/wangishop/storefront/internal/config"
	"github.com/wangishop/storefront/pkg/errors"
)

// Client talks to the shop's backend REST API. Every response uses the
// {success, data} envelope; the data payload shape varies per endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger

	mu    sync.Mutex
	token string
}

// NewClient creates a backend API client
func NewClient(cfg config.BackendConfig, logger *zap.Logger) *Client {
	// Normalize base URL - remove trailing slashes
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// SetToken installs the bearer token sent on subsequent requests
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// Token returns the currently held bearer token, if any
func (c *Client) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

func (c *Client) clearToken() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
}

// envelope is the backend's standard response wrapper
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message,omitempty"`
	Error   string          `json:"error,omitempty"`
}

func (e envelope) errMessage(fallback string) string {
	if e.Message != "" {
		return e.Message
	}
	if e.Error != "" {
		return e.Error
	}
	return fallback
}

// do executes a request against the backend and decodes the envelope's
// data payload into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}, headers map[string]string) error {
	url := c.baseURL + path

	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	var env envelope
	if len(respBody) > 0 {
		if err := json.Unmarshal(respBody, &env); err != nil {
			if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
				return fmt.Errorf("failed to unmarshal response: %w", err)
			}
			// Non-2xx with a non-envelope body; fall through to the
			// status handling below.
		}
	}

	if resp.StatusCode == http.StatusUnauthorized {
		// The held token is stale or invalid; drop it so later calls
		// start clean rather than repeating the same failure.
		c.clearToken()
		return &errors.ErrUnauthorized{Message: env.errMessage("unauthorized")}
	}

	// An empty 2xx body (e.g. 204) has no envelope to check.
	if resp.StatusCode >= http.StatusMultipleChoices || (len(respBody) > 0 && !env.Success) {
		return &errors.ErrBackend{
			StatusCode: resp.StatusCode,
			Message:    env.errMessage("request failed"),
		}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to unmarshal response data: %w", err)
		}
	}

	return nil
}

// isStatus reports whether err is a backend error with the given status
func isStatus(err error, status int) bool {
	backendErr, ok := err.(*errors.ErrBackend)
	return ok && backendErr.StatusCode == status
}
