// Package api is the HTTP client for the shop API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Iron-Ham/larek/internal/errors"
	"github.com/Iron-Ham/larek/internal/logging"
	"github.com/Iron-Ham/larek/internal/model"
)

const (
	// defaultTimeout is the request timeout when none is configured.
	defaultTimeout = 10 * time.Second

	// maxErrorBody bounds how much of an error response is read.
	maxErrorBody = 64 << 10
)

// Shop is what the UI needs from the API.
type Shop interface {
	// GetProducts fetches the catalog.
	GetProducts(ctx context.Context) ([]model.Product, error)
	// OrderProducts submits an order.
	OrderProducts(ctx context.Context, order model.OrderRequest) (model.OrderResult, error)
}

// Client implements Shop over HTTP.
type Client struct {
	baseURL    string
	cdnURL     string
	httpClient *http.Client
	logger     *logging.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithTimeout sets the HTTP client timeout. Zero disables it.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) ClientOption {
	return func(c *Client) {
		if l != nil {
			c.logger = l.WithComponent("api")
		}
	}
}

// NewClient creates a client for the API at baseURL. Product image paths are
// joined onto cdnURL; an empty cdnURL leaves them untouched.
func NewClient(baseURL, cdnURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		cdnURL:  strings.TrimRight(cdnURL, "/"),
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logging.NopLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// GetProducts fetches GET /products and resolves image URLs.
func (c *Client) GetProducts(ctx context.Context) ([]model.Product, error) {
	var list model.ListResponse
	if err := c.do(ctx, http.MethodGet, "/products", nil, &list); err != nil {
		return nil, err
	}

	items := make([]model.Product, len(list.Items))
	for i, p := range list.Items {
		p.Image = c.imageURL(p.Image)
		items[i] = p
	}

	c.logger.Info("products loaded", "count", len(items), "total", list.Total)
	return items, nil
}

// OrderProducts posts the order to POST /order.
func (c *Client) OrderProducts(ctx context.Context, order model.OrderRequest) (model.OrderResult, error) {
	var result model.OrderResult
	if err := c.do(ctx, http.MethodPost, "/order", order, &result); err != nil {
		return model.OrderResult{}, err
	}

	c.logger.WithOrder(result.ID).Info("order accepted",
		"items", len(order.Items),
		"total", result.Total.String())
	return result, nil
}

func (c *Client) imageURL(path string) string {
	if c.cdnURL == "" || path == "" || strings.Contains(path, "://") {
		return path
	}
	return c.cdnURL + "/" + strings.TrimLeft(path, "/")
}

// do sends a JSON request and decodes a JSON response into out.
// Any failure is returned as an *errors.APIError.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		reqBytes, err := json.Marshal(in)
		if err != nil {
			return errors.NewAPIError(method, path, 0, "encode request").WithCause(err).WithRetryable(false)
		}
		body = bytes.NewReader(reqBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return errors.NewAPIError(method, path, 0, "create request").WithCause(err).WithRetryable(false)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("request failed", "method", method, "path", path, "error", err.Error())
		return errors.NewAPIError(method, path, 0, "request failed").WithCause(err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.Debug("response",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds())

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := errors.NewAPIError(method, path, resp.StatusCode, errorMessage(resp))
		c.logger.Warn("request rejected", "method", method, "path", path, "status", resp.StatusCode, "error", apiErr.Message())
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.NewAPIError(method, path, resp.StatusCode, "decode response").WithCause(err).WithRetryable(false)
	}
	return nil
}

// errorMessage extracts {error} from the body, falling back to the status text.
func errorMessage(resp *http.Response) string {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var body model.ErrorResponse
	if err := json.Unmarshal(raw, &body); err == nil && body.Error != "" {
		return body.Error
	}
	if text := strings.TrimSpace(string(raw)); text != "" && len(text) < 200 {
		return text
	}
	return fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
}
