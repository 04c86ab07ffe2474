package remote

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"
)

// maxErrorBody caps how much of a non-2xx response is kept on StatusError
const maxErrorBody = 4 << 10

// StatusError is returned when an endpoint answers with a non-2xx status
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetch returned status %d: %s", e.StatusCode, e.Body)
}

// Client issues GET requests against remote JSON endpoints.
// A single Client is shared by every concurrent request of a run; it is not
// modified after construction.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(timeout time.Duration, logger *slog.Logger) *Client {
	return NewClientWithHTTP(&http.Client{Timeout: timeout}, logger)
}

// NewClientWithHTTP creates a client around an existing http.Client
func NewClientWithHTTP(httpClient *http.Client, logger *slog.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		logger:     logger.With("component", "remote-client"),
	}
}

// Get requests endpoint with params and decodes the JSON body into out.
// Unknown fields are ignored and missing fields keep their zero value.
func (c *Client) Get(ctx context.Context, endpoint string, params url.Values, out any) error {
	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("failed to parse endpoint URL: %w", err)
	}

	q := u.Query()
	for key, values := range params {
		for _, v := range values {
			q.Add(key, v)
		}
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	// keys travel in the query string, so only the path is logged
	c.logger.Debug("fetching", "host", u.Host, "path", u.Path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// transport errors quote the full URL, query string included
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			urlErr.URL = redactedURL(u)
		}
		c.logger.Debug("failed to fetch", "host", u.Host, "path", u.Path, "error", err)
		return fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.logger.Debug("endpoint returned error",
			"status_code", resp.StatusCode,
			"path", u.Path,
			"response_body", string(body),
		)
		return &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Debug("failed to decode response", "path", u.Path, "error", err)
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// redactedURL drops the query string, which carries the API keys
func redactedURL(u *url.URL) string {
	return u.Scheme + "://" + u.Host + u.Path
}

// Fetch is the typed form of Client.Get
func Fetch[T any](ctx context.Context, c *Client, endpoint string, params url.Values) (*T, error) {
	var out T
	if err := c.Get(ctx, endpoint, params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
