package graphhopper

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"

	"github.com/kos368437/networks-2-lab3/internal/remote"
)

// API Docs: https://docs.graphhopper.com/#tag/Geocoding-API
// Sample request: https://graphhopper.com/api/1/geocode?q=novosibirsk&locale=en&limit=20&key=...
const (
	baseURL = "https://graphhopper.com/api/1/geocode"
)

type Client struct {
	remote  *remote.Client
	baseURL string
	apiKey  string
	logger  *slog.Logger
}

func NewClient(rc *remote.Client, apiKey string, logger *slog.Logger) *Client {
	return NewClientWithBaseURL(rc, baseURL, apiKey, logger)
}

func NewClientWithBaseURL(rc *remote.Client, base, apiKey string, logger *slog.Logger) *Client {
	return &Client{
		remote:  rc,
		baseURL: base,
		apiKey:  apiKey,
		logger:  logger.With("component", "graphhopper-client"),
	}
}

// Geocode resolves a free-text query to at most limit hits
func (c *Client) Geocode(ctx context.Context, query, locale string, limit int) (*GeocodeAPIResponse, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("locale", locale)
	q.Set("limit", strconv.Itoa(limit))
	q.Set("key", c.apiKey)

	c.logger.Debug("fetching geocode candidates", "query", query, "locale", locale, "limit", limit)

	apiResp, err := remote.Fetch[GeocodeAPIResponse](ctx, c.remote, c.baseURL, q)
	if err != nil {
		c.logger.Debug("failed to fetch geocode candidates", "query", query, "error", err)
		return nil, fmt.Errorf("failed to geocode %q: %w", query, err)
	}

	c.logger.Debug("successfully fetched geocode candidates", "query", query, "hit_count", len(apiResp.Hits))

	return apiResp, nil
}
