package opentripmap

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"

	"github.com/kos368437/networks-2-lab3/internal/remote"
)

// API Docs: https://dev.opentripmap.org/docs
// Sample requests:
// - https://api.opentripmap.com/0.1/en/places/radius?radius=2000&lon=82.92&lat=55.03&format=json&apikey=...
// - https://api.opentripmap.com/0.1/en/places/xid/R2731484?apikey=...
const (
	baseURL = "https://api.opentripmap.com/0.1"
)

type Client struct {
	remote  *remote.Client
	baseURL string
	apiKey  string
	lang    string
	logger  *slog.Logger
}

func NewClient(rc *remote.Client, apiKey, lang string, logger *slog.Logger) *Client {
	return NewClientWithBaseURL(rc, baseURL, apiKey, lang, logger)
}

func NewClientWithBaseURL(rc *remote.Client, base, apiKey, lang string, logger *slog.Logger) *Client {
	return &Client{
		remote:  rc,
		baseURL: base,
		apiKey:  apiKey,
		lang:    lang,
		logger:  logger.With("component", "opentripmap-client"),
	}
}

func (c *Client) endpoint(segments ...string) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse base URL: %w", err)
	}
	return u.JoinPath(append([]string{c.lang, "places"}, segments...)...).String(), nil
}

// GetPlacesByRadius lists the objects within radiusMeters of the point, in API order
func (c *Client) GetPlacesByRadius(ctx context.Context, latitude, longitude float64, radiusMeters int) ([]PlaceAPIResponse, error) {
	endpoint, err := c.endpoint("radius")
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("radius", strconv.Itoa(radiusMeters))
	q.Set("lat", strconv.FormatFloat(latitude, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(longitude, 'f', -1, 64))
	q.Set("format", "json")
	q.Set("apikey", c.apiKey)

	c.logger.Debug("fetching places by radius",
		"latitude", latitude,
		"longitude", longitude,
		"radius", radiusMeters,
	)

	apiResp, err := remote.Fetch[[]PlaceAPIResponse](ctx, c.remote, endpoint, q)
	if err != nil {
		c.logger.Debug("failed to fetch places by radius",
			"latitude", latitude,
			"longitude", longitude,
			"error", err,
		)
		return nil, fmt.Errorf("failed to fetch places: %w", err)
	}

	c.logger.Debug("successfully fetched places by radius", "place_count", len(*apiResp))

	return *apiResp, nil
}

// GetPlaceDetails fetches the full record of one object
func (c *Client) GetPlaceDetails(ctx context.Context, xid string) (*PlaceDetailsAPIResponse, error) {
	endpoint, err := c.endpoint("xid", xid)
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("apikey", c.apiKey)

	c.logger.Debug("fetching place details", "xid", xid)

	apiResp, err := remote.Fetch[PlaceDetailsAPIResponse](ctx, c.remote, endpoint, q)
	if err != nil {
		c.logger.Debug("failed to fetch place details", "xid", xid, "error", err)
		return nil, fmt.Errorf("failed to fetch place %s: %w", xid, err)
	}

	return apiResp, nil
}
