package openweather

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"

	"github.com/kos368437/networks-2-lab3/internal/remote"
)

// API Docs: https://openweathermap.org/current
// Sample request: https://api.openweathermap.org/data/2.5/weather?lat=55.03&lon=82.92&units=metric&lang=en&appid=...
const (
	baseURL = "https://api.openweathermap.org/data/2.5/weather"
)

type Client struct {
	remote  *remote.Client
	baseURL string
	apiKey  string
	units   string
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
		units:   "metric",
		logger:  logger.With("component", "openweather-client"),
	}
}

// GetCurrentWeather fetches the current conditions in metric units
func (c *Client) GetCurrentWeather(ctx context.Context, latitude, longitude float64, lang string) (*CurrentWeatherAPIResponse, error) {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(latitude, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(longitude, 'f', -1, 64))
	q.Set("units", c.units)
	q.Set("lang", lang)
	q.Set("appid", c.apiKey)

	c.logger.Debug("fetching current weather", "latitude", latitude, "longitude", longitude)

	apiResp, err := remote.Fetch[CurrentWeatherAPIResponse](ctx, c.remote, c.baseURL, q)
	if err != nil {
		c.logger.Debug("failed to fetch current weather",
			"latitude", latitude,
			"longitude", longitude,
			"error", err,
		)
		return nil, fmt.Errorf("failed to fetch current weather: %w", err)
	}

	c.logger.Debug("successfully fetched current weather",
		"latitude", latitude,
		"longitude", longitude,
		"name", apiResp.Name,
	)

	return apiResp, nil
}
