package weather

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kos368437/networks-2-lab3/internal/config"
	"github.com/kos368437/networks-2-lab3/internal/providers/openweather"
	"github.com/kos368437/networks-2-lab3/internal/remote"
	"github.com/kos368437/networks-2-lab3/internal/types"
)

type CurrentWeatherProvider interface {
	// GetCurrentWeather fetches current conditions in metric units for the given coordinates
	GetCurrentWeather(ctx context.Context, latitude, longitude float64, lang string) (*openweather.CurrentWeatherAPIResponse, error)
}

type Service interface {
	GetCurrent(ctx context.Context, coords types.Coords) (*types.WeatherReport, error)
}

type weatherService struct {
	provider CurrentWeatherProvider
	lang     string
	logger   *slog.Logger
}

func NewWeatherService(cfg config.WeatherConfig, rc *remote.Client, logger *slog.Logger) Service {
	client := openweather.NewClientWithBaseURL(rc, cfg.BaseURL, cfg.APIKey, logger)
	return NewWeatherServiceWithProvider(client, cfg.Lang, logger)
}

func NewWeatherServiceWithProvider(provider CurrentWeatherProvider, lang string, logger *slog.Logger) Service {
	return &weatherService{
		provider: provider,
		lang:     lang,
		logger:   logger.With("component", "weather-service"),
	}
}

func (s *weatherService) GetCurrent(ctx context.Context, coords types.Coords) (*types.WeatherReport, error) {
	apiResponse, err := s.provider.GetCurrentWeather(ctx, coords.Latitude, coords.Longitude, s.lang)
	if err != nil {
		s.logger.Error("failed to get weather from provider",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"error", err,
		)
		return nil, fmt.Errorf("failed to get weather: %w", err)
	}
	if apiResponse == nil {
		return nil, fmt.Errorf("weather response is nil")
	}

	return mapCurrentWeatherAPIResponse(apiResponse), nil
}

func mapCurrentWeatherAPIResponse(apiResponse *openweather.CurrentWeatherAPIResponse) *types.WeatherReport {
	conditions := make([]string, 0, len(apiResponse.Weather))
	for _, c := range apiResponse.Weather {
		conditions = append(conditions, c.Description)
	}

	return &types.WeatherReport{
		Temperature: apiResponse.Main.Temp,
		FeelsLike:   apiResponse.Main.FeelsLike,
		Conditions:  conditions,
		Pressure:    types.NewPressureFromHPa(apiResponse.Main.Pressure),
		Humidity:    apiResponse.Main.Humidity,
	}
}
