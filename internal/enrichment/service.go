package enrichment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/kos368437/networks-2-lab3/internal/async"
	"github.com/kos368437/networks-2-lab3/internal/types"
)

// ErrPlacesUnavailable is wrapped by Enrich when the points-of-interest fetch fails
var ErrPlacesUnavailable = errors.New("points of interest unavailable")

// WeatherSource provides the current weather for a location
type WeatherSource interface {
	GetCurrent(ctx context.Context, coords types.Coords) (*types.WeatherReport, error)
}

// PlacesSource provides points of interest near a location and their descriptions
type PlacesSource interface {
	GetNearby(ctx context.Context, center types.Coords, radiusMeters int) ([]types.PointOfInterest, error)
	GetDescription(ctx context.Context, id string) (*types.PointDescription, error)
}

// PendingDescription pairs a point with the in-flight request for its
// description. The pairing is made once, when the request is started.
type PendingDescription struct {
	Point       types.PointOfInterest
	Description *async.Future[types.PointDescription]
}

// Enrichment is the output of Enrich. Weather may still be running; every
// description has been started. Points keeps the order of the places list.
type Enrichment struct {
	Weather *async.Future[types.WeatherReport]
	Points  []PendingDescription
}

type Service struct {
	weather      WeatherSource
	places       PlacesSource
	radiusMeters int
	logger       *slog.Logger
}

func NewService(weather WeatherSource, places PlacesSource, radiusMeters int, logger *slog.Logger) *Service {
	return &Service{
		weather:      weather,
		places:       places,
		radiusMeters: radiusMeters,
		logger:       logger.With("component", "enrichment"),
	}
}

// Enrich starts the weather and places requests together, waits for the
// places list only, and then starts one description request per point.
//
// If the places request fails the returned Enrichment still carries the
// weather future and the error wraps ErrPlacesUnavailable.
func (s *Service) Enrich(ctx context.Context, coords types.Coords) (*Enrichment, error) {
	weatherFuture := async.Go(func() (types.WeatherReport, error) {
		report, err := s.weather.GetCurrent(ctx, coords)
		if err != nil {
			return types.WeatherReport{}, err
		}
		return *report, nil
	})

	placesFuture := async.Go(func() ([]types.PointOfInterest, error) {
		return s.places.GetNearby(ctx, coords, s.radiusMeters)
	})

	enrichment := &Enrichment{Weather: weatherFuture}

	points, err := placesFuture.Await()
	if err != nil {
		s.logger.Warn("places request failed", "error", err)
		return enrichment, fmt.Errorf("%w: %w", ErrPlacesUnavailable, err)
	}

	enrichment.Points = make([]PendingDescription, 0, len(points))
	for _, point := range points {
		enrichment.Points = append(enrichment.Points, PendingDescription{
			Point:       point,
			Description: s.describe(ctx, point),
		})
	}

	s.logger.Debug("started description requests", "count", len(enrichment.Points))

	return enrichment, nil
}

func (s *Service) describe(ctx context.Context, point types.PointOfInterest) *async.Future[types.PointDescription] {
	s.logger.Debug("starting description request",
		"id", point.ID,
		"name", point.Name,
		"distance_m", point.Distance,
	)

	return async.Go(func() (types.PointDescription, error) {
		description, err := s.places.GetDescription(ctx, point.ID)
		if err != nil {
			return types.PointDescription{}, err
		}
		return *description, nil
	})
}
