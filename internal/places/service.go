package places

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kos368437/networks-2-lab3/internal/config"
	"github.com/kos368437/networks-2-lab3/internal/providers/opentripmap"
	"github.com/kos368437/networks-2-lab3/internal/remote"
	"github.com/kos368437/networks-2-lab3/internal/types"
)

// PlacesProvider lists points of interest and their details
type PlacesProvider interface {
	GetPlacesByRadius(ctx context.Context, latitude, longitude float64, radiusMeters int) ([]opentripmap.PlaceAPIResponse, error)
	GetPlaceDetails(ctx context.Context, xid string) (*opentripmap.PlaceDetailsAPIResponse, error)
}

// Service provides nearby points of interest and their descriptions
type Service interface {
	GetNearby(ctx context.Context, center types.Coords, radiusMeters int) ([]types.PointOfInterest, error)
	GetDescription(ctx context.Context, id string) (*types.PointDescription, error)
}

type placesService struct {
	provider PlacesProvider
	logger   *slog.Logger
}

// NewPlacesService creates a places service backed by OpenTripMap
func NewPlacesService(cfg config.PlacesConfig, rc *remote.Client, logger *slog.Logger) Service {
	client := opentripmap.NewClientWithBaseURL(rc, cfg.BaseURL, cfg.APIKey, cfg.Lang, logger)
	return NewPlacesServiceWithProvider(client, logger)
}

// NewPlacesServiceWithProvider creates a places service with a custom provider.
// This is useful for testing with mock providers.
func NewPlacesServiceWithProvider(provider PlacesProvider, logger *slog.Logger) Service {
	return &placesService{
		provider: provider,
		logger:   logger.With("component", "places-service"),
	}
}

// GetNearby returns the points within radiusMeters of center in provider order
func (s *placesService) GetNearby(ctx context.Context, center types.Coords, radiusMeters int) ([]types.PointOfInterest, error) {
	resp, err := s.provider.GetPlacesByRadius(ctx, center.Latitude, center.Longitude, radiusMeters)
	if err != nil {
		return nil, fmt.Errorf("failed to get nearby places: %w", err)
	}

	points := make([]types.PointOfInterest, 0, len(resp))
	for _, place := range resp {
		points = append(points, translatePlace(center, place))
	}

	s.logger.Debug("resolved nearby places",
		"latitude", center.Latitude,
		"longitude", center.Longitude,
		"radius", radiusMeters,
		"place_count", len(points),
	)

	return points, nil
}

// GetDescription fetches the description of a single point
func (s *placesService) GetDescription(ctx context.Context, id string) (*types.PointDescription, error) {
	resp, err := s.provider.GetPlaceDetails(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get description: %w", err)
	}
	if resp == nil {
		return nil, fmt.Errorf("place details response is nil")
	}

	return translateDetails(resp), nil
}

func translatePlace(center types.Coords, place opentripmap.PlaceAPIResponse) types.PointOfInterest {
	coords := types.NewCoords(place.Point.Lat, place.Point.Lon)

	// dist is only sent for some queries
	distance := place.Dist
	if distance == 0 && (coords != types.Coords{}) {
		distance = center.DistanceTo(coords)
	}

	return types.PointOfInterest{
		ID:          place.Xid,
		Name:        place.Name,
		Kinds:       place.Kinds,
		Coordinates: coords,
		Rate:        place.Rate,
		Distance:    distance,
	}
}

func translateDetails(resp *opentripmap.PlaceDetailsAPIResponse) *types.PointDescription {
	text := resp.Info.Descr
	if text == "" {
		text = resp.WikipediaExtracts.Text
	}

	image := types.Image{
		URL:    resp.Info.Image,
		Source: resp.Info.Src,
		Width:  resp.Info.ImgWidth,
		Height: resp.Info.ImgHeight,
	}
	if image.URL == "" {
		image.URL = resp.Preview.Source
		image.Width = resp.Preview.Width
		image.Height = resp.Preview.Height
	}

	return &types.PointDescription{
		ID:    resp.Xid,
		Name:  resp.Name,
		Text:  text,
		Image: image,
	}
}
