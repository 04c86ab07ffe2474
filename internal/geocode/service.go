package geocode

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kos368437/networks-2-lab3/internal/config"
	"github.com/kos368437/networks-2-lab3/internal/providers/graphhopper"
	"github.com/kos368437/networks-2-lab3/internal/remote"
	"github.com/kos368437/networks-2-lab3/internal/types"
)

// GeocodeProvider resolves free-text queries to raw geocoding hits
type GeocodeProvider interface {
	Geocode(ctx context.Context, query, locale string, limit int) (*graphhopper.GeocodeAPIResponse, error)
}

// Service resolves a free-text place name to candidate locations
type Service interface {
	Geocode(ctx context.Context, query string) ([]types.LocationCandidate, error)
}

type geocodeService struct {
	provider GeocodeProvider
	locale   string
	limit    int
	logger   *slog.Logger
}

// NewGeocodeService creates a geocode service backed by GraphHopper
func NewGeocodeService(cfg config.GeocoderConfig, rc *remote.Client, logger *slog.Logger) Service {
	client := graphhopper.NewClientWithBaseURL(rc, cfg.BaseURL, cfg.APIKey, logger)
	return NewGeocodeServiceWithProvider(client, cfg.Locale, cfg.Limit, logger)
}

// NewGeocodeServiceWithProvider creates a geocode service with a custom provider.
// This is useful for testing with mock providers.
func NewGeocodeServiceWithProvider(provider GeocodeProvider, locale string, limit int, logger *slog.Logger) Service {
	return &geocodeService{
		provider: provider,
		locale:   locale,
		limit:    limit,
		logger:   logger.With("component", "geocode-service"),
	}
}

// Geocode issues exactly one request and returns the hits in provider order.
// An empty result is not an error here; the caller decides what to do with it.
func (s *geocodeService) Geocode(ctx context.Context, query string) ([]types.LocationCandidate, error) {
	resp, err := s.provider.Geocode(ctx, query, s.locale, s.limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get candidates: %w", err)
	}
	if resp == nil {
		return nil, fmt.Errorf("geocode response is nil")
	}

	candidates := make([]types.LocationCandidate, 0, len(resp.Hits))
	for _, hit := range resp.Hits {
		candidates = append(candidates, translateHit(hit))
	}

	s.logger.Debug("resolved candidates", "query", query, "candidate_count", len(candidates))

	return candidates, nil
}

func translateHit(hit graphhopper.Hit) types.LocationCandidate {
	return types.LocationCandidate{
		Name:        hit.Name,
		Country:     hit.Country,
		State:       hit.State,
		City:        hit.City,
		Street:      hit.Street,
		Coordinates: types.NewCoords(hit.Point.Lat, hit.Point.Lng),
	}
}
