package timezone

import (
	"fmt"
	"sync"

	"github.com/ringsaturn/tzf"

	"github.com/kos368437/networks-2-lab3/internal/types"
)

// Service resolves the IANA time zone of a location
type Service interface {
	GetTimezone(coords types.Coords) (string, error)
}

type service struct {
	finder tzf.F
}

var (
	instance *service
	initErr  error
	once     sync.Once
)

// NewService returns the process-wide time zone service.
// The finder keeps the whole boundary dataset in memory, so it is built once.
func NewService() (Service, error) {
	once.Do(func() {
		finder, err := tzf.NewDefaultFinder()
		if err != nil {
			initErr = fmt.Errorf("failed to initialize timezone finder: %w", err)
			return
		}
		instance = &service{finder: finder}
	})
	if initErr != nil {
		return nil, initErr
	}
	return instance, nil
}

// GetTimezone returns names like "Asia/Novosibirsk" or "Europe/London"
func (s *service) GetTimezone(coords types.Coords) (string, error) {
	name := s.finder.GetTimezoneName(coords.Longitude, coords.Latitude)
	if name == "" {
		return "", fmt.Errorf("could not determine timezone for coordinates lat=%f, lon=%f", coords.Latitude, coords.Longitude)
	}
	return name, nil
}
