package timezone

import (
	"fmt"
	"sync"

	"github.com/ringsaturn/tzf"
)

// Service resolves the IANA timezone of a coordinate
type Service interface {
	GetTimezone(latitude, longitude float64) (string, error)
}

type service struct {
	finder tzf.F
}

var (
	instance *service
	initErr  error
	once     sync.Once
)

// NewService returns the shared timezone service.
// The finder holds the whole timezone dataset in memory, so it is built once per process.
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

// GetTimezone returns names like "Europe/Paris" for the given coordinates
func (s *service) GetTimezone(latitude, longitude float64) (string, error) {
	name := s.finder.GetTimezoneName(longitude, latitude)
	if name == "" {
		return "", fmt.Errorf("could not determine timezone for coordinates lat=%f, lon=%f", latitude, longitude)
	}
	return name, nil
}
