package lookup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"skycast/internal/config"
	"skycast/internal/providers/openweathermap"
	"skycast/internal/timezone"
)

// CurrentWeatherProvider fetches raw current conditions for a set of location parameters
type CurrentWeatherProvider interface {
	GetCurrentWeather(ctx context.Context, query url.Values) (*openweathermap.CurrentWeatherAPIResponse, error)
}

// Service looks up current weather by place name or by coordinates
type Service interface {
	Lookup(ctx context.Context, query Query) (*WeatherSnapshot, error)
	LookupByName(ctx context.Context, place string) (*WeatherSnapshot, error)
	LookupByCoordinates(ctx context.Context, latitude, longitude float64) (*WeatherSnapshot, error)
}

type lookupService struct {
	provider        CurrentWeatherProvider
	timezoneService timezone.Service
	iconURL         string
	now             func() time.Time
	logger          *slog.Logger
}

// NewLookupService creates a lookup service backed by the OpenWeatherMap API
func NewLookupService(cfg *config.Config, logger *slog.Logger) (Service, error) {
	tzSvc, err := timezone.NewService()
	if err != nil {
		return nil, fmt.Errorf("failed to create timezone service: %w", err)
	}

	var provider CurrentWeatherProvider = openweathermap.NewClient(
		cfg.OpenWeatherMap.APIKey,
		cfg.OpenWeatherMap.BaseURL,
		cfg.OpenWeatherMap.Timeout,
		logger,
	)
	if cfg.RateLimit.RPS > 0 {
		provider = NewRateLimitedProvider(provider, cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		logger.Info("applied rate limiting to weather provider",
			"rps", cfg.RateLimit.RPS,
			"burst", cfg.RateLimit.Burst,
		)
	}

	return NewLookupServiceWithProvider(provider, tzSvc, cfg.OpenWeatherMap.IconURL, logger), nil
}

// NewLookupServiceWithProvider creates a lookup service with a custom provider.
// timezoneService may be nil, in which case snapshots carry no timezone.
func NewLookupServiceWithProvider(
	provider CurrentWeatherProvider,
	timezoneService timezone.Service,
	iconURL string,
	logger *slog.Logger,
) Service {
	if iconURL == "" {
		iconURL = DefaultIconURL
	}
	return &lookupService{
		provider:        provider,
		timezoneService: timezoneService,
		iconURL:         iconURL,
		now:             time.Now,
		logger:          logger.With("component", "lookup-service"),
	}
}

func (s *lookupService) LookupByName(ctx context.Context, place string) (*WeatherSnapshot, error) {
	return s.Lookup(ctx, ByName(place))
}

func (s *lookupService) LookupByCoordinates(ctx context.Context, latitude, longitude float64) (*WeatherSnapshot, error) {
	return s.Lookup(ctx, ByCoordinates(latitude, longitude))
}

// Lookup performs one round trip for the query. It never retries.
func (s *lookupService) Lookup(ctx context.Context, query Query) (*WeatherSnapshot, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	s.logger.Debug("looking up current weather", "query", query.String())

	resp, err := s.provider.GetCurrentWeather(ctx, query.values())
	if err != nil {
		var apiErr *openweathermap.APIError
		if errors.As(err, &apiErr) {
			message := apiErr.Message
			if message == "" {
				message = MessageNotFound
			}
			s.logger.Info("weather lookup rejected",
				"query", query.String(),
				"status_code", apiErr.StatusCode,
				"message", message,
			)
			return nil, &LookupError{Status: apiErr.StatusCode, Message: message}
		}

		s.logger.Error("weather lookup failed", "query", query.String(), "error", err)
		return nil, &TransportError{Err: err}
	}

	snapshot := mapCurrentWeather(resp, s.iconURL, s.now())
	snapshot.Timezone = s.resolveTimezone(snapshot)

	s.logger.Debug("weather snapshot built",
		"query", query.String(),
		"city", snapshot.City,
		"temp", snapshot.Temp,
		"condition", snapshot.Condition,
	)

	return snapshot, nil
}

func (s *lookupService) resolveTimezone(snapshot *WeatherSnapshot) string {
	if s.timezoneService == nil {
		return ""
	}
	tz, err := s.timezoneService.GetTimezone(snapshot.Coordinates.Latitude, snapshot.Coordinates.Longitude)
	if err != nil {
		s.logger.Debug("could not determine timezone for snapshot",
			"city", snapshot.City,
			"error", err,
		)
		return ""
	}
	return tz
}

var _ CurrentWeatherProvider = (*openweathermap.Client)(nil)
