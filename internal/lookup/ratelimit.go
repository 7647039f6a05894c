package lookup

import (
	"context"
	"fmt"
	"net/url"

	"skycast/internal/providers/openweathermap"

	"golang.org/x/time/rate"
)

// RateLimitedProvider wraps a CurrentWeatherProvider with a token bucket
type RateLimitedProvider struct {
	provider CurrentWeatherProvider
	limiter  *rate.Limiter
}

// NewRateLimitedProvider creates a new rate limited provider.
// rps is the maximum requests per second allowed (can be fractional for less than 1 request per second)
// burst is the maximum burst size allowed
func NewRateLimitedProvider(provider CurrentWeatherProvider, rps float64, burst int) *RateLimitedProvider {
	return &RateLimitedProvider{
		provider: provider,
		limiter:  rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// GetCurrentWeather waits for a token or for ctx to end, then forwards the call
func (r *RateLimitedProvider) GetCurrentWeather(ctx context.Context, query url.Values) (*openweathermap.CurrentWeatherAPIResponse, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.provider.GetCurrentWeather(ctx, query)
}

var _ CurrentWeatherProvider = (*RateLimitedProvider)(nil)
