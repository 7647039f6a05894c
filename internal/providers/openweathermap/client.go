package openweathermap

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// API Docs: https://openweathermap.org/current
// Sample request: https://api.openweathermap.org/data/2.5/weather?q=Paris&appid={key}&units=metric
const (
	DefaultBaseURL = "https://api.openweathermap.org/data/2.5"
	DefaultTimeout = 10 * time.Second

	redacted = "REDACTED"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *slog.Logger
}

func NewClient(apiKey, baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		apiKey:  apiKey,
		logger:  logger.With("component", "openweathermap-client"),
	}
}

// GetCurrentWeather fetches current conditions. query holds the location
// parameters (q, or lat and lon); the credential and units are added here.
func (c *Client) GetCurrentWeather(ctx context.Context, query url.Values) (*CurrentWeatherAPIResponse, error) {
	u, err := url.Parse(c.baseURL + "/weather")
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	for key, values := range query {
		for _, v := range values {
			q.Add(key, v)
		}
	}
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")
	u.RawQuery = q.Encode()

	c.logger.Debug("fetching current weather", "url", redactURL(u))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// url.Error embeds the full request URL, which carries the key
		c.logger.Error("failed to fetch current weather",
			"url", redactURL(u),
			"error", redactError(err, c.apiKey),
		)
		return nil, fmt.Errorf("failed to fetch: %w", redactError(err, c.apiKey))
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		body, _ := io.ReadAll(resp.Body)
		if err := json.Unmarshal(body, apiErr); err != nil {
			c.logger.Debug("error response body is not JSON",
				"status_code", resp.StatusCode,
				"response_body", string(body),
			)
		}
		apiErr.StatusCode = resp.StatusCode
		c.logger.Warn("openweathermap returned error",
			"status_code", resp.StatusCode,
			"message", apiErr.Message,
		)
		return nil, apiErr
	}

	var apiResp CurrentWeatherAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		c.logger.Error("failed to decode openweathermap response", "error", err)
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	c.logger.Debug("weather data received",
		"name", apiResp.Name,
		"temp", apiResp.Main.Temp,
		"humidity", apiResp.Main.Humidity,
		"wind_speed", apiResp.Wind.Speed,
		"weather", apiResp.Weather,
	)

	return &apiResp, nil
}

// redactURL renders u with the credential replaced
func redactURL(u *url.URL) string {
	clone := *u
	q := clone.Query()
	if q.Has("appid") {
		q.Set("appid", redacted)
	}
	clone.RawQuery = q.Encode()
	return clone.String()
}

// redactError strips the credential from a transport error's URL
func redactError(err error, apiKey string) error {
	var urlErr *url.Error
	if apiKey == "" || !errors.As(err, &urlErr) {
		return err
	}
	u, parseErr := url.Parse(urlErr.URL)
	if parseErr != nil {
		return err
	}
	return &url.Error{Op: urlErr.Op, URL: redactURL(u), Err: urlErr.Err}
}
