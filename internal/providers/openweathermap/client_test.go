package openweathermap

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"
)

const testAPIKey = "test-key-0123456789"

const parisBody = `{
	"coord": {"lon": 2.3488, "lat": 48.8534},
	"weather": [{"id": 800, "main": "Clear", "description": "clear sky", "icon": "01d"}],
	"main": {"temp": 20, "feels_like": 19.5, "temp_min": 18, "temp_max": 22, "pressure": 1015, "humidity": 55},
	"wind": {"speed": 3, "deg": 240},
	"sys": {"country": "FR"},
	"timezone": 7200,
	"id": 2988507,
	"name": "Paris",
	"cod": 200
}`

func newTestClient(baseURL string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return NewClient(testAPIKey, baseURL, 5*time.Second, logger)
}

func TestClient_GetCurrentWeather_ByName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/weather" {
			t.Errorf("expected path /weather, got %s", r.URL.Path)
		}
		q := r.URL.Query()
		if got := q.Get("q"); got != "Paris" {
			t.Errorf("expected q=Paris, got %s", got)
		}
		if got := q.Get("appid"); got != testAPIKey {
			t.Errorf("expected appid=%s, got %s", testAPIKey, got)
		}
		if got := q.Get("units"); got != "metric" {
			t.Errorf("expected units=metric, got %s", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(parisBody))
	}))
	defer srv.Close()

	got, err := newTestClient(srv.URL, nil).GetCurrentWeather(context.Background(), url.Values{"q": {"Paris"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Name != "Paris" {
		t.Errorf("expected name Paris, got %s", got.Name)
	}
	if got.Main.Temp != 20 {
		t.Errorf("expected temp 20, got %f", got.Main.Temp)
	}
	if got.Main.Humidity != 55 {
		t.Errorf("expected humidity 55, got %d", got.Main.Humidity)
	}
	if got.Wind.Speed != 3 {
		t.Errorf("expected wind 3, got %f", got.Wind.Speed)
	}
	if len(got.Weather) != 1 || got.Weather[0].Icon != "01d" {
		t.Errorf("expected one weather entry with icon 01d, got %+v", got.Weather)
	}
	if got.Coord.Lat != 48.8534 {
		t.Errorf("expected lat 48.8534, got %f", got.Coord.Lat)
	}
}

func TestClient_GetCurrentWeather_ByCoordinates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if got := q.Get("lat"); got != "48.8534" {
			t.Errorf("expected lat=48.8534, got %s", got)
		}
		if got := q.Get("lon"); got != "2.3488" {
			t.Errorf("expected lon=2.3488, got %s", got)
		}
		if q.Has("q") {
			t.Errorf("did not expect q parameter, got %s", q.Get("q"))
		}
		_, _ = w.Write([]byte(parisBody))
	}))
	defer srv.Close()

	query := url.Values{"lat": {"48.8534"}, "lon": {"2.3488"}}
	got, err := newTestClient(srv.URL, nil).GetCurrentWeather(context.Background(), query)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Paris" {
		t.Errorf("expected name Paris, got %s", got.Name)
	}
}

func TestClient_GetCurrentWeather_Errors(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{
			name:        "not found with message",
			status:      http.StatusNotFound,
			body:        `{"cod":"404","message":"city not found"}`,
			wantMessage: "city not found",
		},
		{
			name:        "unauthorized with numeric cod",
			status:      http.StatusUnauthorized,
			body:        `{"cod":401,"message":"Invalid API key"}`,
			wantMessage: "Invalid API key",
		},
		{
			name:        "json without message",
			status:      http.StatusBadRequest,
			body:        `{"cod":"400"}`,
			wantMessage: "",
		},
		{
			name:        "body is not json",
			status:      http.StatusInternalServerError,
			body:        "internal server error",
			wantMessage: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := newTestClient(srv.URL, nil).GetCurrentWeather(context.Background(), url.Values{"q": {"Nowhere"}})
			if err == nil {
				t.Fatal("expected error, got nil")
			}

			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected *APIError, got %T: %v", err, err)
			}
			if apiErr.StatusCode != tt.status {
				t.Errorf("StatusCode = %d, want %d", apiErr.StatusCode, tt.status)
			}
			if apiErr.Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", apiErr.Message, tt.wantMessage)
			}
		})
	}
}

func TestClient_GetCurrentWeather_DecodeFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL, nil).GetCurrentWeather(context.Background(), url.Values{"q": {"Paris"}})
	if err == nil {
		t.Fatal("expected decode error, got nil")
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Errorf("decode failure should not be an APIError, got %v", apiErr)
	}
}

func TestClient_GetCurrentWeather_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Second)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestClient(srv.URL, nil).GetCurrentWeather(ctx, url.Values{"q": {"Paris"}})
	if err == nil {
		t.Fatal("expected error for cancelled context, got nil")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled in chain, got %v", err)
	}
	if strings.Contains(err.Error(), testAPIKey) {
		t.Errorf("error leaks credential: %v", err)
	}
}

func TestClient_LogsRedactedURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(parisBody))
	}))
	defer srv.Close()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	if _, err := newTestClient(srv.URL, logger).GetCurrentWeather(context.Background(), url.Values{"q": {"Paris"}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	logs := buf.String()
	if strings.Contains(logs, testAPIKey) {
		t.Errorf("logs leak credential:\n%s", logs)
	}
	if !strings.Contains(logs, "appid=REDACTED") {
		t.Errorf("expected redacted appid in logs:\n%s", logs)
	}
}

func TestRedactURL(t *testing.T) {
	u, _ := url.Parse("https://api.example.com/data/2.5/weather?q=Paris&appid=secret&units=metric")
	got := redactURL(u)
	if strings.Contains(got, "secret") {
		t.Errorf("redactURL() = %s, still contains credential", got)
	}
	if u.Query().Get("appid") != "secret" {
		t.Error("redactURL() modified the original URL")
	}
}
