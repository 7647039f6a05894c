package widget

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"skycast/internal/lookup"
	"skycast/internal/types"
)

// Messages shown by the widget when something other than the API goes wrong
const (
	MessageGeolocationUnsupported = "Geolocation is not supported by your browser"
	MessageLocationFailed         = "Failed to get your location"
	MessageLocationWeatherFailed  = "Failed to get weather for your location"
)

// Locator yields the device position once
type Locator interface {
	Locate(ctx context.Context) (types.Coords, error)
}

// LocatorFunc adapts a function to the Locator interface
type LocatorFunc func(ctx context.Context) (types.Coords, error)

func (f LocatorFunc) Locate(ctx context.Context) (types.Coords, error) {
	return f(ctx)
}

// Widget holds the display state of one weather widget.
// The lock is never held across a lookup; the last lookup to finish wins.
type Widget struct {
	mu       sync.Mutex
	service  lookup.Service
	logger   *slog.Logger
	city     string
	snapshot *lookup.WeatherSnapshot
	errMsg   string
	inFlight int

	useCelsius bool
}

func New(service lookup.Service, logger *slog.Logger) *Widget {
	return &Widget{
		service:    service,
		logger:     logger.With("component", "widget"),
		useCelsius: true,
	}
}

// Submit looks up the typed place name. Blank input is ignored.
func (w *Widget) Submit(ctx context.Context, text string) {
	place := strings.TrimSpace(text)
	if place == "" {
		return
	}

	w.mu.Lock()
	w.city = place
	w.errMsg = ""
	w.inFlight++
	w.mu.Unlock()

	snapshot, err := w.service.LookupByName(ctx, place)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.inFlight--

	if err != nil {
		w.logger.Debug("search failed", "city", place, "error", err)
		w.snapshot = nil
		w.errMsg = lookupMessage(err, lookup.MessageFetchFailed)
		return
	}
	w.snapshot = snapshot
	w.errMsg = ""
}

// UseLocation looks up the weather at the position reported by locator.
// A nil locator means the client has no geolocation capability.
func (w *Widget) UseLocation(ctx context.Context, locator Locator) {
	if locator == nil {
		w.mu.Lock()
		w.errMsg = MessageGeolocationUnsupported
		w.mu.Unlock()
		return
	}

	w.mu.Lock()
	w.inFlight++
	w.mu.Unlock()

	coords, err := locator.Locate(ctx)
	if err != nil {
		w.logger.Debug("geolocation failed", "error", err)
		w.mu.Lock()
		w.inFlight--
		w.errMsg = MessageLocationFailed
		w.mu.Unlock()
		return
	}

	snapshot, err := w.service.LookupByCoordinates(ctx, coords.Latitude, coords.Longitude)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.inFlight--

	if err != nil {
		w.logger.Debug("location lookup failed",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"error", err,
		)
		if lookup.IsValidationError(err) {
			// the position itself was unusable, treat it like a geolocation failure
			w.errMsg = MessageLocationFailed
			return
		}
		w.snapshot = nil
		w.errMsg = lookupMessage(err, MessageLocationWeatherFailed)
		return
	}
	w.city = snapshot.City
	w.snapshot = snapshot
	w.errMsg = ""
}

// ToggleUnits switches the displayed temperature between Celsius and Fahrenheit
func (w *Widget) ToggleUnits() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.useCelsius = !w.useCelsius
}

// View returns a copy of the current state ready for rendering
func (w *Widget) View() View {
	w.mu.Lock()
	defer w.mu.Unlock()

	v := View{
		City:       w.city,
		Error:      w.errMsg,
		Loading:    w.inFlight > 0,
		UseCelsius: w.useCelsius,
	}
	if w.useCelsius {
		v.UnitToggleLabel = "Switch to °F"
	} else {
		v.UnitToggleLabel = "Switch to °C"
	}

	if w.snapshot != nil && w.errMsg == "" {
		snapshot := *w.snapshot
		v.Weather = &snapshot
		v.Display = newDisplay(snapshot, w.useCelsius)
	}
	return v
}

// Snapshot returns the last successful result, kept even while an error is shown.
// It is nil after a failed lookup.
func (w *Widget) Snapshot() *lookup.WeatherSnapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.snapshot == nil {
		return nil
	}
	snapshot := *w.snapshot
	return &snapshot
}

// lookupMessage picks the user-facing text for a failed lookup
func lookupMessage(err error, fallback string) string {
	var lookupErr *lookup.LookupError
	if errors.As(err, &lookupErr) {
		return lookupErr.Message
	}
	return fallback
}

// View is the renderable state of a widget
type View struct {
	City            string                  `json:"city" example:"Paris"`
	Error           string                  `json:"error,omitempty" example:"city not found"`
	Loading         bool                    `json:"loading"`
	UseCelsius      bool                    `json:"useCelsius"`
	UnitToggleLabel string                  `json:"unitToggleLabel" example:"Switch to °F"`
	Weather         *lookup.WeatherSnapshot `json:"weather,omitempty"`
	Display         *Display                `json:"display,omitempty"`
}

// Display holds the formatted strings shown next to the weather icon
type Display struct {
	City        string `json:"city" example:"Paris"`
	Temperature string `json:"temperature" example:"20°C"`
	Condition   string `json:"condition" example:"Clear"`
	Humidity    string `json:"humidity" example:"55%"`
	WindSpeed   string `json:"windSpeed" example:"11 km/h"`
	Icon        string `json:"icon"`
	IconAlt     string `json:"iconAlt" example:"Clear"`
}

func newDisplay(s lookup.WeatherSnapshot, useCelsius bool) *Display {
	temperature := fmt.Sprintf("%d°F", s.TempF)
	if useCelsius {
		temperature = fmt.Sprintf("%d°C", s.Temp)
	}
	return &Display{
		City:        s.City,
		Temperature: temperature,
		Condition:   s.Condition,
		Humidity:    fmt.Sprintf("%d%%", s.Humidity),
		WindSpeed:   fmt.Sprintf("%d km/h", s.WindSpeed),
		Icon:        s.Icon,
		IconAlt:     s.Condition,
	}
}
