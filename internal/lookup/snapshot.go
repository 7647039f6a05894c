package lookup

import (
	"fmt"
	"strings"
	"time"

	"skycast/internal/providers/openweathermap"
	"skycast/internal/types"
)

// DefaultIconURL is the base the icon code is appended to
const DefaultIconURL = "https://openweathermap.org/img/wn"

// WeatherSnapshot is the normalized current conditions for one place
type WeatherSnapshot struct {
	City        string       `json:"city" example:"Paris"`
	Temp        int          `json:"temp" example:"20"`
	TempF       int          `json:"tempF" example:"68"`
	Humidity    int          `json:"humidity" example:"55"`
	WindSpeed   int          `json:"windSpeed" example:"11"`
	Condition   string       `json:"condition" example:"Clear"`
	Icon        string       `json:"icon" example:"https://openweathermap.org/img/wn/01d@2x.png"`
	Coordinates types.Coords `json:"coordinates"`
	Timezone    string       `json:"timezone,omitempty" example:"Europe/Paris"`
	RetrievedAt time.Time    `json:"retrievedAt"`
}

// iconURL builds the 2x icon address for an API icon code
func iconURL(base, code string) string {
	if code == "" {
		return ""
	}
	return fmt.Sprintf("%s/%s@2x.png", strings.TrimRight(base, "/"), code)
}

// mapCurrentWeather converts the API payload into a snapshot.
// Timezone is left for the caller to fill.
func mapCurrentWeather(resp *openweathermap.CurrentWeatherAPIResponse, iconBase string, now time.Time) *WeatherSnapshot {
	temperature := types.NewTemperatureFromCelsius(resp.Main.Temp)
	wind := types.NewWindFromMetersPerSecond(resp.Wind.Speed, resp.Wind.Deg)

	var condition, icon string
	if len(resp.Weather) > 0 {
		condition = resp.Weather[0].Main
		icon = iconURL(iconBase, resp.Weather[0].Icon)
	}

	return &WeatherSnapshot{
		City:        resp.Name,
		Temp:        temperature.RoundedCelsius(),
		TempF:       temperature.RoundedFahrenheit(),
		Humidity:    resp.Main.Humidity,
		WindSpeed:   wind.RoundedKph(),
		Condition:   condition,
		Icon:        icon,
		Coordinates: types.NewCoords(resp.Coord.Lat, resp.Coord.Lon),
		RetrievedAt: now.UTC(),
	}
}
