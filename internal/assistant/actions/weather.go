package actions

import (
	"context"
	"fmt"
	"strings"
)

const (
	weatherUnitCelsius    = "celsius"
	weatherUnitFahrenheit = "fahrenheit"

	demoTemperatureCelsius = 30.0
	demoHumidityRH         = 0.3
)

// WeatherParams are the get_weather arguments.
type WeatherParams struct {
	Location string `json:"location"`
	Country  string `json:"country,omitempty"`
	Unit     string `json:"unit,omitempty"`
}

// WeatherReport is the get_weather result.
type WeatherReport struct {
	Location    string  `json:"location"`
	Country     string  `json:"country,omitempty"`
	Temperature float64 `json:"temperature"`
	Unit        string  `json:"unit"`
	HumidityRH  float64 `json:"humidity_rh"`
}

// WeatherAction reports the weather for a location.
// Readings are fixed demo values; no weather provider is queried.
type WeatherAction struct{}

// NewWeatherAction creates a new instance of WeatherAction.
func NewWeatherAction() WeatherAction {
	return WeatherAction{}
}

// Name returns the registered tool name.
func (WeatherAction) Name() string {
	return "get_weather"
}

// Invoke executes WeatherAction.
func (WeatherAction) Invoke(ctx context.Context, params WeatherParams) (any, error) {
	location := strings.TrimSpace(params.Location)
	if location == "" {
		return nil, fmt.Errorf("location cannot be empty")
	}

	unit := strings.ToLower(strings.TrimSpace(params.Unit))
	temperature := demoTemperatureCelsius
	switch unit {
	case "", weatherUnitCelsius:
		unit = weatherUnitCelsius
	case weatherUnitFahrenheit:
		temperature = demoTemperatureCelsius*9/5 + 32
	default:
		return nil, fmt.Errorf("unsupported unit %q: use celsius or fahrenheit", params.Unit)
	}

	return WeatherReport{
		Location:    location,
		Country:     strings.ToUpper(strings.TrimSpace(params.Country)),
		Temperature: temperature,
		Unit:        unit,
		HumidityRH:  demoHumidityRH,
	}, nil
}
