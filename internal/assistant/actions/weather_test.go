package actions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeatherAction(t *testing.T) {
	tests := map[string]struct {
		params         WeatherParams
		expectedReport WeatherReport
		expectedErr    string
	}{
		"default-unit-is-celsius": {
			params: WeatherParams{Location: "Paris"},
			expectedReport: WeatherReport{
				Location:    "Paris",
				Temperature: 30,
				Unit:        "celsius",
				HumidityRH:  0.3,
			},
		},
		"fahrenheit": {
			params: WeatherParams{Location: "Austin", Country: "us", Unit: "Fahrenheit"},
			expectedReport: WeatherReport{
				Location:    "Austin",
				Country:     "US",
				Temperature: 86,
				Unit:        "fahrenheit",
				HumidityRH:  0.3,
			},
		},
		"empty-location": {
			params:      WeatherParams{Location: "  "},
			expectedErr: "location cannot be empty",
		},
		"unsupported-unit": {
			params:      WeatherParams{Location: "Paris", Unit: "kelvin"},
			expectedErr: `unsupported unit "kelvin"`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			action := NewWeatherAction()
			assert.Equal(t, "get_weather", action.Name())

			got, err := action.Invoke(context.Background(), tt.params)
			if tt.expectedErr != "" {
				assert.ErrorContains(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedReport, got)
		})
	}
}
