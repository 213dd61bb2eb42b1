package model

import "time"

// Forecast is a single day's weather forecast as returned by the provider.
type Forecast struct {
	Date         time.Time `json:"date"`
	TemperatureC int       `json:"temperatureC"`
	Summary      string    `json:"summary"`
}
