package models

import "time"

// WeatherRecord represents one city's current-conditions snapshot.
// Records are immutable: a refresh or a repeat search produces a whole
// new value, never a field-level mutation of an existing one.
type WeatherRecord struct {
	ID          int       `json:"id"`           // City id assigned by the weather API, identity key
	City        string    `json:"city"`         // Display name as returned by the API (not the query string)
	TempC       float64   `json:"temp_c"`       // Celsius is the canonical stored unit
	FeelsLikeC  float64   `json:"feels_like_c"` // Celsius
	Description string    `json:"description"`  // Free-text condition, e.g. "light rain"
	Humidity    int       `json:"humidity"`     // Percent, 0-100
	WindSpeed   float64   `json:"wind_speed"`   // Meters per second
	Icon        string    `json:"icon"`         // API icon code, passed through for display
	UpdatedAt   time.Time `json:"updated_at"`   // When the fetch that produced this record succeeded
}
