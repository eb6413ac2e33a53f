package config

import (
	"os"
	"strings"
	"time"
)

// Defaults applied when the corresponding environment variable is unset.
const (
	defaultCities  = "London,New York,Tokyo,Paris,Sydney"
	defaultTimeout = 10 * time.Second
	defaultDBPath  = "data/weather-deck.db"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	APIKey         string        // OpenWeatherMap API key
	DefaultCities  []string      // Cities loaded on startup when no saved list exists
	RequestTimeout time.Duration // Per-request HTTP timeout
	DBPath         string        // Saved-cities sqlite database
	LogPath        string        // Diagnostic log file; empty disables logging
	LogLevel       string
}

// Load reads configuration from the environment.
func Load() Config {
	cfg := Config{
		APIKey:         os.Getenv("OPENWEATHER_API_KEY"),
		DefaultCities:  SplitCities(envOr("WEATHER_DECK_CITIES", defaultCities)),
		RequestTimeout: defaultTimeout,
		DBPath:         envOr("WEATHER_DECK_DB", defaultDBPath),
		LogPath:        os.Getenv("WEATHER_DECK_LOG"),
		LogLevel:       os.Getenv("LOG_LEVEL"),
	}

	if v := os.Getenv("WEATHER_DECK_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.RequestTimeout = d
		}
	}

	return cfg
}

// SplitCities parses a comma-separated city list, trimming whitespace and
// dropping empty entries.
func SplitCities(s string) []string {
	var cities []string
	for _, part := range strings.Split(s, ",") {
		if city := strings.TrimSpace(part); city != "" {
			cities = append(cities, city)
		}
	}
	return cities
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
