package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", "test-key")
	t.Setenv("WEATHER_DECK_CITIES", "")
	t.Setenv("WEATHER_DECK_TIMEOUT", "")
	t.Setenv("WEATHER_DECK_DB", "")

	cfg := Load()

	if cfg.APIKey != "test-key" {
		t.Errorf("APIKey = %q, want 'test-key'", cfg.APIKey)
	}
	if len(cfg.DefaultCities) != 5 {
		t.Errorf("len(DefaultCities) = %d, want 5", len(cfg.DefaultCities))
	}
	if cfg.DefaultCities[0] != "London" {
		t.Errorf("DefaultCities[0] = %q, want 'London'", cfg.DefaultCities[0])
	}
	if cfg.RequestTimeout != 10*time.Second {
		t.Errorf("RequestTimeout = %v, want 10s", cfg.RequestTimeout)
	}
	if cfg.DBPath != "data/weather-deck.db" {
		t.Errorf("DBPath = %q, want default", cfg.DBPath)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("WEATHER_DECK_CITIES", "Oslo, Reykjavik")
	t.Setenv("WEATHER_DECK_TIMEOUT", "30s")
	t.Setenv("WEATHER_DECK_DB", "/tmp/wd.db")

	cfg := Load()

	if len(cfg.DefaultCities) != 2 || cfg.DefaultCities[1] != "Reykjavik" {
		t.Errorf("DefaultCities = %v, want [Oslo Reykjavik]", cfg.DefaultCities)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Errorf("RequestTimeout = %v, want 30s", cfg.RequestTimeout)
	}
	if cfg.DBPath != "/tmp/wd.db" {
		t.Errorf("DBPath = %q, want '/tmp/wd.db'", cfg.DBPath)
	}
}

func TestLoad_InvalidTimeoutFallsBack(t *testing.T) {
	t.Setenv("WEATHER_DECK_TIMEOUT", "not-a-duration")

	cfg := Load()

	if cfg.RequestTimeout != 10*time.Second {
		t.Errorf("RequestTimeout = %v, want default 10s", cfg.RequestTimeout)
	}
}

func TestSplitCities(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"simple", "London,Tokyo", []string{"London", "Tokyo"}},
		{"whitespace trimmed", " London , New York ", []string{"London", "New York"}},
		{"empty entries dropped", "London,,Tokyo,", []string{"London", "Tokyo"}},
		{"blank input", "  ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitCities(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("SplitCities(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("SplitCities(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}
