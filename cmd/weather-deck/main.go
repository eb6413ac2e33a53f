package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mwhalen/weather-deck/internal/citystore"
	"github.com/mwhalen/weather-deck/internal/config"
	"github.com/mwhalen/weather-deck/internal/logging"
	"github.com/mwhalen/weather-deck/internal/openweather"
	"github.com/mwhalen/weather-deck/internal/ui"
	"go.uber.org/zap"
)

func main() {
	citiesFlag := flag.String("cities", "", "Comma-separated city list for this session (overrides saved cities)")
	dbFlag := flag.String("db", "", "Path to the saved-cities database")
	fahrenheit := flag.Bool("fahrenheit", false, "Start with temperatures in °F")
	flag.Parse()

	cfg := config.Load()
	if *dbFlag != "" {
		cfg.DBPath = *dbFlag
	}

	logger, err := logging.New(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		fmt.Printf("Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if cfg.APIKey == "" {
		fmt.Println("Error: OPENWEATHER_API_KEY is required.")
		os.Exit(1)
	}

	// The city store is a convenience, not a requirement: if it cannot be
	// opened the session falls back to the configured defaults.
	store, err := citystore.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("city store unavailable, using default cities", zap.Error(err))
		store = nil
	}

	cities := cfg.DefaultCities
	if store != nil {
		if err := store.Seed(cfg.DefaultCities); err != nil {
			logger.Warn("seeding city store failed", zap.Error(err))
		}
		if saved, err := store.List(); err == nil && len(saved) > 0 {
			cities = saved
		}
	}
	if *citiesFlag != "" {
		cities = config.SplitCities(*citiesFlag)
	}

	client := openweather.NewClient(cfg.APIKey, cfg.RequestTimeout, logger)

	m := ui.NewModel(ui.Options{
		Fetcher:    client,
		Store:      store,
		Cities:     cities,
		Fahrenheit: *fahrenheit,
		Timeout:    cfg.RequestTimeout,
		Logger:     logger,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running application: %v\n", err)
		os.Exit(1)
	}
}
