package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mwhalen/weather-deck/internal/citystore"
	"github.com/mwhalen/weather-deck/internal/dashboard"
	"github.com/mwhalen/weather-deck/internal/models"
)

// Message types for async operations

// dashboardLoadedMsg is sent when the initial bulk fetch has settled.
// It carries only the cities that resolved; failures were dropped.
type dashboardLoadedMsg struct {
	records []models.WeatherRecord
}

// searchResultMsg is sent when a user-initiated search completes.
type searchResultMsg struct {
	record models.WeatherRecord
	err    error
}

// refreshResultMsg is sent when a per-card refresh completes.
type refreshResultMsg struct {
	id     int
	record models.WeatherRecord
	err    error
}

// citySavedMsg is sent when a city has been written to the city store.
type citySavedMsg struct {
	city string
	err  error
}

// cityRemovedMsg is sent when a city has been removed from the city store.
type cityRemovedMsg struct {
	city string
	err  error
}

// loadDashboard fetches every configured city concurrently and settles
// once all fetches have finished, success or failure.
func loadDashboard(fetcher dashboard.Fetcher, cities []string, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		return dashboardLoadedMsg{records: dashboard.FetchAll(ctx, fetcher, cities)}
	}
}

// searchCity resolves a search query in the background.
func searchCity(fetcher dashboard.Fetcher, query string, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		record, err := fetcher.Fetch(ctx, query)
		return searchResultMsg{record: record, err: err}
	}
}

// refreshCity re-fetches an existing record's city in the background.
func refreshCity(fetcher dashboard.Fetcher, id int, city string, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		record, err := fetcher.Fetch(ctx, city)
		return refreshResultMsg{id: id, record: record, err: err}
	}
}

// saveCity persists a city name to the city store.
func saveCity(store *citystore.Store, city string) tea.Cmd {
	return func() tea.Msg {
		return citySavedMsg{city: city, err: store.Save(city)}
	}
}

// removeCity deletes a city name from the city store.
func removeCity(store *citystore.Store, city string) tea.Cmd {
	return func() tea.Msg {
		return cityRemovedMsg{city: city, err: store.Delete(city)}
	}
}
