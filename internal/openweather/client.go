package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/mwhalen/weather-deck/internal/models"
	"go.uber.org/zap"
)

// Client fetches current conditions from the OpenWeatherMap API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates an OpenWeatherMap client. A nil logger disables
// diagnostics.
func NewClient(apiKey string, timeout time.Duration, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: "https://api.openweathermap.org",
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// currentResponse mirrors the fields consumed from /data/2.5/weather.
type currentResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// Fetch retrieves current conditions for a city in metric units. Transport
// errors, non-2xx statuses, and undecodable bodies all collapse into one
// generic failure: the upstream error body is not classified, so an unknown
// city is indistinguishable from an outage to the caller.
func (c *Client) Fetch(ctx context.Context, city string) (models.WeatherRecord, error) {
	u := fmt.Sprintf("%s/data/2.5/weather?q=%s&units=metric&appid=%s",
		c.baseURL, url.QueryEscape(city), c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return models.WeatherRecord{}, fmt.Errorf("creating request for %q: %w", city, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("weather fetch failed", zap.String("city", city), zap.Error(err))
		return models.WeatherRecord{}, fmt.Errorf("fetching weather for %q: %w", city, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Debug("weather fetch failed",
			zap.String("city", city), zap.Int("status", resp.StatusCode))
		return models.WeatherRecord{}, fmt.Errorf("weather API returned status %d for %q", resp.StatusCode, city)
	}

	var cur currentResponse
	if err := json.NewDecoder(resp.Body).Decode(&cur); err != nil {
		return models.WeatherRecord{}, fmt.Errorf("decoding weather response for %q: %w", city, err)
	}

	record := models.WeatherRecord{
		ID:         cur.ID,
		City:       cur.Name,
		TempC:      cur.Main.Temp,
		FeelsLikeC: cur.Main.FeelsLike,
		Humidity:   cur.Main.Humidity,
		WindSpeed:  cur.Wind.Speed,
		UpdatedAt:  time.Now(),
	}
	if len(cur.Weather) > 0 {
		record.Description = cur.Weather[0].Description
		record.Icon = cur.Weather[0].Icon
	}

	c.logger.Debug("weather fetched",
		zap.String("city", record.City), zap.Int("id", record.ID))
	return record, nil
}
