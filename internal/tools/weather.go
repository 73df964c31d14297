package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Observation is the current-conditions summary for a location.
type Observation struct {
	TempC     float64 `json:"temp_c"`
	Condition string  `json:"condition"`
}

// WeatherClient looks up current conditions for a location.
type WeatherClient interface {
	Current(ctx context.Context, location string) (Observation, error)
}

// OpenWeatherClient queries the OpenWeatherMap current-weather
// endpoint with metric units.
type OpenWeatherClient struct {
	APIKey  string
	BaseURL string
	Client  *http.Client
}

func NewOpenWeatherClient(apiKey, baseURL string, timeout time.Duration) *OpenWeatherClient {
	if baseURL == "" {
		baseURL = "https://api.openweathermap.org/data/2.5"
	}
	return &OpenWeatherClient{
		APIKey:  apiKey,
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: timeout},
	}
}

func (w *OpenWeatherClient) Current(ctx context.Context, location string) (Observation, error) {
	q := url.Values{}
	q.Set("q", location)
	q.Set("appid", w.APIKey)
	q.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, "GET", w.BaseURL+"/weather?"+q.Encode(), nil)
	if err != nil {
		return Observation{}, fmt.Errorf("failed to create request: %v", err)
	}

	resp, err := w.Client.Do(req)
	if err != nil {
		return Observation{}, fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Observation{}, fmt.Errorf("weather request failed: status code %d", resp.StatusCode)
	}

	var body struct {
		Main struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
		} `json:"weather"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Observation{}, fmt.Errorf("failed to decode weather response: %w", err)
	}
	if len(body.Weather) == 0 {
		return Observation{}, fmt.Errorf("weather response missing conditions")
	}

	return Observation{TempC: body.Main.Temp, Condition: body.Weather[0].Description}, nil
}
