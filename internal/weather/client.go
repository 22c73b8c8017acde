package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"booking-engine/internal/pkg/config"
	"booking-engine/internal/pkg/errs"
)

// Advisory is an actionable weather warning for the configured city. Empty
// Reason means conditions are fine and nobody gets messaged.
type Advisory struct {
	Reason    string
	Condition string
	TempC     float64
}

// Provider resolves the current conditions into at most one advisory.
type Provider interface {
	CurrentAdvisory(ctx context.Context) (*Advisory, error)
}

const (
	hotThresholdC  = 35.0
	coldThresholdC = 5.0
)

// Client talks to the OpenWeatherMap current weather endpoint.
type Client struct {
	cfg  config.WeatherConfig
	http *http.Client
}

func NewClient(cfg config.WeatherConfig) *Client {
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}
}

type currentWeather struct {
	Weather []struct {
		Main string `json:"main"`
	} `json:"weather"`
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
}

func (c *Client) CurrentAdvisory(ctx context.Context) (*Advisory, error) {
	if c.cfg.APIKey == "" {
		return nil, nil
	}

	q := url.Values{}
	q.Set("q", c.cfg.City)
	q.Set("appid", c.cfg.APIKey)
	q.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build weather request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errs.Wrap(err, "weather request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, errs.New(fmt.Sprintf("weather api returned %d: %s", resp.StatusCode, string(body)))
	}

	var cw currentWeather
	if err := json.NewDecoder(resp.Body).Decode(&cw); err != nil {
		return nil, errs.Wrap(err, "failed to decode weather response")
	}

	condition := ""
	if len(cw.Weather) > 0 {
		condition = cw.Weather[0].Main
	}
	return Evaluate(condition, cw.Main.Temp), nil
}

// Evaluate applies the advisory rules to a condition and temperature.
// Precipitation wins over temperature when both apply.
func Evaluate(condition string, tempC float64) *Advisory {
	lc := strings.ToLower(condition)
	switch {
	case strings.Contains(lc, "thunder") || strings.Contains(lc, "storm"):
		return &Advisory{
			Reason:    fmt.Sprintf("a storm is expected (%s), please plan extra travel time", condition),
			Condition: condition,
			TempC:     tempC,
		}
	case strings.Contains(lc, "rain") || strings.Contains(lc, "drizzle"):
		return &Advisory{
			Reason:    fmt.Sprintf("rain is expected (%s), please plan extra travel time", condition),
			Condition: condition,
			TempC:     tempC,
		}
	case tempC > hotThresholdC:
		return &Advisory{
			Reason:    fmt.Sprintf("extreme heat is expected (%.0f°C), please stay hydrated", tempC),
			Condition: condition,
			TempC:     tempC,
		}
	case tempC < coldThresholdC:
		return &Advisory{
			Reason:    fmt.Sprintf("very cold weather is expected (%.0f°C), please dress warmly", tempC),
			Condition: condition,
			TempC:     tempC,
		}
	default:
		return nil
	}
}
