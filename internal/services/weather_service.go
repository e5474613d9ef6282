package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"math/rand"
	"net/http"
	"net/url"
	"time"

	"trippy/internal/infra"
	"trippy/internal/models/response_models"
)

var placeholderConditions = []string{
	"clear sky",
	"few clouds",
	"scattered clouds",
	"partly cloudy",
	"light breeze",
}

type WeatherServiceInterface interface {
	// CurrentWeather prefers coordinates and falls back to a name
	// lookup. It never fails: provider problems yield a generated
	// snapshot marked with Source = "generated".
	CurrentWeather(ctx context.Context, lat, lon *float64, city string) response_models.WeatherSnapshot
}

type WeatherService struct {
	http    *http.Client
	baseURL string
	apiKey  string
}

func NewWeatherService(cfg *infra.ProviderConfig) WeatherServiceInterface {
	return &WeatherService{
		http:    infra.NewHTTPClient(8 * time.Second),
		baseURL: cfg.OpenWeatherBaseURL,
		apiKey:  cfg.OpenWeatherKey,
	}
}

func (w *WeatherService) CurrentWeather(ctx context.Context, lat, lon *float64, city string) response_models.WeatherSnapshot {
	snapshot, err := w.fetch(ctx, lat, lon, city)
	if err != nil {
		log.Printf("Weather lookup for %q failed, generating placeholder: %v", city, err)
		return generatedSnapshot()
	}
	return snapshot
}

func (w *WeatherService) fetch(ctx context.Context, lat, lon *float64, city string) (response_models.WeatherSnapshot, error) {
	u, err := url.Parse(w.baseURL + "/data/2.5/weather")
	if err != nil {
		return response_models.WeatherSnapshot{}, fmt.Errorf("openweather url: %w", err)
	}
	q := url.Values{}
	if lat != nil && lon != nil {
		q.Set("lat", fmt.Sprintf("%f", *lat))
		q.Set("lon", fmt.Sprintf("%f", *lon))
	} else {
		q.Set("q", city)
	}
	q.Set("units", "metric")
	q.Set("appid", w.apiKey)
	u.RawQuery = q.Encode()

	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	resp, err := w.http.Do(req)
	if err != nil {
		return response_models.WeatherSnapshot{}, fmt.Errorf("openweather http error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return response_models.WeatherSnapshot{}, fmt.Errorf("openweather bad status: %s", resp.Status)
	}

	var payload struct {
		Main struct {
			Temp     float64 `json:"temp"`
			Humidity int     `json:"humidity"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
		} `json:"weather"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return response_models.WeatherSnapshot{}, fmt.Errorf("openweather decode: %w", err)
	}
	if len(payload.Weather) == 0 {
		return response_models.WeatherSnapshot{}, fmt.Errorf("openweather empty conditions")
	}

	return response_models.WeatherSnapshot{
		Temperature: roundOne(payload.Main.Temp),
		Conditions:  payload.Weather[0].Description,
		Humidity:    payload.Main.Humidity,
		Source:      response_models.WeatherSourceProvider,
	}, nil
}

// generatedSnapshot stays within plausible ranges: 15-32 °C, 35-85 %.
func generatedSnapshot() response_models.WeatherSnapshot {
	return response_models.WeatherSnapshot{
		Temperature: roundOne(15 + rand.Float64()*17),
		Conditions:  placeholderConditions[rand.Intn(len(placeholderConditions))],
		Humidity:    35 + rand.Intn(51),
		Source:      response_models.WeatherSourceGenerated,
	}
}

func roundOne(v float64) float64 {
	return math.Round(v*10) / 10
}
