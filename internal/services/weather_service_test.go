package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"trippy/internal/infra"
	"trippy/internal/models/response_models"
)

func newWeatherService(baseURL string) WeatherServiceInterface {
	return NewWeatherService(&infra.ProviderConfig{OpenWeatherBaseURL: baseURL, OpenWeatherKey: "test-key"})
}

func TestCurrentWeatherPrefersCoordinates(t *testing.T) {
	var query map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Write([]byte(`{"main":{"temp":21.37,"humidity":60},"weather":[{"description":"light rain"}]}`))
	}))
	defer srv.Close()

	lat, lon := 48.85, 2.35
	snapshot := newWeatherService(srv.URL).CurrentWeather(context.Background(), &lat, &lon, "Paris")

	assert.NotEmpty(t, query["lat"])
	assert.NotEmpty(t, query["lon"])
	assert.Empty(t, query["q"])
	assert.Equal(t, 21.4, snapshot.Temperature)
	assert.Equal(t, "light rain", snapshot.Conditions)
	assert.Equal(t, 60, snapshot.Humidity)
	assert.Equal(t, response_models.WeatherSourceProvider, snapshot.Source)
}

func TestCurrentWeatherFallsBackToNameLookup(t *testing.T) {
	var query map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Write([]byte(`{"main":{"temp":28.0,"humidity":70},"weather":[{"description":"clear sky"}]}`))
	}))
	defer srv.Close()

	snapshot := newWeatherService(srv.URL).CurrentWeather(context.Background(), nil, nil, "Goa")

	assert.Equal(t, []string{"Goa"}, query["q"])
	assert.Equal(t, response_models.WeatherSourceProvider, snapshot.Source)
}

func TestCurrentWeatherGeneratesPlausiblePlaceholder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	svc := newWeatherService(srv.URL)
	for i := 0; i < 20; i++ {
		snapshot := svc.CurrentWeather(context.Background(), nil, nil, "Nowhere")

		assert.Equal(t, response_models.WeatherSourceGenerated, snapshot.Source)
		assert.GreaterOrEqual(t, snapshot.Temperature, 15.0)
		assert.LessOrEqual(t, snapshot.Temperature, 32.0)
		assert.GreaterOrEqual(t, snapshot.Humidity, 35)
		assert.LessOrEqual(t, snapshot.Humidity, 85)
		assert.NotEmpty(t, snapshot.Conditions)
	}
}

func TestCurrentWeatherMalformedBodyFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"cod":401,"message":"Invalid API key`))
	}))
	defer srv.Close()

	snapshot := newWeatherService(srv.URL).CurrentWeather(context.Background(), nil, nil, "Paris")

	assert.Equal(t, response_models.WeatherSourceGenerated, snapshot.Source)
}
