package infra

import (
	"log"
	"net/http"
	"os"
	"time"
)

// ProviderConfig carries the external API endpoints and credentials.
// Read once at startup; base URLs are overridable so tests can point
// the clients at local fakes.
type ProviderConfig struct {
	GeoapifyBaseURL    string
	GeoapifyKey        string
	OpenWeatherBaseURL string
	OpenWeatherKey     string
	SpoonacularBaseURL string
	SpoonacularKey     string
	WikipediaBaseURL   string
}

func LoadProviderConfig() *ProviderConfig {
	cfg := &ProviderConfig{
		GeoapifyBaseURL:    envOr("GEOAPIFY_BASE_URL", "https://api.geoapify.com"),
		GeoapifyKey:        os.Getenv("GEOAPIFY_API_KEY"),
		OpenWeatherBaseURL: envOr("OPENWEATHER_BASE_URL", "https://api.openweathermap.org"),
		OpenWeatherKey:     os.Getenv("OPENWEATHER_API_KEY"),
		SpoonacularBaseURL: envOr("SPOONACULAR_BASE_URL", "https://api.spoonacular.com"),
		SpoonacularKey:     os.Getenv("SPOONACULAR_API_KEY"),
		WikipediaBaseURL:   envOr("WIKIPEDIA_BASE_URL", "https://en.wikipedia.org"),
	}

	if cfg.GeoapifyKey == "" {
		log.Println("GEOAPIFY_API_KEY is empty, geocoding and places will run on fallbacks")
	}
	if cfg.OpenWeatherKey == "" {
		log.Println("OPENWEATHER_API_KEY is empty, weather will run on fallbacks")
	}
	if cfg.SpoonacularKey == "" {
		log.Println("SPOONACULAR_API_KEY is empty, local specialties will run on fallbacks")
	}

	return cfg
}

func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
