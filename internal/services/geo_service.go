package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"trippy/internal/infra"
	"trippy/internal/models/response_models"
	"trippy/pkg/memcache"
)

const defaultCityName = "Paris"

type GeoServiceInterface interface {
	// ResolveCity never fails: on any provider problem it returns a
	// record built from the raw input with nil coordinates.
	ResolveCity(ctx context.Context, query string) response_models.City
	// SearchCities keeps provider order, dedupes by display name and
	// returns an empty slice on blank input or provider failure.
	SearchCities(ctx context.Context, query string, limit int) []response_models.City
}

type GeoService struct {
	http    *http.Client
	baseURL string
	apiKey  string
	cache   memcache.CitySearchCache
}

func NewGeoService(cfg *infra.ProviderConfig, cache memcache.CitySearchCache) GeoServiceInterface {
	return &GeoService{
		http:    infra.NewHTTPClient(8 * time.Second),
		baseURL: cfg.GeoapifyBaseURL,
		apiKey:  cfg.GeoapifyKey,
		cache:   cache,
	}
}

func (g *GeoService) ResolveCity(ctx context.Context, query string) response_models.City {
	name := strings.TrimSpace(query)
	if name == "" {
		// Blank input goes straight to the synthetic default, never to
		// the geocoder.
		return response_models.City{Name: defaultCityName, DisplayName: defaultCityName}
	}

	candidates, err := g.geocode(ctx, name, 1)
	if err != nil || len(candidates) == 0 {
		if err != nil {
			log.Printf("Geocoding %q failed, using raw input: %v", name, err)
		}
		return response_models.City{Name: name, DisplayName: name}
	}

	return candidates[0]
}

func (g *GeoService) SearchCities(ctx context.Context, query string, limit int) []response_models.City {
	q := strings.TrimSpace(query)
	if q == "" {
		return []response_models.City{}
	}

	key := q + "|" + strconv.Itoa(limit)
	if cached, ok := g.cache.Get(key); ok {
		return cached
	}

	candidates, err := g.geocode(ctx, q, limit)
	if err != nil {
		log.Printf("City search %q failed: %v", q, err)
		return []response_models.City{}
	}

	seen := make(map[string]struct{}, len(candidates))
	cities := make([]response_models.City, 0, len(candidates))
	for _, c := range candidates {
		if _, dup := seen[c.DisplayName]; dup {
			continue
		}
		seen[c.DisplayName] = struct{}{}
		cities = append(cities, c)
		if len(cities) == limit {
			break
		}
	}

	g.cache.Set(key, cities)
	return cities
}

type geocodePayload struct {
	Features []struct {
		Properties struct {
			Name      string  `json:"name"`
			City      string  `json:"city"`
			State     string  `json:"state"`
			Country   string  `json:"country"`
			Lat       float64 `json:"lat"`
			Lon       float64 `json:"lon"`
			Formatted string  `json:"formatted"`
		} `json:"properties"`
	} `json:"features"`
}

func (g *GeoService) geocode(ctx context.Context, text string, limit int) ([]response_models.City, error) {
	u, err := url.Parse(g.baseURL + "/v1/geocode/search")
	if err != nil {
		return nil, fmt.Errorf("geoapify url: %w", err)
	}
	q := url.Values{}
	q.Set("text", text)
	q.Set("limit", strconv.Itoa(limit))
	q.Set("type", "city")
	q.Set("format", "geojson")
	q.Set("apiKey", g.apiKey)
	u.RawQuery = q.Encode()

	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	resp, err := g.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geoapify geocode http error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("geoapify geocode bad status: %s", resp.Status)
	}

	var payload geocodePayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("geoapify geocode decode: %w", err)
	}

	cities := make([]response_models.City, 0, len(payload.Features))
	for _, f := range payload.Features {
		p := f.Properties
		name := p.City
		if name == "" {
			name = p.Name
		}
		if name == "" {
			continue
		}
		lat, lon := p.Lat, p.Lon
		cities = append(cities, response_models.City{
			Name:        name,
			State:       p.State,
			Country:     p.Country,
			Latitude:    &lat,
			Longitude:   &lon,
			DisplayName: displayName(name, p.State, p.Country),
		})
	}
	return cities, nil
}

func displayName(city, state, country string) string {
	parts := []string{city}
	if state != "" {
		parts = append(parts, state)
	}
	if country != "" {
		parts = append(parts, country)
	}
	return strings.Join(parts, ", ")
}
