package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"trippy/internal/catalog"
	"trippy/internal/infra"
	"trippy/internal/models/response_models"
	"trippy/pkg/utils"
)

const (
	attractionLimit  = 15
	restaurantLimit  = 10
	attractionRadius = 10000
	restaurantRadius = 8000
)

// interestCategories maps the recognized interest vocabulary onto
// Geoapify place categories. Unrecognized interests fall through.
var interestCategories = map[string][]string{
	"Food":       {"catering.restaurant", "catering.cafe"},
	"Adventure":  {"sport", "activity"},
	"Culture":    {"tourism.sights", "entertainment.culture", "religion"},
	"Nature":     {"natural", "national_park"},
	"Shopping":   {"commercial"},
	"History":    {"heritage", "tourism.attraction"},
	"Relaxation": {"leisure.spa", "beach"},
}

var defaultCategories = []string{"tourism.sights", "tourism.attraction"}

// budgetTierPools drives the fabricated restaurant price tiers. The
// draw is intentionally random per request; only the pool is fixed.
var budgetTierPools = map[string][]string{
	"Economy":  {"$", "$$"},
	"Standard": {"$$", "$$$"},
	"Luxury":   {"$$$", "$$$$"},
}

type PlacesServiceInterface interface {
	// FetchAttractions returns an empty slice on nil coordinates or
	// provider failure; there is no fallback content for places.
	FetchAttractions(ctx context.Context, lat, lon *float64, interests []string) []response_models.Place
	// FetchRestaurants adds a fabricated price tier and rating to each
	// result; both are flagged Estimated.
	FetchRestaurants(ctx context.Context, lat, lon *float64, city, budget string) []response_models.Place
}

type PlacesService struct {
	http    *http.Client
	baseURL string
	apiKey  string
}

func NewPlacesService(cfg *infra.ProviderConfig) PlacesServiceInterface {
	return &PlacesService{
		http:    infra.NewHTTPClient(10 * time.Second),
		baseURL: cfg.GeoapifyBaseURL,
		apiKey:  cfg.GeoapifyKey,
	}
}

func (p *PlacesService) FetchAttractions(ctx context.Context, lat, lon *float64, interests []string) []response_models.Place {
	categories := categoriesFor(interests)
	return p.fetch(ctx, lat, lon, categories, attractionLimit, attractionRadius)
}

func (p *PlacesService) FetchRestaurants(ctx context.Context, lat, lon *float64, city, budget string) []response_models.Place {
	restaurants := p.fetch(ctx, lat, lon, []string{"catering.restaurant"}, restaurantLimit, restaurantRadius)

	pool, ok := budgetTierPools[budget]
	if !ok {
		pool = budgetTierPools["Standard"]
	}
	foods := foodsFor(city)

	for i := range restaurants {
		restaurants[i].PriceTier = pool[rand.Intn(len(pool))]
		restaurants[i].Rating = roundOne(3.7 + rand.Float64()*1.2)
		restaurants[i].Estimated = true
		if len(foods) > 0 {
			restaurants[i].Specialty = foods[utils.SeededRand(restaurants[i].Name).Intn(len(foods))]
		}
	}
	return restaurants
}

type placesPayload struct {
	Features []struct {
		Properties struct {
			Name       string   `json:"name"`
			Formatted  string   `json:"formatted"`
			Distance   *int     `json:"distance"`
			PlaceID    string   `json:"place_id"`
			Categories []string `json:"categories"`
		} `json:"properties"`
	} `json:"features"`
}

func (p *PlacesService) fetch(ctx context.Context, lat, lon *float64, categories []string, limit, radius int) []response_models.Place {
	if lat == nil || lon == nil {
		return []response_models.Place{}
	}

	places, err := p.query(ctx, *lat, *lon, categories, limit, radius)
	if err != nil {
		log.Printf("Places lookup failed: %v", err)
		return []response_models.Place{}
	}
	return places
}

func (p *PlacesService) query(ctx context.Context, lat, lon float64, categories []string, limit, radius int) ([]response_models.Place, error) {
	u, err := url.Parse(p.baseURL + "/v2/places")
	if err != nil {
		return nil, fmt.Errorf("geoapify url: %w", err)
	}
	q := url.Values{}
	q.Set("categories", strings.Join(categories, ","))
	q.Set("filter", fmt.Sprintf("circle:%f,%f,%d", lon, lat, radius))
	q.Set("bias", fmt.Sprintf("proximity:%f,%f", lon, lat))
	q.Set("limit", strconv.Itoa(limit))
	q.Set("apiKey", p.apiKey)
	u.RawQuery = q.Encode()

	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	resp, err := p.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geoapify places http error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("geoapify places bad status: %s", resp.Status)
	}

	var payload placesPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("geoapify places decode: %w", err)
	}

	seen := make(map[string]struct{}, len(payload.Features))
	places := make([]response_models.Place, 0, len(payload.Features))
	for _, f := range payload.Features {
		prop := f.Properties
		if prop.Name == "" {
			continue
		}
		if _, dup := seen[prop.Name]; dup {
			continue
		}
		seen[prop.Name] = struct{}{}

		category := "tourism"
		if len(prop.Categories) > 0 {
			category = prop.Categories[0]
		}
		places = append(places, response_models.Place{
			Name:      prop.Name,
			Category:  category,
			Address:   prop.Formatted,
			DistanceM: prop.Distance,
			PlaceID:   prop.PlaceID,
		})
	}

	// Ascending by distance; entries without one keep their order at
	// the tail.
	sort.SliceStable(places, func(i, j int) bool {
		di, dj := places[i].DistanceM, places[j].DistanceM
		if di == nil {
			return false
		}
		if dj == nil {
			return true
		}
		return *di < *dj
	})

	if len(places) > limit {
		places = places[:limit]
	}
	return places, nil
}

func categoriesFor(interests []string) []string {
	seen := make(map[string]struct{})
	categories := make([]string, 0, 4)
	for _, interest := range interests {
		for _, c := range interestCategories[interest] {
			if _, dup := seen[c]; dup {
				continue
			}
			seen[c] = struct{}{}
			categories = append(categories, c)
		}
	}
	if len(categories) == 0 {
		return defaultCategories
	}
	return categories
}

func foodsFor(city string) []string {
	if d, ok := catalog.Lookup(city); ok {
		return d.Foods
	}
	return nil
}
