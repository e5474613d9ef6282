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

	"trippy/internal/catalog"
	"trippy/internal/infra"
	"trippy/internal/models/response_models"
	"trippy/pkg/utils"
)

const fallbackSpecialtyCount = 5

type FoodServiceInterface interface {
	// LocalSpecialties returns up to count dishes and the source of the
	// list. The fallback is deterministic per (city, country) pair.
	LocalSpecialties(ctx context.Context, city, country string, count int) ([]response_models.Specialty, string)
}

type FoodService struct {
	http    *http.Client
	baseURL string
	apiKey  string
}

func NewFoodService(cfg *infra.ProviderConfig) FoodServiceInterface {
	return &FoodService{
		http:    infra.NewHTTPClient(10 * time.Second),
		baseURL: cfg.SpoonacularBaseURL,
		apiKey:  cfg.SpoonacularKey,
	}
}

func (f *FoodService) LocalSpecialties(ctx context.Context, city, country string, count int) ([]response_models.Specialty, string) {
	specialties, err := f.search(ctx, city, country, count)
	if err != nil || len(specialties) == 0 {
		if err != nil {
			log.Printf("Specialties lookup for %q failed, using fallback pool: %v", city, err)
		}
		return fallbackSpecialties(city, country), response_models.ListSourceFallback
	}
	return specialties, response_models.ListSourceProvider
}

func (f *FoodService) search(ctx context.Context, city, country string, count int) ([]response_models.Specialty, error) {
	u, err := url.Parse(f.baseURL + "/recipes/complexSearch")
	if err != nil {
		return nil, fmt.Errorf("spoonacular url: %w", err)
	}
	q := url.Values{}
	q.Set("query", strings.TrimSpace(city+" "+country)+" local cuisine")
	q.Set("number", strconv.Itoa(count))
	q.Set("apiKey", f.apiKey)
	u.RawQuery = q.Encode()

	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	resp, err := f.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("spoonacular http error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("spoonacular bad status: %s", resp.Status)
	}

	var payload struct {
		Results []struct {
			Title string `json:"title"`
			Image string `json:"image"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("spoonacular decode: %w", err)
	}

	specialties := make([]response_models.Specialty, 0, len(payload.Results))
	for _, r := range payload.Results {
		if r.Title == "" {
			continue
		}
		specialties = append(specialties, response_models.Specialty{Name: r.Title, Image: r.Image})
	}
	return specialties, nil
}

// fallbackSpecialties samples the generic pool with a generator seeded
// from the destination key, so the same city always gets the same five
// dishes without mutating shared generator state.
func fallbackSpecialties(city, country string) []response_models.Specialty {
	r := utils.SeededRand(city + "-" + country)
	perm := r.Perm(len(catalog.GenericFoods))

	specialties := make([]response_models.Specialty, 0, fallbackSpecialtyCount)
	for _, idx := range perm[:fallbackSpecialtyCount] {
		specialties = append(specialties, response_models.Specialty{Name: catalog.GenericFoods[idx]})
	}
	return specialties
}
