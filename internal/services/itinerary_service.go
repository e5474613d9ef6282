package services

import (
	"context"
	"strings"

	"trippy/internal/catalog"
	"trippy/internal/models/request_models"
	"trippy/internal/models/response_models"
	"trippy/pkg/utils"
)

const specialtyCount = 5

var recognizedInterests = map[string]struct{}{
	"Food":       {},
	"Adventure":  {},
	"Culture":    {},
	"Nature":     {},
	"Shopping":   {},
	"History":    {},
	"Relaxation": {},
}

type ItineraryServiceInterface interface {
	BuildItinerary(ctx context.Context, req request_models.ItineraryRequest) (*response_models.ItineraryResponse, error)
}

// ItineraryService runs the resolver first, then each fetcher in turn,
// and finishes with the deterministic composer. Fetchers degrade to
// their own fallbacks, so past input validation nothing here fails.
type ItineraryService struct {
	geo     GeoServiceInterface
	weather WeatherServiceInterface
	places  PlacesServiceInterface
	food    FoodServiceInterface
	images  ImageServiceInterface
}

func NewItineraryService(
	geo GeoServiceInterface,
	weather WeatherServiceInterface,
	places PlacesServiceInterface,
	food FoodServiceInterface,
	images ImageServiceInterface,
) ItineraryServiceInterface {
	return &ItineraryService{
		geo:     geo,
		weather: weather,
		places:  places,
		food:    food,
		images:  images,
	}
}

func (s *ItineraryService) BuildItinerary(ctx context.Context, req request_models.ItineraryRequest) (*response_models.ItineraryResponse, error) {
	input := strings.TrimSpace(req.City)
	if input == "" {
		return nil, utils.ErrCityRequired
	}

	days := ClampDays(req.Days)
	interests := filterInterests(req.Interests)
	budget := normalizeBudget(req.Budget)

	city := s.geo.ResolveCity(ctx, input)
	weather := s.weather.CurrentWeather(ctx, city.Latitude, city.Longitude, city.Name)
	attractions := s.places.FetchAttractions(ctx, city.Latitude, city.Longitude, interests)
	restaurants := s.places.FetchRestaurants(ctx, city.Latitude, city.Longitude, city.Name, budget)
	specialties, specialtiesSource := s.food.LocalSpecialties(ctx, city.Name, city.Country, specialtyCount)
	description := s.images.Summary(ctx, city.Name)
	gallery, gallerySource := s.images.Gallery(ctx, city.Name, placeNames(attractions, galleryQueryCap))

	return &response_models.ItineraryResponse{
		City:              city,
		CityCorrected:     cityCorrected(input, city),
		Description:       description,
		Weather:           weather,
		Restaurants:       restaurants,
		Attractions:       attractions,
		Days:              ComposeDays(days, city.Name, attractions, restaurants, interests),
		LocalSpecialties:  specialtyNames(specialties),
		SpecialtiesSource: specialtiesSource,
		FamousLandmarks:   landmarks(city.Name, attractions),
		Gallery:           gallery,
		GallerySource:     gallerySource,
	}, nil
}

// cityCorrected reports whether the resolver changed the spelling: the
// input matches neither the resolved name nor the display name.
func cityCorrected(input string, city response_models.City) bool {
	return !strings.EqualFold(input, city.Name) && !strings.EqualFold(input, city.DisplayName)
}

func normalizeBudget(budget string) string {
	switch budget {
	case "Economy", "Standard", "Luxury":
		return budget
	}
	return "Standard"
}

func filterInterests(interests []string) []string {
	out := make([]string, 0, len(interests))
	for _, i := range interests {
		if _, ok := recognizedInterests[i]; ok {
			out = append(out, i)
		}
	}
	return out
}

func placeNames(places []response_models.Place, limit int) []string {
	names := make([]string, 0, limit)
	for _, p := range places {
		if len(names) == limit {
			break
		}
		names = append(names, p.Name)
	}
	return names
}

func specialtyNames(specialties []response_models.Specialty) []string {
	names := make([]string, 0, len(specialties))
	for _, s := range specialties {
		names = append(names, s.Name)
	}
	return names
}

func landmarks(city string, attractions []response_models.Place) []string {
	if len(attractions) > 0 {
		return placeNames(attractions, 5)
	}
	if d, ok := catalog.Lookup(city); ok {
		return d.Landmarks
	}
	return append([]string(nil), catalog.GenericLandmarks...)
}
