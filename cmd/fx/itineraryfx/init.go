package itineraryfx

import (
	"go.uber.org/fx"

	"trippy/internal/services"
)

var Module = fx.Provide(provideItineraryService)

func provideItineraryService(
	geo services.GeoServiceInterface,
	weather services.WeatherServiceInterface,
	places services.PlacesServiceInterface,
	food services.FoodServiceInterface,
	images services.ImageServiceInterface,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(geo, weather, places, food, images)
}
