package placesfx

import (
	"go.uber.org/fx"

	"trippy/internal/infra"
	"trippy/internal/services"
)

var Module = fx.Provide(providePlacesService)

func providePlacesService(cfg *infra.ProviderConfig) services.PlacesServiceInterface {
	return services.NewPlacesService(cfg)
}
