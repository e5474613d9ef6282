package foodfx

import (
	"go.uber.org/fx"

	"trippy/internal/infra"
	"trippy/internal/services"
)

var Module = fx.Provide(provideFoodService)

func provideFoodService(cfg *infra.ProviderConfig) services.FoodServiceInterface {
	return services.NewFoodService(cfg)
}
