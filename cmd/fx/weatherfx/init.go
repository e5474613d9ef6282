package weatherfx

import (
	"go.uber.org/fx"

	"trippy/internal/infra"
	"trippy/internal/services"
)

var Module = fx.Provide(provideWeatherService)

func provideWeatherService(cfg *infra.ProviderConfig) services.WeatherServiceInterface {
	return services.NewWeatherService(cfg)
}
