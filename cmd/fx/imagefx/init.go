package imagefx

import (
	"go.uber.org/fx"

	"trippy/internal/infra"
	"trippy/internal/services"
)

var Module = fx.Provide(provideImageService)

func provideImageService(cfg *infra.ProviderConfig) services.ImageServiceInterface {
	return services.NewImageService(cfg)
}
