package geofx

import (
	"go.uber.org/fx"

	"trippy/internal/infra"
	"trippy/internal/services"
	"trippy/pkg/memcache"
)

var Module = fx.Provide(provideGeoService)

func provideGeoService(cfg *infra.ProviderConfig, cache memcache.CitySearchCache) services.GeoServiceInterface {
	return services.NewGeoService(cfg, cache)
}
