package cachefx

import (
	"time"

	"go.uber.org/fx"

	"trippy/pkg/memcache"
)

var Module = fx.Provide(provideCitySearchCache)

func provideCitySearchCache() memcache.CitySearchCache {
	return memcache.NewCitySearchCache(5 * time.Minute)
}
