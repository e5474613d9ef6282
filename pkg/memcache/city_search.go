package memcache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"trippy/internal/models/response_models"
)

// CitySearchCache memoizes disambiguation lookups for a short window so
// repeated keystroke searches for the same text do not hit the geocoder.
type CitySearchCache interface {
	Get(key string) ([]response_models.City, bool)
	Set(key string, cities []response_models.City)
}

type citySearchCache struct {
	store *gocache.Cache
}

func NewCitySearchCache(ttl time.Duration) CitySearchCache {
	return &citySearchCache{
		store: gocache.New(ttl, 2*ttl),
	}
}

func (s *citySearchCache) Get(key string) ([]response_models.City, bool) {
	v, ok := s.store.Get(key)
	if !ok {
		return nil, false
	}
	cities, ok := v.([]response_models.City)
	return cities, ok
}

func (s *citySearchCache) Set(key string, cities []response_models.City) {
	s.store.SetDefault(key, cities)
}
