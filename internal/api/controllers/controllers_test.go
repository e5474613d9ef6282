package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trippy/internal/infra"
	"trippy/internal/models/request_models"
	"trippy/internal/models/response_models"
	"trippy/pkg/middleware"
	"trippy/pkg/utils"
)

type stubGeoService struct {
	cities []response_models.City
}

func (s *stubGeoService) ResolveCity(_ context.Context, query string) response_models.City {
	return response_models.City{Name: query, DisplayName: query}
}

func (s *stubGeoService) SearchCities(_ context.Context, query string, limit int) []response_models.City {
	if len(s.cities) > limit {
		return s.cities[:limit]
	}
	return s.cities
}

type stubItineraryService struct {
	resp *response_models.ItineraryResponse
	err  error
}

func (s *stubItineraryService) BuildItinerary(_ context.Context, _ request_models.ItineraryRequest) (*response_models.ItineraryResponse, error) {
	return s.resp, s.err
}

func newTestRouter(geo *stubGeoService, itinerary *stubItineraryService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())

	cityController := NewCityController(geo)
	itineraryController := NewItineraryController(itinerary)
	systemController := NewSystemController(&infra.ProviderConfig{GeoapifyKey: "k"})

	r.GET("/city-search", cityController.SearchCities)
	r.POST("/itinerary", itineraryController.GenerateItinerary)
	r.GET("/cities", cityController.ListDestinations)
	r.GET("/health", systemController.Health)
	r.GET("/test", systemController.Test)
	return r
}

func TestCitySearchReturnsCandidates(t *testing.T) {
	geo := &stubGeoService{cities: []response_models.City{
		{Name: "Paris", Country: "France", DisplayName: "Paris, France"},
	}}
	router := newTestRouter(geo, &stubItineraryService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/city-search?q=paris&limit=5", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body response_models.CitySearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "paris", body.Query)
	require.Len(t, body.Cities, 1)
	assert.Equal(t, "Paris, France", body.Cities[0].DisplayName)
}

func TestCitySearchBlankQueryIsNotAnError(t *testing.T) {
	router := newTestRouter(&stubGeoService{}, &stubItineraryService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/city-search", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGenerateItineraryMissingCityReturns400(t *testing.T) {
	router := newTestRouter(&stubGeoService{}, &stubItineraryService{err: utils.ErrCityRequired})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/itinerary", bytes.NewBufferString(`{"days":3}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var body utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "error", body.Status)
	assert.NotEmpty(t, body.TraceID)
}

func TestGenerateItineraryMalformedBodyReturns400(t *testing.T) {
	router := newTestRouter(&stubGeoService{}, &stubItineraryService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/itinerary", bytes.NewBufferString(`{"days":"five"`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateItineraryReturnsPayload(t *testing.T) {
	resp := &response_models.ItineraryResponse{
		City:          response_models.City{Name: "Goa", DisplayName: "Goa, India"},
		CityCorrected: false,
		Days:          []response_models.DayPlan{{Day: 1, Morning: "m", Lunch: "l", Afternoon: "a", Evening: "e"}},
	}
	router := newTestRouter(&stubGeoService{}, &stubItineraryService{resp: resp})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/itinerary", bytes.NewBufferString(`{"city":"Goa","days":1}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body response_models.ItineraryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Goa", body.City.Name)
	require.Len(t, body.Days, 1)
	assert.Equal(t, 1, body.Days[0].Day)
}

func TestHealthAndTestEndpoints(t *testing.T) {
	router := newTestRouter(&stubGeoService{}, &stubItineraryService{})

	for _, path := range []string{"/health", "/test", "/cities"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}
