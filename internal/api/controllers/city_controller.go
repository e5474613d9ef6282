package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"trippy/internal/catalog"
	"trippy/internal/models/response_models"
	"trippy/internal/services"
	"trippy/pkg/utils"
)

const (
	defaultSearchLimit = 8
	maxSearchLimit     = 20
)

type CityController struct {
	geoService services.GeoServiceInterface
}

func NewCityController(geoService services.GeoServiceInterface) *CityController {
	return &CityController{
		geoService: geoService,
	}
}

// SearchCities serves GET /city-search. A blank query is not an error:
// it yields an empty candidate list.
func (cc *CityController) SearchCities(c *gin.Context) {
	query := c.Query("q")

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultSearchLimit)))
	if err != nil || limit < 1 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	cities := cc.geoService.SearchCities(c.Request.Context(), query, limit)
	c.JSON(http.StatusOK, response_models.CitySearchResponse{
		Query:  strings.TrimSpace(query),
		Cities: cities,
	})
}

// ListDestinations serves GET /cities with the curated destination
// table.
func (cc *CityController) ListDestinations(c *gin.Context) {
	utils.RespondSuccess(c, catalog.All(), "Curated destinations fetched successfully")
}
