package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trippy/internal/models/request_models"
	"trippy/internal/services"
	"trippy/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

// GenerateItinerary serves POST /itinerary. Out-of-range days, unknown
// budgets and unrecognized interests are clamped or dropped by the
// service; only a missing city is rejected.
func (ic *ItineraryController) GenerateItinerary(c *gin.Context) {
	var req request_models.ItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	itinerary, err := ic.itineraryService.BuildItinerary(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, itinerary)
}
