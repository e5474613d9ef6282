package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"trippy/internal/infra"
)

type SystemController struct {
	cfg *infra.ProviderConfig
}

func NewSystemController(cfg *infra.ProviderConfig) *SystemController {
	return &SystemController{cfg: cfg}
}

func (sc *SystemController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "trippy",
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}

// Test reports which providers are configured, without echoing keys.
func (sc *SystemController) Test(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "trippy",
		"providers": gin.H{
			"geoapify":    sc.cfg.GeoapifyKey != "",
			"openweather": sc.cfg.OpenWeatherKey != "",
			"spoonacular": sc.cfg.SpoonacularKey != "",
			"wikipedia":   true,
		},
	})
}
