package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"trippy/cmd/fx/cachefx"
	"trippy/cmd/fx/controllersfx"
	"trippy/cmd/fx/foodfx"
	"trippy/cmd/fx/geofx"
	"trippy/cmd/fx/imagefx"
	"trippy/cmd/fx/itineraryfx"
	"trippy/cmd/fx/placesfx"
	"trippy/cmd/fx/weatherfx"
	"trippy/internal/api/controllers"
	"trippy/internal/infra"
	"trippy/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from the environment")
	}

	app := fx.New(
		fx.Provide(infra.LoadProviderConfig),
		cachefx.Module,
		geofx.Module,
		weatherfx.Module,
		placesfx.Module,
		foodfx.Module,
		imagefx.Module,
		itineraryfx.Module,
		controllersfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			port := os.Getenv("PORT")
			if port == "" {
				port = "5000"
			}
			go func() {
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	cityController *controllers.CityController,
	itineraryController *controllers.ItineraryController,
	systemController *controllers.SystemController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, cityController, itineraryController, systemController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	cityController *controllers.CityController,
	itineraryController *controllers.ItineraryController,
	systemController *controllers.SystemController) {

	r.GET("/city-search", cityController.SearchCities)
	r.POST("/itinerary", itineraryController.GenerateItinerary)

	r.GET("/cities", cityController.ListDestinations)
	r.GET("/health", systemController.Health)
	r.GET("/test", systemController.Test)
}
