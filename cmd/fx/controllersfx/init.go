package controllersfx

import (
	"go.uber.org/fx"

	"trippy/internal/api/controllers"
)

var Module = fx.Provide(
	controllers.NewCityController,
	controllers.NewItineraryController,
	controllers.NewSystemController,
)
