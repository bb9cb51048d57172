package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bloomwellness/studio-api/config"
	"github.com/bloomwellness/studio-api/controllers"
	"github.com/bloomwellness/studio-api/middleware"
)

// SetupUploadRoutes configures the featured-image upload route
func SetupUploadRoutes(app *fiber.App, cfg *config.Config) {
	ctl := controllers.NewUploadController(cfg)
	app.Post("/api/uploads", middleware.Protected(cfg), ctl.Upload)
}
