package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bloomwellness/studio-api/config"
	"github.com/bloomwellness/studio-api/controllers"
	"github.com/bloomwellness/studio-api/middleware"
	"github.com/bloomwellness/studio-api/store"
)

// SetupContactRoutes configures all contact form related routes
func SetupContactRoutes(app *fiber.App, cfg *config.Config, st store.Store) {
	ctl := controllers.NewContactController(cfg, st)
	contact := app.Group("/api/contact")

	contact.Post("/", ctl.Submit)
	contact.Get("/", middleware.Protected(cfg), ctl.List)
	contact.Patch("/:id/read", middleware.Protected(cfg), ctl.MarkAsRead)
}
