package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bloomwellness/studio-api/config"
	"github.com/bloomwellness/studio-api/controllers"
	"github.com/bloomwellness/studio-api/middleware"
	"github.com/bloomwellness/studio-api/store"
)

// SetupAppointmentRoutes configures all appointment related routes
func SetupAppointmentRoutes(app *fiber.App, cfg *config.Config, st store.Store) {
	ctl := controllers.NewAppointmentController(cfg, st)
	appointment := app.Group("/api/appointments")

	appointment.Post("/", ctl.Create)
	appointment.Get("/", middleware.Protected(cfg), ctl.List)
	appointment.Patch("/:id/status", middleware.Protected(cfg), ctl.UpdateStatus)
}
