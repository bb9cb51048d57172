package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bloomwellness/studio-api/config"
	"github.com/bloomwellness/studio-api/controllers"
	"github.com/bloomwellness/studio-api/middleware"
	"github.com/bloomwellness/studio-api/store"
)

// SetupAuthRoutes configures all authentication related routes
func SetupAuthRoutes(app *fiber.App, cfg *config.Config, st store.Store) {
	ctl := controllers.NewAuthController(cfg, st)
	auth := app.Group("/api/auth")

	// Session is optional on /me: anonymous callers get null.
	auth.Get("/me", middleware.Session(cfg), ctl.Me)
	auth.Post("/callback", ctl.Callback)
	auth.Post("/logout", ctl.Logout)
}
