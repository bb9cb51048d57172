package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	log "github.com/sirupsen/logrus"

	"github.com/bloomwellness/studio-api/cache"
	"github.com/bloomwellness/studio-api/config"
	"github.com/bloomwellness/studio-api/db"
	"github.com/bloomwellness/studio-api/routes"
	"github.com/bloomwellness/studio-api/store"
)

func main() {
	cfg := config.Load()

	handle := db.New(cfg.DatabaseURL)
	if err := db.Migrate(handle); err != nil {
		log.WithError(err).Fatal("Failed to run migrations")
	}
	if _, ok := handle.Get(); !ok {
		log.Warn("No database configured, running in degraded mode")
	}

	st := store.New(handle, cfg.OwnerOpenID)
	ch := cache.New(cfg.RedisAddr)

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowCredentials: cfg.AllowOrigins != "*",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	routes.SetupAuthRoutes(app, cfg, st)
	routes.SetupAppointmentRoutes(app, cfg, st)
	routes.SetupBlogRoutes(app, cfg, st, ch)
	routes.SetupContactRoutes(app, cfg, st)
	routes.SetupUploadRoutes(app, cfg)

	log.Infof("Server starting on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("Server stopped")
	}
}
