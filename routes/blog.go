package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bloomwellness/studio-api/cache"
	"github.com/bloomwellness/studio-api/config"
	"github.com/bloomwellness/studio-api/controllers"
	"github.com/bloomwellness/studio-api/middleware"
	"github.com/bloomwellness/studio-api/store"
)

// SetupBlogRoutes configures all blog related routes
func SetupBlogRoutes(app *fiber.App, cfg *config.Config, st store.Store, ch *cache.Cache) {
	ctl := controllers.NewBlogController(cfg, st, ch)
	blog := app.Group("/api/blog")

	blog.Get("/posts", ctl.List)
	blog.Get("/posts/:slug", ctl.GetBySlug)
	blog.Get("/admin/posts", middleware.Protected(cfg), ctl.AllPosts)
	blog.Post("/posts", middleware.Protected(cfg), ctl.Create)
	blog.Patch("/posts/:id", middleware.Protected(cfg), ctl.Update)
	blog.Delete("/posts/:id", middleware.Protected(cfg), ctl.Delete)
}
