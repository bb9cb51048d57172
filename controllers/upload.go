package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/bloomwellness/studio-api/config"
	"github.com/bloomwellness/studio-api/utils"
)

type UploadController struct {
	Cfg *config.Config
}

func NewUploadController(cfg *config.Config) *UploadController {
	return &UploadController{Cfg: cfg}
}

// Upload receives a multipart image, pushes it to Cloudinary and returns
// the secure URL for use as a blog post's featured image. Admin only;
// never touches the database.
func (ctl *UploadController) Upload(c *fiber.Ctx) error {
	header, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "Missing file", err)
	}

	if !isAdmin(c) {
		return forbidden(c)
	}

	file, err := header.Open()
	if err != nil {
		return badRequest(c, "Cannot read file", err)
	}
	defer file.Close()

	url, err := utils.UploadImage(ctl.Cfg, file, uuid.NewString(), "blog")
	if err != nil {
		return internalError(c, "Failed to upload image")
	}
	return c.JSON(fiber.Map{"url": url})
}
