// Package controllers is the request router: it validates input shape,
// enforces the public/authenticated/admin tiers, and delegates to the
// store. Handlers never touch storage directly and always run checks in
// the order validate, authorize, persist.
package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bloomwellness/studio-api/middleware"
	"github.com/bloomwellness/studio-api/models"
	"github.com/bloomwellness/studio-api/utils"
)

// isAdmin reports whether the session role is admin. The admin check is
// identical for every admin-tier operation and always runs before any
// storage access.
func isAdmin(c *fiber.Ctx) bool {
	role, _ := c.Locals(middleware.LocalRole).(string)
	return role == models.RoleAdmin
}

// forbidden is the opaque access-denied reply; it leaks nothing about the
// requested resource.
func forbidden(c *fiber.Ctx) error {
	return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{
		Message: "Access denied",
	})
}

func badRequest(c *fiber.Ctx, msg string, err error) error {
	resp := utils.ErrorResponse{Message: msg}
	if err != nil {
		resp.Error = err.Error()
	}
	return c.Status(fiber.StatusBadRequest).JSON(resp)
}

func validationFailed(c *fiber.Ctx, fields map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
		Message: "Validation failed",
		Fields:  fields,
	})
}

func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{Message: msg})
}

func internalError(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{Message: msg})
}
