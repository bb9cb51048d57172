package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/bloomwellness/studio-api/config"
	"github.com/bloomwellness/studio-api/store"
	"github.com/bloomwellness/studio-api/utils"
)

type ContactController struct {
	Cfg   *config.Config
	Store store.Store
}

func NewContactController(cfg *config.Config, st store.Store) *ContactController {
	return &ContactController{Cfg: cfg, Store: st}
}

type contactSubmitRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Message string `json:"message" validate:"required"`
}

// Submit godoc
// @Summary Submit the contact form
// @Tags contact
// @Accept json
// @Produce json
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/contact [post]
func (ctl *ContactController) Submit(c *fiber.Ctx) error {
	req := new(contactSubmitRequest)
	if err := c.BodyParser(req); err != nil {
		return badRequest(c, "Cannot parse JSON", err)
	}
	if fields := utils.ValidateStruct(req); fields != nil {
		return validationFailed(c, fields)
	}

	submission, err := ctl.Store.CreateContactSubmission(store.NewContactSubmission{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	})
	if err != nil || submission == nil {
		return internalError(c, "Failed to submit message")
	}

	utils.Notify(ctl.Cfg, "New contact message",
		fmt.Sprintf("<p>%s (%s) wrote:</p><p>%s</p>",
			submission.Name, submission.Email, submission.Message))

	return c.JSON(fiber.Map{"success": true, "id": submission.ID})
}

// List returns all submissions, newest first. Admin only.
func (ctl *ContactController) List(c *fiber.Ctx) error {
	if !isAdmin(c) {
		return forbidden(c)
	}

	submissions, err := ctl.Store.GetContactSubmissions()
	if err != nil {
		return internalError(c, "Failed to fetch submissions")
	}
	return c.JSON(submissions)
}

// MarkAsRead flags a submission as read. Idempotent; the flag never
// reverts. Admin only.
func (ctl *ContactController) MarkAsRead(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return badRequest(c, "Invalid submission id", err)
	}

	if !isAdmin(c) {
		return forbidden(c)
	}

	marked, err := ctl.Store.MarkContactSubmissionAsRead(uint(id))
	if err != nil {
		return internalError(c, "Failed to mark submission as read")
	}
	if !marked {
		return notFound(c, "Submission not found")
	}
	return c.JSON(fiber.Map{"success": true})
}
