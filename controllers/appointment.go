package controllers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/bloomwellness/studio-api/config"
	"github.com/bloomwellness/studio-api/models"
	"github.com/bloomwellness/studio-api/store"
	"github.com/bloomwellness/studio-api/utils"
)

type AppointmentController struct {
	Cfg   *config.Config
	Store store.Store
}

func NewAppointmentController(cfg *config.Config, st store.Store) *AppointmentController {
	return &AppointmentController{Cfg: cfg, Store: st}
}

type createAppointmentRequest struct {
	ClientName      string    `json:"clientName" validate:"required"`
	ClientEmail     string    `json:"clientEmail" validate:"required,email"`
	ClientPhone     string    `json:"clientPhone" validate:"required"`
	ServiceType     string    `json:"serviceType" validate:"required"`
	AppointmentDate time.Time `json:"appointmentDate" validate:"required"`
	Duration        int       `json:"duration" validate:"required,min=15"`
	Notes           string    `json:"notes"`
}

// Create godoc
// @Summary Book an appointment
// @Description Public booking form submission; new appointments always start pending
// @Tags appointments
// @Accept json
// @Produce json
// @Success 201 {object} models.Appointment
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/appointments [post]
func (ctl *AppointmentController) Create(c *fiber.Ctx) error {
	req := new(createAppointmentRequest)
	if err := c.BodyParser(req); err != nil {
		return badRequest(c, "Cannot parse JSON", err)
	}
	if fields := utils.ValidateStruct(req); fields != nil {
		return validationFailed(c, fields)
	}

	appointment, err := ctl.Store.CreateAppointment(store.NewAppointment{
		ClientName:      req.ClientName,
		ClientEmail:     req.ClientEmail,
		ClientPhone:     req.ClientPhone,
		ServiceType:     req.ServiceType,
		AppointmentDate: req.AppointmentDate,
		Duration:        req.Duration,
		Notes:           req.Notes,
	})
	if err != nil || appointment == nil {
		return internalError(c, "Failed to create appointment")
	}

	utils.Notify(ctl.Cfg, "New booking request",
		fmt.Sprintf("<p>%s booked %s on %s.</p>",
			appointment.ClientName, appointment.ServiceType,
			appointment.AppointmentDate.Format(time.RFC1123)))

	return c.Status(fiber.StatusCreated).JSON(appointment)
}

// List godoc
// @Summary List appointments
// @Description Admin listing with optional status and date-range filters
// @Tags appointments
// @Produce json
// @Success 200 {array} models.Appointment
// @Failure 403 {object} utils.ErrorResponse
// @Router /api/appointments [get]
func (ctl *AppointmentController) List(c *fiber.Ctx) error {
	filters := store.AppointmentFilters{Status: c.Query("status")}
	if raw := c.Query("startDate"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return badRequest(c, "Invalid startDate", err)
		}
		filters.StartDate = &t
	}
	if raw := c.Query("endDate"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return badRequest(c, "Invalid endDate", err)
		}
		filters.EndDate = &t
	}

	if !isAdmin(c) {
		return forbidden(c)
	}

	appointments, err := ctl.Store.GetAppointments(filters)
	if err != nil {
		return internalError(c, "Failed to fetch appointments")
	}
	return c.JSON(appointments)
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
}

// UpdateStatus godoc
// @Summary Update an appointment's status
// @Tags appointments
// @Accept json
// @Produce json
// @Param id path int true "Appointment ID"
// @Success 200 {object} models.Appointment
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/appointments/{id}/status [patch]
func (ctl *AppointmentController) UpdateStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return badRequest(c, "Invalid appointment id", err)
	}
	req := new(updateStatusRequest)
	if err := c.BodyParser(req); err != nil {
		return badRequest(c, "Cannot parse JSON", err)
	}
	if fields := utils.ValidateStruct(req); fields != nil {
		return validationFailed(c, fields)
	}

	if !isAdmin(c) {
		return forbidden(c)
	}

	updated, err := ctl.Store.UpdateAppointmentStatus(uint(id), models.AppointmentStatus(req.Status))
	if err != nil {
		return internalError(c, "Failed to update appointment")
	}
	if updated == nil {
		return notFound(c, "Appointment not found")
	}
	return c.JSON(updated)
}
