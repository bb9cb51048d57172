package store

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/bloomwellness/studio-api/models"
)

// CreateAppointment stores a new booking. The status is always pending
// regardless of the caller's input. Returns nil when the database is
// unavailable.
func (s *DB) CreateAppointment(in NewAppointment) (*models.Appointment, error) {
	conn, ok := s.handle.Get()
	if !ok {
		return nil, nil
	}

	appointment := models.Appointment{
		ClientName:      in.ClientName,
		ClientEmail:     in.ClientEmail,
		ClientPhone:     in.ClientPhone,
		ServiceType:     in.ServiceType,
		AppointmentDate: in.AppointmentDate,
		Duration:        in.Duration,
		Notes:           in.Notes,
		Status:          models.StatusPending,
	}
	if err := conn.Create(&appointment).Error; err != nil {
		log.WithError(err).Error("Failed to create appointment")
		return nil, fmt.Errorf("create appointment: %w", err)
	}
	return &appointment, nil
}

func (s *DB) GetAppointmentByID(id uint) (*models.Appointment, error) {
	conn, ok := s.handle.Get()
	if !ok {
		return nil, nil
	}

	var appointment models.Appointment
	err := conn.First(&appointment, id).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.WithError(err).Warn("Failed to read appointment")
		}
		return nil, nil
	}
	return &appointment, nil
}

// GetAppointments lists bookings, most recent appointment date first.
// Filters compose conjunctively; each is applied only when provided.
func (s *DB) GetAppointments(f AppointmentFilters) ([]models.Appointment, error) {
	conn, ok := s.handle.Get()
	if !ok {
		return []models.Appointment{}, nil
	}

	q := conn.Model(&models.Appointment{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.StartDate != nil {
		q = q.Where("appointment_date >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		q = q.Where("appointment_date <= ?", *f.EndDate)
	}

	var appointments []models.Appointment
	if err := q.Order("appointment_date DESC").Find(&appointments).Error; err != nil {
		log.WithError(err).Warn("Failed to list appointments")
		return []models.Appointment{}, nil
	}
	return appointments, nil
}

// UpdateAppointmentStatus sets the status on the given row and returns the
// updated appointment, or nil when the id does not exist.
func (s *DB) UpdateAppointmentStatus(id uint, status models.AppointmentStatus) (*models.Appointment, error) {
	conn, ok := s.handle.Get()
	if !ok {
		return nil, nil
	}

	err := conn.Model(&models.Appointment{}).Where("id = ?", id).Update("status", status).Error
	if err != nil {
		log.WithError(err).Error("Failed to update appointment status")
		return nil, fmt.Errorf("update appointment status: %w", err)
	}
	return s.GetAppointmentByID(id)
}
