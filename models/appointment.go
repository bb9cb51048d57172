package models

import (
	"time"

	"gorm.io/gorm"
)

type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Valid reports whether the status is one of the four enumerated values.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Appointment is a booking submitted through the public site. Only an admin
// may change its status; appointments are never deleted.
type Appointment struct {
	ID              uint              `json:"id" gorm:"primaryKey"`
	ClientName      string            `json:"clientName"`
	ClientEmail     string            `json:"clientEmail"`
	ClientPhone     string            `json:"clientPhone"`
	ServiceType     string            `json:"serviceType"`
	AppointmentDate time.Time         `json:"appointmentDate"`
	Duration        int               `json:"duration"` // minutes
	Notes           string            `json:"notes"`
	Status          AppointmentStatus `json:"status"`
	CreatedAt       time.Time         `json:"createdAt"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.Status == "" {
		a.Status = StatusPending
	}
	return nil
}
