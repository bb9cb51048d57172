package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentStatusValid(t *testing.T) {
	for _, s := range []AppointmentStatus{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled} {
		assert.True(t, s.Valid(), "expected %q to be valid", s)
	}
	assert.False(t, AppointmentStatus("").Valid())
	assert.False(t, AppointmentStatus("archived").Valid())
	assert.False(t, AppointmentStatus("canceled").Valid()) // US spelling not in the enum
}

func TestAppointmentDefaultsToPending(t *testing.T) {
	a := &Appointment{}
	assert.NoError(t, a.BeforeCreate(nil))
	assert.Equal(t, StatusPending, a.Status)
}

func TestAppointmentKeepsExplicitStatus(t *testing.T) {
	a := &Appointment{Status: StatusConfirmed}
	assert.NoError(t, a.BeforeCreate(nil))
	assert.Equal(t, StatusConfirmed, a.Status)
}
