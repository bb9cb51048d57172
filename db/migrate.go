package db

import (
	"github.com/bloomwellness/studio-api/models"
)

// Migrate runs AutoMigrate for all entities. It is a no-op when the
// database is unavailable.
func Migrate(h *Handle) error {
	conn, ok := h.Get()
	if !ok {
		return nil
	}
	return conn.AutoMigrate(
		&models.User{},
		&models.Appointment{},
		&models.BlogPost{},
		&models.ContactSubmission{},
	)
}
