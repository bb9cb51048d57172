package models

import (
	"time"
)

// ContactSubmission comes from the public contact form. The read flag only
// ever transitions false to true; submissions are never deleted.
type ContactSubmission struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	Read      int       `json:"read" gorm:"default:0"`
	CreatedAt time.Time `json:"createdAt"`
}
