package models

import (
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is created or updated on every successful external sign-in, keyed on
// the identity provider's open id. Users are never deleted.
type User struct {
	OpenID       string    `json:"openId" gorm:"column:open_id;primaryKey"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	LoginMethod  string    `json:"loginMethod"`
	Role         string    `json:"role" gorm:"default:user"`
	LastSignedIn time.Time `json:"lastSignedIn"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
