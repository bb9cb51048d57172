package store

import (
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/bloomwellness/studio-api/models"
)

// buildUserUpsert merges the sign-in input into the row to insert and the
// column set to apply on conflict. Role defaults to admin when the identity
// is the configured owner; lastSignedIn always ends up populated.
func buildUserUpsert(in UserUpsert, isOwner bool, now time.Time) (models.User, map[string]interface{}) {
	row := models.User{OpenID: in.OpenID}
	updates := map[string]interface{}{}

	if in.Name != nil {
		row.Name = *in.Name
		updates["name"] = *in.Name
	}
	if in.Email != nil {
		row.Email = *in.Email
		updates["email"] = *in.Email
	}
	if in.LoginMethod != nil {
		row.LoginMethod = *in.LoginMethod
		updates["login_method"] = *in.LoginMethod
	}
	if in.Role != nil {
		row.Role = *in.Role
		updates["role"] = *in.Role
	} else if isOwner {
		row.Role = models.RoleAdmin
		updates["role"] = models.RoleAdmin
	}
	if in.LastSignedIn != nil {
		row.LastSignedIn = *in.LastSignedIn
		updates["last_signed_in"] = *in.LastSignedIn
	}

	if row.LastSignedIn.IsZero() {
		row.LastSignedIn = now
	}
	if len(updates) == 0 {
		updates["last_signed_in"] = now
	}

	return row, updates
}

// UpsertUser inserts or updates the user row keyed on open id. With no
// database configured the call is skipped with a warning, matching the
// degraded-mode contract.
func (s *DB) UpsertUser(in UserUpsert) error {
	if in.OpenID == "" {
		return ErrOpenIDRequired
	}

	conn, ok := s.handle.Get()
	if !ok {
		log.Warn("Cannot upsert user: database not available")
		return nil
	}

	row, updates := buildUserUpsert(in, in.OpenID == s.ownerOpenID && s.ownerOpenID != "", time.Now())

	err := conn.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "open_id"}},
		DoUpdates: clause.Assignments(updates),
	}).Create(&row).Error
	if err != nil {
		log.WithError(err).WithField("openId", in.OpenID).Error("Failed to upsert user")
		return fmt.Errorf("upsert user: %w", err)
	}
	return nil
}

// GetUserByOpenID returns the matching user, or nil when absent or the
// database is unavailable.
func (s *DB) GetUserByOpenID(openID string) (*models.User, error) {
	conn, ok := s.handle.Get()
	if !ok {
		return nil, nil
	}

	var user models.User
	err := conn.Where("open_id = ?", openID).First(&user).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.WithError(err).Warn("Failed to read user")
		}
		return nil, nil
	}
	return &user, nil
}
