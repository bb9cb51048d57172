package store

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/bloomwellness/studio-api/models"
)

func (s *DB) CreateContactSubmission(in NewContactSubmission) (*models.ContactSubmission, error) {
	conn, ok := s.handle.Get()
	if !ok {
		return nil, nil
	}

	submission := models.ContactSubmission{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Message: in.Message,
	}
	if err := conn.Create(&submission).Error; err != nil {
		log.WithError(err).Error("Failed to create contact submission")
		return nil, fmt.Errorf("create contact submission: %w", err)
	}
	return &submission, nil
}

func (s *DB) GetContactSubmissionByID(id uint) (*models.ContactSubmission, error) {
	conn, ok := s.handle.Get()
	if !ok {
		return nil, nil
	}

	var submission models.ContactSubmission
	err := conn.First(&submission, id).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.WithError(err).Warn("Failed to read contact submission")
		}
		return nil, nil
	}
	return &submission, nil
}

// GetContactSubmissions lists submissions, newest first.
func (s *DB) GetContactSubmissions() ([]models.ContactSubmission, error) {
	conn, ok := s.handle.Get()
	if !ok {
		return []models.ContactSubmission{}, nil
	}

	var submissions []models.ContactSubmission
	if err := conn.Order("created_at DESC").Find(&submissions).Error; err != nil {
		log.WithError(err).Warn("Failed to list contact submissions")
		return []models.ContactSubmission{}, nil
	}
	return submissions, nil
}

// MarkContactSubmissionAsRead sets the read flag unconditionally, so the
// call is idempotent. Reports whether the id matched a row.
func (s *DB) MarkContactSubmissionAsRead(id uint) (bool, error) {
	conn, ok := s.handle.Get()
	if !ok {
		return false, nil
	}

	res := conn.Model(&models.ContactSubmission{}).Where("id = ?", id).Update("read", 1)
	if res.Error != nil {
		log.WithError(res.Error).Error("Failed to mark contact submission as read")
		return false, fmt.Errorf("mark contact submission as read: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}
