// internal/services/request_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tab1k/tbd-back/internal/models"
	"github.com/tab1k/tbd-back/internal/utils"
)

type RequestService struct {
	db            *gorm.DB
	notifications *NotificationService
}

type SubmitRequestRequest struct {
	Name  string `json:"name" validate:"required,max=255"`
	Phone string `json:"phone" validate:"required,phone"`
}

func NewRequestService(db *gorm.DB, notifications *NotificationService) *RequestService {
	return &RequestService{
		db:            db,
		notifications: notifications,
	}
}

// Submit persists a contact request and dispatches the notification. The
// notification is strictly best-effort: its failure never rolls back or
// fails the submission.
func (s *RequestService) Submit(req *SubmitRequestRequest) (*models.Request, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	request := &models.Request{
		Name:  req.Name,
		Phone: req.Phone,
	}

	if err := s.db.Create(request).Error; err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	s.notifications.NotifyNewRequest(request)

	return request, nil
}

func (s *RequestService) List() ([]models.Request, error) {
	var requests []models.Request
	if err := s.db.Order("created_at DESC").Find(&requests).Error; err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}
	return requests, nil
}

func (s *RequestService) Delete(id uuid.UUID) error {
	var request models.Request
	if err := s.db.First(&request, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("database error: %w", err)
	}

	if err := s.db.Delete(&request).Error; err != nil {
		return fmt.Errorf("failed to delete request: %w", err)
	}
	return nil
}
