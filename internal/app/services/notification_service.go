package services

import (
	"context"
	"errors"

	"github.com/digiclass/backend/internal/app/models"
	"github.com/digiclass/backend/internal/app/models/dto"
	"github.com/digiclass/backend/internal/app/repositories"
	"github.com/digiclass/backend/internal/pkg/apperrors"
)

// NotificationService handles per-user notification preferences
type NotificationService struct {
	settingRepo *repositories.NotificationSettingRepository
}

// NewNotificationService creates a new notification service
func NewNotificationService(settingRepo *repositories.NotificationSettingRepository) *NotificationService {
	return &NotificationService{settingRepo: settingRepo}
}

// Get retrieves a user's settings, falling back to defaults when the user
// has never saved any
func (s *NotificationService) Get(ctx context.Context, userID int64) (*models.NotificationSettings, error) {
	settings, err := s.settingRepo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return &models.NotificationSettings{
				UserID:        userID,
				AbsenceAlerts: true,
				FeeReminders:  true,
				ExamAlerts:    true,
			}, nil
		}
		return nil, err
	}
	return settings, nil
}

// Update stores a user's notification toggles
func (s *NotificationService) Update(ctx context.Context, userID int64, req *dto.UpdateNotificationSettingsRequest) (*models.NotificationSettings, error) {
	settings := &models.NotificationSettings{
		UserID:          userID,
		AbsenceAlerts:   req.AbsenceAlerts,
		FeeReminders:    req.FeeReminders,
		ExamAlerts:      req.ExamAlerts,
		WhatsappEnabled: req.WhatsappEnabled,
	}

	if err := s.settingRepo.Upsert(ctx, settings); err != nil {
		return nil, err
	}

	return settings, nil
}
