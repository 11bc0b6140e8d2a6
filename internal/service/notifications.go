package service

import (
	"context"

	"github.com/tvtrackr/tracker-server-go/internal/config"
	apperrors "github.com/tvtrackr/tracker-server-go/internal/errors"
	"github.com/tvtrackr/tracker-server-go/internal/model"
	"github.com/tvtrackr/tracker-server-go/internal/repository"
)

// NotificationService reads and flags notification rows; creating them is an
// external collaborator's job.
type NotificationService struct {
	notificationRepo repository.NotificationRepository
}

func NewNotificationService(notificationRepo repository.NotificationRepository) *NotificationService {
	return &NotificationService{notificationRepo: notificationRepo}
}

func (s *NotificationService) List(ctx context.Context, userID string) ([]model.Notification, error) {
	notifications, err := s.notificationRepo.FindAllByUserID(ctx, userID, config.NotificationsLimit)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	return notifications, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, notificationID, userID string) error {
	matched, err := s.notificationRepo.MarkRead(ctx, notificationID, userID)
	if err != nil {
		return apperrors.Database(err)
	}
	if matched == 0 {
		return apperrors.NotFound("Notification")
	}
	return nil
}

// MarkAllRead reports success even when no rows matched.
func (s *NotificationService) MarkAllRead(ctx context.Context, userID string) error {
	if err := s.notificationRepo.MarkAllRead(ctx, userID); err != nil {
		return apperrors.Database(err)
	}
	return nil
}
