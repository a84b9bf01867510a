package services

import (
	"context"

	"github.com/sd13/academy/internal/app/models"
	"github.com/sd13/academy/internal/pkg/email"
	"github.com/sd13/academy/internal/pkg/logger"
)

type subscriberSource interface {
	GetActive(ctx context.Context) ([]*models.EmailSubscription, error)
}

type notificationStore interface {
	Create(ctx context.Context, n *models.EventNotification) error
	GetByEventID(ctx context.Context, eventID string) ([]*models.EventNotification, error)
	GetRecent(ctx context.Context, limit uint64) ([]*models.EventNotification, error)
}

// NotificationService fans out event changes to subscribers and records
// an audit row for every attempt. The whole flow is advisory: delivery
// failures are recorded, never propagated as operation failures.
type NotificationService interface {
	NotifyEventChange(ctx context.Context, event *models.Event, notificationType models.NotificationType) (*models.EventNotification, error)
	GetEventNotifications(ctx context.Context, eventID string) ([]*models.EventNotification, error)
	GetRecentNotifications(ctx context.Context, limit uint64) ([]*models.EventNotification, error)
}

type notificationServiceImpl struct {
	subscribers      subscriberSource
	notificationRepo notificationStore
	mailer           email.Service
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(subscribers subscriberSource, notificationRepo notificationStore, mailer email.Service) NotificationService {
	return &notificationServiceImpl{
		subscribers:      subscribers,
		notificationRepo: notificationRepo,
		mailer:           mailer,
	}
}

// NotifyEventChange resolves the recipient set, attempts delivery, and
// appends the audit record. The audit row is written even when nobody is
// subscribed, so the trail shows the attempt happened. The returned error
// only reports an audit write failure.
func (s *notificationServiceImpl) NotifyEventChange(ctx context.Context, event *models.Event, notificationType models.NotificationType) (*models.EventNotification, error) {
	recipients := []string{}
	status := models.NotificationStatusSent

	subscriptions, err := s.subscribers.GetActive(ctx)
	if err != nil {
		logger.Error().Err(err).Str("eventID", event.ID).Msg("Failed to load subscribers for event notification")
		status = models.NotificationStatusFailed
	} else {
		for _, sub := range subscriptions {
			if sub.Preferences.WantsEvents() {
				recipients = append(recipients, sub.Email)
			}
		}
	}

	if status == models.NotificationStatusSent && len(recipients) > 0 {
		eventDate := event.EventDate.Format("2006-01-02 15:04")
		if err := s.mailer.SendEventNotification(recipients, event.TitleEn, eventDate, string(notificationType)); err != nil {
			logger.Error().Err(err).Str("eventID", event.ID).Int("recipients", len(recipients)).
				Msg("Failed to send event notification emails")
			status = models.NotificationStatusFailed
		}
	}

	audit := &models.EventNotification{
		EventID:          event.ID,
		NotificationType: notificationType,
		RecipientsCount:  len(recipients),
		Status:           status,
	}
	if err := s.notificationRepo.Create(ctx, audit); err != nil {
		logger.Error().Err(err).Str("eventID", event.ID).Msg("Failed to record event notification")
		return audit, err
	}

	logger.Info().Str("eventID", event.ID).Str("type", string(notificationType)).
		Int("recipients", len(recipients)).Str("status", status).
		Msg("Event notification processed")
	return audit, nil
}

// GetEventNotifications returns the audit trail for one event
func (s *notificationServiceImpl) GetEventNotifications(ctx context.Context, eventID string) ([]*models.EventNotification, error) {
	return s.notificationRepo.GetByEventID(ctx, eventID)
}

// GetRecentNotifications returns the most recent audit records
func (s *notificationServiceImpl) GetRecentNotifications(ctx context.Context, limit uint64) ([]*models.EventNotification, error) {
	return s.notificationRepo.GetRecent(ctx, limit)
}
