package services

import (
	"context"

	"github.com/sd13/academy/internal/app/models"
	"github.com/sd13/academy/internal/app/models/dto"
	"github.com/sd13/academy/internal/pkg/logger"
	"github.com/sd13/academy/internal/pkg/validation"
)

type eventStore interface {
	GetAll(ctx context.Context, includeInactive bool) ([]*models.Event, error)
	GetByID(ctx context.Context, id string) (*models.Event, error)
	Create(ctx context.Context, event *models.Event) error
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id string) error
}

type changeNotifier interface {
	NotifyEventChange(ctx context.Context, event *models.Event, notificationType models.NotificationType) (*models.EventNotification, error)
}

// EventService defines the interface for event operations
type EventService interface {
	GetEvents(ctx context.Context, includeInactive bool) ([]*models.Event, error)
	GetEventByID(ctx context.Context, id string) (*models.Event, error)
	CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*models.Event, error)
	UpdateEvent(ctx context.Context, id string, req *dto.UpdateEventRequest) (*models.Event, error)
	DeleteEvent(ctx context.Context, id string) error
}

type eventServiceImpl struct {
	eventRepo eventStore
	notifier  changeNotifier
}

// NewEventService creates a new event service instance
func NewEventService(eventRepo eventStore, notifier changeNotifier) EventService {
	return &eventServiceImpl{
		eventRepo: eventRepo,
		notifier:  notifier,
	}
}

// GetEvents retrieves events in chronological order
func (s *eventServiceImpl) GetEvents(ctx context.Context, includeInactive bool) ([]*models.Event, error) {
	return s.eventRepo.GetAll(ctx, includeInactive)
}

// GetEventByID retrieves a single event
func (s *eventServiceImpl) GetEventByID(ctx context.Context, id string) (*models.Event, error) {
	return s.eventRepo.GetByID(ctx, id)
}

// notify runs a notification attempt without letting its outcome affect
// the event operation that triggered it.
func (s *eventServiceImpl) notify(ctx context.Context, event *models.Event, notificationType models.NotificationType) {
	if _, err := s.notifier.NotifyEventChange(ctx, event, notificationType); err != nil {
		logger.Warn().Err(err).Str("eventID", event.ID).Str("type", string(notificationType)).
			Msg("Event notification not fully recorded")
	}
}

// CreateEvent creates an event and notifies subscribers
func (s *eventServiceImpl) CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*models.Event, error) {
	eventType := models.EventTypeOther
	if validation.IsValidEventType(req.EventType) {
		eventType = models.EventType(req.EventType)
	}

	event := &models.Event{
		TitleEn:              req.TitleEn,
		TitleAr:              req.TitleAr,
		DescriptionEn:        req.DescriptionEn,
		DescriptionAr:        req.DescriptionAr,
		EventDate:            req.EventDate,
		LocationEn:           req.LocationEn,
		LocationAr:           req.LocationAr,
		EventType:            eventType,
		RegistrationURL:      req.RegistrationURL,
		ImageURL:             req.ImageURL,
		IsActive:             req.IsActive == nil || *req.IsActive,
		IsFeatured:           req.IsFeatured,
		MaxParticipants:      req.MaxParticipants,
		CurrentParticipants:  req.CurrentParticipants,
		RegistrationDeadline: req.RegistrationDeadline,
		OrderIndex:           req.OrderIndex,
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	s.notify(ctx, event, models.NotificationCreated)
	return event, nil
}

// UpdateEvent applies field changes. Subscribers are notified only when a
// field they would care about changed: the English title, the date, the
// English location, or the visibility flag.
func (s *eventServiceImpl) UpdateEvent(ctx context.Context, id string, req *dto.UpdateEventRequest) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	shouldNotify := event.TitleEn != req.TitleEn ||
		!event.EventDate.Equal(req.EventDate) ||
		!equalStringPtr(event.LocationEn, req.LocationEn) ||
		(req.IsActive != nil && event.IsActive != *req.IsActive)

	event.TitleEn = req.TitleEn
	event.TitleAr = req.TitleAr
	event.DescriptionEn = req.DescriptionEn
	event.DescriptionAr = req.DescriptionAr
	event.EventDate = req.EventDate
	event.LocationEn = req.LocationEn
	event.LocationAr = req.LocationAr
	if validation.IsValidEventType(req.EventType) {
		event.EventType = models.EventType(req.EventType)
	}
	event.RegistrationURL = req.RegistrationURL
	event.ImageURL = req.ImageURL
	if req.IsActive != nil {
		event.IsActive = *req.IsActive
	}
	event.IsFeatured = req.IsFeatured
	event.MaxParticipants = req.MaxParticipants
	event.CurrentParticipants = req.CurrentParticipants
	event.RegistrationDeadline = req.RegistrationDeadline
	event.OrderIndex = req.OrderIndex

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}

	if shouldNotify {
		s.notify(ctx, event, models.NotificationUpdated)
	}
	return event, nil
}

// DeleteEvent notifies subscribers of the cancellation before the row
// disappears, so the audit record still references a known event.
func (s *eventServiceImpl) DeleteEvent(ctx context.Context, id string) error {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	s.notify(ctx, event, models.NotificationCancelled)

	return s.eventRepo.Delete(ctx, id)
}

func equalStringPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
