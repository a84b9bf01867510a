package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sd13/academy/internal/app/models"
	"github.com/sd13/academy/internal/app/models/dto"
)

func eventFixture() *models.Event {
	location := "Main Court"
	return &models.Event{
		ID:         "event-1",
		TitleEn:    "Tournament",
		TitleAr:    "بطولة",
		EventDate:  time.Date(2026, 10, 1, 18, 0, 0, 0, time.UTC),
		LocationEn: &location,
		EventType:  models.EventTypeTournament,
		IsActive:   true,
	}
}

func updateRequestFrom(event *models.Event) *dto.UpdateEventRequest {
	return &dto.UpdateEventRequest{
		TitleEn:    event.TitleEn,
		TitleAr:    event.TitleAr,
		EventDate:  event.EventDate,
		LocationEn: event.LocationEn,
		EventType:  string(event.EventType),
		IsActive:   &event.IsActive,
		IsFeatured: event.IsFeatured,
		OrderIndex: event.OrderIndex,
	}
}

func TestCreateEventNotifiesSubscribers(t *testing.T) {
	notifier := &fakeNotifier{}
	svc := NewEventService(&fakeEventStore{}, notifier)

	_, err := svc.CreateEvent(context.Background(), &dto.CreateEventRequest{
		TitleEn:   "Tournament",
		TitleAr:   "بطولة",
		EventDate: time.Date(2026, 10, 1, 18, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("CreateEvent failed: %v", err)
	}
	if len(notifier.calls) != 1 || notifier.calls[0] != models.NotificationCreated {
		t.Errorf("expected a single created notification, got %v", notifier.calls)
	}
}

func TestCreateEventDefaultsTypeAndActive(t *testing.T) {
	var created *models.Event
	store := &fakeEventStore{
		CreateFunc: func(ctx context.Context, event *models.Event) error {
			created = event
			return nil
		},
	}
	svc := NewEventService(store, &fakeNotifier{})

	_, err := svc.CreateEvent(context.Background(), &dto.CreateEventRequest{
		TitleEn:   "Open Gym",
		TitleAr:   "تدريب مفتوح",
		EventDate: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("CreateEvent failed: %v", err)
	}
	if created.EventType != models.EventTypeOther {
		t.Errorf("expected default event type, got %q", created.EventType)
	}
	if !created.IsActive {
		t.Error("event should default to active")
	}
}

func TestCreateEventSurvivesNotifierFailure(t *testing.T) {
	notifier := &fakeNotifier{err: errors.New("smtp down")}
	svc := NewEventService(&fakeEventStore{}, notifier)

	_, err := svc.CreateEvent(context.Background(), &dto.CreateEventRequest{
		TitleEn:   "Tournament",
		TitleAr:   "بطولة",
		EventDate: time.Now().UTC(),
	})
	if err != nil {
		t.Errorf("notification failure must not fail the create: %v", err)
	}
}

func TestUpdateEventNotifiesOnTitleChange(t *testing.T) {
	event := eventFixture()
	store := &fakeEventStore{
		GetByIDFunc: func(ctx context.Context, id string) (*models.Event, error) { return event, nil },
	}
	notifier := &fakeNotifier{}
	svc := NewEventService(store, notifier)

	req := updateRequestFrom(eventFixture())
	req.TitleEn = "Rescheduled Tournament"

	if _, err := svc.UpdateEvent(context.Background(), event.ID, req); err != nil {
		t.Fatalf("UpdateEvent failed: %v", err)
	}
	if len(notifier.calls) != 1 || notifier.calls[0] != models.NotificationUpdated {
		t.Errorf("expected an updated notification, got %v", notifier.calls)
	}
}

func TestUpdateEventNotifiesOnDateChange(t *testing.T) {
	event := eventFixture()
	store := &fakeEventStore{
		GetByIDFunc: func(ctx context.Context, id string) (*models.Event, error) { return event, nil },
	}
	notifier := &fakeNotifier{}
	svc := NewEventService(store, notifier)

	req := updateRequestFrom(eventFixture())
	req.EventDate = req.EventDate.Add(24 * time.Hour)

	if _, err := svc.UpdateEvent(context.Background(), event.ID, req); err != nil {
		t.Fatalf("UpdateEvent failed: %v", err)
	}
	if len(notifier.calls) != 1 {
		t.Errorf("date change should notify, got %v", notifier.calls)
	}
}

func TestUpdateEventNotifiesOnVisibilityChange(t *testing.T) {
	event := eventFixture()
	store := &fakeEventStore{
		GetByIDFunc: func(ctx context.Context, id string) (*models.Event, error) { return event, nil },
	}
	notifier := &fakeNotifier{}
	svc := NewEventService(store, notifier)

	req := updateRequestFrom(eventFixture())
	inactive := false
	req.IsActive = &inactive

	if _, err := svc.UpdateEvent(context.Background(), event.ID, req); err != nil {
		t.Fatalf("UpdateEvent failed: %v", err)
	}
	if len(notifier.calls) != 1 {
		t.Errorf("visibility change should notify, got %v", notifier.calls)
	}
}

func TestUpdateEventSilentForMinorChanges(t *testing.T) {
	event := eventFixture()
	store := &fakeEventStore{
		GetByIDFunc: func(ctx context.Context, id string) (*models.Event, error) { return event, nil },
	}
	notifier := &fakeNotifier{}
	svc := NewEventService(store, notifier)

	req := updateRequestFrom(eventFixture())
	description := "Now with referees"
	req.DescriptionEn = &description
	req.IsFeatured = true
	req.OrderIndex = 7

	if _, err := svc.UpdateEvent(context.Background(), event.ID, req); err != nil {
		t.Fatalf("UpdateEvent failed: %v", err)
	}
	if len(notifier.calls) != 0 {
		t.Errorf("description/feature/order changes must stay silent, got %v", notifier.calls)
	}
}

func TestUpdateEventEquivalentDateInOtherZoneStaysSilent(t *testing.T) {
	event := eventFixture()
	store := &fakeEventStore{
		GetByIDFunc: func(ctx context.Context, id string) (*models.Event, error) { return event, nil },
	}
	notifier := &fakeNotifier{}
	svc := NewEventService(store, notifier)

	req := updateRequestFrom(eventFixture())
	req.EventDate = req.EventDate.In(time.FixedZone("UTC+3", 3*3600))

	if _, err := svc.UpdateEvent(context.Background(), event.ID, req); err != nil {
		t.Fatalf("UpdateEvent failed: %v", err)
	}
	if len(notifier.calls) != 0 {
		t.Errorf("same instant in another zone must not notify, got %v", notifier.calls)
	}
}

func TestDeleteEventNotifiesBeforeDelete(t *testing.T) {
	event := eventFixture()
	var order []string
	notifier := &fakeNotifier{}
	store := &fakeEventStore{
		GetByIDFunc: func(ctx context.Context, id string) (*models.Event, error) { return event, nil },
		DeleteFunc: func(ctx context.Context, id string) error {
			if len(notifier.calls) == 0 {
				t.Error("cancellation notification must precede the row delete")
			}
			order = append(order, "delete")
			return nil
		},
	}
	svc := NewEventService(store, notifier)

	if err := svc.DeleteEvent(context.Background(), event.ID); err != nil {
		t.Fatalf("DeleteEvent failed: %v", err)
	}
	if len(notifier.calls) != 1 || notifier.calls[0] != models.NotificationCancelled {
		t.Errorf("expected a cancelled notification, got %v", notifier.calls)
	}
	if len(order) != 1 {
		t.Error("row delete never ran")
	}
}

func TestDeleteEventMissingDoesNotNotify(t *testing.T) {
	notifier := &fakeNotifier{}
	svc := NewEventService(&fakeEventStore{}, notifier)

	if err := svc.DeleteEvent(context.Background(), "missing"); err == nil {
		t.Fatal("expected lookup error")
	}
	if len(notifier.calls) != 0 {
		t.Errorf("no notification expected for a missing event, got %v", notifier.calls)
	}
}
