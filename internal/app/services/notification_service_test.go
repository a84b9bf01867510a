package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sd13/academy/internal/app/models"
)

func subscriber(email string, wantsEvents *bool) *models.EmailSubscription {
	return &models.EmailSubscription{
		ID:          "sub-" + email,
		Email:       email,
		Preferences: models.Preferences{Events: wantsEvents},
		IsActive:    true,
	}
}

func notificationEvent() *models.Event {
	return &models.Event{
		ID:        "event-1",
		TitleEn:   "Tournament",
		EventDate: time.Date(2026, 10, 1, 18, 0, 0, 0, time.UTC),
	}
}

func TestNotifyEventChangeSendsToOptedInSubscribers(t *testing.T) {
	optOut := false
	source := &fakeSubscriberSource{subs: []*models.EmailSubscription{
		subscriber("a@example.com", nil),
		subscriber("b@example.com", &optOut),
		subscriber("c@example.com", nil),
	}}
	store := &fakeNotificationStore{}
	mailer := &fakeMailer{}
	svc := NewNotificationService(source, store, mailer)

	audit, err := svc.NotifyEventChange(context.Background(), notificationEvent(), models.NotificationCreated)
	if err != nil {
		t.Fatalf("NotifyEventChange failed: %v", err)
	}

	if len(mailer.recipients) != 1 {
		t.Fatalf("expected one send, got %d", len(mailer.recipients))
	}
	if got := mailer.recipients[0]; len(got) != 2 || got[0] != "a@example.com" || got[1] != "c@example.com" {
		t.Errorf("opt-out subscriber not filtered: %v", got)
	}
	if audit.RecipientsCount != 2 || audit.Status != models.NotificationStatusSent {
		t.Errorf("unexpected audit row: %+v", audit)
	}
	if len(store.created) != 1 {
		t.Error("audit row not persisted")
	}
}

func TestNotifyEventChangeAuditsZeroRecipients(t *testing.T) {
	store := &fakeNotificationStore{}
	mailer := &fakeMailer{}
	svc := NewNotificationService(&fakeSubscriberSource{}, store, mailer)

	audit, err := svc.NotifyEventChange(context.Background(), notificationEvent(), models.NotificationUpdated)
	if err != nil {
		t.Fatalf("NotifyEventChange failed: %v", err)
	}

	if len(mailer.recipients) != 0 {
		t.Error("no email should go out without recipients")
	}
	if audit.RecipientsCount != 0 || audit.Status != models.NotificationStatusSent {
		t.Errorf("zero-recipient attempt should still audit as sent: %+v", audit)
	}
	if len(store.created) != 1 {
		t.Error("audit row not persisted")
	}
}

func TestNotifyEventChangeSubscriberFetchFailure(t *testing.T) {
	source := &fakeSubscriberSource{err: errors.New("db gone")}
	store := &fakeNotificationStore{}
	mailer := &fakeMailer{}
	svc := NewNotificationService(source, store, mailer)

	audit, err := svc.NotifyEventChange(context.Background(), notificationEvent(), models.NotificationCreated)
	if err != nil {
		t.Fatalf("fetch failure must not surface as operation error: %v", err)
	}

	if len(mailer.recipients) != 0 {
		t.Error("no send expected when subscribers cannot be loaded")
	}
	if audit.Status != models.NotificationStatusFailed || audit.RecipientsCount != 0 {
		t.Errorf("expected failed audit with zero recipients: %+v", audit)
	}
	if len(store.created) != 1 {
		t.Error("failed attempt must still be audited")
	}
}

func TestNotifyEventChangeMailerFailure(t *testing.T) {
	source := &fakeSubscriberSource{subs: []*models.EmailSubscription{subscriber("a@example.com", nil)}}
	store := &fakeNotificationStore{}
	mailer := &fakeMailer{err: errors.New("smtp refused")}
	svc := NewNotificationService(source, store, mailer)

	audit, err := svc.NotifyEventChange(context.Background(), notificationEvent(), models.NotificationCancelled)
	if err != nil {
		t.Fatalf("mailer failure must not surface as operation error: %v", err)
	}

	if audit.Status != models.NotificationStatusFailed {
		t.Errorf("expected failed status, got %q", audit.Status)
	}
	if audit.RecipientsCount != 1 {
		t.Errorf("recipient count should reflect the attempted set, got %d", audit.RecipientsCount)
	}
	if len(store.created) != 1 {
		t.Error("failed attempt must still be audited")
	}
}

func TestNotifyEventChangeAuditWriteFailure(t *testing.T) {
	store := &fakeNotificationStore{createErr: errors.New("insert failed")}
	svc := NewNotificationService(&fakeSubscriberSource{}, store, &fakeMailer{})

	if _, err := svc.NotifyEventChange(context.Background(), notificationEvent(), models.NotificationCreated); err == nil {
		t.Error("audit write failure is the one error callers must see")
	}
}
