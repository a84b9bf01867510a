package services

import (
	"context"
	"errors"
	"mime/multipart"

	"github.com/sd13/academy/internal/app/models"
)

var errStoreDown = errors.New("store unavailable")

// fakeStorage implements filestorage.Storage and records every call.
type fakeStorage struct {
	saveCount int
	saved     []string
	deleted   []string
	saveErr   error
	deleteErr error
}

func (f *fakeStorage) Save(fileHeader *multipart.FileHeader, folder string) (string, error) {
	if f.saveErr != nil {
		return "", f.saveErr
	}
	f.saveCount++
	reference := "/uploads/" + folder + "/stored-" + string(rune('0'+f.saveCount)) + ".bin"
	f.saved = append(f.saved, reference)
	return reference, nil
}

func (f *fakeStorage) Delete(reference string) error {
	f.deleted = append(f.deleted, reference)
	return f.deleteErr
}

type fakeProgramStore struct {
	GetAllFunc  func(ctx context.Context, includeInactive bool) ([]*models.Program, error)
	GetByIDFunc func(ctx context.Context, id string) (*models.Program, error)
	CreateFunc  func(ctx context.Context, program *models.Program) error
	UpdateFunc  func(ctx context.Context, program *models.Program) error
	DeleteFunc  func(ctx context.Context, id string) error
}

func (f *fakeProgramStore) GetAll(ctx context.Context, includeInactive bool) ([]*models.Program, error) {
	if f.GetAllFunc != nil {
		return f.GetAllFunc(ctx, includeInactive)
	}
	return nil, nil
}

func (f *fakeProgramStore) GetByID(ctx context.Context, id string) (*models.Program, error) {
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, id)
	}
	return nil, errStoreDown
}

func (f *fakeProgramStore) Create(ctx context.Context, program *models.Program) error {
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, program)
	}
	return nil
}

func (f *fakeProgramStore) Update(ctx context.Context, program *models.Program) error {
	if f.UpdateFunc != nil {
		return f.UpdateFunc(ctx, program)
	}
	return nil
}

func (f *fakeProgramStore) Delete(ctx context.Context, id string) error {
	if f.DeleteFunc != nil {
		return f.DeleteFunc(ctx, id)
	}
	return nil
}

type fakeEventStore struct {
	GetAllFunc  func(ctx context.Context, includeInactive bool) ([]*models.Event, error)
	GetByIDFunc func(ctx context.Context, id string) (*models.Event, error)
	CreateFunc  func(ctx context.Context, event *models.Event) error
	UpdateFunc  func(ctx context.Context, event *models.Event) error
	DeleteFunc  func(ctx context.Context, id string) error
}

func (f *fakeEventStore) GetAll(ctx context.Context, includeInactive bool) ([]*models.Event, error) {
	if f.GetAllFunc != nil {
		return f.GetAllFunc(ctx, includeInactive)
	}
	return nil, nil
}

func (f *fakeEventStore) GetByID(ctx context.Context, id string) (*models.Event, error) {
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, id)
	}
	return nil, errStoreDown
}

func (f *fakeEventStore) Create(ctx context.Context, event *models.Event) error {
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, event)
	}
	return nil
}

func (f *fakeEventStore) Update(ctx context.Context, event *models.Event) error {
	if f.UpdateFunc != nil {
		return f.UpdateFunc(ctx, event)
	}
	return nil
}

func (f *fakeEventStore) Delete(ctx context.Context, id string) error {
	if f.DeleteFunc != nil {
		return f.DeleteFunc(ctx, id)
	}
	return nil
}

// fakeNotifier records notification attempts in call order.
type fakeNotifier struct {
	calls []models.NotificationType
	err   error
}

func (f *fakeNotifier) NotifyEventChange(ctx context.Context, event *models.Event, notificationType models.NotificationType) (*models.EventNotification, error) {
	f.calls = append(f.calls, notificationType)
	if f.err != nil {
		return nil, f.err
	}
	return &models.EventNotification{EventID: event.ID, NotificationType: notificationType}, nil
}

type fakeSubscriberSource struct {
	subs []*models.EmailSubscription
	err  error
}

func (f *fakeSubscriberSource) GetActive(ctx context.Context) ([]*models.EmailSubscription, error) {
	return f.subs, f.err
}

type fakeNotificationStore struct {
	created   []*models.EventNotification
	createErr error
}

func (f *fakeNotificationStore) Create(ctx context.Context, n *models.EventNotification) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, n)
	return nil
}

func (f *fakeNotificationStore) GetByEventID(ctx context.Context, eventID string) ([]*models.EventNotification, error) {
	var out []*models.EventNotification
	for _, n := range f.created {
		if n.EventID == eventID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNotificationStore) GetRecent(ctx context.Context, limit uint64) ([]*models.EventNotification, error) {
	return f.created, nil
}

type fakeMailer struct {
	recipients [][]string
	err        error
}

func (f *fakeMailer) SendEventNotification(recipients []string, eventTitle, eventDate, notificationType string) error {
	f.recipients = append(f.recipients, recipients)
	return f.err
}

// fakeSubscriptionStore keeps subscriptions in memory keyed by email.
type fakeSubscriptionStore struct {
	GetByEmailFunc func(ctx context.Context, email string) (*models.EmailSubscription, error)
	GetAllFunc     func(ctx context.Context) ([]*models.EmailSubscription, error)
	CreateFunc     func(ctx context.Context, sub *models.EmailSubscription) error
	UpdateFunc     func(ctx context.Context, sub *models.EmailSubscription) error
}

func (f *fakeSubscriptionStore) GetByEmail(ctx context.Context, email string) (*models.EmailSubscription, error) {
	if f.GetByEmailFunc != nil {
		return f.GetByEmailFunc(ctx, email)
	}
	return nil, errStoreDown
}

func (f *fakeSubscriptionStore) GetAll(ctx context.Context) ([]*models.EmailSubscription, error) {
	if f.GetAllFunc != nil {
		return f.GetAllFunc(ctx)
	}
	return nil, nil
}

func (f *fakeSubscriptionStore) Create(ctx context.Context, sub *models.EmailSubscription) error {
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, sub)
	}
	return nil
}

func (f *fakeSubscriptionStore) Update(ctx context.Context, sub *models.EmailSubscription) error {
	if f.UpdateFunc != nil {
		return f.UpdateFunc(ctx, sub)
	}
	return nil
}
