package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sd13/academy/internal/app/models"
	"github.com/sd13/academy/internal/app/models/dto"
	"github.com/sd13/academy/internal/pkg/apperrors"
)

func TestSubscribeNormalizesEmail(t *testing.T) {
	var created *models.EmailSubscription
	store := &fakeSubscriptionStore{
		GetByEmailFunc: func(ctx context.Context, email string) (*models.EmailSubscription, error) {
			return nil, apperrors.ErrSubscriptionNotFound
		},
		CreateFunc: func(ctx context.Context, sub *models.EmailSubscription) error {
			created = sub
			return nil
		},
	}
	svc := NewSubscriptionService(store)

	resp, err := svc.Subscribe(context.Background(), &dto.SubscribeRequest{Email: "  Fan@Example.COM "})
	if err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}
	if created == nil || created.Email != "fan@example.com" {
		t.Errorf("email not normalized: %+v", created)
	}
	if !created.IsActive {
		t.Error("new subscription should be active")
	}
	if !created.Preferences.WantsEvents() {
		t.Error("new subscription should default to event opt-in")
	}
	if resp.AlreadySubscribed {
		t.Error("fresh subscription must not report already subscribed")
	}
}

func TestSubscribeActiveDuplicate(t *testing.T) {
	existing := &models.EmailSubscription{ID: "sub-1", Email: "fan@example.com", IsActive: true}
	store := &fakeSubscriptionStore{
		GetByEmailFunc: func(ctx context.Context, email string) (*models.EmailSubscription, error) {
			return existing, nil
		},
		CreateFunc: func(ctx context.Context, sub *models.EmailSubscription) error {
			t.Error("duplicate subscribe must not create a row")
			return nil
		},
	}
	svc := NewSubscriptionService(store)

	resp, err := svc.Subscribe(context.Background(), &dto.SubscribeRequest{Email: "fan@example.com"})
	if err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}
	if !resp.AlreadySubscribed {
		t.Error("active duplicate should report already subscribed")
	}
}

func TestSubscribeReactivatesInactive(t *testing.T) {
	unsubscribed := time.Now().UTC().Add(-24 * time.Hour)
	existing := &models.EmailSubscription{
		ID:             "sub-1",
		Email:          "fan@example.com",
		IsActive:       false,
		UnsubscribedAt: &unsubscribed,
	}
	var updated *models.EmailSubscription
	store := &fakeSubscriptionStore{
		GetByEmailFunc: func(ctx context.Context, email string) (*models.EmailSubscription, error) {
			return existing, nil
		},
		UpdateFunc: func(ctx context.Context, sub *models.EmailSubscription) error {
			updated = sub
			return nil
		},
	}
	svc := NewSubscriptionService(store)

	resp, err := svc.Subscribe(context.Background(), &dto.SubscribeRequest{Email: "fan@example.com"})
	if err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}
	if updated == nil {
		t.Fatal("existing row was not updated")
	}
	if !updated.IsActive || updated.UnsubscribedAt != nil {
		t.Errorf("reactivation incomplete: %+v", updated)
	}
	if resp.AlreadySubscribed {
		t.Error("reactivation is not the already-subscribed case")
	}
	if resp.Subscription == nil || resp.Subscription.ID != "sub-1" {
		t.Error("response should carry the reactivated subscription")
	}
}

func TestSubscribeCreateRaceReportsAlreadySubscribed(t *testing.T) {
	store := &fakeSubscriptionStore{
		GetByEmailFunc: func(ctx context.Context, email string) (*models.EmailSubscription, error) {
			return nil, apperrors.ErrSubscriptionNotFound
		},
		CreateFunc: func(ctx context.Context, sub *models.EmailSubscription) error {
			return apperrors.ErrAlreadySubscribed
		},
	}
	svc := NewSubscriptionService(store)

	resp, err := svc.Subscribe(context.Background(), &dto.SubscribeRequest{Email: "fan@example.com"})
	if err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}
	if !resp.AlreadySubscribed {
		t.Error("duplicate-key race should resolve to already subscribed")
	}
}

func TestUnsubscribeDeactivates(t *testing.T) {
	existing := &models.EmailSubscription{ID: "sub-1", Email: "fan@example.com", IsActive: true}
	var updated *models.EmailSubscription
	store := &fakeSubscriptionStore{
		GetByEmailFunc: func(ctx context.Context, email string) (*models.EmailSubscription, error) {
			return existing, nil
		},
		UpdateFunc: func(ctx context.Context, sub *models.EmailSubscription) error {
			updated = sub
			return nil
		},
	}
	svc := NewSubscriptionService(store)

	if err := svc.Unsubscribe(context.Background(), "Fan@Example.com"); err != nil {
		t.Fatalf("Unsubscribe failed: %v", err)
	}
	if updated == nil {
		t.Fatal("subscription was not updated")
	}
	if updated.IsActive || updated.UnsubscribedAt == nil {
		t.Errorf("subscription not deactivated: %+v", updated)
	}
}

func TestUnsubscribeIdempotent(t *testing.T) {
	existing := &models.EmailSubscription{ID: "sub-1", Email: "fan@example.com", IsActive: false}
	store := &fakeSubscriptionStore{
		GetByEmailFunc: func(ctx context.Context, email string) (*models.EmailSubscription, error) {
			return existing, nil
		},
		UpdateFunc: func(ctx context.Context, sub *models.EmailSubscription) error {
			t.Error("second unsubscribe must not write")
			return nil
		},
	}
	svc := NewSubscriptionService(store)

	if err := svc.Unsubscribe(context.Background(), "fan@example.com"); err != nil {
		t.Errorf("repeat unsubscribe should be a no-op, got %v", err)
	}
}

func TestUnsubscribeUnknownEmail(t *testing.T) {
	store := &fakeSubscriptionStore{
		GetByEmailFunc: func(ctx context.Context, email string) (*models.EmailSubscription, error) {
			return nil, apperrors.ErrSubscriptionNotFound
		},
	}
	svc := NewSubscriptionService(store)

	err := svc.Unsubscribe(context.Background(), "nobody@example.com")
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Errorf("expected not-found error, got %v", err)
	}
}
