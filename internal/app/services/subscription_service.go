package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sd13/academy/internal/app/models"
	"github.com/sd13/academy/internal/app/models/dto"
	"github.com/sd13/academy/internal/pkg/apperrors"
	"github.com/sd13/academy/internal/pkg/logger"
)

type subscriptionStore interface {
	GetByEmail(ctx context.Context, email string) (*models.EmailSubscription, error)
	GetAll(ctx context.Context) ([]*models.EmailSubscription, error)
	Create(ctx context.Context, sub *models.EmailSubscription) error
	Update(ctx context.Context, sub *models.EmailSubscription) error
}

// SubscriptionService defines the interface for subscription operations
type SubscriptionService interface {
	Subscribe(ctx context.Context, req *dto.SubscribeRequest) (*dto.SubscribeResponse, error)
	Unsubscribe(ctx context.Context, email string) error
	GetSubscriptions(ctx context.Context) ([]*models.EmailSubscription, error)
}

type subscriptionServiceImpl struct {
	subscriptionRepo subscriptionStore
}

// NewSubscriptionService creates a new subscription service instance
func NewSubscriptionService(subscriptionRepo subscriptionStore) SubscriptionService {
	return &subscriptionServiceImpl{
		subscriptionRepo: subscriptionRepo,
	}
}

// Subscribe adds an email to the list. The email is the natural key:
// an active duplicate is reported as already subscribed, and a previously
// unsubscribed address is reactivated in place instead of duplicated.
func (s *subscriptionServiceImpl) Subscribe(ctx context.Context, req *dto.SubscribeRequest) (*dto.SubscribeResponse, error) {
	address := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.subscriptionRepo.GetByEmail(ctx, address)
	if err != nil && !errors.Is(err, apperrors.ErrResourceNotFound) {
		return nil, err
	}

	if existing != nil {
		if existing.IsActive {
			return &dto.SubscribeResponse{
				Message:           "You are already subscribed",
				AlreadySubscribed: true,
				Subscription:      existing,
			}, nil
		}

		existing.IsActive = true
		existing.UnsubscribedAt = nil
		if req.Name != nil {
			existing.Name = req.Name
		}
		if req.Preferences != nil {
			existing.Preferences = *req.Preferences
		}
		if err := s.subscriptionRepo.Update(ctx, existing); err != nil {
			return nil, err
		}

		logger.Info().Str("subscriptionID", existing.ID).Msg("Subscription reactivated")
		return &dto.SubscribeResponse{
			Message:      "Subscription reactivated",
			Subscription: existing,
		}, nil
	}

	preferences := models.DefaultPreferences()
	if req.Preferences != nil {
		preferences = *req.Preferences
	}

	subscription := &models.EmailSubscription{
		Email:       address,
		Name:        req.Name,
		Preferences: preferences,
		IsActive:    true,
	}
	if err := s.subscriptionRepo.Create(ctx, subscription); err != nil {
		if errors.Is(err, apperrors.ErrAlreadySubscribed) {
			return &dto.SubscribeResponse{
				Message:           "You are already subscribed",
				AlreadySubscribed: true,
			}, nil
		}
		return nil, err
	}

	logger.Info().Str("subscriptionID", subscription.ID).Msg("New subscription created")
	return &dto.SubscribeResponse{
		Message:      "Subscribed successfully",
		Subscription: subscription,
	}, nil
}

// Unsubscribe deactivates a subscription, keeping the row so the address
// can be reactivated later. Unsubscribing twice is a no-op.
func (s *subscriptionServiceImpl) Unsubscribe(ctx context.Context, email string) error {
	address := strings.ToLower(strings.TrimSpace(email))

	subscription, err := s.subscriptionRepo.GetByEmail(ctx, address)
	if err != nil {
		return err
	}
	if !subscription.IsActive {
		return nil
	}

	now := time.Now().UTC()
	subscription.IsActive = false
	subscription.UnsubscribedAt = &now

	if err := s.subscriptionRepo.Update(ctx, subscription); err != nil {
		return err
	}

	logger.Info().Str("subscriptionID", subscription.ID).Msg("Subscription deactivated")
	return nil
}

// GetSubscriptions retrieves every subscription for the admin panel
func (s *subscriptionServiceImpl) GetSubscriptions(ctx context.Context) ([]*models.EmailSubscription, error) {
	return s.subscriptionRepo.GetAll(ctx)
}
