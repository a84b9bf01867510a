package dto

import (
	"github.com/sd13/academy/internal/app/models"
)

// SubscribeRequest represents the request to subscribe to updates
type SubscribeRequest struct {
	Email       string              `json:"email" binding:"required,email"`
	Name        *string             `json:"name"`
	Preferences *models.Preferences `json:"preferences"`
}

// UnsubscribeRequest represents the request to unsubscribe
type UnsubscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// SubscribeResponse represents the outcome of a subscribe call.
// AlreadySubscribed distinguishes the informational "nothing to do" case
// from a fresh or reactivated subscription.
type SubscribeResponse struct {
	Message           string                    `json:"message"`
	AlreadySubscribed bool                      `json:"alreadySubscribed,omitempty"`
	Subscription      *models.EmailSubscription `json:"subscription,omitempty"`
}
