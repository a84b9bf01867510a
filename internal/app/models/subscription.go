package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Preferences are per-subscriber notification opt-in flags, stored as a
// JSON object in the 'preferences' column. A missing flag counts as
// opted-in; only an explicit false opts out.
type Preferences struct {
	Events     *bool `json:"events,omitempty"`
	News       *bool `json:"news,omitempty"`
	Promotions *bool `json:"promotions,omitempty"`
}

// DefaultPreferences returns the opt-in defaults applied on subscribe
func DefaultPreferences() Preferences {
	t := true
	return Preferences{Events: &t, News: &t, Promotions: &t}
}

// WantsEvents reports whether the subscriber should receive event
// notifications (default opt-in).
func (p Preferences) WantsEvents() bool {
	return p.Events == nil || *p.Events
}

// Encode serializes the preferences for storage
func (p Preferences) Encode() (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("failed to encode preferences: %w", err)
	}
	return string(data), nil
}

// DecodePreferences parses stored preferences; an empty value yields the
// zero Preferences (all flags unset, meaning opted-in).
func DecodePreferences(raw string) (Preferences, error) {
	var p Preferences
	if raw == "" {
		return p, nil
	}
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return Preferences{}, fmt.Errorf("invalid preferences encoding: %w", err)
	}
	return p, nil
}

// EmailSubscription defines a subscriber based on the 'email_subscriptions'
// table. Email is the natural key; re-subscribing reactivates the existing
// row instead of creating a duplicate.
type EmailSubscription struct {
	ID             string      `json:"id" db:"id"`
	Email          string      `json:"email" db:"email"`
	Name           *string     `json:"name,omitempty" db:"name"`
	Preferences    Preferences `json:"preferences" db:"preferences"`
	IsActive       bool        `json:"isActive" db:"is_active"`
	UnsubscribedAt *time.Time  `json:"unsubscribedAt,omitempty" db:"unsubscribed_at"`
	CreatedAt      time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time   `json:"updatedAt" db:"updated_at"`
}
