package models

import (
	"time"
)

// EventType classifies an event
type EventType string

const (
	EventTypeTournament EventType = "tournament"
	EventTypeTraining   EventType = "training"
	EventTypeWorkshop   EventType = "workshop"
	EventTypeOther      EventType = "other"
)

// Event defines an academy event based on the 'events' table.
// CurrentParticipants is informational only; the system never enforces or
// atomically increments it against MaxParticipants.
type Event struct {
	ID                   string     `json:"id" db:"id"`
	TitleEn              string     `json:"titleEn" db:"title_en"`
	TitleAr              string     `json:"titleAr" db:"title_ar"`
	DescriptionEn        *string    `json:"descriptionEn,omitempty" db:"description_en"`
	DescriptionAr        *string    `json:"descriptionAr,omitempty" db:"description_ar"`
	EventDate            time.Time  `json:"eventDate" db:"event_date"`
	LocationEn           *string    `json:"locationEn,omitempty" db:"location_en"`
	LocationAr           *string    `json:"locationAr,omitempty" db:"location_ar"`
	EventType            EventType  `json:"eventType" db:"event_type"`
	RegistrationURL      *string    `json:"registrationUrl,omitempty" db:"registration_url"`
	ImageURL             *string    `json:"imageUrl,omitempty" db:"image_url"`
	IsActive             bool       `json:"isActive" db:"is_active"`
	IsFeatured           bool       `json:"isFeatured" db:"is_featured"`
	MaxParticipants      *int       `json:"maxParticipants,omitempty" db:"max_participants"`
	CurrentParticipants  *int       `json:"currentParticipants,omitempty" db:"current_participants"`
	RegistrationDeadline *time.Time `json:"registrationDeadline,omitempty" db:"registration_deadline"`
	OrderIndex           int        `json:"orderIndex" db:"order_index"`
	CreatedAt            time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt            time.Time  `json:"updatedAt" db:"updated_at"`
}

// NotificationType classifies an event notification
type NotificationType string

const (
	NotificationCreated   NotificationType = "created"
	NotificationUpdated   NotificationType = "updated"
	NotificationCancelled NotificationType = "cancelled"
)

// Notification statuses
const (
	NotificationStatusSent   = "sent"
	NotificationStatusFailed = "failed"
)

// EventNotification is an append-only audit record of a notification
// attempt, based on the 'event_notifications' table. Rows are never
// updated or deleted.
type EventNotification struct {
	ID               string           `json:"id" db:"id"`
	EventID          string           `json:"eventId" db:"event_id"`
	NotificationType NotificationType `json:"notificationType" db:"notification_type"`
	RecipientsCount  int              `json:"recipientsCount" db:"recipients_count"`
	Status           string           `json:"status" db:"status"`
	CreatedAt        time.Time        `json:"createdAt" db:"created_at"`
}
