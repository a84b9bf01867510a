package dto

import (
	"time"
)

// CreateEventRequest represents the request to create an event
type CreateEventRequest struct {
	TitleEn              string     `json:"titleEn" binding:"required"`
	TitleAr              string     `json:"titleAr" binding:"required"`
	DescriptionEn        *string    `json:"descriptionEn"`
	DescriptionAr        *string    `json:"descriptionAr"`
	EventDate            time.Time  `json:"eventDate" binding:"required"`
	LocationEn           *string    `json:"locationEn"`
	LocationAr           *string    `json:"locationAr"`
	EventType            string     `json:"eventType" binding:"omitempty,oneof=tournament training workshop other"`
	RegistrationURL      *string    `json:"registrationUrl" binding:"omitempty,url"`
	ImageURL             *string    `json:"imageUrl"`
	IsActive             *bool      `json:"isActive"`
	IsFeatured           bool       `json:"isFeatured"`
	MaxParticipants      *int       `json:"maxParticipants" binding:"omitempty,min=1"`
	CurrentParticipants  *int       `json:"currentParticipants" binding:"omitempty,min=0"`
	RegistrationDeadline *time.Time `json:"registrationDeadline"`
	OrderIndex           int        `json:"orderIndex"`
}

// UpdateEventRequest represents the request to update an event. The admin
// form submits the full field set.
type UpdateEventRequest struct {
	TitleEn              string     `json:"titleEn" binding:"required"`
	TitleAr              string     `json:"titleAr" binding:"required"`
	DescriptionEn        *string    `json:"descriptionEn"`
	DescriptionAr        *string    `json:"descriptionAr"`
	EventDate            time.Time  `json:"eventDate" binding:"required"`
	LocationEn           *string    `json:"locationEn"`
	LocationAr           *string    `json:"locationAr"`
	EventType            string     `json:"eventType" binding:"omitempty,oneof=tournament training workshop other"`
	RegistrationURL      *string    `json:"registrationUrl" binding:"omitempty,url"`
	ImageURL             *string    `json:"imageUrl"`
	IsActive             *bool      `json:"isActive"`
	IsFeatured           bool       `json:"isFeatured"`
	MaxParticipants      *int       `json:"maxParticipants" binding:"omitempty,min=1"`
	CurrentParticipants  *int       `json:"currentParticipants" binding:"omitempty,min=0"`
	RegistrationDeadline *time.Time `json:"registrationDeadline"`
	OrderIndex           int        `json:"orderIndex"`
}
