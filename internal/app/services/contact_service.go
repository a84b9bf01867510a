package services

import (
	"context"

	"github.com/sd13/academy/internal/app/models"
	"github.com/sd13/academy/internal/app/models/dto"
)

type contactStore interface {
	Get(ctx context.Context) (*models.ContactInfo, error)
	Save(ctx context.Context, contact *models.ContactInfo) error
}

// ContactService defines the interface for contact info operations
type ContactService interface {
	GetContactInfo(ctx context.Context) (*models.ContactInfo, error)
	SaveContactInfo(ctx context.Context, req *dto.SaveContactInfoRequest) (*models.ContactInfo, error)
}

type contactServiceImpl struct {
	contactRepo contactStore
}

// NewContactService creates a new contact service instance
func NewContactService(contactRepo contactStore) ContactService {
	return &contactServiceImpl{
		contactRepo: contactRepo,
	}
}

// GetContactInfo retrieves the contact info
func (s *contactServiceImpl) GetContactInfo(ctx context.Context) (*models.ContactInfo, error) {
	return s.contactRepo.Get(ctx)
}

// SaveContactInfo creates or replaces the contact info singleton
func (s *contactServiceImpl) SaveContactInfo(ctx context.Context, req *dto.SaveContactInfoRequest) (*models.ContactInfo, error) {
	contact := &models.ContactInfo{
		AddressEn:      req.AddressEn,
		AddressAr:      req.AddressAr,
		Phone:          req.Phone,
		Whatsapp:       req.Whatsapp,
		Email:          req.Email,
		MapURL:         req.MapURL,
		WorkingHoursEn: req.WorkingHoursEn,
		WorkingHoursAr: req.WorkingHoursAr,
	}

	if err := s.contactRepo.Save(ctx, contact); err != nil {
		return nil, err
	}

	return contact, nil
}
