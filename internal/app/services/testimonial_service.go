package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/sd13/academy/internal/app/models"
	"github.com/sd13/academy/internal/app/models/dto"
	"github.com/sd13/academy/internal/pkg/apperrors"
	"github.com/sd13/academy/internal/pkg/filestorage"
	"github.com/sd13/academy/internal/pkg/validation"
)

const testimonialMediaFolder = "testimonials"

type testimonialStore interface {
	GetAll(ctx context.Context, includeInactive bool) ([]*models.Testimonial, error)
	GetByID(ctx context.Context, id string) (*models.Testimonial, error)
	Create(ctx context.Context, t *models.Testimonial) error
	Update(ctx context.Context, t *models.Testimonial) error
	Delete(ctx context.Context, id string) error
}

// TestimonialService defines the interface for testimonial operations
type TestimonialService interface {
	GetTestimonials(ctx context.Context, includeInactive bool) ([]*models.Testimonial, error)
	GetTestimonialByID(ctx context.Context, id string) (*models.Testimonial, error)
	CreateTestimonial(ctx context.Context, req *dto.CreateTestimonialRequest, image *multipart.FileHeader) (*models.Testimonial, error)
	UpdateTestimonial(ctx context.Context, id string, req *dto.UpdateTestimonialRequest, image *multipart.FileHeader) (*models.Testimonial, error)
	DeleteTestimonial(ctx context.Context, id string) error
}

type testimonialServiceImpl struct {
	testimonialRepo testimonialStore
	storage         filestorage.Storage
}

// NewTestimonialService creates a new testimonial service instance
func NewTestimonialService(testimonialRepo testimonialStore, storage filestorage.Storage) TestimonialService {
	return &testimonialServiceImpl{
		testimonialRepo: testimonialRepo,
		storage:         storage,
	}
}

// GetTestimonials retrieves testimonials in display order
func (s *testimonialServiceImpl) GetTestimonials(ctx context.Context, includeInactive bool) ([]*models.Testimonial, error) {
	return s.testimonialRepo.GetAll(ctx, includeInactive)
}

// GetTestimonialByID retrieves a single testimonial
func (s *testimonialServiceImpl) GetTestimonialByID(ctx context.Context, id string) (*models.Testimonial, error) {
	return s.testimonialRepo.GetByID(ctx, id)
}

// CreateTestimonial creates a testimonial
func (s *testimonialServiceImpl) CreateTestimonial(ctx context.Context, req *dto.CreateTestimonialRequest, image *multipart.FileHeader) (*models.Testimonial, error) {
	if !validation.IsValidRating(req.Rating) {
		return nil, apperrors.ErrInvalidRating
	}

	testimonial := &models.Testimonial{
		NameEn:   req.NameEn,
		NameAr:   req.NameAr,
		TextEn:   req.TextEn,
		TextAr:   req.TextAr,
		Rating:   req.Rating,
		IsActive: req.IsActive == nil || *req.IsActive,
		Order:    req.Order,
	}

	if image != nil {
		reference, err := s.storage.Save(image, testimonialMediaFolder)
		if err != nil {
			return nil, fmt.Errorf("error storing testimonial image: %w", err)
		}
		testimonial.ImageURL = &reference
	}

	if err := s.testimonialRepo.Create(ctx, testimonial); err != nil {
		deleteMediaQuietly(s.storage, testimonial.ImageURL)
		return nil, err
	}

	return testimonial, nil
}

// UpdateTestimonial applies field changes and the image replace/remove lifecycle
func (s *testimonialServiceImpl) UpdateTestimonial(ctx context.Context, id string, req *dto.UpdateTestimonialRequest, image *multipart.FileHeader) (*models.Testimonial, error) {
	if !validation.IsValidRating(req.Rating) {
		return nil, apperrors.ErrInvalidRating
	}

	testimonial, err := s.testimonialRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.RemoveImage {
		deleteMediaQuietly(s.storage, testimonial.ImageURL)
		testimonial.ImageURL = nil
	}
	if image != nil {
		deleteMediaQuietly(s.storage, testimonial.ImageURL)
		reference, err := s.storage.Save(image, testimonialMediaFolder)
		if err != nil {
			return nil, fmt.Errorf("error storing testimonial image: %w", err)
		}
		testimonial.ImageURL = &reference
	}

	testimonial.NameEn = req.NameEn
	testimonial.NameAr = req.NameAr
	testimonial.TextEn = req.TextEn
	testimonial.TextAr = req.TextAr
	testimonial.Rating = req.Rating
	if req.IsActive != nil {
		testimonial.IsActive = *req.IsActive
	}
	testimonial.Order = req.Order

	if err := s.testimonialRepo.Update(ctx, testimonial); err != nil {
		return nil, err
	}

	return testimonial, nil
}

// DeleteTestimonial removes the row first, then cleans up the stored media
func (s *testimonialServiceImpl) DeleteTestimonial(ctx context.Context, id string) error {
	testimonial, err := s.testimonialRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.testimonialRepo.Delete(ctx, id); err != nil {
		return err
	}

	deleteMediaQuietly(s.storage, testimonial.ImageURL)
	return nil
}
