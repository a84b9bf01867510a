package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/sd13/academy/internal/app/models"
	"github.com/sd13/academy/internal/app/models/dto"
	"github.com/sd13/academy/internal/pkg/apperrors"
	"github.com/sd13/academy/internal/pkg/filestorage"
)

const coachMediaFolder = "coaches"

type coachStore interface {
	GetAll(ctx context.Context, includeInactive bool) ([]*models.Coach, error)
	GetByID(ctx context.Context, id string) (*models.Coach, error)
	Create(ctx context.Context, coach *models.Coach) error
	Update(ctx context.Context, coach *models.Coach) error
	Delete(ctx context.Context, id string) error
}

// CoachService defines the interface for coach operations
type CoachService interface {
	GetCoaches(ctx context.Context, includeInactive bool) ([]*models.Coach, error)
	GetCoachByID(ctx context.Context, id string) (*models.Coach, error)
	CreateCoach(ctx context.Context, req *dto.CreateCoachRequest, image *multipart.FileHeader) (*models.Coach, error)
	UpdateCoach(ctx context.Context, id string, req *dto.UpdateCoachRequest, image *multipart.FileHeader) (*models.Coach, error)
	DeleteCoach(ctx context.Context, id string) error
}

type coachServiceImpl struct {
	coachRepo coachStore
	storage   filestorage.Storage
}

// NewCoachService creates a new coach service instance
func NewCoachService(coachRepo coachStore, storage filestorage.Storage) CoachService {
	return &coachServiceImpl{
		coachRepo: coachRepo,
		storage:   storage,
	}
}

// GetCoaches retrieves coaches in display order
func (s *coachServiceImpl) GetCoaches(ctx context.Context, includeInactive bool) ([]*models.Coach, error) {
	return s.coachRepo.GetAll(ctx, includeInactive)
}

// GetCoachByID retrieves a single coach
func (s *coachServiceImpl) GetCoachByID(ctx context.Context, id string) (*models.Coach, error) {
	return s.coachRepo.GetByID(ctx, id)
}

// CreateCoach creates a coach profile
func (s *coachServiceImpl) CreateCoach(ctx context.Context, req *dto.CreateCoachRequest, image *multipart.FileHeader) (*models.Coach, error) {
	specialties, err := models.DecodeStringList(req.Specialties)
	if err != nil {
		return nil, fmt.Errorf("%w: specialties must be a JSON array of strings", apperrors.ErrValidationFailed)
	}

	coach := &models.Coach{
		NameEn:      req.NameEn,
		NameAr:      req.NameAr,
		TitleEn:     req.TitleEn,
		TitleAr:     req.TitleAr,
		BioEn:       req.BioEn,
		BioAr:       req.BioAr,
		Experience:  req.Experience,
		Specialties: specialties,
		IsActive:    req.IsActive == nil || *req.IsActive,
		Order:       req.Order,
	}

	if image != nil {
		reference, err := s.storage.Save(image, coachMediaFolder)
		if err != nil {
			return nil, fmt.Errorf("error storing coach image: %w", err)
		}
		coach.ImageURL = &reference
	}

	if err := s.coachRepo.Create(ctx, coach); err != nil {
		deleteMediaQuietly(s.storage, coach.ImageURL)
		return nil, err
	}

	return coach, nil
}

// UpdateCoach applies field changes and the image replace/remove lifecycle
func (s *coachServiceImpl) UpdateCoach(ctx context.Context, id string, req *dto.UpdateCoachRequest, image *multipart.FileHeader) (*models.Coach, error) {
	coach, err := s.coachRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	specialties, err := models.DecodeStringList(req.Specialties)
	if err != nil {
		return nil, fmt.Errorf("%w: specialties must be a JSON array of strings", apperrors.ErrValidationFailed)
	}

	if req.RemoveImage {
		deleteMediaQuietly(s.storage, coach.ImageURL)
		coach.ImageURL = nil
	}
	if image != nil {
		deleteMediaQuietly(s.storage, coach.ImageURL)
		reference, err := s.storage.Save(image, coachMediaFolder)
		if err != nil {
			return nil, fmt.Errorf("error storing coach image: %w", err)
		}
		coach.ImageURL = &reference
	}

	coach.NameEn = req.NameEn
	coach.NameAr = req.NameAr
	coach.TitleEn = req.TitleEn
	coach.TitleAr = req.TitleAr
	coach.BioEn = req.BioEn
	coach.BioAr = req.BioAr
	coach.Experience = req.Experience
	coach.Specialties = specialties
	if req.IsActive != nil {
		coach.IsActive = *req.IsActive
	}
	coach.Order = req.Order

	if err := s.coachRepo.Update(ctx, coach); err != nil {
		return nil, err
	}

	return coach, nil
}

// DeleteCoach removes the row first, then cleans up the stored media
func (s *coachServiceImpl) DeleteCoach(ctx context.Context, id string) error {
	coach, err := s.coachRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.coachRepo.Delete(ctx, id); err != nil {
		return err
	}

	deleteMediaQuietly(s.storage, coach.ImageURL)
	return nil
}
