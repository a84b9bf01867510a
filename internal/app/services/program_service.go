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

const programMediaFolder = "programs"

// programStore is the persistence surface the program service needs
type programStore interface {
	GetAll(ctx context.Context, includeInactive bool) ([]*models.Program, error)
	GetByID(ctx context.Context, id string) (*models.Program, error)
	Create(ctx context.Context, program *models.Program) error
	Update(ctx context.Context, program *models.Program) error
	Delete(ctx context.Context, id string) error
}

// ProgramService defines the interface for program operations
type ProgramService interface {
	GetPrograms(ctx context.Context, includeInactive bool) ([]*models.Program, error)
	GetProgramByID(ctx context.Context, id string) (*models.Program, error)
	CreateProgram(ctx context.Context, req *dto.CreateProgramRequest, image *multipart.FileHeader) (*models.Program, error)
	UpdateProgram(ctx context.Context, id string, req *dto.UpdateProgramRequest, image *multipart.FileHeader) (*models.Program, error)
	DeleteProgram(ctx context.Context, id string) error
}

type programServiceImpl struct {
	programRepo programStore
	storage     filestorage.Storage
}

// NewProgramService creates a new program service instance
func NewProgramService(programRepo programStore, storage filestorage.Storage) ProgramService {
	return &programServiceImpl{
		programRepo: programRepo,
		storage:     storage,
	}
}

// GetPrograms retrieves programs in display order
func (s *programServiceImpl) GetPrograms(ctx context.Context, includeInactive bool) ([]*models.Program, error) {
	return s.programRepo.GetAll(ctx, includeInactive)
}

// GetProgramByID retrieves a single program
func (s *programServiceImpl) GetProgramByID(ctx context.Context, id string) (*models.Program, error) {
	return s.programRepo.GetByID(ctx, id)
}

// CreateProgram creates a program, storing the image binary first so a
// failed upload never leaves a row pointing at nothing.
func (s *programServiceImpl) CreateProgram(ctx context.Context, req *dto.CreateProgramRequest, image *multipart.FileHeader) (*models.Program, error) {
	features, err := models.DecodeStringList(req.Features)
	if err != nil {
		return nil, fmt.Errorf("%w: features must be a JSON array of strings", apperrors.ErrValidationFailed)
	}

	program := &models.Program{
		TitleEn:       req.TitleEn,
		TitleAr:       req.TitleAr,
		DescriptionEn: req.DescriptionEn,
		DescriptionAr: req.DescriptionAr,
		Features:      features,
		IsActive:      req.IsActive == nil || *req.IsActive,
		Order:         req.Order,
	}

	if image != nil {
		reference, err := s.storage.Save(image, programMediaFolder)
		if err != nil {
			return nil, fmt.Errorf("error storing program image: %w", err)
		}
		program.ImageURL = &reference
	}

	if err := s.programRepo.Create(ctx, program); err != nil {
		deleteMediaQuietly(s.storage, program.ImageURL)
		return nil, err
	}

	return program, nil
}

// UpdateProgram applies field changes and runs the media lifecycle:
// an explicit removal clears the stored file, and a replacement upload
// deletes the old binary before the new reference is written.
func (s *programServiceImpl) UpdateProgram(ctx context.Context, id string, req *dto.UpdateProgramRequest, image *multipart.FileHeader) (*models.Program, error) {
	program, err := s.programRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	features, err := models.DecodeStringList(req.Features)
	if err != nil {
		return nil, fmt.Errorf("%w: features must be a JSON array of strings", apperrors.ErrValidationFailed)
	}

	if req.RemoveImage {
		deleteMediaQuietly(s.storage, program.ImageURL)
		program.ImageURL = nil
	}
	if image != nil {
		deleteMediaQuietly(s.storage, program.ImageURL)
		reference, err := s.storage.Save(image, programMediaFolder)
		if err != nil {
			return nil, fmt.Errorf("error storing program image: %w", err)
		}
		program.ImageURL = &reference
	}

	program.TitleEn = req.TitleEn
	program.TitleAr = req.TitleAr
	program.DescriptionEn = req.DescriptionEn
	program.DescriptionAr = req.DescriptionAr
	program.Features = features
	if req.IsActive != nil {
		program.IsActive = *req.IsActive
	}
	program.Order = req.Order

	if err := s.programRepo.Update(ctx, program); err != nil {
		return nil, err
	}

	return program, nil
}

// DeleteProgram removes the row first, then cleans up the stored media
func (s *programServiceImpl) DeleteProgram(ctx context.Context, id string) error {
	program, err := s.programRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.programRepo.Delete(ctx, id); err != nil {
		return err
	}

	deleteMediaQuietly(s.storage, program.ImageURL)
	return nil
}
